package aiops

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"ehr-dashboard-api/internal/agent"
	"ehr-dashboard-api/internal/platform/metrics"
)

// writeStream forwards chunks to the client as they arrive, in order, with
// no buffering beyond the flush. A failure before the first chunk becomes a
// normal error response; a failure mid-stream aborts the connection so the
// client sees a failed stream rather than a silently truncated one.
func (rt *Router) writeStream(w http.ResponseWriter, r *http.Request, log zerolog.Logger, opType string, chunks <-chan agent.Chunk) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		rt.writeError(w, log, opType, Internal(errors.New("response writer does not support streaming")))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")

	started := false
	for chunk := range chunks {
		if chunk.Err != nil {
			if errors.Is(chunk.Err, context.Canceled) {
				// Client went away; the invoker has already released the
				// upstream call.
				return
			}
			if !started {
				rt.writeError(w, log, opType, chunk.Err)
				return
			}
			log.Error().Str("op", opType).Err(chunk.Err).Msg("stream failed mid-response")
			panic(http.ErrAbortHandler)
		}

		if _, err := io.WriteString(w, chunk.Text); err != nil {
			// Write failure means the client disconnected; stop forwarding.
			return
		}
		flusher.Flush()
		started = true
	}

	metrics.RecordAIOperation(opType, http.StatusOK)
}
