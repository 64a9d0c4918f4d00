package aiops

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ehr-dashboard-api/internal/platform/metrics"
)

// HandlerFunc processes one operation's payload and returns a tagged result.
type HandlerFunc func(ctx context.Context, data json.RawMessage) (*Result, error)

// Router dispatches a {type, data} envelope to the handler registered for
// the type discriminator. It holds no per-request state.
type Router struct {
	log zerolog.Logger
	ops map[string]HandlerFunc
}

func NewRouter(log zerolog.Logger) *Router {
	return &Router{
		log: log,
		ops: make(map[string]HandlerFunc),
	}
}

// Handle registers the handler for an operation type. Registration happens
// at startup; the table is fixed afterwards.
func (rt *Router) Handle(opType string, h HandlerFunc) {
	rt.ops[opType] = h
}

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// op_id tracks one generation across its log lines; request_id ties it
	// back to the HTTP request.
	log := rt.log.With().
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("op_id", uuid.NewString()).
		Logger()

	var env envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		rt.writeError(w, log, "", MalformedRequest(err))
		return
	}

	h, ok := rt.ops[env.Type]
	if !ok {
		rt.writeError(w, log, env.Type, InvalidRequestType(env.Type))
		return
	}

	res, err := rt.invoke(r.Context(), h, env.Data)
	if err != nil {
		rt.writeError(w, log, env.Type, err)
		return
	}

	if res.stream != nil {
		rt.writeStream(w, r, log, env.Type, res.stream)
		return
	}
	metrics.RecordAIOperation(env.Type, http.StatusOK)
	writeJSON(w, http.StatusOK, res.body())
}

// invoke runs the handler, converting a panic into an error so no handler
// fault escapes the router unmapped.
func (rt *Router) invoke(ctx context.Context, h HandlerFunc, data json.RawMessage) (res *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = Internal(fmt.Errorf("handler panic: %v", rec))
		}
	}()
	return h(ctx, data)
}

func (rt *Router) writeError(w http.ResponseWriter, log zerolog.Logger, opType string, err error) {
	opErr, ok := err.(*Error)
	if !ok {
		// Upstream and handler failures surface as a generic internal error.
		opErr = Internal(err)
	}

	// Client mistakes (unknown type, missing field) are expected traffic;
	// only 5xx outcomes belong in the error stream.
	evt := log.Error()
	if opErr.HTTPStatus < http.StatusInternalServerError {
		evt = log.Warn()
	}
	evt = evt.Str("op", opType).Int("status", opErr.HTTPStatus)
	if opErr.Err != nil {
		evt = evt.Err(opErr.Err)
	}
	evt.Msg(opErr.Message)

	metrics.RecordAIOperation(opType, opErr.HTTPStatus)

	writeJSON(w, opErr.HTTPStatus, map[string]string{"error": opErr.Message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// DecodeData parses an operation payload into its typed input record and
// runs its required-field checks. Mismatched payloads are rejected here
// rather than propagating empty values into a prompt string.
func DecodeData(data json.RawMessage, in any) error {
	if len(data) == 0 {
		return MalformedRequest(fmt.Errorf("missing data payload"))
	}
	if err := json.Unmarshal(data, in); err != nil {
		return MalformedRequest(err)
	}
	if v, ok := in.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
