package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enumResult struct {
	Level string `json:"level"`
}

func (r *enumResult) Validate() error {
	switch r.Level {
	case "low", "high":
		return nil
	}
	return fmt.Errorf("level %q outside closed set", r.Level)
}

func TestDecodeStructured(t *testing.T) {
	var out enumResult
	require.NoError(t, DecodeStructured(`{"level":"low"}`, &out))
	assert.Equal(t, "low", out.Level)
}

func TestDecodeStructuredRejectsInvalidJSON(t *testing.T) {
	var out enumResult
	err := DecodeStructured(`{"level": `, &out)
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestDecodeStructuredRejectsOutOfSetEnum(t *testing.T) {
	var out enumResult
	err := DecodeStructured(`{"level":"extreme"}`, &out)
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestClassifyErr(t *testing.T) {
	ctx := context.Background()

	err := classifyErr(errors.New("connection refused"), ctx)
	assert.ErrorIs(t, err, ErrUnavailable)

	err = classifyErr(context.DeadlineExceeded, ctx)
	assert.ErrorIs(t, err, ErrTimeout)

	// A generation that outlived the request deadline is a timeout even if
	// the transport reported something else.
	expired, cancel := context.WithDeadline(ctx, time.Now().Add(-time.Second))
	defer cancel()
	err = classifyErr(errors.New("connection reset"), expired)
	assert.ErrorIs(t, err, ErrTimeout)

	err = classifyErr(context.Canceled, ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

// TestStreamDeliversTimeoutErrorMidStream pins down the stream-ending
// contract: when the generation deadline expires after chunks have been
// delivered, the consumer must receive a terminal error chunk rather than a
// clean close it cannot tell apart from a completed stream.
func TestStreamDeliversTimeoutErrorMidStream(t *testing.T) {
	delta := `{"type":"response.output_text.delta","delta":"Subjective: improving. ","item_id":"item_1","output_index":0,"content_index":0,"sequence_number":1}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "event: response.output_text.delta\ndata: "+delta+"\n\n")
		w.(http.Flusher).Flush()
		// Hold the stream open until the client's deadline tears it down.
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewOpenAIClient(OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Timeout: 100 * time.Millisecond,
	})

	chunks, err := c.Stream(context.Background(), Request{Prompt: "progress note", Temperature: 0.3})
	require.NoError(t, err)

	var texts []string
	var last Chunk
	for chunk := range chunks {
		last = chunk
		if chunk.Err == nil {
			texts = append(texts, chunk.Text)
		}
	}

	assert.Equal(t, []string{"Subjective: improving. "}, texts)
	require.Error(t, last.Err, "deadline expiry must surface as an error chunk")
	assert.ErrorIs(t, last.Err, ErrTimeout)
}

func TestBuildParams(t *testing.T) {
	c := &openAIClient{model: "gpt-4", timeout: time.Second}

	params := c.buildParams(Request{Prompt: "analyze", Temperature: 0.2, MaxTokens: 1500})
	assert.Equal(t, "gpt-4", string(params.Model))
	assert.Equal(t, "analyze", params.Input.OfString.Value)
	assert.Equal(t, 0.2, params.Temperature.Value)
	assert.Equal(t, int64(1500), params.MaxOutputTokens.Value)

	// MaxTokens unset leaves the provider default in place.
	params = c.buildParams(Request{Prompt: "analyze", Temperature: 0.3})
	assert.False(t, params.MaxOutputTokens.Valid())
}
