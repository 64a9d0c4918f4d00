package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// OpenAIConfig holds connection settings for the OpenAI-compatible
// generation service.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	// Timeout bounds every invocation, buffered or streaming.
	Timeout time.Duration
}

const (
	defaultModel   = "gpt-4"
	defaultTimeout = 30 * time.Second
)

type openAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClient creates a Client backed by the OpenAI Responses API.
func NewOpenAIClient(cfg OpenAIConfig) Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := openai.NewClient(opts...)

	return &openAIClient{
		client:  &client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

func (c *openAIClient) Generate(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.Responses.New(ctx, c.buildParams(req))
	if err != nil {
		return "", classifyErr(err, ctx)
	}

	return result.OutputText(), nil
}

func (c *openAIClient) GenerateObject(ctx context.Context, req Request, schema Schema, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := c.buildParams(req)
	params.Text = responses.ResponseTextConfigParam{
		Format: responses.ResponseFormatTextConfigUnionParam{
			OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
				Name:   schema.Name,
				Schema: schema.Definition,
				Strict: openai.Bool(true),
			},
		},
	}

	result, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return classifyErr(err, ctx)
	}

	return DecodeStructured(result.OutputText(), out)
}

func (c *openAIClient) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	out := make(chan Chunk)

	go func() {
		defer close(out)

		// The ceiling bounds the upstream call only. Chunk delivery selects
		// on the parent context, so when the deadline expires mid-stream the
		// terminal error chunk still reaches the draining consumer instead
		// of the stream closing as if it had completed.
		genCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		stream := c.client.Responses.NewStreaming(genCtx, c.buildParams(req))
		defer stream.Close()

		for stream.Next() {
			event := stream.Current()
			switch ev := event.AsAny().(type) {
			case responses.ResponseTextDeltaEvent:
				if ev.Delta == "" {
					continue
				}
				select {
				case out <- Chunk{Text: ev.Delta}:
				case <-ctx.Done():
					// Consumer stopped reading (client disconnect). Release
					// the upstream call now.
					return
				}
			case responses.ResponseErrorEvent:
				sendChunk(ctx, out, Chunk{Err: fmt.Errorf("%w: %s", ErrUnavailable, ev.Message)})
				return
			}
		}

		if err := stream.Err(); err != nil {
			sendChunk(ctx, out, Chunk{Err: classifyErr(err, genCtx)})
		}
	}()

	return out, nil
}

func (c *openAIClient) buildParams(req Request) responses.ResponseNewParams {
	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(c.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(req.Prompt),
		},
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxOutputTokens = openai.Int(req.MaxTokens)
	}
	return params
}

// DecodeStructured parses a structured completion into out and runs the
// type's closed-set validation. Any failure is a schema violation: partially
// parsed data is never returned.
func DecodeStructured(payload string, out any) error {
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if v, ok := out.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
		}
	}
	return nil
}

func sendChunk(ctx context.Context, out chan<- Chunk, c Chunk) {
	select {
	case out <- c:
	case <-ctx.Done():
	}
}

func classifyErr(err error, ctx context.Context) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
