package docs

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"ehr-dashboard-api/internal/agent"
	"ehr-dashboard-api/internal/aiops"
)

// Handler serves the documentation endpoint: SOAP and progress notes,
// discharge summaries, voice transcription cleanup and document extraction.
type Handler struct {
	ai     agent.Client
	router *aiops.Router
}

func NewHandler(ai agent.Client, log zerolog.Logger) *Handler {
	h := &Handler{ai: ai}

	rt := aiops.NewRouter(log)
	rt.Handle("generate_soap_note", h.handleSOAPNote)
	rt.Handle("generate_structured_note", h.handleStructuredNote)
	rt.Handle("transcribe_voice", h.handleTranscribeVoice)
	rt.Handle("extract_medical_info", h.handleExtractMedicalInfo)
	rt.Handle("generate_discharge_summary", h.handleDischargeSummary)
	rt.Handle("create_progress_note", h.handleProgressNote)
	h.router = rt

	return h
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/documentation", h.ServeHTTP)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) handleSOAPNote(ctx context.Context, data json.RawMessage) (*aiops.Result, error) {
	var in SOAPInput
	if err := aiops.DecodeData(data, &in); err != nil {
		return nil, err
	}

	req := agent.Request{Prompt: soapPrompt(in), Temperature: 0.3, MaxTokens: 2000}
	chunks, err := h.ai.Stream(ctx, req)
	if err != nil {
		return nil, err
	}

	return aiops.Stream(chunks), nil
}

func (h *Handler) handleStructuredNote(ctx context.Context, data json.RawMessage) (*aiops.Result, error) {
	var in SOAPInput
	if err := aiops.DecodeData(data, &in); err != nil {
		return nil, err
	}

	var out StructuredNote
	req := agent.Request{Prompt: soapPrompt(in), Temperature: 0.3}
	if err := h.ai.GenerateObject(ctx, req, structuredNoteSchema, &out); err != nil {
		return nil, err
	}

	return aiops.Object("note", out), nil
}

func (h *Handler) handleTranscribeVoice(ctx context.Context, data json.RawMessage) (*aiops.Result, error) {
	var in TranscriptionInput
	if err := aiops.DecodeData(data, &in); err != nil {
		return nil, err
	}

	req := agent.Request{Prompt: transcriptionPrompt(in), Temperature: 0.2, MaxTokens: 1500}
	text, err := h.ai.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	return aiops.Text("transcribedNote", text), nil
}

func (h *Handler) handleExtractMedicalInfo(ctx context.Context, data json.RawMessage) (*aiops.Result, error) {
	var in ExtractionInput
	if err := aiops.DecodeData(data, &in); err != nil {
		return nil, err
	}

	req := agent.Request{Prompt: extractionPrompt(in), Temperature: 0.2, MaxTokens: 1200}
	text, err := h.ai.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	return aiops.Text("extractedInfo", text), nil
}

func (h *Handler) handleDischargeSummary(ctx context.Context, data json.RawMessage) (*aiops.Result, error) {
	var in DischargeInput
	if err := aiops.DecodeData(data, &in); err != nil {
		return nil, err
	}

	req := agent.Request{Prompt: dischargePrompt(in), Temperature: 0.3, MaxTokens: 2000}
	chunks, err := h.ai.Stream(ctx, req)
	if err != nil {
		return nil, err
	}

	return aiops.Stream(chunks), nil
}

func (h *Handler) handleProgressNote(ctx context.Context, data json.RawMessage) (*aiops.Result, error) {
	var in ProgressInput
	if err := aiops.DecodeData(data, &in); err != nil {
		return nil, err
	}

	req := agent.Request{Prompt: progressPrompt(in), Temperature: 0.3, MaxTokens: 1000}
	text, err := h.ai.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	return aiops.Text("progressNote", text), nil
}
