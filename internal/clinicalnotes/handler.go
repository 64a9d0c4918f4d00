package clinicalnotes

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"ehr-dashboard-api/internal/agent"
	"ehr-dashboard-api/internal/aiops"
)

// Handler serves the clinical-notes endpoint: long-form note generation,
// visit summarization and ICD code extraction.
type Handler struct {
	ai     agent.Client
	router *aiops.Router
}

func NewHandler(ai agent.Client, log zerolog.Logger) *Handler {
	h := &Handler{ai: ai}

	rt := aiops.NewRouter(log)
	rt.Handle("generate_note", h.handleGenerateNote)
	rt.Handle("summarize_visit", h.handleSummarizeVisit)
	rt.Handle("extract_icd_codes", h.handleExtractICDCodes)
	h.router = rt

	return h
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/clinical-notes", h.ServeHTTP)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) handleGenerateNote(ctx context.Context, data json.RawMessage) (*aiops.Result, error) {
	var in NoteInput
	if err := aiops.DecodeData(data, &in); err != nil {
		return nil, err
	}

	req := agent.Request{Prompt: notePrompt(in), Temperature: 0.4, MaxTokens: 2000}
	chunks, err := h.ai.Stream(ctx, req)
	if err != nil {
		return nil, err
	}

	return aiops.Stream(chunks), nil
}

func (h *Handler) handleSummarizeVisit(ctx context.Context, data json.RawMessage) (*aiops.Result, error) {
	var in SummaryInput
	if err := aiops.DecodeData(data, &in); err != nil {
		return nil, err
	}

	req := agent.Request{Prompt: summaryPrompt(in), Temperature: 0.3, MaxTokens: 800}
	text, err := h.ai.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	return aiops.Text("summary", text), nil
}

func (h *Handler) handleExtractICDCodes(ctx context.Context, data json.RawMessage) (*aiops.Result, error) {
	var in ICDInput
	if err := aiops.DecodeData(data, &in); err != nil {
		return nil, err
	}

	req := agent.Request{Prompt: icdPrompt(in), Temperature: 0.2, MaxTokens: 1000}
	text, err := h.ai.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	return aiops.Text("icdCodes", text), nil
}
