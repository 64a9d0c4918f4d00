package clinicalai

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"ehr-dashboard-api/internal/agent"
	"ehr-dashboard-api/internal/aiops"
)

// Handler serves the clinical-ai endpoint: assessment, drug interaction
// checking and diagnostic assistance.
type Handler struct {
	ai     agent.Client
	router *aiops.Router
}

func NewHandler(ai agent.Client, log zerolog.Logger) *Handler {
	h := &Handler{ai: ai}

	rt := aiops.NewRouter(log)
	rt.Handle("clinical_assessment", h.handleAssessment)
	rt.Handle("drug_interaction", h.handleDrugInteraction)
	rt.Handle("diagnostic_assistance", h.handleDiagnosticAssistance)
	h.router = rt

	return h
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/clinical-ai", h.ServeHTTP)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) handleAssessment(ctx context.Context, data json.RawMessage) (*aiops.Result, error) {
	var in AssessmentInput
	if err := aiops.DecodeData(data, &in); err != nil {
		return nil, err
	}

	var out ClinicalAssessment
	req := agent.Request{Prompt: assessmentPrompt(in), Temperature: 0.3}
	if err := h.ai.GenerateObject(ctx, req, assessmentSchema, &out); err != nil {
		return nil, err
	}

	return aiops.Object("assessment", out), nil
}

func (h *Handler) handleDrugInteraction(ctx context.Context, data json.RawMessage) (*aiops.Result, error) {
	var in InteractionInput
	if err := aiops.DecodeData(data, &in); err != nil {
		return nil, err
	}

	var out DrugInteractionReport
	// Very low temperature for drug safety.
	req := agent.Request{Prompt: interactionPrompt(in), Temperature: 0.2}
	if err := h.ai.GenerateObject(ctx, req, interactionSchema, &out); err != nil {
		return nil, err
	}

	return aiops.Object("interactions", out), nil
}

func (h *Handler) handleDiagnosticAssistance(ctx context.Context, data json.RawMessage) (*aiops.Result, error) {
	var in DiagnosticInput
	if err := aiops.DecodeData(data, &in); err != nil {
		return nil, err
	}

	req := agent.Request{Prompt: diagnosticPrompt(in), Temperature: 0.3, MaxTokens: 1500}
	text, err := h.ai.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	return aiops.Text("diagnosticSuggestions", text), nil
}
