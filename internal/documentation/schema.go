package docs

import "ehr-dashboard-api/internal/agent"

var structuredNoteSchema = agent.Schema{
	Name: "structured_clinical_note",
	Definition: map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required": []string{
			"subjective", "objective", "assessment", "plan",
			"icdCodes", "cptCodes",
		},
		"properties": map[string]any{
			"subjective": map[string]any{
				"type":        "string",
				"description": "Patient-reported symptoms and history",
			},
			"objective": map[string]any{
				"type":        "string",
				"description": "Observable findings and measurements",
			},
			"assessment": map[string]any{
				"type":        "string",
				"description": "Clinical assessment and diagnosis",
			},
			"plan": map[string]any{
				"type":        "string",
				"description": "Treatment plan and follow-up",
			},
			"icdCodes": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Relevant ICD-10 codes",
			},
			"cptCodes": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Relevant CPT codes for procedures",
			},
		},
	},
}
