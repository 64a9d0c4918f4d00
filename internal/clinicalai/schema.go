package clinicalai

import "ehr-dashboard-api/internal/agent"

// Output schemas handed to the generation service so structured operations
// are constrained to the declared shape. Enum sets here must stay in lockstep
// with the constants in model.go.

var assessmentSchema = agent.Schema{
	Name: "clinical_assessment",
	Definition: map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required": []string{
			"riskLevel", "primaryConcerns", "recommendations",
			"differentialDiagnosis", "alerts",
		},
		"properties": map[string]any{
			"riskLevel": map[string]any{
				"type":        "string",
				"enum":        []string{"low", "medium", "high", "critical"},
				"description": "Overall patient risk level",
			},
			"primaryConcerns": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Main clinical concerns identified",
			},
			"recommendations": map[string]any{
				"type":        "array",
				"description": "Clinical recommendations",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"category", "priority", "action", "rationale"},
					"properties": map[string]any{
						"category": map[string]any{
							"type": "string",
							"enum": []string{"diagnostic", "treatment", "monitoring", "referral"},
						},
						"priority": map[string]any{
							"type": "string",
							"enum": []string{"low", "medium", "high", "urgent"},
						},
						"action":    map[string]any{"type": "string", "description": "Specific recommended action"},
						"rationale": map[string]any{"type": "string", "description": "Clinical reasoning for this recommendation"},
					},
				},
			},
			"differentialDiagnosis": map[string]any{
				"type":        "array",
				"description": "Possible diagnoses to consider",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"condition", "probability", "supportingFactors", "additionalTests"},
					"properties": map[string]any{
						"condition": map[string]any{"type": "string"},
						"probability": map[string]any{
							"type": "string",
							"enum": []string{"low", "moderate", "high"},
						},
						"supportingFactors": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"additionalTests": map[string]any{
							"type":  []string{"array", "null"},
							"items": map[string]any{"type": "string"},
						},
					},
				},
			},
			"alerts": map[string]any{
				"type":        "array",
				"description": "Clinical alerts and warnings",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"type", "severity", "message", "action"},
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []string{"drug_interaction", "allergy", "contraindication", "critical_value"},
						},
						"severity": map[string]any{
							"type": "string",
							"enum": []string{"low", "medium", "high", "critical"},
						},
						"message": map[string]any{"type": "string"},
						"action":  map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}

var interactionSchema = agent.Schema{
	Name: "drug_interaction",
	Definition: map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"interactions", "overallRisk", "recommendations"},
		"properties": map[string]any{
			"interactions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required": []string{
						"drug1", "drug2", "severity", "description",
						"clinicalEffect", "management", "alternatives",
					},
					"properties": map[string]any{
						"drug1": map[string]any{"type": "string"},
						"drug2": map[string]any{"type": "string"},
						"severity": map[string]any{
							"type": "string",
							"enum": []string{"minor", "moderate", "major", "contraindicated"},
						},
						"description":    map[string]any{"type": "string"},
						"clinicalEffect": map[string]any{"type": "string"},
						"management":     map[string]any{"type": "string"},
						"alternatives": map[string]any{
							"type":  []string{"array", "null"},
							"items": map[string]any{"type": "string"},
						},
					},
				},
			},
			"overallRisk": map[string]any{
				"type": "string",
				"enum": []string{"low", "moderate", "high", "critical"},
			},
			"recommendations": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	},
}
