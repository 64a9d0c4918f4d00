package clinicalai

import (
	"encoding/json"
	"fmt"
	"strings"

	"ehr-dashboard-api/internal/aiops"
)

// Typed input records for each operation. The payload is loosely typed at
// the boundary; decoding into these records plus Validate() is what stands
// between the wire and the prompt builders.

type PatientContext struct {
	Age    *int   `json:"age"`
	Gender string `json:"gender"`
}

type AssessmentInput struct {
	Patient            *PatientContext `json:"patientData"`
	Symptoms           []string        `json:"symptoms"`
	Vitals             map[string]any  `json:"vitals"`
	MedicalHistory     []string        `json:"medicalHistory"`
	CurrentMedications []string        `json:"currentMedications"`
}

// Validate enforces the required-field policy for clinical_assessment:
// every field must be present. History and medication lists may be empty
// but not absent.
func (in *AssessmentInput) Validate() error {
	switch {
	case in.Patient == nil:
		return aiops.MissingField("patientData")
	case in.Patient.Age == nil:
		return aiops.MissingField("patientData.age")
	case in.Patient.Gender == "":
		return aiops.MissingField("patientData.gender")
	case len(in.Symptoms) == 0:
		return aiops.MissingField("symptoms")
	case in.Vitals == nil:
		return aiops.MissingField("vitals")
	case in.MedicalHistory == nil:
		return aiops.MissingField("medicalHistory")
	case in.CurrentMedications == nil:
		return aiops.MissingField("currentMedications")
	}
	return nil
}

type InteractionInput struct {
	Medications   []string `json:"medications"`
	NewMedication string   `json:"newMedication"`
}

func (in *InteractionInput) Validate() error {
	switch {
	case len(in.Medications) == 0:
		return aiops.MissingField("medications")
	case in.NewMedication == "":
		return aiops.MissingField("newMedication")
	}
	return nil
}

type DiagnosticInput struct {
	Symptoms       []string `json:"symptoms"`
	PatientHistory string   `json:"patientHistory"`
	LabResults     string   `json:"labResults"`
	Imaging        string   `json:"imaging"`
}

// Validate enforces the diagnostic_assistance policy: symptoms and history
// are required; lab results and imaging fall back to a documented
// placeholder in the prompt builder.
func (in *DiagnosticInput) Validate() error {
	switch {
	case len(in.Symptoms) == 0:
		return aiops.MissingField("symptoms")
	case in.PatientHistory == "":
		return aiops.MissingField("patientHistory")
	}
	return nil
}

const noneAvailable = "None available"

func assessmentPrompt(in AssessmentInput) string {
	vitals, _ := json.Marshal(in.Vitals)
	return fmt.Sprintf(`As a clinical decision support system, analyze the following patient information and provide a comprehensive assessment:

Patient Information:
- Age: %d
- Gender: %s
- Medical History: %s
- Current Medications: %s

Current Presentation:
- Symptoms: %s
- Vital Signs: %s

Please provide a structured clinical assessment including risk stratification, recommendations, differential diagnosis, and any clinical alerts.`,
		*in.Patient.Age,
		in.Patient.Gender,
		strings.Join(in.MedicalHistory, ", "),
		strings.Join(in.CurrentMedications, ", "),
		strings.Join(in.Symptoms, ", "),
		string(vitals),
	)
}

func interactionPrompt(in InteractionInput) string {
	return fmt.Sprintf(`Analyze potential drug interactions between the following medications:

Current Medications: %s
New Medication: %s

Provide a comprehensive drug interaction analysis including severity levels, clinical effects, and management recommendations.`,
		strings.Join(in.Medications, ", "),
		in.NewMedication,
	)
}

func diagnosticPrompt(in DiagnosticInput) string {
	return fmt.Sprintf(`Provide diagnostic assistance for a patient with the following presentation:

Symptoms: %s
Patient History: %s
Lab Results: %s
Imaging: %s

Suggest possible diagnoses, recommended tests, and clinical reasoning.`,
		strings.Join(in.Symptoms, ", "),
		in.PatientHistory,
		orPlaceholder(in.LabResults, noneAvailable),
		orPlaceholder(in.Imaging, noneAvailable),
	)
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
