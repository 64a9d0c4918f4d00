package clinicalai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ehr-dashboard-api/internal/aiops"
)

func intPtr(n int) *int { return &n }

func validAssessmentInput() AssessmentInput {
	return AssessmentInput{
		Patient:            &PatientContext{Age: intPtr(67), Gender: "female"},
		Symptoms:           []string{"chest pain", "shortness of breath"},
		Vitals:             map[string]any{"bp": "150/95", "hr": 102},
		MedicalHistory:     []string{"hypertension", "type 2 diabetes"},
		CurrentMedications: []string{"lisinopril", "metformin"},
	}
}

func TestAssessmentPromptIsDeterministic(t *testing.T) {
	in := validAssessmentInput()
	assert.Equal(t, assessmentPrompt(in), assessmentPrompt(in))
}

func TestAssessmentPromptInterpolatesFields(t *testing.T) {
	prompt := assessmentPrompt(validAssessmentInput())

	assert.Contains(t, prompt, "Age: 67")
	assert.Contains(t, prompt, "Gender: female")
	assert.Contains(t, prompt, "chest pain, shortness of breath")
	assert.Contains(t, prompt, "hypertension, type 2 diabetes")
	assert.Contains(t, prompt, "lisinopril, metformin")
	assert.Contains(t, prompt, `"bp":"150/95"`)
}

func TestAssessmentInputRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AssessmentInput)
		field  string
	}{
		{"missing patient", func(in *AssessmentInput) { in.Patient = nil }, "patientData"},
		{"missing age", func(in *AssessmentInput) { in.Patient.Age = nil }, "patientData.age"},
		{"missing gender", func(in *AssessmentInput) { in.Patient.Gender = "" }, "patientData.gender"},
		{"missing symptoms", func(in *AssessmentInput) { in.Symptoms = nil }, "symptoms"},
		{"missing vitals", func(in *AssessmentInput) { in.Vitals = nil }, "vitals"},
		{"missing history", func(in *AssessmentInput) { in.MedicalHistory = nil }, "medicalHistory"},
		{"missing medications", func(in *AssessmentInput) { in.CurrentMedications = nil }, "currentMedications"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validAssessmentInput()
			tc.mutate(&in)

			err := in.Validate()
			var opErr *aiops.Error
			require.ErrorAs(t, err, &opErr)
			assert.Equal(t, "Missing required field: "+tc.field, opErr.Message)
		})
	}

	in := validAssessmentInput()
	// Empty lists are allowed once the key is present.
	in.MedicalHistory = []string{}
	in.CurrentMedications = []string{}
	assert.NoError(t, in.Validate())
}

func TestInteractionPrompt(t *testing.T) {
	in := InteractionInput{
		Medications:   []string{"lisinopril", "metformin"},
		NewMedication: "ibuprofen",
	}

	prompt := interactionPrompt(in)
	assert.Contains(t, prompt, "Current Medications: lisinopril, metformin")
	assert.Contains(t, prompt, "New Medication: ibuprofen")
	assert.Equal(t, prompt, interactionPrompt(in))
}

func TestInteractionInputRequiredFields(t *testing.T) {
	err := (&InteractionInput{NewMedication: "ibuprofen"}).Validate()
	var opErr *aiops.Error
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "Missing required field: medications", opErr.Message)

	err = (&InteractionInput{Medications: []string{"lisinopril"}}).Validate()
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "Missing required field: newMedication", opErr.Message)
}

func TestDiagnosticPromptPlaceholders(t *testing.T) {
	in := DiagnosticInput{
		Symptoms:       []string{"fever", "cough"},
		PatientHistory: "recent travel",
	}

	prompt := diagnosticPrompt(in)
	assert.Contains(t, prompt, "Lab Results: None available")
	assert.Contains(t, prompt, "Imaging: None available")

	in.LabResults = "WBC 14.2"
	in.Imaging = "chest X-ray clear"
	prompt = diagnosticPrompt(in)
	assert.Contains(t, prompt, "Lab Results: WBC 14.2")
	assert.Contains(t, prompt, "Imaging: chest X-ray clear")
}

func TestDiagnosticInputRequiredFields(t *testing.T) {
	err := (&DiagnosticInput{PatientHistory: "none"}).Validate()
	var opErr *aiops.Error
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "Missing required field: symptoms", opErr.Message)

	err = (&DiagnosticInput{Symptoms: []string{"fever"}}).Validate()
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "Missing required field: patientHistory", opErr.Message)
}
