package clinicalnotes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ehr-dashboard-api/internal/aiops"
)

func intPtr(n int) *int { return &n }

func validNoteInput() NoteInput {
	return NoteInput{
		Patient:        &PatientInfo{Name: "Jane Rivera", Age: intPtr(54), Gender: "female"},
		VisitType:      "follow-up",
		ChiefComplaint: "persistent cough",
		Assessment:     "likely post-viral bronchitis",
		Plan:           "supportive care, return if worsening",
	}
}

func TestNotePromptInterpolatesFields(t *testing.T) {
	prompt := notePrompt(validNoteInput())

	assert.Contains(t, prompt, "Patient: Jane Rivera (54 years old, female)")
	assert.Contains(t, prompt, "Visit Type: follow-up")
	assert.Contains(t, prompt, "Chief Complaint: persistent cough")
	assert.Contains(t, prompt, "SOAP format")
}

func TestNoteInputRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*NoteInput)
		field  string
	}{
		{"missing patient", func(in *NoteInput) { in.Patient = nil }, "patientInfo"},
		{"missing name", func(in *NoteInput) { in.Patient.Name = "" }, "patientInfo.name"},
		{"missing age", func(in *NoteInput) { in.Patient.Age = nil }, "patientInfo.age"},
		{"missing gender", func(in *NoteInput) { in.Patient.Gender = "" }, "patientInfo.gender"},
		{"missing visit type", func(in *NoteInput) { in.VisitType = "" }, "visitType"},
		{"missing complaint", func(in *NoteInput) { in.ChiefComplaint = "" }, "chiefComplaint"},
		{"missing assessment", func(in *NoteInput) { in.Assessment = "" }, "assessment"},
		{"missing plan", func(in *NoteInput) { in.Plan = "" }, "plan"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validNoteInput()
			tc.mutate(&in)

			err := in.Validate()
			var opErr *aiops.Error
			require.ErrorAs(t, err, &opErr)
			assert.Equal(t, "Missing required field: "+tc.field, opErr.Message)
		})
	}
}

func TestSummaryPrompt(t *testing.T) {
	in := SummaryInput{
		VisitNotes: "Patient seen for diabetes management.",
		Duration:   intPtr(25),
		Procedures: []string{"A1C draw", "foot exam"},
	}

	prompt := summaryPrompt(in)
	assert.Contains(t, prompt, "Duration: 25 minutes")
	assert.Contains(t, prompt, "Procedures: A1C draw, foot exam")
	assert.Equal(t, prompt, summaryPrompt(in))
}

func TestSummaryInputRequiredFields(t *testing.T) {
	var opErr *aiops.Error

	err := (&SummaryInput{Duration: intPtr(25), Procedures: []string{}}).Validate()
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "Missing required field: visitNotes", opErr.Message)

	err = (&SummaryInput{VisitNotes: "n", Procedures: []string{}}).Validate()
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "Missing required field: duration", opErr.Message)

	err = (&SummaryInput{VisitNotes: "n", Duration: intPtr(25)}).Validate()
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "Missing required field: procedures", opErr.Message)

	// An empty procedure list is valid once the key is present.
	assert.NoError(t, (&SummaryInput{VisitNotes: "n", Duration: intPtr(25), Procedures: []string{}}).Validate())
}

func TestICDPrompt(t *testing.T) {
	in := ICDInput{
		ClinicalNote: "Patient presents with productive cough and fever.",
		Symptoms:     []string{"cough", "fever"},
		Diagnoses:    []string{"community-acquired pneumonia"},
	}

	prompt := icdPrompt(in)
	assert.Contains(t, prompt, "Symptoms: cough, fever")
	assert.Contains(t, prompt, "Diagnoses: community-acquired pneumonia")
	assert.Contains(t, prompt, "ICD-10")
}

func TestICDInputRequiredFields(t *testing.T) {
	var opErr *aiops.Error

	err := (&ICDInput{Symptoms: []string{"cough"}, Diagnoses: []string{"flu"}}).Validate()
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "Missing required field: clinicalNote", opErr.Message)

	err = (&ICDInput{ClinicalNote: "n", Diagnoses: []string{"flu"}}).Validate()
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "Missing required field: symptoms", opErr.Message)

	err = (&ICDInput{ClinicalNote: "n", Symptoms: []string{"cough"}}).Validate()
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "Missing required field: diagnoses", opErr.Message)
}
