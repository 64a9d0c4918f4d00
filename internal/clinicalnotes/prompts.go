package clinicalnotes

import (
	"fmt"
	"strings"

	"ehr-dashboard-api/internal/aiops"
)

type PatientInfo struct {
	Name   string `json:"name"`
	Age    *int   `json:"age"`
	Gender string `json:"gender"`
}

type NoteInput struct {
	Patient        *PatientInfo `json:"patientInfo"`
	VisitType      string       `json:"visitType"`
	ChiefComplaint string       `json:"chiefComplaint"`
	Assessment     string       `json:"assessment"`
	Plan           string       `json:"plan"`
}

// Validate enforces the generate_note policy: every field is required.
func (in *NoteInput) Validate() error {
	switch {
	case in.Patient == nil:
		return aiops.MissingField("patientInfo")
	case in.Patient.Name == "":
		return aiops.MissingField("patientInfo.name")
	case in.Patient.Age == nil:
		return aiops.MissingField("patientInfo.age")
	case in.Patient.Gender == "":
		return aiops.MissingField("patientInfo.gender")
	case in.VisitType == "":
		return aiops.MissingField("visitType")
	case in.ChiefComplaint == "":
		return aiops.MissingField("chiefComplaint")
	case in.Assessment == "":
		return aiops.MissingField("assessment")
	case in.Plan == "":
		return aiops.MissingField("plan")
	}
	return nil
}

type SummaryInput struct {
	VisitNotes string   `json:"visitNotes"`
	Duration   *int     `json:"duration"`
	Procedures []string `json:"procedures"`
}

func (in *SummaryInput) Validate() error {
	switch {
	case in.VisitNotes == "":
		return aiops.MissingField("visitNotes")
	case in.Duration == nil:
		return aiops.MissingField("duration")
	case in.Procedures == nil:
		return aiops.MissingField("procedures")
	}
	return nil
}

type ICDInput struct {
	ClinicalNote string   `json:"clinicalNote"`
	Symptoms     []string `json:"symptoms"`
	Diagnoses    []string `json:"diagnoses"`
}

func (in *ICDInput) Validate() error {
	switch {
	case in.ClinicalNote == "":
		return aiops.MissingField("clinicalNote")
	case len(in.Symptoms) == 0:
		return aiops.MissingField("symptoms")
	case len(in.Diagnoses) == 0:
		return aiops.MissingField("diagnoses")
	}
	return nil
}

func notePrompt(in NoteInput) string {
	return fmt.Sprintf(`Generate a professional clinical note for the following patient visit:

Patient: %s (%d years old, %s)
Visit Type: %s
Chief Complaint: %s
Assessment: %s
Plan: %s

Format the note using standard medical documentation structure (SOAP format):
- Subjective
- Objective
- Assessment
- Plan

Use appropriate medical terminology and ensure the note is comprehensive yet concise.`,
		in.Patient.Name,
		*in.Patient.Age,
		in.Patient.Gender,
		in.VisitType,
		in.ChiefComplaint,
		in.Assessment,
		in.Plan,
	)
}

func summaryPrompt(in SummaryInput) string {
	return fmt.Sprintf(`Summarize the following patient visit information into a concise clinical summary:

Visit Notes: %s
Duration: %d minutes
Procedures: %s

Provide a brief but comprehensive summary highlighting key findings, decisions, and follow-up plans.`,
		in.VisitNotes,
		*in.Duration,
		strings.Join(in.Procedures, ", "),
	)
}

func icdPrompt(in ICDInput) string {
	return fmt.Sprintf(`Based on the following clinical information, suggest appropriate ICD-10 codes:

Clinical Note: %s
Symptoms: %s
Diagnoses: %s

Provide ICD-10 codes with descriptions and confidence levels. Format as:
Code: Description (Confidence: High/Medium/Low)`,
		in.ClinicalNote,
		strings.Join(in.Symptoms, ", "),
		strings.Join(in.Diagnoses, ", "),
	)
}
