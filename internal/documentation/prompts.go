package docs

import (
	"encoding/json"
	"fmt"

	"ehr-dashboard-api/internal/aiops"
)

type PatientInfo struct {
	Name   string `json:"name"`
	Age    *int   `json:"age"`
	Gender string `json:"gender"`
	MRN    string `json:"mrn"`
}

// VisitDetails describes the encounter. Date is supplied by the caller so
// note generation never reads the clock itself.
type VisitDetails struct {
	Date           string `json:"date"`
	Type           string `json:"type"`
	ChiefComplaint string `json:"chiefComplaint"`
}

type SOAPInput struct {
	Patient     *PatientInfo   `json:"patientInfo"`
	Visit       *VisitDetails  `json:"visitDetails"`
	Symptoms    string         `json:"symptoms"`
	Vitals      map[string]any `json:"vitals"`
	Examination string         `json:"examination"`
	Diagnosis   string         `json:"diagnosis"`
	Treatment   string         `json:"treatment"`
}

// Validate enforces the SOAP note policy: every field is required.
func (in *SOAPInput) Validate() error {
	switch {
	case in.Patient == nil:
		return aiops.MissingField("patientInfo")
	case in.Patient.Name == "":
		return aiops.MissingField("patientInfo.name")
	case in.Patient.Age == nil:
		return aiops.MissingField("patientInfo.age")
	case in.Patient.Gender == "":
		return aiops.MissingField("patientInfo.gender")
	case in.Patient.MRN == "":
		return aiops.MissingField("patientInfo.mrn")
	case in.Visit == nil:
		return aiops.MissingField("visitDetails")
	case in.Visit.Date == "":
		return aiops.MissingField("visitDetails.date")
	case in.Visit.Type == "":
		return aiops.MissingField("visitDetails.type")
	case in.Visit.ChiefComplaint == "":
		return aiops.MissingField("visitDetails.chiefComplaint")
	case in.Symptoms == "":
		return aiops.MissingField("symptoms")
	case in.Vitals == nil:
		return aiops.MissingField("vitals")
	case in.Examination == "":
		return aiops.MissingField("examination")
	case in.Diagnosis == "":
		return aiops.MissingField("diagnosis")
	case in.Treatment == "":
		return aiops.MissingField("treatment")
	}
	return nil
}

type TranscriptionInput struct {
	AudioTranscript string `json:"audioTranscript"`
	Context         string `json:"context"`
}

// Validate enforces the transcribe_voice policy: the transcript is required,
// clinical context falls back to a placeholder.
func (in *TranscriptionInput) Validate() error {
	if in.AudioTranscript == "" {
		return aiops.MissingField("audioTranscript")
	}
	return nil
}

type ExtractionInput struct {
	DocumentText   string `json:"documentText"`
	ExtractionType string `json:"extractionType"`
}

// Validate enforces the extract_medical_info policy: the document text is
// required, the extraction type defaults to "general".
func (in *ExtractionInput) Validate() error {
	if in.DocumentText == "" {
		return aiops.MissingField("documentText")
	}
	return nil
}

type DischargeInput struct {
	AdmissionDate string `json:"admissionDate"`
	DischargeDate string `json:"dischargeDate"`
	Diagnosis     string `json:"diagnosis"`
	Procedures    string `json:"procedures"`
	Medications   string `json:"medications"`
	FollowUp      string `json:"followUp"`
}

func (in *DischargeInput) Validate() error {
	switch {
	case in.AdmissionDate == "":
		return aiops.MissingField("admissionDate")
	case in.DischargeDate == "":
		return aiops.MissingField("dischargeDate")
	case in.Diagnosis == "":
		return aiops.MissingField("diagnosis")
	case in.Procedures == "":
		return aiops.MissingField("procedures")
	case in.Medications == "":
		return aiops.MissingField("medications")
	case in.FollowUp == "":
		return aiops.MissingField("followUp")
	}
	return nil
}

type ProgressInput struct {
	Patient       *PatientInfo `json:"patientInfo"`
	Interval      string       `json:"interval"`
	CurrentStatus string       `json:"currentStatus"`
	Changes       string       `json:"changes"`
	Plan          string       `json:"plan"`
}

func (in *ProgressInput) Validate() error {
	switch {
	case in.Patient == nil:
		return aiops.MissingField("patientInfo")
	case in.Patient.Name == "":
		return aiops.MissingField("patientInfo.name")
	case in.Patient.MRN == "":
		return aiops.MissingField("patientInfo.mrn")
	case in.Interval == "":
		return aiops.MissingField("interval")
	case in.CurrentStatus == "":
		return aiops.MissingField("currentStatus")
	case in.Changes == "":
		return aiops.MissingField("changes")
	case in.Plan == "":
		return aiops.MissingField("plan")
	}
	return nil
}

const (
	noneProvided      = "None provided"
	defaultExtraction = "general"
)

func soapPrompt(in SOAPInput) string {
	vitals, _ := json.Marshal(in.Vitals)
	return fmt.Sprintf(`Generate a comprehensive SOAP note for the following patient encounter:

Patient Information:
- Name: %s
- Age: %d
- Gender: %s
- MRN: %s

Visit Details:
- Date: %s
- Type: %s
- Chief Complaint: %s

Clinical Information:
- Symptoms: %s
- Vital Signs: %s
- Physical Examination: %s
- Assessment: %s
- Treatment Plan: %s

Please format as a professional SOAP note with:
- Subjective: Patient's reported symptoms and history
- Objective: Vital signs, physical exam findings, and test results
- Assessment: Clinical impression and diagnosis
- Plan: Treatment plan, medications, follow-up instructions

Include appropriate medical terminology and ensure clinical accuracy.`,
		in.Patient.Name,
		*in.Patient.Age,
		in.Patient.Gender,
		in.Patient.MRN,
		in.Visit.Date,
		in.Visit.Type,
		in.Visit.ChiefComplaint,
		in.Symptoms,
		string(vitals),
		in.Examination,
		in.Diagnosis,
		in.Treatment,
	)
}

func transcriptionPrompt(in TranscriptionInput) string {
	context := in.Context
	if context == "" {
		context = noneProvided
	}
	return fmt.Sprintf(`Convert the following voice transcription into a structured clinical note:

Audio Transcript: "%s"

Clinical Context: %s

Please clean up the transcription, correct any medical terminology, and format it into a professional clinical note. Include:
- Proper medical terminology
- Structured format (SOAP if applicable)
- Corrected grammar and punctuation
- Relevant clinical details organized logically`,
		in.AudioTranscript,
		context,
	)
}

func extractionPrompt(in ExtractionInput) string {
	extractionType := in.ExtractionType
	if extractionType == "" {
		extractionType = defaultExtraction
	}
	return fmt.Sprintf(`Extract the following medical information from this document:

Document: "%s"

Extraction Type: %s

Please extract and structure the relevant medical information including:
- Patient demographics
- Medical history
- Current medications
- Allergies
- Diagnoses
- Procedures
- Lab results
- Vital signs

Format the extracted information in a clear, structured manner.`,
		in.DocumentText,
		extractionType,
	)
}

func dischargePrompt(in DischargeInput) string {
	return fmt.Sprintf(`Generate a comprehensive discharge summary with the following information:

Admission Date: %s
Discharge Date: %s
Primary Diagnosis: %s
Procedures Performed: %s
Discharge Medications: %s
Follow-up Instructions: %s

Please create a professional discharge summary including:
- Hospital course summary
- Condition at discharge
- Discharge medications with instructions
- Follow-up appointments and care instructions
- Patient education provided
- Discharge disposition

Use appropriate medical terminology and ensure completeness for continuity of care.`,
		in.AdmissionDate,
		in.DischargeDate,
		in.Diagnosis,
		in.Procedures,
		in.Medications,
		in.FollowUp,
	)
}

func progressPrompt(in ProgressInput) string {
	return fmt.Sprintf(`Create a progress note for the following patient:

Patient: %s (%s)
Interval: %s
Current Status: %s
Changes Since Last Visit: %s
Updated Plan: %s

Generate a concise but comprehensive progress note including:
- Current clinical status
- Response to treatment
- Any new symptoms or concerns
- Updated assessment
- Modified treatment plan
- Next steps and follow-up

Format professionally for medical record documentation.`,
		in.Patient.Name,
		in.Patient.MRN,
		in.Interval,
		in.CurrentStatus,
		in.Changes,
		in.Plan,
	)
}
