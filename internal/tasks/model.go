package tasks

import "time"

// Profile is an embedded assignee/creator relation.
type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// PatientRef is the embedded patient relation.
type PatientRef struct {
	ID                  string `json:"id"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	MedicalRecordNumber string `json:"medical_record_number"`
}

// Task is one care-coordination work item.
type Task struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority,omitempty"`
	AssignedTo  string      `json:"assigned_to,omitempty"`
	CreatedBy   string      `json:"created_by"`
	PatientID   string      `json:"patient_id,omitempty"`
	DueDate     *time.Time  `json:"due_date,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	Assignee    *Profile    `json:"assigned_to_profile,omitempty"`
	Creator     *Profile    `json:"created_by_profile,omitempty"`
	Patient     *PatientRef `json:"patient,omitempty"`
}
