package tasks

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"ehr-dashboard-api/internal/platform/auth"
	"ehr-dashboard-api/internal/platform/datastore"
)

const taskColumns = `*, assigned_to_profile:profiles!tasks_assigned_to_fkey(id, full_name, role), created_by_profile:profiles!tasks_created_by_fkey(id, full_name, role), patient:patients(id, first_name, last_name, medical_record_number)`

// Handler serves the task-coordination endpoints backed by the external
// data store.
type Handler struct {
	store *datastore.Client
	log   zerolog.Logger
}

func NewHandler(store *datastore.Client, log zerolog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/tasks", h.ListTasks)
	r.Post("/tasks", h.CreateTask)
	r.Patch("/tasks/{id}", h.UpdateTask)
}

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	query := h.store.From("tasks").
		Select(taskColumns).
		Order("created_at", false)

	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Eq("status", status)
	}
	if assignedTo := r.URL.Query().Get("assigned_to"); assignedTo != "" {
		query = query.Eq("assigned_to", assignedTo)
	}

	tasks := []Task{}
	if err := query.Get(r.Context(), &tasks); err != nil {
		h.log.Error().Err(err).Msg("failed to fetch tasks")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch tasks"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	AssignedTo  string     `json:"assigned_to"`
	PatientID   string     `json:"patient_id"`
	DueDate     *time.Time `json:"due_date"`
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request"})
		return
	}
	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return
	}

	row := map[string]any{
		"title":      req.Title,
		"created_by": user.ID,
		"status":     "pending",
	}
	if req.Description != "" {
		row["description"] = req.Description
	}
	if req.Priority != "" {
		row["priority"] = req.Priority
	}
	if req.AssignedTo != "" {
		row["assigned_to"] = req.AssignedTo
	}
	if req.PatientID != "" {
		row["patient_id"] = req.PatientID
	}
	if req.DueDate != nil {
		row["due_date"] = req.DueDate
	}

	var task Task
	err := h.store.From("tasks").
		Select(taskColumns).
		Insert(r.Context(), row, &task)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create task")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create task"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"task": task})
}

type updateTaskRequest struct {
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	AssignedTo string     `json:"assigned_to"`
	DueDate    *time.Time `json:"due_date"`
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request"})
		return
	}

	patch := map[string]any{}
	if req.Status != "" {
		patch["status"] = req.Status
		if req.Status == "completed" {
			patch["completed_at"] = time.Now().UTC()
		}
	}
	if req.Priority != "" {
		patch["priority"] = req.Priority
	}
	if req.AssignedTo != "" {
		patch["assigned_to"] = req.AssignedTo
	}
	if req.DueDate != nil {
		patch["due_date"] = req.DueDate
	}
	if len(patch) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no fields to update"})
		return
	}

	var task Task
	err := h.store.From("tasks").
		Select(taskColumns).
		Eq("id", id).
		Update(r.Context(), patch, &task)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to update task")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update task"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"task": task})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
