package api

import (
	"time"

	"github.com/example/work-tracker/modules/views"
)

// StartSessionRequest is the HTTP request for opening a session.
type StartSessionRequest struct {
	DisplayName string `json:"display_name"`
}

// SessionResponse is the HTTP response for session endpoints.
type SessionResponse struct {
	Token       string `json:"token,omitempty"`
	DisplayName string `json:"display_name"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}

// CreateTaskRequest is the HTTP request for creating a task. The
// creator comes from the session, never from the body.
type CreateTaskRequest struct {
	ClientName  string `json:"client_name"`
	WorkTitle   string `json:"work_title"`
	DueDate     string `json:"due_date"`
	Assignee    string `json:"assignee"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateTaskRequest is the HTTP request for a full-record edit.
type UpdateTaskRequest struct {
	ClientName  string `json:"client_name"`
	WorkTitle   string `json:"work_title"`
	DueDate     string `json:"due_date"`
	Assignee    string `json:"assignee"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// UpdateStatusRequest is the HTTP request for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// TaskResponse is the HTTP response for a single task.
type TaskResponse struct {
	ID          string     `json:"id"`
	ClientName  string     `json:"client_name"`
	WorkTitle   string     `json:"work_title"`
	DueDate     string     `json:"due_date"`
	Assignee    string     `json:"assignee,omitempty"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ListTasksResponse is the HTTP response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// DashboardResponse is the HTTP response for the dashboard view.
type DashboardResponse = views.DashboardResponse

// CompletedResponse is the HTTP response for the completed view.
type CompletedResponse = views.CompletedResponse

// CalendarResponse is the HTTP response for the calendar view.
type CalendarResponse = views.CalendarResponse

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
