package task

import (
	"context"
	"time"
)

// CreateTaskRequest is the request for creating a task. CreatedBy is
// the display name of the session submitting the work; the caller must
// pass it explicitly, there is no ambient current-user state.
type CreateTaskRequest struct {
	ClientName  string `json:"client_name"`
	WorkTitle   string `json:"work_title"`
	DueDate     string `json:"due_date"`
	Assignee    string `json:"assignee,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	CreatedBy   string `json:"created_by"`
}

// GetTaskRequest is the request for fetching one task.
type GetTaskRequest struct {
	TaskID string `json:"task_id"`
}

// ListTasksRequest is the request for listing tasks. Statuses narrows
// by status set (empty means all); OrderBy is one of the Order values.
type ListTasksRequest struct {
	Statuses []string `json:"statuses,omitempty"`
	OrderBy  string   `json:"order_by,omitempty"`
}

// ListTasksResponse is the response for listing tasks, in store order.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// UpdateStatusRequest is the request for a status transition.
type UpdateStatusRequest struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// UpdateTaskRequest is the request for a full-record edit. Status and
// completed_at are deliberately absent: transitions go through
// update-status only.
type UpdateTaskRequest struct {
	TaskID      string `json:"task_id"`
	ClientName  string `json:"client_name"`
	WorkTitle   string `json:"work_title"`
	DueDate     string `json:"due_date"`
	Assignee    string `json:"assignee,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Deleted bool   `json:"deleted"`
	TaskID  string `json:"task_id"`
}

// TaskResponse is the wire form of a single task.
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

// TaskPort is the contract driving adapters use to reach the task
// module. Every mutation is followed by a fresh List on the caller's
// side; responses here are never patched into a cached view.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, taskID string) (*TaskResponse, error)
	ListTasks(ctx context.Context, req *ListTasksRequest) (*ListTasksResponse, error)
	UpdateStatus(ctx context.Context, taskID, status string) (*TaskResponse, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error)
	DeleteTask(ctx context.Context, taskID string) error
}
