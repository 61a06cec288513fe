package task

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a task. There is no enforced ordering:
// any status may transition to any other by explicit user action.
type Status string

const (
	StatusNew        Status = "New"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "URGENT"
)

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Category is the kind of work a task represents.
type Category string

const (
	CategoryGeneral Category = "General Work"
	CategoryDesign  Category = "Design Work"
)

// Valid reports whether c is one of the known category values.
func (c Category) Valid() bool {
	switch c {
	case CategoryGeneral, CategoryDesign:
		return true
	}
	return false
}

// DateLayout is the wire format for due dates: an ISO calendar date
// with no time component.
const DateLayout = time.DateOnly

// Task is a trackable unit of client work with a due date and status.
type Task struct {
	ID          string     `gorm:"primarykey;size:36" json:"id"`
	ClientName  string     `gorm:"size:200;not null" json:"client_name"`
	WorkTitle   string     `gorm:"size:200;not null" json:"work_title"`
	DueDate     string     `gorm:"size:10;not null;index" json:"due_date"`
	Assignee    string     `gorm:"size:200" json:"assignee,omitempty"`
	Priority    Priority   `gorm:"size:20;not null" json:"priority"`
	Category    Category   `gorm:"size:30;not null" json:"category"`
	Description string     `gorm:"size:2000" json:"description,omitempty"`
	Status      Status     `gorm:"size:20;not null;index" json:"status"`
	CreatedBy   string     `gorm:"size:200;not null" json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}

// Due returns the due date as a midnight-start instant in loc.
func (t Task) Due(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, t.DueDate, loc)
}

// Active reports whether the task counts as active work.
func (t Task) Active() bool {
	return t.Status == StatusNew || t.Status == StatusInProgress
}

// Draft holds the caller-supplied fields of a task to be created.
// The store assigns id and created_at; completed_at is derived from the
// status (see ApplyTransition).
type Draft struct {
	ClientName  string
	WorkTitle   string
	DueDate     string
	Assignee    string
	Priority    Priority
	Category    Category
	Description string
	Status      Status
	CreatedBy   string
}

// ApplyDefaults fills the enum fields the submission form defaults when
// left empty: status New, priority Medium, category General Work.
func (d *Draft) ApplyDefaults() {
	if d.Status == "" {
		d.Status = StatusNew
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if d.Category == "" {
		d.Category = CategoryGeneral
	}
}

// Validate checks the draft before any repository call. Required fields
// missing or malformed block the submission with a ValidationError; no
// partial write happens.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.ClientName) == "" {
		return &ValidationError{Field: "client_name", Reason: "is required"}
	}
	if strings.TrimSpace(d.WorkTitle) == "" {
		return &ValidationError{Field: "work_title", Reason: "is required"}
	}
	if strings.TrimSpace(d.DueDate) == "" {
		return &ValidationError{Field: "due_date", Reason: "is required"}
	}
	if _, err := time.Parse(DateLayout, d.DueDate); err != nil {
		return &ValidationError{Field: "due_date", Reason: "must be a YYYY-MM-DD date"}
	}
	if !d.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "unknown status"}
	}
	if !d.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: "unknown priority"}
	}
	if !d.Category.Valid() {
		return &ValidationError{Field: "category", Reason: "unknown category"}
	}
	return nil
}

// NormalizeDueDate reduces a due date to its date-only form. It accepts
// a plain YYYY-MM-DD value or a full RFC 3339 instant, whose calendar
// date is kept and whose time component is dropped.
func NormalizeDueDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if _, err := time.Parse(DateLayout, value); err == nil {
		return value, nil
	}
	instant, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", &ValidationError{Field: "due_date", Reason: "must be a YYYY-MM-DD date"}
	}
	return instant.Format(DateLayout), nil
}
