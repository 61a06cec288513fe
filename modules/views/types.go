package views

import (
	"context"

	"github.com/example/work-tracker/domain/calendar"
	domain "github.com/example/work-tracker/domain/task"
	"github.com/example/work-tracker/modules/task"
)

// DashboardRequest narrows the active-task board. All three filters
// compose with AND; blank values are identity.
type DashboardRequest struct {
	StatusFilter string `json:"status_filter,omitempty"`
	TypeFilter   string `json:"type_filter,omitempty"`
	Search       string `json:"search,omitempty"`
}

// DashboardResponse carries the filtered board plus metrics computed
// over the full active set, not the filtered one.
type DashboardResponse struct {
	Tasks   []task.TaskResponse  `json:"tasks"`
	Metrics domain.ActiveSummary `json:"metrics"`
	Showing int                  `json:"showing"`
	Total   int                  `json:"total"`
}

// CompletedRequest narrows the completed archive by search term only.
type CompletedRequest struct {
	Search string `json:"search,omitempty"`
}

// CompletedResponse carries the filtered archive plus metrics over the
// full completed set.
type CompletedResponse struct {
	Tasks   []task.TaskResponse     `json:"tasks"`
	Metrics domain.CompletedSummary `json:"metrics"`
	Showing int                     `json:"showing"`
	Total   int                     `json:"total"`
}

// CalendarRequest selects the month to render, as "2006-01". Blank
// means the current month.
type CalendarRequest struct {
	Month string `json:"month,omitempty"`
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date     string           `json:"date"`
	InMonth  bool             `json:"in_month"`
	Events   []calendar.Event `json:"events,omitempty"`
	Overflow int              `json:"overflow,omitempty"`
}

// CalendarResponse is the whole-week month grid, Monday first.
type CalendarResponse struct {
	Month    string        `json:"month"`
	Previous string        `json:"previous"`
	Next     string        `json:"next"`
	Weeks    int           `json:"weeks"`
	Days     []CalendarDay `json:"days"`
}

// ViewsPort is the contract driving adapters use to reach the views
// module.
type ViewsPort interface {
	Dashboard(ctx context.Context, req *DashboardRequest) (*DashboardResponse, error)
	Completed(ctx context.Context, req *CompletedRequest) (*CompletedResponse, error)
	Calendar(ctx context.Context, req *CalendarRequest) (*CalendarResponse, error)
}
