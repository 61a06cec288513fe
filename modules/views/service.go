package views

import (
	"context"
	"time"

	"github.com/go-monolith/mono"

	"github.com/example/work-tracker/domain/calendar"
	domain "github.com/example/work-tracker/domain/task"
	"github.com/example/work-tracker/modules/task"
)

// dashboard assembles the active-task board: the full active set drives
// the metric cards, the filters narrow only the visible list.
func (m *ViewsModule) dashboard(ctx context.Context, req DashboardRequest, _ *mono.Msg) (DashboardResponse, error) {
	listed, err := m.taskPort.ListTasks(ctx, &task.ListTasksRequest{
		Statuses: []string{string(domain.StatusNew), string(domain.StatusInProgress)},
		OrderBy:  string(task.OrderCreatedAtDesc),
	})
	if err != nil {
		return DashboardResponse{}, err
	}

	active := toDomainTasks(listed.Tasks)
	filtered := domain.Filter(active,
		domain.StatusFilter(req.StatusFilter),
		domain.TypeFilter(req.TypeFilter),
		req.Search,
	)

	return DashboardResponse{
		Tasks:   toTaskResponses(filtered),
		Metrics: domain.ActiveMetrics(active, m.now()),
		Showing: len(filtered),
		Total:   len(active),
	}, nil
}

// completed assembles the completed archive, most recently finished
// first.
func (m *ViewsModule) completed(ctx context.Context, req CompletedRequest, _ *mono.Msg) (CompletedResponse, error) {
	listed, err := m.taskPort.ListTasks(ctx, &task.ListTasksRequest{
		Statuses: []string{string(domain.StatusCompleted)},
		OrderBy:  string(task.OrderCompletedAtDesc),
	})
	if err != nil {
		return CompletedResponse{}, err
	}

	all := toDomainTasks(listed.Tasks)
	filtered := make([]domain.Task, 0, len(all))
	for _, t := range all {
		if domain.MatchesSearch(t, req.Search) {
			filtered = append(filtered, t)
		}
	}

	return CompletedResponse{
		Tasks:   toTaskResponses(filtered),
		Metrics: domain.CompletedMetrics(all, m.now()),
		Showing: len(filtered),
		Total:   len(all),
	}, nil
}

// calendarView assembles the month grid over every task, whatever its
// status. A blank month falls back to the current one.
func (m *ViewsModule) calendarView(ctx context.Context, req CalendarRequest, _ *mono.Msg) (CalendarResponse, error) {
	ref := calendar.ReferenceOf(m.now())
	if req.Month != "" {
		parsed, err := calendar.ParseReference(req.Month)
		if err != nil {
			return CalendarResponse{}, &domain.ValidationError{Field: "month", Reason: "must be formatted YYYY-MM"}
		}
		ref = parsed
	}

	listed, err := m.taskPort.ListTasks(ctx, &task.ListTasksRequest{
		OrderBy: string(task.OrderDueDateAsc),
	})
	if err != nil {
		return CalendarResponse{}, err
	}

	grid := calendar.BuildMonthGrid(toDomainTasks(listed.Tasks), ref.Year, ref.Month)

	response := CalendarResponse{
		Month:    ref.String(),
		Previous: ref.Previous().String(),
		Next:     ref.Next().String(),
		Weeks:    grid.Weeks,
		Days:     make([]CalendarDay, 0, len(grid.Days)),
	}
	for _, day := range grid.Days {
		response.Days = append(response.Days, CalendarDay{
			Date:     day.Date.Format(domain.DateLayout),
			InMonth:  day.InMonth,
			Events:   day.Events,
			Overflow: day.Overflow,
		})
	}
	return response, nil
}

// now resolves the module clock, defaulting to the wall clock. Tests
// pin it.
func (m *ViewsModule) now() time.Time {
	if m.clock != nil {
		return m.clock()
	}
	return time.Now()
}

func toDomainTasks(responses []task.TaskResponse) []domain.Task {
	tasks := make([]domain.Task, 0, len(responses))
	for _, r := range responses {
		tasks = append(tasks, domain.Task{
			ID:          r.ID,
			ClientName:  r.ClientName,
			WorkTitle:   r.WorkTitle,
			DueDate:     r.DueDate,
			Assignee:    r.Assignee,
			Priority:    domain.Priority(r.Priority),
			Category:    domain.Category(r.Category),
			Description: r.Description,
			Status:      domain.Status(r.Status),
			CreatedBy:   r.CreatedBy,
			CreatedAt:   r.CreatedAt,
			CompletedAt: r.CompletedAt,
		})
	}
	return tasks
}

func toTaskResponses(tasks []domain.Task) []task.TaskResponse {
	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, task.TaskResponse{
			ID:          t.ID,
			ClientName:  t.ClientName,
			WorkTitle:   t.WorkTitle,
			DueDate:     t.DueDate,
			Assignee:    t.Assignee,
			Priority:    string(t.Priority),
			Category:    string(t.Category),
			Description: t.Description,
			Status:      string(t.Status),
			CreatedBy:   t.CreatedBy,
			CreatedAt:   t.CreatedAt,
			CompletedAt: t.CompletedAt,
		})
	}
	return responses
}
