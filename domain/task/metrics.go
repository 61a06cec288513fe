package task

import "time"

// ActiveSummary aggregates a collection of active tasks.
type ActiveSummary struct {
	TotalActive int `json:"total_active"`
	DueToday    int `json:"due_today"`
	Overdue     int `json:"overdue"`
}

// CompletedSummary aggregates a collection of completed tasks.
type CompletedSummary struct {
	TotalCompleted int `json:"total_completed"`
	ThisWeek       int `json:"this_week"`
}

// thisWeekWindow is the rolling "this week" span measured backward from
// now, not an aligned calendar week.
const thisWeekWindow = 7 * 24 * time.Hour

// ActiveMetrics aggregates tasks the caller has already narrowed to the
// active statuses (New, In Progress). DueToday compares calendar days in
// now's location. Overdue counts tasks whose due date lies strictly
// before now's calendar day: a task due today is due, not overdue, no
// matter the hour. Tasks with an unparseable due date are counted in
// the total only, since validation keeps them out of the store.
func ActiveMetrics(tasks []Task, now time.Time) ActiveSummary {
	summary := ActiveSummary{TotalActive: len(tasks)}

	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	for _, t := range tasks {
		due, err := t.Due(now.Location())
		if err != nil {
			continue
		}
		if due.Equal(today) {
			summary.DueToday++
		}
		if due.Before(today) && t.Status != StatusCompleted {
			summary.Overdue++
		}
	}
	return summary
}

// CompletedMetrics aggregates tasks the caller has already narrowed to
// status Completed. ThisWeek counts completions within the rolling
// seven-day window ending at now.
func CompletedMetrics(tasks []Task, now time.Time) CompletedSummary {
	summary := CompletedSummary{TotalCompleted: len(tasks)}

	weekAgo := now.Add(-thisWeekWindow)
	for _, t := range tasks {
		if t.CompletedAt != nil && !t.CompletedAt.Before(weekAgo) {
			summary.ThisWeek++
		}
	}
	return summary
}
