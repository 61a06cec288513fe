// Package calendar turns a task collection into a month grid of day
// buckets for calendar rendering. The transform is stateless: the grid
// is fully re-derivable from the tasks and a reference month.
package calendar

import (
	"fmt"
	"time"

	"github.com/example/work-tracker/domain/task"
)

// Event is the lightweight calendar record for one task due on a day.
type Event struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Client      string        `json:"client"`
	Status      task.Status   `json:"status"`
	Priority    task.Priority `json:"priority"`
	Category    task.Category `json:"category"`
	Assignee    string        `json:"assignee,omitempty"`
	Description string        `json:"description,omitempty"`
}

// Day is one cell of the month grid. Events holds the full ordered
// bucket for the date; a cell renders its first event inline and shows
// the rest behind an overflow indicator.
type Day struct {
	Date     time.Time `json:"date"`
	InMonth  bool      `json:"in_month"`
	Events   []Event   `json:"events,omitempty"`
	Overflow int       `json:"overflow"`
}

// Inline returns the single event a day cell displays directly, if any.
func (d Day) Inline() (Event, bool) {
	if len(d.Events) == 0 {
		return Event{}, false
	}
	return d.Events[0], true
}

// MonthGrid is a whole-week span of days covering one reference month,
// from the Monday on or before the 1st through the Sunday on or after
// the last day. Days outside the month stay in the grid, flagged via
// Day.InMonth, for muted rendering.
type MonthGrid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
	Weeks int        `json:"weeks"`
	Days  []Day      `json:"days"`
}

// BuildMonthGrid buckets tasks by exact due date and lays the buckets
// onto the grid for the given reference month. Tasks keep their input
// order within a bucket. Tasks without a parseable due date are skipped;
// validation keeps them out of the store in the first place.
func BuildMonthGrid(tasks []task.Task, year int, month time.Month) MonthGrid {
	buckets := make(map[string][]Event)
	for _, t := range tasks {
		if _, err := time.Parse(task.DateLayout, t.DueDate); err != nil {
			continue
		}
		buckets[t.DueDate] = append(buckets[t.DueDate], Event{
			ID:          t.ID,
			Title:       t.WorkTitle,
			Client:      t.ClientName,
			Status:      t.Status,
			Priority:    t.Priority,
			Category:    t.Category,
			Assignee:    t.Assignee,
			Description: t.Description,
		})
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	start := startOfWeek(first)
	end := endOfWeek(last)

	grid := MonthGrid{
		Year:  year,
		Month: month,
		Start: start,
		End:   end,
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		events := buckets[day.Format(task.DateLayout)]
		overflow := 0
		if len(events) > 1 {
			overflow = len(events) - 1
		}
		grid.Days = append(grid.Days, Day{
			Date:     day,
			InMonth:  day.Month() == month && day.Year() == year,
			Events:   events,
			Overflow: overflow,
		})
	}
	grid.Weeks = len(grid.Days) / 7

	return grid
}

// startOfWeek returns the Monday on or before d.
func startOfWeek(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// endOfWeek returns the Sunday on or after d.
func endOfWeek(d time.Time) time.Time {
	offset := (7 - int(d.Weekday())) % 7
	return d.AddDate(0, 0, offset)
}

// Reference identifies the month a calendar view is anchored to.
// Navigation only ever replaces the reference; nothing about the grid
// itself is incremental.
type Reference struct {
	Year  int
	Month time.Month
}

// ReferenceOf returns the reference month containing t.
func ReferenceOf(t time.Time) Reference {
	return Reference{Year: t.Year(), Month: t.Month()}
}

// ParseReference parses a YYYY-MM value.
func ParseReference(value string) (Reference, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return Reference{}, fmt.Errorf("invalid month %q: expected YYYY-MM", value)
	}
	return ReferenceOf(t), nil
}

// String formats the reference as YYYY-MM.
func (r Reference) String() string {
	return fmt.Sprintf("%04d-%02d", r.Year, int(r.Month))
}

// Previous returns the reference one month back.
func (r Reference) Previous() Reference {
	t := time.Date(r.Year, r.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return ReferenceOf(t)
}

// Next returns the reference one month forward.
func (r Reference) Next() Reference {
	t := time.Date(r.Year, r.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return ReferenceOf(t)
}
