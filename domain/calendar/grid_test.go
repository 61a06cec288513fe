package calendar

import (
	"testing"
	"time"

	"github.com/example/work-tracker/domain/task"
)

func TestBuildMonthGrid_June2024Span(t *testing.T) {
	// June 2024 starts on a Saturday and ends on a Sunday: the grid runs
	// from Monday May 27 through Sunday June 30, five full weeks.
	grid := BuildMonthGrid(nil, 2024, time.June)

	if len(grid.Days) != 35 {
		t.Fatalf("len(Days) = %d, want 35", len(grid.Days))
	}
	if grid.Weeks != 5 {
		t.Errorf("Weeks = %d, want 5", grid.Weeks)
	}

	wantStart := time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	if !grid.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", grid.Start, wantStart)
	}
	if !grid.End.Equal(wantEnd) {
		t.Errorf("End = %v, want %v", grid.End, wantEnd)
	}

	if grid.Days[0].Date.Weekday() != time.Monday {
		t.Errorf("first day weekday = %v, want Monday", grid.Days[0].Date.Weekday())
	}
	if grid.Days[len(grid.Days)-1].Date.Weekday() != time.Sunday {
		t.Errorf("last day weekday = %v, want Sunday", grid.Days[len(grid.Days)-1].Date.Weekday())
	}

	// May 27-31 are in the span but flagged out-of-month.
	outOfMonth := 0
	for _, day := range grid.Days {
		if !day.InMonth {
			outOfMonth++
		}
	}
	if outOfMonth != 5 {
		t.Errorf("out-of-month days = %d, want 5", outOfMonth)
	}
}

func TestBuildMonthGrid_WholeWeeksAlways(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		wantDays int
	}{
		{2021, time.February, 28}, // starts Monday, 28 days: exactly 4 weeks
		{2024, time.June, 35},
		{2024, time.March, 35},
		{2024, time.September, 42}, // starts Sunday: six weeks
	}

	for _, tt := range tests {
		grid := BuildMonthGrid(nil, tt.year, tt.month)
		if len(grid.Days) != tt.wantDays {
			t.Errorf("%v %d: len(Days) = %d, want %d", tt.month, tt.year, len(grid.Days), tt.wantDays)
		}
		if len(grid.Days)%7 != 0 {
			t.Errorf("%v %d: %d days is not a whole number of weeks", tt.month, tt.year, len(grid.Days))
		}
	}
}

func TestBuildMonthGrid_EveryTaskInExactlyOneBucket(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", WorkTitle: "one", DueDate: "2024-06-03"},
		{ID: "b", WorkTitle: "two", DueDate: "2024-06-15"},
		{ID: "c", WorkTitle: "three", DueDate: "2024-06-30"},
		{ID: "d", WorkTitle: "outside", DueDate: "2024-07-02"},
	}

	grid := BuildMonthGrid(tasks, 2024, time.June)

	seen := map[string]int{}
	for _, day := range grid.Days {
		for _, event := range day.Events {
			seen[event.ID]++
		}
	}

	for _, id := range []string{"a", "b", "c"} {
		if seen[id] != 1 {
			t.Errorf("task %q appears %d times, want 1", id, seen[id])
		}
	}
	if seen["d"] != 0 {
		t.Errorf("task outside the span appears %d times, want 0", seen["d"])
	}
}

func TestBuildMonthGrid_OverflowPolicy(t *testing.T) {
	tasks := []task.Task{
		{ID: "first", WorkTitle: "alpha", ClientName: "ACME", DueDate: "2024-06-12"},
		{ID: "second", WorkTitle: "beta", ClientName: "Globex", DueDate: "2024-06-12"},
		{ID: "third", WorkTitle: "gamma", ClientName: "Initech", DueDate: "2024-06-12"},
	}

	grid := BuildMonthGrid(tasks, 2024, time.June)

	var day Day
	for _, d := range grid.Days {
		if d.Date.Format(task.DateLayout) == "2024-06-12" {
			day = d
			break
		}
	}

	inline, ok := day.Inline()
	if !ok {
		t.Fatal("expected an inline event")
	}
	if inline.ID != "first" {
		t.Errorf("inline event = %q, want %q (fetch order)", inline.ID, "first")
	}
	if day.Overflow != 2 {
		t.Errorf("Overflow = %d, want 2", day.Overflow)
	}

	if len(day.Events) != 3 {
		t.Fatalf("len(Events) = %d, want 3", len(day.Events))
	}
	for i, wantID := range []string{"first", "second", "third"} {
		if day.Events[i].ID != wantID {
			t.Errorf("Events[%d].ID = %q, want %q", i, day.Events[i].ID, wantID)
		}
	}
}

func TestBuildMonthGrid_SingleEventNoOverflow(t *testing.T) {
	tasks := []task.Task{{ID: "only", WorkTitle: "solo", DueDate: "2024-06-20"}}

	grid := BuildMonthGrid(tasks, 2024, time.June)

	for _, day := range grid.Days {
		if day.Date.Format(task.DateLayout) == "2024-06-20" {
			if day.Overflow != 0 {
				t.Errorf("Overflow = %d, want 0", day.Overflow)
			}
			return
		}
	}
	t.Fatal("2024-06-20 missing from grid")
}

func TestBuildMonthGrid_EventCarriesTaskFields(t *testing.T) {
	tasks := []task.Task{{
		ID:          "a",
		WorkTitle:   "Brand refresh",
		ClientName:  "ACME Corp",
		DueDate:     "2024-06-12",
		Status:      task.StatusInProgress,
		Priority:    task.PriorityUrgent,
		Category:    task.CategoryDesign,
		Assignee:    "Dana",
		Description: "new palette",
	}}

	grid := BuildMonthGrid(tasks, 2024, time.June)

	for _, day := range grid.Days {
		for _, event := range day.Events {
			if event.Title != "Brand refresh" || event.Client != "ACME Corp" ||
				event.Status != task.StatusInProgress || event.Priority != task.PriorityUrgent ||
				event.Category != task.CategoryDesign || event.Assignee != "Dana" ||
				event.Description != "new palette" {
				t.Errorf("event fields not carried over: %+v", event)
			}
			return
		}
	}
	t.Fatal("no event found")
}

func TestReferenceNavigation(t *testing.T) {
	ref := Reference{Year: 2024, Month: time.June}

	if prev := ref.Previous(); prev.Year != 2024 || prev.Month != time.May {
		t.Errorf("Previous() = %v, want 2024-05", prev)
	}
	if next := ref.Next(); next.Year != 2024 || next.Month != time.July {
		t.Errorf("Next() = %v, want 2024-07", next)
	}

	jan := Reference{Year: 2024, Month: time.January}
	if prev := jan.Previous(); prev.Year != 2023 || prev.Month != time.December {
		t.Errorf("Previous() across year = %v, want 2023-12", prev)
	}
	dec := Reference{Year: 2023, Month: time.December}
	if next := dec.Next(); next.Year != 2024 || next.Month != time.January {
		t.Errorf("Next() across year = %v, want 2024-01", next)
	}
}

func TestParseReference(t *testing.T) {
	ref, err := ParseReference("2024-06")
	if err != nil {
		t.Fatalf("ParseReference() error = %v", err)
	}
	if ref.Year != 2024 || ref.Month != time.June {
		t.Errorf("ParseReference() = %v, want 2024-06", ref)
	}
	if ref.String() != "2024-06" {
		t.Errorf("String() = %q, want %q", ref.String(), "2024-06")
	}

	if _, err := ParseReference("June 2024"); err == nil {
		t.Error("ParseReference with bad input should fail")
	}
}
