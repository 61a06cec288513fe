package task

import "strings"

// StatusFilter narrows the dashboard to one active status, or none.
type StatusFilter string

const (
	StatusFilterAll        StatusFilter = "All"
	StatusFilterNew        StatusFilter = "New"
	StatusFilterInProgress StatusFilter = "In Progress"
)

// Matches reports whether t passes the status filter. The zero value
// behaves like All.
func (f StatusFilter) Matches(t Task) bool {
	switch f {
	case StatusFilterNew:
		return t.Status == StatusNew
	case StatusFilterInProgress:
		return t.Status == StatusInProgress
	}
	return true
}

// TypeFilter narrows the dashboard to one work category, or none.
type TypeFilter string

const (
	TypeFilterAll     TypeFilter = "All"
	TypeFilterGeneral TypeFilter = "General"
	TypeFilterDesign  TypeFilter = "Design"
)

// Matches reports whether t passes the type filter. Both the short
// form ("Design") and the full category name ("Design Work") are
// accepted. The zero value behaves like All.
func (f TypeFilter) Matches(t Task) bool {
	switch f {
	case TypeFilterGeneral, TypeFilter(CategoryGeneral):
		return t.Category == CategoryGeneral
	case TypeFilterDesign, TypeFilter(CategoryDesign):
		return t.Category == CategoryDesign
	}
	return true
}

// MatchesSearch reports whether the free-text term matches the task: a
// case-insensitive substring match against work title, client name,
// description, or assignee. Absent optional fields never match. A blank
// or whitespace-only term matches everything.
func MatchesSearch(t Task, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	term = strings.ToLower(term)

	for _, field := range []string{t.WorkTitle, t.ClientName, t.Description, t.Assignee} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Filter returns the tasks passing the categorical filters AND the
// search term, preserving input order. A blank term applies no text
// filtering at all, so the input comes back unchanged apart from the
// categorical narrowing.
func Filter(tasks []Task, status StatusFilter, category TypeFilter, term string) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !status.Matches(t) || !category.Matches(t) {
			continue
		}
		if !MatchesSearch(t, term) {
			continue
		}
		result = append(result, t)
	}
	return result
}
