package task

import (
	"errors"
	"testing"
)

func validDraft() Draft {
	return Draft{
		ClientName: "ACME Corp",
		WorkTitle:  "Brand refresh",
		DueDate:    "2024-06-10",
		Priority:   PriorityMedium,
		Category:   CategoryGeneral,
		Status:     StatusNew,
		CreatedBy:  "alice",
	}
}

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Draft)
		wantField string
	}{
		{
			name:   "valid draft",
			mutate: func(d *Draft) {},
		},
		{
			name:      "missing client name",
			mutate:    func(d *Draft) { d.ClientName = "  " },
			wantField: "client_name",
		},
		{
			name:      "missing work title",
			mutate:    func(d *Draft) { d.WorkTitle = "" },
			wantField: "work_title",
		},
		{
			name:      "missing due date",
			mutate:    func(d *Draft) { d.DueDate = "" },
			wantField: "due_date",
		},
		{
			name:      "malformed due date",
			mutate:    func(d *Draft) { d.DueDate = "10/06/2024" },
			wantField: "due_date",
		},
		{
			name:      "unknown status",
			mutate:    func(d *Draft) { d.Status = "Done" },
			wantField: "status",
		},
		{
			name:      "unknown priority",
			mutate:    func(d *Draft) { d.Priority = "Critical" },
			wantField: "priority",
		},
		{
			name:      "unknown category",
			mutate:    func(d *Draft) { d.Category = "Legal Work" },
			wantField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := draft.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestDraftApplyDefaults(t *testing.T) {
	draft := Draft{ClientName: "ACME", WorkTitle: "x", DueDate: "2024-06-10"}
	draft.ApplyDefaults()

	if draft.Status != StatusNew {
		t.Errorf("Status = %q, want %q", draft.Status, StatusNew)
	}
	if draft.Priority != PriorityMedium {
		t.Errorf("Priority = %q, want %q", draft.Priority, PriorityMedium)
	}
	if draft.Category != CategoryGeneral {
		t.Errorf("Category = %q, want %q", draft.Category, CategoryGeneral)
	}
}

func TestDraftApplyDefaults_KeepsExplicitValues(t *testing.T) {
	draft := Draft{Status: StatusCompleted, Priority: PriorityUrgent, Category: CategoryDesign}
	draft.ApplyDefaults()

	if draft.Status != StatusCompleted || draft.Priority != PriorityUrgent || draft.Category != CategoryDesign {
		t.Errorf("ApplyDefaults overwrote explicit values: %+v", draft)
	}
}

func TestNormalizeDueDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "already date-only", value: "2024-06-10", want: "2024-06-10"},
		{name: "instant truncated to date", value: "2024-06-10T15:04:05Z", want: "2024-06-10"},
		{name: "surrounding whitespace", value: " 2024-06-10 ", want: "2024-06-10"},
		{name: "garbage", value: "next tuesday", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDueDate(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeDueDate(%q) error = nil, want error", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeDueDate(%q) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeDueDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
