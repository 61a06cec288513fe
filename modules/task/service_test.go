package task

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/example/work-tracker/domain/task"
)

func setupTestModule(t *testing.T) *TaskModule {
	t.Helper()
	return &TaskModule{repo: setupTestRepo(t)}
}

func TestCreateTask_AppliesDefaults(t *testing.T) {
	m := setupTestModule(t)

	resp, err := m.createTask(context.Background(), CreateTaskRequest{
		ClientName: "ACME Corp",
		WorkTitle:  "Logo refresh",
		DueDate:    "2024-06-10",
		CreatedBy:  "Alice",
	}, nil)
	if err != nil {
		t.Fatalf("createTask failed: %v", err)
	}

	if resp.ID == "" {
		t.Error("expected a generated id")
	}
	if resp.Status != string(domain.StatusNew) {
		t.Errorf("expected default status New, got %q", resp.Status)
	}
	if resp.Priority != string(domain.PriorityMedium) {
		t.Errorf("expected default priority Medium, got %q", resp.Priority)
	}
	if resp.Category != string(domain.CategoryGeneral) {
		t.Errorf("expected default category General Work, got %q", resp.Category)
	}
	if resp.CompletedAt != nil {
		t.Errorf("expected nil completed_at, got %v", resp.CompletedAt)
	}
}

func TestCreateTask_Validation(t *testing.T) {
	m := setupTestModule(t)

	tests := []struct {
		name      string
		req       CreateTaskRequest
		wantField string
	}{
		{
			name:      "missing client name",
			req:       CreateTaskRequest{WorkTitle: "Logo", DueDate: "2024-06-10", CreatedBy: "Alice"},
			wantField: "client_name",
		},
		{
			name:      "missing work title",
			req:       CreateTaskRequest{ClientName: "ACME", DueDate: "2024-06-10", CreatedBy: "Alice"},
			wantField: "work_title",
		},
		{
			name:      "missing due date",
			req:       CreateTaskRequest{ClientName: "ACME", WorkTitle: "Logo", CreatedBy: "Alice"},
			wantField: "due_date",
		},
		{
			name:      "malformed due date",
			req:       CreateTaskRequest{ClientName: "ACME", WorkTitle: "Logo", DueDate: "June 10th", CreatedBy: "Alice"},
			wantField: "due_date",
		},
		{
			name:      "unknown priority",
			req:       CreateTaskRequest{ClientName: "ACME", WorkTitle: "Logo", DueDate: "2024-06-10", Priority: "Critical", CreatedBy: "Alice"},
			wantField: "priority",
		},
		{
			name:      "missing created by",
			req:       CreateTaskRequest{ClientName: "ACME", WorkTitle: "Logo", DueDate: "2024-06-10"},
			wantField: "created_by",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.createTask(context.Background(), tt.req, nil)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
		})
	}
}

func TestCreateTask_CompletedAtCreation(t *testing.T) {
	m := setupTestModule(t)

	before := time.Now()
	resp, err := m.createTask(context.Background(), CreateTaskRequest{
		ClientName: "ACME Corp",
		WorkTitle:  "Backfilled work",
		DueDate:    "2024-06-10",
		Status:     string(domain.StatusCompleted),
		CreatedBy:  "Alice",
	}, nil)
	if err != nil {
		t.Fatalf("createTask failed: %v", err)
	}

	if resp.Status != string(domain.StatusCompleted) {
		t.Errorf("expected status Completed, got %q", resp.Status)
	}
	if resp.CompletedAt == nil {
		t.Fatal("expected completed_at stamped at creation")
	}
	if resp.CompletedAt.Before(before) {
		t.Errorf("completed_at %v predates the call", resp.CompletedAt)
	}
}

func TestUpdateStatus_RestampsOnRepeatCompletion(t *testing.T) {
	m := setupTestModule(t)

	created, err := m.createTask(context.Background(), CreateTaskRequest{
		ClientName: "ACME Corp",
		WorkTitle:  "Logo refresh",
		DueDate:    "2024-06-10",
		CreatedBy:  "Alice",
	}, nil)
	if err != nil {
		t.Fatalf("createTask failed: %v", err)
	}

	first, err := m.updateStatus(context.Background(), UpdateStatusRequest{
		TaskID: created.ID,
		Status: string(domain.StatusCompleted),
	}, nil)
	if err != nil {
		t.Fatalf("updateStatus failed: %v", err)
	}
	if first.CompletedAt == nil {
		t.Fatal("expected completed_at after first completion")
	}

	time.Sleep(5 * time.Millisecond)

	second, err := m.updateStatus(context.Background(), UpdateStatusRequest{
		TaskID: created.ID,
		Status: string(domain.StatusCompleted),
	}, nil)
	if err != nil {
		t.Fatalf("updateStatus failed: %v", err)
	}
	if second.CompletedAt == nil {
		t.Fatal("expected completed_at after repeat completion")
	}
	if !second.CompletedAt.After(*first.CompletedAt) {
		t.Errorf("repeat completion did not re-stamp: first %v, second %v", first.CompletedAt, second.CompletedAt)
	}
}

func TestUpdateStatus_ClearsOnReactivation(t *testing.T) {
	m := setupTestModule(t)

	created, err := m.createTask(context.Background(), CreateTaskRequest{
		ClientName: "ACME Corp",
		WorkTitle:  "Logo refresh",
		DueDate:    "2024-06-10",
		Status:     string(domain.StatusCompleted),
		CreatedBy:  "Alice",
	}, nil)
	if err != nil {
		t.Fatalf("createTask failed: %v", err)
	}

	resp, err := m.updateStatus(context.Background(), UpdateStatusRequest{
		TaskID: created.ID,
		Status: string(domain.StatusInProgress),
	}, nil)
	if err != nil {
		t.Fatalf("updateStatus failed: %v", err)
	}
	if resp.Status != string(domain.StatusInProgress) {
		t.Errorf("expected status In Progress, got %q", resp.Status)
	}
	if resp.CompletedAt != nil {
		t.Errorf("expected completed_at cleared, got %v", resp.CompletedAt)
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	m := setupTestModule(t)

	_, err := m.updateStatus(context.Background(), UpdateStatusRequest{
		TaskID: "t1",
		Status: "Archived",
	}, nil)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	m := setupTestModule(t)

	_, err := m.updateStatus(context.Background(), UpdateStatusRequest{
		TaskID: "missing",
		Status: string(domain.StatusCompleted),
	}, nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateTask_NeverTouchesLifecycle(t *testing.T) {
	m := setupTestModule(t)

	created, err := m.createTask(context.Background(), CreateTaskRequest{
		ClientName: "ACME Corp",
		WorkTitle:  "Logo refresh",
		DueDate:    "2024-06-10",
		Status:     string(domain.StatusCompleted),
		CreatedBy:  "Alice",
	}, nil)
	if err != nil {
		t.Fatalf("createTask failed: %v", err)
	}

	resp, err := m.updateTask(context.Background(), UpdateTaskRequest{
		TaskID:     created.ID,
		ClientName: "Globex",
		WorkTitle:  "Logo refresh v2",
		DueDate:    "2024-07-01",
		Priority:   string(domain.PriorityHigh),
	}, nil)
	if err != nil {
		t.Fatalf("updateTask failed: %v", err)
	}

	if resp.ClientName != "Globex" || resp.WorkTitle != "Logo refresh v2" {
		t.Errorf("edit did not apply: %+v", resp)
	}
	if resp.Status != string(domain.StatusCompleted) {
		t.Errorf("edit changed status to %q", resp.Status)
	}
	if resp.CompletedAt == nil {
		t.Error("edit cleared completed_at")
	}
	if resp.CreatedBy != "Alice" {
		t.Errorf("edit changed created_by to %q", resp.CreatedBy)
	}
}

func TestListTasks_UnknownStatusRejected(t *testing.T) {
	m := setupTestModule(t)

	_, err := m.listTasks(context.Background(), ListTasksRequest{
		Statuses: []string{"Archived"},
	}, nil)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	m := setupTestModule(t)

	created, err := m.createTask(context.Background(), CreateTaskRequest{
		ClientName: "ACME Corp",
		WorkTitle:  "Logo refresh",
		DueDate:    "2024-06-10",
		CreatedBy:  "Alice",
	}, nil)
	if err != nil {
		t.Fatalf("createTask failed: %v", err)
	}

	resp, err := m.deleteTask(context.Background(), DeleteTaskRequest{TaskID: created.ID}, nil)
	if err != nil {
		t.Fatalf("deleteTask failed: %v", err)
	}
	if !resp.Deleted {
		t.Error("expected Deleted true")
	}

	_, err = m.getTask(context.Background(), GetTaskRequest{TaskID: created.ID}, nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
