package task

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono"
	"github.com/google/uuid"

	domain "github.com/example/work-tracker/domain/task"
	"github.com/example/work-tracker/events"
)

// createTask handles the create-task service request. Validation runs
// before any store call: a bad draft blocks the submission with no
// partial write.
func (m *TaskModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	draft := domain.Draft{
		ClientName:  req.ClientName,
		WorkTitle:   req.WorkTitle,
		DueDate:     req.DueDate,
		Assignee:    req.Assignee,
		Priority:    domain.Priority(req.Priority),
		Category:    domain.Category(req.Category),
		Description: req.Description,
		Status:      domain.Status(req.Status),
		CreatedBy:   req.CreatedBy,
	}
	draft.ApplyDefaults()

	if normalized, err := domain.NormalizeDueDate(draft.DueDate); err == nil {
		draft.DueDate = normalized
	}
	if err := draft.Validate(); err != nil {
		return TaskResponse{}, err
	}
	if draft.CreatedBy == "" {
		return TaskResponse{}, &domain.ValidationError{Field: "created_by", Reason: "is required"}
	}

	newTask := &domain.Task{
		ID:          uuid.New().String(),
		ClientName:  draft.ClientName,
		WorkTitle:   draft.WorkTitle,
		DueDate:     draft.DueDate,
		Assignee:    draft.Assignee,
		Priority:    draft.Priority,
		Category:    draft.Category,
		Description: draft.Description,
		Status:      draft.Status,
		CreatedBy:   draft.CreatedBy,
	}

	// A task created directly in Completed gets completed_at stamped at
	// creation, keeping status==Completed equivalent to a non-nil
	// completed_at from the first moment the record exists.
	if transition := domain.ApplyTransition(draft.Status, time.Now()); transition.CompletedAt != nil {
		newTask.CompletedAt = transition.CompletedAt
	}

	if err := m.repo.Create(newTask); err != nil {
		return TaskResponse{}, err
	}

	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:     newTask.ID,
			WorkTitle:  newTask.WorkTitle,
			ClientName: newTask.ClientName,
			Status:     string(newTask.Status),
			CreatedBy:  newTask.CreatedBy,
			CreatedAt:  newTask.CreatedAt,
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskCreated event for task %s: %v", newTask.ID, err)
		}
	}

	return toTaskResponse(*newTask), nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	found, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(found), nil
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(_ context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	criteria := ListCriteria{OrderBy: Order(req.OrderBy)}
	for _, status := range req.Statuses {
		value := domain.Status(status)
		if !value.Valid() {
			return ListTasksResponse{}, &domain.ValidationError{Field: "statuses", Reason: fmt.Sprintf("unknown status %q", status)}
		}
		criteria.Statuses = append(criteria.Statuses, value)
	}

	tasks, err := m.repo.List(criteria)
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, found := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(found))
	}
	return response, nil
}

// updateStatus handles the update-status service request. The lifecycle
// computes the derived completed_at before the store call; no other
// field is touched.
func (m *TaskModule) updateStatus(_ context.Context, req UpdateStatusRequest, _ *mono.Msg) (TaskResponse, error) {
	newStatus := domain.Status(req.Status)
	if !newStatus.Valid() {
		return TaskResponse{}, &domain.ValidationError{Field: "status", Reason: "unknown status"}
	}

	transition := domain.ApplyTransition(newStatus, time.Now())
	if err := m.repo.UpdateStatus(req.TaskID, transition.Status, transition.CompletedAt); err != nil {
		return TaskResponse{}, err
	}

	updated, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	if m.eventBus != nil {
		event := events.TaskStatusChangedEvent{
			TaskID:      updated.ID,
			Status:      string(updated.Status),
			CompletedAt: updated.CompletedAt,
			ChangedAt:   time.Now(),
		}
		if err := events.TaskStatusChangedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskStatusChanged event for task %s: %v", updated.ID, err)
		}
	}

	return toTaskResponse(updated), nil
}

// updateTask handles the update-task service request: a full-record
// edit of the submission fields. Status and completed_at never change
// here; that is the lifecycle's job.
func (m *TaskModule) updateTask(_ context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	existing, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	draft := domain.Draft{
		ClientName:  req.ClientName,
		WorkTitle:   req.WorkTitle,
		DueDate:     req.DueDate,
		Assignee:    req.Assignee,
		Priority:    domain.Priority(req.Priority),
		Category:    domain.Category(req.Category),
		Description: req.Description,
		Status:      existing.Status,
		CreatedBy:   existing.CreatedBy,
	}
	draft.ApplyDefaults()
	if normalized, err := domain.NormalizeDueDate(draft.DueDate); err == nil {
		draft.DueDate = normalized
	}
	if err := draft.Validate(); err != nil {
		return TaskResponse{}, err
	}

	existing.ClientName = draft.ClientName
	existing.WorkTitle = draft.WorkTitle
	existing.DueDate = draft.DueDate
	existing.Assignee = draft.Assignee
	existing.Priority = draft.Priority
	existing.Category = draft.Category
	existing.Description = draft.Description

	if err := m.repo.Update(&existing); err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(existing), nil
}

// deleteTask handles the delete-task service request. Deletion is
// terminal and independent of the task's current status.
func (m *TaskModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	existing, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return DeleteTaskResponse{Deleted: false, TaskID: req.TaskID}, err
	}

	if err := m.repo.Delete(req.TaskID); err != nil {
		return DeleteTaskResponse{Deleted: false, TaskID: req.TaskID}, err
	}

	if m.eventBus != nil {
		event := events.TaskDeletedEvent{
			TaskID:    existing.ID,
			WorkTitle: existing.WorkTitle,
			DeletedAt: time.Now(),
		}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskDeleted event for task %s: %v", existing.ID, err)
		}
	}

	return DeleteTaskResponse{Deleted: true, TaskID: req.TaskID}, nil
}

// toTaskResponse converts a domain Task to its wire form.
func toTaskResponse(t domain.Task) TaskResponse {
	return TaskResponse{
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
	}
}
