package task

import (
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/example/work-tracker/domain/task"
)

// Order is the single ordering key a list query may carry.
type Order string

const (
	OrderDueDateAsc      Order = "due_date_asc"
	OrderCreatedAtDesc   Order = "created_at_desc"
	OrderCompletedAtDesc Order = "completed_at_desc"
)

// ListCriteria narrows a list query by status set and ordering key.
// An empty status set matches every task.
type ListCriteria struct {
	Statuses []domain.Status
	OrderBy  Order
}

// Repository provides access to task storage. Failures are wrapped as
// domain.RemoteError (or domain.ErrNotFound for unknown ids) and
// surfaced to the caller verbatim; nothing is retried here.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new task. The store assigns created_at.
func (r *Repository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return remote("create task", err)
	}
	return nil
}

// FindByID retrieves a task by its id.
func (r *Repository) FindByID(id string) (domain.Task, error) {
	var task domain.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Task{}, domain.ErrNotFound
		}
		return domain.Task{}, remote("find task", err)
	}
	return task, nil
}

// List retrieves tasks matching the criteria in the requested order.
func (r *Repository) List(criteria ListCriteria) ([]domain.Task, error) {
	query := r.db.Model(&domain.Task{})

	if len(criteria.Statuses) > 0 {
		query = query.Where("status IN ?", criteria.Statuses)
	}

	switch criteria.OrderBy {
	case OrderDueDateAsc:
		query = query.Order("due_date ASC")
	case OrderCreatedAtDesc:
		query = query.Order("created_at DESC")
	case OrderCompletedAtDesc:
		query = query.Order("completed_at DESC")
	}

	var tasks []domain.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, remote("list tasks", err)
	}
	return tasks, nil
}

// UpdateStatus patches status and completed_at for one task, leaving
// every other column untouched. completed_at is written even when nil:
// a transition away from Completed must clear it.
func (r *Repository) UpdateStatus(id string, status domain.Status, completedAt *time.Time) error {
	result := r.db.Model(&domain.Task{}).Where("id = ?", id).Updates(map[string]any{
		"status":       status,
		"completed_at": completedAt,
	})
	if err := result.Error; err != nil {
		return remote("update task status", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update rewrites the mutable fields of a full-record edit. Status,
// completed_at, created_by and created_at stay as they are; the status
// lifecycle owns the first two.
func (r *Repository) Update(task *domain.Task) error {
	result := r.db.Model(&domain.Task{}).Where("id = ?", task.ID).Updates(map[string]any{
		"client_name": task.ClientName,
		"work_title":  task.WorkTitle,
		"due_date":    task.DueDate,
		"assignee":    task.Assignee,
		"priority":    task.Priority,
		"category":    task.Category,
		"description": task.Description,
	})
	if err := result.Error; err != nil {
		return remote("update task", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a task by id. The store does not make this idempotent:
// deleting the same id twice reports not-found the second time.
func (r *Repository) Delete(id string) error {
	result := r.db.Delete(&domain.Task{}, "id = ?", id)
	if err := result.Error; err != nil {
		return remote("delete task", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func remote(op string, err error) error {
	return &domain.RemoteError{Op: op, Err: err}
}
