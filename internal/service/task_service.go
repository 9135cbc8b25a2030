package service

import (
	"context"

	"taskboard/internal/domain"
)

// TaskStore is what the task service needs from the task store.
type TaskStore interface {
	List(ctx context.Context, skip, limit int) ([]*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

type TaskService struct {
	tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns tasks in insertion order. skip/limit are computed at the HTTP
// boundary from page and page_size.
func (s *TaskService) List(ctx context.Context, skip, limit int) ([]*domain.Task, error) {
	return s.tasks.List(ctx, skip, limit)
}

func (s *TaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	return s.tasks.Get(ctx, id)
}

// Create persists a new task. Status defaults to pending when left empty.
func (s *TaskService) Create(ctx context.Context, title string, description *string, status domain.TaskStatus) (*domain.Task, error) {
	if status == "" {
		status = domain.StatusPending
	}

	task := &domain.Task{
		Title:       title,
		Description: description,
		Status:      status,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Update changes only the fields the patch explicitly carries. Any status may
// move to any other status; no transition ordering is enforced.
func (s *TaskService) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	return s.tasks.Update(ctx, id, patch)
}

// Delete reports repository.ErrNotFound when the id was already absent, so a
// second delete of the same id is visible to the caller.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.tasks.Delete(ctx, id)
}
