package repository

import (
	"context"
	"time"

	"taskman/internal/errors"
	"taskman/internal/model"
)

// TaskRepository defines storage operations for tasks. Create verifies the
// owning user inside the store lock, so it cannot interleave with a user
// deletion and leave a dangling reference.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id int64) (*model.Task, error)
	List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error)
	Update(ctx context.Context, id int64, update model.TaskUpdate) (*model.Task, error)
	Delete(ctx context.Context, id int64) error
}

type taskRepository struct {
	store *Store
}

// NewTaskRepository builds the task view over the shared store. The task id
// sequence is independent from the user sequence.
func NewTaskRepository(store *Store) TaskRepository {
	return &taskRepository{store: store}
}

func (r *taskRepository) Create(_ context.Context, task *model.Task) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userIndex(task.UserID) < 0 {
		return errors.ErrUserNotFound
	}

	task.ID = s.nextTaskID
	s.nextTaskID++
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	s.tasks = append(s.tasks, *task)
	return nil
}

func (r *taskRepository) FindByID(_ context.Context, id int64) (*model.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.taskIndex(id); i >= 0 {
		task := s.tasks[i]
		return &task, nil
	}
	return nil, errors.ErrTaskNotFound
}

func (r *taskRepository) List(_ context.Context, filter model.TaskFilter) ([]model.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]model.Task, 0, len(s.tasks))
	for i := range s.tasks {
		if matches(&s.tasks[i], filter) {
			tasks = append(tasks, s.tasks[i])
		}
	}
	return tasks, nil
}

// matches applies every supplied filter predicate as an exact match.
func matches(task *model.Task, filter model.TaskFilter) bool {
	if filter.UserID != nil && task.UserID != *filter.UserID {
		return false
	}
	if filter.Status != "" && task.Status != filter.Status {
		return false
	}
	if filter.Priority != "" && task.Priority != filter.Priority {
		return false
	}
	return true
}

func (r *taskRepository) Update(_ context.Context, id int64, update model.TaskUpdate) (*model.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return nil, errors.ErrTaskNotFound
	}
	if update.Title != nil {
		s.tasks[i].Title = *update.Title
	}
	if update.Description != nil {
		s.tasks[i].Description = *update.Description
	}
	if update.Status != nil {
		s.tasks[i].Status = *update.Status
	}
	if update.Priority != nil {
		s.tasks[i].Priority = *update.Priority
	}
	s.tasks[i].UpdatedAt = time.Now().UTC()
	task := s.tasks[i]
	return &task, nil
}

func (r *taskRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return errors.ErrTaskNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}
