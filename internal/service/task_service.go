package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taskman/internal/cache"
	"taskman/internal/model"
	"taskman/internal/repository"
)

// TaskService exposes task domain operations.
type TaskService interface {
	CreateTask(ctx context.Context, task *model.Task) (*model.Task, error)
	GetTask(ctx context.Context, id int64) (*model.Task, error)
	ListTasks(ctx context.Context, filter model.TaskFilter) ([]model.Task, error)
	UpdateTask(ctx context.Context, id int64, update model.TaskUpdate) (*model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type taskService struct {
	tasks    repository.TaskRepository
	cache    *cache.Client
	cacheTTL time.Duration
}

// NewTaskService builds a TaskService.
func NewTaskService(tasks repository.TaskRepository, cache *cache.Client, cacheTTL time.Duration) TaskService {
	return &taskService{tasks: tasks, cache: cache, cacheTTL: cacheTTL}
}

func (s *taskService) cacheKey(id int64) string {
	return fmt.Sprintf("task:%d", id)
}

// CreateTask stores a task; the store confirms the owning user exists in the
// same critical section as the append. Absent status and priority fall back
// to their defaults.
func (s *taskService) CreateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task.Status == "" {
		task.Status = model.StatusPending
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Task
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(task); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, s.cacheTTL)
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	return s.tasks.List(ctx, filter)
}

// UpdateTask merges only the supplied fields. The owning user reference is
// immutable and not re-validated here.
func (s *taskService) UpdateTask(ctx context.Context, id int64, update model.TaskUpdate) (*model.Task, error) {
	task, err := s.tasks.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
