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

// UserService exposes user domain operations. Uniqueness and reference
// checks run inside the store lock, so they hold under concurrent requests.
type UserService interface {
	CreateUser(ctx context.Context, name, email, role string) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, update model.UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	users    repository.UserRepository
	cache    *cache.Client
	cacheTTL time.Duration
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository, cache *cache.Client, cacheTTL time.Duration) UserService {
	return &userService{users: users, cache: cache, cacheTTL: cacheTTL}
}

func (s *userService) cacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) CreateUser(ctx context.Context, name, email, role string) (*model.User, error) {
	if role == "" {
		role = model.DefaultRole
	}
	user := &model.User{Name: name, Email: email, Role: role}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, s.cacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// UpdateUser replaces name and email, and role when supplied. The store
// re-checks email uniqueness against every other user on the update path too.
func (s *userService) UpdateUser(ctx context.Context, id int64, update model.UserUpdate) (*model.User, error) {
	user, err := s.users.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

// DeleteUser removes the user; the store refuses while tasks still reference
// it, so no task is ever left pointing at a missing user.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
