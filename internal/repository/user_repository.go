package repository

import (
	"context"
	"time"

	"taskman/internal/errors"
	"taskman/internal/model"
)

// UserRepository defines storage operations for users. Create and Update
// enforce email uniqueness, and Delete refuses while tasks still reference
// the user; all three run their checks inside the store lock so the
// invariants survive concurrent callers.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id int64, update model.UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	store *Store
}

// NewUserRepository builds the user view over the shared store.
func NewUserRepository(store *Store) UserRepository {
	return &userRepository{store: store}
}

// emailTaken reports whether another user (id != exclude) already holds the
// email. Callers must hold the store lock.
func (r *userRepository) emailTaken(email string, exclude int64) bool {
	for i := range r.store.users {
		if r.store.users[i].Email == email && r.store.users[i].ID != exclude {
			return true
		}
	}
	return false
}

func (r *userRepository) Create(_ context.Context, user *model.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.emailTaken(user.Email, 0) {
		return errors.ErrEmailExists
	}

	user.ID = s.nextUserID
	s.nextUserID++
	user.CreatedAt = time.Now().UTC()
	s.users = append(s.users, *user)
	return nil
}

func (r *userRepository) FindByID(_ context.Context, id int64) (*model.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.userIndex(id); i >= 0 {
		user := s.users[i]
		return &user, nil
	}
	return nil, errors.ErrUserNotFound
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, errors.ErrUserNotFound
}

func (r *userRepository) List(_ context.Context) ([]model.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]model.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

func (r *userRepository) Update(_ context.Context, id int64, update model.UserUpdate) (*model.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return nil, errors.ErrUserNotFound
	}
	if r.emailTaken(update.Email, id) {
		return nil, errors.ErrEmailExists
	}

	s.users[i].Name = update.Name
	s.users[i].Email = update.Email
	if update.Role != nil {
		s.users[i].Role = *update.Role
	}
	user := s.users[i]
	return &user, nil
}

// Delete removes the user unless any task still references it, so a task's
// owning-user id always resolves while the task exists.
func (r *userRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return errors.ErrUserNotFound
	}
	for j := range s.tasks {
		if s.tasks[j].UserID == id {
			return errors.ErrUserHasTasks
		}
	}

	s.users = append(s.users[:i], s.users[i+1:]...)
	return nil
}
