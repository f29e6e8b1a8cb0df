package repository

import (
	"sync"

	"taskman/internal/model"
)

// Store owns both collections and the single lock that serializes every
// mutation. Checks that span entities (email uniqueness, task→user
// references) run inside that lock, so the invariants hold under concurrent
// request handling, not just per-operation.
type Store struct {
	mu         sync.Mutex
	users      []model.User
	nextUserID int64
	tasks      []model.Task
	nextTaskID int64
}

// NewStore builds an empty in-memory store. Both id sequences start at 1 and
// are never reused within a process lifetime.
func NewStore() *Store {
	return &Store{nextUserID: 1, nextTaskID: 1}
}

// userIndex returns the position of the user with the given id, or -1.
// Callers must hold s.mu.
func (s *Store) userIndex(id int64) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

// taskIndex returns the position of the task with the given id, or -1.
// Callers must hold s.mu.
func (s *Store) taskIndex(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
