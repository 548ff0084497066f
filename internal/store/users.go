// Package store implements the in-memory data layer. Each table owns one
// entity collection for the process lifetime; records are loaded once at
// startup and every read hands out a defensive copy.
package store

import (
	"context"
	"sync"

	"pulseconnect/internal/models"
	"pulseconnect/internal/observability"
)

// UserStore defines storage operations for users.
type UserStore interface {
	List(ctx context.Context) []models.User
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, user *models.User)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int) (*models.User, error)
	Len() int
}

type userStore struct {
	mu    sync.RWMutex
	users []models.User
	log   *observability.StoreLogger
}

// NewUserStore returns a UserStore seeded with the given records.
func NewUserStore(users []models.User) UserStore {
	s := &userStore{
		users: make([]models.User, len(users)),
		log:   observability.NewStoreLogger("users"),
	}
	copy(s.users, users)
	observability.SetStoreSize("users", len(s.users))
	return s
}

func (s *userStore) List(_ context.Context) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *userStore) GetByID(ctx context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	err := models.NewNotFoundError("User", id)
	s.log.LogError(ctx, err, "get")
	return nil, err
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, nil
		}
	}
	err := models.NewNotFoundError("User", username)
	s.log.LogError(ctx, err, "get")
	return nil, err
}

// Insert assigns the next identifier (max existing + 1) and appends the
// record. The caller's struct is updated with the assigned ID.
func (s *userStore) Insert(ctx context.Context, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = nextID(len(s.users), func(i int) int { return s.users[i].ID })
	s.users = append(s.users, *user)
	observability.SetStoreSize("users", len(s.users))
	s.log.LogWrite(ctx, "insert", map[string]interface{}{"id": user.ID, "username": user.Username})
}

func (s *userStore) Update(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			s.log.LogWrite(ctx, "update", map[string]interface{}{"id": user.ID})
			return nil
		}
	}
	err := models.NewNotFoundError("User", user.ID)
	s.log.LogError(ctx, err, "update")
	return err
}

func (s *userStore) Delete(ctx context.Context, id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			removed := s.users[i]
			s.users = append(s.users[:i], s.users[i+1:]...)
			observability.SetStoreSize("users", len(s.users))
			s.log.LogWrite(ctx, "delete", map[string]interface{}{"id": id})
			return &removed, nil
		}
	}
	err := models.NewNotFoundError("User", id)
	s.log.LogError(ctx, err, "delete")
	return nil, err
}

func (s *userStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// nextID returns one more than the highest identifier in a collection of n
// records, or 1 when the collection is empty.
func nextID(n int, idAt func(int) int) int {
	max := 0
	for i := 0; i < n; i++ {
		if id := idAt(i); id > max {
			max = id
		}
	}
	return max + 1
}
