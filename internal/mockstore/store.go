// Package mockstore is the in-memory backend behind cmd/mockapi. It
// implements the same store interfaces as the pgx repositories so handlers
// cannot tell the difference. An RWMutex keeps concurrent console requests
// from racing on user updates.
package mockstore

import (
	"context"
	"sort"
	"sync"

	"github.com/supportclint/call-logs-backend/internal/mockdata"
	"github.com/supportclint/call-logs-backend/internal/models"
	"github.com/supportclint/call-logs-backend/internal/repository"
)

type Store struct {
	mu   sync.RWMutex
	data *mockdata.Dataset
}

func New(data *mockdata.Dataset) *Store {
	return &Store{data: data}
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func (s *Store) List(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, len(s.data.Users))
	copy(users, s.data.Users)
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.data.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (s *Store) Create(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.data.Users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	s.data.Users = append(s.data.Users, user)
	return nil
}

func (s *Store) Update(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, user := range s.data.Users {
		if user.ID != id {
			continue
		}
		if patch.Name != nil {
			user.Name = *patch.Name
		}
		if patch.CompanyName != nil {
			user.CompanyName = *patch.CompanyName
		}
		if patch.ContactNumber != nil {
			user.ContactNumber = *patch.ContactNumber
		}
		if patch.AccountSID != nil {
			user.AccountSID = patch.AccountSID
		}
		if patch.AuthToken != nil {
			user.AuthToken = patch.AuthToken
		}
		s.data.Users[i] = user
		return user, nil
	}
	return models.User{}, repository.ErrUserNotFound
}

func (s *Store) CallLogsByUser(ctx context.Context, userID string) ([]models.CallLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRows(s.data.CallLogs[userID]), nil
}

func (s *Store) ErrorLogsByUser(ctx context.Context, userID string) ([]models.ErrorLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRows(s.data.ErrorLogs[userID]), nil
}

func (s *Store) MessageLogsByUser(ctx context.Context, userID string) ([]models.MessageLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRows(s.data.MessageLogs[userID]), nil
}

func (s *Store) CallRecordingsByUser(ctx context.Context, userID string) ([]models.CallRecording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRows(s.data.CallRecordings[userID]), nil
}

func copyRows[T any](rows []T) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	return out
}
