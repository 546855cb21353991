package mockstore

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportclint/call-logs-backend/internal/mockdata"
	"github.com/supportclint/call-logs-backend/internal/models"
	"github.com/supportclint/call-logs-backend/internal/repository"
)

func newStore() *Store {
	return New(mockdata.Generate(rand.New(rand.NewSource(3)), []byte("hash")))
}

func TestListNewestFirst(t *testing.T) {
	store := newStore()

	users, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 4)
	assert.Equal(t, "4", users[0].ID)
	assert.Equal(t, "1", users[3].ID)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	store := newStore()

	err := store.Create(context.Background(), models.User{ID: "9", Email: "alice@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUpdateUnknownUser(t *testing.T) {
	store := newStore()

	_, err := store.Update(context.Background(), "missing", models.UserPatch{})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestConcurrentUpdates(t *testing.T) {
	store := newStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := "Concurrent"
			_, err := store.Update(context.Background(), "2", models.UserPatch{Name: &name})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	user, err := store.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Concurrent", user.Name)
}
