package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asad-NCS/lostandfound/internal/domain"
	"github.com/Asad-NCS/lostandfound/internal/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewStoreAt(path, logging.NewText())
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	u := &domain.User{ID: 7, Username: "alice", Email: "alice@example.org", Role: "user"}

	first := NewStoreAt(path, logging.NewText())
	require.NoError(t, first.Set(ctx, &Session{User: u, Token: "tok"}))

	// Simulate an app restart with a fresh store over the same file.
	second := NewStoreAt(path, logging.NewText())
	require.NoError(t, second.Load(ctx))

	require.NotNil(t, second.User())
	assert.Equal(t, *u, *second.User())
	assert.Equal(t, "tok", second.Token())
}

func TestLogoutRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	store := NewStoreAt(path, logging.NewText())
	require.NoError(t, store.Set(ctx, &Session{User: &domain.User{ID: 1}}))
	require.NoError(t, store.Set(ctx, nil))

	assert.Nil(t, store.User())

	restarted := NewStoreAt(path, logging.NewText())
	require.NoError(t, restarted.Load(ctx))
	assert.Nil(t, restarted.User())
}

func TestLoad_MissingFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Load(context.Background()))
	assert.Nil(t, store.User())
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	store := NewStoreAt(path, logging.NewText())
	require.NoError(t, store.Load(context.Background()))
	assert.Nil(t, store.User())
}

func TestSet_PersistFailureStillUpdatesMemory(t *testing.T) {
	// Point the store at a path whose parent is a file, so MkdirAll fails.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store := NewStoreAt(filepath.Join(blocker, "session.json"), logging.NewText())

	u := &domain.User{ID: 2, Username: "bob"}
	err := store.Set(context.Background(), &Session{User: u})
	assert.Error(t, err, "disk failure must be reported")
	require.NotNil(t, store.User(), "in-memory state must update anyway")
	assert.Equal(t, "bob", store.User().Username)

	// Logout also succeeds locally even though the record never existed.
	err = store.Set(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, store.User())
}

func TestOnChange(t *testing.T) {
	store := newTestStore(t)

	var seen []*domain.User
	store.OnChange(func(u *domain.User) { seen = append(seen, u) })

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, &Session{User: &domain.User{ID: 1}}))
	require.NoError(t, store.Set(ctx, nil))

	require.Len(t, seen, 2)
	assert.NotNil(t, seen[0])
	assert.Nil(t, seen[1])
}
