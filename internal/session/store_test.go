package session_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/session"
)

func tempStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
}

func TestSetThenLoadRoundTrip(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	sess := domain.Session{
		Token: "jwt-abc",
		User:  domain.User{ID: "u1", Email: "an@example.com", Name: "An"},
	}
	require.NoError(t, store.Set(ctx, sess))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)
	assert.Equal(t, "jwt-abc", store.Token())
}

func TestLoadMissingFileMeansNotLoggedIn(t *testing.T) {
	store := tempStore(t)
	_, err := store.Load(context.Background())
	assert.True(t, errors.Is(err, session.ErrNotLoggedIn))
	assert.Empty(t, store.Token())
}

func TestSetRejectsEmptyToken(t *testing.T) {
	store := tempStore(t)
	err := store.Set(context.Background(), domain.Session{User: domain.User{Name: "An"}})
	assert.True(t, errors.Is(err, session.ErrInvalidSession))
}

func TestClearIsIdempotent(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx), "clearing an absent session is fine")

	require.NoError(t, store.Set(ctx, domain.Session{Token: "jwt-abc"}))
	require.NoError(t, store.Clear(ctx))
	_, err := store.Load(ctx)
	assert.True(t, errors.Is(err, session.ErrNotLoggedIn))
	require.NoError(t, store.Clear(ctx))
}

func TestLoadRejectsMalformedPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	store := session.NewStoreAt(path)

	_, err := store.Load(context.Background())
	assert.True(t, errors.Is(err, session.ErrInvalidSession))
}
