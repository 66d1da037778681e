package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datban/datban-cli/internal/config"
)

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store := config.NewStoreAt(filepath.Join(t.TempDir(), "config.json"))
	ctx := context.Background()

	settings := config.Settings{
		BaseURL:       "http://backend.test",
		DefaultCity:   "hanoi",
		DefaultFormat: "json",
	}
	require.NoError(t, store.Save(ctx, settings))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	store := config.NewStoreAt(filepath.Join(t.TempDir(), "config.json"))
	_, err := store.Load(context.Background())
	assert.True(t, errors.Is(err, config.ErrConfigNotFound))
}

func TestLoadRejectsMalformedPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := config.NewStoreAt(path).Load(context.Background())
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}
