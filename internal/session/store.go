// Package session persists the bearer token and user profile across CLI
// invocations, standing in for the browser session of the web client.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/datban/datban-cli/internal/domain"
)

const (
	defaultDirName  = ".datban"
	defaultFileName = "session.json"
	envSessionPath  = "DATBAN_SESSION_PATH"
)

var (
	// ErrNotLoggedIn is returned when no session is stored.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrInvalidSession is returned when the stored payload is malformed.
	ErrInvalidSession = errors.New("session file is invalid")
)

// Store loads and writes the persisted session. Token and user are one
// payload: they are written together and cleared together.
type Store struct {
	path string
}

// NewStore creates a store using env overrides or defaults.
func NewStore() (*Store, error) {
	if path := os.Getenv(envSessionPath); path != "" {
		return &Store{path: path}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return &Store{path: filepath.Join(home, defaultDirName, defaultFileName)}, nil
}

// NewStoreAt creates a store over an explicit path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the session file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored session.
func (s *Store) Load(_ context.Context) (domain.Session, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Session{}, ErrNotLoggedIn
		}
		return domain.Session{}, fmt.Errorf("read session: %w", err)
	}
	var sess domain.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !sess.HasToken() {
		return domain.Session{}, fmt.Errorf("%w: token is empty", ErrInvalidSession)
	}
	return sess, nil
}

// Set overwrites the stored token and user. Both land in one write so a
// reader never observes a token without its user.
func (s *Store) Set(_ context.Context, sess domain.Session) error {
	if !sess.HasToken() {
		return fmt.Errorf("%w: token is empty", ErrInvalidSession)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the stored session. Clearing an absent session is a no-op.
func (s *Store) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Token implements the gateway token source: the stored bearer token, or
// empty for anonymous access.
func (s *Store) Token() string {
	sess, err := s.Load(context.Background())
	if err != nil {
		return ""
	}
	return sess.Token
}
