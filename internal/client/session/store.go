// Package session owns the locally persisted record of the currently
// authenticated user. The store is the single source of truth for "who is
// logged in": one writer path (Set), many readers, durable across restarts.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/Asad-NCS/lostandfound/internal/domain"
	"github.com/Asad-NCS/lostandfound/internal/logging"
)

const (
	dirName   = "lostandfound"
	fileName  = "session.json"
	dirPerms  = 0o700
	filePerms = 0o600
)

// Session is the persisted record: the user plus the bearer token issued
// at login.
type Session struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token,omitempty"`
}

// Store holds the current session in memory and mirrors it to a JSON file.
//
// Failure semantics follow log-and-continue: the in-memory state always
// updates even when the disk step fails, so logout in particular always
// succeeds locally. Disk errors are reported to the caller and logged,
// never allowed to wedge the UI.
type Store struct {
	mu       sync.RWMutex
	path     string
	current  *Session
	log      logging.Logger
	onChange []func(*domain.User)
}

// DefaultPath returns the session file location under the OS user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// NewStore creates a store persisting to the default path.
func NewStore(log logging.Logger) (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(path, log), nil
}

// NewStoreAt creates a store persisting to an explicit path. Used by tests.
func NewStoreAt(path string, log logging.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load performs the one-shot startup read. A missing or malformed file
// leaves the store empty and returns nil: the caller proceeds to the
// unauthenticated state rather than blocking on a broken session record.
func (s *Store) Load(ctx context.Context) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn(ctx, "session read failed, starting logged out", "error", err)
		}
		return nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.User == nil {
		s.log.Warn(ctx, "session record malformed, starting logged out", "path", s.path)
		return nil
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	s.notify(sess.User)
	return nil
}

// Set replaces the session. A non-nil session is persisted then installed;
// nil deletes the persisted record then clears memory. The in-memory update
// happens regardless of the disk outcome; the disk error is returned.
func (s *Store) Set(ctx context.Context, sess *Session) error {
	var diskErr error
	if sess != nil {
		diskErr = s.persist(sess)
	} else {
		diskErr = s.remove()
	}
	if diskErr != nil {
		s.log.Warn(ctx, "session persistence failed, keeping in-memory state", "error", diskErr)
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	if sess != nil {
		s.notify(sess.User)
	} else {
		s.notify(nil)
	}
	return diskErr
}

// Current returns the session, or nil when logged out.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// User returns the logged-in user, or nil.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	return s.current.User
}

// Token returns the bearer token of the current session, or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// OnChange registers fn to run after every Set and after a successful Load.
// Registration is not safe concurrently with Set; wire subscribers during
// startup.
func (s *Store) OnChange(fn func(*domain.User)) {
	s.onChange = append(s.onChange, fn)
}

func (s *Store) notify(u *domain.User) {
	for _, fn := range s.onChange {
		fn(u)
	}
}

func (s *Store) persist(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerms); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, filePerms)
}

func (s *Store) remove() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
