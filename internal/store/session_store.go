package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"selfcare/internal/domain"
)

const sessionFilename = "session.json"

// Persisted keys. These names predate this client and are kept for
// compatibility with existing installs.
const (
	KeyDomain = "userdomain"
	KeyToken  = "userToken"
)

// SessionFileStore persists session strings to a JSON document on disk.
type SessionFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir}
}

// Get returns the value stored under key. An absent key reports ok=false
// with a nil error; storage failures surface to the caller unretried.
func (s *SessionFileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *SessionFileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}
	values[key] = value
	return s.write(values)
}

// Remove deletes key. Removing an absent key is not an error.
func (s *SessionFileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.write(values)
}

// Domain returns the resolved tenant domain, if any.
func (s *SessionFileStore) Domain() (domain.Domain, bool, error) {
	v, ok, err := s.Get(KeyDomain)
	return domain.Domain(v), ok, err
}

// SaveDomain persists the tenant domain exactly as resolved.
func (s *SessionFileStore) SaveDomain(d domain.Domain) error {
	return s.Set(KeyDomain, d.String())
}

// Token returns the stored login token, if any.
func (s *SessionFileStore) Token() (domain.Token, bool, error) {
	v, ok, err := s.Get(KeyToken)
	return domain.Token(v), ok, err
}

// SaveToken persists the login token.
func (s *SessionFileStore) SaveToken(t domain.Token) error {
	return s.Set(KeyToken, t.String())
}

// ClearToken removes the login token, leaving the domain in place. This is
// the logout operation.
func (s *SessionFileStore) ClearToken() error {
	return s.Remove(KeyToken)
}

// Clear removes the whole session, domain included.
func (s *SessionFileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(map[string]string{})
}

func (s *SessionFileStore) path() string {
	return filepath.Join(s.dir, sessionFilename)
}

// read loads the session document; a missing file is an empty session.
func (s *SessionFileStore) read() (map[string]string, error) {
	values := map[string]string{}
	b, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// write replaces the session document via a temp file, then atomic rename.
func (s *SessionFileStore) write(values map[string]string) error {
	b, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	path := s.path()
	f, err := os.CreateTemp(filepath.Dir(path), sessionFilename+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
