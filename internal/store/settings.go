package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/anything-list/internal/logger"
)

// BindingAccountIDKey is the settings key under which the bound account id
// is kept.
const BindingAccountIDKey = "sync.binding_account_id"

// SettingsStore is a small persistent string key/value store kept as a JSON
// file. An empty path keeps everything in memory.
type SettingsStore struct {
	path     string
	inMemory bool
	logger   *logger.Logger

	mu     sync.RWMutex
	values map[string]string
}

type persistedSettings struct {
	Values map[string]string `json:"values"`
}

// NewSettingsStore opens the settings file at path. A missing file is an
// empty store; an unreadable or undecodable one is an error.
func NewSettingsStore(path string, log *logger.Logger) (*SettingsStore, error) {
	s := &SettingsStore{
		path:     path,
		inMemory: path == "" || path == ":memory:",
		logger:   log,
		values:   make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the value stored under key.
func (s *SettingsStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and persists the file.
func (s *SettingsStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.persist()
}

// Delete removes key and persists the file. Deleting a missing key is not
// an error.
func (s *SettingsStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.persist()
}

// LoadBoundAccountID returns the trimmed bound account id, or nil when none
// is stored.
func (s *SettingsStore) LoadBoundAccountID() *string {
	v, ok := s.Get(BindingAccountIDKey)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// SaveBoundAccountID stores id, or removes the key when id is nil or blank.
// Persisting failures are logged and otherwise ignored.
func (s *SettingsStore) SaveBoundAccountID(id *string) {
	var err error
	if id == nil || strings.TrimSpace(*id) == "" {
		err = s.Delete(BindingAccountIDKey)
	} else {
		err = s.Set(BindingAccountIDKey, strings.TrimSpace(*id))
	}
	if err != nil && s.logger != nil {
		s.logger.Err(err).
			Str("func", "SettingsStore.SaveBoundAccountID").
			Str("path", s.path).
			Msg("failed to persist bound account id")
	}
}

func (s *SettingsStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read settings file: %w", err)
	}

	var st persistedSettings
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode settings file: %w", err)
	}
	if st.Values != nil {
		s.values = st.Values
	}

	return nil
}

func (s *SettingsStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(persistedSettings{Values: s.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}
