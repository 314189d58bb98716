// Package prefs persists small client-local preferences between runs.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	ideaerrors "github.com/alexisbeaulieu97/ideaslot/pkg/errors"
)

const fileVersion = "1.0"

// File is the on-disk representation of the preference store.
type File struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore persists key/value preferences in a JSON file.
type FileStore struct {
	path   string
	mu     sync.RWMutex
	values map[string]string
}

// Open creates a FileStore and loads it from disk. A missing file yields an
// empty store; an unreadable or corrupt one yields a StoreError.
func Open(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	if err := s.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return s, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the store from disk, replacing in-memory values.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return ideaerrors.NewStoreError(s.path, "read", err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return ideaerrors.NewStoreError(s.path, "parse", err)
	}

	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value under key and writes the store to disk. The in-memory
// value is kept even when the write fails.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()

	return s.save()
}

// save writes the store to disk atomically.
func (s *FileStore) save() error {
	s.mu.RLock()
	file := File{Version: fileVersion, Values: s.values}
	data, err := json.MarshalIndent(file, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return ideaerrors.NewStoreError(s.path, "marshal", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return ideaerrors.NewStoreError(s.path, "mkdir", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return ideaerrors.NewStoreError(s.path, "write", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return ideaerrors.NewStoreError(s.path, "rename", fmt.Errorf("replace store file: %w", err))
	}

	return nil
}

// Memory is an in-memory store used when the file store is unavailable.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
