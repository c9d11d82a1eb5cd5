// Package store persists small JSON documents with whole-file reads and
// writes. A corrupted or missing file loads as the caller's default value
// instead of failing: the stores kept here (productivity history,
// triggers) favor availability over preservation.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	appLog "waqt/internal/log"
)

// Repository is the load/save contract the engine's stores depend on.
// JSONFile is the file-backed strategy; Memory backs tests.
type Repository[T any] interface {
	Load() (T, error)
	Save(T) error
}

// JSONFile persists a value of type T at a fixed path.
type JSONFile[T any] struct {
	path       string
	defaultVal func() T
}

// NewJSONFile builds a file-backed repository. defaultVal produces the
// value returned when the file is missing or unreadable.
func NewJSONFile[T any](path string, defaultVal func() T) *JSONFile[T] {
	return &JSONFile[T]{path: path, defaultVal: defaultVal}
}

// Load reads and decodes the file. A missing file is a silent default;
// a corrupt one is logged and reset to the default.
func (s *JSONFile[T]) Load() (T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s.defaultVal(), nil
		}
		appLog.Warn("store unreadable, using default", "path", s.path, "reason", err)
		return s.defaultVal(), nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		appLog.Warn("store corrupt, resetting to default", "path", s.path, "reason", err)
		return s.defaultVal(), nil
	}
	return v, nil
}

// Save writes the value atomically: temp file in the same directory, then
// rename, with 0600 permissions.
func (s *JSONFile[T]) Save(v T) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".waqt-store-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}

// Memory is an in-memory Repository for tests.
type Memory[T any] struct {
	value T
	set   bool

	defaultVal func() T
}

// NewMemory builds an in-memory repository with the given default.
func NewMemory[T any](defaultVal func() T) *Memory[T] {
	return &Memory[T]{defaultVal: defaultVal}
}

func (m *Memory[T]) Load() (T, error) {
	if !m.set {
		return m.defaultVal(), nil
	}
	return m.value, nil
}

func (m *Memory[T]) Save(v T) error {
	m.value = v
	m.set = true
	return nil
}
