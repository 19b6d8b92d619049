// Package store persists the high score as a decimal string under a fixed key
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// HighScoreKey names the persisted high score entry
const HighScoreKey = "highScore"

var ErrInvalidScore = errors.New("stored score is not a non-negative integer")

// FileStore keeps one file per key inside a directory
type FileStore struct {
	mu  sync.Mutex
	dir string
	key string
}

// NewFileStore creates a store for key under dir; the directory is created lazily on Save
func NewFileStore(dir, key string) *FileStore {
	if key == "" {
		key = HighScoreKey
	}
	return &FileStore{dir: dir, key: key}
}

// Path returns the backing file
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, s.key)
}

// Load reads the stored score
// A missing entry is 0 with no error; unparsable content is 0 with ErrInvalidScore
func (s *FileStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read %s: %w", s.Path(), err)
	}
	return Parse(string(data))
}

// Save writes the score atomically via a temp file and rename
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("save %d: %w", score, ErrInvalidScore)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+s.key+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename to %s: %w", s.Path(), err)
	}
	return nil
}

// Parse decodes a stored score; surrounding whitespace is ignored
func Parse(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%q: %w", raw, ErrInvalidScore)
	}
	return n, nil
}

// MemoryStore keeps the score in process, for tests and -no-save runs
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
}

func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{score: initial}
}

func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *MemoryStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("save %d: %w", score, ErrInvalidScore)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	m.saves++
	return nil
}

// Saves counts successful Save calls
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
