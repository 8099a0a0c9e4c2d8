// Package highscore persists the single best score of the shooter.
//
// Two backends are provided: a JSON file holding {"highscore": N} and a
// SQLite row managed by the storage package. Both report a missing record as 0.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Store loads and saves one integer high score.
type Store interface {
	// Load returns the stored score. A missing record is (0, nil); an
	// unreadable one is (0, err).
	Load() (int, error)
	// Save replaces the stored score.
	Save(score int) error
}

// Memory is an in-process Store, used by tests and when persistence is disabled.
type Memory struct {
	Score int
	Saves int // Number of Save calls
}

// Load returns the remembered score.
func (m *Memory) Load() (int, error) { return m.Score, nil }

// Save remembers the score.
func (m *Memory) Save(score int) error {
	m.Score = score
	m.Saves++
	return nil
}

// fileRecord is the on-disk JSON shape.
type fileRecord struct {
	HighScore int `json:"highscore"`
}

// FileStore keeps the high score in a small JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path. A leading ~ expands to the home directory.
func NewFileStore(path string) *FileStore {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the high score from disk.
func (f *FileStore) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", f.path, err)
	}

	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("highscore: cannot parse %s: %w", f.path, err)
	}
	if rec.HighScore < 0 {
		return 0, fmt.Errorf("highscore: negative score %d in %s", rec.HighScore, f.path)
	}
	return rec.HighScore, nil
}

// Save writes the high score, replacing the file atomically.
func (f *FileStore) Save(score int) error {
	data, err := json.MarshalIndent(fileRecord{HighScore: score}, "", "  ")
	if err != nil {
		return fmt.Errorf("highscore: cannot encode score: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*.json")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: cannot write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", f.path, err)
	}
	return nil
}

// Reset removes the stored score.
func (f *FileStore) Reset() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("highscore: cannot remove %s: %w", f.path, err)
	}
	return nil
}

// SQLStore keeps the high score as a row in the SQLite database.
type SQLStore struct {
	db     *storage.Store
	gameID string
}

// NewSQLStore creates a store over an open database, keyed by gameID.
func NewSQLStore(db *storage.Store, gameID string) *SQLStore {
	return &SQLStore{db: db, gameID: gameID}
}

// Load reads the high score row.
func (s *SQLStore) Load() (int, error) {
	return s.db.HighScore(s.gameID)
}

// Save replaces the high score row.
func (s *SQLStore) Save(score int) error {
	return s.db.SetHighScore(s.gameID, score)
}

// Reset deletes the high score row.
func (s *SQLStore) Reset() error {
	return s.db.ClearHighScore(s.gameID)
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*FileStore)(nil)
	_ Store = (*SQLStore)(nil)
)
