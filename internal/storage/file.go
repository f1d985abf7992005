package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// DefaultHighScoreFile is the file name used when only a directory is configured.
const DefaultHighScoreFile = "2048highscore.txt"

// FileStore keeps the high score as a single plain-text integer.
type FileStore struct {
	path string
}

// NewFileStore returns a store for path. A leading ~ is expanded.
func NewFileStore(path string) (*FileStore, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the stored value. Surrounding whitespace is ignored.
// A missing file yields ErrNoHighScore.
func (f *FileStore) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, ErrNoHighScore
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: malformed high score in %s: %w", f.path, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("storage: negative high score %d in %s", value, f.path)
	}
	return value, nil
}

// Save overwrites the file with score, writing a temp file in the same
// directory and renaming it into place.
func (f *FileStore) Save(score int) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}

// Ensure FileStore implements HighScoreStore
var _ t2048.HighScoreStore = (*FileStore)(nil)
