package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), DefaultHighScoreFile))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	if _, err := store.Load(); !errors.Is(err, ErrNoHighScore) {
		t.Errorf("Load() error = %v, want ErrNoHighScore", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultHighScoreFile)
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	if err := store.Save(3932); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "3932" {
		t.Errorf("file contents = %q, want %q", data, "3932")
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != 3932 {
		t.Errorf("Load() = %d, want 3932", got)
	}
}

func TestFileStoreContents(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{name: "plain", content: "128", want: 128},
		{name: "surrounding whitespace", content: "  2048\n", want: 2048},
		{name: "empty", content: "", wantErr: true},
		{name: "garbage", content: "lots", wantErr: true},
		{name: "negative", content: "-4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultHighScoreFile)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}
			store, _ := NewFileStore(path)

			got, err := store.Load()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() = %d, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Load() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFileStoreSaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	// Parent "directory" is a regular file.
	store, _ := NewFileStore(filepath.Join(blocker, DefaultHighScoreFile))
	if err := store.Save(10); err == nil {
		t.Error("Save() into a non-directory should fail")
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(0)
	if _, err := store.Load(); !errors.Is(err, ErrNoHighScore) {
		t.Errorf("Load() error = %v, want ErrNoHighScore", err)
	}

	store.Save(64)
	if got, err := store.Load(); err != nil || got != 64 {
		t.Errorf("Load() = %d, %v, want 64", got, err)
	}

	if got, _ := NewMemoryStore(8).Load(); got != 8 {
		t.Errorf("preloaded Load() = %d, want 8", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.t2048/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".t2048", "scores.db"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x"); got != "/tmp/x" {
		t.Errorf("ExpandHome() changed an absolute path: %q", got)
	}
}
