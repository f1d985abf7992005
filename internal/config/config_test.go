package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// isolate points HOME at an empty directory so no user config is picked up.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := Default()
	if cfg.Game != want.Game || cfg.HighScore != want.HighScore || cfg.Log != want.Log {
		t.Errorf("embedded default differs:\n%+v\nwant\n%+v", cfg, want)
	}
	if len(cfg.Theme.Tiles) != 18 {
		t.Errorf("palette has %d entries, want 18", len(cfg.Theme.Tiles))
	}
	if len(cfg.Keys.Up) != 2 || cfg.Keys.Up[0] != "w" {
		t.Errorf("Keys.Up = %v", cfg.Keys.Up)
	}
}

func TestLoadCustomPathPartialFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "game:\n  spawn_four_percent: 25\nhighscore:\n  backend: memory\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.SpawnFourPercent != 25 {
		t.Errorf("SpawnFourPercent = %d, want 25", cfg.Game.SpawnFourPercent)
	}
	if cfg.HighScore.Backend != BackendMemory {
		t.Errorf("Backend = %s, want memory", cfg.HighScore.Backend)
	}
	// Untouched sections keep their defaults
	if cfg.Log.Level != "info" || len(cfg.Keys.Left) == 0 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("game: [not, a, map]"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".t2048")
	os.MkdirAll(dir, 0o755)
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: debug\n"), 0o644)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel())
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("T2048_SPAWN_FOUR_PERCENT", "0")
	t.Setenv("T2048_HIGHSCORE_BACKEND", "sqlite")
	t.Setenv("T2048_DB_PATH", "/tmp/t2048-test.db")
	t.Setenv("T2048_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.SpawnFourPercent != 0 {
		t.Errorf("SpawnFourPercent = %d, want 0", cfg.Game.SpawnFourPercent)
	}
	if cfg.HighScore.Backend != BackendSQLite || cfg.HighScore.DBPath != "/tmp/t2048-test.db" {
		t.Errorf("HighScore = %+v", cfg.HighScore)
	}
	if cfg.LogLevel() != log.WarnLevel {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel())
	}
}

func TestEnvOverrideMalformed(t *testing.T) {
	isolate(t)
	t.Setenv("T2048_SPAWN_FOUR_PERCENT", "lots")

	if _, err := Load(""); err == nil {
		t.Error("Load() should reject a non-numeric percent")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"percent too high", func(c *Config) { c.Game.SpawnFourPercent = 101 }, "spawn_four_percent"},
		{"percent negative", func(c *Config) { c.Game.SpawnFourPercent = -1 }, "spawn_four_percent"},
		{"unknown backend", func(c *Config) { c.HighScore.Backend = "cloud" }, "backend"},
		{"file without path", func(c *Config) { c.HighScore.Path = "" }, "highscore.path"},
		{"duplicate key", func(c *Config) { c.Keys.Left = append(c.Keys.Left, "W") }, "bound to both"},
		{"bad color", func(c *Config) { c.Theme.Tiles[3].Background = "orange" }, "malformed color"},
		{"duplicate exponent", func(c *Config) { c.Theme.Tiles[1].Exponent = 2 }, "duplicate exponent"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.errSub)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("marshalled default does not validate: %v", err)
	}
}

func TestKeymapResolve(t *testing.T) {
	km, err := NewKeymap(Default().Keys)
	if err != nil {
		t.Fatalf("NewKeymap() failed: %v", err)
	}

	tests := map[string]Action{
		"w": ActionUp, "Up": ActionUp, "D": ActionRight, " down ": ActionDown,
		"a": ActionLeft, "n": ActionNewGame, "q": ActionQuit, "x": ActionNone,
	}
	for key, want := range tests {
		if got := km.Resolve(key); got != want {
			t.Errorf("Resolve(%q) = %s, want %s", key, got, want)
		}
	}

	if got := km.Keys(ActionLeft); len(got) != 2 || got[0] != "a" || got[1] != "left" {
		t.Errorf("Keys(Left) = %v, want [a left]", got)
	}
}

func TestActionDirection(t *testing.T) {
	tests := map[Action]t2048.Direction{
		ActionUp:    t2048.North,
		ActionRight: t2048.East,
		ActionDown:  t2048.South,
		ActionLeft:  t2048.West,
	}
	for action, want := range tests {
		got, ok := action.Direction()
		if !ok || got != want {
			t.Errorf("%s.Direction() = %s, %v, want %s", action, got, ok, want)
		}
	}
	if _, ok := ActionQuit.Direction(); ok {
		t.Error("Quit should not map to a direction")
	}
}

func TestThemeTile(t *testing.T) {
	theme := Default().Theme

	if got := theme.Tile(0); got.Exponent != 0 {
		t.Errorf("Tile(0) exponent = %d, want 0", got.Exponent)
	}
	if got := theme.Tile(2048); got.Exponent != 11 || got.Background != "#edc22e" {
		t.Errorf("Tile(2048) = %+v", got)
	}
	// Past the palette: reuse the highest entry
	if got := theme.Tile(1 << 20); got.Exponent != 17 {
		t.Errorf("Tile(2^20) exponent = %d, want 17", got.Exponent)
	}
}

func TestExponent(t *testing.T) {
	tests := map[int]int{0: 0, 2: 1, 4: 2, 1024: 10, 131072: 17}
	for v, want := range tests {
		if got := Exponent(v); got != want {
			t.Errorf("Exponent(%d) = %d, want %d", v, got, want)
		}
	}
}
