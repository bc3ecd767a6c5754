package prefabs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/milk9111/mariusz/game"
)

func useDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestEmbeddedTuningMatchesDefaults(t *testing.T) {
	useDir(t, t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if got := Origin(TuningFile); got != "embedded" {
		t.Fatalf("expected the embedded copy, got %s", got)
	}
	if want := game.DefaultConfig(); !reflect.DeepEqual(cfg, want) {
		t.Fatalf("embedded tuning drifted from defaults:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	data := []byte("physics:\n  gravity: 0.5\nplayer:\n  walk_speed: 3\ngame:\n  lives: 5\n  coin_supply: 2\n")
	if err := os.WriteFile(filepath.Join(dir, TuningFile), data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Player.WalkSpeed != 3 || cfg.Lives != 5 || cfg.Level.CoinSupply != 2 {
		t.Fatalf("override not applied: %+v", cfg)
	}
	if cfg.Physics.Gravity != 0.5 || cfg.Player.Physics.Gravity != 0.5 || cfg.Level.Enemy.Physics.Gravity != 0.5 {
		t.Fatalf("physics override should reach every entity config")
	}
	if cfg.Player.RunSpeed != 4 || cfg.LevelTime != 400 {
		t.Fatalf("unnamed fields should keep defaults: run=%v time=%d", cfg.Player.RunSpeed, cfg.LevelTime)
	}
	if got := Origin(TuningFile); got != "disk" {
		t.Fatalf("expected the disk copy to win, got %s", got)
	}
}

func TestBadTuning(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, TuningFile), []byte("player: [oops"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig()
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if cfg.Lives != 3 {
		t.Fatalf("expected defaults alongside the error")
	}
}

func TestCleanPrefabPath(t *testing.T) {
	cases := map[string]string{
		"":                    "",
		"tuning.yaml":         "tuning.yaml",
		"prefabs/tuning.yaml": "tuning.yaml",
	}
	for in, want := range cases {
		if got := cleanPrefabPath(in); got != want {
			t.Fatalf("cleanPrefabPath(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, TuningFile), []byte("name: tuning\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != TuningFile {
			t.Fatalf("expected %s, got %s", TuningFile, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for the tuning write")
	}
}
