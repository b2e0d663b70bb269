package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadEmbeddedMeadow(t *testing.T) {
	for _, name := range []string{"meadow", "meadow.yaml", "levels/meadow.yaml"} {
		t.Run(name, func(t *testing.T) {
			lvl, err := Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if lvl.Name != "meadow" || lvl.GroundY != 520 {
				t.Fatalf("unexpected level %+v", lvl)
			}
			if len(lvl.Obstacles) != 3 {
				t.Fatalf("expected 3 platforms, got %d", len(lvl.Obstacles))
			}
			kinds := map[string]bool{}
			for _, c := range lvl.Collectibles {
				kinds[c.Kind] = true
			}
			for _, k := range []string{"flower", "bush", "rock", "bird", "video_flower"} {
				if !kinds[k] {
					t.Fatalf("meadow is missing a %s", k)
				}
			}
		})
	}
}

func TestParseRejectsInvalidLevels(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no_ground", "width: 800\nspawn_x: 10\n"},
		{"spawn_outside", "width: 800\nground_y: 500\nspawn_x: 900\n"},
		{"flat_obstacle", "width: 800\nground_y: 500\nobstacles:\n  - { x: 1, y: 1, w: 0, h: 5 }\n"},
		{"unknown_kind", "width: 800\nground_y: 500\ncollectibles:\n  - { kind: coin, x: 1, y: 1, w: 5, h: 5 }\n"},
		{"flat_collectible", "width: 800\nground_y: 500\ncollectibles:\n  - { kind: rock, x: 1, y: 1, w: 5, h: -1 }\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse([]byte(c.body)); !errors.Is(err, ErrInvalidLevel) {
				t.Fatalf("expected ErrInvalidLevel, got %v", err)
			}
		})
	}

	if _, err := Parse([]byte("width: [")); err == nil || errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected a decode error, got %v", err)
	}
}

func TestParseCollectibleFields(t *testing.T) {
	lvl, err := Parse([]byte("width: 800\nground_y: 500\ncollectibles:\n  - { kind: video_flower, x: 10, y: 20, w: 30, h: 40, solid: true, frames: 8, fps: 12 }\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := lvl.Collectibles[0]
	if c.X != 10 || c.Y != 20 || c.W != 30 || c.H != 40 || !c.IsSolid() || c.Frames != 8 || c.FPS != 12 {
		t.Fatalf("fields not decoded: %+v", c)
	}
}

func TestParseFillsPrefabDefaults(t *testing.T) {
	lvl, err := Parse([]byte("width: 800\nground_y: 500\ncollectibles:\n  - { kind: rock, x: 10, y: 460 }\n  - { kind: video_flower, x: 100, y: 460, w: 20, h: 20 }\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rock := lvl.Collectibles[0]
	if rock.W != 70 || rock.H != 40 || !rock.IsSolid() {
		t.Fatalf("rock should take prefab size and solidity, got %+v", rock)
	}
	vf := lvl.Collectibles[1]
	if vf.W != 20 || vf.H != 20 || vf.Frames != 8 || vf.FPS != 12 {
		t.Fatalf("video flower should keep its size and take prefab frames, got %+v", vf)
	}
}

func TestParseSolidOverride(t *testing.T) {
	lvl, err := Parse([]byte(`width: 800
ground_y: 500
collectibles:
  - { kind: rock, x: 10, y: 460, solid: false }
  - { kind: flower, x: 100, y: 460, solid: true }
  - { kind: bush, x: 200, y: 460 }
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	cases := []struct {
		kind string
		want bool
	}{
		{"rock", false},
		{"flower", true},
		{"bush", true},
	}
	for i, c := range cases {
		t.Run(c.kind, func(t *testing.T) {
			if got := lvl.Collectibles[i].IsSolid(); got != c.want {
				t.Fatalf("expected solid=%v, got %v", c.want, got)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"score.tengo", "scripts/score.tengo", "levels/scripts/score.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !strings.Contains(string(data), "points") {
			t.Fatalf("%s: unexpected script body", name)
		}
	}
}

func TestWatcherReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, "meadow.yaml")
	if err := os.WriteFile(target, []byte("name: meadow\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", target)
	}
}
