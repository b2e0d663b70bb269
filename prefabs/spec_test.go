package prefabs

import (
	"errors"
	"testing"
)

func TestLoadItems(t *testing.T) {
	items, err := LoadItems()
	if err != nil {
		t.Fatalf("load items: %v", err)
	}
	for _, kind := range []string{"flower", "video_flower", "bird", "bush", "rock"} {
		if _, ok := items[kind]; !ok {
			t.Fatalf("missing %s prefab", kind)
		}
	}
	if !items["rock"].Solid || items["flower"].Solid {
		t.Fatalf("unexpected solid flags: %+v", items)
	}
	if vf := items["video_flower"]; vf.Frames != 8 || vf.FPS != 12 {
		t.Fatalf("unexpected video flower %+v", vf)
	}
}

func TestParseItemsRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no_kind", "items:\n  - { width: 1, height: 1 }\n"},
		{"duplicate", "items:\n  - { kind: a, width: 1, height: 1 }\n  - { kind: a, width: 1, height: 1 }\n"},
		{"flat", "items:\n  - { kind: a, width: 0, height: 1 }\n"},
		{"negative_fps", "items:\n  - { kind: a, width: 1, height: 1, fps: -1 }\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseItems([]byte(c.body)); !errors.Is(err, ErrInvalidPrefab) {
				t.Fatalf("expected ErrInvalidPrefab, got %v", err)
			}
		})
	}
}

func TestCleanPrefabPath(t *testing.T) {
	cases := map[string]string{
		"items.yaml":         "items.yaml",
		"prefabs/items.yaml": "items.yaml",
		"":                   "",
	}
	for in, want := range cases {
		if got := cleanPrefabPath(in); got != want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", in, got, want)
		}
	}
}
