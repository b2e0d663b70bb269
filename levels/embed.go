package levels

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/piggy/prefabs"
)

//go:embed *.yaml
var LevelsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Dir is where on-disk levels override the embedded ones.
const Dir = "levels"

var ErrInvalidLevel = errors.New("levels: invalid level")

type Level struct {
	Name         string            `yaml:"name"`
	Width        float64           `yaml:"width"`
	GroundY      float64           `yaml:"ground_y"`
	SpawnX       float64           `yaml:"spawn_x"`
	Music        string            `yaml:"music,omitempty"`
	ScoreScript  string            `yaml:"score_script,omitempty"`
	Obstacles    []RectSpec        `yaml:"obstacles"`
	Collectibles []CollectibleSpec `yaml:"collectibles"`
}

type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// CollectibleSpec places one item. Solid is nil until set by the level or
// filled from the prefab, so an explicit false overrides a solid prefab.
type CollectibleSpec struct {
	Kind     string `yaml:"kind"`
	RectSpec `yaml:",inline"`
	Solid    *bool   `yaml:"solid,omitempty"`
	Frames   int     `yaml:"frames,omitempty"`
	FPS      float64 `yaml:"fps,omitempty"`
}

func (c CollectibleSpec) IsSolid() bool {
	return c.Solid != nil && *c.Solid
}

// Load reads a level by file name, preferring a copy under Dir on disk so
// edits show up without a rebuild.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(diskLevelPath(clean))
	if err != nil {
		data, err = LevelsFS.ReadFile(clean)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", clean, err)
		}
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", clean, err)
	}
	return lvl, nil
}

// Parse decodes a level, fills collectible defaults from the item prefabs
// and validates the result.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	items, err := prefabs.LoadItems()
	if err != nil {
		return nil, err
	}
	if err := lvl.applyPrefabs(items); err != nil {
		return nil, err
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// applyPrefabs resolves each collectible's kind. Zero sizes and animation
// settings take the prefab's values, as does an unset solid flag.
func (l *Level) applyPrefabs(items map[string]prefabs.ItemSpec) error {
	for i := range l.Collectibles {
		c := &l.Collectibles[i]
		spec, ok := items[c.Kind]
		if !ok {
			return fmt.Errorf("%w: collectible %d has unknown kind %q", ErrInvalidLevel, i, c.Kind)
		}
		if c.W == 0 {
			c.W = spec.Width
		}
		if c.H == 0 {
			c.H = spec.Height
		}
		if c.Frames == 0 {
			c.Frames = spec.Frames
		}
		if c.FPS == 0 {
			c.FPS = spec.FPS
		}
		if c.Solid == nil {
			solid := spec.Solid
			c.Solid = &solid
		}
	}
	return nil
}

// Validate rejects levels the resolver cannot handle: degenerate
// rectangles or a spawn outside the world.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.GroundY <= 0 {
		return fmt.Errorf("%w: width %v ground_y %v", ErrInvalidLevel, l.Width, l.GroundY)
	}
	if l.SpawnX < 0 || l.SpawnX > l.Width {
		return fmt.Errorf("%w: spawn_x %v outside [0, %v]", ErrInvalidLevel, l.SpawnX, l.Width)
	}
	for i, o := range l.Obstacles {
		if o.W <= 0 || o.H <= 0 {
			return fmt.Errorf("%w: obstacle %d has size %vx%v", ErrInvalidLevel, i, o.W, o.H)
		}
	}
	for i, c := range l.Collectibles {
		if c.W <= 0 || c.H <= 0 {
			return fmt.Errorf("%w: collectible %d has size %vx%v", ErrInvalidLevel, i, c.W, c.H)
		}
	}
	return nil
}

// LoadScript reads a tengo script from Dir/scripts on disk or the embedded
// copy.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// ModTime reports the on-disk modification time of a level, if it exists.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskLevelPath(cleanLevelPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, Dir+"/")
	if s != "" && filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, Dir+"/")
	s = strings.TrimPrefix(s, "scripts/")
	return "scripts/" + s
}

func diskLevelPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
