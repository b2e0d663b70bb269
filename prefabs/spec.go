package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ItemsFile holds the collectible kinds a level may place.
const ItemsFile = "items.yaml"

var ErrInvalidPrefab = errors.New("prefabs: invalid prefab")

// ItemSpec is the default shape of a collectible kind. Levels may override
// the size and solidity per item.
type ItemSpec struct {
	Kind   string  `yaml:"kind"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Solid  bool    `yaml:"solid,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	FPS    float64 `yaml:"fps,omitempty"`
}

type itemsDoc struct {
	Items []ItemSpec `yaml:"items"`
}

// LoadItems reads the item prefabs keyed by kind.
func LoadItems() (map[string]ItemSpec, error) {
	data, err := Load(ItemsFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: read %s: %w", ItemsFile, err)
	}
	return ParseItems(data)
}

func ParseItems(data []byte) (map[string]ItemSpec, error) {
	var doc itemsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal items: %w", err)
	}

	items := make(map[string]ItemSpec, len(doc.Items))
	for i, it := range doc.Items {
		if it.Kind == "" {
			return nil, fmt.Errorf("%w: item %d has no kind", ErrInvalidPrefab, i)
		}
		if _, dup := items[it.Kind]; dup {
			return nil, fmt.Errorf("%w: duplicate kind %q", ErrInvalidPrefab, it.Kind)
		}
		if it.Width <= 0 || it.Height <= 0 {
			return nil, fmt.Errorf("%w: %s has size %vx%v", ErrInvalidPrefab, it.Kind, it.Width, it.Height)
		}
		if it.Frames < 0 || it.FPS < 0 {
			return nil, fmt.Errorf("%w: %s has negative animation settings", ErrInvalidPrefab, it.Kind)
		}
		items[it.Kind] = it
	}
	return items, nil
}
