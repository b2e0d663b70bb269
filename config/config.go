// Package config loads the game's tunables from YAML or TOML files layered
// over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/piggy/physics"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Window  Window  `yaml:"window" toml:"window"`
	Physics Physics `yaml:"physics" toml:"physics"`
	Player  Player  `yaml:"player" toml:"player"`
	Audio   Audio   `yaml:"audio" toml:"audio"`
	Log     Log     `yaml:"log" toml:"log"`
	// Level is the level file name under levels/.
	Level string `yaml:"level" toml:"level"`
}

type Window struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
	TPS    int    `yaml:"tps" toml:"tps"`
}

type Physics struct {
	Gravity        float64 `yaml:"gravity" toml:"gravity"`
	JumpStrength   float64 `yaml:"jump_strength" toml:"jump_strength"`
	StandTolerance float64 `yaml:"stand_tolerance" toml:"stand_tolerance"`
}

type Player struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	BounceSpeed  float64 `yaml:"bounce_speed" toml:"bounce_speed"`
	BounceHeight float64 `yaml:"bounce_height" toml:"bounce_height"`
}

type Audio struct {
	Enabled       bool    `yaml:"enabled" toml:"enabled"`
	SFXVolume     float64 `yaml:"sfx_volume" toml:"sfx_volume"`
	MusicVolume   float64 `yaml:"music_volume" toml:"music_volume"`
	CooldownTicks int     `yaml:"cooldown_ticks" toml:"cooldown_ticks"`
}

type Log struct {
	File       string `yaml:"file" toml:"file"`
	Level      string `yaml:"level" toml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days"`
	Console    bool   `yaml:"console" toml:"console"`
}

// Default mirrors the constants the game shipped with: an 800x600 window at
// 60 TPS and an 80x80 pig that walks 5 px and jumps 13 px per tick.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "Piggy Adventure",
			TPS:    60,
		},
		Physics: Physics{
			Gravity:        0.7,
			JumpStrength:   13,
			StandTolerance: 10,
		},
		Player: Player{
			Width:        80,
			Height:       80,
			Speed:        5,
			BounceSpeed:  0.1,
			BounceHeight: 3,
		},
		Audio: Audio{
			Enabled:       true,
			SFXVolume:     0.8,
			MusicVolume:   0.5,
			CooldownTicks: 30,
		},
		Log: Log{
			File:       "piggy.log",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Console:    true,
		},
		Level: "meadow.yaml",
	}
}

// Load reads path over the defaults. The decoder is picked by extension:
// .yaml/.yml or .toml. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("config: decode %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("config: unsupported extension %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	var problems []string
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		problems = append(problems, fmt.Sprintf("window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		problems = append(problems, fmt.Sprintf("tps %d", c.Window.TPS))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		problems = append(problems, fmt.Sprintf("player size %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Speed < 0 {
		problems = append(problems, fmt.Sprintf("player speed %v", c.Player.Speed))
	}
	if c.Physics.Gravity <= 0 {
		problems = append(problems, fmt.Sprintf("gravity %v", c.Physics.Gravity))
	}
	if c.Physics.JumpStrength < 0 || c.Physics.StandTolerance < 0 {
		problems = append(problems, "negative jump strength or stand tolerance")
	}
	if c.Audio.CooldownTicks < 0 {
		problems = append(problems, fmt.Sprintf("cooldown ticks %d", c.Audio.CooldownTicks))
	}
	if strings.TrimSpace(c.Level) == "" {
		problems = append(problems, "empty level name")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// PhysicsParams returns resolver parameters for a level with the given
// ground line and width.
func (c Config) PhysicsParams(groundY, worldWidth float64) physics.Params {
	return physics.Params{
		JumpStrength:   c.Physics.JumpStrength,
		Gravity:        c.Physics.Gravity,
		StandTolerance: c.Physics.StandTolerance,
		GroundY:        groundY,
		WorldWidth:     worldWidth,
	}
}
