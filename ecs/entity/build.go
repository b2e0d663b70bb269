package entity

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/piggy/config"
	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/system"
	"github.com/milk9111/piggy/levels"
)

// Backends are the frontend-specific pieces a scheduler needs.
type Backends struct {
	Input system.InputSource
	Sound system.SoundPlayer
	Music system.MusicPlayer
}

// BuildWorld populates a fresh world from a level: obstacles and
// collectibles first, then the player, camera, score and music.
func BuildWorld(lvl *levels.Level, cfg config.Config) (*ecs.World, ecs.Entity, error) {
	if lvl == nil {
		return nil, 0, fmt.Errorf("build world: %w", levels.ErrInvalidLevel)
	}

	w := ecs.NewWorld()
	for i, o := range lvl.Obstacles {
		if _, err := NewObstacle(w, o); err != nil {
			return nil, 0, fmt.Errorf("build world: obstacle %d: %w", i, err)
		}
	}
	for i, c := range lvl.Collectibles {
		if _, err := NewCollectible(w, c); err != nil {
			return nil, 0, fmt.Errorf("build world: collectible %d: %w", i, err)
		}
	}

	params := cfg.PhysicsParams(lvl.GroundY, lvl.Width)
	player, err := NewPlayer(w, cfg, params, lvl.SpawnX)
	if err != nil {
		return nil, 0, fmt.Errorf("build world: %w", err)
	}

	view := float64(cfg.Window.Width)
	startX := lvl.SpawnX + cfg.Player.Width/2 - view/2
	if startX < 0 {
		startX = 0
	}
	if _, err := NewCamera(w, view, lvl.Width, startX); err != nil {
		return nil, 0, fmt.Errorf("build world: %w", err)
	}
	if _, err := NewScore(w, len(lvl.Collectibles)); err != nil {
		return nil, 0, fmt.Errorf("build world: %w", err)
	}

	volume := cfg.Audio.MusicVolume
	track := lvl.Music
	if !cfg.Audio.Enabled {
		track = ""
	}
	if _, err := NewMusic(w, track, volume); err != nil {
		return nil, 0, fmt.Errorf("build world: %w", err)
	}

	return w, player, nil
}

// NewScheduler wires the systems in tick order: input, kinematics, overlap
// checks, then scoring, presentation and audio.
func NewScheduler(lvl *levels.Level, backends Backends, log *zap.SugaredLogger) (*ecs.Scheduler, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	var script []byte
	if lvl != nil && lvl.ScoreScript != "" {
		data, err := levels.LoadScript(lvl.ScoreScript)
		if err != nil {
			log.Warnw("score script unavailable", "script", lvl.ScoreScript, "error", err)
		} else {
			script = data
		}
	}
	score, err := system.NewScoreSystem(script, log)
	if err != nil {
		return nil, fmt.Errorf("scheduler: %w", err)
	}

	return ecs.NewScheduler(
		system.NewInputSystem(backends.Input),
		system.NewKinematicsSystem(log),
		system.NewCollectSystem(log),
		score,
		system.NewAnimationSystem(),
		system.NewBounceSystem(),
		system.NewCameraSystem(),
		system.NewAudioSystem(backends.Sound, log),
		system.NewMusicSystem(backends.Music, log),
	), nil
}
