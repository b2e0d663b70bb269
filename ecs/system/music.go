package system

import (
	"strings"

	"go.uber.org/zap"

	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
)

// MusicPlayer loops one background track at a time.
type MusicPlayer interface {
	PlayLoop(track string, volume float64) error
	Stop()
}

type MusicSystem struct {
	player MusicPlayer
	log    *zap.SugaredLogger
}

func NewMusicSystem(player MusicPlayer, log *zap.SugaredLogger) *MusicSystem {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &MusicSystem{player: player, log: log}
}

func (m *MusicSystem) Update(w *ecs.World) {
	if w == nil || m.player == nil {
		return
	}

	ent, ok := ecs.First(w, component.MusicComponent.Kind())
	if !ok {
		return
	}
	music, _ := ecs.Get(w, ent, component.MusicComponent.Kind())
	if music.Started || music.Failed {
		return
	}

	track := strings.TrimSpace(music.Track)
	if track == "" {
		music.Started = true
		return
	}

	volume := music.Volume
	if volume <= 0 || volume > 1 {
		volume = 1
	}
	if err := m.player.PlayLoop(track, volume); err != nil {
		m.log.Warnw("music disabled", "track", track, "error", err)
		music.Failed = true
		return
	}
	music.Started = true
	m.log.Infow("music started", "track", track, "volume", volume)
}
