package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
)

// SoundPlayer starts a one-shot sound by name. The windowed game plays
// embedded WAVs through ebiten; the terminal game plays the same WAVs
// through beep.
type SoundPlayer interface {
	Play(name string, volume float64) error
}

type AudioSystem struct {
	player SoundPlayer
	log    *zap.SugaredLogger
}

func NewAudioSystem(player SoundPlayer, log *zap.SugaredLogger) *AudioSystem {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &AudioSystem{player: player, log: log}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(e ecs.Entity, audioComp *component.Audio) {
		for i := range audioComp.Play {
			if i < len(audioComp.Cooldown) && audioComp.Cooldown[i] > 0 {
				audioComp.Cooldown[i]--
			}
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false

			if i < len(audioComp.Cooldown) && audioComp.Cooldown[i] > 0 {
				continue
			}
			if i < len(audioComp.Disabled) && audioComp.Disabled[i] {
				continue
			}
			if a.player == nil || i >= len(audioComp.Names) {
				continue
			}

			volume := 1.0
			if i < len(audioComp.Volume) {
				volume = audioComp.Volume[i]
			}
			if err := a.player.Play(audioComp.Names[i], volume); err != nil {
				a.log.Warnw("sound disabled", "entity", e, "sound", audioComp.Names[i], "error", err)
				if i < len(audioComp.Disabled) {
					audioComp.Disabled[i] = true
				}
				continue
			}
			if i < len(audioComp.Cooldown) {
				audioComp.Cooldown[i] = audioComp.CooldownTicks
			}
		}
	})
}
