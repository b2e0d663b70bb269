package main

import (
	"bytes"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/milk9111/piggy/assets"
)

const sampleRate = beep.SampleRate(44100)

// beepPlayer plays the embedded WAVs through the system speaker. It serves
// both one-shot sounds and the music loop.
type beepPlayer struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	music *beep.Ctrl
	track string
}

func newBeepPlayer() (*beepPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}
	p := &beepPlayer{mixer: &beep.Mixer{}}
	speaker.Play(p.mixer)
	return p, nil
}

func (p *beepPlayer) Play(name string, volume float64) error {
	s, format, err := decode(name)
	if err != nil {
		return err
	}
	stream := withVolume(beep.Resample(4, format.SampleRate, sampleRate, s), volume)

	speaker.Lock()
	p.mixer.Add(stream)
	speaker.Unlock()
	return nil
}

func (p *beepPlayer) PlayLoop(track string, volume float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.music != nil && p.track == track {
		return nil
	}

	s, format, err := decode(track)
	if err != nil {
		return err
	}
	loop := beep.Loop(-1, s)
	ctrl := &beep.Ctrl{Streamer: withVolume(beep.Resample(4, format.SampleRate, sampleRate, loop), volume)}

	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
	}
	p.mixer.Add(ctrl)
	speaker.Unlock()

	p.music = ctrl
	p.track = track
	return nil
}

func (p *beepPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()
	p.music = nil
	p.track = ""
}

func decode(name string) (beep.StreamSeekCloser, beep.Format, error) {
	b, err := assets.LoadAudio(name)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("sound %q: %w", name, err)
	}
	s, format, err := wav.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("sound %q: decode: %w", name, err)
	}
	return s, format, nil
}

// withVolume maps a linear 0..1 gain onto beep's exponential volume.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(volume, 1))}
}
