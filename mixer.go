package main

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/milk9111/piggy/assets"
)

const sampleRate = 44100

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

func audioCtx() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// Mixer plays embedded WAVs through ebiten's audio context. Players are
// created on first use and reused afterwards.
type Mixer struct {
	sounds map[string]*audio.Player
	music  *audio.Player
	track  string
}

func NewMixer() *Mixer {
	return &Mixer{sounds: make(map[string]*audio.Player)}
}

// Play restarts the named one-shot sound.
func (m *Mixer) Play(name string, volume float64) error {
	p, ok := m.sounds[name]
	if !ok {
		stream, err := decode(name)
		if err != nil {
			return err
		}
		p, err = audioCtx().NewPlayer(stream)
		if err != nil {
			return fmt.Errorf("audio: player %q: %w", name, err)
		}
		m.sounds[name] = p
	}
	p.SetVolume(volume)
	if err := p.Rewind(); err != nil {
		return fmt.Errorf("audio: rewind %q: %w", name, err)
	}
	p.Play()
	return nil
}

// PlayLoop starts track on an endless loop. Asking for the track that is
// already playing only updates the volume.
func (m *Mixer) PlayLoop(track string, volume float64) error {
	if m.music != nil && m.track == track {
		m.music.SetVolume(volume)
		if !m.music.IsPlaying() {
			m.music.Play()
		}
		return nil
	}
	m.Stop()

	stream, err := decode(track)
	if err != nil {
		return err
	}
	p, err := audioCtx().NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return fmt.Errorf("audio: player %q: %w", track, err)
	}
	p.SetVolume(volume)
	p.Play()
	m.music = p
	m.track = track
	return nil
}

func (m *Mixer) Stop() {
	if m.music == nil {
		return
	}
	m.music.Pause()
	_ = m.music.Close()
	m.music = nil
	m.track = ""
}

func decode(name string) (*wav.Stream, error) {
	b, err := assets.LoadAudio(name)
	if err != nil {
		return nil, fmt.Errorf("audio: load %q: %w", name, err)
	}
	if !strings.HasSuffix(strings.ToLower(assets.SoundFile(name)), ".wav") {
		return nil, fmt.Errorf("audio: %q is not a wav file", name)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("audio: decode wav %q: %w", name, err)
	}
	return stream, nil
}
