package assets

import (
	"embed"
	"path/filepath"
	"strings"
)

//go:embed *.wav
var assetsFS embed.FS

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// LoadAudio loads an embedded sound. A bare name like "oink" resolves to
// oink.wav.
func LoadAudio(name string) ([]byte, error) {
	return LoadFile(SoundFile(name))
}

// SoundFile maps a sound name to its file name.
func SoundFile(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".wav"
	}
	return name
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "assets/")
}
