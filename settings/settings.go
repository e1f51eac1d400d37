// Package settings persists the player's preferences and runs the menu
// shown on the title screen, on pause and after game over.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/plus3/fptetris/audio"
	"github.com/plus3/fptetris/stage"
)

// Key is the store key the settings blob lives under.
const Key = "settings"

// MusicOff is the music index that silences the background tracks.
const MusicOff = audio.MusicTracks

// Logger receives load and save failures.
var Logger = log.New(io.Discard, "settings: ", log.LstdFlags)

// ErrNotFound is returned by a Store for a key it does not hold.
var ErrNotFound = errors.New("settings: key not found")

// Settings is the persisted preference record.
type Settings struct {
	HiScore   int  `json:"hiScore"`
	Music     int  `json:"music"`
	SFX       bool `json:"sfx"`
	LightsOut bool `json:"lightsOut"`
	Crisis    bool `json:"crisis"`
}

// Defaults returns the settings of a first run.
func Defaults() Settings {
	return Settings{
		HiScore: stage.DefaultHiScore,
		Music:   0,
		SFX:     true,
	}
}

// Store is a string-keyed blob store.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Load reads the settings from the store. A missing or unreadable record
// yields the defaults; fields absent from the record keep their defaults.
func Load(store Store) Settings {
	s := Defaults()

	data, err := store.Get(Key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			Logger.Printf("load: %v", err)
		}
		return s
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return Defaults()
	}
	if s.Music < 0 || s.Music > MusicOff {
		s.Music = 0
	}
	return s
}

// Save writes the settings to the store.
func Save(store Store, s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := store.Set(Key, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
