package cli

import (
	"log"

	"github.com/plus3/fptetris/app"
	"github.com/plus3/fptetris/audio"
)

// OpenAudio starts the speaker. The game runs silently when that fails or
// when muted; the returned cleanup is always safe to call.
func OpenAudio(mute bool) (app.Audio, func()) {
	if mute {
		return audio.Null{}, func() {}
	}

	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		return audio.Null{}, func() {}
	}
	return sm, sm.Cleanup
}
