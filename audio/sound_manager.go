// Package audio synthesizes the game's cues and background music with beep.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays cues and music through the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool

	sfxEnabled bool
	track      Track
	hasTrack   bool
	playing    bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:      &beep.Mixer{},
		sfxEnabled: true,
	}
}

// Initialize opens the speaker. Without it every call is a silent no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.music = nil
	sm.playing = false
	sm.initialized = false
}

// add must be called with sm.mu held.
func (sm *SoundManager) add(s beep.Streamer) {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) PlaySFX(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.sfxEnabled {
		return
	}
	if s := Cue(name, sampleRate); s != nil {
		sm.add(s)
	}
}

func (sm *SoundManager) SetSFXEnabled(on bool) {
	sm.mu.Lock()
	sm.sfxEnabled = on
	sm.mu.Unlock()
}

func (sm *SoundManager) SFXEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.sfxEnabled
}

// SetMusic stops whatever plays and selects the track for the next
// PlaySlowMusic or PlayFastMusic.
func (sm *SoundManager) SetMusic(t Track) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.stopLocked()
	sm.track = t
	sm.hasTrack = true
}

// RemoveMusic stops and forgets the track.
func (sm *SoundManager) RemoveMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.stopLocked()
	sm.hasTrack = false
}

func (sm *SoundManager) PlaySlowMusic() { sm.playMusic(false) }
func (sm *SoundManager) PlayFastMusic() { sm.playMusic(true) }

func (sm *SoundManager) playMusic(fast bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.hasTrack {
		return
	}
	sm.stopLocked()
	sm.music = &beep.Ctrl{Streamer: newMelody(sm.track, fast, sampleRate)}
	sm.add(sm.music)
	sm.playing = true
}

func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.stopLocked()
}

func (sm *SoundManager) stopLocked() {
	if sm.music != nil {
		speaker.Lock()
		// A Ctrl without a streamer drains and the mixer drops it.
		sm.music.Streamer = nil
		speaker.Unlock()
		sm.music = nil
	}
	sm.playing = false
}

func (sm *SoundManager) IsMusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.playing
}

// Null is a silent stand-in for headless runs and machines without audio.
type Null struct{}

func (Null) PlaySFX(string)     {}
func (Null) SetSFXEnabled(bool) {}
func (Null) SFXEnabled() bool   { return false }
func (Null) SetMusic(Track)     {}
func (Null) RemoveMusic()       {}
func (Null) PlaySlowMusic()     {}
func (Null) PlayFastMusic()     {}
func (Null) StopMusic()         {}
func (Null) IsMusicPlaying() bool {
	return false
}
