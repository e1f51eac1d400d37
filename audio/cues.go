package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Note frequencies used by the cues and tracks.
const (
	noteE3 = 164.81
	noteA3 = 220.00
	noteB3 = 246.94
	noteC4 = 261.63
	noteD4 = 293.66
	noteE4 = 329.63
	noteF4 = 349.23
	noteG4 = 392.00
	noteA4 = 440.00
	noteB4 = 493.88
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
	noteG5 = 783.99
	noteA5 = 880.00
	noteC6 = 1046.50
)

type cueBuilder func(rate beep.SampleRate) beep.Streamer

func arpeggio(wave WaveType, step time.Duration, freqs ...float64) cueBuilder {
	return func(rate beep.SampleRate) beep.Streamer {
		notes := make([]beep.Streamer, len(freqs))
		for i, f := range freqs {
			notes[i] = tone(f, step, wave, rate)
		}
		return beep.Seq(notes...)
	}
}

var cues = map[string]cueBuilder{
	"rotate": arpeggio(WaveSquare, 30*time.Millisecond, noteA5),
	"united": func(rate beep.SampleRate) beep.Streamer {
		return beep.Mix(
			tone(noteE3, 80*time.Millisecond, WaveTriangle, rate),
			newVolume(NewEnvelope(NewOscillator(0, 60*time.Millisecond, WaveNoise, rate),
				60*time.Millisecond, time.Millisecond, 50*time.Millisecond, rate), 0.3),
		)
	},
	"line":   arpeggio(WaveSquare, 60*time.Millisecond, noteC5, noteE5, noteG5),
	"tetris": arpeggio(WaveSquare, 60*time.Millisecond, noteC5, noteE5, noteG5, noteC6, noteG5, noteC6),
	"level":  arpeggio(WaveTriangle, 70*time.Millisecond, noteG4, noteC5, noteE5, noteG5),
	"over":   arpeggio(WaveTriangle, 180*time.Millisecond, noteG4, noteE4, noteC4, noteA3),
	"pause":  arpeggio(WaveSquare, 50*time.Millisecond, noteE5, noteC5, noteE5),
	"beep":   arpeggio(WaveSquare, 40*time.Millisecond, noteA4),
}

// CueNames lists every cue the manager can play, sorted.
func CueNames() []string {
	return []string{"beep", "level", "line", "over", "pause", "rotate", "tetris", "united"}
}

// Cue builds a fresh streamer for the named cue, or nil if unknown.
func Cue(name string, rate beep.SampleRate) beep.Streamer {
	build, ok := cues[name]
	if !ok {
		return nil
	}
	return newVolume(build(rate), 0.25)
}
