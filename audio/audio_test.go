package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(44100)

// drain streams s to exhaustion and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for range 10000 {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer did not terminate")
	return total
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, testRate)
		assert.Equal(t, testRate.N(100*time.Millisecond), drain(t, osc))
	}
}

func TestOscillatorRange(t *testing.T) {
	osc := NewOscillator(440, 50*time.Millisecond, WaveTriangle, testRate)
	buf := make([][2]float64, 1000)
	n, ok := osc.Stream(buf)
	require.True(t, ok)
	for _, s := range buf[:n] {
		assert.LessOrEqual(t, s[0], 1.0)
		assert.GreaterOrEqual(t, s[0], -1.0)
		assert.Equal(t, s[0], s[1])
	}
}

func TestEnvelopeRampsFromSilence(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(440, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.InDelta(t, 0, buf[0][0], 1e-9, "attack starts silent")
	mid := buf[n/2][0]
	assert.InDelta(t, 1, abs(mid), 1e-9, "full volume between attack and release")
	assert.Less(t, abs(buf[n-1][0]), 0.01, "release ends near silence")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestEveryCueTerminates(t *testing.T) {
	for _, name := range CueNames() {
		t.Run(name, func(t *testing.T) {
			s := Cue(name, testRate)
			require.NotNil(t, s)
			n := drain(t, s)
			assert.Positive(t, n)
			assert.Less(t, n, testRate.N(2*time.Second))
		})
	}
	assert.Nil(t, Cue("nope", testRate))
	assert.Len(t, cues, len(CueNames()))
}

func TestMelodyLoops(t *testing.T) {
	for track := TrackType1; track <= TrackCrisis; track++ {
		m := newMelody(track, false, testRate)
		require.Positive(t, m.total)

		buf := make([][2]float64, m.total+100)
		n, ok := m.Stream(buf)
		assert.True(t, ok)
		assert.Equal(t, len(buf), n)
	}
}

func TestFastMelodyIsShorter(t *testing.T) {
	slow := newMelody(TrackType1, false, testRate)
	fast := newMelody(TrackType1, true, testRate)
	assert.Less(t, fast.total, slow.total)
}

func TestMelodyNoteLookup(t *testing.T) {
	m := newMelody(TrackType2, false, testRate)
	idx, offset, length := m.noteAt(0)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, offset)
	assert.Equal(t, m.starts[1], length)

	idx, _, _ = m.noteAt(m.starts[3] + 1)
	assert.Equal(t, 3, idx)

	idx, _, length = m.noteAt(m.total - 1)
	assert.Equal(t, len(m.starts)-1, idx)
	assert.Equal(t, m.total-m.starts[idx], length)
}

// Without Initialize the manager tracks state but never touches the speaker.
func TestSoundManagerState(t *testing.T) {
	sm := NewSoundManager()
	assert.True(t, sm.SFXEnabled())

	sm.PlaySlowMusic()
	assert.False(t, sm.IsMusicPlaying(), "no track selected")

	sm.SetMusic(TrackType2)
	assert.False(t, sm.IsMusicPlaying())
	sm.PlaySlowMusic()
	assert.True(t, sm.IsMusicPlaying())
	sm.PlayFastMusic()
	assert.True(t, sm.IsMusicPlaying())

	sm.StopMusic()
	assert.False(t, sm.IsMusicPlaying())

	sm.PlayFastMusic()
	sm.RemoveMusic()
	assert.False(t, sm.IsMusicPlaying())
	sm.PlaySlowMusic()
	assert.False(t, sm.IsMusicPlaying())

	sm.SetSFXEnabled(false)
	assert.False(t, sm.SFXEnabled())
	sm.PlaySFX("beep")
	assert.Equal(t, 0, sm.mixer.Len())

	sm.Cleanup()
}

func TestNull(t *testing.T) {
	var n Null
	n.SetMusic(TrackCrisis)
	n.PlaySlowMusic()
	assert.False(t, n.IsMusicPlaying())
	assert.False(t, n.SFXEnabled())
}
