package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Track selects a background tune.
type Track int

const (
	TrackType1 Track = iota
	TrackType2
	TrackType3
	TrackCrisis
)

// MusicTracks is the number of selectable tunes; the crisis track is not
// one of them.
const MusicTracks = 3

type note struct {
	freq  float64 // 0 is a rest
	beats float64
}

type pattern struct {
	bpm   float64
	wave  WaveType
	notes []note
}

var patterns = map[Track]pattern{
	TrackType1: {bpm: 144, wave: WaveSquare, notes: []note{
		{noteE5, 1}, {noteB4, .5}, {noteC5, .5}, {noteD5, 1}, {noteC5, .5}, {noteB4, .5},
		{noteA4, 1}, {noteA4, .5}, {noteC5, .5}, {noteE5, 1}, {noteD5, .5}, {noteC5, .5},
		{noteB4, 1.5}, {noteC5, .5}, {noteD5, 1}, {noteE5, 1},
		{noteC5, 1}, {noteA4, 1}, {noteA4, 1}, {0, 1},
	}},
	TrackType2: {bpm: 132, wave: WaveTriangle, notes: []note{
		{noteA4, .5}, {noteC5, .5}, {noteE5, .5}, {noteC5, .5},
		{noteG4, .5}, {noteB4, .5}, {noteD5, .5}, {noteB4, .5},
		{noteF4, .5}, {noteA4, .5}, {noteC5, .5}, {noteA4, .5},
		{noteE4, .5}, {noteG4, .5}, {noteB4, .5}, {0, .5},
	}},
	TrackType3: {bpm: 120, wave: WaveSquare, notes: []note{
		{noteC5, 1}, {noteE5, .5}, {noteD5, .5}, {noteC5, 1}, {noteG4, 1},
		{noteA4, 1}, {noteB4, .5}, {noteC5, .5}, {noteD5, 2},
	}},
	TrackCrisis: {bpm: 96, wave: WaveTriangle, notes: []note{
		{noteE3, .5}, {0, .5}, {noteE3, .5}, {noteB3, .5},
		{noteE3, .5}, {0, .5}, {noteE3, .5}, {noteA3, .5},
	}},
}

// melody loops a pattern forever.
type melody struct {
	rate     beep.SampleRate
	wave     WaveType
	starts   []int
	freqs    []float64
	total    int
	position int
	phase    float64
}

// newMelody builds the looping streamer of a track. Fast tracks play the
// same notes at a higher tempo.
func newMelody(t Track, fast bool, rate beep.SampleRate) *melody {
	p := patterns[t]
	bpm := p.bpm
	if fast {
		bpm *= 1.4
	}
	beat := float64(rate) * 60 / bpm

	m := &melody{rate: rate, wave: p.wave}
	pos := 0
	for _, n := range p.notes {
		m.starts = append(m.starts, pos)
		m.freqs = append(m.freqs, n.freq)
		pos += int(n.beats * beat)
	}
	m.total = pos
	return m
}

func (m *melody) noteAt(pos int) (index, offset, length int) {
	for i := len(m.starts) - 1; i >= 0; i-- {
		if pos >= m.starts[i] {
			end := m.total
			if i+1 < len(m.starts) {
				end = m.starts[i+1]
			}
			return i, pos - m.starts[i], end - m.starts[i]
		}
	}
	return 0, pos, m.total
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx, offset, length := m.noteAt(m.position % m.total)
		freq := m.freqs[idx]

		val := 0.0
		if freq > 0 {
			// Each note decays to leave a gap before the next.
			decay := math.Max(0, 1-float64(offset)/float64(length))
			val = 0.15 * decay * waveSample(m.wave, m.phase)
			m.phase += freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}

		samples[i][0] = val
		samples[i][1] = val
		m.position++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }
