package debugui

import "time"

// FrameHistory is a ring buffer of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	filled  bool
}

func NewFrameHistory(frames int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(frames, 1))}
}

// Add records one frame.
func (h *FrameHistory) Add(dt time.Duration) {
	h.samples[h.index] = float32(dt.Seconds() * 1000)
	h.index = (h.index + 1) % len(h.samples)
	if h.index == 0 {
		h.filled = true
	}
}

// Samples returns the recorded frames, oldest first.
func (h *FrameHistory) Samples() []float32 {
	if !h.filled {
		return append([]float32(nil), h.samples[:h.index]...)
	}
	out := make([]float32, 0, len(h.samples))
	out = append(out, h.samples[h.index:]...)
	return append(out, h.samples[:h.index]...)
}

// Average is the mean frame time in milliseconds, zero when empty.
func (h *FrameHistory) Average() float32 {
	samples := h.Samples()
	if len(samples) == 0 {
		return 0
	}
	var sum float32
	for _, s := range samples {
		sum += s
	}
	return sum / float32(len(samples))
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) Tick() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}
