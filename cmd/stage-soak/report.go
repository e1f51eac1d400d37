package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/fptetris/ecs"
	"github.com/plus3/fptetris/stage"
)

type Report struct {
	// Configuration
	Duration    time.Duration
	Seed        uint64
	Level       int
	FirstPerson bool
	Parallel    int

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Systems        []ecs.SystemStats
	Started        int
	Games          int
	Lines          int
	Tetrises       int
	Pieces         int
	BestScore      int
	BestLevel      int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// collect folds the finished games and the cue counts into the report.
// Every commit plays exactly one of united, line or tetris.
func (r *Report) collect(t *Tally) {
	cues := t.Cues
	r.Started = t.Started
	r.Games = len(t.Finished)
	for _, g := range t.Finished {
		r.Lines += g.Lines
		r.BestScore = max(r.BestScore, g.Score)
		r.BestLevel = max(r.BestLevel, g.Level)
	}
	r.Tetrises = cues[stage.CueTetris]
	r.Pieces = cues[stage.CueUnited] + cues[stage.CueLine] + cues[stage.CueTetris]
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Stage Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Starting Level:** {{.Level}}
- **First Person:** {{.FirstPerson}}
- **Games In Flight:** {{.Parallel}}

## Games
- **Started Games:** {{.Started}}
- **Finished Games:** {{.Games}}
- **Pieces Committed:** {{.Pieces}}
- **Lines (finished games):** {{.Lines}}
- **Tetrises:** {{.Tetrises}}
- **Best Score:** {{.BestScore}}
- **Best Level:** {{.BestLevel}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Soak Time:** {{.TotalTime}}
- **Simulated Time:** {{ticks .TotalUpdates}}
- **Update Time (Tick):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{range .Systems}}- **System {{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory Usage (MB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"ticks": func(n int64) string {
			return (time.Duration(n) * time.Second / tickRate).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
