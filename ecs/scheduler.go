package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats summarizes every system the scheduler ran.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats is the execution timing of one system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// Named lets a system report a name other than its type name.
type Named interface {
	Name() string
}

// binder is implemented by *Query[T] and *Singleton[T].
type binder interface {
	Init(storage *Storage)
}

type executor interface {
	Execute()
}

type systemEntry struct {
	system System
	stats  SystemStats
}

// Scheduler runs systems in registration order, once per frame.
type Scheduler struct {
	storage  *Storage
	systems  []*systemEntry
	queries  []executor
	commands *Commands
	frames   int64
}

func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage:  storage,
		commands: newCommands(),
	}
}

func (s *Scheduler) Storage() *Storage {
	return s.storage
}

// Register appends a system and binds its Query and Singleton fields.
func (s *Scheduler) Register(system System) {
	s.bind(system)
	s.systems = append(s.systems, &systemEntry{
		system: system,
		stats:  SystemStats{Name: systemName(system)},
	})
}

func (s *Scheduler) bind(system System) {
	v := reflect.ValueOf(system)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()

	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}
		b, ok := field.Addr().Interface().(binder)
		if !ok {
			continue
		}
		b.Init(s.storage)
		if q, ok := b.(executor); ok {
			s.queries = append(s.queries, q)
		}
	}
}

func systemName(system System) string {
	if n, ok := system.(Named); ok {
		return n.Name()
	}
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Once runs one frame: snapshot every query, run each system, then flush
// the frame's commands.
func (s *Scheduler) Once(dt float64) {
	for _, q := range s.queries {
		q.Execute()
	}

	frame := &UpdateFrame{
		DeltaTime: dt,
		Commands:  s.commands,
		Storage:   s.storage,
	}

	for _, e := range s.systems {
		start := time.Now()
		e.system.Execute(frame)
		e.record(time.Since(start))
	}

	s.commands.Flush(s.storage)
	s.frames++
}

func (e *systemEntry) record(d time.Duration) {
	st := &e.stats
	if st.ExecutionCount == 0 || d < st.MinDuration {
		st.MinDuration = d
	}
	st.MaxDuration = max(st.MaxDuration, d)
	st.ExecutionCount++
	st.LastDuration = d
	st.TotalDuration += d
	st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
}

// Run calls Once at every tick of interval until ctx is done, passing the
// measured time since the previous frame.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}

// GetStats returns a snapshot of the per-system timings.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systems)),
	}
	for i, e := range s.systems {
		stats.Systems[i] = e.stats
		stats.TotalExecutions += e.stats.ExecutionCount
	}
	return stats
}
