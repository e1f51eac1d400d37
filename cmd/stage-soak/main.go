package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/fptetris/internal/cli"
	"github.com/plus3/fptetris/stage"
)

const tickRate = 60

func main() {
	env, err := cli.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	flags := cli.Register(flag.CommandLine, env)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	games := flag.Int("games", 4, "Number of games played side by side.")
	tries := flag.Int("tries", 40, "Taps the bot spends on one piece before dropping it where it is.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()
	if err := flags.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *games < 1 {
		fmt.Fprintf(os.Stderr, "-games: need at least one game, got %d\n", *games)
		os.Exit(2)
	}

	if logFile := cli.SetupLogging("stage-soak", flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	seed := flags.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	cfg := flags.Config()

	log.Printf("Starting stage soak, %d games, seed %d...", *games, seed)

	report := &Report{
		Duration:       *duration,
		Seed:           seed,
		Level:          flags.Level,
		FirstPerson:    cfg.FirstPerson,
		Parallel:       *games,
		GCPauseMetrics: *gcPauseMetrics,
	}
	world := NewWorld(*games, *tries, func(index int, sound stage.Sound, shell stage.Shell) *stage.Stage {
		opts := stage.Options{
			Level:  flags.Level,
			Source: rand.NewPCG(seed, uint64(index)),
		}
		return stage.New(cfg, opts, sound, shell)
	})

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s...", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	dt := 1.0 / tickRate

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			world.Tick(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.collect(world.Tally())
	report.Systems = world.Stats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Stage Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
