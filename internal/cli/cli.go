// Package cli holds what the commands share: environment, flags and logging.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/plus3/fptetris/app"
	"github.com/plus3/fptetris/settings"
	"github.com/plus3/fptetris/stage"
)

// Env holds the FPT_* overrides of the flag defaults.
type Env struct {
	Settings string
	Level    int
	Debug    bool
}

// LoadEnv reads .env files into the process environment, without
// overriding variables already set, and parses the FPT_* variables.
// Missing files are fine.
func LoadEnv(files ...string) (Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("load env: %w", err)
	}
	return ParseEnv(os.Getenv)
}

// ReadEnvFile parses the FPT_* variables of one .env file without touching
// the process environment.
func ReadEnvFile(path string) (Env, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return Env{}, fmt.Errorf("read env: %w", err)
	}
	return ParseEnv(func(key string) string { return vars[key] })
}

// ParseEnv reads the FPT_* variables through get.
func ParseEnv(get func(string) string) (Env, error) {
	env := Env{Settings: get("FPT_SETTINGS")}

	if v := get("FPT_LEVEL"); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil || level < 0 {
			return env, fmt.Errorf("FPT_LEVEL: invalid level %q", v)
		}
		env.Level = level
	}

	if v := get("FPT_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return env, fmt.Errorf("FPT_DEBUG: %w", err)
		}
		env.Debug = debug
	}
	return env, nil
}

// DefaultSettingsPath is the settings file under the user config directory.
func DefaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "fptetris.json"
	}
	return filepath.Join(dir, "fptetris", "settings.json")
}

// Flags are the options every frontend accepts.
type Flags struct {
	Level       int
	ThirdPerson bool
	NoWallKick  bool
	LockDelay   bool
	NoAnimation bool
	Debug       bool
	Settings    string
	Seed        uint64
	Mute        bool
}

// Register defines the flags on fs with env providing the defaults.
func Register(fs *flag.FlagSet, env Env) *Flags {
	f := &Flags{}
	settingsPath := env.Settings
	if settingsPath == "" {
		settingsPath = DefaultSettingsPath()
	}

	fs.IntVar(&f.Level, "level", env.Level, "Starting level.")
	fs.BoolVar(&f.ThirdPerson, "tps", false, "Third-person mode: the room never turns.")
	fs.BoolVar(&f.NoWallKick, "no-wall-kick", false, "Reject rotations that hit a wall instead of shifting the piece.")
	fs.BoolVar(&f.LockDelay, "lock-delay", false, "Reset the gravity timer after every rotation.")
	fs.BoolVar(&f.NoAnimation, "no-animation", false, "Skip drop and rotation animations.")
	fs.BoolVar(&f.Debug, "debug", env.Debug, "Write logs to the logs directory.")
	fs.StringVar(&f.Settings, "settings", settingsPath, "Settings file. Empty keeps settings in memory.")
	fs.Uint64Var(&f.Seed, "seed", 0, "Piece sequence seed. Zero seeds from the clock.")
	fs.BoolVar(&f.Mute, "mute", false, "Disable audio output.")
	return f
}

// Validate rejects flag values the game cannot start with.
func (f *Flags) Validate() error {
	if f.Level < 0 {
		return fmt.Errorf("-level: invalid level %d", f.Level)
	}
	return nil
}

// Config turns the flags into stage rules.
func (f *Flags) Config() stage.Config {
	cfg := stage.DefaultConfig()
	if f.ThirdPerson {
		cfg = cfg.ThirdPerson()
	}
	cfg.WallKick = !f.NoWallKick
	cfg.LockDelay = f.LockDelay
	if f.NoAnimation {
		cfg.AnimateDrop = false
		cfg.AnimateRotation = false
	}
	return cfg
}

// Store opens the settings store the flags name.
func (f *Flags) Store() settings.Store {
	if f.Settings == "" {
		return settings.NewMemoryStore()
	}
	return settings.NewFileStore(f.Settings)
}

// Options assembles the app options around a sound backend.
func (f *Flags) Options(sound app.Audio) app.Options {
	return app.Options{
		Stage: f.Config(),
		Level: f.Level,
		Store: f.Store(),
		Audio: sound,
		Seed:  f.Seed,
	}
}
