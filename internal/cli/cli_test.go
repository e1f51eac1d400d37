package cli_test

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/fptetris/internal/cli"
	"github.com/plus3/fptetris/settings"
	"github.com/plus3/fptetris/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	vars := map[string]string{"FPT_SETTINGS": "/tmp/s.json", "FPT_LEVEL": "7", "FPT_DEBUG": "true"}
	env, err := cli.ParseEnv(func(k string) string { return vars[k] })
	require.NoError(t, err)
	assert.Equal(t, cli.Env{Settings: "/tmp/s.json", Level: 7, Debug: true}, env)

	env, err = cli.ParseEnv(func(string) string { return "" })
	require.NoError(t, err)
	assert.Equal(t, cli.Env{}, env)

	_, err = cli.ParseEnv(func(k string) string {
		if k == "FPT_LEVEL" {
			return "-1"
		}
		return ""
	})
	assert.Error(t, err)

	_, err = cli.ParseEnv(func(k string) string {
		if k == "FPT_DEBUG" {
			return "maybe"
		}
		return ""
	})
	assert.Error(t, err)
}

func TestReadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FPT_LEVEL=5\n# comment\nFPT_DEBUG=1\n"), 0o644))

	env, err := cli.ReadEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, env.Level)
	assert.True(t, env.Debug)

	_, err = cli.ReadEnvFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoadEnvMissingFile(t *testing.T) {
	t.Setenv("FPT_LEVEL", "4")
	t.Setenv("FPT_DEBUG", "")
	t.Setenv("FPT_SETTINGS", "")

	env, err := cli.LoadEnv(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Equal(t, 4, env.Level)
}

func TestRegisterDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := cli.Register(fs, cli.Env{Level: 3, Debug: true, Settings: "x.json"})
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, 3, f.Level)
	assert.True(t, f.Debug)
	assert.Equal(t, "x.json", f.Settings)
	assert.Equal(t, stage.DefaultConfig(), f.Config())
}

func TestFlagsValidate(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := cli.Register(fs, cli.Env{})
	require.NoError(t, fs.Parse([]string{"-level", "-1"}))
	assert.Error(t, flags.Validate())

	require.NoError(t, fs.Parse([]string{"-level", "9"}))
	assert.NoError(t, flags.Validate())
}

func TestFlagsConfig(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := cli.Register(fs, cli.Env{})
	require.NoError(t, fs.Parse([]string{"-tps", "-no-wall-kick", "-lock-delay", "-no-animation", "-level", "9", "-settings", "", "-seed", "5"}))

	cfg := f.Config()
	assert.False(t, cfg.FirstPerson)
	assert.False(t, cfg.WallKick)
	assert.True(t, cfg.LockDelay)
	assert.False(t, cfg.AnimateDrop)
	assert.False(t, cfg.AnimateRotation)

	_, memory := f.Store().(*settings.MemoryStore)
	assert.True(t, memory)

	opts := f.Options(nil)
	assert.Equal(t, 9, opts.Level)
	assert.Equal(t, uint64(5), opts.Seed)
}

func TestSetupLogging(t *testing.T) {
	cli.LogDir = filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	assert.Nil(t, cli.SetupLogging("fptetris", false))
	assert.Equal(t, io.Discard, log.Writer())

	f := cli.SetupLogging("fptetris", true)
	require.NotNil(t, f)
	log.Println("hello")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(filepath.Join(cli.LogDir, "fptetris.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	log.SetOutput(io.Discard)
}

func TestSetupLoggingRotates(t *testing.T) {
	cli.LogDir = t.TempDir()
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	path := filepath.Join(cli.LogDir, "big.log")
	require.NoError(t, os.WriteFile(path, make([]byte, 10*1024*1024+1), 0o644))

	f := cli.SetupLogging("big", true)
	require.NotNil(t, f)
	defer f.Close()

	_, err := os.Stat(path + ".old")
	assert.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(1024))
	log.SetOutput(io.Discard)
}
