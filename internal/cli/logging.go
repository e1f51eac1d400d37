package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/plus3/fptetris/app"
	"github.com/plus3/fptetris/scene"
	"github.com/plus3/fptetris/settings"
	"github.com/plus3/fptetris/stage"
)

const maxLogSize = 10 * 1024 * 1024

// LogDir is where debug logs go, relative to the working directory.
var LogDir = "logs"

// SetupLogging points the standard logger and every package logger at
// LogDir/name.log when debug is set, rotating the previous file once it
// passes 10 MB. Without debug everything is discarded and the returned
// file is nil.
func SetupLogging(name string, debug bool) *os.File {
	if !debug {
		setLogOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(LogDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		setLogOutput(io.Discard)
		return nil
	}

	path := filepath.Join(LogDir, name+".log")
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(path, path+".old"); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		setLogOutput(io.Discard)
		return nil
	}

	setLogOutput(f)
	log.Printf("=== %s started ===", name)
	return f
}

func setLogOutput(w io.Writer) {
	log.SetOutput(w)
	for _, l := range []*log.Logger{scene.Logger, stage.Logger, settings.Logger, app.Logger} {
		l.SetOutput(w)
	}
}
