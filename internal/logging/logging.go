// Package logging routes the standard logger into a rotating file and reads
// the newest lines back for the sync log overlay.
//
// A full-screen TUI owns stdout, so chainview never logs to the terminal.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

// Setup points the standard logger at path and returns the writer so the
// caller can close it on exit. An empty path discards log output.
func Setup(path string) (io.Closer, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		log.SetOutput(io.Discard)
		return discard{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	log.SetOutput(writer)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.SetPrefix("chainview ")
	return writer, nil
}

type discard struct{}

func (discard) Close() error { return nil }
