package logger

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Dir   string // directory receiving joy2mulka.log
	Debug bool   // debug level plus pretty console echo
}

var (
	mu      sync.RWMutex
	global  = zerolog.Nop()
	logFile *os.File
	logPath string
)

// Setup opens the log file under cfg.Dir and installs the global logger.
// The returned cleanup closes the file and resets the logger to a no-op.
func Setup(cfg Config) (func() error, error) {
	dir := filepath.Clean(cfg.Dir)
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		setNop()
		return nil, err
	}

	path := filepath.Join(dir, "joy2mulka.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		setNop()
		return nil, err
	}

	level := zerolog.InfoLevel
	var w io.Writer = f
	if cfg.Debug {
		level = zerolog.DebugLevel
		w = zerolog.MultiLevelWriter(f, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	l := zerolog.New(w).Level(level).With().Timestamp().Logger()

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	global.Info().Str("path", path).Bool("debug", cfg.Debug).Msg("logger initialized")

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = zerolog.Nop()
		return cerr
	}

	return cleanup, nil
}

func L() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if logFile == nil || logPath == "" {
		return errors.New("logger not initialized")
	}
	return nil
}

func setNop() {
	mu.Lock()
	defer mu.Unlock()
	global = zerolog.Nop()
	logFile = nil
	logPath = ""
}
