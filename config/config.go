// Package config reads game settings from the environment, optionally seeded
// from a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	EnvSeed     = "TETRIS_SEED"
	EnvLogLevel = "TETRIS_LOG_LEVEL"
	EnvLogFile  = "TETRIS_LOG_FILE"
	EnvSound    = "TETRIS_SOUND"

	DefaultLogFile = "tetris.log"

	// StderrLogFile selects standard error instead of a log file.
	StderrLogFile = "-"
)

type Config struct {
	Seed     int64
	LogLevel zerolog.Level
	LogFile  string
	Sound    bool
}

// Load reads the given env files and then the process environment. Missing
// env files are not an error; variables already set in the environment win
// over the files.
func Load(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}

	cfg := Config{
		Seed:     time.Now().UnixNano(),
		LogLevel: zerolog.InfoLevel,
		LogFile:  DefaultLogFile,
		Sound:    true,
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}

	if v := os.Getenv(EnvSound); v != "" {
		sound, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvSound, err)
		}
		cfg.Sound = sound
	}

	return cfg, nil
}

// NewLogger opens the configured log destination. The returned closer must be
// called on shutdown.
func (c Config) NewLogger() (zerolog.Logger, io.Closer, error) {
	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	if c.LogFile == "" || c.LogFile == StderrLogFile {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	} else {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file %s: %w", c.LogFile, err)
		}
		w, closer = f, f
	}

	logger := zerolog.New(w).Level(c.LogLevel).With().Timestamp().Logger()
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
