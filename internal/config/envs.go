// Package config loads the demo host settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalid is wrapped by every value validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the demo's configuration values.
type Config struct {
	GridWidth     int           // Grid columns
	GridHeight    int           // Grid rows
	ObstacleScale float64       // Generator scale, larger means fewer obstacles
	StepsPerFrame int           // Search steps between redraws
	FrameInterval time.Duration // Delay between redraws
	ResetDelay    time.Duration // Pause after a terminal result before regenerating
	Seed          int64         // Random seed, 0 means time-based
	LogFile       string        // Path of the log file
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		GridWidth:     50,
		GridHeight:    50,
		ObstacleScale: 0.4,
		StepsPerFrame: 1,
		FrameInterval: 16 * time.Millisecond,
		ResetDelay:    3 * time.Second,
		Seed:          0,
		LogFile:       "gridsearch.log",
	}
}

// Load reads a .env file if present, then overlays environment variables on Default.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from a lookup function shaped like os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	r := reader{lookup: lookup}

	cfg.GridWidth = r.intAtLeast("GRID_WIDTH", cfg.GridWidth, 2)
	cfg.GridHeight = r.intAtLeast("GRID_HEIGHT", cfg.GridHeight, 2)
	cfg.ObstacleScale = r.positiveFloat("OBSTACLE_SCALE", cfg.ObstacleScale)
	cfg.StepsPerFrame = r.intAtLeast("STEPS_PER_FRAME", cfg.StepsPerFrame, 1)
	cfg.FrameInterval = time.Duration(r.intAtLeast("FRAME_MS", int(cfg.FrameInterval/time.Millisecond), 1)) * time.Millisecond
	cfg.ResetDelay = time.Duration(r.intAtLeast("RESET_DELAY_MS", int(cfg.ResetDelay/time.Millisecond), 0)) * time.Millisecond
	cfg.Seed = r.integer("SEED", cfg.Seed)
	cfg.LogFile = r.text("LOG_FILE", cfg.LogFile)

	return cfg, errors.Join(r.errs...)
}

// reader collects parse failures so Load can report all of them at once.
type reader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (r *reader) text(key, def string) string {
	if v, ok := r.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (r *reader) intAtLeast(key string, def, lowest int) int {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%w: %s=%q must be an integer", ErrInvalid, key, v))
		return def
	}
	if n < lowest {
		r.errs = append(r.errs, fmt.Errorf("%w: %s=%d must be >= %d", ErrInvalid, key, n, lowest))
		return def
	}
	return n
}

func (r *reader) integer(key string, def int64) int64 {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%w: %s=%q must be an integer", ErrInvalid, key, v))
		return def
	}
	return n
}

func (r *reader) positiveFloat(key string, def float64) float64 {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		r.errs = append(r.errs, fmt.Errorf("%w: %s=%q must be a positive number", ErrInvalid, key, v))
		return def
	}
	return f
}
