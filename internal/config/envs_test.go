package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"GRID_WIDTH":      "30",
		"GRID_HEIGHT":     "20",
		"OBSTACLE_SCALE":  "0.8",
		"STEPS_PER_FRAME": "5",
		"FRAME_MS":        "40",
		"RESET_DELAY_MS":  "0",
		"SEED":            "-7",
		"LOG_FILE":        "/tmp/x.log",
	}))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.GridWidth)
	assert.Equal(t, 20, cfg.GridHeight)
	assert.InDelta(t, 0.8, cfg.ObstacleScale, 1e-12)
	assert.Equal(t, 5, cfg.StepsPerFrame)
	assert.Equal(t, 40*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, time.Duration(0), cfg.ResetDelay)
	assert.Equal(t, int64(-7), cfg.Seed)
	assert.Equal(t, "/tmp/x.log", cfg.LogFile)
}

func TestFromLookup_Invalid(t *testing.T) {
	cases := map[string]string{
		"GRID_WIDTH":      "1",
		"GRID_HEIGHT":     "tall",
		"OBSTACLE_SCALE":  "0",
		"STEPS_PER_FRAME": "0",
		"FRAME_MS":        "-3",
		"SEED":            "x",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			cfg, err := FromLookup(lookupFrom(map[string]string{key: val}))
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), key)
			assert.Equal(t, Default(), cfg, "invalid value must fall back to the default")
		})
	}
}

func TestFromLookup_ReportsAllErrors(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{
		"GRID_WIDTH":  "x",
		"GRID_HEIGHT": "y",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GRID_WIDTH")
	assert.Contains(t, err.Error(), "GRID_HEIGHT")
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GRID_WIDTH=12\nSEED=99\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	// godotenv does not override variables already present.
	t.Setenv("SEED", "5")
	os.Unsetenv("GRID_WIDTH")
	t.Cleanup(func() { os.Unsetenv("GRID_WIDTH") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.GridWidth)
	assert.Equal(t, int64(5), cfg.Seed)
}
