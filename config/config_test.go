package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tower-defense/parameter"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, parameter.GameUpdateInterval, cfg.TickInterval())
	assert.Equal(t, uint32(parameter.PlayerStartMoney), cfg.StartMoney)
	assert.False(t, cfg.Mute)
}

func TestFromEnvOverlay(t *testing.T) {
	t.Setenv("TD_TICK_MILLIS", "20")
	t.Setenv("TD_START_MONEY", "250")
	t.Setenv("TD_TARGET_SPEED", "0.75")
	t.Setenv("TD_MUTE", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 20*time.Millisecond, cfg.TickInterval())
	assert.Equal(t, uint32(250), cfg.StartMoney)
	assert.InDelta(t, 0.75, cfg.TargetSpeed, 1e-9)
	assert.True(t, cfg.Mute)
	// Untouched fields keep their defaults
	assert.Equal(t, parameter.TargetDefaultCount, cfg.TargetCount)
	assert.Equal(t, "logs", cfg.LogDir)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "td.env")
	require.NoError(t, os.WriteFile(path, []byte("TD_TARGET_COUNT=4\nTD_START_HEALTH=3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.TargetCount)
	assert.Equal(t, uint32(3), cfg.StartHealth)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick", func(c *Config) { c.TickMillis = 0 }},
		{"negative tick", func(c *Config) { c.TickMillis = -5 }},
		{"zero speed", func(c *Config) { c.TargetSpeed = 0 }},
		{"negative count", func(c *Config) { c.TargetCount = -1 }},
		{"zero target health", func(c *Config) { c.TargetHealth = 0 }},
		{"zero start health", func(c *Config) { c.StartHealth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestFromEnvRejectsInvalid(t *testing.T) {
	t.Setenv("TD_TICK_MILLIS", "0")
	_, err := FromEnv()
	assert.ErrorIs(t, err, ErrInvalid)
}
