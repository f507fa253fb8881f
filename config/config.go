// Package config resolves runtime settings from defaults, an optional env file and the environment
package config

import (
	"time"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/tower-defense/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = eris.New("invalid configuration")

// Config holds every host-tunable setting
// Variables use the TD_ prefix; cobra flags override them afterwards
type Config struct {
	TickMillis int    `config:"TD_TICK_MILLIS"`
	Debug      bool   `config:"TD_DEBUG"`
	Mute       bool   `config:"TD_MUTE"`
	LogDir     string `config:"TD_LOG_DIR"`

	StartMoney   uint32  `config:"TD_START_MONEY"`
	StartHealth  uint32  `config:"TD_START_HEALTH"`
	TargetCount  int     `config:"TD_TARGET_COUNT"`
	TargetSpeed  float64 `config:"TD_TARGET_SPEED"`
	TargetHealth int     `config:"TD_TARGET_HEALTH"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		TickMillis:   int(parameter.GameUpdateInterval / time.Millisecond),
		LogDir:       "logs",
		StartMoney:   parameter.PlayerStartMoney,
		StartHealth:  parameter.PlayerStartHealth,
		TargetCount:  parameter.TargetDefaultCount,
		TargetSpeed:  parameter.TargetDefaultSpeed,
		TargetHealth: parameter.TargetDefaultHealth,
	}
}

// Load overlays the env file at path (if non-empty) and then the process environment onto the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	builder := jlconfig.FromEnv()
	if path != "" {
		builder = jlconfig.From(path).FromEnv()
	}
	if err := builder.To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to read configuration")
	}
	return cfg, cfg.Validate()
}

// FromEnv is Load without an env file
func FromEnv() (Config, error) {
	return Load("")
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	if c.TickMillis <= 0 {
		return eris.Wrapf(ErrInvalid, "tick interval must be positive, got %dms", c.TickMillis)
	}
	if c.TargetSpeed <= 0 {
		return eris.Wrapf(ErrInvalid, "target speed must be positive, got %g", c.TargetSpeed)
	}
	if c.TargetCount < 0 {
		return eris.Wrapf(ErrInvalid, "target count must not be negative, got %d", c.TargetCount)
	}
	if c.TargetHealth <= 0 {
		return eris.Wrapf(ErrInvalid, "target health must be positive, got %d", c.TargetHealth)
	}
	if c.StartHealth == 0 {
		return eris.Wrap(ErrInvalid, "start health must be positive")
	}
	return nil
}

// TickInterval is the fixed simulation step
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}
