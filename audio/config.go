package audio

import (
	"time"

	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/parameter"
)

// AudioConfig holds mixer settings and per-effect volumes
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [core.SoundTypeCount]float64
	// MinInterval suppresses repeats of the same effect closer than this
	MinInterval [core.SoundTypeCount]time.Duration
}

// DefaultAudioConfig returns the built-in audio configuration
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
	}
	cfg.EffectVolumes[core.SoundDamage] = 0.8
	cfg.EffectVolumes[core.SoundKill] = 0.6
	cfg.EffectVolumes[core.SoundShot] = 0.25
	cfg.EffectVolumes[core.SoundBuild] = 0.7
	cfg.EffectVolumes[core.SoundGameOver] = 1.0

	// Potato towers fire every 100ms; one shot per cadence is plenty
	cfg.MinInterval[core.SoundShot] = 60 * time.Millisecond
	cfg.MinInterval[core.SoundKill] = 30 * time.Millisecond
	return cfg
}

// volume returns the effective volume for a sound, clamped to [0, 1]
func (c *AudioConfig) volume(sound core.SoundType) float64 {
	if sound < 0 || sound >= core.SoundTypeCount {
		return 0
	}
	v := c.EffectVolumes[sound] * c.MasterVolume
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
