package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tower-defense/core"
)

// attached returns an engine that believes the speaker is open so mixing can be observed
func attached(now *time.Time) *Engine {
	e := NewEngine(DefaultAudioConfig())
	e.started = true
	e.now = func() time.Time { return *now }
	return e
}

func TestPlayBeforeStart(t *testing.T) {
	e := NewEngine(nil)
	assert.False(t, e.Play(core.SoundKill))
	assert.False(t, e.IsRunning())
	assert.Zero(t, e.Plays())
}

func TestStartDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	e := NewEngine(cfg)
	require.ErrorIs(t, e.Start(), ErrDisabled)
	assert.False(t, e.IsRunning())
}

func TestPlayMixesEffect(t *testing.T) {
	now := time.Unix(0, 0)
	e := attached(&now)

	require.True(t, e.Play(core.SoundBuild))
	assert.Equal(t, 1, e.mixer.Len())
	assert.Equal(t, int64(1), e.Plays())

	assert.False(t, e.Play(core.SoundType(-1)))
	assert.False(t, e.Play(core.SoundTypeCount))
}

func TestPlayRateLimited(t *testing.T) {
	now := time.Unix(0, 0)
	e := attached(&now)
	gap := e.cfg.MinInterval[core.SoundShot]
	require.Positive(t, gap)

	assert.True(t, e.Play(core.SoundShot))
	assert.False(t, e.Play(core.SoundShot), "repeat inside the interval is suppressed")
	assert.True(t, e.Play(core.SoundDamage), "other sounds are independent")

	now = now.Add(gap)
	assert.True(t, e.Play(core.SoundShot))
	assert.Equal(t, int64(3), e.Plays())
}

func TestToggleMute(t *testing.T) {
	now := time.Unix(0, 0)
	e := attached(&now)

	require.True(t, e.Play(core.SoundGameOver))
	assert.True(t, e.ToggleMute())
	assert.True(t, e.IsMuted())
	assert.Zero(t, e.mixer.Len(), "muting drops active effects")
	assert.False(t, e.Play(core.SoundGameOver))

	assert.False(t, e.ToggleMute())
	assert.False(t, e.IsMuted())
	assert.True(t, e.Play(core.SoundGameOver))
}
