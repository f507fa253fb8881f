package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPausableClock_StepAndPause(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	pc := NewPausableClock(mock)

	mock.Advance(50 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, pc.Step(0))

	pc.Pause()
	mock.Advance(time.Second)
	assert.Equal(t, time.Duration(0), pc.Step(0), "paused clock does not advance")
	assert.Equal(t, time.Second, pc.TotalPauseDuration())

	pc.Resume()
	mock.Advance(20 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, pc.Step(0))
	assert.Equal(t, 70*time.Millisecond, pc.Elapsed())
}

func TestPausableClock_StepCapsStalls(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	pc := NewPausableClock(mock)

	mock.Advance(5 * time.Second)
	assert.Equal(t, 250*time.Millisecond, pc.Step(250*time.Millisecond))

	mock.Advance(10 * time.Millisecond)
	assert.Equal(t, 10*time.Millisecond, pc.Step(250*time.Millisecond), "capped time is not replayed")
}

func TestPausableClock_Toggle(t *testing.T) {
	pc := NewPausableClock(NewMockTimeProvider(time.Unix(0, 0)))
	assert.True(t, pc.Toggle())
	assert.True(t, pc.IsPaused())
	assert.False(t, pc.Toggle())
	assert.False(t, pc.IsPaused())
}
