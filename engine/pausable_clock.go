package engine

import (
	"sync"
	"time"
)

// PausableClock provides pausable game time and per-tick deltas
type PausableClock struct {
	mu sync.Mutex

	source TimeSource

	// Base time tracking
	realStartTime time.Time

	// Pause state
	paused          bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative completed pause duration

	lastStep time.Duration // Game elapsed at previous Step
}

// NewPausableClock creates a running clock reading from source
func NewPausableClock(source TimeSource) *PausableClock {
	return &PausableClock{
		source:        source,
		realStartTime: source.Now(),
	}
}

// Elapsed returns game time since clock creation, frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.elapsedLocked()
}

func (pc *PausableClock) elapsedLocked() time.Duration {
	if pc.paused {
		return pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime
	}
	return pc.source.Now().Sub(pc.realStartTime) - pc.totalPausedTime
}

// Step returns game time since the previous Step, capped at maxDelta
// Time dropped by the cap is not replayed, a stalled host resumes at normal speed
func (pc *PausableClock) Step(maxDelta time.Duration) time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.elapsedLocked()
	dt := now - pc.lastStep
	pc.lastStep = now
	if dt < 0 {
		return 0
	}
	if maxDelta > 0 && dt > maxDelta {
		return maxDelta
	}
	return dt
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.source.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.paused = false
}

// Toggle flips pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
