package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/parameter"
)

// ErrDisabled is returned by Start when the configuration turns audio off
var ErrDisabled = eris.New("audio disabled")

// Engine mixes synthesized effects into the system speaker
// Play is safe to call from the game loop goroutine while the speaker drains the mixer
type Engine struct {
	cfg   *AudioConfig
	mixer *beep.Mixer

	mu       sync.Mutex
	started  bool
	lastPlay [core.SoundTypeCount]time.Time
	now      func() time.Time

	muted atomic.Bool
	plays atomic.Int64
}

// NewEngine creates an engine; nothing is audible until Start succeeds
func NewEngine(cfg *AudioConfig) *Engine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &Engine{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Start opens the speaker and attaches the mixer
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return nil
	}
	if !e.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(e.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferLength)); err != nil {
		return eris.Wrapf(err, "failed to initialize speaker at %d Hz", e.cfg.SampleRate)
	}
	speaker.Play(e.mixer)
	e.started = true
	return nil
}

// Stop silences all active effects and detaches from the speaker
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	e.started = false
}

// Play queues a new instance of sound, reporting whether it was mixed in
func (e *Engine) Play(sound core.SoundType) bool {
	if e.muted.Load() || sound < 0 || sound >= core.SoundTypeCount {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return false
	}

	now := e.now()
	if gap := e.cfg.MinInterval[sound]; gap > 0 && now.Sub(e.lastPlay[sound]) < gap {
		return false
	}

	streamer := SoundEffect(sound, e.cfg)
	if streamer == nil {
		return false
	}
	e.lastPlay[sound] = now

	speaker.Lock()
	e.mixer.Add(streamer)
	speaker.Unlock()

	e.plays.Add(1)
	return true
}

// ToggleMute flips the mute flag and returns the new state
// Muting also drops effects already in the mixer
func (e *Engine) ToggleMute() bool {
	for {
		old := e.muted.Load()
		if e.muted.CompareAndSwap(old, !old) {
			if !old {
				e.clearActive()
			}
			return !old
		}
	}
}

// IsMuted reports the mute flag
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsRunning reports whether the speaker is attached
func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.started
}

// Plays returns the number of effects mixed in since creation
func (e *Engine) Plays() int64 {
	return e.plays.Load()
}

func (e *Engine) clearActive() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
}
