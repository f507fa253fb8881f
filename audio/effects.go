package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite wave generator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep is an oscillator whose frequency slides linearly from start to end
type sweep struct {
	oscillator
	start, end float64
}

// NewSweep creates a pitch-sliding wave generator
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		oscillator: oscillator{freq: start, duration: rate.N(duration), wave: wave, rate: rate},
		start:      start,
		end:        end,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if s.position >= s.duration {
			return n, n > 0
		}
		t := float64(s.position) / float64(s.duration)
		s.freq = s.start + (s.end-s.start)*t
		m, _ := s.oscillator.Stream(samples[n : n+1])
		n += m
	}
	return n, true
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack, flat sustain and linear release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateDamageSound is a low saw buzz played when a target leaks
func CreateDamageSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(90.0, parameter.DamageSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.DamageSoundDuration, parameter.DamageSoundAttack, parameter.DamageSoundRelease, rate)

	return newVolume(shaped, cfg.volume(core.SoundDamage))
}

// CreateKillSound is a short square pop with a noise burst
func CreateKillSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	pop := NewSweep(660.0, 220.0, parameter.KillSoundDuration, WaveSquare, rate)
	popShaped := NewEnvelope(pop, parameter.KillSoundDuration, parameter.KillSoundAttack, parameter.KillSoundRelease, rate)

	noise := NewOscillator(0, parameter.KillSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.KillSoundDuration, parameter.KillSoundAttack, parameter.KillSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(popShaped, 0.6),
		newVolume(noiseShaped, 0.4),
	)
	return newVolume(mixed, cfg.volume(core.SoundKill))
}

// CreateShotSound is a very short filtered noise tick
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.ShotSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease, rate)

	return newVolume(shaped, cfg.volume(core.SoundShot))
}

// CreateBuildSound is a rising two-note chime
func CreateBuildSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5
	n1 := NewOscillator(659.25, parameter.BuildSoundNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, parameter.BuildSoundNote1Duration, parameter.BuildSoundAttack, parameter.BuildSoundRelease/2, rate)

	// A5
	n2 := NewOscillator(880.0, parameter.BuildSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, parameter.BuildSoundNote2Duration, parameter.BuildSoundAttack, parameter.BuildSoundRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volume(core.SoundBuild))
}

// CreateGameOverSound is a long falling saw with a sine undertone
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fall := NewSweep(440.0, 110.0, parameter.GameOverSoundDuration, WaveSaw, rate)
	fallShaped := NewEnvelope(fall, parameter.GameOverSoundDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)

	under := NewSweep(220.0, 55.0, parameter.GameOverSoundDuration, WaveSine, rate)
	underShaped := NewEnvelope(under, parameter.GameOverSoundDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fallShaped, 0.5),
		newVolume(underShaped, 0.5),
	)
	return newVolume(mixed, cfg.volume(core.SoundGameOver))
}

// SoundEffect builds a fresh streamer for the given sound, nil for unknown types
func SoundEffect(sound core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch sound {
	case core.SoundDamage:
		return CreateDamageSound(cfg)
	case core.SoundKill:
		return CreateKillSound(cfg)
	case core.SoundShot:
		return CreateShotSound(cfg)
	case core.SoundBuild:
		return CreateBuildSound(cfg)
	case core.SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
