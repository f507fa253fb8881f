package parameter

import "time"

// Audio Engine
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
	AudioMasterVolume = 0.5
)

// Sound Effects
const (
	DamageSoundDuration = 250 * time.Millisecond
	DamageSoundAttack   = 5 * time.Millisecond
	DamageSoundRelease  = 150 * time.Millisecond

	KillSoundDuration = 120 * time.Millisecond
	KillSoundAttack   = 2 * time.Millisecond
	KillSoundRelease  = 90 * time.Millisecond

	ShotSoundDuration = 40 * time.Millisecond
	ShotSoundAttack   = 1 * time.Millisecond
	ShotSoundRelease  = 30 * time.Millisecond

	BuildSoundNote1Duration = 80 * time.Millisecond
	BuildSoundNote2Duration = 160 * time.Millisecond
	BuildSoundAttack        = 2 * time.Millisecond
	BuildSoundRelease       = 60 * time.Millisecond

	GameOverSoundDuration = 900 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 600 * time.Millisecond
)
