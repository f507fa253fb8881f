package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundDamage SoundType = iota // Target leaked through, player hurt
	SoundKill                    // Target destroyed
	SoundShot                    // Tower fired
	SoundBuild                   // Tower purchased
	SoundGameOver                // Player health reached zero
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundDamage:
		return "damage"
	case SoundKill:
		return "kill"
	case SoundShot:
		return "shot"
	case SoundBuild:
		return "build"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
