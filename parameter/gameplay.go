package parameter

import (
	"time"

	"github.com/lixenwraith/tower-defense/vmath"
)

// Economy
const (
	// KillReward is credited per target death, independent of target kind
	KillReward = 10

	// LeakPenalty is subtracted from player health per target reaching path end
	LeakPenalty = 1

	// PlayerStartMoney is the initial currency
	PlayerStartMoney = 100

	// PlayerStartHealth is the initial health
	PlayerStartHealth = 10
)

// Bullet
const (
	// BulletLifetime is the Once timeout after which an unspent bullet despawns
	BulletLifetime = 2 * time.Second

	// BulletContactRadius is the bullet-to-target distance that registers a hit
	BulletContactRadius = 0.3

	// BulletDamage is the health removed per hit
	BulletDamage = 1
)

// Target
const (
	TargetDefaultSpeed  = 0.3
	TargetDefaultHealth = 3
	TargetDefaultCount  = 10

	// TargetSpawnHeight and TargetSpawnZ place the starting column of targets
	TargetSpawnHeight = 0.2
	TargetSpawnZ      = 1.5
	TargetSpawnGap    = 1.0
)

// Build sites
const (
	BuildSiteCount   = 3
	BuildSiteSpacing = 2.0
	BuildSiteHeight  = 0.8
)

// DefaultPath is the fixed polyline walked by every target, in the X/Z plane
// Starts on the spawn row so the first segment is a straight walk past the build sites
var DefaultPath = []vmath.Vec2F{
	{X: 8, Y: 1.5},
	{X: 8, Y: -3},
	{X: 14, Y: -3},
	{X: 14, Y: 4},
	{X: 20, Y: 4},
}
