package parameter

import (
	"time"

	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/vmath"
)

// TowerStats is the fixed per-kind data: gameplay stats and asset names
type TowerStats struct {
	Cost           uint32
	FireInterval   time.Duration
	Range          float64
	BulletSpeed    float64
	MuzzleOffset   vmath.Vec3F
	TowerAsset     string
	BulletAsset    string
	ButtonAsset    string
	DisplayName    string
	ButtonShortcut rune
}

// TowerMuzzleOffset is the local-space bullet spawn point for every kind
var TowerMuzzleOffset = vmath.Vec3F{X: 0, Y: 0.6, Z: 0}

// TowerKinds is the kind-to-stats table, read-only after init
var TowerKinds = [core.TowerKindCount]TowerStats{
	core.TowerTomato: {
		Cost:           50,
		FireInterval:   500 * time.Millisecond,
		Range:          4.5,
		BulletSpeed:    3.5,
		MuzzleOffset:   TowerMuzzleOffset,
		TowerAsset:     "tower.tomato",
		BulletAsset:    "bullet.tomato",
		ButtonAsset:    "button.tomato",
		DisplayName:    "Tomato",
		ButtonShortcut: '1',
	},
	core.TowerPotato: {
		Cost:           80,
		FireInterval:   100 * time.Millisecond,
		Range:          4.5,
		BulletSpeed:    6.5,
		MuzzleOffset:   TowerMuzzleOffset,
		TowerAsset:     "tower.potato",
		BulletAsset:    "bullet.potato",
		ButtonAsset:    "button.potato",
		DisplayName:    "Potato",
		ButtonShortcut: '2',
	},
	core.TowerCabbage: {
		Cost:           110,
		FireInterval:   800 * time.Millisecond,
		Range:          4.5,
		BulletSpeed:    1.5,
		MuzzleOffset:   TowerMuzzleOffset,
		TowerAsset:     "tower.cabbage",
		BulletAsset:    "bullet.cabbage",
		ButtonAsset:    "button.cabbage",
		DisplayName:    "Cabbage",
		ButtonShortcut: '3',
	},
}

// TowerStatsFor returns the table row for kind
// Invalid kinds fall back to the first row
func TowerStatsFor(kind core.TowerKind) TowerStats {
	if !kind.Valid() {
		return TowerKinds[0]
	}
	return TowerKinds[kind]
}
