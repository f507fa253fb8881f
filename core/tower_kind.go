package core

import (
	"strings"

	"github.com/rotisserie/eris"
)

// ErrUnknownTowerKind is returned when a tower kind name does not resolve
var ErrUnknownTowerKind = eris.New("unknown tower kind")

// TowerKind tags a tower with its visual, firing rate, projectile and cost
type TowerKind uint8

const (
	TowerTomato TowerKind = iota
	TowerPotato
	TowerCabbage
	TowerKindCount
)

var towerKindNames = [TowerKindCount]string{
	TowerTomato:  "tomato",
	TowerPotato:  "potato",
	TowerCabbage: "cabbage",
}

func (k TowerKind) String() string {
	if k >= TowerKindCount {
		return "unknown"
	}
	return towerKindNames[k]
}

// Valid reports whether k indexes the tower table
func (k TowerKind) Valid() bool {
	return k < TowerKindCount
}

// ParseTowerKind resolves a case-insensitive kind name
func ParseTowerKind(name string) (TowerKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range towerKindNames {
		if n == name {
			return TowerKind(k), nil
		}
	}
	return 0, eris.Wrapf(ErrUnknownTowerKind, "parse %q", name)
}

// AllTowerKinds returns the purchasable kinds in panel order
func AllTowerKinds() []TowerKind {
	kinds := make([]TowerKind, 0, TowerKindCount)
	for k := TowerKind(0); k < TowerKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
