package component

import "github.com/lixenwraith/tower-defense/core"

// Interaction is the pointer state of a UI element for the current tick
type Interaction uint8

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionClicked
)

func (i Interaction) String() string {
	switch i {
	case InteractionHovered:
		return "hovered"
	case InteractionClicked:
		return "clicked"
	default:
		return "none"
	}
}

// ButtonComponent is a tower purchase button
// Affordable is a derived cache, recomputed every tick from player money
type ButtonComponent struct {
	Kind        core.TowerKind
	Cost        uint32
	Affordable  bool
	Interaction Interaction
	Slot        int // Left-to-right panel position
}
