package input

import "github.com/lixenwraith/tower-defense/core"

// IntentType discriminates semantic actions the host loop reacts to
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Host-level intents
	IntentQuit       // q, Ctrl+C
	IntentPause      // p
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// World-level intents, applied by the handler itself
	IntentFocusNext      // Tab, Right
	IntentFocusPrev      // Shift+Tab, Left
	IntentToggleSite     // Space, Enter
	IntentClearSelection // Esc
	IntentBuy            // 1-3
	IntentPointer        // Mouse move or click
)

// Intent is the decoded meaning of one terminal event
type Intent struct {
	Type IntentType
	Kind core.TowerKind // IntentBuy only
}
