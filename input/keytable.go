package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/parameter"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Tab, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the standard bindings; tower shortcuts come from the kind table
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:   {Type: IntentQuit},
			tcell.KeyCtrlQ:   {Type: IntentQuit},
			tcell.KeyTab:     {Type: IntentFocusNext},
			tcell.KeyRight:   {Type: IntentFocusNext},
			tcell.KeyBacktab: {Type: IntentFocusPrev},
			tcell.KeyLeft:    {Type: IntentFocusPrev},
			tcell.KeyEnter:   {Type: IntentToggleSite},
			tcell.KeyEscape:  {Type: IntentClearSelection},
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'p': {Type: IntentPause},
			'm': {Type: IntentToggleMute},
			' ': {Type: IntentToggleSite},
		},
	}
	for _, kind := range core.AllTowerKinds() {
		kt.Runes[parameter.TowerStatsFor(kind).ButtonShortcut] = Intent{Type: IntentBuy, Kind: kind}
	}
	return kt
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
