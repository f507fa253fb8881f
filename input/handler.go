package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/render"
)

// Handler is the interaction service: it owns selection, hover and click state
// Must run on the tick goroutine since it writes components
type Handler struct {
	world *engine.World
	keys  *KeyTable
	log   zerolog.Logger

	focus       int  // Index into build sites for keyboard focus, -1 when none
	buttonsDown bool // Button1 state of the previous mouse event, for press edges
}

// NewHandler creates a handler with the default key table
func NewHandler(world *engine.World, log zerolog.Logger) *Handler {
	return &Handler{
		world: world,
		keys:  DefaultKeyTable(),
		log:   log.With().Str("component", "input").Logger(),
		focus: -1,
	}
}

// HandleEvent applies the world-side effect of ev and returns its intent
// Host-level intents (quit, pause, mute, resize) are left to the caller
func (h *Handler) HandleEvent(ev tcell.Event, layout render.Layout) Intent {
	switch e := ev.(type) {
	case *tcell.EventKey:
		intent := h.keys.Lookup(e)
		h.applyKey(intent)
		return intent
	case *tcell.EventMouse:
		h.applyMouse(e, layout)
		return Intent{Type: IntentPointer}
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (h *Handler) applyKey(intent Intent) {
	switch intent.Type {
	case IntentFocusNext:
		h.moveFocus(1)
	case IntentFocusPrev:
		h.moveFocus(-1)
	case IntentToggleSite:
		if site, ok := h.focusedSite(); ok {
			_ = ToggleSelected(h.world, site)
		}
	case IntentClearSelection:
		ClearSelection(h.world)
	case IntentBuy:
		if err := ClickButton(h.world, intent.Kind); err != nil {
			h.log.Debug().Err(err).Msg("buy ignored")
		}
	}
}

func (h *Handler) moveFocus(step int) {
	sites := h.world.Components.BuildSite.GetAllEntities()
	if len(sites) == 0 {
		h.focus = -1
		SetHovered(h.world, core.NoEntity)
		return
	}
	switch {
	case h.focus < 0 && step < 0:
		h.focus = len(sites) - 1
	case h.focus < 0:
		h.focus = 0
	default:
		h.focus = ((h.focus+step)%len(sites) + len(sites)) % len(sites)
	}
	SetHovered(h.world, sites[h.focus])
}

func (h *Handler) focusedSite() (core.Entity, bool) {
	sites := h.world.Components.BuildSite.GetAllEntities()
	if h.focus < 0 || h.focus >= len(sites) {
		return core.NoEntity, false
	}
	return sites[h.focus], true
}

func (h *Handler) applyMouse(ev *tcell.EventMouse, layout render.Layout) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !h.buttonsDown
	h.buttonsDown = down

	if kind, ok := h.buttonAt(x, y, layout); ok {
		if pressed {
			_ = ClickButton(h.world, kind)
		} else {
			HoverButton(h.world, kind, true)
		}
		return
	}
	HoverButton(h.world, 0, false)

	site, ok := SiteAt(h.world, layout, x, y)
	if !ok {
		SetHovered(h.world, core.NoEntity)
		return
	}
	SetHovered(h.world, site)
	if pressed {
		_ = ToggleSelected(h.world, site)
	}
}

func (h *Handler) buttonAt(x, y int, layout render.Layout) (core.TowerKind, bool) {
	buttons := h.world.Components.Button
	for _, e := range buttons.GetAllEntities() {
		btn, ok := buttons.GetComponent(e)
		if ok && layout.ButtonRect(btn.Slot).Contains(x, y) {
			return btn.Kind, true
		}
	}
	return 0, false
}

// SiteAt returns the build site drawn at or horizontally next to cell (x, y)
func SiteAt(w *engine.World, layout render.Layout, x, y int) (core.Entity, bool) {
	for _, e := range w.Components.BuildSite.GetAllEntities() {
		pos, ok := w.Scene.WorldPosition(e)
		if !ok {
			continue
		}
		sx, sy, ok := layout.WorldToCell(pos)
		if ok && sy == y && sx-1 <= x && x <= sx+1 {
			return e, true
		}
	}
	return core.NoEntity, false
}
