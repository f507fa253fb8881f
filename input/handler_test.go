package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tower-defense/component"
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/game"
	"github.com/lixenwraith/tower-defense/parameter"
	"github.com/lixenwraith/tower-defense/render"
)

func newGame(t *testing.T) (*game.Game, *Handler, render.Layout) {
	t.Helper()
	g := game.New(game.Options{Logger: zerolog.Nop(), TargetCount: 1})
	g.SetupScene()
	return g, NewHandler(g.World, zerolog.Nop()), render.NewLayout(80, 24)
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func selected(t *testing.T, g *game.Game, site core.Entity) bool {
	t.Helper()
	sel, ok := g.World.Components.Selectable.GetComponent(site)
	require.True(t, ok)
	return sel.Selected
}

func TestHandler_HostIntents(t *testing.T) {
	_, h, l := newGame(t)
	assert.Equal(t, IntentQuit, h.HandleEvent(key(tcell.KeyRune, 'q'), l).Type)
	assert.Equal(t, IntentQuit, h.HandleEvent(key(tcell.KeyCtrlC, 0), l).Type)
	assert.Equal(t, IntentPause, h.HandleEvent(key(tcell.KeyRune, 'p'), l).Type)
	assert.Equal(t, IntentToggleMute, h.HandleEvent(key(tcell.KeyRune, 'm'), l).Type)
	assert.Equal(t, IntentNone, h.HandleEvent(key(tcell.KeyRune, 'z'), l).Type)

	buy := h.HandleEvent(key(tcell.KeyRune, '3'), l)
	assert.Equal(t, IntentBuy, buy.Type)
	assert.Equal(t, core.TowerCabbage, buy.Kind)
}

func TestHandler_KeyboardPurchase(t *testing.T) {
	g, h, l := newGame(t)

	h.HandleEvent(key(tcell.KeyTab, 0), l)
	h.HandleEvent(key(tcell.KeyRune, ' '), l)
	require.True(t, selected(t, g, g.BuildSites[0]))

	g.Tick(parameter.GameUpdateInterval)
	require.Equal(t, int(core.TowerKindCount), ButtonCount(g.World), "panel opens on selection")

	h.HandleEvent(key(tcell.KeyRune, '2'), l)
	g.Tick(parameter.GameUpdateInterval)

	assert.Equal(t, uint32(20), g.Player.Money)
	assert.False(t, g.World.IsAlive(g.BuildSites[0]))
	assert.Equal(t, 1, g.World.Components.Tower.CountEntities())
	assert.Equal(t, 0, ButtonCount(g.World), "panel closes once nothing is selected")
}

func TestHandler_FocusWraps(t *testing.T) {
	g, h, l := newGame(t)

	h.HandleEvent(key(tcell.KeyBacktab, 0), l)
	last := g.BuildSites[len(g.BuildSites)-1]
	sel, _ := g.World.Components.Selectable.GetComponent(last)
	assert.True(t, sel.Hovered)

	h.HandleEvent(key(tcell.KeyTab, 0), l)
	sel, _ = g.World.Components.Selectable.GetComponent(g.BuildSites[0])
	assert.True(t, sel.Hovered)
	sel, _ = g.World.Components.Selectable.GetComponent(last)
	assert.False(t, sel.Hovered)
}

func TestHandler_MouseSelectAndClick(t *testing.T) {
	g, h, l := newGame(t)

	pos, _ := g.World.Scene.WorldPosition(g.BuildSites[1])
	x, y, ok := l.WorldToCell(pos)
	require.True(t, ok)

	h.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone), l)
	h.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone), l)
	assert.True(t, selected(t, g, g.BuildSites[1]), "held button toggles once")
	h.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone), l)

	g.Tick(parameter.GameUpdateInterval)
	require.Equal(t, int(core.TowerKindCount), ButtonCount(g.World))

	rect := l.ButtonRect(int(core.TowerTomato))
	h.HandleEvent(tcell.NewEventMouse(rect.X, rect.Y, tcell.ButtonNone, tcell.ModNone), l)
	for _, e := range g.World.Components.Button.GetAllEntities() {
		btn, _ := g.World.Components.Button.GetComponent(e)
		if btn.Kind == core.TowerTomato {
			assert.Equal(t, component.InteractionHovered, btn.Interaction)
		}
	}

	h.HandleEvent(tcell.NewEventMouse(rect.X, rect.Y, tcell.Button1, tcell.ModNone), l)
	g.Tick(parameter.GameUpdateInterval)

	assert.Equal(t, uint32(50), g.Player.Money)
	assert.False(t, g.World.IsAlive(g.BuildSites[1]))
}

func TestInteract_Errors(t *testing.T) {
	g, _, _ := newGame(t)

	err := ClickButton(g.World, core.TowerPotato)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoButton))

	err = SelectOnly(g.World, g.World.CreateEntity())
	assert.True(t, errors.Is(err, ErrNotBuildSite))

	require.NoError(t, SelectOnly(g.World, g.BuildSites[2]))
	assert.False(t, selected(t, g, g.BuildSites[0]))
	assert.True(t, selected(t, g, g.BuildSites[2]))

	ClearSelection(g.World)
	assert.False(t, selected(t, g, g.BuildSites[2]))
}
