package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tower-defense/component"
	"github.com/lixenwraith/tower-defense/parameter"
	"github.com/lixenwraith/tower-defense/status"
)

var (
	hudStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	helpStyle     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	greyedStyle   = tcell.StyleDefault.Foreground(tcell.ColorDimGray).Background(tcell.ColorBlack)
	overlayStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack).Bold(true)
	gameOverStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true)
)

// MoneyText and HealthText are the HUD labels
func MoneyText(money uint32) string   { return fmt.Sprintf("Money: %d", money) }
func HealthText(health uint32) string { return fmt.Sprintf("Health: %d", health) }

// HUDRenderer draws money, health and counters on the top rows
type HUDRenderer struct{}

func (r *HUDRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	if ctx.Player == nil {
		return
	}
	x := drawText(screen, 1, 0, MoneyText(ctx.Player.Money), hudStyle)
	x = drawText(screen, x+3, 0, HealthText(ctx.Player.Health), hudStyle)

	reg := ctx.World.Resources.Status
	stats := fmt.Sprintf("kills %d  leaks %d  shots %d  towers %d",
		reg.Ints.Get(status.TargetKilled).Load(),
		reg.Ints.Get(status.TargetLeaked).Load(),
		reg.Ints.Get(status.BulletFired).Load(),
		reg.Ints.Get(status.TowerBuilt).Load(),
	)
	x = drawText(screen, x+3, 0, stats, helpStyle)
	if ctx.Muted {
		drawText(screen, x+3, 0, "muted", helpStyle)
	}

	drawText(screen, 1, 1, "click/tab+space: select site   1-3: buy   esc: clear   p: pause   m: mute   q: quit", helpStyle)
}

// ButtonLabel is the text drawn inside a tower button
func ButtonLabel(btn component.ButtonComponent) string {
	stats := parameter.TowerStatsFor(btn.Kind)
	return fmt.Sprintf("[%c] %-8s %4d", stats.ButtonShortcut, stats.DisplayName, btn.Cost)
}

// ButtonStyle is greyed for unaffordable buttons and highlighted on hover
func ButtonStyle(btn component.ButtonComponent, base tcell.Style) tcell.Style {
	if !btn.Affordable {
		return greyedStyle
	}
	if btn.Interaction == component.InteractionHovered {
		return base.Bold(true).Underline(true)
	}
	return base
}

// PanelRenderer draws the tower purchase buttons
type PanelRenderer struct{}

func (r *PanelRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	w := ctx.World
	for _, e := range w.Components.Button.GetAllEntities() {
		btn, ok := w.Components.Button.GetComponent(e)
		if !ok {
			continue
		}
		base := tcell.StyleDefault.Reverse(true)
		if vis, ok := w.Components.Visual.GetComponent(e); ok {
			base = vis.Handle.Style
		}
		rect := ctx.Layout.ButtonRect(btn.Slot)
		style := ButtonStyle(btn, base)

		label := []rune(ButtonLabel(btn))
		for i := 0; i < rect.W; i++ {
			ch := ' '
			if i < len(label) {
				ch = label[i]
			}
			screen.SetContent(rect.X+i, rect.Y, ch, nil, style)
		}
	}
}

// OverlayRenderer draws pause and game-over banners over the map
type OverlayRenderer struct{}

func (r *OverlayRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	m := ctx.Layout.MapRect()
	row := m.Y + m.H/2
	switch {
	case ctx.Over:
		drawCentered(screen, row, " GAME OVER ", gameOverStyle)
	case ctx.Paused:
		drawCentered(screen, row, " PAUSED ", overlayStyle)
	}
}
