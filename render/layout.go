package render

import (
	"math"

	"github.com/lixenwraith/tower-defense/parameter"
	"github.com/lixenwraith/tower-defense/vmath"
)

// Rect is a cell-space rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout maps world X/Z to terminal cells and places the HUD and panel
// Vertical world axis is dropped: the map is a top-down view
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a layout for a screen of the given size
func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// MapRect is the region between the HUD and the panel
func (l Layout) MapRect() Rect {
	h := l.Height - parameter.HUDHeight - parameter.PanelHeight
	if h < 0 {
		h = 0
	}
	return Rect{X: 0, Y: parameter.HUDHeight, W: l.Width, H: h}
}

// WorldToCell projects a world position onto the map
// ok is false when the cell falls outside the map region
func (l Layout) WorldToCell(pos vmath.Vec3F) (x, y int, ok bool) {
	x = int(math.Round((pos.X - parameter.WorldMinX) * parameter.CellsPerUnitX))
	y = parameter.HUDHeight + int(math.Round((pos.Z-parameter.WorldMinZ)*parameter.CellsPerUnitZ))
	return x, y, l.MapRect().Contains(x, y)
}

// CellToWorld is the inverse projection onto the ground plane
func (l Layout) CellToWorld(x, y int) vmath.Vec2F {
	return vmath.Vec2F{
		X: float64(x)/parameter.CellsPerUnitX + parameter.WorldMinX,
		Y: float64(y-parameter.HUDHeight)/parameter.CellsPerUnitZ + parameter.WorldMinZ,
	}
}

// PanelRow is the row holding tower buttons
func (l Layout) PanelRow() int {
	return l.Height - parameter.PanelHeight + 1
}

// ButtonRect returns the cell rectangle of the panel button in slot
func (l Layout) ButtonRect(slot int) Rect {
	return Rect{
		X: 1 + slot*(parameter.ButtonWidth+2),
		Y: l.PanelRow(),
		W: parameter.ButtonWidth,
		H: 1,
	}
}

// ButtonAt returns the panel slot under cell (x, y)
func (l Layout) ButtonAt(x, y int, slots int) (int, bool) {
	for slot := 0; slot < slots; slot++ {
		if l.ButtonRect(slot).Contains(x, y) {
			return slot, true
		}
	}
	return 0, false
}
