package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tower-defense/asset"
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/vmath"
)

var pathStyle = tcell.StyleDefault.Foreground(tcell.ColorDimGray)

// PathRenderer draws the waypoint polyline
type PathRenderer struct{}

func (r *PathRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	if ctx.Path == nil {
		return
	}
	wps := ctx.Path.Waypoints
	for i := 1; i < len(wps); i++ {
		a, b := wps[i-1], wps[i]
		// Sample at sub-cell spacing so the segment has no gaps
		steps := int(vmath.V2FDistance(a, b)*4) + 1
		for s := 0; s <= steps; s++ {
			p := vmath.V2FAdd(a, vmath.V2FScale(vmath.V2FSub(b, a), float64(s)/float64(steps)))
			if x, y, ok := ctx.Layout.WorldToCell(vmath.Vec3F{}.WithXZ(p)); ok {
				screen.SetContent(x, y, '·', nil, pathStyle)
			}
		}
	}
}

// EntityRenderer draws every entity with a transform and a visual, lowest layer first
type EntityRenderer struct {
	scratch []drawItem
}

type drawItem struct {
	entity core.Entity
	layer  int
	handle asset.Handle
	pos    vmath.Vec3F
}

func (r *EntityRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	w := ctx.World
	r.scratch = r.scratch[:0]

	for _, e := range w.Components.Visual.GetAllEntities() {
		vis, ok := w.Components.Visual.GetComponent(e)
		if !ok {
			continue
		}
		pos, ok := w.Scene.WorldPosition(e)
		if !ok {
			continue
		}
		r.scratch = append(r.scratch, drawItem{entity: e, layer: vis.Layer, handle: vis.Handle, pos: pos})
	}
	sort.SliceStable(r.scratch, func(i, j int) bool { return r.scratch[i].layer < r.scratch[j].layer })

	for _, it := range r.scratch {
		x, y, ok := ctx.Layout.WorldToCell(it.pos)
		if !ok {
			continue
		}
		style := it.handle.Style
		if sel, ok := w.Components.Selectable.GetComponent(it.entity); ok {
			if sel.Selected {
				style = style.Reverse(true)
			}
			if sel.Hovered {
				style = style.Underline(true).Bold(true)
			}
		}
		screen.SetContent(x, y, it.handle.Glyph, nil, style)
	}
}
