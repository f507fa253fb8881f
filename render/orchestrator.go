package render

import (
	"github.com/gdamore/tcell/v2"
)

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, screen tcell.Screen)
}

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers every game layer
func NewDefaultOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen)
	o.Register(&PathRenderer{}, PriorityPath)
	o.Register(&EntityRenderer{}, PriorityEntities)
	o.Register(&HUDRenderer{}, PriorityUI)
	o.Register(&PanelRenderer{}, PriorityUI)
	o.Register(&OverlayRenderer{}, PriorityOverlay)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Layout returns the layout for the current screen size
func (o *RenderOrchestrator) Layout() Layout {
	w, h := o.screen.Size()
	return NewLayout(w, h)
}

// RenderFrame executes the render pipeline: clear, render all, show
// Must run on the goroutine that mutates the world
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	ctx.Layout = o.Layout()
	o.screen.Clear()
	for _, entry := range o.renderers {
		entry.renderer.Render(ctx, o.screen)
	}
	o.screen.Show()
}
