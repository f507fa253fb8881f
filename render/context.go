package render

import (
	"github.com/lixenwraith/tower-defense/engine"
)

// RenderContext carries per-frame state shared by all renderers
type RenderContext struct {
	World  *engine.World
	Player *engine.PlayerResource
	Path   *engine.PathResource
	Layout Layout

	Paused bool
	Muted  bool
	Over   bool
}
