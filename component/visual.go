package component

import "github.com/lixenwraith/tower-defense/asset"

// VisualComponent holds the render handle resolved once at spawn
type VisualComponent struct {
	Handle asset.Handle
	Layer  int // Higher draws on top
}
