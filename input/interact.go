// Package input translates terminal events into selection and button interaction state
package input

import (
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/tower-defense/component"
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/engine"
)

// ErrNoButton is returned when a click targets a tower kind with no visible button
var ErrNoButton = eris.New("no button for tower kind")

// ErrNotBuildSite is returned when selecting an entity that is not a live build site
var ErrNotBuildSite = eris.New("not a build site")

// SetSelected writes the selection flag of a build site
func SetSelected(w *engine.World, site core.Entity, selected bool) error {
	sel, ok := w.Components.Selectable.GetComponent(site)
	if !ok || !w.Components.BuildSite.HasComponent(site) {
		return eris.Wrapf(ErrNotBuildSite, "select %s", site)
	}
	sel.Selected = selected
	w.Components.Selectable.SetComponent(site, sel)
	return nil
}

// ToggleSelected flips the selection flag of a build site
func ToggleSelected(w *engine.World, site core.Entity) error {
	sel, ok := w.Components.Selectable.GetComponent(site)
	if !ok {
		return eris.Wrapf(ErrNotBuildSite, "toggle %s", site)
	}
	return SetSelected(w, site, !sel.Selected)
}

// SelectOnly selects site and deselects every other build site
func SelectOnly(w *engine.World, site core.Entity) error {
	if !w.Components.BuildSite.HasComponent(site) {
		return eris.Wrapf(ErrNotBuildSite, "select %s", site)
	}
	for _, e := range w.Components.BuildSite.GetAllEntities() {
		if err := SetSelected(w, e, e == site); err != nil {
			return err
		}
	}
	return nil
}

// ClearSelection deselects every build site
func ClearSelection(w *engine.World) {
	for _, e := range w.Components.BuildSite.GetAllEntities() {
		_ = SetSelected(w, e, false)
	}
}

// SetHovered marks site as hovered and clears hover on the others; NoEntity clears all
func SetHovered(w *engine.World, site core.Entity) {
	for _, e := range w.Components.Selectable.GetAllEntities() {
		sel, ok := w.Components.Selectable.GetComponent(e)
		if !ok {
			continue
		}
		hovered := e == site
		if sel.Hovered != hovered {
			sel.Hovered = hovered
			w.Components.Selectable.SetComponent(e, sel)
		}
	}
}

// ClickButton marks the button of kind as clicked for the next purchase pass
func ClickButton(w *engine.World, kind core.TowerKind) error {
	return setButtonInteraction(w, kind, component.InteractionClicked)
}

// HoverButton marks the button of kind as hovered and resets hover on the others
// Pending clicks are left untouched
func HoverButton(w *engine.World, kind core.TowerKind, hovered bool) {
	buttons := w.Components.Button
	for _, e := range buttons.GetAllEntities() {
		btn, ok := buttons.GetComponent(e)
		if !ok || btn.Interaction == component.InteractionClicked {
			continue
		}
		next := component.InteractionNone
		if hovered && btn.Kind == kind {
			next = component.InteractionHovered
		}
		if btn.Interaction != next {
			btn.Interaction = next
			buttons.SetComponent(e, btn)
		}
	}
}

func setButtonInteraction(w *engine.World, kind core.TowerKind, in component.Interaction) error {
	buttons := w.Components.Button
	for _, e := range buttons.GetAllEntities() {
		btn, ok := buttons.GetComponent(e)
		if !ok || btn.Kind != kind {
			continue
		}
		btn.Interaction = in
		buttons.SetComponent(e, btn)
		return nil
	}
	return eris.Wrapf(ErrNoButton, "click %s", kind)
}

// ButtonCount returns the number of visible buttons
func ButtonCount(w *engine.World) int {
	return w.Components.Button.CountEntities()
}
