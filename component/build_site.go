package component

// BuildSiteComponent marks a free spot where a tower can be bought
type BuildSiteComponent struct{}

// SelectableComponent holds interaction state owned by the input service
// Systems only read it
type SelectableComponent struct {
	Selected bool
	Hovered  bool
}
