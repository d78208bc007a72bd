package display

import "github.com/five82/roster/internal/roster"

// Panel is one displayable entity. Implementations decide how it looks;
// the coordinator only needs to toggle its visibility.
type Panel interface {
	Entity() roster.Entity
	Render(width int) string
	SetVisible(visible bool)
	Visible() bool
}

// PanelFactory builds the panel for an entity in a given style.
type PanelFactory interface {
	NewPanel(entity roster.Entity, style roster.Style) (Panel, error)
}

// PanelFactoryFunc adapts a function to PanelFactory.
type PanelFactoryFunc func(entity roster.Entity, style roster.Style) (Panel, error)

// NewPanel calls f.
func (f PanelFactoryFunc) NewPanel(entity roster.Entity, style roster.Style) (Panel, error) {
	return f(entity, style)
}

// Releaser is implemented by panels holding resources that must be freed
// when the panel is discarded.
type Releaser interface {
	Release()
}

func release(panels []Panel) {
	for _, p := range panels {
		if r, ok := p.(Releaser); ok {
			r.Release()
		}
	}
}
