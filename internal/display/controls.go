package display

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/roster"
)

// Value is an observable field. Subscribers are notified in registration
// order whenever Set changes the value.
type Value[T comparable] struct {
	v    T
	subs []func(old, new T) tea.Cmd
}

// NewValue returns a Value holding v.
func NewValue[T comparable](v T) *Value[T] {
	return &Value[T]{v: v}
}

// Get returns the current value.
func (o *Value[T]) Get() T {
	return o.v
}

// Set stores v and notifies subscribers. Setting the current value is a no-op.
func (o *Value[T]) Set(v T) tea.Cmd {
	if v == o.v {
		return nil
	}
	old := o.v
	o.v = v

	var cmds []tea.Cmd
	for _, fn := range o.subs {
		if cmd := fn(old, v); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Subscribe registers fn to run after every change.
func (o *Value[T]) Subscribe(fn func(old, new T) tea.Cmd) {
	o.subs = append(o.subs, fn)
}

// Controls holds the user-selectable state of the roster view. The UI is the
// only writer; the coordinator observes it through subscriptions.
type Controls struct {
	Group  *Value[roster.Group]
	Sort   *Value[roster.SortBy]
	Style  *Value[roster.Style]
	Search *Value[string]
}

// NewControls returns controls set to All / Recent / Card with an empty search.
func NewControls() *Controls {
	return NewControlsFrom(roster.GroupAll, roster.SortRecentActivity, roster.StyleCard)
}

// NewControlsFrom returns controls seeded with the given selection.
func NewControlsFrom(group roster.Group, sort roster.SortBy, style roster.Style) *Controls {
	return &Controls{
		Group:  NewValue(group),
		Sort:   NewValue(sort),
		Style:  NewValue(style),
		Search: NewValue(""),
	}
}
