package action

import (
	"github.com/vango-dev/carbon/pkg/adapter"
	"github.com/vango-dev/carbon/pkg/component"
	"github.com/vango-dev/carbon/pkg/section"
)

// Payload carries one dispatched interaction to observers and handlers.
// A fresh payload is built per dispatch.
type Payload struct {
	// View is the element that fired the interaction.
	View any

	// Node is the node the action applies to, updated after any re-render.
	Node *component.Node

	// Kind is the action kind.
	Kind component.ActionKind

	// Target is the scrollable container owning View.
	Target any

	// Adapter backs Target.
	Adapter *adapter.Adapter

	// Coordinate is where Node sits in Adapter's snapshot.
	Coordinate section.Coordinate

	// Metadata is caller-supplied context for the interaction.
	Metadata map[string]any
}

// Content returns the payload's node content as T.
func Content[T any](p *Payload) (T, bool) {
	var zero T
	if p == nil {
		return zero, false
	}
	v, ok := p.Node.Content().(T)
	return v, ok
}

// Updater is implemented by content that changes in response to actions.
// NeedChange returns the content to render and true, or false to keep the
// current content.
type Updater interface {
	NeedChange(p *Payload) (component.Component, bool)
}

// Handler handles a dispatched action.
type Handler func(p *Payload)

// Observer sees every dispatched action before its handler runs.
type Observer func(p *Payload)

// Observers combines observers into one, called in order.
func Observers(obs ...Observer) Observer {
	return func(p *Payload) {
		for _, o := range obs {
			if o != nil {
				o(p)
			}
		}
	}
}
