package action

import (
	"reflect"

	"github.com/vango-dev/carbon/pkg/component"
)

type handlerKey struct {
	typ  reflect.Type
	kind component.ActionKind
}

// Registry holds handlers keyed by content type and action kind.
type Registry struct {
	handlers map[handlerKey]Handler
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[handlerKey]Handler)}
}

// Handle registers h for actions of kind on content with the same dynamic
// type as prototype. A later registration replaces an earlier one.
func (r *Registry) Handle(prototype component.Component, kind component.ActionKind, h Handler) {
	r.handlers[handlerKey{typ: reflect.TypeOf(prototype), kind: kind}] = h
}

// Remove unregisters the handler for prototype's type and kind.
func (r *Registry) Remove(prototype component.Component, kind component.ActionKind) {
	delete(r.handlers, handlerKey{typ: reflect.TypeOf(prototype), kind: kind})
}

// Lookup returns the handler for content and kind.
func (r *Registry) Lookup(content component.Component, kind component.ActionKind) (Handler, bool) {
	if r == nil || content == nil {
		return nil, false
	}
	h, ok := r.handlers[handlerKey{typ: reflect.TypeOf(content), kind: kind}]
	return h, ok
}

// On registers a handler receiving the content as T. T must be a concrete
// content type; handlers are keyed by dynamic type.
func On[T component.Component](r *Registry, kind component.ActionKind, fn func(p *Payload, content T)) {
	var zero T
	r.Handle(zero, kind, func(p *Payload) {
		if c, ok := Content[T](p); ok {
			fn(p, c)
		}
	})
}
