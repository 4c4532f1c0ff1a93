package adapter

import "github.com/vango-dev/carbon/pkg/component"

// Registry maps scrollable containers to the adapters that back them.
//
// Hosts bind a container when they attach an adapter and unbind it when the
// container is torn down. Lookups on unbound containers miss silently.
// Containers are typically pointers; values that cannot be map keys (slices,
// maps, or structs holding them) are never bound and always miss.
type Registry struct {
	adapters map[any]*Adapter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[any]*Adapter)}
}

// Bind associates container with a. It reports false when container cannot
// be used as a key.
func (r *Registry) Bind(container any, a *Adapter) bool {
	if container == nil || !component.IsComparable(container) {
		return false
	}
	r.adapters[container] = a
	return true
}

// Unbind removes container.
func (r *Registry) Unbind(container any) {
	if !component.IsComparable(container) {
		return
	}
	delete(r.adapters, container)
}

// Lookup returns the adapter bound to container.
func (r *Registry) Lookup(container any) (*Adapter, bool) {
	if r == nil || container == nil || !component.IsComparable(container) {
		return nil, false
	}
	a, ok := r.adapters[container]
	return a, ok && a != nil
}

// Len returns the number of bound containers.
func (r *Registry) Len() int {
	return len(r.adapters)
}
