package action

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/vango-dev/carbon/internal/errors"
	"github.com/vango-dev/carbon/pkg/adapter"
	"github.com/vango-dev/carbon/pkg/component"
)

// Locator resolves a fired element to its live position. It reports false
// when the element is not attached to a container.
type Locator interface {
	LocationOf(sender any) (adapter.Location, bool)
}

// Config configures a Dispatcher.
type Config struct {
	// Handlers is consulted when a node has no handler of its own.
	Handlers *Registry

	// Observer is called for every dispatched action.
	Observer Observer

	// Logger receives dispatch diagnostics.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Config)

// WithHandlers sets the handler registry.
func WithHandlers(r *Registry) Option {
	return func(c *Config) {
		c.Handlers = r
	}
}

// WithObserver sets the action observer.
func WithObserver(o Observer) Option {
	return func(c *Config) {
		c.Observer = o
	}
}

// WithLogger sets the dispatcher logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// Dispatcher routes interactions to node handlers. Like adapters,
// dispatchers must only be used from the UI goroutine.
type Dispatcher struct {
	locator  Locator
	adapters *adapter.Registry
	handlers *Registry
	observer Observer
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher resolving senders through locator and
// containers through adapters.
func NewDispatcher(locator Locator, adapters *adapter.Registry, opts ...Option) *Dispatcher {
	var config Config
	for _, opt := range opts {
		opt(&config)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	handlers := config.Handlers
	if handlers == nil {
		handlers = NewRegistry()
	}
	return &Dispatcher{
		locator:  locator,
		adapters: adapters,
		handlers: handlers,
		observer: config.Observer,
		logger:   logger,
	}
}

// Handlers returns the dispatcher's handler registry.
func (d *Dispatcher) Handlers() *Registry {
	return d.handlers
}

// SetObserver installs o as the action observer, replacing any other.
func (d *Dispatcher) SetObserver(o Observer) {
	d.observer = o
}

// ClearObserver removes the action observer.
func (d *Dispatcher) ClearObserver() {
	d.observer = nil
}

// Invoke dispatches an action of kind fired by sender.
//
// Invoke returns nil whenever the sender, its container, its coordinate, or
// an actionable node declaring kind cannot be resolved, and when no handler
// exists. It returns an error only if a re-render requested by the node
// fails or the handler panics.
func (d *Dispatcher) Invoke(kind component.ActionKind, sender any, metadata map[string]any) error {
	if sender == nil || d.locator == nil {
		return nil
	}
	loc, ok := d.locator.LocationOf(sender)
	if !ok {
		d.logger.Debug("action dropped: sender not attached", "kind", kind)
		return nil
	}
	ad, ok := d.adapters.Lookup(loc.Container)
	if !ok {
		d.logger.Debug("action dropped: container has no adapter", "kind", kind)
		return nil
	}
	coord, ok := ad.Coordinate(loc)
	if !ok {
		d.logger.Debug("action dropped: stale location", "kind", kind, "section", loc.Section, "item", loc.Item)
		return nil
	}
	node, ok := ad.Node(coord)
	if !ok || !node.IsActionable() {
		d.logger.Debug("action dropped: node not actionable", "kind", kind, "at", coord.String())
		return nil
	}
	if !node.Emits(kind) {
		d.logger.Debug("action dropped: kind not emitted by node", "kind", kind, "node", node.String())
		return nil
	}

	p := &Payload{
		View:       sender,
		Node:       node,
		Kind:       kind,
		Target:     loc.Container,
		Adapter:    ad,
		Coordinate: coord,
		Metadata:   metadata,
	}

	if err := d.applyChange(node, p); err != nil {
		return err
	}

	d.notify(p)

	// The re-render may have replaced the node again
	if current, ok := ad.Node(coord); ok {
		p.Node = current
	}

	h, ok := d.lookup(node, kind)
	if !ok {
		d.logger.Debug("action dropped: no handler", "kind", kind, "node", node.String())
		return nil
	}
	return d.safeExecute(h, p)
}

// applyChange lets Updater content derive new content for the action and
// re-renders accordingly.
func (d *Dispatcher) applyChange(node *component.Node, p *Payload) error {
	u, ok := node.Content().(Updater)
	if !ok {
		return nil
	}
	next, ok := u.NeedChange(p)
	if !ok {
		return nil
	}
	updated := node.WithContent(next)
	p.Node = updated

	ad := p.Adapter
	if updated.ID() != node.ID() || node.ShouldContentUpdate(next) {
		tree, _ := ad.Tree().Replace(p.Coordinate, updated)
		if err := ad.Render(tree); err != nil {
			return errors.New("E201").Wrap(err)
		}
		return nil
	}
	if err := ad.Update(updated, p.Coordinate); err != nil {
		return errors.New("E201").Wrap(err)
	}
	return nil
}

// notify calls the observer, containing any panic.
func (d *Dispatcher) notify(p *Payload) {
	if d.observer == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("action observer panic",
				"panic", r,
				"kind", p.Kind,
				"at", p.Coordinate.String(),
				"stack", string(debug.Stack()))
		}
	}()
	d.observer(p)
}

// lookup finds the handler for node and kind: node-local first, then by
// content type.
func (d *Dispatcher) lookup(node *component.Node, kind component.ActionKind) (Handler, bool) {
	if h, ok := node.Handler(kind); ok {
		switch fn := h.(type) {
		case Handler:
			return fn, true
		case func(*Payload):
			return fn, true
		case func():
			return func(*Payload) { fn() }, true
		default:
			d.logger.Warn("ignoring node handler of unsupported type", "kind", kind, "type", fmt.Sprintf("%T", h))
		}
	}
	return d.handlers.Lookup(node.Content(), kind)
}

// safeExecute runs a handler with panic recovery.
func (d *Dispatcher) safeExecute(h Handler, p *Payload) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			d.logger.Error("action handler panic",
				"panic", r,
				"kind", p.Kind,
				"at", p.Coordinate.String(),
				"stack", string(stack))
			err = errors.New("E202").Wrap(fmt.Errorf("%v", r))
		}
	}()
	h(p)
	return nil
}
