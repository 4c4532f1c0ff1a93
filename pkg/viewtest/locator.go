package viewtest

import (
	"github.com/vango-dev/carbon/pkg/adapter"
	"github.com/vango-dev/carbon/pkg/component"
)

// Locator resolves senders from a fixed table, standing in for the host's
// reverse-geometry lookup. Senders that cannot be map keys are never
// located.
type Locator struct {
	locations map[any]adapter.Location
}

// NewLocator creates an empty locator.
func NewLocator() *Locator {
	return &Locator{locations: make(map[any]adapter.Location)}
}

// Attach records that sender currently sits at loc.
func (l *Locator) Attach(sender any, loc adapter.Location) {
	if sender == nil || !component.IsComparable(sender) {
		return
	}
	l.locations[sender] = loc
}

// Detach forgets sender, as when its cell is removed from the view.
func (l *Locator) Detach(sender any) {
	if !component.IsComparable(sender) {
		return
	}
	delete(l.locations, sender)
}

// LocationOf returns the live location of sender.
func (l *Locator) LocationOf(sender any) (adapter.Location, bool) {
	if !component.IsComparable(sender) {
		return adapter.Location{}, false
	}
	loc, ok := l.locations[sender]
	return loc, ok
}
