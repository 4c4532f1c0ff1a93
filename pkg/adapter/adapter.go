package adapter

import (
	"log/slog"

	"github.com/vango-dev/carbon/internal/errors"
	"github.com/vango-dev/carbon/pkg/component"
	"github.com/vango-dev/carbon/pkg/diff"
	"github.com/vango-dev/carbon/pkg/section"
)

// Adapter is the sole owner of the rendered snapshot of one view.
type Adapter struct {
	view     View
	tree     section.Tree
	rendered bool
	config   Config
	logger   *slog.Logger
}

// New creates an adapter driving view.
func New(view View, opts ...Option) *Adapter {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		view:   view,
		config: config,
		logger: logger,
	}
}

// Tree returns the retained snapshot. Callers must not modify it.
func (a *Adapter) Tree() section.Tree {
	return a.tree
}

// Render replaces the retained snapshot with next and brings the view in
// line with it. On error the retained snapshot is left unchanged.
func (a *Adapter) Render(next section.Tree) error {
	info := &RenderInfo{Old: a.tree, New: next}
	return chain(a.config.Middleware, info, func() error {
		return a.render(info)
	})()
}

func (a *Adapter) render(info *RenderInfo) error {
	if a.config.Debug {
		if dups := info.New.Duplicates(); len(dups) > 0 {
			for _, d := range dups {
				a.logger.Warn("duplicate identifier", "code", "E104", "duplicate", d.String())
			}
		}
	}

	if !a.rendered {
		info.Mode = ModeReload
		info.Changes = diff.Diff(nil, info.New)
		return a.reload(info.New)
	}

	info.Changes = diff.Diff(a.tree, info.New)
	count := info.Changes.Count()

	switch {
	case count == 0:
		// Content-equal nodes may still carry new handlers
		info.Mode = ModeSkipped
		a.tree = info.New
		return nil
	case a.config.MaxBatchOps > 0 && count > a.config.MaxBatchOps:
		info.Mode = ModeReload
		a.logger.Debug("changeset too large, reloading", "ops", count, "max", a.config.MaxBatchOps)
		return a.reload(info.New)
	}

	info.Mode = ModeBatch
	if err := a.view.ApplyBatch(info.New, info.Changes); err != nil {
		a.logger.Error("batch update rejected", "error", err, "ops", count)
		return errors.New("E101").Wrap(err)
	}
	a.tree = info.New
	return nil
}

func (a *Adapter) reload(next section.Tree) error {
	if err := a.view.Reload(next); err != nil {
		a.logger.Error("reload rejected", "error", err)
		return errors.New("E101").Wrap(err)
	}
	a.tree = next
	a.rendered = true
	return nil
}

// Node returns the node at c in the retained snapshot.
func (a *Adapter) Node(c section.Coordinate) (*component.Node, bool) {
	n := a.tree.Node(c)
	return n, n != nil
}

// Coordinate maps a live view location to a coordinate in the retained
// snapshot. It reports false when the location no longer corresponds to a
// node, typically because a render landed after the event was fired.
func (a *Adapter) Coordinate(loc Location) (section.Coordinate, bool) {
	c := section.Coordinate{Section: loc.Section, Element: loc.Element}
	if loc.Element == section.ElementItem {
		c.Item = loc.Item
	}
	if !a.tree.Contains(c) {
		return section.Coordinate{}, false
	}
	return c, true
}

// Update replaces the node at c without diffing and refreshes only that
// position. n must keep the identifier of the node it replaces.
func (a *Adapter) Update(n *component.Node, c section.Coordinate) error {
	old := a.tree.Node(c)
	if old == nil {
		return errors.New("E102").WithDetail("No node at " + c.String() + ".")
	}
	if old.ID() != n.ID() {
		return errors.New("E103").WithDetail("Node at " + c.String() + " is " + old.ID().String() + ", got " + n.ID().String() + ".")
	}

	next, _ := a.tree.Replace(c, n)
	info := &RenderInfo{Old: a.tree, New: next, Mode: ModeRefresh}
	return chain(a.config.Middleware, info, func() error {
		return a.update(info, old, n, c)
	})()
}

func (a *Adapter) update(info *RenderInfo, old, n *component.Node, c section.Coordinate) error {
	var err error
	if old.SupportsUpdate() {
		err = a.view.Refresh(c, n)
	} else {
		// Content that cannot refresh in place is reloaded at its position
		if c.Element == section.ElementItem {
			info.Changes.ItemUpdates = []section.Coordinate{c}
		} else {
			info.Changes.SectionUpdates = []int{c.Section}
		}
		err = a.view.ApplyBatch(info.New, info.Changes)
	}
	if err != nil {
		a.logger.Error("single-node update rejected", "error", err, "at", c.String())
		return errors.New("E101").Wrap(err)
	}
	a.tree = info.New
	return nil
}
