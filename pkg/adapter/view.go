package adapter

import (
	"github.com/vango-dev/carbon/pkg/component"
	"github.com/vango-dev/carbon/pkg/diff"
	"github.com/vango-dev/carbon/pkg/section"
)

// View is the host list view an adapter drives.
type View interface {
	// Reload replaces the view's whole content with tree, without animation.
	Reload(tree section.Tree) error

	// ApplyBatch applies changes as one atomic visual transaction. next is
	// the tree the view reads from once the batch is applied. An error means
	// the view's counts did not match the changeset.
	ApplyBatch(next section.Tree, changes diff.Changeset) error

	// Refresh reconfigures the rendered element at c in place with n.
	Refresh(c section.Coordinate, n *component.Node) error
}

// Location is a live position reported by the host view for an
// interacting element.
type Location struct {
	// Container is the scrollable container the element belongs to.
	Container any

	// Section and Item form the view's index path.
	Section int
	Item    int

	// Element distinguishes cells from header/footer views.
	Element section.Element
}
