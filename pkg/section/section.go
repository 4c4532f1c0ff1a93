// Package section holds the ordered tree model rendered by an adapter:
// a Tree of Sections, each an ordered list of item nodes with optional
// header and footer nodes.
package section

import (
	"fmt"

	"github.com/vango-dev/carbon/pkg/component"
)

// Section is an ordered group of item nodes with optional header and footer.
type Section struct {
	ID     any
	Header *component.Node
	Footer *component.Node
	Items  []*component.Node
}

// New creates a section with the given id and items.
func New(id any, items ...*component.Node) Section {
	return Section{ID: id, Items: items}
}

// WithHeader returns a copy of s with header set to a node wrapping content.
func (s Section) WithHeader(content component.Component) Section {
	s.Header = component.NewNode(content)
	return s
}

// WithFooter returns a copy of s with footer set to a node wrapping content.
func (s Section) WithFooter(content component.Component) Section {
	s.Footer = component.NewNode(content)
	return s
}

// Identifier returns the section identifier.
func (s Section) Identifier() component.Identifier {
	return component.IdentifierOf(s.ID)
}

// Len returns the number of items.
func (s Section) Len() int {
	return len(s.Items)
}

// Item returns the item at index i, or nil when out of range.
func (s Section) Item(i int) *component.Node {
	if i < 0 || i >= len(s.Items) {
		return nil
	}
	return s.Items[i]
}

// SupplementsEqual reports whether header and footer of s and other render
// identically: same presence, same identifier, equal content.
func (s Section) SupplementsEqual(other Section) bool {
	return supplementEqual(s.Header, other.Header) && supplementEqual(s.Footer, other.Footer)
}

func supplementEqual(a, b *component.Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID() && a.ContentEquals(b)
}

// String returns a compact description.
func (s Section) String() string {
	return fmt.Sprintf("Section(%v, %d items)", s.ID, len(s.Items))
}
