package section

import (
	"fmt"
	"strings"

	"github.com/vango-dev/carbon/pkg/component"
)

// Tree is an ordered snapshot of sections: the unit diffed and retained
// between renders. Trees are treated as immutable once rendered.
type Tree []Section

// Len returns the number of sections.
func (t Tree) Len() int {
	return len(t)
}

// ItemCount returns the total number of items across all sections.
func (t Tree) ItemCount() int {
	n := 0
	for _, s := range t {
		n += len(s.Items)
	}
	return n
}

// Node returns the node at c, or nil when c is out of bounds.
func (t Tree) Node(c Coordinate) *component.Node {
	if c.Section < 0 || c.Section >= len(t) {
		return nil
	}
	s := t[c.Section]
	switch c.Element {
	case ElementHeader:
		return s.Header
	case ElementFooter:
		return s.Footer
	default:
		return s.Item(c.Item)
	}
}

// Contains reports whether c addresses an existing node.
func (t Tree) Contains(c Coordinate) bool {
	return t.Node(c) != nil
}

// Replace returns a copy of t with the node at c replaced by n.
// Only the section and item slice touched are copied; all other sections
// are shared with t. Returns false when c is out of bounds.
func (t Tree) Replace(c Coordinate, n *component.Node) (Tree, bool) {
	if !t.Contains(c) {
		return t, false
	}
	next := make(Tree, len(t))
	copy(next, t)
	s := next[c.Section]
	switch c.Element {
	case ElementHeader:
		s.Header = n
	case ElementFooter:
		s.Footer = n
	default:
		items := make([]*component.Node, len(s.Items))
		copy(items, s.Items)
		items[c.Item] = n
		s.Items = items
	}
	next[c.Section] = s
	return next, true
}

// Duplicate describes an identifier that appears more than once.
type Duplicate struct {
	// Section is the section index, or -1 for duplicate section identifiers.
	Section int
	ID      component.Identifier
	Indices []int
}

// String returns a readable description.
func (d Duplicate) String() string {
	if d.Section < 0 {
		return fmt.Sprintf("section id %s at %v", d.ID, d.Indices)
	}
	return fmt.Sprintf("item id %s in section %d at %v", d.ID, d.Section, d.Indices)
}

// Duplicates reports identifiers that violate uniqueness: section
// identifiers within the tree and item identifiers within each section.
func (t Tree) Duplicates() []Duplicate {
	var dups []Duplicate
	sectionIDs := make([]component.Identifier, len(t))
	for i, s := range t {
		sectionIDs[i] = s.Identifier()
	}
	dups = appendDuplicates(dups, -1, sectionIDs)

	for si, s := range t {
		ids := make([]component.Identifier, len(s.Items))
		for i, n := range s.Items {
			ids[i] = n.ID()
		}
		dups = appendDuplicates(dups, si, ids)
	}
	return dups
}

func appendDuplicates(dups []Duplicate, section int, ids []component.Identifier) []Duplicate {
	positions := make(map[component.Identifier][]int, len(ids))
	var order []component.Identifier
	for i, id := range ids {
		if _, seen := positions[id]; !seen {
			order = append(order, id)
		}
		positions[id] = append(positions[id], i)
	}
	for _, id := range order {
		if idx := positions[id]; len(idx) > 1 {
			dups = append(dups, Duplicate{Section: section, ID: id, Indices: idx})
		}
	}
	return dups
}

// Validate returns an error listing duplicate identifiers, or nil.
func (t Tree) Validate() error {
	dups := t.Duplicates()
	if len(dups) == 0 {
		return nil
	}
	parts := make([]string, len(dups))
	for i, d := range dups {
		parts[i] = d.String()
	}
	return fmt.Errorf("duplicate identifiers: %s", strings.Join(parts, "; "))
}
