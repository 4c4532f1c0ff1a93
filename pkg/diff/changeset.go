package diff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vango-dev/carbon/pkg/component"
	"github.com/vango-dev/carbon/pkg/section"
)

// ItemMove relocates an item from an old coordinate to a new one.
type ItemMove struct {
	From section.Coordinate
	To   section.Coordinate
}

// Changeset is the edit script between two trees.
type Changeset struct {
	SectionDeletes []int  // old indices
	SectionInserts []int  // new indices
	SectionMoves   []Move // old index to new index
	SectionUpdates []int  // old indices; header or footer changed

	ItemDeletes []section.Coordinate // old coordinates
	ItemInserts []section.Coordinate // new coordinates
	ItemMoves   []ItemMove           // old coordinate to new coordinate
	ItemUpdates []section.Coordinate // old coordinates
}

// Diff computes the changeset transforming old into next.
func Diff(old, next section.Tree) Changeset {
	var c Changeset

	sections := Sequence(sectionIDs(old), sectionIDs(next), func(j, i int) bool {
		return !old[j].SupplementsEqual(next[i])
	})
	c.SectionDeletes = sections.Deletes
	c.SectionInserts = sections.Inserts
	c.SectionMoves = sections.Moves
	c.SectionUpdates = sections.Updates

	// Items are diffed only inside matched section pairs
	for i, j := range sections.NewToOld {
		if j < 0 {
			continue
		}
		items := Nodes(old[j].Items, next[i].Items)
		for _, d := range items.Deletes {
			c.ItemDeletes = append(c.ItemDeletes, section.At(j, d))
		}
		for _, n := range items.Inserts {
			c.ItemInserts = append(c.ItemInserts, section.At(i, n))
		}
		for _, m := range items.Moves {
			c.ItemMoves = append(c.ItemMoves, ItemMove{
				From: section.At(j, m.From),
				To:   section.At(i, m.To),
			})
		}
		for _, u := range items.Updates {
			c.ItemUpdates = append(c.ItemUpdates, section.At(j, u))
		}
	}

	// Matched pairs are visited in new order; old-index lists need sorting
	sortCoordinates(c.ItemDeletes)
	sortCoordinates(c.ItemUpdates)
	return c
}

func sectionIDs(t section.Tree) []component.Identifier {
	ids := make([]component.Identifier, len(t))
	for i, s := range t {
		ids[i] = s.Identifier()
	}
	return ids
}

func sortCoordinates(cs []section.Coordinate) {
	sort.Slice(cs, func(a, b int) bool {
		if cs[a].Section != cs[b].Section {
			return cs[a].Section < cs[b].Section
		}
		return cs[a].Item < cs[b].Item
	})
}

// Count returns the total number of operations.
func (c Changeset) Count() int {
	return c.SectionCount() + c.ItemCount()
}

// SectionCount returns the number of section-level operations.
func (c Changeset) SectionCount() int {
	return len(c.SectionDeletes) + len(c.SectionInserts) + len(c.SectionMoves) + len(c.SectionUpdates)
}

// ItemCount returns the number of item-level operations.
func (c Changeset) ItemCount() int {
	return len(c.ItemDeletes) + len(c.ItemInserts) + len(c.ItemMoves) + len(c.ItemUpdates)
}

// IsEmpty reports whether the changeset contains no operations.
func (c Changeset) IsEmpty() bool {
	return c.Count() == 0
}

// Ops flattens the changeset into an ordered operation list:
// deletes, moves, inserts, then updates; sections before items.
func (c Changeset) Ops() []Op {
	ops := make([]Op, 0, c.Count())
	for _, s := range c.SectionDeletes {
		ops = append(ops, Op{Kind: OpDeleteSection, From: section.At(s, 0)})
	}
	for _, at := range c.ItemDeletes {
		ops = append(ops, Op{Kind: OpDeleteItem, From: at})
	}
	for _, m := range c.SectionMoves {
		ops = append(ops, Op{Kind: OpMoveSection, From: section.At(m.From, 0), To: section.At(m.To, 0)})
	}
	for _, m := range c.ItemMoves {
		ops = append(ops, Op{Kind: OpMoveItem, From: m.From, To: m.To})
	}
	for _, s := range c.SectionInserts {
		ops = append(ops, Op{Kind: OpInsertSection, To: section.At(s, 0)})
	}
	for _, at := range c.ItemInserts {
		ops = append(ops, Op{Kind: OpInsertItem, To: at})
	}
	for _, s := range c.SectionUpdates {
		ops = append(ops, Op{Kind: OpUpdateSection, From: section.At(s, 0)})
	}
	for _, at := range c.ItemUpdates {
		ops = append(ops, Op{Kind: OpUpdateItem, From: at})
	}
	return ops
}

// String returns one operation per line.
func (c Changeset) String() string {
	var b strings.Builder
	for _, op := range c.Ops() {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// OpKind is the type of an edit operation.
type OpKind uint8

const (
	OpDeleteSection OpKind = iota + 1
	OpInsertSection
	OpMoveSection
	OpUpdateSection
	OpDeleteItem
	OpInsertItem
	OpMoveItem
	OpUpdateItem
)

// String returns the string representation of the OpKind.
func (k OpKind) String() string {
	switch k {
	case OpDeleteSection:
		return "DeleteSection"
	case OpInsertSection:
		return "InsertSection"
	case OpMoveSection:
		return "MoveSection"
	case OpUpdateSection:
		return "UpdateSection"
	case OpDeleteItem:
		return "DeleteItem"
	case OpInsertItem:
		return "InsertItem"
	case OpMoveItem:
		return "MoveItem"
	case OpUpdateItem:
		return "UpdateItem"
	default:
		return "Unknown"
	}
}

// IsSection reports whether k operates on whole sections.
func (k OpKind) IsSection() bool {
	return k >= OpDeleteSection && k <= OpUpdateSection
}

// Op is a single flattened edit operation. From is set for deletes, moves
// and updates (old coordinates); To is set for inserts and moves (new
// coordinates). Section operations only use the Section field.
type Op struct {
	Kind OpKind
	From section.Coordinate
	To   section.Coordinate
}

// String returns a readable form such as "MoveItem [0,2] -> [0,0]".
func (o Op) String() string {
	if o.Kind.IsSection() {
		switch o.Kind {
		case OpInsertSection:
			return fmt.Sprintf("%s %d", o.Kind, o.To.Section)
		case OpMoveSection:
			return fmt.Sprintf("%s %d -> %d", o.Kind, o.From.Section, o.To.Section)
		default:
			return fmt.Sprintf("%s %d", o.Kind, o.From.Section)
		}
	}
	switch o.Kind {
	case OpInsertItem:
		return fmt.Sprintf("%s %s", o.Kind, o.To)
	case OpMoveItem:
		return fmt.Sprintf("%s %s -> %s", o.Kind, o.From, o.To)
	default:
		return fmt.Sprintf("%s %s", o.Kind, o.From)
	}
}
