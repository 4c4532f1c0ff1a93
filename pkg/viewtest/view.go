// Package viewtest provides in-memory host views for testing adapters and
// dispatchers without a UI toolkit.
package viewtest

import (
	"errors"
	"fmt"

	"github.com/vango-dev/carbon/pkg/adapter"
	"github.com/vango-dev/carbon/pkg/component"
	"github.com/vango-dev/carbon/pkg/diff"
	"github.com/vango-dev/carbon/pkg/section"
)

// Common errors reported by View.
var (
	ErrInconsistent = errors.New("inconsistent batch update")
	ErrOutOfBounds  = errors.New("coordinate out of bounds")
)

// Batch records one ApplyBatch call.
type Batch struct {
	Next    section.Tree
	Changes diff.Changeset
}

// View is a host view that applies batches the way list views do: deletes
// and updates address the old content, inserts and move destinations the
// new content, and every untouched element keeps its relative order.
//
// After each batch the resulting content is compared with the tree the
// adapter announced; any difference is reported as ErrInconsistent and the
// view keeps its previous content.
type View struct {
	content section.Tree

	Batches   []Batch
	Reloads   int
	Refreshes []section.Coordinate

	// FailNext makes the next view call return this error.
	FailNext error
}

var _ adapter.View = (*View)(nil)

// New creates an empty view.
func New() *View {
	return &View{}
}

// Content returns what the view currently displays.
func (v *View) Content() section.Tree {
	return v.content
}

// Reload implements adapter.View.
func (v *View) Reload(tree section.Tree) error {
	if err := v.takeFailure(); err != nil {
		return err
	}
	v.Reloads++
	v.content = tree
	return nil
}

// Refresh implements adapter.View.
func (v *View) Refresh(c section.Coordinate, n *component.Node) error {
	if err := v.takeFailure(); err != nil {
		return err
	}
	old := v.content.Node(c)
	if old == nil {
		return fmt.Errorf("%w: refresh at %s", ErrOutOfBounds, c)
	}
	if old.ID() != n.ID() {
		return fmt.Errorf("%w: refresh at %s changes %s to %s", ErrInconsistent, c, old.ID(), n.ID())
	}
	v.content, _ = v.content.Replace(c, n)
	v.Refreshes = append(v.Refreshes, c)
	return nil
}

// ApplyBatch implements adapter.View.
func (v *View) ApplyBatch(next section.Tree, changes diff.Changeset) error {
	if err := v.takeFailure(); err != nil {
		return err
	}
	result, err := Apply(v.content, next, changes)
	if err != nil {
		return err
	}
	v.Batches = append(v.Batches, Batch{Next: next, Changes: changes})
	v.content = result
	return nil
}

func (v *View) takeFailure() error {
	err := v.FailNext
	v.FailNext = nil
	return err
}

// Apply replays changes against old using batch-update semantics and
// returns the resulting tree. Updated and inserted elements take their
// content from next; everything else keeps the content from old. The result
// is checked against next.
func Apply(old, next section.Tree, changes diff.Changeset) (section.Tree, error) {
	sectionSlots, err := place(len(old), len(next),
		changes.SectionDeletes, changes.SectionInserts, changes.SectionMoves)
	if err != nil {
		return nil, fmt.Errorf("%w: sections: %v", ErrInconsistent, err)
	}
	updatedSections, err := indexSet(changes.SectionUpdates, len(old))
	if err != nil {
		return nil, fmt.Errorf("%w: section updates: %v", ErrInconsistent, err)
	}

	ops := groupItems(changes)
	result := make(section.Tree, len(next))
	for i, j := range sectionSlots {
		if j < 0 {
			result[i] = next[i]
			continue
		}
		s := old[j]
		if updatedSections[j] {
			s.Header, s.Footer = next[i].Header, next[i].Footer
		}
		items, err := applyItems(old[j], next[i], j, i, ops)
		if err != nil {
			return nil, fmt.Errorf("%w: section %d: %v", ErrInconsistent, j, err)
		}
		s.Items = items
		result[i] = s
	}

	for s, g := range ops {
		if !g.used {
			return nil, fmt.Errorf("%w: item operations on unmatched section %d", ErrInconsistent, s)
		}
	}

	if err := compare(result, next); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInconsistent, err)
	}
	return result, nil
}

// itemOps collects the item operations addressed to one section. Deletes,
// moves and updates are grouped by old section; inserts by new section.
type itemOps struct {
	deletes []int
	inserts []int
	moves   []diff.Move
	updates []int
	to      int // destination section of moves: -1 unset, -2 conflicting
	used    bool
}

func groupItems(c diff.Changeset) map[int]*itemOps {
	groups := make(map[int]*itemOps)
	get := func(s int) *itemOps {
		g := groups[s]
		if g == nil {
			g = &itemOps{to: -1}
			groups[s] = g
		}
		return g
	}
	for _, d := range c.ItemDeletes {
		get(d.Section).deletes = append(get(d.Section).deletes, d.Item)
	}
	for _, u := range c.ItemUpdates {
		get(u.Section).updates = append(get(u.Section).updates, u.Item)
	}
	for _, m := range c.ItemMoves {
		g := get(m.From.Section)
		if g.to >= 0 && g.to != m.To.Section {
			g.to = -2
		} else if g.to != -2 {
			g.to = m.To.Section
		}
		g.moves = append(g.moves, diff.Move{From: m.From.Item, To: m.To.Item})
	}
	// Inserts are addressed by new section; stash them under a negative key
	for _, in := range c.ItemInserts {
		g := get(-1 - in.Section)
		g.inserts = append(g.inserts, in.Item)
	}
	return groups
}

func applyItems(old, next section.Section, oldIndex, newIndex int, groups map[int]*itemOps) ([]*component.Node, error) {
	g := groups[oldIndex]
	if g == nil {
		g = &itemOps{to: -1}
	}
	g.used = true
	ins := groups[-1-newIndex]
	var inserts []int
	if ins != nil {
		ins.used = true
		inserts = ins.inserts
	}
	if g.to == -2 || (g.to >= 0 && g.to != newIndex) {
		return nil, fmt.Errorf("item moved across sections")
	}

	slots, err := place(len(old.Items), len(next.Items), g.deletes, inserts, g.moves)
	if err != nil {
		return nil, err
	}
	updated, err := indexSet(g.updates, len(old.Items))
	if err != nil {
		return nil, fmt.Errorf("updates: %v", err)
	}

	items := make([]*component.Node, len(next.Items))
	for i, j := range slots {
		switch {
		case j < 0:
			items[i] = next.Items[i]
		case updated[j]:
			if old.Items[j].ID() != next.Items[i].ID() {
				return nil, fmt.Errorf("update at %d changes identity", j)
			}
			items[i] = next.Items[i]
		default:
			items[i] = old.Items[j]
		}
	}
	return items, nil
}

// place computes, for each new slot, the old index landing there (-1 for
// inserted slots).
func place(oldLen, newLen int, deletes, inserts []int, moves []diff.Move) ([]int, error) {
	if want := oldLen - len(deletes) + len(inserts); want != newLen {
		return nil, fmt.Errorf("%d elements after update, changeset implies %d (%d - %d deleted + %d inserted)",
			newLen, want, oldLen, len(deletes), len(inserts))
	}

	removed, err := indexSet(deletes, oldLen)
	if err != nil {
		return nil, fmt.Errorf("deletes: %v", err)
	}
	slots := make([]int, newLen)
	filled := make([]bool, newLen)
	for i := range slots {
		slots[i] = -1
	}
	for _, in := range inserts {
		if in < 0 || in >= newLen || filled[in] {
			return nil, fmt.Errorf("invalid insert at %d", in)
		}
		filled[in] = true
	}
	moved := make(map[int]bool, len(moves))
	for _, m := range moves {
		if m.From < 0 || m.From >= oldLen || removed[m.From] || moved[m.From] {
			return nil, fmt.Errorf("invalid move from %d", m.From)
		}
		if m.To < 0 || m.To >= newLen || filled[m.To] {
			return nil, fmt.Errorf("invalid move to %d", m.To)
		}
		moved[m.From] = true
		filled[m.To] = true
		slots[m.To] = m.From
	}

	next := 0
	for j := 0; j < oldLen; j++ {
		if removed[j] || moved[j] {
			continue
		}
		for next < newLen && filled[next] {
			next++
		}
		if next >= newLen {
			return nil, fmt.Errorf("no slot for element %d", j)
		}
		slots[next] = j
		filled[next] = true
	}
	return slots, nil
}

func indexSet(indices []int, n int) (map[int]bool, error) {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("index %d out of range [0,%d)", i, n)
		}
		if set[i] {
			return nil, fmt.Errorf("index %d repeated", i)
		}
		set[i] = true
	}
	return set, nil
}

// compare reports the first difference between got and want.
func compare(got, want section.Tree) error {
	if len(got) != len(want) {
		return fmt.Errorf("%d sections, want %d", len(got), len(want))
	}
	for si := range want {
		g, w := got[si], want[si]
		if g.Identifier() != w.Identifier() {
			return fmt.Errorf("section %d is %v, want %v", si, g.ID, w.ID)
		}
		if !g.SupplementsEqual(w) {
			return fmt.Errorf("section %d header/footer stale", si)
		}
		if len(g.Items) != len(w.Items) {
			return fmt.Errorf("section %d has %d items, want %d", si, len(g.Items), len(w.Items))
		}
		for i := range w.Items {
			if g.Items[i].ID() != w.Items[i].ID() {
				return fmt.Errorf("item [%d,%d] is %s, want %s", si, i, g.Items[i].ID(), w.Items[i].ID())
			}
			if !g.Items[i].ContentEquals(w.Items[i]) {
				return fmt.Errorf("item [%d,%d] content stale", si, i)
			}
		}
	}
	return nil
}
