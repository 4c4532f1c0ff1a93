package viewtest

import (
	"errors"
	"testing"

	"github.com/vango-dev/carbon/pkg/adapter"
	"github.com/vango-dev/carbon/pkg/component"
	"github.com/vango-dev/carbon/pkg/diff"
	"github.com/vango-dev/carbon/pkg/section"
)

func tree(sections ...[]string) section.Tree {
	t := make(section.Tree, len(sections))
	for i, keys := range sections {
		contents := make([]component.Component, len(keys))
		for j, k := range keys {
			contents[j] = k
		}
		t[i] = section.New(i, component.Nodes(contents...)...)
	}
	return t
}

func TestApplyDiff(t *testing.T) {
	old := tree([]string{"a", "b", "c"}, []string{"d"})
	next := tree([]string{"c", "a", "x"}, []string{"d", "b"})

	got, err := Apply(old, next, diff.Diff(old, next))
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if got.ItemCount() != 5 {
		t.Errorf("ItemCount() = %d, want 5", got.ItemCount())
	}
}

func TestApplyRejectsCountMismatch(t *testing.T) {
	old := tree([]string{"a", "b"})
	next := tree([]string{"a", "b", "c"})

	_, err := Apply(old, next, diff.Changeset{})
	if !errors.Is(err, ErrInconsistent) {
		t.Fatalf("Apply() = %v, want ErrInconsistent", err)
	}
}

func TestApplyRejectsCrossSectionMove(t *testing.T) {
	old := tree([]string{"a", "b"}, []string{"c"})
	next := tree([]string{"a"}, []string{"b", "c"})

	changes := diff.Changeset{
		ItemMoves: []diff.ItemMove{{From: section.At(0, 1), To: section.At(1, 0)}},
	}
	_, err := Apply(old, next, changes)
	if !errors.Is(err, ErrInconsistent) {
		t.Fatalf("Apply() = %v, want ErrInconsistent", err)
	}
}

func TestApplyRejectsStaleContent(t *testing.T) {
	old := tree([]string{"a", "b"})
	next := tree([]string{"b", "a"})

	// Correct counts, missing moves
	_, err := Apply(old, next, diff.Changeset{})
	if !errors.Is(err, ErrInconsistent) {
		t.Fatalf("Apply() = %v, want ErrInconsistent", err)
	}
}

func TestApplyRejectsRepeatedIndex(t *testing.T) {
	old := tree([]string{"a", "b", "c"})
	next := tree([]string{"c"})

	changes := diff.Changeset{ItemDeletes: []section.Coordinate{section.At(0, 0), section.At(0, 0)}}
	if _, err := Apply(old, next, changes); !errors.Is(err, ErrInconsistent) {
		t.Fatalf("Apply() = %v, want ErrInconsistent", err)
	}
}

func TestApplyRejectsOpsOnDeletedSection(t *testing.T) {
	old := tree([]string{"a"}, []string{"b"})
	next := section.Tree{old[1]}

	changes := diff.Changeset{
		SectionDeletes: []int{0},
		ItemDeletes:    []section.Coordinate{section.At(0, 0)},
	}
	if _, err := Apply(old, next, changes); !errors.Is(err, ErrInconsistent) {
		t.Fatalf("Apply() = %v, want ErrInconsistent", err)
	}
}

func TestViewKeepsContentOnFailure(t *testing.T) {
	v := New()
	first := tree([]string{"a"})
	if err := v.Reload(first); err != nil {
		t.Fatal(err)
	}

	next := tree([]string{"a", "b"})
	if err := v.ApplyBatch(next, diff.Changeset{}); !errors.Is(err, ErrInconsistent) {
		t.Fatalf("ApplyBatch() = %v, want ErrInconsistent", err)
	}
	if v.Content().ItemCount() != 1 || len(v.Batches) != 0 {
		t.Errorf("view changed after rejected batch")
	}

	injected := errors.New("injected")
	v.FailNext = injected
	if err := v.ApplyBatch(next, diff.Diff(first, next)); !errors.Is(err, injected) {
		t.Fatalf("ApplyBatch() = %v, want injected error", err)
	}
	if err := v.ApplyBatch(next, diff.Diff(first, next)); err != nil {
		t.Fatalf("ApplyBatch() after failure = %v", err)
	}
}

func TestViewRefresh(t *testing.T) {
	v := New()
	if err := v.Reload(tree([]string{"a"})); err != nil {
		t.Fatal(err)
	}
	if err := v.Refresh(section.At(0, 3), component.NewNode("a")); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Refresh(out of bounds) = %v", err)
	}
	if err := v.Refresh(section.At(0, 0), component.NewNode("z")); !errors.Is(err, ErrInconsistent) {
		t.Errorf("Refresh(other identity) = %v", err)
	}
	if err := v.Refresh(section.At(0, 0), component.NewNode("a")); err != nil {
		t.Errorf("Refresh() = %v", err)
	}
	if len(v.Refreshes) != 1 {
		t.Errorf("Refreshes = %v", v.Refreshes)
	}
}

func TestLocator(t *testing.T) {
	l := NewLocator()
	sender := new(int)
	loc := adapter.Location{Section: 1, Item: 2}

	l.Attach(sender, loc)
	if got, ok := l.LocationOf(sender); !ok || got != loc {
		t.Errorf("LocationOf() = %v, %v", got, ok)
	}
	l.Detach(sender)
	if _, ok := l.LocationOf(sender); ok {
		t.Error("LocationOf() after Detach found a location")
	}

	unhashable := []string{"cell"}
	l.Attach(unhashable, loc)
	if _, ok := l.LocationOf(unhashable); ok {
		t.Error("LocationOf() located an unhashable sender")
	}
	l.Detach(unhashable)
}
