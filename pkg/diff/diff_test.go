package diff

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/carbon/pkg/component"
	"github.com/vango-dev/carbon/pkg/section"
)

type row struct {
	key  string
	text string
}

func (r row) ID() any { return r.key }

// rows builds nodes from "key" or "key:text" specs.
func rows(specs ...string) []*component.Node {
	nodes := make([]*component.Node, len(specs))
	for i, s := range specs {
		key, text := s, s
		for j := 0; j < len(s); j++ {
			if s[j] == ':' {
				key, text = s[:j], s[j+1:]
				break
			}
		}
		nodes[i] = component.NewNode(row{key: key, text: text})
	}
	return nodes
}

func TestNodesIdentical(t *testing.T) {
	old := rows("a", "b", "c")
	r := Nodes(old, rows("a", "b", "c"))
	if !r.IsEmpty() {
		t.Errorf("expected empty result, got %+v", r)
	}
}

func TestNodesInsertOnly(t *testing.T) {
	r := Nodes(nil, rows("a", "b", "c"))

	want := Result{Inserts: []int{0, 1, 2}, NewToOld: []int{-1, -1, -1}}
	if d := cmp.Diff(want, r); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestNodesDeleteOnly(t *testing.T) {
	r := Nodes(rows("a", "b", "c"), nil)

	if d := cmp.Diff([]int{0, 1, 2}, r.Deletes); d != "" {
		t.Errorf("Deletes mismatch (-want +got):\n%s", d)
	}
	if len(r.Inserts)+len(r.Moves)+len(r.Updates) != 0 {
		t.Errorf("expected deletes only, got %+v", r)
	}
}

func TestNodesPureReorder(t *testing.T) {
	r := Nodes(rows("a", "b", "c"), rows("c", "a", "b"))

	want := []Move{{From: 2, To: 0}, {From: 0, To: 1}, {From: 1, To: 2}}
	if d := cmp.Diff(want, r.Moves); d != "" {
		t.Errorf("Moves mismatch (-want +got):\n%s", d)
	}
	if len(r.Updates)+len(r.Inserts)+len(r.Deletes) != 0 {
		t.Errorf("expected moves only, got %+v", r)
	}
}

func TestNodesSwap(t *testing.T) {
	r := Nodes(rows("a", "b", "c"), rows("b", "a", "c"))

	want := []Move{{From: 1, To: 0}, {From: 0, To: 1}}
	if d := cmp.Diff(want, r.Moves); d != "" {
		t.Errorf("Moves mismatch (-want +got):\n%s", d)
	}
}

func TestNodesContentOnlyChange(t *testing.T) {
	r := Nodes(rows("a:v1"), rows("a:v2"))

	if d := cmp.Diff([]int{0}, r.Updates); d != "" {
		t.Errorf("Updates mismatch (-want +got):\n%s", d)
	}
	if len(r.Moves)+len(r.Inserts)+len(r.Deletes) != 0 {
		t.Errorf("expected a single update, got %+v", r)
	}
}

func TestNodesMixedBatch(t *testing.T) {
	r := Nodes(rows("a", "b", "c", "d"), rows("b", "d:changed", "e"))

	want := Result{
		Deletes:  []int{0, 2},
		Inserts:  []int{2},
		Updates:  []int{3},
		NewToOld: []int{1, 3, -1},
	}
	if d := cmp.Diff(want, r); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestNodesMoveWithUpdate(t *testing.T) {
	r := Nodes(rows("a", "b:1"), rows("b:2", "a"))

	if d := cmp.Diff([]Move{{From: 1, To: 0}, {From: 0, To: 1}}, r.Moves); d != "" {
		t.Errorf("Moves mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]int{1}, r.Updates); d != "" {
		t.Errorf("Updates use old indices (-want +got):\n%s", d)
	}
}

func TestNodesInsertInMiddleIsNotAMove(t *testing.T) {
	r := Nodes(rows("a", "b", "c"), rows("a", "x", "b", "c"))

	if len(r.Moves) != 0 {
		t.Errorf("shifted elements must not move, got %+v", r.Moves)
	}
	if d := cmp.Diff([]int{1}, r.Inserts); d != "" {
		t.Errorf("Inserts mismatch (-want +got):\n%s", d)
	}
}

func TestNodesDuplicatesLowestIndexFirst(t *testing.T) {
	old := rows("x:1", "x:2")
	next := rows("x:2")

	first := Nodes(old, next)
	want := Result{
		Deletes:  []int{1},
		Updates:  []int{0},
		NewToOld: []int{0},
	}
	if d := cmp.Diff(want, first); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}

	for i := 0; i < 10; i++ {
		if d := cmp.Diff(first, Nodes(old, next)); d != "" {
			t.Fatalf("run %d not deterministic:\n%s", i, d)
		}
	}
}

func TestNodesDuplicatesPropagateFromAnchor(t *testing.T) {
	// y is unique and anchors its duplicated neighbours in place
	r := Nodes(rows("x:a", "y", "x:b"), rows("x:b", "y", "x:a"))

	want := Result{
		Updates:  []int{0, 2},
		NewToOld: []int{0, 1, 2},
	}
	if d := cmp.Diff(want, r); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestNodesDuplicatesMoreInNew(t *testing.T) {
	r := Nodes(rows("x"), rows("x", "x", "x"))

	want := Result{
		Inserts:  []int{1, 2},
		NewToOld: []int{0, -1, -1},
	}
	if d := cmp.Diff(want, r); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestDiffIdenticalTree(t *testing.T) {
	tree := section.Tree{
		section.New("a", rows("1", "2")...).WithHeader("A"),
		section.New("b", rows("3")...).WithFooter("B"),
	}
	c := Diff(tree, tree)
	if !c.IsEmpty() {
		t.Errorf("expected empty changeset, got:\n%s", c)
	}
}

func TestDiffEmptyTrees(t *testing.T) {
	tree := section.Tree{section.New("a", rows("1")...), section.New("b")}

	in := Diff(nil, tree)
	if d := cmp.Diff([]int{0, 1}, in.SectionInserts); d != "" {
		t.Errorf("SectionInserts mismatch (-want +got):\n%s", d)
	}
	if in.ItemCount() != 0 {
		t.Error("items of inserted sections are not listed separately")
	}

	out := Diff(tree, nil)
	if d := cmp.Diff([]int{0, 1}, out.SectionDeletes); d != "" {
		t.Errorf("SectionDeletes mismatch (-want +got):\n%s", d)
	}
}

func TestDiffSectionsAndItems(t *testing.T) {
	old := section.Tree{
		section.New("s1", rows("a", "b")...).WithHeader("one"),
		section.New("s2", rows("c")...),
	}
	next := section.Tree{
		section.New("s2", rows("c", "d")...),
		section.New("s1", rows("b")...).WithHeader("ONE"),
	}

	got := Diff(old, next)
	want := Changeset{
		SectionMoves:   []Move{{From: 1, To: 0}, {From: 0, To: 1}},
		SectionUpdates: []int{0},
		ItemDeletes:    []section.Coordinate{section.At(0, 0)},
		ItemInserts:    []section.Coordinate{section.At(0, 1)},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestDiffItemsNeverCrossSections(t *testing.T) {
	old := section.Tree{
		section.New("s1", rows("a", "b")...),
		section.New("s2", rows("c")...),
	}
	next := section.Tree{
		section.New("s1", rows("a")...),
		section.New("s2", rows("b", "c")...),
	}

	got := Diff(old, next)
	want := Changeset{
		ItemDeletes: []section.Coordinate{section.At(0, 1)},
		ItemInserts: []section.Coordinate{section.At(1, 0)},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestDiffDeletedSectionDropsItemOps(t *testing.T) {
	old := section.Tree{
		section.New("s1", rows("a")...),
		section.New("s2", rows("b", "c")...),
	}
	next := section.Tree{
		section.New("s2", rows("c:new", "b")...),
	}

	got := Diff(old, next)
	want := Changeset{
		SectionDeletes: []int{0},
		ItemMoves: []ItemMove{
			{From: section.At(1, 1), To: section.At(0, 0)},
			{From: section.At(1, 0), To: section.At(0, 1)},
		},
		ItemUpdates: []section.Coordinate{section.At(1, 1)},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestChangesetOps(t *testing.T) {
	c := Changeset{
		SectionDeletes: []int{2},
		SectionInserts: []int{0},
		SectionMoves:   []Move{{From: 0, To: 1}},
		SectionUpdates: []int{1},
		ItemDeletes:    []section.Coordinate{section.At(1, 0)},
		ItemInserts:    []section.Coordinate{section.At(2, 3)},
		ItemMoves:      []ItemMove{{From: section.At(1, 2), To: section.At(2, 0)}},
		ItemUpdates:    []section.Coordinate{section.At(1, 1)},
	}

	var got []string
	for _, op := range c.Ops() {
		got = append(got, op.String())
	}
	want := []string{
		"DeleteSection 2",
		"DeleteItem [1,0]",
		"MoveSection 0 -> 1",
		"MoveItem [1,2] -> [2,0]",
		"InsertSection 0",
		"InsertItem [2,3]",
		"UpdateSection 1",
		"UpdateItem [1,1]",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Ops mismatch (-want +got):\n%s", d)
	}
	if c.Count() != 8 || c.SectionCount() != 4 || c.ItemCount() != 4 {
		t.Errorf("counts = %d/%d/%d", c.Count(), c.SectionCount(), c.ItemCount())
	}
}

func TestOpKindString(t *testing.T) {
	if OpMoveItem.String() != "MoveItem" || OpKind(0).String() != "Unknown" {
		t.Error("unexpected OpKind strings")
	}
	if !OpUpdateSection.IsSection() || OpDeleteItem.IsSection() {
		t.Error("IsSection misclassified")
	}
}

type gauge struct {
	name  string
	value float64
}

func (g gauge) ID() any { return g.name }

func TestNodesNaNContent(t *testing.T) {
	r := Nodes(component.Nodes("a", math.NaN()), component.Nodes("a", math.NaN()))
	want := Result{NewToOld: []int{0, 1}}
	if d := cmp.Diff(want, r); d != "" {
		t.Errorf("Result mismatch (-want +got):\n%s", d)
	}
}

func TestDiffNaNFields(t *testing.T) {
	tree := func(v float64) section.Tree {
		return section.Tree{section.New("m",
			component.NewNode(gauge{"cpu", v}),
			component.NewNode(struct {
				name  string
				value float64
			}{"mem", math.NaN()}),
		)}
	}

	if c := Diff(tree(math.NaN()), tree(math.NaN())); !c.IsEmpty() {
		t.Errorf("diff of identical trees holding NaN:\n%s", c)
	}

	c := Diff(tree(math.NaN()), tree(0.5))
	if d := cmp.Diff([]section.Coordinate{section.At(0, 0)}, c.ItemUpdates); d != "" {
		t.Errorf("ItemUpdates mismatch (-want +got):\n%s", d)
	}
	if c.Count() != 1 {
		t.Errorf("Count() = %d, want 1:\n%s", c.Count(), c)
	}
}
