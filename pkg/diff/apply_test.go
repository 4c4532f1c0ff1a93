package diff_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/vango-dev/carbon/pkg/component"
	"github.com/vango-dev/carbon/pkg/diff"
	"github.com/vango-dev/carbon/pkg/section"
	"github.com/vango-dev/carbon/pkg/viewtest"
)

type cell struct {
	key     int
	version int
}

func (c cell) ID() any { return c.key }

// randomTree builds a tree whose section and item keys are drawn without
// repetition from small pools, so consecutive trees overlap heavily.
func randomTree(rng *rand.Rand) section.Tree {
	sectionKeys := rng.Perm(5)[:rng.Intn(5)]
	itemKeys := rng.Perm(12)
	tree := make(section.Tree, 0, len(sectionKeys))
	for _, sk := range sectionKeys {
		n := rng.Intn(5)
		if n > len(itemKeys) {
			n = len(itemKeys)
		}
		var nodes []*component.Node
		for _, ik := range itemKeys[:n] {
			nodes = append(nodes, component.NewNode(cell{key: ik, version: rng.Intn(2)}))
		}
		itemKeys = itemKeys[n:]
		s := section.New(fmt.Sprintf("s%d", sk), nodes...)
		if rng.Intn(3) == 0 {
			s = s.WithHeader(fmt.Sprintf("header %d", rng.Intn(2)))
		}
		if rng.Intn(4) == 0 {
			s = s.WithFooter("footer")
		}
		tree = append(tree, s)
	}
	return tree
}

func TestChangesetReplaysToNewTree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		old, next := randomTree(rng), randomTree(rng)
		changes := diff.Diff(old, next)
		if _, err := viewtest.Apply(old, next, changes); err != nil {
			t.Fatalf("case %d: %v\nold: %v\nnew: %v\nchanges:\n%s", i, err, old, next, changes)
		}
	}
}

func TestMixedBatchReplays(t *testing.T) {
	node := func(key, version int) *component.Node {
		return component.NewNode(cell{key: key, version: version})
	}
	old := section.Tree{section.New("s", node(1, 0), node(2, 0), node(3, 0), node(4, 0))}
	next := section.Tree{section.New("s", node(2, 0), node(4, 1), node(5, 0))}

	changes := diff.Diff(old, next)
	got, err := viewtest.Apply(old, next, changes)
	if err != nil {
		t.Fatalf("Apply() error: %v\n%s", err, changes)
	}
	for i, n := range got[0].Items {
		if n.Content() != next[0].Items[i].Content() {
			t.Errorf("item %d = %v, want %v", i, n.Content(), next[0].Items[i].Content())
		}
	}
}

func TestDuplicateIdentifiersReplay(t *testing.T) {
	x := func(v int) *component.Node { return component.NewNode(cell{key: 7, version: v}) }
	old := section.Tree{section.New("s", x(1), x(2), x(3))}
	next := section.Tree{section.New("s", x(3), x(1))}

	changes := diff.Diff(old, next)
	if _, err := viewtest.Apply(old, next, changes); err != nil {
		t.Fatalf("Apply() error: %v\n%s", err, changes)
	}
}
