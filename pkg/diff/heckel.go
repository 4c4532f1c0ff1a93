package diff

import (
	"sort"

	"github.com/vango-dev/carbon/pkg/component"
)

// Move relocates an element from an old index to a new index.
type Move struct {
	From int
	To   int
}

// Result is the edit script between two flat sequences.
type Result struct {
	Deletes []int  // old indices, ascending
	Inserts []int  // new indices, ascending
	Moves   []Move // ascending by To
	Updates []int  // old indices, ascending

	// NewToOld maps every new index to its matched old index, or -1.
	NewToOld []int
}

// Count returns the number of operations in r.
func (r Result) Count() int {
	return len(r.Deletes) + len(r.Inserts) + len(r.Moves) + len(r.Updates)
}

// IsEmpty reports whether r contains no operations.
func (r Result) IsEmpty() bool {
	return r.Count() == 0
}

// entry is one symbol table row.
type entry struct {
	oldCount int
	newCount int
	oldIndex int // last old index seen; meaningful when oldCount == 1
}

// Sequence diffs two identifier sequences. changed reports whether the
// content of a matched pair differs and is called once per match.
func Sequence(old, next []component.Identifier, changed func(oldIndex, newIndex int) bool) Result {
	// Fast paths: nothing to match
	if len(old) == 0 {
		r := Result{NewToOld: make([]int, len(next))}
		for i := range next {
			r.Inserts = append(r.Inserts, i)
			r.NewToOld[i] = -1
		}
		return r
	}
	if len(next) == 0 {
		r := Result{NewToOld: []int{}}
		for j := range old {
			r.Deletes = append(r.Deletes, j)
		}
		return r
	}

	newToOld, oldToNew := match(old, next)
	return classify(newToOld, oldToNew, changed)
}

// match pairs old and new positions. Unmatched positions hold -1.
func match(old, next []component.Identifier) (newToOld, oldToNew []int) {
	table := make(map[component.Identifier]*entry, len(next))
	for _, id := range next {
		e := table[id]
		if e == nil {
			e = &entry{}
			table[id] = e
		}
		e.newCount++
	}
	for j, id := range old {
		e := table[id]
		if e == nil {
			e = &entry{}
			table[id] = e
		}
		e.oldCount++
		e.oldIndex = j
	}

	newToOld = filled(len(next))
	oldToNew = filled(len(old))
	link := func(j, i int) {
		newToOld[i] = j
		oldToNew[j] = i
	}

	// Anchors: identifiers occurring exactly once on each side
	for i, id := range next {
		if e := table[id]; e != nil && e.oldCount == 1 && e.newCount == 1 {
			link(e.oldIndex, i)
		}
	}

	// Extend anchors forward over agreeing neighbours
	for i := 0; i < len(next)-1; i++ {
		j := newToOld[i]
		if j < 0 || j+1 >= len(old) {
			continue
		}
		if newToOld[i+1] < 0 && oldToNew[j+1] < 0 && next[i+1] == old[j+1] {
			link(j+1, i+1)
		}
	}

	// And backward
	for i := len(next) - 1; i > 0; i-- {
		j := newToOld[i]
		if j <= 0 {
			continue
		}
		if newToOld[i-1] < 0 && oldToNew[j-1] < 0 && next[i-1] == old[j-1] {
			link(j-1, i-1)
		}
	}

	// Duplicates: lowest unmatched new position, in old scan order
	pending := make(map[component.Identifier][]int)
	for i, id := range next {
		if newToOld[i] < 0 {
			pending[id] = append(pending[id], i)
		}
	}
	for j, id := range old {
		if oldToNew[j] >= 0 {
			continue
		}
		if q := pending[id]; len(q) > 0 {
			link(j, q[0])
			pending[id] = q[1:]
		}
	}

	return newToOld, oldToNew
}

// classify turns a matching into an edit script.
func classify(newToOld, oldToNew []int, changed func(oldIndex, newIndex int) bool) Result {
	r := Result{NewToOld: newToOld}

	deletesBefore := make([]int, len(oldToNew))
	deleted := 0
	for j, i := range oldToNew {
		deletesBefore[j] = deleted
		if i < 0 {
			r.Deletes = append(r.Deletes, j)
			deleted++
		}
	}

	inserted := 0
	for i, j := range newToOld {
		if j < 0 {
			r.Inserts = append(r.Inserts, i)
			inserted++
			continue
		}
		// Position the element would land at with no move
		if j-deletesBefore[j]+inserted != i {
			r.Moves = append(r.Moves, Move{From: j, To: i})
		}
		if changed != nil && changed(j, i) {
			r.Updates = append(r.Updates, j)
		}
	}

	sort.Ints(r.Updates)
	return r
}

func filled(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = -1
	}
	return s
}

// Nodes diffs two node sequences by identifier and content.
func Nodes(old, next []*component.Node) Result {
	return Sequence(identifiers(old), identifiers(next), func(j, i int) bool {
		return !old[j].ContentEquals(next[i])
	})
}

func identifiers(nodes []*component.Node) []component.Identifier {
	ids := make([]component.Identifier, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	return ids
}
