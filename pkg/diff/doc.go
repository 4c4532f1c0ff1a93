// Package diff computes edit scripts between two section trees.
//
// The algorithm is Heckel's linear-time diff, run first over section
// identifiers and then, for every pair of matched sections, over item
// identifiers. Items never move across section boundaries: an item that
// changes section is deleted from the old one and inserted into the new one.
//
// # Index conventions
//
// A Changeset is meant to be applied as one batch update:
//
//   - deletes and updates use indices in the old tree
//   - inserts use indices in the new tree
//   - moves go from an old index to a new index
//
// # Duplicates
//
// Identifiers should be unique within a sequence. Duplicates are tolerated:
// after unique anchors and their neighbours are matched, each remaining old
// element (in order) takes the lowest-index unmatched new element with the
// same identifier. The result is deterministic, not necessarily minimal.
package diff
