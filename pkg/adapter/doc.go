// Package adapter owns the currently rendered snapshot of a list and keeps
// a host view in sync with it.
//
// An Adapter is bound to one host View (a table or collection view wrapper).
// Render diffs the retained snapshot against a new tree and hands the
// resulting changeset to the view as a single batch:
//
//	a := adapter.New(view, adapter.WithLogger(logger))
//	if err := a.Render(tree); err != nil {
//	    // The view rejected the batch: visual state is unverifiable.
//	}
//
// # Threading
//
// Adapters are not safe for concurrent use. Every call must happen on the
// goroutine that delivers UI events, and each call runs to completion before
// the next starts. A Render issued from inside an action handler is a plain
// synchronous call.
//
// # Coordinates
//
// Node and Coordinate translate between the view's live index paths and
// semantic coordinates in the retained snapshot. Both report a miss rather
// than failing when the position no longer exists.
package adapter
