// Package action routes user interactions on rendered elements back to the
// components that produced them.
//
// A Dispatcher resolves a fired element to its container, the adapter bound
// to that container, a coordinate in the adapter's snapshot, and finally the
// node at that coordinate. Any miss along the way ends the dispatch
// silently: interactions on detached or stale elements are routine races
// with re-rendering, not errors.
//
// # Handlers
//
// Handlers are found on the node itself first, then in a Registry keyed by
// content type and action kind:
//
//	handlers := action.NewRegistry()
//	action.On(handlers, component.ActionTap, func(p *action.Payload, row Row) {
//	    openProfile(row.UserID)
//	})
//
// # Re-rendering from an action
//
// Content implementing Updater may return new content for an action before
// the handler runs. Layout-affecting changes trigger a full render of the
// adapter's tree; others take the single-node update path. Either way the
// handler receives the node as it is after the re-render.
package action
