// Package component provides the identity and node model for Carbon.
//
// A Component is any lightweight value describing one piece of list content:
// a row, a grid cell, a section header. Components are immutable values that
// are rebuilt on every render pass. The framework never inspects them beyond
// a small set of optional capability interfaces.
//
// # Identity
//
// Every component is wrapped in a Node carrying an Identifier. Identifiers
// decide which nodes are "the same logical entity" across two renders:
//
//	type Row struct{ UserID, Name string }
//
//	func (r Row) ID() any { return r.UserID }
//
// Components that do not implement Identifiable fall back to value identity:
// comparable values are their own key, other values are keyed by a
// deterministic rendering of their contents.
//
// # Capabilities
//
// Capabilities are queried with interface checks at diff and dispatch time:
//
//   - Identifiable: explicit identity key
//   - ContentEquatable: cheap content comparison used to emit updates
//   - Updatable: reports whether a content change affects layout
//   - Actionable: declares the action kinds the component emits
package component
