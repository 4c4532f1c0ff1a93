package adapter

import (
	"github.com/vango-dev/carbon/pkg/diff"
	"github.com/vango-dev/carbon/pkg/section"
)

// RenderMode describes how a render reached the view.
type RenderMode uint8

const (
	ModeBatch   RenderMode = iota // Changeset applied as a batch
	ModeReload                    // Whole view reloaded
	ModeSkipped                   // Empty changeset, no view call
	ModeRefresh                   // Single-node update
)

// String returns the string representation of the RenderMode.
func (m RenderMode) String() string {
	switch m {
	case ModeBatch:
		return "batch"
	case ModeReload:
		return "reload"
	case ModeSkipped:
		return "skipped"
	case ModeRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// RenderInfo describes one render as it passes through middleware.
// Changes and Mode are filled in by the time next returns.
type RenderInfo struct {
	Old     section.Tree
	New     section.Tree
	Changes diff.Changeset
	Mode    RenderMode
}

// Middleware wraps a render. It must call next exactly once and return its
// error (or a wrapped form of it).
type Middleware func(info *RenderInfo, next func() error) error

// chain composes middleware around final, first element outermost.
func chain(mw []Middleware, info *RenderInfo, final func() error) func() error {
	run := final
	for i := len(mw) - 1; i >= 0; i-- {
		m, inner := mw[i], run
		run = func() error { return m(info, inner) }
	}
	return run
}
