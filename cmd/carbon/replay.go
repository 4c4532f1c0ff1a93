package main

import (
	"io"
	"log/slog"

	"github.com/vango-dev/carbon/internal/config"
	"github.com/vango-dev/carbon/pkg/adapter"
	"github.com/vango-dev/carbon/pkg/section"
	"github.com/vango-dev/carbon/pkg/viewtest"
)

// replay renders old then next through an adapter backed by an in-memory
// view and reports how the second render reached the view. The view
// rejects any changeset that does not reproduce next.
func replay(cfg *config.Config, logger *slog.Logger, old, next section.Tree) (adapter.RenderMode, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	var mode adapter.RenderMode
	opts := append(cfg.AdapterOptions(),
		adapter.WithLogger(logger),
		adapter.WithMiddleware(func(info *adapter.RenderInfo, next func() error) error {
			err := next()
			mode = info.Mode
			return err
		}),
	)

	a := adapter.New(viewtest.New(), opts...)
	if err := a.Render(old); err != nil {
		return mode, err
	}
	err := a.Render(next)
	return mode, err
}
