// Package middleware provides observability for Carbon adapters and
// dispatchers.
//
// This package includes:
//   - Prometheus metrics for renders and dispatched actions
//   - OpenTelemetry spans for renders and dispatched actions
//
// Render instrumentation plugs into adapter.WithMiddleware; action
// instrumentation is an action.Observer:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("myapp"))
//	a := adapter.New(view,
//	    adapter.WithMiddleware(m.Render(), middleware.OpenTelemetry()),
//	)
//	d := action.NewDispatcher(locator, adapters,
//	    action.WithObserver(action.Observers(m.Observer(), middleware.TraceActions())),
//	)
//
// # Prometheus Metrics
//
// Metrics collected:
//   - carbon_renders_total: renders by mode and status
//   - carbon_render_ops_total: applied edit operations by kind
//   - carbon_render_duration_seconds: render duration by mode
//   - carbon_actions_total: dispatched actions by kind
package middleware
