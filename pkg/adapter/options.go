package adapter

import "log/slog"

// Config configures an Adapter.
type Config struct {
	// Logger receives render diagnostics.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// MaxBatchOps is the largest changeset applied as an animated batch.
	// Larger changesets reload the view instead. Zero disables the limit.
	// Default: 300.
	MaxBatchOps int

	// Debug validates every rendered tree and logs duplicate identifiers.
	Debug bool

	// Middleware wraps every Render, outermost first.
	Middleware []Middleware
}

// Option configures an Adapter.
type Option func(*Config)

// WithLogger sets the adapter logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMaxBatchOps sets the batch size above which the view is reloaded.
func WithMaxBatchOps(n int) Option {
	return func(c *Config) {
		c.MaxBatchOps = n
	}
}

// WithDebug enables duplicate identifier checks on every render.
func WithDebug(debug bool) Option {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithMiddleware appends render middleware.
func WithMiddleware(mw ...Middleware) Option {
	return func(c *Config) {
		c.Middleware = append(c.Middleware, mw...)
	}
}

// defaultConfig returns the default adapter configuration.
func defaultConfig() Config {
	return Config{
		MaxBatchOps: 300,
	}
}
