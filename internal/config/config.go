package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/carbon/internal/errors"
	"github.com/vango-dev/carbon/pkg/adapter"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "carbon.yaml"

	// DefaultMaxBatchOps matches the adapter default.
	DefaultMaxBatchOps = 300

	// DefaultFormat is the default changeset output format.
	DefaultFormat = "text"
)

// Formats lists the supported output formats.
var Formats = []string{"text", "yaml"}

// Config represents the complete carbon.yaml configuration.
type Config struct {
	// Render contains the adapter settings used when replaying snapshots.
	Render RenderConfig `yaml:"render"`

	// Output contains CLI output settings.
	Output OutputConfig `yaml:"output"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig mirrors adapter.Config.
type RenderConfig struct {
	// MaxBatchOps is the largest changeset applied as a batch.
	// Zero disables the limit.
	MaxBatchOps *int `yaml:"maxBatchOps,omitempty"`

	// Debug logs duplicate identifiers on every render.
	Debug bool `yaml:"debug,omitempty"`
}

// OutputConfig contains CLI output settings.
type OutputConfig struct {
	// Format is the default changeset format (text or yaml).
	Format string `yaml:"format,omitempty"`

	// Color enables ANSI colors in messages and errors.
	Color *bool `yaml:"color,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from the specified directory.
// It looks for carbon.yaml in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E402").
			WithDetail("Cannot read " + path + ".").
			Wrap(err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E402").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid YAML")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("E402").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E402").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Render.MaxBatchOps == nil {
		n := DefaultMaxBatchOps
		c.Render.MaxBatchOps = &n
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if n := c.MaxBatchOps(); n < 0 {
		return errors.New("E403").WithDetail(fmt.Sprintf("render.maxBatchOps must not be negative, got %d.", n))
	}
	if !ValidFormat(c.Output.Format) {
		return errors.New("E403").
			WithDetail(fmt.Sprintf("output.format %q is not supported.", c.Output.Format)).
			WithSuggestion("Use one of: text, yaml")
	}
	return nil
}

// MaxBatchOps returns the effective batch limit.
func (c *Config) MaxBatchOps() int {
	if c.Render.MaxBatchOps == nil {
		return DefaultMaxBatchOps
	}
	return *c.Render.MaxBatchOps
}

// ColorEnabled reports whether output may use ANSI colors.
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// AdapterOptions returns the adapter options the render settings describe.
func (c *Config) AdapterOptions() []adapter.Option {
	return []adapter.Option{
		adapter.WithMaxBatchOps(c.MaxBatchOps()),
		adapter.WithDebug(c.Render.Debug),
	}
}

// ValidFormat reports whether format is a supported output format.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the directory containing
// carbon.yaml. It returns "" when there is none.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Discover loads carbon.yaml from startDir or its nearest ancestor that has
// one, falling back to defaults when none exists.
func Discover(startDir string) (*Config, error) {
	root, err := FindProjectRoot(startDir)
	if err != nil {
		return nil, err
	}
	if root == "" {
		return New(), nil
	}
	return Load(root)
}
