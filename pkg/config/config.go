package config

import (
	"strings"

	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/arthur-debert/plugchain/pkg/types"
)

// Output formats accepted by output.format
var Formats = []string{"auto", "term", "text", "json", "toml"}

// Config is the fully merged configuration
type Config struct {
	Plugins Plugins      `koanf:"plugins" toml:"plugins"`
	Bundles []BundleDecl `koanf:"bundles" toml:"bundles,omitempty"`
	Logging Logging      `koanf:"logging" toml:"logging"`
	Output  Output       `koanf:"output" toml:"output"`
}

// Plugins selects providers from the catalog by name
type Plugins struct {
	Enabled []string `koanf:"enabled" toml:"enabled"`
}

// BundleDecl declares a bundle in configuration. Declared bundles carry
// identity units for their kinds, which is enough to plan orders against
// real plugins before the implementation exists.
type BundleDecl struct {
	Name        string   `koanf:"name" toml:"name"`
	Kinds       []string `koanf:"kinds" toml:"kinds"`
	WriteBefore []string `koanf:"write_before" toml:"write_before,omitempty"`
	WriteAfter  []string `koanf:"write_after" toml:"write_after,omitempty"`
	ReadBefore  []string `koanf:"read_before" toml:"read_before,omitempty"`
	ReadAfter   []string `koanf:"read_after" toml:"read_after,omitempty"`
}

// Logging configures log verbosity (0 warn, 1 info, 2 debug, 3 trace)
type Logging struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// Output configures how results are rendered
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// ParsedKinds returns the declared kinds as types.Kind values
func (d BundleDecl) ParsedKinds() ([]types.Kind, error) {
	kinds := make([]types.Kind, 0, len(d.Kinds))
	for _, s := range d.Kinds {
		k, err := types.ParseKind(s)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "bundle %q declares an unknown kind", d.Name).
				WithDetail("bundle", d.Name).
				WithDetail("kind", s)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	for _, name := range c.Plugins.Enabled {
		if strings.TrimSpace(name) == "" {
			return errors.New(errors.ErrConfigInvalid, "plugins.enabled contains an empty name")
		}
	}

	seen := make(map[string]struct{}, len(c.Bundles))
	for i, d := range c.Bundles {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return errors.Newf(errors.ErrConfigInvalid, "bundles[%d] has no name", i).
				WithDetail("index", i)
		}
		if _, dup := seen[name]; dup {
			return errors.Newf(errors.ErrConfigInvalid, "bundle %q is declared more than once", name).
				WithDetail("bundle", name)
		}
		seen[name] = struct{}{}
		if _, err := d.ParsedKinds(); err != nil {
			return err
		}
	}

	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "logging.verbosity must not be negative, got %d", c.Logging.Verbosity)
	}

	for _, f := range Formats {
		if c.Output.Format == f {
			return nil
		}
	}
	return errors.Newf(errors.ErrConfigInvalid, "unknown output format %q", c.Output.Format).
		WithDetail("format", c.Output.Format).
		WithDetail("allowed", Formats)
}
