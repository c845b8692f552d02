package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/plugchain/pkg/errors"
)

const sampleHeader = `# plugchain configuration
#
# Place this file at $XDG_CONFIG_HOME/plugchain/config.toml or pass it with
# --config. Environment variables prefixed PLUGCHAIN_ override file values,
# e.g. PLUGCHAIN_OUTPUT_FORMAT=json or PLUGCHAIN_PLUGINS_ENABLED=units,git_lfs.
#
# Bundles declared here get identity hooks for their kinds. They take part in
# ordering so a plan can be checked before the plugin code exists.

`

// Sample returns an example configuration covering every field
func Sample() *Config {
	return &Config{
		Plugins: Plugins{Enabled: []string{"standard", "git_lfs"}},
		Bundles: []BundleDecl{
			{
				Name:       "checksum",
				Kinds:      []string{"dataset"},
				WriteAfter: []string{"units"},
				ReadBefore: []string{"units"},
			},
		},
		Logging: Logging{Verbosity: 0},
		Output:  Output{Format: "auto"},
	}
}

// GenerateConfigContent renders Sample as a commented TOML document
func GenerateConfigContent() (string, error) {
	body, err := toml.Marshal(Sample())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render sample configuration")
	}
	return sampleHeader + strings.TrimLeft(string(body), "\n"), nil
}

// Marshal renders cfg as TOML
func Marshal(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}
