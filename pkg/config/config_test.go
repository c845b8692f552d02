package config

import (
	"testing"

	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/arthur-debert/plugchain/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Plugins: Plugins{Enabled: []string{"units"}},
		Output:  Output{Format: "auto"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"sample", func(c *Config) { *c = *Sample() }, true},
		{"blank enabled name", func(c *Config) { c.Plugins.Enabled = []string{" "} }, false},
		{"unnamed bundle", func(c *Config) { c.Bundles = []BundleDecl{{Kinds: []string{"dataset"}}} }, false},
		{"unknown kind", func(c *Config) { c.Bundles = []BundleDecl{{Name: "x", Kinds: []string{"blob"}}} }, false},
		{"negative verbosity", func(c *Config) { c.Logging.Verbosity = -1 }, false},
		{"empty format", func(c *Config) { c.Output.Format = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
		})
	}
}

func TestBundleDecl_ParsedKinds(t *testing.T) {
	kinds, err := BundleDecl{Name: "x", Kinds: []string{"Dataset", " raw "}}.ParsedKinds()
	require.NoError(t, err)
	assert.Equal(t, []types.Kind{types.KindDataset, types.KindRaw}, kinds)

	_, err = BundleDecl{Name: "x", Kinds: []string{"table"}}.ParsedKinds()
	require.Error(t, err)
	assert.Equal(t, "table", errors.GetErrorDetails(err)["kind"])
}
