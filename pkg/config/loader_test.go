package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config directory at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	return filepath.Join(home, "plugchain")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"standard"}, cfg.Plugins.Enabled)
	assert.Empty(t, cfg.Bundles)
	assert.Equal(t, 0, cfg.Logging.Verbosity)
	assert.Equal(t, "auto", cfg.Output.Format)
}

func TestLoad_UserConfigTOML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `
[plugins]
enabled = ["units", "git_lfs"]

[[bundles]]
name = "checksum"
kinds = ["dataset", "attribute"]
write_after = ["units"]

[[bundles]]
name = "audit"
kinds = ["group"]
read_before = ["checksum"]

[output]
format = "json"
`)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"units", "git_lfs"}, cfg.Plugins.Enabled)
	require.Len(t, cfg.Bundles, 2)
	assert.Equal(t, BundleDecl{
		Name:       "checksum",
		Kinds:      []string{"dataset", "attribute"},
		WriteAfter: []string{"units"},
	}, cfg.Bundles[0])
	assert.Equal(t, []string{"checksum"}, cfg.Bundles[1].ReadBefore)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 0, cfg.Logging.Verbosity, "untouched keys keep their defaults")
}

func TestLoad_ExplicitYAML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "plan.yaml")
	writeFile(t, path, `
plugins:
  enabled: [git_lfs]
bundles:
  - name: compress
    kinds: [dataset]
    write_before: [git_lfs]
logging:
  verbosity: 2
`)

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)

	assert.Equal(t, []string{"git_lfs"}, cfg.Plugins.Enabled)
	require.Len(t, cfg.Bundles, 1)
	assert.Equal(t, []string{"git_lfs"}, cfg.Bundles[0].WriteBefore)
	assert.Equal(t, 2, cfg.Logging.Verbosity)
}

func TestLoad_EnvironmentAndOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("PLUGCHAIN_PLUGINS_ENABLED", "units,normalize_attributes")
	t.Setenv("PLUGCHAIN_OUTPUT_FORMAT", "toml")
	t.Setenv("PLUGCHAIN_LOGGING_VERBOSITY", "1")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"units", "normalize_attributes"}, cfg.Plugins.Enabled)
	assert.Equal(t, "toml", cfg.Output.Format)
	assert.Equal(t, 1, cfg.Logging.Verbosity)

	cfg, err = Load(LoadOptions{Overrides: map[string]interface{}{"output.format": "text"}})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format, "overrides win over the environment")
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	badTOML := filepath.Join(dir, "bad.toml")
	writeFile(t, badTOML, "[plugins\nenabled = ")
	unknownExt := filepath.Join(dir, "config.ini")
	writeFile(t, unknownExt, "a=b")
	badFormat := filepath.Join(dir, "format.toml")
	writeFile(t, badFormat, "[output]\nformat = \"xml\"\n")
	dupBundle := filepath.Join(dir, "dup.toml")
	writeFile(t, dupBundle, "[[bundles]]\nname = \"a\"\n[[bundles]]\nname = \"a\"\n")

	tests := []struct {
		name string
		path string
		code errors.ErrorCode
	}{
		{"missing explicit file", filepath.Join(dir, "nope.toml"), errors.ErrConfigLoad},
		{"malformed toml", badTOML, errors.ErrConfigParse},
		{"unsupported extension", unknownExt, errors.ErrConfigParse},
		{"unknown format", badFormat, errors.ErrConfigInvalid},
		{"duplicate bundle", dupBundle, errors.ErrConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(LoadOptions{Path: tt.path})
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
			assert.True(t, errors.IsSetupError(err))
		})
	}
}

func TestGenerateConfigContent_LoadsBack(t *testing.T) {
	isolate(t)

	content, err := GenerateConfigContent()
	require.NoError(t, err)
	assert.Contains(t, content, "# plugchain configuration")
	assert.Contains(t, content, "write_after")

	path := filepath.Join(t.TempDir(), "sample.toml")
	writeFile(t, path, content)

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, Sample(), cfg)
}
