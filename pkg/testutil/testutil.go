package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/plugchain/pkg/manager"
	"github.com/arthur-debert/plugchain/pkg/plugins"
	"github.com/arthur-debert/plugchain/pkg/transform"
	"github.com/arthur-debert/plugchain/pkg/types"
)

// TrailKey is the Attrs key trail hooks append to
const TrailKey = "trail"

// NewExecutor builds a manager over providers and wraps it in an executor
func NewExecutor(t testing.TB, providers ...plugins.Provider) *transform.Executor {
	t.Helper()
	m, err := manager.New(providers...)
	require.NoError(t, err)
	return transform.New(m)
}

// UnitNames returns the bundle name of every unit, in order
func UnitNames(units []*plugins.Unit) []string {
	out := make([]string, 0, len(units))
	for _, u := range units {
		out = append(out, u.BundleName())
	}
	return out
}

// AttributeTrail returns a hook appending tag to Attrs[TrailKey]
func AttributeTrail(tag string) func(types.AttributeData) (types.AttributeData, error) {
	return func(d types.AttributeData) (types.AttributeData, error) {
		d = d.Clone()
		d.Attrs[TrailKey] = appendTrail(d.Attrs[TrailKey], tag)
		return d, nil
	}
}

// DatasetTrail returns a hook appending tag to Attrs[TrailKey]
func DatasetTrail(tag string) func(types.DatasetData) (types.DatasetData, error) {
	return func(d types.DatasetData) (types.DatasetData, error) {
		d = d.Clone()
		d.Attrs[TrailKey] = appendTrail(d.Attrs[TrailKey], tag)
		return d, nil
	}
}

// TrailBundle creates a bundle whose attribute and dataset hooks all record
// name, with opts applied after the units
func TrailBundle(t testing.TB, name string, opts ...plugins.Option) *plugins.Bundle {
	t.Helper()
	all := []plugins.Option{
		plugins.WithDataset(plugins.DatasetFuncs{Write: DatasetTrail(name), Read: DatasetTrail(name)}),
		plugins.WithAttribute(plugins.AttributeFuncs{Write: AttributeTrail(name), Read: AttributeTrail(name)}),
	}
	b, err := plugins.NewBundle(name, append(all, opts...)...)
	require.NoError(t, err)
	return b
}

// Trail returns the tags recorded in attrs, nil when none were
func Trail(attrs map[string]any) []string {
	trail, _ := attrs[TrailKey].([]string)
	return trail
}

func appendTrail(v any, tag string) []string {
	trail, _ := v.([]string)
	return append(append([]string(nil), trail...), tag)
}

// CreateFile creates a file with the given content under dir, creating
// parent directories as needed
func CreateFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
