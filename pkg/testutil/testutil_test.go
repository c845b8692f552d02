package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/plugchain/pkg/plugins"
	"github.com/arthur-debert/plugchain/pkg/types"
)

func TestTrailBundles_RecordResolvedOrder(t *testing.T) {
	a := TrailBundle(t, "a", plugins.WriteAfter("b"))
	b := TrailBundle(t, "b")

	e := NewExecutor(t, a, b)

	out, err := e.WriteAttributes(types.KindAttribute, types.AttributeData{})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, Trail(out.Attrs))

	ds, err := e.ReadDataset(types.DatasetData{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, Trail(ds.Attrs))

	m := e.Manager()
	assert.Equal(t, []string{"b", "a"}, UnitNames(m.Order(types.KindDataset, types.ModeWrite)))
}

func TestTrail_DoesNotShareBackingArray(t *testing.T) {
	hook := AttributeTrail("x")
	in := types.AttributeData{Attrs: map[string]any{TrailKey: make([]string, 1, 4)}}

	first, err := hook(in)
	require.NoError(t, err)
	second, err := hook(in)
	require.NoError(t, err)

	first.Attrs[TrailKey].([]string)[1] = "changed"
	assert.Equal(t, "x", Trail(second.Attrs)[1])
	assert.Nil(t, Trail(map[string]any{}))
}

func TestCreateFile(t *testing.T) {
	path := CreateFile(t, t.TempDir(), "nested/dir/file.txt", "content")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}
