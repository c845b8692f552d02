package plugins_test

import (
	"testing"

	"github.com/arthur-debert/plugchain/pkg/plugins"
	"github.com/stretchr/testify/assert"
)

func names(bundles []*plugins.Bundle) []string {
	out := make([]string, 0, len(bundles))
	for _, b := range bundles {
		out = append(out, b.Name())
	}
	return out
}

func TestBundleProvidesItself(t *testing.T) {
	b := plugins.MustBundle("a")
	assert.Equal(t, []*plugins.Bundle{b}, b.Bundles())
}

func TestGroupFlattensRecursively(t *testing.T) {
	a := plugins.MustBundle("a")
	b := plugins.MustBundle("b")
	c := plugins.MustBundle("c")

	inner := plugins.NewGroup("inner", b, c)
	outer := plugins.NewGroup("outer", a, inner, nil)

	assert.Equal(t, "outer", outer.Name())
	assert.Equal(t, []string{"a", "b", "c"}, names(outer.Bundles()))
}

func TestFlatten(t *testing.T) {
	a := plugins.MustBundle("a")
	g := plugins.NewGroup("g", plugins.MustBundle("b"))

	assert.Equal(t, []string{"b", "a"}, names(plugins.Flatten(g, nil, a)))
	assert.Empty(t, plugins.Flatten())
}

func TestGroupMembersAreFixedAtConstruction(t *testing.T) {
	a := plugins.MustBundle("a")
	b := plugins.MustBundle("b")

	members := []plugins.Provider{a, b}
	g := plugins.NewGroup("g", members...)

	members[1] = plugins.NewGroup("other", plugins.MustBundle("c"))
	members = append(members, g)

	assert.Equal(t, []string{"a", "b"}, names(g.Bundles()))
	assert.Equal(t, []string{"a", "c", "a", "b"}, names(plugins.Flatten(members...)))
}
