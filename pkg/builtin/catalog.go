package builtin

import (
	"github.com/arthur-debert/plugchain/pkg/plugins"
	"github.com/arthur-debert/plugchain/pkg/registry"
)

// StandardName is the name of the default group
const StandardName = "standard"

// Standard groups the bundles most sessions want
func Standard() *plugins.Group {
	return plugins.NewGroup(StandardName, Units(), NormalizeAttributes())
}

// Catalog returns a fresh registry of every builtin provider. The standard
// group shares its members with the individual entries, so enabling both
// "standard" and "units" yields one units bundle.
func Catalog() registry.Registry[plugins.Provider] {
	units := Units()
	normalize := NormalizeAttributes()

	reg := registry.New[plugins.Provider]()
	registry.MustRegister[plugins.Provider](reg, GitLFSName, GitLFS())
	registry.MustRegister[plugins.Provider](reg, UnitsName, units)
	registry.MustRegister[plugins.Provider](reg, NormalizeAttributesName, normalize)
	registry.MustRegister[plugins.Provider](reg, StandardName, plugins.NewGroup(StandardName, units, normalize))
	return reg
}
