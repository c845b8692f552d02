package plugins

import "github.com/arthur-debert/plugchain/pkg/types"

// Unit is one capability-specific hook implementation owned by a Bundle.
// Units are only created by NewBundle, which sets the owner at creation.
type Unit struct {
	kind      types.Kind
	bundle    *Bundle
	dataset   DatasetPlugin
	attribute AttributePlugin
}

// Kind returns the entity kind this unit operates on
func (u *Unit) Kind() types.Kind {
	return u.kind
}

// Bundle returns the owning bundle
func (u *Unit) Bundle() *Bundle {
	return u.bundle
}

// BundleName returns the name of the owning bundle
func (u *Unit) BundleName() string {
	return u.bundle.name
}

// Dataset returns the dataset hooks. Units of other kinds get identity hooks.
func (u *Unit) Dataset() DatasetPlugin {
	if u.dataset == nil {
		return DatasetBase{}
	}
	return u.dataset
}

// Attribute returns the attribute-shaped hooks. Dataset units get identity hooks.
func (u *Unit) Attribute() AttributePlugin {
	if u.attribute == nil {
		return AttributeBase{}
	}
	return u.attribute
}

// String identifies the unit for logs
func (u *Unit) String() string {
	return u.bundle.name + "/" + string(u.kind)
}
