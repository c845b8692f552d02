// Package plugins defines plugin bundles and the units they contribute.
//
// A Bundle is a named group of units plus four ordering lists that refer to
// other bundles by name: write_before, write_after, read_before and
// read_after. A Unit is a single hook implementation for one entity kind and
// always knows the bundle that owns it, so later stages can recover ordering
// constraints from a unit alone.
//
// Bundles are immutable once built:
//
//	b, err := plugins.NewBundle("units",
//	    plugins.WithDataset(unitsDataset{}),
//	    plugins.WithAttribute(unitsAttributes{}),
//	    plugins.WriteBefore("normalize_attributes"),
//	)
//
// Providers unify single bundles and reusable groups of bundles behind one
// operation, Bundles(), so a session can be configured from either.
package plugins
