// Package builtin ships the bundles every installation knows about:
//
//	git_lfs               refuses to load datasets that are still Git LFS pointer files
//	units                 stores physical quantities as a value plus a unit attribute
//	normalize_attributes  turns typed slices and timestamps into plain attribute values
//	standard              group of units and normalize_attributes
//
// Catalog returns them registered by name, ready for a session to enable.
package builtin
