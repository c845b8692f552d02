package plugins

// Provider supplies bundles to a session. A Bundle provides itself; a Group
// provides its members.
type Provider interface {
	Bundles() []*Bundle
}

// Group is a reusable, named collection of providers enabled as a unit.
// Members are fixed at construction, so groups nest only as a tree and a
// group can never reach itself. Providers implemented outside this package
// must keep that property: Bundles must not return through a group that
// contains the provider.
type Group struct {
	name    string
	members []Provider
}

// NewGroup creates a group. Nil members are skipped; later changes to the
// members slice do not affect the group.
func NewGroup(name string, members ...Provider) *Group {
	g := &Group{name: name}
	for _, m := range members {
		if m != nil {
			g.members = append(g.members, m)
		}
	}
	return g
}

// Name returns the group name
func (g *Group) Name() string {
	return g.name
}

// Bundles flattens the members in declaration order
func (g *Group) Bundles() []*Bundle {
	return Flatten(g.members...)
}

// Flatten expands providers into a single bundle list, preserving supply order
func Flatten(providers ...Provider) []*Bundle {
	var out []*Bundle
	for _, p := range providers {
		if p == nil {
			continue
		}
		out = append(out, p.Bundles()...)
	}
	return out
}
