package resolver

import (
	"sort"

	"github.com/arthur-debert/plugchain/pkg/plugins"
	"github.com/arthur-debert/plugchain/pkg/types"
)

// Graph maps each enabled bundle to the set of bundles that must precede it.
// It is built fresh for every resolution and never shared.
type Graph struct {
	kind  types.Kind
	mode  types.Mode
	order []string
	index map[string]int
	deps  map[string]map[string]struct{}
}

// Build constructs the dependency graph over the bundles owning units of kind.
// Units of other kinds are ignored.
func Build(kind types.Kind, units []*plugins.Unit, mode types.Mode) *Graph {
	g := &Graph{
		kind:  kind,
		mode:  mode,
		index: make(map[string]int),
		deps:  make(map[string]map[string]struct{}),
	}

	bundles := make(map[string]*plugins.Bundle)
	for _, u := range units {
		if u.Kind() != kind {
			continue
		}
		name := u.BundleName()
		if _, seen := g.index[name]; seen {
			continue
		}
		g.index[name] = len(g.order)
		g.order = append(g.order, name)
		g.deps[name] = make(map[string]struct{})
		bundles[name] = u.Bundle()
	}

	for _, name := range g.order {
		for _, after := range bundles[name].After(mode) {
			if g.has(after) {
				g.deps[name][after] = struct{}{}
			}
		}
	}

	for _, name := range g.order {
		for _, before := range bundles[name].Before(mode) {
			if g.has(before) {
				g.deps[before][name] = struct{}{}
			}
		}
	}

	g.restrict(g.closure())
	return g
}

func (g *Graph) has(name string) bool {
	_, ok := g.index[name]
	return ok
}

// closure returns every bundle reachable from the enabled set by following
// dependency edges. Edges are filtered to enabled names before this runs, so
// today the closure is the enabled set itself; it stays so that letting a
// bundle pull in prerequisites that were not enabled on their own needs no
// change here.
func (g *Graph) closure() map[string]struct{} {
	needed := make(map[string]struct{}, len(g.order))
	queue := append([]string(nil), g.order...)
	for len(queue) > 0 {
		var next []string
		for _, name := range queue {
			if _, done := needed[name]; done {
				continue
			}
			needed[name] = struct{}{}
			for dep := range g.deps[name] {
				next = append(next, dep)
			}
		}
		queue = next
	}
	return needed
}

func (g *Graph) restrict(keep map[string]struct{}) {
	order := g.order[:0]
	for _, name := range g.order {
		if _, ok := keep[name]; ok {
			order = append(order, name)
			continue
		}
		delete(g.deps, name)
	}
	g.order = order
	for i, name := range g.order {
		g.index[name] = i
	}
	for name := range g.index {
		if _, ok := keep[name]; !ok {
			delete(g.index, name)
		}
	}
}

// Kind returns the entity kind the graph was built for
func (g *Graph) Kind() types.Kind {
	return g.kind
}

// Mode returns the mode the graph was built for
func (g *Graph) Mode() types.Mode {
	return g.mode
}

// Nodes returns the bundle names in declaration order
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.order...)
}

// Dependencies returns the bundles that must precede name, in declaration order
func (g *Graph) Dependencies(name string) []string {
	return g.sorted(g.deps[name])
}

// EdgeCount returns the number of distinct precedence edges
func (g *Graph) EdgeCount() int {
	n := 0
	for _, deps := range g.deps {
		n += len(deps)
	}
	return n
}

func (g *Graph) sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return g.index[out[i]] < g.index[out[j]] })
	return out
}
