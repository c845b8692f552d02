package resolver

import (
	"sort"
	"strings"

	"github.com/arthur-debert/plugchain/pkg/errors"
)

// Sort returns the bundle names in an order where every prerequisite comes
// strictly before its dependents. Nodes that become ready in the same round
// keep their declaration order.
func (g *Graph) Sort() ([]string, error) {
	indegree := make(map[string]int, len(g.order))
	dependents := make(map[string][]string, len(g.order))
	for _, name := range g.order {
		indegree[name] = len(g.deps[name])
		for dep := range g.deps[name] {
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var ready []string
	for _, name := range g.order {
		if indegree[name] == 0 {
			ready = append(ready, name)
		}
	}

	out := make([]string, 0, len(g.order))
	for len(ready) > 0 {
		out = append(out, ready...)

		var next []string
		for _, name := range ready {
			for _, dependent := range dependents[name] {
				indegree[dependent]--
				if indegree[dependent] == 0 {
					next = append(next, dependent)
				}
			}
		}
		sort.Slice(next, func(i, j int) bool { return g.index[next[i]] < g.index[next[j]] })
		ready = next
	}

	if len(out) < len(g.order) {
		return nil, g.cycleError(indegree)
	}
	return out, nil
}

// cycleError reports the unresolved bundles together with one concrete cycle
func (g *Graph) cycleError(indegree map[string]int) error {
	var remaining []string
	for _, name := range g.order {
		if indegree[name] > 0 {
			remaining = append(remaining, name)
		}
	}

	cycle := g.findCycle(remaining, indegree)

	return errors.Newf(errors.ErrCircularDependency,
		"circular plugin dependency in %s %s order: %s",
		g.kind, g.mode, strings.Join(cycle, " -> ")).
		WithDetail("kind", string(g.kind)).
		WithDetail("mode", string(g.mode)).
		WithDetail("bundles", remaining).
		WithDetail("cycle", cycle)
}

// findCycle walks prerequisite edges among unresolved nodes. Every unresolved
// node has at least one unresolved prerequisite, so the walk must revisit a
// node. The returned path reads in execution direction and repeats its first
// element at the end.
func (g *Graph) findCycle(remaining []string, indegree map[string]int) []string {
	if len(remaining) == 0 {
		return nil
	}

	position := make(map[string]int)
	var path []string
	current := remaining[0]
	for {
		if at, seen := position[current]; seen {
			loop := append([]string(nil), path[at:]...)
			loop = append(loop, current)
			// path follows "depends on" edges; flip it to read as "runs before"
			for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
				loop[i], loop[j] = loop[j], loop[i]
			}
			return loop
		}
		position[current] = len(path)
		path = append(path, current)

		next := ""
		for _, dep := range g.Dependencies(current) {
			if indegree[dep] > 0 {
				next = dep
				break
			}
		}
		if next == "" {
			return path
		}
		current = next
	}
}
