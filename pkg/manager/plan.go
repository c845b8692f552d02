package manager

import "github.com/arthur-debert/plugchain/pkg/types"

// Pipeline is the bundle order of one kind and mode, by name
type Pipeline struct {
	Kind    types.Kind `json:"kind" toml:"kind"`
	Mode    types.Mode `json:"mode" toml:"mode"`
	Bundles []string   `json:"bundles" toml:"bundles"`
}

// Plan is a display-oriented summary of every resolved pipeline
type Plan struct {
	Bundles   []string   `json:"bundles" toml:"bundles"`
	Pipelines []Pipeline `json:"pipelines" toml:"pipelines"`
}

// Plan summarises the resolved pipelines by bundle name. Kinds without units
// are left out. A bundle with several units of one kind is listed once.
func (m *Manager) Plan() Plan {
	p := Plan{Bundles: m.Names(), Pipelines: []Pipeline{}}
	for _, kind := range types.AllKinds {
		for _, mode := range types.AllModes {
			units := m.ordered[kind].For(mode)
			if len(units) == 0 {
				continue
			}
			var names []string
			for _, u := range units {
				if len(names) > 0 && names[len(names)-1] == u.BundleName() {
					continue
				}
				names = append(names, u.BundleName())
			}
			p.Pipelines = append(p.Pipelines, Pipeline{Kind: kind, Mode: mode, Bundles: names})
		}
	}
	return p
}

// Pipeline returns the plan entry for kind and mode
func (p Plan) Pipeline(kind types.Kind, mode types.Mode) (Pipeline, bool) {
	for _, pl := range p.Pipelines {
		if pl.Kind == kind && pl.Mode == mode {
			return pl, true
		}
	}
	return Pipeline{}, false
}
