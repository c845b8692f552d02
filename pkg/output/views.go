package output

import (
	"github.com/arthur-debert/plugchain/pkg/manager"
	"github.com/arthur-debert/plugchain/pkg/plugins"
	"github.com/arthur-debert/plugchain/pkg/types"
)

// KindView is the read and write order of one kind. A nil order means the
// mode is not part of the view.
type KindView struct {
	Kind  string
	Write []string
	Read  []string
}

// PlanView is the text form of a manager.Plan
type PlanView struct {
	Bundles []string
	Kinds   []KindView
}

// NewPlanView groups plan pipelines by kind. Kinds without pipelines are omitted.
func NewPlanView(p manager.Plan) PlanView {
	v := PlanView{Bundles: p.Bundles}
	for _, kind := range types.AllKinds {
		write, hasWrite := p.Pipeline(kind, types.ModeWrite)
		read, hasRead := p.Pipeline(kind, types.ModeRead)
		if !hasWrite && !hasRead {
			continue
		}
		v.Kinds = append(v.Kinds, KindView{
			Kind:  string(kind),
			Write: write.Bundles,
			Read:  read.Bundles,
		})
	}
	return v
}

// encodedPlan is p with empty lists in place of nil ones
func encodedPlan(p manager.Plan) manager.Plan {
	out := manager.Plan{Bundles: nonNil(p.Bundles), Pipelines: []manager.Pipeline{}}
	for _, pl := range p.Pipelines {
		pl.Bundles = nonNil(pl.Bundles)
		out.Pipelines = append(out.Pipelines, pl)
	}
	return out
}

// CatalogEntry describes one provider available to sessions
type CatalogEntry struct {
	Name    string   `json:"name" toml:"name"`
	Type    string   `json:"type" toml:"type"`
	Bundles []string `json:"bundles" toml:"bundles"`
	Kinds   []string `json:"kinds" toml:"kinds"`
}

// NewCatalogEntry describes provider p registered under name
func NewCatalogEntry(name string, p plugins.Provider) CatalogEntry {
	e := CatalogEntry{Name: name, Type: "bundle", Bundles: []string{}, Kinds: []string{}}
	if _, ok := p.(*plugins.Group); ok {
		e.Type = "group"
	}

	seen := make(map[types.Kind]bool)
	for _, b := range p.Bundles() {
		e.Bundles = append(e.Bundles, b.Name())
		for _, k := range b.Kinds() {
			seen[k] = true
		}
	}
	for _, k := range types.AllKinds {
		if seen[k] {
			e.Kinds = append(e.Kinds, string(k))
		}
	}
	return e
}

// ErrorView is the encoded form of an error
type ErrorView struct {
	Code    string                 `json:"code" toml:"code"`
	Message string                 `json:"message" toml:"message"`
	Details map[string]interface{} `json:"details,omitempty" toml:"details,omitempty"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
