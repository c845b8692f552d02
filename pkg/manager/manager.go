// Package manager collects the bundles supplied to a session, groups their
// units by entity kind and resolves a read order and a write order for each
// kind. A Manager is immutable once built; a different bundle set needs a new
// Manager.
package manager

import (
	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/arthur-debert/plugchain/pkg/logging"
	"github.com/arthur-debert/plugchain/pkg/plugins"
	"github.com/arthur-debert/plugchain/pkg/resolver"
	"github.com/arthur-debert/plugchain/pkg/types"
)

// Ordered holds the resolved unit lists of one kind
type Ordered struct {
	Read  []*plugins.Unit
	Write []*plugins.Unit
}

// For returns the list for mode
func (o Ordered) For(mode types.Mode) []*plugins.Unit {
	if mode == types.ModeRead {
		return o.Read
	}
	return o.Write
}

// Manager owns the resolved pipelines of a session
type Manager struct {
	bundles []*plugins.Bundle
	byName  map[string]*plugins.Bundle
	ordered map[types.Kind]Ordered
}

// New flattens providers and resolves every pipeline. Construction fails on
// the first duplicate bundle name or dependency cycle; no partial Manager is
// returned.
func New(providers ...plugins.Provider) (*Manager, error) {
	logger := logging.GetLogger("manager")

	m := &Manager{
		byName:  make(map[string]*plugins.Bundle),
		ordered: make(map[types.Kind]Ordered, len(types.AllKinds)),
	}

	for _, b := range plugins.Flatten(providers...) {
		if b == nil {
			continue
		}
		if existing, ok := m.byName[b.Name()]; ok {
			if existing == b {
				continue
			}
			return nil, errors.Newf(errors.ErrConfigInvalid, "bundle %q is supplied more than once", b.Name()).
				WithDetail("bundle", b.Name())
		}
		m.byName[b.Name()] = b
		m.bundles = append(m.bundles, b)
	}

	for _, kind := range types.AllKinds {
		var units []*plugins.Unit
		for _, b := range m.bundles {
			units = append(units, b.Units(kind)...)
		}

		var o Ordered
		var err error
		if o.Write, err = resolver.Resolve(kind, units, types.ModeWrite); err != nil {
			return nil, err
		}
		if o.Read, err = resolver.Resolve(kind, units, types.ModeRead); err != nil {
			return nil, err
		}
		m.ordered[kind] = o
	}

	logger.Debug().
		Strs("bundles", m.Names()).
		Msg("Plugin pipelines resolved")

	return m, nil
}

// Order returns the units of kind in execution order for mode
func (m *Manager) Order(kind types.Kind, mode types.Mode) []*plugins.Unit {
	return append([]*plugins.Unit(nil), m.ordered[kind].For(mode)...)
}

// Ordered returns both pipelines of kind
func (m *Manager) Ordered(kind types.Kind) Ordered {
	o := m.ordered[kind]
	return Ordered{
		Read:  append([]*plugins.Unit(nil), o.Read...),
		Write: append([]*plugins.Unit(nil), o.Write...),
	}
}

// Bundles returns the session bundles in supply order
func (m *Manager) Bundles() []*plugins.Bundle {
	return append([]*plugins.Bundle(nil), m.bundles...)
}

// Names returns the session bundle names in supply order
func (m *Manager) Names() []string {
	names := make([]string, len(m.bundles))
	for i, b := range m.bundles {
		names[i] = b.Name()
	}
	return names
}

// Enabled reports whether a bundle named name is part of the session
func (m *Manager) Enabled(name string) bool {
	_, ok := m.byName[name]
	return ok
}

// Bundle returns the session bundle named name
func (m *Manager) Bundle(name string) (*plugins.Bundle, bool) {
	b, ok := m.byName[name]
	return b, ok
}
