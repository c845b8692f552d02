package plugins

import (
	"strings"

	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/arthur-debert/plugchain/pkg/types"
)

// Bundle is a named group of units plus ordering constraints against other
// bundles. The name is the node identity in dependency graphs.
type Bundle struct {
	name  string
	units map[types.Kind][]*Unit

	writeBefore []string
	writeAfter  []string
	readBefore  []string
	readAfter   []string
}

// Option configures a Bundle under construction
type Option func(*bundleSpec)

type bundleSpec struct {
	dataset   []DatasetPlugin
	attribute map[types.Kind][]AttributePlugin

	writeBefore []string
	writeAfter  []string
	readBefore  []string
	readAfter   []string
}

// WithDataset adds dataset units
func WithDataset(p ...DatasetPlugin) Option {
	return func(s *bundleSpec) { s.dataset = append(s.dataset, p...) }
}

// WithAttribute adds attribute units
func WithAttribute(p ...AttributePlugin) Option {
	return withAttributeKind(types.KindAttribute, p)
}

// WithFile adds file units
func WithFile(p ...AttributePlugin) Option {
	return withAttributeKind(types.KindFile, p)
}

// WithGroup adds group units
func WithGroup(p ...AttributePlugin) Option {
	return withAttributeKind(types.KindGroup, p)
}

// WithRaw adds raw units
func WithRaw(p ...AttributePlugin) Option {
	return withAttributeKind(types.KindRaw, p)
}

func withAttributeKind(kind types.Kind, p []AttributePlugin) Option {
	return func(s *bundleSpec) { s.attribute[kind] = append(s.attribute[kind], p...) }
}

// WriteBefore names bundles whose write hooks must run after this bundle's
func WriteBefore(names ...string) Option {
	return func(s *bundleSpec) { s.writeBefore = append(s.writeBefore, names...) }
}

// WriteAfter names bundles whose write hooks must run before this bundle's
func WriteAfter(names ...string) Option {
	return func(s *bundleSpec) { s.writeAfter = append(s.writeAfter, names...) }
}

// ReadBefore names bundles whose read hooks must run after this bundle's
func ReadBefore(names ...string) Option {
	return func(s *bundleSpec) { s.readBefore = append(s.readBefore, names...) }
}

// ReadAfter names bundles whose read hooks must run before this bundle's
func ReadAfter(names ...string) Option {
	return func(s *bundleSpec) { s.readAfter = append(s.readAfter, names...) }
}

// NewBundle builds an immutable bundle. A blank name is a configuration error.
func NewBundle(name string, opts ...Option) (*Bundle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New(errors.ErrConfigInvalid, "bundle name cannot be empty")
	}

	spec := &bundleSpec{attribute: make(map[types.Kind][]AttributePlugin)}
	for _, opt := range opts {
		opt(spec)
	}

	b := &Bundle{
		name:        name,
		units:       make(map[types.Kind][]*Unit),
		writeBefore: nameSet(spec.writeBefore),
		writeAfter:  nameSet(spec.writeAfter),
		readBefore:  nameSet(spec.readBefore),
		readAfter:   nameSet(spec.readAfter),
	}

	for _, p := range spec.dataset {
		if p == nil {
			return nil, errors.Newf(errors.ErrConfigInvalid, "bundle %q has a nil dataset plugin", name)
		}
		b.units[types.KindDataset] = append(b.units[types.KindDataset],
			&Unit{kind: types.KindDataset, bundle: b, dataset: p})
	}
	for _, kind := range types.AllKinds {
		for _, p := range spec.attribute[kind] {
			if p == nil {
				return nil, errors.Newf(errors.ErrConfigInvalid, "bundle %q has a nil %s plugin", name, kind)
			}
			b.units[kind] = append(b.units[kind], &Unit{kind: kind, bundle: b, attribute: p})
		}
	}

	return b, nil
}

// MustBundle is NewBundle for package-level declarations; it panics on error.
func MustBundle(name string, opts ...Option) *Bundle {
	b, err := NewBundle(name, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// nameSet trims and deduplicates names, keeping first-seen order
func nameSet(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Name returns the bundle name
func (b *Bundle) Name() string {
	return b.name
}

// Units returns the units the bundle contributes for kind
func (b *Bundle) Units(kind types.Kind) []*Unit {
	return append([]*Unit(nil), b.units[kind]...)
}

// Kinds returns the kinds the bundle contributes at least one unit to
func (b *Bundle) Kinds() []types.Kind {
	var kinds []types.Kind
	for _, k := range types.AllKinds {
		if len(b.units[k]) > 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Before returns the bundles that must run after this one in mode
func (b *Bundle) Before(mode types.Mode) []string {
	if mode == types.ModeRead {
		return append([]string(nil), b.readBefore...)
	}
	return append([]string(nil), b.writeBefore...)
}

// After returns the bundles that must run before this one in mode
func (b *Bundle) After(mode types.Mode) []string {
	if mode == types.ModeRead {
		return append([]string(nil), b.readAfter...)
	}
	return append([]string(nil), b.writeAfter...)
}

// Bundles implements Provider
func (b *Bundle) Bundles() []*Bundle {
	return []*Bundle{b}
}
