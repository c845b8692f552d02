// Package session assembles a plugin session from configuration: it picks
// the enabled providers from a catalog, adds the bundles declared in
// configuration, resolves every pipeline and hands back an executor.
package session

import (
	"github.com/arthur-debert/plugchain/pkg/config"
	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/arthur-debert/plugchain/pkg/logging"
	"github.com/arthur-debert/plugchain/pkg/manager"
	"github.com/arthur-debert/plugchain/pkg/plugins"
	"github.com/arthur-debert/plugchain/pkg/registry"
	"github.com/arthur-debert/plugchain/pkg/transform"
	"github.com/arthur-debert/plugchain/pkg/types"
)

// Session is a resolved set of plugins ready to transform data
type Session struct {
	*transform.Executor
	providers []plugins.Provider
}

// Open builds a session from cfg. Enabled names are looked up in catalog in
// the order given; declared bundles follow them.
func Open(cfg *config.Config, catalog registry.Registry[plugins.Provider]) (*Session, error) {
	logger := logging.GetLogger("session")

	providers, err := registry.GetAll(catalog, cfg.Plugins.Enabled...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrNotFound, "unknown plugin in plugins.enabled").
			WithDetail("available", catalog.List())
	}

	declared, err := DeclaredBundles(cfg.Bundles)
	if err != nil {
		return nil, err
	}
	for _, b := range declared {
		providers = append(providers, b)
	}

	m, err := manager.New(providers...)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Strs("enabled", cfg.Plugins.Enabled).
		Int("declared", len(declared)).
		Strs("bundles", m.Names()).
		Msg("Session opened")

	return &Session{Executor: transform.New(m), providers: providers}, nil
}

// DeclaredBundles turns configuration declarations into bundles with
// identity units for the declared kinds
func DeclaredBundles(decls []config.BundleDecl) ([]*plugins.Bundle, error) {
	out := make([]*plugins.Bundle, 0, len(decls))
	for _, d := range decls {
		kinds, err := d.ParsedKinds()
		if err != nil {
			return nil, err
		}

		opts := []plugins.Option{
			plugins.WriteBefore(d.WriteBefore...),
			plugins.WriteAfter(d.WriteAfter...),
			plugins.ReadBefore(d.ReadBefore...),
			plugins.ReadAfter(d.ReadAfter...),
		}
		for _, k := range kinds {
			opts = append(opts, identityUnit(k))
		}

		b, err := plugins.NewBundle(d.Name, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func identityUnit(k types.Kind) plugins.Option {
	switch k {
	case types.KindDataset:
		return plugins.WithDataset(plugins.DatasetBase{})
	case types.KindAttribute:
		return plugins.WithAttribute(plugins.AttributeBase{})
	case types.KindFile:
		return plugins.WithFile(plugins.AttributeBase{})
	case types.KindGroup:
		return plugins.WithGroup(plugins.AttributeBase{})
	default:
		return plugins.WithRaw(plugins.AttributeBase{})
	}
}

// Plan summarises the resolved pipelines
func (s *Session) Plan() manager.Plan {
	return s.Manager().Plan()
}

// Providers returns the providers the session was built from
func (s *Session) Providers() []plugins.Provider {
	return append([]plugins.Provider(nil), s.providers...)
}
