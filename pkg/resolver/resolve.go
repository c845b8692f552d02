package resolver

import (
	"github.com/arthur-debert/plugchain/pkg/logging"
	"github.com/arthur-debert/plugchain/pkg/plugins"
	"github.com/arthur-debert/plugchain/pkg/types"
)

// Resolve orders the units of kind for one mode. Units are grouped by their
// bundle; a bundle contributing several units keeps them in declaration order.
func Resolve(kind types.Kind, units []*plugins.Unit, mode types.Mode) ([]*plugins.Unit, error) {
	logger := logging.GetLogger("resolver")

	g := Build(kind, units, mode)
	names, err := g.Sort()
	if err != nil {
		logger.Debug().Err(err).
			Str("kind", string(g.Kind())).
			Str("mode", string(mode)).
			Msg("Plugin order could not be resolved")
		return nil, err
	}

	byBundle := make(map[string][]*plugins.Unit, len(names))
	for _, u := range units {
		if u.Kind() != kind {
			continue
		}
		byBundle[u.BundleName()] = append(byBundle[u.BundleName()], u)
	}

	ordered := make([]*plugins.Unit, 0, len(units))
	for _, name := range names {
		ordered = append(ordered, byBundle[name]...)
	}

	logger.Trace().
		Str("kind", string(g.Kind())).
		Str("mode", string(mode)).
		Strs("order", names).
		Int("edges", g.EdgeCount()).
		Msg("Resolved plugin order")

	return ordered, nil
}
