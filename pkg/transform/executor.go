package transform

import (
	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/arthur-debert/plugchain/pkg/logging"
	"github.com/arthur-debert/plugchain/pkg/manager"
	"github.com/arthur-debert/plugchain/pkg/plugins"
	"github.com/arthur-debert/plugchain/pkg/types"
)

// Executor applies the pipelines of one Manager
type Executor struct {
	m *manager.Manager
}

// New creates an executor over m
func New(m *manager.Manager) *Executor {
	return &Executor{m: m}
}

// Manager returns the manager whose pipelines the executor applies
func (e *Executor) Manager() *manager.Manager {
	return e.m
}

// fold threads env through units. step picks the hook to call on each unit.
func fold[E any](units []*plugins.Unit, kind types.Kind, mode types.Mode, env E, step func(*plugins.Unit, E) (E, error)) (E, error) {
	for _, u := range units {
		next, err := step(u, env)
		if err != nil {
			var zero E
			return zero, hookError(err, u, kind, mode)
		}
		env = next
	}
	return env, nil
}

func hookError(err error, u *plugins.Unit, kind types.Kind, mode types.Mode) error {
	logger := logging.GetLogger("transform")
	logger.Debug().
		Err(err).
		Str("bundle", u.BundleName()).
		Str("kind", string(kind)).
		Str("mode", string(mode)).
		Msg("Plugin hook failed")

	return errors.Wrapf(err, errors.ErrHookFailed, "plugin %q failed during %s %s", u.BundleName(), kind, mode).
		WithDetail("bundle", u.BundleName()).
		WithDetail("kind", string(kind)).
		WithDetail("mode", string(mode))
}

// BeforeLoad runs the dataset before-load hooks in read order. They may
// inspect the file at path and veto the load.
func (e *Executor) BeforeLoad(path string) error {
	_, err := fold(e.m.Order(types.KindDataset, types.ModeRead), types.KindDataset, types.ModeRead, path,
		func(u *plugins.Unit, p string) (string, error) {
			return p, u.Dataset().BeforeLoad(p)
		})
	return err
}

// ReadDataset checks the plugin requirements recorded in env.Meta and then
// folds env through the dataset read pipeline.
func (e *Executor) ReadDataset(env types.DatasetData) (types.DatasetData, error) {
	if err := e.CheckRequired(env.Meta); err != nil {
		return types.DatasetData{}, err
	}
	return fold(e.m.Order(types.KindDataset, types.ModeRead), types.KindDataset, types.ModeRead, env,
		func(u *plugins.Unit, d types.DatasetData) (types.DatasetData, error) {
			return u.Dataset().PrepareRead(d)
		})
}

// WriteDataset folds env through the dataset write pipeline
func (e *Executor) WriteDataset(env types.DatasetData) (types.DatasetData, error) {
	return fold(e.m.Order(types.KindDataset, types.ModeWrite), types.KindDataset, types.ModeWrite, env,
		func(u *plugins.Unit, d types.DatasetData) (types.DatasetData, error) {
			return u.Dataset().PrepareWrite(d)
		})
}

// ReadAttributes folds env through the read pipeline of an attribute-shaped kind
func (e *Executor) ReadAttributes(kind types.Kind, env types.AttributeData) (types.AttributeData, error) {
	if err := attributeKind(kind); err != nil {
		return types.AttributeData{}, err
	}
	return fold(e.m.Order(kind, types.ModeRead), kind, types.ModeRead, env,
		func(u *plugins.Unit, d types.AttributeData) (types.AttributeData, error) {
			return u.Attribute().PrepareRead(d)
		})
}

// WriteAttributes folds env through the write pipeline of an attribute-shaped kind
func (e *Executor) WriteAttributes(kind types.Kind, env types.AttributeData) (types.AttributeData, error) {
	if err := attributeKind(kind); err != nil {
		return types.AttributeData{}, err
	}
	return fold(e.m.Order(kind, types.ModeWrite), kind, types.ModeWrite, env,
		func(u *plugins.Unit, d types.AttributeData) (types.AttributeData, error) {
			return u.Attribute().PrepareWrite(d)
		})
}

func attributeKind(kind types.Kind) error {
	if kind == types.KindDataset || !kind.Valid() {
		return errors.Newf(errors.ErrInvalidInput, "%q is not an attribute-shaped kind", kind).
			WithDetail("kind", string(kind))
	}
	return nil
}

// CheckRequired fails when meta marks a plugin as required that the session
// does not enable.
func (e *Executor) CheckRequired(meta map[string]any) error {
	var missing []string
	for _, name := range types.RequiredPlugins(meta) {
		if !e.m.Enabled(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return errors.Newf(errors.ErrPluginRequired, "data requires plugins that are not enabled: %v", missing).
		WithDetail("plugins", missing)
}
