package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/plugchain/pkg/builtin"
	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/arthur-debert/plugchain/pkg/manager"
	"github.com/arthur-debert/plugchain/pkg/output"
	"github.com/arthur-debert/plugchain/pkg/types"
	"github.com/arthur-debert/plugchain/pkg/ui"
)

func standardPlan(t *testing.T) manager.Plan {
	t.Helper()
	m, err := manager.New(builtin.Standard(), builtin.GitLFS())
	require.NoError(t, err)
	return m.Plan()
}

func catalogEntries() []output.CatalogEntry {
	cat := builtin.Catalog()
	var entries []output.CatalogEntry
	for _, name := range []string{"git_lfs", "units", "normalize_attributes", "standard"} {
		p, _ := cat.Get(name)
		entries = append(entries, output.NewCatalogEntry(name, p))
	}
	return entries
}

func render(t *testing.T, format ui.Format, fn func(*output.Renderer) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	r, err := output.NewRenderer(&buf, format)
	require.NoError(t, err)
	require.NoError(t, fn(r))
	return buf.Bytes()
}

func TestRenderPlan_TextGolden(t *testing.T) {
	g := goldie.New(t)

	got := render(t, ui.FormatText, func(r *output.Renderer) error { return r.RenderPlan(standardPlan(t)) })
	g.Assert(t, "plan_text", got)

	m, err := manager.New()
	require.NoError(t, err)
	empty := render(t, ui.FormatText, func(r *output.Renderer) error { return r.RenderPlan(m.Plan()) })
	g.Assert(t, "plan_empty_text", empty)
}

func TestRenderCatalog_TextGolden(t *testing.T) {
	g := goldie.New(t)
	got := render(t, ui.FormatText, func(r *output.Renderer) error { return r.RenderCatalog(catalogEntries()) })
	g.Assert(t, "catalog_text", got)
}

func TestRenderPlan_AutoFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	r, err := output.NewRenderer(&buf, ui.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, ui.FormatText, r.Format())
}

func TestRenderPlan_JSON(t *testing.T) {
	got := render(t, ui.FormatJSON, func(r *output.Renderer) error { return r.RenderPlan(standardPlan(t)) })

	var plan manager.Plan
	require.NoError(t, json.Unmarshal(got, &plan))
	assert.Equal(t, []string{"units", "normalize_attributes", "git_lfs"}, plan.Bundles)
	require.Len(t, plan.Pipelines, 4)

	read, ok := plan.Pipeline(types.KindAttribute, types.ModeRead)
	require.True(t, ok)
	assert.Equal(t, []string{"normalize_attributes", "units"}, read.Bundles)
}

func TestRenderPlan_JSONEmpty(t *testing.T) {
	got := render(t, ui.FormatJSON, func(r *output.Renderer) error { return r.RenderPlan(manager.Plan{}) })
	assert.JSONEq(t, `{"bundles": [], "pipelines": []}`, string(got))
}

func TestRenderPlan_TOML(t *testing.T) {
	got := render(t, ui.FormatTOML, func(r *output.Renderer) error { return r.RenderPlan(standardPlan(t)) })

	var plan manager.Plan
	require.NoError(t, toml.Unmarshal(got, &plan))
	require.Len(t, plan.Pipelines, 4)
	assert.Equal(t, types.KindDataset, plan.Pipelines[0].Kind)
	assert.Equal(t, types.ModeWrite, plan.Pipelines[0].Mode)
	assert.Equal(t, []string{"units", "git_lfs"}, plan.Pipelines[0].Bundles)
}

func TestRenderPlan_TextOmitsMissingMode(t *testing.T) {
	plan := manager.Plan{
		Bundles: []string{"units"},
		Pipelines: []manager.Pipeline{
			{Kind: types.KindDataset, Mode: types.ModeRead, Bundles: []string{"units"}},
		},
	}

	got := string(render(t, ui.FormatText, func(r *output.Renderer) error { return r.RenderPlan(plan) }))
	assert.Equal(t, "Bundles: units\n\ndataset\n  read:  units\n", got)
	assert.NotContains(t, got, "write:")
}

func TestRenderCatalog_JSON(t *testing.T) {
	got := render(t, ui.FormatJSON, func(r *output.Renderer) error { return r.RenderCatalog(catalogEntries()) })

	var doc struct {
		Plugins []output.CatalogEntry `json:"plugins"`
	}
	require.NoError(t, json.Unmarshal(got, &doc))
	require.Len(t, doc.Plugins, 4)
	assert.Equal(t, "group", doc.Plugins[3].Type)
	assert.Equal(t, []string{"units", "normalize_attributes"}, doc.Plugins[3].Bundles)
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrCircularDependency, "circular plugin dependency in dataset write order: a -> b -> a").
		WithDetail("cycle", []string{"a", "b", "a"}).
		WithDetail("mode", "write")

	text := string(render(t, ui.FormatText, func(r *output.Renderer) error { return r.RenderError(err) }))
	assert.Equal(t, "Error: [CIRCULAR_DEPENDENCY] circular plugin dependency in dataset write order: a -> b -> a\n"+
		"  cycle: a, b, a\n"+
		"  mode: write\n", text)

	encoded := render(t, ui.FormatJSON, func(r *output.Renderer) error { return r.RenderError(err) })
	var doc struct {
		Error output.ErrorView `json:"error"`
	}
	require.NoError(t, json.Unmarshal(encoded, &doc))
	assert.Equal(t, "CIRCULAR_DEPENDENCY", doc.Error.Code)
	assert.Equal(t, []interface{}{"a", "b", "a"}, doc.Error.Details["cycle"])
}

func TestRenderMessage(t *testing.T) {
	text := render(t, ui.FormatText, func(r *output.Renderer) error { return r.RenderMessage("Success", "ok") })
	assert.Equal(t, "ok\n", string(text))

	encoded := render(t, ui.FormatJSON, func(r *output.Renderer) error { return r.RenderMessage("Success", "ok") })
	assert.JSONEq(t, `{"message":"ok"}`, string(encoded))

	term := render(t, ui.FormatTerminal, func(r *output.Renderer) error { return r.RenderMessage("Success", "ok") })
	assert.Contains(t, string(term), "ok")
}
