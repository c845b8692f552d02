package output

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/arthur-debert/plugchain/pkg/logging"
	"github.com/arthur-debert/plugchain/pkg/manager"
	"github.com/arthur-debert/plugchain/pkg/output/styles"
	"github.com/arthur-debert/plugchain/pkg/ui"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer writes results to w in one format
type Renderer struct {
	w         io.Writer
	format    ui.Format
	templates *template.Template
}

// NewRenderer creates a renderer. FormatAuto is treated as text; callers
// resolve it against their output with ui.Resolve first.
func NewRenderer(w io.Writer, format ui.Format) (*Renderer, error) {
	if format == ui.FormatAuto {
		format = ui.FormatText
	}

	r := &Renderer{w: w, format: format}
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"style": r.style,
		"join":  strings.Join,
		"chain": r.chain,
	}).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to parse templates")
	}
	r.templates = tmpl

	logger := logging.GetLogger("output")
	logger.Debug().
		Str("format", format.String()).
		Msg("Created renderer")
	return r, nil
}

// Format returns the concrete format the renderer writes
func (r *Renderer) Format() ui.Format {
	return r.format
}

func (r *Renderer) style(name, s string) string {
	if r.format != ui.FormatTerminal {
		return s
	}
	return styles.GetStyle(name).Render(s)
}

func (r *Renderer) chain(names []string) string {
	if len(names) == 0 {
		return r.style("Empty", "(none)")
	}
	styled := make([]string, len(names))
	for i, n := range names {
		styled[i] = r.style("Bundle", n)
	}
	return strings.Join(styled, r.style("Arrow", " -> "))
}

// RenderPlan writes the resolved pipelines of a session. JSON and TOML
// encode the plan itself; text groups it by kind.
func (r *Renderer) RenderPlan(p manager.Plan) error {
	return r.render("plan.tmpl", NewPlanView(p), encodedPlan(p))
}

// RenderCatalog writes the providers available to sessions
func (r *Renderer) RenderCatalog(entries []CatalogEntry) error {
	if entries == nil {
		entries = []CatalogEntry{}
	}
	return r.render("catalog.tmpl", entries, struct {
		Plugins []CatalogEntry `json:"plugins" toml:"plugins"`
	}{entries})
}

// RenderMessage writes a one-line message in the named style
func (r *Renderer) RenderMessage(style, message string) error {
	switch r.format {
	case ui.FormatJSON, ui.FormatTOML:
		return r.encode(struct {
			Message string `json:"message" toml:"message"`
		}{message})
	}
	_, err := fmt.Fprintln(r.w, r.style(style, message))
	return err
}

// RenderError writes err with its code and details
func (r *Renderer) RenderError(err error) error {
	view := ErrorView{
		Code:    string(errors.GetErrorCode(err)),
		Message: err.Error(),
		Details: errors.GetErrorDetails(err),
	}

	switch r.format {
	case ui.FormatJSON, ui.FormatTOML:
		return r.encode(struct {
			Error ErrorView `json:"error" toml:"error"`
		}{view})
	}

	var b strings.Builder
	b.WriteString(r.style("Error", "Error:"))
	b.WriteString(" ")
	b.WriteString(view.Message)
	b.WriteString("\n")

	keys := make([]string, 0, len(view.Details))
	for k := range view.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(r.style("Detail", fmt.Sprintf("%s: %s", k, detailString(view.Details[k]))))
		b.WriteString("\n")
	}

	_, werr := io.WriteString(r.w, b.String())
	return werr
}

func detailString(v interface{}) string {
	switch x := v.(type) {
	case []string:
		return strings.Join(x, ", ")
	default:
		return fmt.Sprint(x)
	}
}

// render executes the named template for text and term output and encodes
// data for JSON and TOML
func (r *Renderer) render(name string, view, data interface{}) error {
	switch r.format {
	case ui.FormatJSON, ui.FormatTOML:
		return r.encode(data)
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, view); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to execute template %s", name)
	}
	_, err := r.w.Write(buf.Bytes())
	return err
}

func (r *Renderer) encode(data interface{}) error {
	var (
		out []byte
		err error
	)
	if r.format == ui.FormatTOML {
		out, err = toml.Marshal(data)
	} else {
		out, err = json.MarshalIndent(data, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to encode %s output", r.format)
	}
	_, err = r.w.Write(out)
	return err
}
