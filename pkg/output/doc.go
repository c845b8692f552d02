// Package output renders plans, catalogs and errors in the format chosen by
// pkg/ui.
//
// Text and term output share one set of templates. Templates wrap values in
// named styles ({{style "Bundle" .Name}}); text output ignores the style and
// term output applies the matching lipgloss style from pkg/output/styles.
// JSON and TOML output encode the view structs directly.
package output
