package types

import (
	"maps"
	"sort"
)

// PluginsMetaKey is the metadata key under which plugins record bookkeeping.
const PluginsMetaKey = "plugins"

// MarkRequired records in meta that data was written by the named plugin and
// cannot be read back without it. meta must be non-nil. The nested plugin
// maps are replaced rather than updated, so an envelope cloned with Clone
// never shares them with its source.
func MarkRequired(meta map[string]any, name string) {
	old, _ := meta[PluginsMetaKey].(map[string]any)
	plugins := maps.Clone(old)
	if plugins == nil {
		plugins = map[string]any{}
	}

	oldEntry, _ := plugins[name].(map[string]any)
	entry := maps.Clone(oldEntry)
	if entry == nil {
		entry = map[string]any{}
	}
	entry["required"] = true

	plugins[name] = entry
	meta[PluginsMetaKey] = plugins
}

// RequiredPlugins returns the sorted names of plugins marked required in meta
func RequiredPlugins(meta map[string]any) []string {
	plugins, ok := meta[PluginsMetaKey].(map[string]any)
	if !ok {
		return nil
	}

	var names []string
	for name, raw := range plugins {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if required, ok := entry["required"].(bool); ok && required {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
