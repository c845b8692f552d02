package types

import "maps"

// DatasetData is the envelope threaded through dataset pipelines.
// Data holds the array payload, Attrs the user attributes and Meta the
// storage metadata (including plugin bookkeeping under the "plugins" key).
type DatasetData struct {
	Data  any
	Attrs map[string]any
	Meta  map[string]any
}

// AttributeData is the envelope threaded through attribute, file, group and
// raw pipelines.
type AttributeData struct {
	Attrs map[string]any
	Meta  map[string]any
}

// Clone returns a copy whose top-level maps can be modified without touching d.
func (d DatasetData) Clone() DatasetData {
	return DatasetData{
		Data:  d.Data,
		Attrs: cloneMap(d.Attrs),
		Meta:  cloneMap(d.Meta),
	}
}

// Clone returns a copy whose top-level maps can be modified without touching d.
func (d AttributeData) Clone() AttributeData {
	return AttributeData{
		Attrs: cloneMap(d.Attrs),
		Meta:  cloneMap(d.Meta),
	}
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return maps.Clone(m)
}

// Quantity is a value paired with a physical unit
type Quantity struct {
	Value any    `json:"value"`
	Unit  string `json:"unit"`
}
