package builtin

import (
	"github.com/arthur-debert/plugchain/pkg/plugins"
	"github.com/arthur-debert/plugchain/pkg/types"
)

// UnitsName is the bundle name of the quantity plugin
const UnitsName = "units"

// UnitAttr is the dataset attribute holding the unit of a stored quantity
const UnitAttr = "unit"

type unitsDataset struct {
	plugins.DatasetBase
}

// PrepareWrite splits a quantity payload into its raw value and a unit
// attribute, and records that reading the data back needs this plugin.
func (unitsDataset) PrepareWrite(d types.DatasetData) (types.DatasetData, error) {
	q, ok := asQuantity(d.Data)
	if !ok {
		return d, nil
	}
	d = d.Clone()
	d.Data = q.Value
	d.Attrs[UnitAttr] = q.Unit
	types.MarkRequired(d.Meta, UnitsName)
	return d, nil
}

// PrepareRead reattaches the unit attribute to the payload
func (unitsDataset) PrepareRead(d types.DatasetData) (types.DatasetData, error) {
	unit, ok := d.Attrs[UnitAttr].(string)
	if !ok {
		return d, nil
	}
	d = d.Clone()
	d.Data = types.Quantity{Value: d.Data, Unit: unit}
	delete(d.Attrs, UnitAttr)
	return d, nil
}

type unitsAttribute struct{}

// PrepareWrite stores quantity-valued attributes as {value, unit} maps
func (unitsAttribute) PrepareWrite(d types.AttributeData) (types.AttributeData, error) {
	d = d.Clone()
	for k, v := range d.Attrs {
		d.Attrs[k] = quantityToMap(v)
	}
	return d, nil
}

// PrepareRead turns {value, unit} maps back into quantities
func (unitsAttribute) PrepareRead(d types.AttributeData) (types.AttributeData, error) {
	d = d.Clone()
	for k, v := range d.Attrs {
		d.Attrs[k] = mapToQuantity(v)
	}
	return d, nil
}

func asQuantity(v any) (types.Quantity, bool) {
	switch q := v.(type) {
	case types.Quantity:
		return q, true
	case *types.Quantity:
		if q != nil {
			return *q, true
		}
	}
	return types.Quantity{}, false
}

func quantityToMap(v any) any {
	if q, ok := asQuantity(v); ok {
		return map[string]any{"value": q.Value, "unit": q.Unit}
	}
	if m, ok := v.(map[string]any); ok {
		out := make(map[string]any, len(m))
		for k, inner := range m {
			out[k] = quantityToMap(inner)
		}
		return out
	}
	return v
}

func mapToQuantity(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	if len(m) == 2 {
		value, hasValue := m["value"]
		unit, isUnit := m["unit"].(string)
		if hasValue && isUnit {
			return types.Quantity{Value: value, Unit: unit}
		}
	}
	out := make(map[string]any, len(m))
	for k, inner := range m {
		out[k] = mapToQuantity(inner)
	}
	return out
}

// Units stores physical quantities in datasets and attributes
func Units() *plugins.Bundle {
	return plugins.MustBundle(UnitsName,
		plugins.WithDataset(unitsDataset{}),
		plugins.WithAttribute(unitsAttribute{}),
	)
}
