package builtin

import (
	"reflect"
	"time"

	"github.com/arthur-debert/plugchain/pkg/plugins"
	"github.com/arthur-debert/plugchain/pkg/types"
)

// NormalizeAttributesName is the bundle name of the attribute normalizer
const NormalizeAttributesName = "normalize_attributes"

type normalizeAttributes struct {
	plugins.AttributeBase
}

// PrepareWrite rewrites attribute values into the plain forms an attribute
// document can hold: typed slices and arrays become []any, nested maps are
// walked and timestamps become RFC 3339 strings.
func (normalizeAttributes) PrepareWrite(d types.AttributeData) (types.AttributeData, error) {
	d = d.Clone()
	for k, v := range d.Attrs {
		d.Attrs[k] = normalize(v)
	}
	return d, nil
}

func normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		return x.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if x == nil {
			return nil
		}
		return x.UTC().Format(time.RFC3339Nano)
	case []byte:
		return string(x)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, inner := range x {
			out[k] = normalize(inner)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = normalize(iter.Value().Interface())
		}
		return out
	}
	return v
}

// NormalizeAttributes runs after units when writing so quantity maps are
// normalized too, and before units when reading.
func NormalizeAttributes() *plugins.Bundle {
	return plugins.MustBundle(NormalizeAttributesName,
		plugins.WithAttribute(normalizeAttributes{}),
		plugins.WriteAfter(UnitsName),
		plugins.ReadBefore(UnitsName),
	)
}
