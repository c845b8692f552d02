package plugins

import "github.com/arthur-debert/plugchain/pkg/types"

// DatasetPlugin intercepts dataset reads and writes.
type DatasetPlugin interface {
	// BeforeLoad runs before storage opens the dataset file at path.
	BeforeLoad(path string) error
	// PrepareRead turns the stored envelope into its user-facing form.
	PrepareRead(data types.DatasetData) (types.DatasetData, error)
	// PrepareWrite turns a user envelope into the form that is persisted.
	PrepareWrite(data types.DatasetData) (types.DatasetData, error)
}

// AttributePlugin intercepts reads and writes of attribute documents. The
// same hook shape serves the attribute, file, group and raw kinds.
type AttributePlugin interface {
	PrepareRead(data types.AttributeData) (types.AttributeData, error)
	PrepareWrite(data types.AttributeData) (types.AttributeData, error)
}

// DatasetBase provides identity hooks. Embed it and override only what a
// plugin needs.
type DatasetBase struct{}

func (DatasetBase) BeforeLoad(string) error { return nil }

func (DatasetBase) PrepareRead(data types.DatasetData) (types.DatasetData, error) {
	return data, nil
}

func (DatasetBase) PrepareWrite(data types.DatasetData) (types.DatasetData, error) {
	return data, nil
}

// AttributeBase provides identity hooks for attribute-shaped kinds.
type AttributeBase struct{}

func (AttributeBase) PrepareRead(data types.AttributeData) (types.AttributeData, error) {
	return data, nil
}

func (AttributeBase) PrepareWrite(data types.AttributeData) (types.AttributeData, error) {
	return data, nil
}

// DatasetFuncs adapts plain functions to DatasetPlugin. Nil fields are identity.
type DatasetFuncs struct {
	Load  func(path string) error
	Read  func(types.DatasetData) (types.DatasetData, error)
	Write func(types.DatasetData) (types.DatasetData, error)
}

func (f DatasetFuncs) BeforeLoad(path string) error {
	if f.Load == nil {
		return nil
	}
	return f.Load(path)
}

func (f DatasetFuncs) PrepareRead(data types.DatasetData) (types.DatasetData, error) {
	if f.Read == nil {
		return data, nil
	}
	return f.Read(data)
}

func (f DatasetFuncs) PrepareWrite(data types.DatasetData) (types.DatasetData, error) {
	if f.Write == nil {
		return data, nil
	}
	return f.Write(data)
}

// AttributeFuncs adapts plain functions to AttributePlugin. Nil fields are identity.
type AttributeFuncs struct {
	Read  func(types.AttributeData) (types.AttributeData, error)
	Write func(types.AttributeData) (types.AttributeData, error)
}

func (f AttributeFuncs) PrepareRead(data types.AttributeData) (types.AttributeData, error) {
	if f.Read == nil {
		return data, nil
	}
	return f.Read(data)
}

func (f AttributeFuncs) PrepareWrite(data types.AttributeData) (types.AttributeData, error) {
	if f.Write == nil {
		return data, nil
	}
	return f.Write(data)
}
