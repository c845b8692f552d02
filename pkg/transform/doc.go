// Package transform folds data envelopes through resolved plugin pipelines.
//
// Each unit's hook receives the envelope produced by the previous unit and
// returns its replacement. An empty pipeline returns the input unchanged. The
// first failing hook stops the fold; its error is wrapped with the bundle,
// kind and mode that produced it and stays reachable through errors.Is and
// errors.As.
//
// The storage layer calls the executor at the points where it reads or
// writes entities:
//
//	BeforeLoad(path)             before a dataset file is opened
//	ReadDataset / WriteDataset   around array payloads
//	ReadAttributes / WriteAttributes for attribute, file, group and raw documents
package transform
