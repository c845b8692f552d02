// Package testutil provides helpers shared by plugchain's package tests.
//
// Key components:
//   - NewExecutor: a transform executor over a set of providers, failing the
//     test when ordering cannot be resolved
//   - Trail hooks: attribute and dataset hooks that record the bundle name in
//     the envelope so tests can see the order hooks ran in
//   - CreateFile: fixture files under a test's temp directory
//
// Each test stays isolated: nothing here keeps package-level state.
package testutil
