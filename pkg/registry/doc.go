// Package registry provides a generic, thread-safe catalog of named items.
// Names are listed sorted; values come back in registration order, which is
// the order providers are offered to a session.
package registry
