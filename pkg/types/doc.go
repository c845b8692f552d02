// Package types defines the values shared by every stage of the plugin
// pipeline: the entity kinds a plugin can intercept, the two resolution
// modes, and the envelopes threaded through a transform fold.
package types
