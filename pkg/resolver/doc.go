// Package resolver turns the ordering hints declared on plugin bundles into a
// linear execution order for one entity kind and one mode.
//
// Hints are partial and bidirectional: a bundle may say it must run before
// some bundles ("write_before") and after others ("write_after"). Both forms
// become edges of the same dependency graph, keyed by bundle name:
//
//	A.write_before = [C]   =>  C depends on A
//	C.write_after  = [A]   =>  C depends on A
//
// Only bundles that contribute units to the resolved kind are nodes. Edges
// naming a bundle outside that set are dropped: a constraint on an absent
// bundle is inert, not an error.
//
// The order is produced with Kahn's algorithm in rounds. Every round emits
// all nodes whose prerequisites have been emitted, in the order the bundles
// were first supplied, so the same input always yields the same order. If a
// round finds no ready node the remaining nodes contain a cycle and
// resolution fails with a CIRCULAR_DEPENDENCY error naming them.
//
// Read and write graphs are always built separately; a bundle may be a
// write-time prerequisite and a read-time dependent of the same peer.
package resolver
