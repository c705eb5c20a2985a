// Package consolidated provides a compact, read-only index that maps every
// node of a forest to the full set of its transitive descendants.
//
// # Overview
//
// Hierarchies are often queried with "everything below X" questions: which
// entities are affected if X changes, which records must be invalidated when
// a folder moves. Walking a pointer tree for every such question is wasteful
// when the hierarchy is static. This package answers them in O(1) setup and
// O(k) enumeration by precomputing each node's descendant set once.
//
// # Two Phases
//
// A [Builder] receives parent→child edges one at a time with
// [Builder.Insert]. Each insert pushes the child, and every descendant the
// child already has, into all known ancestors of the parent. Edges may arrive
// in any order: attaching grandchildren before or after the child itself is
// attached yields the same result.
//
// [Builder.Build] then sorts every descendant set and flattens all of them
// into one shared buffer of length-prefixed blocks, plus an offset array
// addressed by key. The result is a [Map]:
//
//	b := consolidated.NewBuilder[uint32]()
//	_ = b.Insert(10, 20)
//	_ = b.Insert(20, 30)
//	m := b.Build()
//
//	m.Children(10).Slice()     // [20 30]
//	m.Consolidated(10).Slice() // [10 20 30]
//	m.ContainsChild(10, 30)    // true
//
// # Keys
//
// Keys are small unsigned integers (see [Key]) used directly as array
// indices. Memory grows with the largest key seen, not with the number of
// keys, so callers should map their entities onto dense identifiers first.
//
// # Structural Errors
//
// Only strict forests are accepted. [Builder.Insert] fails with
// [ErrAlreadyHasParent] when a child is given a second, different parent and
// with [ErrCircularReference] when the edge would close a cycle. Both are
// reported through [*InsertError] and leave the builder untouched. Self-loops
// and repeated identical edges are accepted as no-ops.
//
// # Concurrency
//
// A Builder must be owned by a single goroutine. A Map is immutable after
// Build and may be read from any number of goroutines without locking; use
// [Map.Clone] when an independent copy is required.
package consolidated
