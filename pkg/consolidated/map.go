package consolidated

import (
	"iter"
	"slices"
)

// Map is the immutable descendant index produced by [Builder.Build].
//
// data holds one block per key: a length L followed by L sorted, unique
// descendant keys. index[k] is the offset of key k's block in data.
//
// The zero value is an empty map. A Map is safe for concurrent readers.
type Map[T Key] struct {
	data  []uint32
	index []int
}

// FromEdges builds a Map by inserting every edge in order. The first rejected
// edge aborts construction and its [*InsertError] is returned.
func FromEdges[T Key](edges []Edge[T]) (*Map[T], error) {
	b := NewBuilder[T]()
	for _, e := range edges {
		if err := b.Insert(e.Parent, e.Child); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// FromSeq is like [FromEdges] for a sequence of (parent, child) pairs.
func FromSeq[T Key](seq iter.Seq2[T, T]) (*Map[T], error) {
	b := NewBuilder[T]()
	for parent, child := range seq {
		if err := b.Insert(parent, child); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// Len returns the number of indexed keys. Keys at or above Len have no children.
func (m *Map[T]) Len() int { return len(m.index) }

// Size returns the length of the flat data buffer in uint32 cells.
func (m *Map[T]) Size() int { return len(m.data) }

// Children returns the sorted descendants of key. The result is empty when
// key is unknown or has no children.
func (m *Map[T]) Children(key T) Children[T] {
	return Children[T]{ids: m.block(key)}
}

// Consolidated returns key followed by its sorted descendants. An unknown key
// yields exactly [key].
func (m *Map[T]) Consolidated(key T) Children[T] {
	return Children[T]{ids: m.block(key), self: key, withSelf: true}
}

// ContainsChild reports whether child is a transitive descendant of parent.
func (m *Map[T]) ContainsChild(parent, child T) bool {
	_, found := slices.BinarySearch(m.block(parent), uint32(child))
	return found
}

// Clone returns a deep copy that shares no memory with m.
func (m *Map[T]) Clone() *Map[T] {
	return &Map[T]{
		data:  slices.Clone(m.data),
		index: slices.Clone(m.index),
	}
}

// ConsolidatedBy implements [ConsolidatedBy] by delegating to [Map.Consolidated].
func (m *Map[T]) ConsolidatedBy(key T) Children[T] { return m.Consolidated(key) }

// ManagedExternally marks Map as safe to hand to an external memory manager.
func (m *Map[T]) ManagedExternally() {}

func (m *Map[T]) block(key T) []uint32 {
	k := uint64(key)
	if k >= uint64(len(m.index)) {
		return nil
	}
	off := m.index[k]
	n := int(m.data[off])
	return m.data[off+1 : off+1+n : off+1+n]
}

var (
	_ ConsolidatedBy[uint32] = (*Map[uint32])(nil)
	_ Managed                = (*Map[uint32])(nil)
)
