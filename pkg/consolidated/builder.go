package consolidated

import (
	"slices"
)

// entry is the staging state of a single key.
type entry struct {
	children  []uint32 // unsorted, every descendant known so far
	parent    uint32
	hasParent bool
}

// Builder accumulates parent→child edges and produces a [Map].
//
// The zero value is ready to use. A Builder is single-use: after [Builder.Build]
// it holds no data and any further call panics.
type Builder[T Key] struct {
	entries []entry
	size    int // sum of block sizes, including length prefixes
	built   bool
}

// NewBuilder returns an empty builder.
func NewBuilder[T Key]() *Builder[T] {
	return &Builder[T]{}
}

// Len returns the number of addressable keys, i.e. the largest key seen plus one.
func (b *Builder[T]) Len() int { return len(b.entries) }

// Parent returns the parent recorded for key, if any.
func (b *Builder[T]) Parent(key T) (T, bool) {
	k := uint32(key)
	if uint64(k) >= uint64(len(b.entries)) || !b.entries[k].hasParent {
		var zero T
		return zero, false
	}
	return T(b.entries[k].parent), true
}

func (b *Builder[T]) ensure(k uint32) {
	for uint64(len(b.entries)) <= uint64(k) {
		b.entries = append(b.entries, entry{})
		b.size++
	}
}

// Insert records child as a direct child of parent and propagates child, with
// all of its descendants, to every ancestor reachable from parent.
//
// Inserting a self-loop or an edge that already exists is a no-op. Insert
// returns an [*InsertError] wrapping [ErrCircularReference] if parent is
// already below child, or [ErrAlreadyHasParent] if child is attached to a
// different parent. A rejected edge leaves the builder unchanged.
func (b *Builder[T]) Insert(parent, child T) error {
	if b.built {
		panic("consolidated: Insert called on a built Builder")
	}
	p, c := uint32(parent), uint32(child)
	if p == c {
		return nil
	}
	if uint64(c) < uint64(len(b.entries)) {
		ce := &b.entries[c]
		if slices.Contains(ce.children, p) {
			return &InsertError{Parent: p, Child: c, Err: ErrCircularReference}
		}
		if ce.hasParent {
			if ce.parent != p {
				return &InsertError{Parent: p, Child: c, Existing: ce.parent, Err: ErrAlreadyHasParent}
			}
			return nil
		}
	}
	b.ensure(max(p, c))

	ce := &b.entries[c]
	ce.parent = p
	ce.hasParent = true

	// The entries slice is not grown below and no ancestor can be c itself,
	// so the descendant slice read here is never written during the walk.
	below := ce.children
	for cur, ok := p, true; ok; {
		anc := &b.entries[cur]
		anc.children = append(anc.children, below...)
		anc.children = append(anc.children, c)
		b.size += len(below) + 1
		cur, ok = anc.parent, anc.hasParent
	}
	return nil
}

// Build sorts and flattens every descendant set into a new [Map].
//
// Build consumes the builder; calling Build or Insert afterwards panics.
func (b *Builder[T]) Build() *Map[T] {
	if b.built {
		panic("consolidated: Build called twice")
	}
	b.built = true

	m := &Map[T]{
		data:  make([]uint32, 0, b.size),
		index: make([]int, 0, len(b.entries)),
	}
	for i := range b.entries {
		ids := b.entries[i].children
		slices.Sort(ids)
		ids = slices.Compact(ids)

		m.index = append(m.index, len(m.data))
		m.data = append(m.data, uint32(len(ids)))
		m.data = append(m.data, ids...)
		b.entries[i].children = nil
	}
	b.entries = nil
	b.size = 0
	return m
}
