package consolidated

import "iter"

// Children is a read-only view over a key's descendants, optionally preceded
// by the key itself. It is a small value that points into the owning [Map];
// creating and iterating it does not allocate.
type Children[T Key] struct {
	ids      []uint32
	self     T
	withSelf bool
}

// Len returns the number of keys the view yields.
func (c Children[T]) Len() int {
	if c.withSelf {
		return len(c.ids) + 1
	}
	return len(c.ids)
}

// At returns the i-th key. It panics if i is out of range.
func (c Children[T]) At(i int) T {
	if c.withSelf {
		if i == 0 {
			return c.self
		}
		i--
	}
	return T(c.ids[i])
}

// All returns an iterator over the keys in order. The iterator can be ranged
// over any number of times.
func (c Children[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c.withSelf && !yield(c.self) {
			return
		}
		for _, id := range c.ids {
			if !yield(T(id)) {
				return
			}
		}
	}
}

// Slice copies the keys into a new slice.
func (c Children[T]) Slice() []T {
	out := make([]T, 0, c.Len())
	for k := range c.All() {
		out = append(out, k)
	}
	return out
}
