package consolidated

// Key is the set of identifier types a Builder and Map can be keyed by.
//
// Every Key converts losslessly to and from the uint32 cells the index is
// stored in. Keys are array offsets: a Map holding key 1_000_000 allocates an
// index entry for every smaller key as well.
type Key interface {
	~uint8 | ~uint16 | ~uint32
}

// Edge is a single parent→child relationship.
type Edge[T Key] struct {
	Parent T
	Child  T
}
