package consolidated

import "slices"

// ConsolidatedBy is implemented by anything that can produce the
// consolidated set of a key: the key followed by its descendants.
//
// [*Map] implements it directly. Types wrapping a Map implement it by
// delegation, which lets callers write code that does not depend on the
// concrete index type.
type ConsolidatedBy[K Key] interface {
	ConsolidatedBy(key K) Children[K]
}

// Managed is a marker for values that an external memory manager may own.
// It carries no behaviour.
type Managed interface {
	ManagedExternally()
}

// Affected returns the sorted union of the consolidated sets of keys: every
// key given plus everything below any of them.
func Affected[K Key](src ConsolidatedBy[K], keys ...K) []K {
	var out []K
	for _, k := range keys {
		for id := range src.ConsolidatedBy(k).All() {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
