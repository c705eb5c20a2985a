package consolidated

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyHasParent is returned by [Builder.Insert] when the child is
	// already attached to a different parent. A node appears in exactly one
	// place of a forest.
	ErrAlreadyHasParent = errors.New("child already has a parent")

	// ErrCircularReference is returned by [Builder.Insert] when the parent is
	// already a descendant of the child, so the edge would close a cycle.
	ErrCircularReference = errors.New("circular reference")
)

// InsertError describes a rejected edge. Err is one of the sentinel errors
// above, so callers can test with errors.Is.
type InsertError struct {
	Parent uint32
	Child  uint32
	// Existing is the parent already recorded for Child. It is only
	// meaningful when Err is ErrAlreadyHasParent.
	Existing uint32
	Err      error
}

func (e *InsertError) Error() string {
	if errors.Is(e.Err, ErrAlreadyHasParent) {
		return fmt.Sprintf("insert %d->%d: %v (parent %d)", e.Parent, e.Child, e.Err, e.Existing)
	}
	return fmt.Sprintf("insert %d->%d: %v", e.Parent, e.Child, e.Err)
}

func (e *InsertError) Unwrap() error { return e.Err }
