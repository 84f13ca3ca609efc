package history

import "reflect"

// History is a generic undo/redo container. Past holds older snapshots oldest
// first, Future holds undone snapshots nearest first. Equality between
// snapshots is structural, so plain data records can be tracked without an
// identity scheme.
type History[T any] struct {
	past    []T
	present T
	future  []T
}

func New[T any](initial T) *History[T] {
	return &History[T]{present: initial}
}

// Present returns the current snapshot.
func (h *History[T]) Present() T {
	return h.present
}

// Set records a new snapshot. Setting a value structurally equal to the
// current one is a no-op: it neither grows the past nor clears the future.
// Any real change discards the redo branch.
func (h *History[T]) Set(value T) {
	if reflect.DeepEqual(value, h.present) {
		return
	}
	h.past = append(h.past, h.present)
	h.present = value
	h.future = nil
}

// Undo steps back one snapshot. No-op when there is nothing to undo.
func (h *History[T]) Undo() {
	if len(h.past) == 0 {
		return
	}
	previous := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]T{h.present}, h.future...)
	h.present = previous
}

// Redo reverses the most recent Undo. No-op when there is nothing to redo.
func (h *History[T]) Redo() {
	if len(h.future) == 0 {
		return
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, h.present)
	h.present = next
}

func (h *History[T]) CanUndo() bool {
	return len(h.past) > 0
}

func (h *History[T]) CanRedo() bool {
	return len(h.future) > 0
}
