package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type formState struct {
	TemplateID string
	Values     map[string]string
}

func TestSetUnchangedStateIsNoop(t *testing.T) {
	h := New(formState{TemplateID: "crate-opening", Values: map[string]string{"BRAND_NAME": "Aura"}})
	h.Set(formState{TemplateID: "tech-unboxing"})
	h.Undo()

	// Present equals the initial state again and future holds one entry.
	assert.True(t, h.CanRedo())

	h.Set(formState{TemplateID: "crate-opening", Values: map[string]string{"BRAND_NAME": "Aura"}})

	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo(), "no-op set must not clear future")
	assert.Equal(t, "crate-opening", h.Present().TemplateID)
}

func TestUndoRedoAreInverse(t *testing.T) {
	h := New(formState{TemplateID: "a"})
	h.Set(formState{TemplateID: "b"})
	h.Set(formState{TemplateID: "c"})

	h.Undo()
	assert.Equal(t, "b", h.Present().TemplateID)
	h.Redo()
	assert.Equal(t, "c", h.Present().TemplateID)
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	// Both again, twice, ends up identical
	h.Undo()
	h.Undo()
	h.Redo()
	h.Redo()
	assert.Equal(t, "c", h.Present().TemplateID)
}

func TestSetAfterUndoClearsFuture(t *testing.T) {
	h := New(formState{TemplateID: "a"})
	h.Set(formState{TemplateID: "b"})
	h.Set(formState{TemplateID: "c"})
	h.Undo()
	assert.True(t, h.CanRedo())

	// New value matching an element of future still clears it.
	h.Set(formState{TemplateID: "c"})
	assert.False(t, h.CanRedo())
	assert.Equal(t, "c", h.Present().TemplateID)

	h.Undo()
	assert.Equal(t, "b", h.Present().TemplateID)
	h.Undo()
	assert.Equal(t, "a", h.Present().TemplateID)
	assert.False(t, h.CanUndo())
}

func TestUndoRedoOnEmptyHistory(t *testing.T) {
	h := New(formState{TemplateID: "a"})

	h.Undo()
	assert.Equal(t, "a", h.Present().TemplateID)
	h.Redo()
	assert.Equal(t, "a", h.Present().TemplateID)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestDeepEqualityIsStructural(t *testing.T) {
	h := New(formState{TemplateID: "a", Values: map[string]string{"K": "v"}})

	// A fresh map with the same contents is the same state.
	h.Set(formState{TemplateID: "a", Values: map[string]string{"K": "v"}})
	assert.False(t, h.CanUndo())

	h.Set(formState{TemplateID: "a", Values: map[string]string{"K": "w"}})
	assert.True(t, h.CanUndo())
}
