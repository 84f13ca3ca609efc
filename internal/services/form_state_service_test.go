package services

import (
	"testing"

	"veoprompt-backend/internal/catalog"
	"veoprompt-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupFormStateService(t *testing.T) (*FormStateService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.FormStateSnapshot{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return NewFormStateService(db), db
}

func TestFormStateDefaultsToFirstTemplate(t *testing.T) {
	svc, _ := setupFormStateService(t)

	state, canUndo, canRedo := svc.Current(1)
	assert.Equal(t, catalog.Templates[0].ID, state.SelectedTemplateID)
	assert.NotNil(t, state.InputValues)
	assert.False(t, canUndo)
	assert.False(t, canRedo)
}

func TestFormStateUndoRedo(t *testing.T) {
	svc, _ := setupFormStateService(t)

	initial, _, _ := svc.Current(1)

	edited := initial
	edited.InputValues = map[string]string{"PRODUCT_NAME": "Nimbus"}
	_, canUndo, canRedo, err := svc.Set(1, edited)
	assert.NoError(t, err)
	assert.True(t, canUndo)
	assert.False(t, canRedo)

	state, canUndo, canRedo, err := svc.Undo(1)
	assert.NoError(t, err)
	assert.Equal(t, initial.InputValues, state.InputValues)
	assert.False(t, canUndo)
	assert.True(t, canRedo)

	state, canUndo, canRedo, err = svc.Redo(1)
	assert.NoError(t, err)
	assert.Equal(t, "Nimbus", state.InputValues["PRODUCT_NAME"])
	assert.True(t, canUndo)
	assert.False(t, canRedo)
}

func TestFormStateSetEqualValueIsNoOp(t *testing.T) {
	svc, _ := setupFormStateService(t)

	state, _, _ := svc.Current(1)
	_, canUndo, _, err := svc.Set(1, state)
	assert.NoError(t, err)
	assert.False(t, canUndo, "setting an equal state must not grow the undo record")
}

func TestFormStateUnknownTemplateFallsBack(t *testing.T) {
	svc, _ := setupFormStateService(t)

	state, _, _, err := svc.Set(1, FormState{SelectedTemplateID: "no-such-template"})
	assert.NoError(t, err)
	assert.Equal(t, catalog.Templates[0].ID, state.SelectedTemplateID)
}

func TestFormStatePersistsAcrossSessions(t *testing.T) {
	svc, db := setupFormStateService(t)

	edited := NewFormState(catalog.Templates[1].ID)
	edited.NegativePrompt = "no text overlays"
	_, _, _, err := svc.Set(1, edited)
	assert.NoError(t, err)

	// A new service instance simulates a process restart: the in-memory
	// record is gone but the present state survives.
	restarted := NewFormStateService(db)
	state, canUndo, _ := restarted.Current(1)
	assert.Equal(t, catalog.Templates[1].ID, state.SelectedTemplateID)
	assert.Equal(t, "no text overlays", state.NegativePrompt)
	assert.False(t, canUndo, "undo record does not survive a restart")
}

func TestFormStateSessionsAreIsolated(t *testing.T) {
	svc, _ := setupFormStateService(t)

	edited := NewFormState(catalog.Templates[0].ID)
	edited.InputValues["SETTING"] = "rooftop at dusk"
	_, _, _, err := svc.Set(1, edited)
	assert.NoError(t, err)

	state, canUndo, _ := svc.Current(2)
	assert.Empty(t, state.InputValues)
	assert.False(t, canUndo)
}

func TestSaveArtifactAndLatest(t *testing.T) {
	svc, _ := setupFormStateService(t)

	artifact, err := svc.LatestArtifact(1)
	assert.NoError(t, err)
	assert.Empty(t, artifact)

	assert.NoError(t, svc.SaveArtifact(1, `{"scene": "opening"}`))

	artifact, err = svc.LatestArtifact(1)
	assert.NoError(t, err)
	assert.Equal(t, `{"scene": "opening"}`, artifact)

	// A newer success replaces the stored artifact.
	assert.NoError(t, svc.SaveArtifact(1, `{"scene": "reveal"}`))
	artifact, _ = svc.LatestArtifact(1)
	assert.Equal(t, `{"scene": "reveal"}`, artifact)
}
