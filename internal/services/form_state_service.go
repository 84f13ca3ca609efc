package services

import (
	"encoding/json"
	"errors"
	"sync"

	"veoprompt-backend/internal/catalog"
	"veoprompt-backend/internal/history"
	"veoprompt-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FormState is the unit of undo/redo tracking. It is always structurally
// complete: a template change produces a fresh state rather than a partial
// patch, so placeholder values never bleed across unrelated templates.
type FormState struct {
	SelectedTemplateID string            `json:"selected_template_id"`
	InputValues        map[string]string `json:"input_values"`
	NegativePrompt     string            `json:"negative_prompt"`
	SelectedStyleID    string            `json:"selected_style_id"` // empty means none
}

// NewFormState returns a fresh, structurally complete state for a template.
func NewFormState(templateID string) FormState {
	return FormState{
		SelectedTemplateID: catalog.TemplateByID(templateID).ID,
		InputValues:        map[string]string{},
	}
}

// FormStateService keeps one in-memory undo/redo record per user and persists
// the present state plus the latest accepted artifact.
type FormStateService struct {
	DB *gorm.DB

	mu       sync.Mutex
	sessions map[uint]*history.History[FormState]
}

func NewFormStateService(db *gorm.DB) *FormStateService {
	return &FormStateService{DB: db, sessions: make(map[uint]*history.History[FormState])}
}

func (s *FormStateService) session(userID uint) *history.History[FormState] {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.sessions[userID]
	if !ok {
		h = history.New(s.loadInitial(userID))
		s.sessions[userID] = h
	}
	return h
}

func (s *FormStateService) loadInitial(userID uint) FormState {
	var snapshot models.FormStateSnapshot
	if err := s.DB.Where("user_id = ?", userID).First(&snapshot).Error; err == nil {
		var state FormState
		if err := json.Unmarshal(snapshot.State, &state); err == nil && state.SelectedTemplateID != "" {
			if state.InputValues == nil {
				state.InputValues = map[string]string{}
			}
			return state
		}
	}
	return NewFormState(catalog.Templates[0].ID)
}

// Current returns the user's present state and undo/redo availability.
func (s *FormStateService) Current(userID uint) (FormState, bool, bool) {
	h := s.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return h.Present(), h.CanUndo(), h.CanRedo()
}

// Set records a new state and persists it. A state equal to the present one
// is a no-op for the history record but still returns the current view.
func (s *FormStateService) Set(userID uint, state FormState) (FormState, bool, bool, error) {
	if state.InputValues == nil {
		state.InputValues = map[string]string{}
	}
	state.SelectedTemplateID = catalog.TemplateByID(state.SelectedTemplateID).ID

	h := s.session(userID)
	s.mu.Lock()
	h.Set(state)
	present, canUndo, canRedo := h.Present(), h.CanUndo(), h.CanRedo()
	s.mu.Unlock()

	if err := s.persist(userID, present); err != nil {
		return present, canUndo, canRedo, err
	}
	return present, canUndo, canRedo, nil
}

// Undo steps the user's record back and persists the restored state.
func (s *FormStateService) Undo(userID uint) (FormState, bool, bool, error) {
	h := s.session(userID)
	s.mu.Lock()
	h.Undo()
	present, canUndo, canRedo := h.Present(), h.CanUndo(), h.CanRedo()
	s.mu.Unlock()

	if err := s.persist(userID, present); err != nil {
		return present, canUndo, canRedo, err
	}
	return present, canUndo, canRedo, nil
}

// Redo reverses the user's most recent undo and persists the state.
func (s *FormStateService) Redo(userID uint) (FormState, bool, bool, error) {
	h := s.session(userID)
	s.mu.Lock()
	h.Redo()
	present, canUndo, canRedo := h.Present(), h.CanUndo(), h.CanRedo()
	s.mu.Unlock()

	if err := s.persist(userID, present); err != nil {
		return present, canUndo, canRedo, err
	}
	return present, canUndo, canRedo, nil
}

func (s *FormStateService) persist(userID uint, state FormState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var snapshot models.FormStateSnapshot
		err := tx.Where("user_id = ?", userID).First(&snapshot).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			snapshot = models.FormStateSnapshot{UserID: userID}
		}
		snapshot.State = datatypes.JSON(data)
		return tx.Save(&snapshot).Error
	})
}

// SaveArtifact stores the latest accepted artifact for the user. Only called
// on success, so a failed regeneration never clears a previously displayed
// valid artifact.
func (s *FormStateService) SaveArtifact(userID uint, artifact string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var snapshot models.FormStateSnapshot
		err := tx.Where("user_id = ?", userID).First(&snapshot).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			snapshot = models.FormStateSnapshot{UserID: userID}
			if data, merr := json.Marshal(NewFormState(catalog.Templates[0].ID)); merr == nil {
				snapshot.State = datatypes.JSON(data)
			}
		}
		snapshot.Artifact = artifact
		return tx.Save(&snapshot).Error
	})
}

// LatestArtifact returns the last accepted artifact, empty if none yet.
func (s *FormStateService) LatestArtifact(userID uint) (string, error) {
	var snapshot models.FormStateSnapshot
	err := s.DB.Where("user_id = ?", userID).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return snapshot.Artifact, nil
}
