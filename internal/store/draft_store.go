package store

import (
	"sync"

	"github.com/Raimguhinov/morrow-go/internal/models"
)

// DraftStore holds at most one alarm being edited. Screens set it on entry,
// mutate it field by field and clear it unconditionally on exit; committing
// is the screen reading the draft and calling the alarm store.
type DraftStore struct {
	mu    sync.RWMutex
	draft *models.Alarm
}

func NewDraftStore() *DraftStore {
	return &DraftStore{}
}

// SetDraft replaces the current draft wholesale.
func (s *DraftStore) SetDraft(alarm models.Alarm) {
	c := alarm.Clone()

	s.mu.Lock()
	s.draft = &c
	s.mu.Unlock()
}

// UpdateDraft shallow-merges the patch into the draft; no-op when no draft
// is set.
func (s *DraftStore) UpdateDraft(patch models.Patch) {
	s.mu.Lock()
	if s.draft != nil {
		s.draft.Apply(patch)
	}
	s.mu.Unlock()
}

func (s *DraftStore) ClearDraft() {
	s.mu.Lock()
	s.draft = nil
	s.mu.Unlock()
}

func (s *DraftStore) Draft() (models.Alarm, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.draft == nil {
		return models.Alarm{}, false
	}
	return s.draft.Clone(), true
}
