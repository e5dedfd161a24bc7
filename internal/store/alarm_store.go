// Package store owns the canonical alarm collection and the single editing
// draft. The alarm store writes the whole list through to storage on every
// mutation; the draft store never touches storage.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Raimguhinov/morrow-go/internal/models"
	"github.com/Raimguhinov/morrow-go/internal/storage"
	"github.com/Raimguhinov/morrow-go/pkg/logger"
	"github.com/google/uuid"
)

// AlarmStore keeps alarms in insertion order. Mutations apply to memory
// first and then persist; a failed persist does NOT roll the memory state
// back, the error is returned to the caller as-is.
type AlarmStore struct {
	logger *logger.Logger
	repo   storage.Repository

	mu     sync.RWMutex
	alarms []models.Alarm
}

func NewAlarmStore(repo storage.Repository, logger *logger.Logger) *AlarmStore {
	return &AlarmStore{
		logger: logger,
		repo:   repo,
		alarms: []models.Alarm{},
	}
}

// Hydrate replaces the in-memory collection with the persisted one.
// Called once at startup.
func (s *AlarmStore) Hydrate(ctx context.Context) error {
	alarms, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("store - Hydrate - repo.Load: %w", err)
	}

	s.mu.Lock()
	s.alarms = alarms
	s.mu.Unlock()

	s.logger.Info("alarm store hydrated", "count", len(alarms))
	return nil
}

// Add builds a default alarm, overlays the optional partial, assigns a fresh
// id and appends it. The created record is returned even when the persist
// fails.
func (s *AlarmStore) Add(ctx context.Context, partial *models.Patch) (models.Alarm, error) {
	alarm := models.NewDefaultAlarm(time.Now())
	if partial != nil {
		alarm.Apply(*partial)
	}
	alarm.ID = uuid.New().String()

	s.mu.Lock()
	s.alarms = append(s.alarms, alarm)
	s.mu.Unlock()

	return alarm.Clone(), s.persist(ctx)
}

// Update shallow-merges the patch into the matching record. Unknown ids are
// a silent no-op.
func (s *AlarmStore) Update(ctx context.Context, id string, patch models.Patch) error {
	s.mu.Lock()
	found := false
	for i := range s.alarms {
		if s.alarms[i].ID == id {
			s.alarms[i].Apply(patch)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return nil
	}
	return s.persist(ctx)
}

// Delete removes the matching record. Unknown ids are a silent no-op.
func (s *AlarmStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	found := false
	for i := range s.alarms {
		if s.alarms[i].ID == id {
			s.alarms = append(s.alarms[:i], s.alarms[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return nil
	}
	return s.persist(ctx)
}

// Toggle flips isEnabled on the matching record. Unknown ids are a silent
// no-op.
func (s *AlarmStore) Toggle(ctx context.Context, id string) error {
	s.mu.Lock()
	found := false
	for i := range s.alarms {
		if s.alarms[i].ID == id {
			s.alarms[i].IsEnabled = !s.alarms[i].IsEnabled
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return nil
	}
	return s.persist(ctx)
}

func (s *AlarmStore) Get(id string) (models.Alarm, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.alarms {
		if a.ID == id {
			return a.Clone(), true
		}
	}
	return models.Alarm{}, false
}

// All returns a snapshot of the collection in insertion order.
func (s *AlarmStore) All() []models.Alarm {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Alarm, len(s.alarms))
	for i, a := range s.alarms {
		out[i] = a.Clone()
	}
	return out
}

func (s *AlarmStore) persist(ctx context.Context) error {
	snapshot := s.All()

	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.logger.Error("store.persist", logger.Err(err))
		return fmt.Errorf("store - persist - repo.Save: %w", err)
	}
	return nil
}
