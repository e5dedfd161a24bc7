// Package memory implements the storage contract in process memory,
// for tests and mem:// runs.
package memory

import (
	"context"
	"sync"

	"github.com/Raimguhinov/morrow-go/internal/models"
)

type Repository struct {
	mu     sync.RWMutex
	alarms []models.Alarm
}

func New() *Repository {
	return &Repository{}
}

func (r *Repository) Load(_ context.Context) ([]models.Alarm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneAll(r.alarms), nil
}

func (r *Repository) Save(_ context.Context, alarms []models.Alarm) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alarms = cloneAll(alarms)
	return nil
}

func cloneAll(alarms []models.Alarm) []models.Alarm {
	out := make([]models.Alarm, len(alarms))
	for i, a := range alarms {
		out[i] = a.Clone()
	}
	return out
}
