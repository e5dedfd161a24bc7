// Package storage defines the durable substrate behind the alarm store:
// the whole collection is loaded once at startup and rewritten on every
// mutation, under a single logical key.
package storage

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Raimguhinov/morrow-go/internal/models"
	"github.com/Raimguhinov/morrow-go/internal/storage/memory"
	pgstorage "github.com/Raimguhinov/morrow-go/internal/storage/postgres"
	"github.com/Raimguhinov/morrow-go/pkg/logger"
	"github.com/Raimguhinov/morrow-go/pkg/postgres"
)

type Repository interface {
	Load(ctx context.Context) ([]models.Alarm, error)
	Save(ctx context.Context, alarms []models.Alarm) error
}

// NewFromURL picks a repository implementation by URL scheme and returns it
// together with a release func for whatever connections it holds.
func NewFromURL(ctx context.Context, l *logger.Logger, storageURL string, poolMax int) (Repository, func(), error) {
	u, err := url.Parse(storageURL)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing storage URL: %s", err.Error())
	}

	switch u.Scheme {
	case "postgres":
		pg, err := postgres.New(ctx, l, storageURL, postgres.MaxPoolSize(poolMax))
		if err != nil {
			return nil, nil, fmt.Errorf("storage - NewFromURL - postgres.New: %w", err)
		}
		repo, err := pgstorage.New(ctx, pg, l)
		if err != nil {
			pg.Close()
			return nil, nil, fmt.Errorf("storage - NewFromURL - pgstorage.New: %w", err)
		}
		return repo, pg.Close, nil
	case "mem":
		return memory.New(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("no storage provider found for %s:// URL", u.Scheme)
	}
}
