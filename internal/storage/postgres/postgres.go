package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Raimguhinov/morrow-go/internal/models"
	"github.com/Raimguhinov/morrow-go/pkg/logger"
	"github.com/Raimguhinov/morrow-go/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

// stateKey is the one logical slot the whole alarm list lives under.
// It matches the storage key the mobile app used.
const stateKey = "morrow-alarms"

type Repository struct {
	client *postgres.Postgres
	logger *logger.Logger
}

func New(ctx context.Context, client *postgres.Postgres, logger *logger.Logger) (*Repository, error) {
	r := &Repository{
		client: client,
		logger: logger,
	}
	if err := r.bootstrap(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) bootstrap(ctx context.Context) error {
	_, err := r.client.Pool.Exec(ctx, `
		CREATE SCHEMA IF NOT EXISTS morrow
	`)
	if err != nil {
		err = r.client.ToPgErr(err)
		r.logger.Error("postgres.bootstrap", logger.Err(err))
		return err
	}

	_, err = r.client.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS morrow.kv_state
		(
			key         text PRIMARY KEY,
			payload     jsonb       NOT NULL,
			modified_at timestamptz NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		err = r.client.ToPgErr(err)
		r.logger.Error("postgres.bootstrap", logger.Err(err))
		return err
	}
	return nil
}

func (r *Repository) Load(ctx context.Context) ([]models.Alarm, error) {
	r.logger.Debug("postgres.Load")

	var payload []byte

	err := r.client.Pool.QueryRow(ctx, `
		SELECT payload
		FROM morrow.kv_state
		WHERE key = $1
	`, stateKey).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return []models.Alarm{}, nil
	}
	if err != nil {
		err = r.client.ToPgErr(err)
		r.logger.Error("postgres.Load", logger.Err(err))
		return nil, err
	}

	var alarms []models.Alarm
	if err := json.Unmarshal(payload, &alarms); err != nil {
		r.logger.Error("postgres.Load", logger.Err(err))
		return nil, err
	}
	return alarms, nil
}

func (r *Repository) Save(ctx context.Context, alarms []models.Alarm) error {
	r.logger.Debug("postgres.Save")

	payload, err := json.Marshal(alarms)
	if err != nil {
		r.logger.Error("postgres.Save", logger.Err(err))
		return err
	}

	_, err = r.client.Pool.Exec(ctx, `
		INSERT INTO morrow.kv_state (key, payload, modified_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
			SET payload = excluded.payload, modified_at = now()
	`, stateKey, payload)
	if err != nil {
		err = r.client.ToPgErr(err)
		r.logger.Error("postgres.Save", logger.Err(err))
		return err
	}
	return nil
}
