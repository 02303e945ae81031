package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"varlife/pkg/logger"
	"varlife/pkg/models"
	"varlife/storage"
)

type rideOptionRepo struct {
	db  querier
	log logger.ILogger
}

func NewRideOptionRepo(db querier, log logger.ILogger) storage.IRideOptionStorage {
	return &rideOptionRepo{db: db, log: log}
}

func (r *rideOptionRepo) GetAll(ctx context.Context) ([]*models.RideOption, error) {
	query := `SELECT id, name, price_cents, currency, wait_time, description, discount, position FROM ride_options ORDER BY position ASC, id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list ride options", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rides []*models.RideOption
	for rows.Next() {
		var o models.RideOption
		if err := rows.Scan(&o.ID, &o.Name, &o.PriceCents, &o.Currency, &o.WaitTime, &o.Description, &o.Discount, &o.Position); err != nil {
			return nil, err
		}
		rides = append(rides, &o)
	}
	return rides, rows.Err()
}

func (r *rideOptionRepo) GetByID(ctx context.Context, id string) (*models.RideOption, error) {
	var o models.RideOption
	query := `SELECT id, name, price_cents, currency, wait_time, description, discount, position FROM ride_options WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&o.ID, &o.Name, &o.PriceCents, &o.Currency, &o.WaitTime, &o.Description, &o.Discount, &o.Position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.log.Error("failed to get ride option", logger.String("id", id), logger.Error(err))
		return nil, err
	}
	return &o, nil
}

func (r *rideOptionRepo) Create(ctx context.Context, o *models.RideOption) error {
	query := `
		INSERT INTO ride_options (id, name, price_cents, currency, wait_time, description, discount, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			price_cents = EXCLUDED.price_cents,
			currency = EXCLUDED.currency,
			wait_time = EXCLUDED.wait_time,
			description = EXCLUDED.description,
			discount = EXCLUDED.discount,
			position = EXCLUDED.position
	`
	_, err := r.db.Exec(ctx, query, o.ID, o.Name, o.PriceCents, o.Currency, o.WaitTime, o.Description, o.Discount, o.Position)
	if err != nil {
		r.log.Error("failed to create ride option", logger.String("id", o.ID), logger.Error(err))
	}
	return err
}

func (r *rideOptionRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM ride_options`)
	return err
}
