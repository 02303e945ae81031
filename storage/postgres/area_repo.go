package postgres

import (
	"context"

	"varlife/pkg/logger"
	"varlife/pkg/models"
	"varlife/storage"
)

type areaRepo struct {
	db  querier
	log logger.ILogger
}

func NewAreaRepo(db querier, log logger.ILogger) storage.IAreaStorage {
	return &areaRepo{db: db, log: log}
}

func (r *areaRepo) GetAll(ctx context.Context) ([]*models.Area, error) {
	query := `SELECT id, name FROM areas ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list areas", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var areas []*models.Area
	for rows.Next() {
		var a models.Area
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		areas = append(areas, &a)
	}
	return areas, rows.Err()
}

func (r *areaRepo) Create(ctx context.Context, name string) (*models.Area, error) {
	a := models.Area{Name: name}
	query := `INSERT INTO areas (name) VALUES ($1) RETURNING id`
	if err := r.db.QueryRow(ctx, query, name).Scan(&a.ID); err != nil {
		r.log.Error("failed to create area", logger.String("name", name), logger.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *areaRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM areas`)
	return err
}
