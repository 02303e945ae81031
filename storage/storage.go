package storage

import (
	"context"

	"varlife/pkg/models"
)

// ICatalog is the set of repositories, either on the store itself or bound
// to a transaction.
type ICatalog interface {
	RideOption() IRideOptionStorage
	Area() IAreaStorage
}

type IStorage interface {
	ICatalog
	// WithTx runs fn against repositories that commit together. If fn
	// returns an error nothing it wrote is kept.
	WithTx(ctx context.Context, fn func(tx ICatalog) error) error
	Close()
}

type IRideOptionStorage interface {
	GetAll(ctx context.Context) ([]*models.RideOption, error)
	GetByID(ctx context.Context, id string) (*models.RideOption, error)
	Create(ctx context.Context, ride *models.RideOption) error
	DeleteAll(ctx context.Context) error
}

type IAreaStorage interface {
	GetAll(ctx context.Context) ([]*models.Area, error)
	Create(ctx context.Context, name string) (*models.Area, error)
	DeleteAll(ctx context.Context) error
}
