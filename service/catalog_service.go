package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"varlife/pkg/logger"
	"varlife/pkg/models"
	"varlife/storage"
)

var ErrEmptyCatalog = errors.New("catalog has no ride options")

type CatalogService interface {
	// Load reads the catalog from storage. The result is cached and shared.
	Load(ctx context.Context) (*models.Catalog, error)
	Current() *models.Catalog
	// Reseed replaces the stored catalog with the built-in defaults in one
	// transaction; on failure the previous catalog stays in place.
	Reseed(ctx context.Context) error
}

type catalogService struct {
	stg storage.IStorage
	log logger.ILogger

	mu      sync.RWMutex
	current *models.Catalog
}

func NewCatalogService(stg storage.IStorage, log logger.ILogger) CatalogService {
	return &catalogService{stg: stg, log: log}
}

func (s *catalogService) Load(ctx context.Context) (*models.Catalog, error) {
	rides, err := s.stg.RideOption().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ride options: %w", err)
	}
	if len(rides) == 0 {
		return nil, ErrEmptyCatalog
	}
	areas, err := s.stg.Area().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load areas: %w", err)
	}

	catalog := models.DefaultCatalog()
	catalog.RideOptions = rides
	catalog.Areas = areas

	s.mu.Lock()
	s.current = catalog
	s.mu.Unlock()

	s.log.Info("catalog loaded", logger.Int("ride_options", len(rides)), logger.Int("areas", len(areas)))
	return catalog, nil
}

func (s *catalogService) Current() *models.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *catalogService) Reseed(ctx context.Context) error {
	err := s.stg.WithTx(ctx, func(tx storage.ICatalog) error {
		if err := tx.RideOption().DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear ride options: %w", err)
		}
		if err := tx.Area().DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear areas: %w", err)
		}
		for _, r := range models.DefaultRideOptions() {
			if err := tx.RideOption().Create(ctx, r); err != nil {
				return fmt.Errorf("create ride option %s: %w", r.ID, err)
			}
		}
		for _, a := range models.DefaultAreas() {
			if _, err := tx.Area().Create(ctx, a.Name); err != nil {
				return fmt.Errorf("create area %s: %w", a.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("catalog reseeded")
	return nil
}
