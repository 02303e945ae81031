package service

import (
	"context"

	"varlife/config"
	"varlife/pkg/clock"
	"varlife/pkg/logger"
	"varlife/storage"
)

// Telegram chats and HTTP API clients get separate registries, so an API
// caller can never drive a chat's session.
const (
	SurfaceTelegram = "telegram"
	SurfaceAPI      = "api"
)

type IServiceManager interface {
	Catalog() CatalogService
	// Session is the registry of Telegram chats, keyed by chat id.
	Session() SessionService
	// APISession is the registry of sessions created over HTTP.
	APISession() SessionService
}

type service struct {
	catalogService    CatalogService
	sessionService    SessionService
	apiSessionService SessionService
}

// New loads the catalog once and builds the session registry on top of it.
func New(ctx context.Context, stg storage.IStorage, cfg config.Config, clk clock.Clock, log logger.ILogger) (IServiceManager, error) {
	catalogService := NewCatalogService(stg, log)
	catalog, err := catalogService.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &service{
		catalogService:    catalogService,
		sessionService:    NewSessionService(SurfaceTelegram, catalog, SessionConfig(cfg), clk, log),
		apiSessionService: NewSessionService(SurfaceAPI, catalog, SessionConfig(cfg), clk, log),
	}, nil
}

func (s *service) Catalog() CatalogService {
	return s.catalogService
}

func (s *service) Session() SessionService {
	return s.sessionService
}

func (s *service) APISession() SessionService {
	return s.apiSessionService
}
