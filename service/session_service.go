package service

import (
	"errors"
	"strconv"
	"sync"

	"varlife/config"
	"varlife/pkg/clock"
	"varlife/pkg/logger"
	"varlife/pkg/models"
	"varlife/pkg/observability"
	"varlife/pkg/session"
)

var ErrSessionNotFound = errors.New("session not found")

type ChangeHandler func(id int64, ch session.Change)

type SessionService interface {
	// Open returns the session for id, creating it on first use.
	Open(id int64) *session.Session
	Get(id int64) (*session.Session, error)
	// Reset discards the current session for id, cancelling its timers.
	Reset(id int64) *session.Session
	Close(id int64) bool
	CloseAll()
	Count() int
	Subscribe(h ChangeHandler)
	Catalog() *models.Catalog
}

func SessionConfig(cfg config.Config) session.Config {
	return session.Config{
		VerificationDelay: cfg.VerificationDelay,
		RedirectDelay:     cfg.RedirectDelay,
		MatchingDelay:     cfg.MatchingDelay,
		DriverReplyDelay:  cfg.DriverReplyDelay,
		RecentRidesLimit:  cfg.RecentRidesLimit,
	}
}

type sessionService struct {
	surface string
	catalog *models.Catalog
	cfg     session.Config
	clock   clock.Clock
	log     logger.ILogger

	mu       sync.RWMutex
	sessions map[int64]*session.Session
	handlers []ChangeHandler
}

func NewSessionService(surface string, catalog *models.Catalog, cfg session.Config, clk clock.Clock, log logger.ILogger) SessionService {
	s := &sessionService{
		surface:  surface,
		catalog:  catalog,
		cfg:      cfg,
		clock:    clk,
		log:      log.With(logger.String("surface", surface)),
		sessions: make(map[int64]*session.Session),
	}
	s.handlers = append(s.handlers, recordMetrics)
	return s
}

func (s *sessionService) Catalog() *models.Catalog {
	return s.catalog
}

func (s *sessionService) Subscribe(h ChangeHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, h)
}

func (s *sessionService) Open(id int64) *session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	return s.create(id)
}

func (s *sessionService) Get(id int64) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *sessionService) Reset(id int64) *session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.sessions[id]; ok {
		old.Close()
		delete(s.sessions, id)
	}
	return s.create(id)
}

func (s *sessionService) Close(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.Close()
	delete(s.sessions, id)
	observability.ActiveSessions.WithLabelValues(s.surface).Set(float64(len(s.sessions)))
	s.log.Info("session closed", logger.Int64("session_id", id))
	return true
}

func (s *sessionService) CloseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.Close()
		delete(s.sessions, id)
	}
	observability.ActiveSessions.WithLabelValues(s.surface).Set(0)
}

func (s *sessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// create must be called with s.mu held.
func (s *sessionService) create(id int64) *session.Session {
	sess := session.New(s.cfg, s.catalog, s.clock, s.log.With(logger.Int64("session_id", id)))
	sess.Subscribe(func(ch session.Change) {
		s.mu.RLock()
		handlers := append([]ChangeHandler(nil), s.handlers...)
		s.mu.RUnlock()
		for _, h := range handlers {
			h(id, ch)
		}
	})
	s.sessions[id] = sess
	observability.ActiveSessions.WithLabelValues(s.surface).Set(float64(len(s.sessions)))
	s.log.Info("session opened", logger.Int64("session_id", id))
	return sess
}

func recordMetrics(_ int64, ch session.Change) {
	observability.SessionChanges.WithLabelValues(string(ch.Reason), strconv.FormatBool(ch.Async)).Inc()
	switch ch.Reason {
	case session.ReasonNavigate, session.ReasonVerifiedRedirect, session.ReasonDriverMatched:
		observability.ScreenViews.WithLabelValues(string(ch.State.Screen)).Inc()
	case session.ReasonRideRequested:
		observability.ScreenViews.WithLabelValues(string(ch.State.Screen)).Inc()
		if ch.State.SelectedRide != nil {
			observability.RidesRequested.WithLabelValues(ch.State.SelectedRide.ID).Inc()
		}
	}
}
