// Package session holds the per-user navigation and mock ride lifecycle state.
//
// Every mutation, whether it comes from a caller or from a timer, runs to
// completion under the session lock before the next one is applied.
// Listeners are notified after the lock is released.
package session

import (
	"strings"
	"sync"
	"time"

	"varlife/pkg/clock"
	"varlife/pkg/logger"
	"varlife/pkg/models"
)

type Config struct {
	VerificationDelay time.Duration
	RedirectDelay     time.Duration
	MatchingDelay     time.Duration
	DriverReplyDelay  time.Duration
	RecentRidesLimit  int
}

func DefaultConfig() Config {
	return Config{
		VerificationDelay: 3 * time.Second,
		RedirectDelay:     2 * time.Second,
		MatchingDelay:     3 * time.Second,
		DriverReplyDelay:  2 * time.Second,
		RecentRidesLimit:  5,
	}
}

type Session struct {
	mu sync.Mutex

	cfg     Config
	clock   clock.Clock
	catalog *models.Catalog
	log     logger.ILogger

	state     State
	listeners []Listener

	// in-flight guards, cleared when the last timer of the flow fires
	verifying bool
	matching  bool

	timers    map[uint64]clock.Timer
	nextTimer uint64
	closed    bool
}

func New(cfg Config, catalog *models.Catalog, clk clock.Clock, log logger.ILogger) *Session {
	if cfg.RecentRidesLimit <= 0 {
		cfg.RecentRidesLimit = DefaultConfig().RecentRidesLimit
	}
	return &Session{
		cfg:     cfg,
		clock:   clk,
		catalog: catalog,
		log:     log,
		state: State{
			Screen:   models.ScreenWelcome,
			Location: catalog.DefaultLocation,
		},
		timers: make(map[uint64]clock.Timer),
	}
}

// Subscribe registers l for every subsequent change.
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Pending is the number of timers that have not fired yet.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close cancels every pending timer. Later operations are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.listeners = nil
	s.log.Debug("session closed")
}

func (s *Session) Navigate(screen models.Screen) bool {
	return s.apply(ReasonNavigate, false, func() bool {
		s.state.Screen = screen
		return true
	})
}

// BeginVerification simulates student verification. It always succeeds:
// IsVerified is set after VerificationDelay and the user lands on home
// RedirectDelay later. A call made while a verification is in flight is
// ignored and reports false.
func (s *Session) BeginVerification() bool {
	return s.apply(ReasonVerificationStarted, false, func() bool {
		if s.verifying {
			return false
		}
		s.verifying = true
		s.state.IsVerifying = true

		s.after(s.cfg.VerificationDelay, ReasonVerified, func() {
			s.state.IsVerifying = false
			s.state.IsVerified = true

			s.after(s.cfg.RedirectDelay, ReasonVerifiedRedirect, func() {
				s.verifying = false
				s.state.Screen = models.ScreenHome
			})
		})
		return true
	})
}

// RequestRide starts the matching flow for ride. The driver is always found
// after MatchingDelay. A call made while matching is in flight is ignored.
func (s *Session) RequestRide(ride *models.RideOption) bool {
	if ride == nil {
		return false
	}
	return s.apply(ReasonRideRequested, false, func() bool {
		if s.matching {
			return false
		}
		s.matching = true

		selected := *ride
		s.state.SelectedRide = &selected

		recent := make([]models.RideOption, 0, s.cfg.RecentRidesLimit)
		recent = append(recent, selected)
		for _, r := range s.state.RecentRides {
			if len(recent) == s.cfg.RecentRidesLimit {
				break
			}
			recent = append(recent, r)
		}
		s.state.RecentRides = recent

		s.state.Chat = s.seedTranscript()
		s.state.Loading = true
		s.state.Screen = models.ScreenMatching

		s.after(s.cfg.MatchingDelay, ReasonDriverMatched, func() {
			s.matching = false
			s.state.Loading = false
			s.state.RideInProgress = true
			s.state.Screen = models.ScreenTracking
		})
		return true
	})
}

// AddFavorite saves location once; repeated calls report false.
func (s *Session) AddFavorite(location string) bool {
	return s.apply(ReasonFavoriteAdded, false, func() bool {
		if s.state.HasFavorite(location) {
			return false
		}
		s.state.Favorites = append(s.state.Favorites, location)
		return true
	})
}

func (s *Session) SetSearchQuery(text string) bool {
	return s.apply(ReasonSearchChanged, false, func() bool {
		s.state.SearchQuery = text
		return true
	})
}

// FilteredAreas returns the area names containing the current search query,
// ignoring case. An empty query matches everything.
func (s *Session) FilteredAreas() []string {
	s.mu.Lock()
	query := s.state.SearchQuery
	s.mu.Unlock()
	return FilterAreas(s.catalog.AreaNames(), query)
}

func FilterAreas(areas []string, query string) []string {
	if query == "" {
		return append([]string(nil), areas...)
	}
	q := strings.ToLower(query)
	var out []string
	for _, a := range areas {
		if strings.Contains(strings.ToLower(a), q) {
			out = append(out, a)
		}
	}
	return out
}

// SendMessage appends a user message and schedules the driver's canned reply.
// Blank text is dropped and reports false.
func (s *Session) SendMessage(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	return s.apply(ReasonMessageSent, false, func() bool {
		s.appendMessage(models.SenderUser, text)
		s.state.Draft = ""
		s.state.IsTyping = true

		s.after(s.cfg.DriverReplyDelay, ReasonDriverReplied, func() {
			s.state.IsTyping = false
			s.appendMessage(models.SenderDriver, s.catalog.DriverReply)
		})
		return true
	})
}

// SendQuickReply appends a canned user message. Unlike SendMessage the
// driver does not answer.
func (s *Session) SendQuickReply(text string) bool {
	return s.apply(ReasonQuickReplySent, false, func() bool {
		s.appendMessage(models.SenderUser, text)
		return true
	})
}

func (s *Session) SetDraft(text string) bool {
	return s.apply(ReasonDraftChanged, false, func() bool {
		s.state.Draft = text
		return true
	})
}

func (s *Session) SetSignupField(field models.SignupField, value string) bool {
	return s.apply(ReasonSignupChanged, false, func() bool {
		return s.state.Signup.Set(field, value)
	})
}

func (s *Session) SelectInstitution(id string) bool {
	if _, ok := s.catalog.InstitutionByID(id); !ok {
		return false
	}
	return s.apply(ReasonInstitutionSelected, false, func() bool {
		s.state.Institution = id
		return true
	})
}

func (s *Session) SetLocation(area string) bool {
	return s.apply(ReasonLocationChanged, false, func() bool {
		s.state.Location = area
		return true
	})
}

// apply runs fn under the lock and, if it reports a change, notifies
// listeners with the resulting state.
func (s *Session) apply(reason Reason, async bool, fn func() bool) bool {
	s.mu.Lock()
	if s.closed || !fn() {
		s.mu.Unlock()
		return false
	}
	change := Change{Reason: reason, Async: async, State: s.state.clone()}
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	s.log.Debug("session changed",
		logger.String("reason", string(reason)),
		logger.String("screen", string(change.State.Screen)),
		logger.Bool("async", async),
	)
	for _, l := range listeners {
		l(change)
	}
	return true
}

// after schedules fn as its own event. Must be called with s.mu held.
func (s *Session) after(d time.Duration, reason Reason, fn func()) {
	s.nextTimer++
	id := s.nextTimer
	s.timers[id] = s.clock.AfterFunc(d, func() {
		s.apply(reason, true, func() bool {
			if _, ok := s.timers[id]; !ok {
				return false
			}
			delete(s.timers, id)
			fn()
			return true
		})
	})
}

func (s *Session) appendMessage(sender models.Sender, text string) {
	id := 1
	if n := len(s.state.Chat); n > 0 {
		id = s.state.Chat[n-1].ID + 1
	}
	s.state.Chat = append(s.state.Chat, models.ChatMessage{
		ID:        id,
		Sender:    sender,
		Text:      text,
		Timestamp: s.clock.Now(),
		Read:      true,
	})
}

func (s *Session) seedTranscript() []models.ChatMessage {
	now := s.clock.Now()
	out := make([]models.ChatMessage, 0, len(s.catalog.SeedTranscript))
	for i, m := range s.catalog.SeedTranscript {
		out = append(out, models.ChatMessage{
			ID:        i + 1,
			Sender:    m.Sender,
			Text:      m.Text,
			Timestamp: now.Add(-m.Ago),
			Read:      true,
		})
	}
	return out
}
