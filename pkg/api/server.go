// Package api exposes the session container over HTTP. It carries the same
// entry points as the Telegram bot, addressed by numeric session id.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"varlife/pkg/logger"
	"varlife/pkg/session"
	"varlife/service"
)

type Server struct {
	svc service.IServiceManager
	log logger.ILogger
	mux *mux.Router
}

func NewServer(svc service.IServiceManager, log logger.ILogger) *Server {
	s := &Server{svc: svc, log: log, mux: mux.NewRouter()}
	s.registerMiddleware()
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.mux.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	v1 := s.mux.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/catalog", s.handleCatalog).Methods(http.MethodGet)
	v1.HandleFunc("/sessions/{id:[0-9]+}", s.handleGetSession).Methods(http.MethodGet)
	v1.HandleFunc("/sessions/{id:[0-9]+}", s.handleDeleteSession).Methods(http.MethodDelete)
	v1.HandleFunc("/sessions/{id:[0-9]+}/areas", s.handleAreas).Methods(http.MethodGet)
	v1.HandleFunc("/sessions/{id:[0-9]+}/events", s.handleEvent).Methods(http.MethodPost)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.mux.ServeHTTP(w, r) }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"sessions":      s.svc.APISession().Count(),
		"chat_sessions": s.svc.Session().Count(),
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	cat := s.svc.APISession().Catalog()
	writeJSON(w, http.StatusOK, map[string]any{
		"ride_options":  cat.RideOptions,
		"areas":         cat.AreaNames(),
		"driver":        cat.Driver,
		"quick_replies": cat.QuickReplies,
		"institutions":  cat.Institutions,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleAreas(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	areas := sess.FilteredAreas()
	if areas == nil {
		areas = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query": sess.Snapshot().SearchQuery,
		"areas": areas,
	})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.svc.APISession().Close(id) {
		writeError(w, http.StatusNotFound, service.ErrSessionNotFound.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var ev Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sess := s.svc.APISession().Open(id)
	accepted, err := ev.apply(sess, s.svc.APISession().Catalog())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, eventResponse{Accepted: accepted, State: sess.Snapshot()})
}

// lookup resolves the {id} path variable to an existing session, writing the
// error response itself when it cannot.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	sess, err := s.svc.APISession().Get(id)
	if errors.Is(err, service.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	if err != nil {
		s.log.Error("session lookup failed", logger.Int64("session_id", id), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return nil, false
	}
	return sess, true
}

type eventResponse struct {
	Accepted bool          `json:"accepted"`
	State    session.State `json:"state"`
}

func sessionID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, errors.New("invalid session id")
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
