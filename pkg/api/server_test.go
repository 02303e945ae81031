package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"varlife/config"
	"varlife/pkg/clock"
	"varlife/pkg/logger"
	"varlife/pkg/models"
	"varlife/pkg/session"
	"varlife/service"
	"varlife/storage/memory"
)

func newTestServer(t *testing.T) (*Server, *clock.Mock) {
	t.Helper()
	clk := clock.NewMock(time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC))
	cfg := config.Config{
		VerificationDelay: 3 * time.Second,
		RedirectDelay:     2 * time.Second,
		MatchingDelay:     3 * time.Second,
		DriverReplyDelay:  2 * time.Second,
		RecentRidesLimit:  5,
	}
	svc, err := service.New(context.Background(), memory.New(), cfg, clk, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(svc.Session().CloseAll)
	t.Cleanup(svc.APISession().CloseAll)
	return NewServer(svc, logger.NewNop()), clk
}

func do(t *testing.T, srv http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func post(t *testing.T, srv http.Handler, id string, ev Event) eventResponse {
	t.Helper()
	rec := do(t, srv, http.MethodPost, "/api/v1/sessions/"+id+"/events", ev)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out eventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func getState(t *testing.T, srv http.Handler, id string) session.State {
	t.Helper()
	rec := do(t, srv, http.MethodGet, "/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var st session.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	return st
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	_, err := uuid.Parse(rec.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
}

func TestRequestIDIsEchoed(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc123")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, "abc123", rec.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	do(t, srv, http.MethodGet, "/healthz", nil)

	rec := do(t, srv, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "varlife_http_requests_total")
}

func TestCatalog(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/v1/catalog", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		RideOptions []models.RideOption `json:"ride_options"`
		Areas       []string            `json:"areas"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.RideOptions, 5)
	assert.Equal(t, "standard", out.RideOptions[0].ID)
	assert.Len(t, out.Areas, 9)
}

func TestUnknownSessionIs404(t *testing.T) {
	srv, _ := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/api/v1/sessions/7", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/api/v1/sessions/7/areas", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodDelete, "/api/v1/sessions/7", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/api/v1/sessions/abc", nil).Code)
}

func TestBadEvents(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, ev := range []Event{
		{Type: "teleport"},
		{Type: EventNavigate, Screen: "settings"},
		{Type: EventRequestRide, RideID: "helicopter"},
		{Type: EventAddFavorite},
		{Type: EventSignupField, Field: "nickname", Text: "x"},
		{Type: EventSelectInstitution, Institution: "oxford"},
	} {
		rec := do(t, srv, http.MethodPost, "/api/v1/sessions/1/events", ev)
		assert.Equal(t, http.StatusBadRequest, rec.Code, ev.Type)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/1/events", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerificationScenario(t *testing.T) {
	srv, clk := newTestServer(t)

	out := post(t, srv, "1", Event{Type: EventNavigate, Screen: "verification"})
	assert.True(t, out.Accepted)
	assert.Equal(t, models.ScreenVerification, out.State.Screen)

	out = post(t, srv, "1", Event{Type: EventBeginVerification})
	assert.True(t, out.Accepted)
	assert.True(t, out.State.IsVerifying)

	out = post(t, srv, "1", Event{Type: EventBeginVerification})
	assert.False(t, out.Accepted)

	clk.Add(3 * time.Second)
	st := getState(t, srv, "1")
	assert.False(t, st.IsVerifying)
	assert.True(t, st.IsVerified)
	assert.Equal(t, models.ScreenVerification, st.Screen)

	clk.Add(2 * time.Second)
	assert.Equal(t, models.ScreenHome, getState(t, srv, "1").Screen)
}

func TestRideAndChatScenario(t *testing.T) {
	srv, clk := newTestServer(t)

	post(t, srv, "2", Event{Type: EventNavigate, Screen: "home"})
	out := post(t, srv, "2", Event{Type: EventRequestRide, RideID: "standard"})
	assert.True(t, out.Accepted)
	assert.Equal(t, models.ScreenMatching, out.State.Screen)
	assert.True(t, out.State.Loading)
	require.NotNil(t, out.State.SelectedRide)
	assert.Equal(t, "Standard Ride", out.State.SelectedRide.Name)
	assert.Len(t, out.State.Chat, 3)

	assert.False(t, post(t, srv, "2", Event{Type: EventRequestRide, RideID: "express"}).Accepted)

	clk.Add(3 * time.Second)
	st := getState(t, srv, "2")
	assert.Equal(t, models.ScreenTracking, st.Screen)
	assert.True(t, st.RideInProgress)
	assert.False(t, st.Loading)

	post(t, srv, "2", Event{Type: EventNavigate, Screen: "chat"})
	assert.False(t, post(t, srv, "2", Event{Type: EventSendMessage, Text: "   "}).Accepted)

	out = post(t, srv, "2", Event{Type: EventSendMessage, Text: "  On my way  "})
	assert.True(t, out.Accepted)
	require.Len(t, out.State.Chat, 4)
	assert.Equal(t, "On my way", out.State.Chat[3].Text)
	assert.Equal(t, 4, out.State.Chat[3].ID)
	assert.True(t, out.State.IsTyping)

	clk.Add(2 * time.Second)
	st = getState(t, srv, "2")
	require.Len(t, st.Chat, 5)
	assert.Equal(t, models.SenderDriver, st.Chat[4].Sender)
	assert.Equal(t, models.DriverReply, st.Chat[4].Text)
	assert.False(t, st.IsTyping)
}

func TestSearchAndFavorites(t *testing.T) {
	srv, _ := newTestServer(t)

	post(t, srv, "3", Event{Type: EventSetSearchQuery, Text: "MALL"})
	rec := do(t, srv, http.MethodGet, "/api/v1/sessions/3/areas", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Query string   `json:"query"`
		Areas []string `json:"areas"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "MALL", out.Query)
	assert.Equal(t, []string{"Riverside Mall", "Ilanga Mall"}, out.Areas)

	post(t, srv, "3", Event{Type: EventSetSearchQuery, Text: "xyz"})
	rec = do(t, srv, http.MethodGet, "/api/v1/sessions/3/areas", nil)
	assert.Contains(t, rec.Body.String(), `"areas":[]`)

	assert.True(t, post(t, srv, "3", Event{Type: EventAddFavorite, Location: "White River"}).Accepted)
	assert.False(t, post(t, srv, "3", Event{Type: EventAddFavorite, Location: "White River"}).Accepted)
	assert.Equal(t, []string{"White River"}, getState(t, srv, "3").Favorites)
}

func TestSupplementaryEvents(t *testing.T) {
	srv, _ := newTestServer(t)

	post(t, srv, "4", Event{Type: EventSignupField, Field: "first_name", Text: "Thandi"})
	post(t, srv, "4", Event{Type: EventSelectInstitution, Institution: "up"})
	post(t, srv, "4", Event{Type: EventSetLocation, Location: "White River"})
	out := post(t, srv, "4", Event{Type: EventSetDraft, Text: "hel"})

	assert.Equal(t, "Thandi", out.State.Signup.FirstName)
	assert.Equal(t, "up", out.State.Institution)
	assert.Equal(t, "White River", out.State.Location)
	assert.Equal(t, "hel", out.State.Draft)

	out = post(t, srv, "4", Event{Type: EventSendQuickReply, Text: "I'm here"})
	require.Len(t, out.State.Chat, 1)
	assert.False(t, out.State.IsTyping)
}

func TestDeleteSessionCancelsTimers(t *testing.T) {
	srv, clk := newTestServer(t)

	post(t, srv, "5", Event{Type: EventBeginVerification})
	sess, err := srv.svc.APISession().Get(5)
	require.NoError(t, err)
	require.Equal(t, 1, sess.Pending())

	rec := do(t, srv, http.MethodDelete, "/api/v1/sessions/5", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, sess.Pending())
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/api/v1/sessions/5", nil).Code)

	clk.Add(time.Minute)
	assert.False(t, sess.Snapshot().IsVerified)
}

func TestAPICannotReachChatSessions(t *testing.T) {
	srv, _ := newTestServer(t)
	chat := srv.svc.Session().Open(42)
	chat.Navigate(models.ScreenHome)

	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/api/v1/sessions/42", nil).Code)

	out := post(t, srv, "42", Event{Type: EventNavigate, Screen: "profile"})
	assert.Equal(t, models.ScreenProfile, out.State.Screen)
	assert.Equal(t, models.ScreenHome, chat.Snapshot().Screen)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodDelete, "/api/v1/sessions/7", nil).Code)
	assert.Equal(t, 1, srv.svc.Session().Count())
}
