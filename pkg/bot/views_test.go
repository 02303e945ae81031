package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"varlife/pkg/models"
	"varlife/pkg/session"
)

func TestRenderEveryScreen(t *testing.T) {
	cat := models.DefaultCatalog()
	for _, screen := range models.Screens {
		v := render(session.State{Screen: screen, Location: "Nelspruit"}, cat)
		assert.NotEmpty(t, v.Text, screen)
	}
}

func TestRenderTrackingWithoutRide(t *testing.T) {
	v := render(session.State{Screen: models.ScreenTracking}, models.DefaultCatalog())
	assert.Contains(t, v.Text, "No ride selected")
	assert.Contains(t, v.Text, "MHL-123-GP")
}

func TestRenderMatching(t *testing.T) {
	cat := models.DefaultCatalog()
	ride, _ := cat.RideByID("latenight")

	v := render(session.State{Screen: models.ScreenMatching, SelectedRide: ride}, cat)
	assert.Contains(t, v.Text, "Looking for Safe Night Ride")
	assert.Nil(t, v.Markup)
	assert.Len(t, v.options(), 1)
}

func TestRenderChatTranscript(t *testing.T) {
	cat := models.DefaultCatalog()
	at := time.Date(2024, 3, 1, 9, 5, 0, 0, time.UTC)
	st := session.State{
		Screen: models.ScreenChat,
		Chat: []models.ChatMessage{
			{ID: 1, Sender: models.SenderDriver, Text: "Hello", Timestamp: at},
			{ID: 2, Sender: models.SenderUser, Text: "Hi & bye", Timestamp: at},
		},
	}

	v := render(st, cat)
	assert.Contains(t, v.Text, "<code>09:05</code> <b>Sarah:</b> Hello")
	assert.Contains(t, v.Text, "<b>You:</b> Hi &amp; bye")

	quick := inlineData(v)[uniqueQuick]
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, quick)
}

func TestRenderProfile(t *testing.T) {
	cat := models.DefaultCatalog()
	st := session.State{
		Screen:      models.ScreenProfile,
		IsVerified:  true,
		Institution: "wits",
		Favorites:   []string{"White River"},
		Signup:      models.SignupForm{FirstName: "John", LastName: "Doe", Email: "john.doe@university.ac.za"},
	}

	v := render(st, cat)
	assert.Contains(t, v.Text, "<b>John Doe</b>")
	assert.Contains(t, v.Text, "Verified Student")
	assert.Contains(t, v.Text, "University of the Witwatersrand")
	assert.Contains(t, v.Text, "Rides: 0 • ⭐ Favorites: 1")
}

func TestRenderHomeShowsCurrentRideButton(t *testing.T) {
	cat := models.DefaultCatalog()

	v := render(session.State{Screen: models.ScreenHome}, cat)
	assert.NotContains(t, inlineData(v)[uniqueNav], "tracking")
	assert.Len(t, inlineData(v)[uniqueRide], 5)

	v = render(session.State{Screen: models.ScreenHome, RideInProgress: true}, cat)
	assert.Contains(t, inlineData(v)[uniqueNav], "tracking")
}

func TestRenderVerificationAlwaysHasWayOut(t *testing.T) {
	cat := models.DefaultCatalog()

	v := render(session.State{Screen: models.ScreenVerification, IsVerifying: true}, cat)
	assert.NotNil(t, v.Markup)
	assert.Equal(t, []string{"signup"}, inlineData(v)[uniqueNav])
	assert.NotContains(t, inlineData(v), uniqueVerify)

	v = render(session.State{Screen: models.ScreenVerification, IsVerified: true}, cat)
	assert.NotNil(t, v.Markup)
	assert.Equal(t, []string{"home", "signup"}, inlineData(v)[uniqueNav])
}
