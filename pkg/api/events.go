package api

import (
	"errors"
	"fmt"

	"varlife/pkg/models"
	"varlife/pkg/session"
)

const (
	EventNavigate          = "navigate"
	EventBeginVerification = "begin_verification"
	EventRequestRide       = "request_ride"
	EventAddFavorite       = "add_favorite"
	EventSetSearchQuery    = "set_search_query"
	EventSendMessage       = "send_message"
	EventSendQuickReply    = "send_quick_reply"
	EventSetDraft          = "set_draft"
	EventSignupField       = "signup_field"
	EventSelectInstitution = "select_institution"
	EventSetLocation       = "set_location"
)

// Event is a single user action posted to a session. Only the fields used by
// Type are read.
type Event struct {
	Type        string `json:"type"`
	Screen      string `json:"screen,omitempty"`
	RideID      string `json:"ride_id,omitempty"`
	Location    string `json:"location,omitempty"`
	Text        string `json:"text"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// apply forwards the event to sess. A malformed event is an error; a
// well-formed event the session ignores reports false.
func (e Event) apply(sess *session.Session, cat *models.Catalog) (bool, error) {
	switch e.Type {
	case EventNavigate:
		screen, ok := models.ParseScreen(e.Screen)
		if !ok {
			return false, fmt.Errorf("unknown screen %q", e.Screen)
		}
		return sess.Navigate(screen), nil
	case EventBeginVerification:
		return sess.BeginVerification(), nil
	case EventRequestRide:
		ride, ok := cat.RideByID(e.RideID)
		if !ok {
			return false, fmt.Errorf("unknown ride option %q", e.RideID)
		}
		return sess.RequestRide(ride), nil
	case EventAddFavorite:
		if e.Location == "" {
			return false, errors.New("location is required")
		}
		return sess.AddFavorite(e.Location), nil
	case EventSetSearchQuery:
		return sess.SetSearchQuery(e.Text), nil
	case EventSendMessage:
		return sess.SendMessage(e.Text), nil
	case EventSendQuickReply:
		if e.Text == "" {
			return false, errors.New("text is required")
		}
		return sess.SendQuickReply(e.Text), nil
	case EventSetDraft:
		return sess.SetDraft(e.Text), nil
	case EventSignupField:
		field := models.SignupField(e.Field)
		if !isSignupField(field) {
			return false, fmt.Errorf("unknown signup field %q", e.Field)
		}
		return sess.SetSignupField(field, e.Text), nil
	case EventSelectInstitution:
		if _, ok := cat.InstitutionByID(e.Institution); !ok {
			return false, fmt.Errorf("unknown institution %q", e.Institution)
		}
		return sess.SelectInstitution(e.Institution), nil
	case EventSetLocation:
		if e.Location == "" {
			return false, errors.New("location is required")
		}
		return sess.SetLocation(e.Location), nil
	}
	return false, fmt.Errorf("unknown event type %q", e.Type)
}

func isSignupField(f models.SignupField) bool {
	for _, known := range models.SignupFields {
		if f == known {
			return true
		}
	}
	return false
}
