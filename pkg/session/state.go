package session

import (
	"varlife/pkg/models"
)

// State is everything a screen renderer may read. Values handed out by the
// session are copies; mutating them has no effect on the session.
type State struct {
	Screen         models.Screen        `json:"screen"`
	IsVerifying    bool                 `json:"is_verifying"`
	IsVerified     bool                 `json:"is_verified"`
	RideInProgress bool                 `json:"ride_in_progress"`
	Loading        bool                 `json:"loading"`
	IsTyping       bool                 `json:"is_typing"`
	SelectedRide   *models.RideOption   `json:"selected_ride,omitempty"`
	RecentRides    []models.RideOption  `json:"recent_rides"`
	Favorites      []string             `json:"favorites"`
	Chat           []models.ChatMessage `json:"chat"`
	SearchQuery    string               `json:"search_query"`
	Draft          string               `json:"draft"`
	Signup         models.SignupForm    `json:"signup"`
	Institution    string               `json:"institution,omitempty"`
	Location       string               `json:"location"`
}

func (s State) clone() State {
	out := s
	if s.SelectedRide != nil {
		r := *s.SelectedRide
		out.SelectedRide = &r
	}
	out.RecentRides = append([]models.RideOption(nil), s.RecentRides...)
	out.Favorites = append([]string(nil), s.Favorites...)
	out.Chat = append([]models.ChatMessage(nil), s.Chat...)
	return out
}

// HasFavorite reports whether location was already saved.
func (s State) HasFavorite(location string) bool {
	for _, f := range s.Favorites {
		if f == location {
			return true
		}
	}
	return false
}

type Reason string

const (
	ReasonNavigate            Reason = "navigate"
	ReasonVerificationStarted Reason = "verification_started"
	ReasonVerified            Reason = "verified"
	ReasonVerifiedRedirect    Reason = "verified_redirect"
	ReasonRideRequested       Reason = "ride_requested"
	ReasonDriverMatched       Reason = "driver_matched"
	ReasonFavoriteAdded       Reason = "favorite_added"
	ReasonSearchChanged       Reason = "search_changed"
	ReasonMessageSent         Reason = "message_sent"
	ReasonQuickReplySent      Reason = "quick_reply_sent"
	ReasonDriverReplied       Reason = "driver_replied"
	ReasonDraftChanged        Reason = "draft_changed"
	ReasonSignupChanged       Reason = "signup_changed"
	ReasonInstitutionSelected Reason = "institution_selected"
	ReasonLocationChanged     Reason = "location_changed"
)

// Change is delivered to listeners after an event has been fully applied.
// Async is set for changes made by a timer rather than a caller.
type Change struct {
	Reason Reason
	Async  bool
	State  State
}

type Listener func(Change)
