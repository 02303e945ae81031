package bot

var messages = map[string]map[string]string{
	"en": {
		"welcome_title":    "🎓 <b>VAR LIFE</b>",
		"welcome_tagline":  "Student rides, verified and safe",
		"welcome_region":   "Nelspruit • White River • Mpumalanga",
		"btn_get_started":  "Get Started",
		"btn_have_account": "I already have an account",

		"signup_title":    "<b>Create your account</b>",
		"signup_subtitle": "Join the verified student community in Mpumalanga",
		"signup_prompt":   "✏️ Send your %s",
		"signup_done":     "✅ All set! Continue to verification.",
		"signup_terms":    "By continuing, you agree to our Terms of Service and Privacy Policy",
		"btn_continue":    "Continue to Student Verification",

		"login_title":    "<b>Welcome back</b>",
		"login_subtitle": "Sign in to your VAR LIFE account",
		"btn_sign_in":    "Sign In",

		"verify_title":       "<b>Student verification</b>",
		"verify_subtitle":    "Select your institution and upload your Student ID or Enrollment Letter",
		"verify_institution": "🏫 Institution: %s",
		"verify_in_progress": "⏳ <b>Verifying your student status...</b>\nThis may take a moment",
		"verify_done":        "✅ <b>Verification complete!</b>\nWelcome to VAR LIFE Mpumalanga",
		"btn_verify":         "Verify Student Status",

		"home_location":     "📍 Current location: %s",
		"home_search":       "🔍 Search: %s",
		"home_search_hint":  "🔍 Send a message to search places",
		"home_where":        "<b>Where to?</b>",
		"home_no_places":    "No places match your search.",
		"home_favorites":    "<b>Favorites</b>",
		"home_choose":       "<b>Choose a ride</b>",
		"home_recent":       "<b>Recent rides</b>",
		"btn_clear_search":  "✖ Clear search",
		"btn_profile":       "👤 Profile",
		"btn_current_ride":  "🚗 Current ride",
		"toast_favorited":   "Saved to favorites",
		"toast_already_fav": "Already in favorites",

		"matching_title":   "🔎 <b>Finding your driver...</b>",
		"matching_ride":    "Looking for %s",
		"matching_generic": "Matching with nearby drivers",
		"toast_matching":   "Already finding you a driver",

		"tracking_title":    "<b>Your driver is on the way</b> • ETA %s",
		"tracking_pickup":   "📍 Pickup: Local University Campus - Main Entrance",
		"tracking_dropoff":  "🏁 Drop-off: Riverside Mall - Nelspruit",
		"tracking_fare":     "💰 Trip fare: %s",
		"tracking_discount": "🎓 Student discount: %s",
		"tracking_no_ride":  "No ride selected yet.",
		"btn_message":       "💬 Message driver",
		"btn_message_new":   "💬 Message driver (%d new)",
		"btn_home":          "🏠 Home",

		"chat_header":   "💬 <b>%s</b> • Your driver • %s",
		"chat_empty":    "No messages yet.",
		"chat_typing":   "<i>%s is typing…</i>",
		"chat_hint":     "Send a message or pick a quick reply.",
		"chat_you":      "You",
		"btn_back_ride": "⬅ Back to ride",

		"profile_title":       "<b>Profile</b>",
		"profile_verified":    "🟢 Verified Student",
		"profile_unverified":  "⚪ Not verified yet",
		"profile_stats":       "🚗 Rides: %d • ⭐ Favorites: %d",
		"profile_institution": "🏫 %s",
		"profile_default":     "Student",

		"btn_back":        "⬅ Back",
		"toast_unknown":   "Unknown action",
		"toast_verifying": "Verification already in progress",
	},
}

func msg(key string) string {
	return messages["en"][key]
}
