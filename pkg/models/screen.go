package models

type Screen string

const (
	ScreenWelcome      Screen = "welcome"
	ScreenSignup       Screen = "signup"
	ScreenLogin        Screen = "login"
	ScreenVerification Screen = "verification"
	ScreenHome         Screen = "home"
	ScreenMatching     Screen = "matching"
	ScreenTracking     Screen = "tracking"
	ScreenChat         Screen = "chat"
	ScreenProfile      Screen = "profile"
)

var Screens = []Screen{
	ScreenWelcome,
	ScreenSignup,
	ScreenLogin,
	ScreenVerification,
	ScreenHome,
	ScreenMatching,
	ScreenTracking,
	ScreenChat,
	ScreenProfile,
}

// ParseScreen reports whether name is one of the known screens.
func ParseScreen(name string) (Screen, bool) {
	for _, s := range Screens {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}
