package bot

import (
	"strconv"

	"varlife/pkg/logger"
	"varlife/pkg/models"
	"varlife/pkg/session"
)

func (b *Bot) open(chatID int64) *session.Session {
	b.remember(chatID)
	return b.Svc.Session().Open(chatID)
}

// start gives the chat a fresh session on the welcome screen.
func (b *Bot) start(chatID int64) view {
	b.remember(chatID)
	sess := b.Svc.Session().Reset(chatID)
	return render(sess.Snapshot(), b.Svc.Session().Catalog())
}

func (b *Bot) current(chatID int64) view {
	return render(b.open(chatID).Snapshot(), b.Svc.Session().Catalog())
}

// input routes free text according to the screen the chat is on.
func (b *Bot) input(chatID int64, text string) view {
	sess := b.open(chatID)
	st := sess.Snapshot()

	switch st.Screen {
	case models.ScreenSignup:
		if field, ok := st.Signup.NextEmpty(); ok {
			sess.SetSignupField(field, text)
		}
	case models.ScreenHome:
		sess.SetSearchQuery(text)
	case models.ScreenChat:
		sess.SetDraft(text)
		sess.SendMessage(text)
	}
	return render(sess.Snapshot(), b.Svc.Session().Catalog())
}

// action applies an inline button press. The second result is an optional
// toast shown to the user.
func (b *Bot) action(chatID int64, unique, data string) (view, string) {
	sess := b.open(chatID)
	cat := b.Svc.Session().Catalog()
	toast := ""

	switch unique {
	case uniqueNav:
		screen, ok := models.ParseScreen(data)
		if !ok {
			toast = msg("toast_unknown")
			break
		}
		sess.Navigate(screen)
	case uniqueRide:
		ride, ok := cat.RideByID(data)
		if !ok {
			toast = msg("toast_unknown")
			break
		}
		if !sess.RequestRide(ride) {
			toast = msg("toast_matching")
		}
	case uniqueFav:
		area, ok := areaAt(cat, data)
		if !ok {
			toast = msg("toast_unknown")
			break
		}
		if sess.AddFavorite(area) {
			toast = msg("toast_favorited")
		} else {
			toast = msg("toast_already_fav")
		}
	case uniqueArea:
		area, ok := areaAt(cat, data)
		if !ok {
			toast = msg("toast_unknown")
			break
		}
		sess.SetSearchQuery(area)
	case uniqueClear:
		sess.SetSearchQuery("")
	case uniqueQuick:
		i, err := strconv.Atoi(data)
		if err != nil || i < 0 || i >= len(cat.QuickReplies) {
			toast = msg("toast_unknown")
			break
		}
		sess.SendQuickReply(cat.QuickReplies[i])
	case uniqueVerify:
		if !sess.BeginVerification() {
			toast = msg("toast_verifying")
		}
	case uniqueInst:
		if !sess.SelectInstitution(data) {
			toast = msg("toast_unknown")
		}
	default:
		toast = msg("toast_unknown")
	}

	if toast == msg("toast_unknown") {
		b.Log.Warning("unknown callback",
			logger.Int64("chat_id", chatID),
			logger.String("unique", unique),
			logger.String("data", data),
		)
	}
	return render(sess.Snapshot(), cat), toast
}

func areaAt(cat *models.Catalog, data string) (string, bool) {
	i, err := strconv.Atoi(data)
	if err != nil || i < 0 || i >= len(cat.Areas) {
		return "", false
	}
	return cat.Areas[i].Name, true
}
