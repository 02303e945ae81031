package bot

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"

	"varlife/pkg/models"
	"varlife/pkg/session"
)

// Callback uniques. The payload travels in the button data.
const (
	uniqueNav    = "nav"
	uniqueRide   = "ride"
	uniqueFav    = "fav"
	uniqueArea   = "area"
	uniqueQuick  = "quick"
	uniqueVerify = "verify"
	uniqueInst   = "inst"
	uniqueClear  = "clear"
)

var callbackUniques = []string{
	uniqueNav, uniqueRide, uniqueFav, uniqueArea,
	uniqueQuick, uniqueVerify, uniqueInst, uniqueClear,
}

var signupLabels = map[models.SignupField]string{
	models.FieldFirstName: "first name",
	models.FieldLastName:  "last name",
	models.FieldEmail:     "email (e.g. student@university.ac.za)",
	models.FieldPhone:     "phone number (+27)",
	models.FieldPassword:  "password",
}

type view struct {
	Text   string
	Markup *tele.ReplyMarkup
}

func (v view) options() []interface{} {
	opts := []interface{}{tele.ModeHTML}
	if v.Markup != nil {
		opts = append(opts, v.Markup)
	}
	return opts
}

// render turns a session state into the message for its current screen.
func render(st session.State, cat *models.Catalog) view {
	switch st.Screen {
	case models.ScreenWelcome:
		return renderWelcome()
	case models.ScreenSignup:
		return renderSignup(st)
	case models.ScreenLogin:
		return renderLogin()
	case models.ScreenVerification:
		return renderVerification(st, cat)
	case models.ScreenHome:
		return renderHome(st, cat)
	case models.ScreenMatching:
		return renderMatching(st)
	case models.ScreenTracking:
		return renderTracking(st, cat)
	case models.ScreenChat:
		return renderChat(st, cat)
	case models.ScreenProfile:
		return renderProfile(st, cat)
	}
	return renderWelcome()
}

func navBtn(menu *tele.ReplyMarkup, text string, screen models.Screen) tele.Btn {
	return menu.Data(text, uniqueNav, string(screen))
}

func renderWelcome() view {
	text := lines(msg("welcome_title"), msg("welcome_tagline"), msg("welcome_region"))
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(navBtn(menu, msg("btn_get_started"), models.ScreenSignup)),
		menu.Row(navBtn(menu, msg("btn_have_account"), models.ScreenLogin)),
	)
	return view{Text: text, Markup: menu}
}

func renderSignup(st session.State) view {
	var b strings.Builder
	b.WriteString(lines(msg("signup_title"), msg("signup_subtitle")))
	b.WriteString("\n\n")
	for _, field := range models.SignupFields {
		value := st.Signup.Get(field)
		if value == "" {
			value = "—"
		} else if field == models.FieldPassword {
			value = strings.Repeat("•", 8)
		}
		fmt.Fprintf(&b, "%s: %s\n", signupLabels[field], html.EscapeString(value))
	}
	b.WriteString("\n")
	if next, ok := st.Signup.NextEmpty(); ok {
		b.WriteString(fmt.Sprintf(msg("signup_prompt"), signupLabels[next]))
	} else {
		b.WriteString(msg("signup_done"))
	}
	b.WriteString("\n\n<i>" + msg("signup_terms") + "</i>")

	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(navBtn(menu, msg("btn_continue"), models.ScreenVerification)),
		menu.Row(navBtn(menu, msg("btn_back"), models.ScreenWelcome)),
	)
	return view{Text: b.String(), Markup: menu}
}

func renderLogin() view {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(navBtn(menu, msg("btn_sign_in"), models.ScreenHome)),
		menu.Row(navBtn(menu, msg("btn_back"), models.ScreenWelcome)),
	)
	return view{Text: lines(msg("login_title"), msg("login_subtitle")), Markup: menu}
}

func renderVerification(st session.State, cat *models.Catalog) view {
	if st.IsVerifying {
		menu := &tele.ReplyMarkup{}
		menu.Inline(menu.Row(navBtn(menu, msg("btn_back"), models.ScreenSignup)))
		return view{Text: msg("verify_in_progress"), Markup: menu}
	}
	if st.IsVerified {
		menu := &tele.ReplyMarkup{}
		menu.Inline(
			menu.Row(navBtn(menu, msg("btn_home"), models.ScreenHome)),
			menu.Row(navBtn(menu, msg("btn_back"), models.ScreenSignup)),
		)
		return view{Text: msg("verify_done"), Markup: menu}
	}

	text := lines(msg("verify_title"), msg("verify_subtitle"))
	if inst, ok := cat.InstitutionByID(st.Institution); ok {
		text += "\n\n" + fmt.Sprintf(msg("verify_institution"), html.EscapeString(inst.Name))
	}

	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, inst := range cat.Institutions {
		label := inst.Name
		if inst.ID == st.Institution {
			label = "✓ " + label
		}
		rows = append(rows, menu.Row(menu.Data(label, uniqueInst, inst.ID)))
	}
	rows = append(rows,
		menu.Row(menu.Data(msg("btn_verify"), uniqueVerify)),
		menu.Row(navBtn(menu, msg("btn_back"), models.ScreenSignup)),
	)
	menu.Inline(rows...)
	return view{Text: text, Markup: menu}
}

func renderHome(st session.State, cat *models.Catalog) view {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(msg("home_location"), html.EscapeString(st.Location)) + "\n")
	if st.SearchQuery != "" {
		b.WriteString(fmt.Sprintf(msg("home_search"), html.EscapeString(st.SearchQuery)) + "\n")
	} else {
		b.WriteString(msg("home_search_hint") + "\n")
	}

	filtered := session.FilterAreas(cat.AreaNames(), st.SearchQuery)
	b.WriteString("\n" + msg("home_where") + "\n")
	if len(filtered) == 0 {
		b.WriteString(msg("home_no_places") + "\n")
	}

	if len(st.Favorites) > 0 {
		b.WriteString("\n" + msg("home_favorites") + "\n")
		for _, f := range st.Favorites {
			b.WriteString("♥ " + html.EscapeString(f) + "\n")
		}
	}

	b.WriteString("\n" + msg("home_choose") + "\n")
	for _, r := range cat.RideOptions {
		fmt.Fprintf(&b, "• %s — %s, %s\n  <i>%s • %s</i>\n",
			html.EscapeString(r.Name), r.Price(), html.EscapeString(r.WaitTime),
			html.EscapeString(r.Description), html.EscapeString(r.Discount))
	}

	if len(st.RecentRides) > 0 {
		b.WriteString("\n" + msg("home_recent") + "\n")
		for _, r := range st.RecentRides {
			fmt.Fprintf(&b, "↻ %s — %s\n", html.EscapeString(r.Name), r.Price())
		}
	}

	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, name := range filtered {
		idx := strconv.Itoa(areaIndex(cat, name))
		fav := "♡"
		if st.HasFavorite(name) {
			fav = "♥"
		}
		rows = append(rows, menu.Row(
			menu.Data("📍 "+name, uniqueArea, idx),
			menu.Data(fav, uniqueFav, idx),
		))
	}
	for _, r := range cat.RideOptions {
		label := fmt.Sprintf("%s • %s • %s", r.Name, r.Price(), r.WaitTime)
		rows = append(rows, menu.Row(menu.Data(label, uniqueRide, r.ID)))
	}
	if st.SearchQuery != "" {
		rows = append(rows, menu.Row(menu.Data(msg("btn_clear_search"), uniqueClear)))
	}
	footer := []tele.Btn{navBtn(menu, msg("btn_profile"), models.ScreenProfile)}
	if st.RideInProgress {
		footer = append(footer, navBtn(menu, msg("btn_current_ride"), models.ScreenTracking))
	}
	rows = append(rows, menu.Row(footer...))
	menu.Inline(rows...)

	return view{Text: strings.TrimRight(b.String(), "\n"), Markup: menu}
}

func renderMatching(st session.State) view {
	sub := msg("matching_generic")
	if st.SelectedRide != nil {
		sub = fmt.Sprintf(msg("matching_ride"), html.EscapeString(st.SelectedRide.Name))
	}
	return view{Text: lines(msg("matching_title"), sub)}
}

func renderTracking(st session.State, cat *models.Catalog) view {
	d := cat.Driver
	verified := ""
	if d.Verified {
		verified = " ✔️"
	}

	parts := []string{
		fmt.Sprintf(msg("tracking_title"), html.EscapeString(d.ETA)),
		"",
		fmt.Sprintf("👩 <b>%s</b>%s ★%.1f • Student ID: %s", html.EscapeString(d.Name), verified, d.Rating, html.EscapeString(d.StudentID)),
		fmt.Sprintf("%s • %s", html.EscapeString(d.Car), html.EscapeString(d.Plate)),
		"",
		msg("tracking_pickup"),
		msg("tracking_dropoff"),
		"",
	}
	if st.SelectedRide != nil {
		parts = append(parts,
			fmt.Sprintf(msg("tracking_fare"), st.SelectedRide.Price()),
			fmt.Sprintf(msg("tracking_discount"), html.EscapeString(st.SelectedRide.Discount)),
		)
	} else {
		parts = append(parts, msg("tracking_no_ride"))
	}

	chatLabel := msg("btn_message")
	if n := unreadCount(st, cat); n > 0 {
		chatLabel = fmt.Sprintf(msg("btn_message_new"), n)
	}
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(navBtn(menu, chatLabel, models.ScreenChat)),
		menu.Row(navBtn(menu, msg("btn_home"), models.ScreenHome)),
	)
	return view{Text: lines(parts...), Markup: menu}
}

// unreadCount is the number of messages beyond the seed transcript.
func unreadCount(st session.State, cat *models.Catalog) int {
	n := len(st.Chat) - len(cat.SeedTranscript)
	if n < 0 {
		return 0
	}
	return n
}

func renderChat(st session.State, cat *models.Catalog) view {
	d := cat.Driver
	var b strings.Builder
	b.WriteString(fmt.Sprintf(msg("chat_header"), html.EscapeString(d.Name), html.EscapeString(d.Car)) + "\n\n")

	if len(st.Chat) == 0 {
		b.WriteString(msg("chat_empty") + "\n")
	}
	firstName := strings.Fields(d.Name)
	driverName := d.Name
	if len(firstName) > 0 {
		driverName = firstName[0]
	}
	for _, m := range st.Chat {
		who := msg("chat_you")
		if m.Sender == models.SenderDriver {
			who = driverName
		}
		fmt.Fprintf(&b, "<code>%s</code> <b>%s:</b> %s\n", m.Timestamp.Format("15:04"), html.EscapeString(who), html.EscapeString(m.Text))
	}
	if st.IsTyping {
		b.WriteString(fmt.Sprintf(msg("chat_typing"), html.EscapeString(driverName)) + "\n")
	}
	b.WriteString("\n" + msg("chat_hint"))

	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	var row []tele.Btn
	for i, reply := range cat.QuickReplies {
		row = append(row, menu.Data(reply, uniqueQuick, strconv.Itoa(i)))
		if len(row) == 2 {
			rows = append(rows, menu.Row(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, menu.Row(row...))
	}
	rows = append(rows, menu.Row(navBtn(menu, msg("btn_back_ride"), models.ScreenTracking)))
	menu.Inline(rows...)

	return view{Text: b.String(), Markup: menu}
}

func renderProfile(st session.State, cat *models.Catalog) view {
	name := strings.TrimSpace(st.Signup.FirstName + " " + st.Signup.LastName)
	if name == "" {
		name = msg("profile_default")
	}

	parts := []string{msg("profile_title"), "", "<b>" + html.EscapeString(name) + "</b>"}
	if st.Signup.Email != "" {
		parts = append(parts, html.EscapeString(st.Signup.Email))
	}
	if st.IsVerified {
		parts = append(parts, msg("profile_verified"))
	} else {
		parts = append(parts, msg("profile_unverified"))
	}
	if inst, ok := cat.InstitutionByID(st.Institution); ok {
		parts = append(parts, fmt.Sprintf(msg("profile_institution"), html.EscapeString(inst.Name)))
	}
	parts = append(parts, fmt.Sprintf(msg("profile_stats"), len(st.RecentRides), len(st.Favorites)))
	for _, f := range st.Favorites {
		parts = append(parts, "♥ "+html.EscapeString(f))
	}

	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(navBtn(menu, msg("btn_home"), models.ScreenHome)))
	return view{Text: lines(parts...), Markup: menu}
}

func areaIndex(cat *models.Catalog, name string) int {
	for i, a := range cat.Areas {
		if a.Name == name {
			return i
		}
	}
	return -1
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n")
}
