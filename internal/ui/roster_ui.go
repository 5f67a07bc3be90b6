package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/10Draken01/Docker-Front/internal/model"
)

const (
	BannerTitle    = "✨ Gremio de Aventureros ✨"
	BannerSubtitle = "Registro mágico de héroes y heroínas"
	ListTitle      = "Aventureros del Reino"
	LoadingText    = "Invocando a los aventureros..."
	EmptyIcon      = "🍺"
	EmptyText      = "No hay aventureros en la taberna..."
	EmptyCallout   = "¡Crea tu primer aventurero ahora!"
	ElementMarker  = "✧"
	CrownBadge     = "👑"

	headlineKey = "roster.headline"
)

func init() {
	message.Set(language.Spanish, headlineKey, plural.Selectf(1, "%d",
		plural.One, "%[1]d aventurero preparados para la batalla",
		plural.Other, "%[1]d aventureros preparados para la batalla",
	))
}

// RosterList is the list component: a user collection plus the edit and
// delete actions. Rows are addressed by 1-based position or by id.
type RosterList struct {
	Users    []model.User
	OnEdit   func(model.User)
	OnDelete func(id string)
}

// Find resolves ref to a user, trying the position first.
func (l RosterList) Find(ref string) (model.User, bool) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(l.Users) {
		return l.Users[n-1], true
	}
	for _, u := range l.Users {
		if u.ID == ref {
			return u, true
		}
	}
	return model.User{}, false
}

// Edit hands the referenced user to OnEdit.
func (l RosterList) Edit(ref string) bool {
	u, ok := l.Find(ref)
	if !ok || l.OnEdit == nil {
		return false
	}
	l.OnEdit(u)
	return true
}

// Delete hands the referenced user's id to OnDelete. No confirmation is
// asked here.
func (l RosterList) Delete(ref string) bool {
	u, ok := l.Find(ref)
	if !ok || l.OnDelete == nil {
		return false
	}
	l.OnDelete(u.ID)
	return true
}

// RosterUI renders the banner, the roster and single adventurers.
type RosterUI struct {
	ui      *UI
	styles  Styles
	printer *message.Printer
}

func NewRosterUI(u *UI) *RosterUI {
	return &RosterUI{
		ui:      u,
		styles:  NewStyles(lipgloss.NewRenderer(u.Writer()), u.UseColor()),
		printer: message.NewPrinter(language.Spanish),
	}
}

// Headline returns the pluralised roster count line.
func (r *RosterUI) Headline(n int) string {
	return r.printer.Sprintf(headlineKey, n)
}

func (r *RosterUI) Banner() {
	r.ui.Println(r.styles.Title.Render(BannerTitle))
	r.ui.Println(r.styles.Subtitle.Render(BannerSubtitle))
	r.ui.Println("")
}

func (r *RosterUI) Loading() {
	r.ui.Println(r.styles.Muted.Render(LoadingText))
}

// List renders the whole roster, or the loading line while loading.
func (r *RosterUI) List(users []model.User, loading bool) {
	if loading {
		r.Loading()
		return
	}
	r.ui.Println(r.styles.Title.Render(ListTitle))
	r.ui.Println(r.styles.Subtitle.Render(r.Headline(len(users))))

	if len(users) == 0 {
		r.ui.Println(EmptyIcon)
		r.ui.Println(r.styles.Muted.Render(EmptyText))
		r.ui.Println(r.styles.Title.Render(EmptyCallout))
		return
	}
	for i, u := range users {
		r.ui.Println(r.Card(i+1, u))
	}
}

// Card renders one adventurer framed according to its level.
func (r *RosterUI) Card(position int, u model.User) string {
	d := Decorate(u)

	header := fmt.Sprintf("%s %s%s",
		r.styles.Muted.Render(fmt.Sprintf("#%d", position)),
		r.styles.Name.Render(u.Username),
		r.styles.LevelBadge.Render(fmt.Sprintf("Nvl. %d", u.Level)),
	)
	if d.Crown {
		header += " " + r.styles.Crown.Render(CrownBadge)
	}

	details := fmt.Sprintf("%s %s   %s   %s",
		d.Icon, u.Class,
		r.styles.Element(d.Color).Render(ElementMarker+" "+string(u.Element)),
		r.styles.Muted.Render("Unido "+d.Joined),
	)
	footer := r.styles.Muted.Render(fmt.Sprintf("id %s · avatar %s", u.ID, d.Avatar))

	return r.styles.CardFor(d.Border).Render(strings.Join([]string{header, details, footer}, "\n"))
}

// Detail prints every field of u, used by the show command.
func (r *RosterUI) Detail(u model.User) {
	d := Decorate(u)
	rows := [][2]string{
		{"Id", u.ID},
		{"Nombre de Usuario", u.Username},
		{"Clase", d.Icon + " " + string(u.Class)},
		{"Nivel", strconv.Itoa(u.Level)},
		{"Elemento", ElementMarker + " " + string(u.Element)},
		{"Avatar", d.Avatar},
		{"Unido", d.Joined},
		{"Actualizado", JoinedDate(u.UpdatedAt)},
	}
	for _, row := range rows {
		value := row[1]
		if row[0] == "Elemento" {
			value = r.styles.Element(d.Color).Render(value)
		}
		r.ui.Println(r.styles.FieldLabel.Render(row[0]) + value)
	}
	if d.Crown {
		r.ui.Println(r.styles.Crown.Render(CrownBadge + " Nivel máximo"))
	}
}

// Guide prints the guild's help card.
func (r *RosterUI) Guide() {
	r.ui.Println(r.styles.Title.Render("Guía del Gremio"))
	r.ui.Println("Bienvenido al Gremio de Aventureros, ¡donde los héroes de todas las clases y elementos se registran para ser reconocidos!")
	r.ui.Println("")
	r.ui.Println(r.styles.Name.Render("Clases de Aventureros"))
	for _, c := range model.CharacterClasses {
		r.ui.Println("  " + c.Icon() + " " + string(c))
	}
	r.ui.Println("")
	r.ui.Println(r.styles.Name.Render("Elementos"))
	for _, e := range model.Elements {
		r.ui.Println("  " + r.styles.Element(e.Color()).Render(ElementMarker+" "+string(e)))
	}
	r.ui.Println("")
	r.ui.Println(r.styles.Muted.Render(fmt.Sprintf(
		"Los aventureros con nivel %d o superior reciben un marco especial, dorado desde el nivel %d.",
		HighlightLevel, GoldLevel)))
}
