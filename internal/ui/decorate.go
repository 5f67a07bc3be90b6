package ui

import (
	"fmt"
	"time"

	"github.com/10Draken01/Docker-Front/internal/model"
)

const (
	HighlightLevel = 70
	GoldLevel      = 90
	CrownLevel     = 100
)

// BorderKind is the card frame derived from a user's level.
type BorderKind int

const (
	BorderNone BorderKind = iota
	BorderHighlight
	BorderGold
)

// Decoration holds everything the list derives from a user for display.
type Decoration struct {
	Icon   string
	Color  model.ColorToken
	Joined string
	Avatar string
	Border BorderKind
	Crown  bool
}

// Decorate derives the display decorations of u.
func Decorate(u model.User) Decoration {
	d := Decoration{
		Icon:   u.Class.Icon(),
		Color:  u.Element.Color(),
		Joined: JoinedDate(u.CreatedAt),
		Avatar: model.AvatarPath(u.AvatarIndex),
		Crown:  u.Level == CrownLevel,
	}
	switch {
	case u.Level >= GoldLevel:
		d.Border = BorderGold
	case u.Level >= HighlightLevel:
		d.Border = BorderHighlight
	}
	return d
}

var spanishMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sept", "oct", "nov", "dic",
}

// JoinedDate formats t in the local time zone as a short Spanish date
// such as "2 ene 2025".
func JoinedDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	t = t.Local()
	return fmt.Sprintf("%d %s %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
