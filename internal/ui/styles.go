package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/10Draken01/Docker-Front/internal/model"
)

var (
	Primary = lipgloss.Color("#8B5CF6")
	Accent  = lipgloss.Color("#22D3EE")
	Gold    = lipgloss.Color("#D4AF37")
	Muted   = lipgloss.Color("#888888")
	Text    = lipgloss.Color("#FFFFFF")
	Danger  = lipgloss.Color("#FF3131")
)

var elementHex = map[model.ColorToken]lipgloss.Color{
	model.ColorTokenRed:         lipgloss.Color("#F87171"),
	model.ColorTokenBlue:        lipgloss.Color("#60A5FA"),
	model.ColorTokenEarth:       lipgloss.Color("#A16207"),
	model.ColorTokenGray:        lipgloss.Color("#D1D5DB"),
	model.ColorTokenLightYellow: lipgloss.Color("#FEF08A"),
	model.ColorTokenPurple:      lipgloss.Color("#A855F7"),
	model.ColorTokenGreen:       lipgloss.Color("#4ADE80"),
	model.ColorTokenIndigo:      lipgloss.Color("#818CF8"),
	model.ColorTokenCyan:        lipgloss.Color("#67E8F9"),
	model.ColorTokenPink:        lipgloss.Color("#EC4899"),
	model.ColorTokenWhite:       Text,
}

// ElementColor resolves a palette token for lipgloss, white when unknown.
func ElementColor(token model.ColorToken) lipgloss.Color {
	if c, ok := elementHex[token]; ok {
		return c
	}
	return Text
}

// Styles groups the lipgloss styles bound to one renderer.
type Styles struct {
	renderer *lipgloss.Renderer

	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Card          lipgloss.Style
	HighlightCard lipgloss.Style
	GoldCard      lipgloss.Style
	Name          lipgloss.Style
	LevelBadge    lipgloss.Style
	Crown         lipgloss.Style
	Muted         lipgloss.Style
	FieldLabel    lipgloss.Style
	FieldError    lipgloss.Style
	Button        lipgloss.Style
}

// NewStyles builds the style set for r. With useColor false every colour
// is stripped and only the border glyphs remain. With useColor true the
// profile is always true colour, even when the writer is not a terminal.
func NewStyles(r *lipgloss.Renderer, useColor bool) Styles {
	if useColor {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	card := r.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Width(60)

	return Styles{
		renderer: r,
		Title: r.NewStyle().
			Foreground(Primary).
			Bold(true),
		Subtitle: r.NewStyle().
			Foreground(Muted),
		Card: card,
		HighlightCard: card.
			Border(lipgloss.ThickBorder()).
			BorderForeground(Primary),
		GoldCard: card.
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Gold),
		Name: r.NewStyle().
			Foreground(Text).
			Bold(true),
		LevelBadge: r.NewStyle().
			Foreground(Accent).
			Padding(0, 1),
		Crown: r.NewStyle().
			Foreground(Gold).
			Bold(true),
		Muted: r.NewStyle().
			Foreground(Muted),
		FieldLabel: r.NewStyle().
			Foreground(Muted).
			Width(20),
		FieldError: r.NewStyle().
			Foreground(Danger).
			PaddingLeft(2),
		Button: r.NewStyle().
			Foreground(Primary).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.NormalBorder()),
	}
}

// Element returns a style painting text in the element's colour.
func (s Styles) Element(token model.ColorToken) lipgloss.Style {
	return s.renderer.NewStyle().Foreground(ElementColor(token))
}

// CardFor picks the card frame for a border kind.
func (s Styles) CardFor(kind BorderKind) lipgloss.Style {
	switch kind {
	case BorderGold:
		return s.GoldCard
	case BorderHighlight:
		return s.HighlightCard
	default:
		return s.Card
	}
}
