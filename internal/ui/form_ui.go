package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/10Draken01/Docker-Front/internal/form"
	"github.com/10Draken01/Docker-Front/internal/model"
)

// FieldLabels maps form fields to their on-screen labels.
var FieldLabels = map[string]string{
	form.FieldUsername:    "Nombre de Usuario",
	form.FieldClass:       "Clase",
	form.FieldLevel:       "Nivel",
	form.FieldElement:     "Elemento",
	form.FieldAvatarIndex: "Avatar",
}

// FieldOrder is the order fields are shown and prompted.
var FieldOrder = []string{
	form.FieldUsername,
	form.FieldClass,
	form.FieldLevel,
	form.FieldElement,
	form.FieldAvatarIndex,
}

const UsernamePlaceholder = "Ingresa un nombre heroico..."

// Form renders the draft, its field errors and the submit label.
func (r *RosterUI) Form(f *form.Form) {
	d := f.Draft()
	r.ui.Println(r.styles.Title.Render(f.Title()))

	for _, field := range FieldOrder {
		value := FieldValue(d, field)
		switch field {
		case form.FieldUsername:
			if value == "" {
				value = r.styles.Muted.Render(UsernamePlaceholder)
			}
		case form.FieldClass:
			value = d.Class.Icon() + " " + value
		case form.FieldLevel:
			value += r.styles.Muted.Render(fmt.Sprintf(" (%d-%d)", form.MinLevel, form.MaxLevel))
		case form.FieldElement:
			value = r.styles.Element(d.Element.Color()).Render(ElementMarker + " " + value)
		case form.FieldAvatarIndex:
			value += r.styles.Muted.Render(" " + model.AvatarPath(d.AvatarIndex))
		}
		r.ui.Println(r.styles.FieldLabel.Render(FieldLabels[field]) + value)
		if msg := f.Error(field); msg != "" {
			r.ui.Println(r.styles.FieldError.Render(msg))
		}
	}
	r.ui.Println(r.styles.Button.Render(f.SubmitLabel()))
}

// FieldValue returns the draft's raw value for field as typed by a user.
func FieldValue(d model.UserCreationData, field string) string {
	switch field {
	case form.FieldUsername:
		return d.Username
	case form.FieldClass:
		return string(d.Class)
	case form.FieldLevel:
		return strconv.Itoa(d.Level)
	case form.FieldElement:
		return string(d.Element)
	case form.FieldAvatarIndex:
		return strconv.Itoa(d.AvatarIndex)
	default:
		return ""
	}
}

// Choices lists the accepted values of an enumerated field, or nil.
func Choices(field string) []string {
	var out []string
	switch field {
	case form.FieldClass:
		for _, c := range model.CharacterClasses {
			out = append(out, string(c))
		}
	case form.FieldElement:
		for _, e := range model.Elements {
			out = append(out, string(e))
		}
	case form.FieldAvatarIndex:
		for i := range model.AvatarImages {
			out = append(out, strconv.Itoa(i))
		}
	}
	return out
}

// PromptLabel builds the per-field prompt used by the interactive form.
func (u *UI) PromptLabel(field, current string) string {
	label := FieldLabels[field]
	if choices := Choices(field); choices != nil {
		label += " [" + strings.Join(choices, "/") + "]"
	}
	if current != "" {
		label += u.colorize(" ("+current+")", ColorGray)
	}
	return label + ": "
}
