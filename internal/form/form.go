// Package form holds the adventurer form: a controlled draft, per-field
// validation errors and the submit flow for create and edit modes.
package form

import (
	"strconv"
	"strings"

	"github.com/10Draken01/Docker-Front/internal/model"
)

// Field names accepted by SetField.
const (
	FieldUsername    = "username"
	FieldClass       = "class"
	FieldLevel       = "level"
	FieldElement     = "element"
	FieldAvatarIndex = "avatarIndex"
)

// Validation messages and bounds, as enforced by the API.
const (
	MsgUsernameRequired = model.MsgUsernameRequired
	MsgUsernameShort    = model.MsgUsernameShort
	MsgLevelRange       = model.MsgLevelRange

	MinUsernameLength = model.MinUsernameLength
	MinLevel          = model.MinLevel
	MaxLevel          = model.MaxLevel
)

// Mode tells whether the form creates a new user or edits an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Form is the state of one adventurer form.
type Form struct {
	draft  model.UserCreationData
	errors map[string]string
	mode   Mode
	busy   bool
}

// New returns a create-mode form holding the default draft.
func New() *Form {
	return &Form{
		draft:  model.DefaultCreationData(),
		errors: map[string]string{},
		mode:   ModeCreate,
	}
}

// NewEdit returns an edit-mode form seeded with initial.
func NewEdit(initial model.UserCreationData) *Form {
	f := New()
	f.SetInitial(initial)
	return f
}

// SetInitial replaces the draft wholesale and switches to edit mode.
func (f *Form) SetInitial(initial model.UserCreationData) {
	f.draft = initial
	f.errors = map[string]string{}
	f.mode = ModeEdit
}

// Draft returns a copy of the in-progress data.
func (f *Form) Draft() model.UserCreationData {
	return f.draft
}

// Mode returns the form mode.
func (f *Form) Mode() Mode {
	return f.mode
}

// Errors returns a copy of the field error map.
func (f *Form) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Error returns the validation message for field, if any.
func (f *Form) Error(field string) string {
	return f.errors[field]
}

// SetBusy toggles the in-flight state. While busy every input is disabled.
func (f *Form) SetBusy(busy bool) {
	f.busy = busy
}

// Busy reports whether a submission is in flight.
func (f *Form) Busy() bool {
	return f.busy
}

// SetField updates one draft field from raw input. Numeric fields are
// parsed to integers; an unparsable level becomes 0 so validation flags it.
// Any error recorded for the field is cleared. It reports false when the
// field is unknown or the form is busy.
func (f *Form) SetField(name, raw string) bool {
	if f.busy {
		return false
	}

	switch name {
	case FieldUsername:
		f.draft.Username = raw
	case FieldClass:
		class, _ := model.ParseCharacterClass(strings.TrimSpace(raw))
		f.draft.Class = class
	case FieldLevel:
		level, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			level = 0
		}
		f.draft.Level = level
	case FieldElement:
		element, _ := model.ParseElement(strings.TrimSpace(raw))
		f.draft.Element = element
	case FieldAvatarIndex:
		index, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return false
		}
		f.draft.AvatarIndex = index
	default:
		return false
	}

	delete(f.errors, name)
	return true
}

// PickAvatar selects an avatar from the fixed set.
func (f *Form) PickAvatar(index int) bool {
	if f.busy || !model.ValidAvatar(index) {
		return false
	}
	f.draft.AvatarIndex = index
	return true
}

// Validate checks the draft and replaces the error map with the result.
func (f *Form) Validate() bool {
	errs := map[string]string{}

	name := strings.TrimSpace(f.draft.Username)
	if name == "" {
		errs[FieldUsername] = MsgUsernameRequired
	} else if len([]rune(name)) < MinUsernameLength {
		errs[FieldUsername] = MsgUsernameShort
	}

	if f.draft.Level < MinLevel || f.draft.Level > MaxLevel {
		errs[FieldLevel] = MsgLevelRange
	}

	f.errors = errs
	return len(errs) == 0
}

// Submit validates the draft and, when valid, hands it to onSubmit. A
// create-mode form resets to defaults afterwards; an edit-mode form keeps
// its draft and the caller clears edit mode.
func (f *Form) Submit(onSubmit func(model.UserCreationData)) bool {
	if f.busy {
		return false
	}
	if !f.Validate() {
		return false
	}

	onSubmit(f.draft)

	if f.mode == ModeCreate {
		f.draft = model.DefaultCreationData()
	}
	return true
}

// SubmitLabel is the text of the submit control.
func (f *Form) SubmitLabel() string {
	switch {
	case f.busy:
		return "Invocando..."
	case f.mode == ModeEdit:
		return "Actualizar Aventurero"
	default:
		return "Invocar Aventurero"
	}
}

// Title is the heading shown above the form.
func (f *Form) Title() string {
	if f.mode == ModeEdit {
		return "Editar Aventurero"
	}
	return "Crear Nuevo Aventurero"
}
