package stubapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/10Draken01/Docker-Front/internal/model"
)

func validateUsername(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New(model.MsgUsernameRequired)
	}
	if len([]rune(name)) < model.MinUsernameLength {
		return errors.New(model.MsgUsernameShort)
	}
	return nil
}

func validateLevel(level int) error {
	if level < model.MinLevel || level > model.MaxLevel {
		return errors.New(model.MsgLevelRange)
	}
	return nil
}

func validateClass(c model.CharacterClass) error {
	if !c.Known() {
		return fmt.Errorf("clase desconocida: %q", c)
	}
	return nil
}

func validateElement(e model.Element) error {
	if !e.Known() {
		return fmt.Errorf("elemento desconocido: %q", e)
	}
	return nil
}

func validateAvatar(i int) error {
	if !model.ValidAvatar(i) {
		return fmt.Errorf("avatar fuera de rango: %d", i)
	}
	return nil
}

// ValidateCreation checks every field of a creation request.
func ValidateCreation(d model.UserCreationData) error {
	return errors.Join(
		validateUsername(d.Username),
		validateClass(d.Class),
		validateLevel(d.Level),
		validateElement(d.Element),
		validateAvatar(d.AvatarIndex),
	)
}

// ValidatePatch checks the fields present in p.
func ValidatePatch(p model.UserPatch) error {
	var errs []error
	if p.Username != nil {
		errs = append(errs, validateUsername(*p.Username))
	}
	if p.Class != nil {
		errs = append(errs, validateClass(*p.Class))
	}
	if p.Level != nil {
		errs = append(errs, validateLevel(*p.Level))
	}
	if p.Element != nil {
		errs = append(errs, validateElement(*p.Element))
	}
	if p.AvatarIndex != nil {
		errs = append(errs, validateAvatar(*p.AvatarIndex))
	}
	return errors.Join(errs...)
}
