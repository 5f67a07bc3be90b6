package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/10Draken01/Docker-Front/internal/form"
	"github.com/10Draken01/Docker-Front/internal/log"
	"github.com/10Draken01/Docker-Front/internal/model"
	"github.com/10Draken01/Docker-Front/internal/storage"
	"github.com/10Draken01/Docker-Front/internal/ui"
)

var errNotConfirmed = errors.New("el servidor no confirmó la operación; revisa el registro de errores")

// fieldAliases maps accepted field=value keys to form fields.
var fieldAliases = map[string]string{
	"username":    form.FieldUsername,
	"name":        form.FieldUsername,
	"nombre":      form.FieldUsername,
	"class":       form.FieldClass,
	"clase":       form.FieldClass,
	"level":       form.FieldLevel,
	"nivel":       form.FieldLevel,
	"element":     form.FieldElement,
	"elemento":    form.FieldElement,
	"avatar":      form.FieldAvatarIndex,
	"avatarindex": form.FieldAvatarIndex,
}

// rosterList binds the list component's actions to the shell.
func (c *CLI) rosterList(ctx context.Context, deleted *bool) ui.RosterList {
	return ui.RosterList{
		Users:  c.app.Users(),
		OnEdit: c.app.EditRequest,
		OnDelete: func(id string) {
			ok := c.app.Delete(ctx, id, c.confirm)
			if deleted != nil {
				*deleted = ok
			}
		},
	}
}

func (c *CLI) handleList(ctx context.Context, args []string) error {
	c.roster.List(c.app.Users(), c.app.Loading())
	return nil
}

func (c *CLI) handleReload(ctx context.Context, args []string) error {
	c.roster.Loading()
	c.app.Load(ctx)
	c.roster.List(c.app.Users(), c.app.Loading())
	return nil
}

func (c *CLI) handleShow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: show <n|id>")
	}
	cached, ok := c.rosterList(ctx, nil).Find(args[0])
	if !ok {
		return fmt.Errorf("aventurero no encontrado: %s", args[0])
	}
	fresh, ok := c.client.GetUser(ctx, cached.ID)
	if !ok {
		c.ui.Warning("No se pudo consultar al servidor; mostrando la copia local.")
		fresh = cached
	}
	c.roster.Detail(fresh)
	return nil
}

func (c *CLI) handleAdd(ctx context.Context, args []string) error {
	if _, editing := c.app.Editing(); editing {
		return fmt.Errorf("hay una edición en curso; usa 'save' o 'cancel' primero")
	}
	return c.fillAndSubmit(ctx, args)
}

func (c *CLI) handleEdit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: edit <n|id>")
	}
	if !c.rosterList(ctx, nil).Edit(args[0]) {
		return fmt.Errorf("aventurero no encontrado: %s", args[0])
	}
	c.roster.Form(c.app.Form())
	return nil
}

func (c *CLI) handleSave(ctx context.Context, args []string) error {
	if _, editing := c.app.Editing(); !editing {
		return fmt.Errorf("no hay ningún aventurero en edición; usa 'edit <n|id>'")
	}
	return c.fillAndSubmit(ctx, args)
}

func (c *CLI) handleForm(ctx context.Context, args []string) error {
	c.roster.Form(c.app.Form())
	return nil
}

func (c *CLI) handleCancel(ctx context.Context, args []string) error {
	if _, editing := c.app.Editing(); !editing {
		c.ui.Info("No hay ninguna edición que cancelar.")
		return nil
	}
	c.app.CancelEdit()
	c.ui.Info("Edición cancelada.")
	return nil
}

func (c *CLI) handleDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: delete <n|id>")
	}
	var deleted bool
	if !c.rosterList(ctx, &deleted).Delete(args[0]) {
		return fmt.Errorf("aventurero no encontrado: %s", args[0])
	}
	if deleted {
		c.ui.Success(c.app.Message())
	}
	return nil
}

func (c *CLI) handleExport(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("uso: export <archivo> [json|xml]")
	}
	filename := args[0]
	format := storage.FormatFromFilename(filename)
	if len(args) == 2 {
		format = strings.ToLower(args[1])
	}

	roster := &model.Roster{ExportedAt: time.Now().UTC(), Users: c.app.Users()}
	if err := storage.FileExport(roster, filename, format); err != nil {
		return fmt.Errorf("no se pudo exportar: %w", err)
	}
	c.logger.Info(ctx, "Roster exported", log.Fields{"file": filename, "format": format, "count": len(roster.Users)})
	c.ui.Success(fmt.Sprintf("%d aventureros exportados a %s", len(roster.Users), filename))
	return nil
}

func (c *CLI) handleStatus(ctx context.Context, args []string) error {
	c.ui.Info(c.roster.Headline(len(c.app.Users())))
	if target, ok := c.app.Editing(); ok {
		c.ui.Info(fmt.Sprintf("Editando: %s (%s)", target.Username, target.ID))
	} else {
		c.ui.Info("Modo: creación")
	}
	if msg := c.app.Message(); msg != "" {
		c.ui.Success(msg)
	}
	return nil
}

func (c *CLI) handleGuide(ctx context.Context, args []string) error {
	c.roster.Guide()
	return nil
}

// fillAndSubmit applies field=value arguments, or prompts for every field
// when none are given, then submits the current form.
func (c *CLI) fillAndSubmit(ctx context.Context, args []string) error {
	f := c.app.Form()
	if len(args) > 0 {
		for _, arg := range args {
			if err := c.applyAssignment(f, arg); err != nil {
				return err
			}
		}
	} else if err := c.promptForm(f); err != nil {
		return err
	}

	submitted, confirmed := c.app.SubmitForm(ctx)
	switch {
	case !submitted:
		c.roster.Form(f)
		return fmt.Errorf("el formulario tiene errores")
	case !confirmed:
		return errNotConfirmed
	default:
		c.ui.Success(c.app.Message())
		return nil
	}
}

func (c *CLI) applyAssignment(f *form.Form, arg string) error {
	key, value, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("se esperaba campo=valor, recibido %q", arg)
	}
	field, ok := fieldAliases[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return fmt.Errorf("campo desconocido: %s", key)
	}
	return c.setField(f, field, value)
}

// setField mirrors the browser form's controls: enumerations only accept
// listed values and the avatar goes through the picker.
func (c *CLI) setField(f *form.Form, field, value string) error {
	switch field {
	case form.FieldClass:
		if _, ok := model.ParseCharacterClass(strings.TrimSpace(value)); !ok {
			return fmt.Errorf("clase desconocida: %s", value)
		}
	case form.FieldElement:
		if _, ok := model.ParseElement(strings.TrimSpace(value)); !ok {
			return fmt.Errorf("elemento desconocido: %s", value)
		}
	case form.FieldAvatarIndex:
		index, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || !f.PickAvatar(index) {
			return fmt.Errorf("avatar inválido: %s", value)
		}
		return nil
	}
	if !f.SetField(field, value) {
		return fmt.Errorf("no se puede modificar %s ahora", field)
	}
	return nil
}

// promptForm asks for every field in order; an empty answer keeps the
// current value.
func (c *CLI) promptForm(f *form.Form) error {
	c.ui.PrintlnColored(f.Title(), ui.ColorLightPurple)
	for _, field := range ui.FieldOrder {
		current := ui.FieldValue(f.Draft(), field)
		for {
			answer, err := c.promptForInput(c.ui.PromptLabel(field, current))
			if err != nil {
				return fmt.Errorf("formulario interrumpido: %w", err)
			}
			if answer == "" {
				break
			}
			if err := c.setField(f, field, answer); err != nil {
				c.ui.Warning(err.Error())
				continue
			}
			break
		}
	}
	return nil
}
