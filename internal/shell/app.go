// Package shell owns the roster client's application state and reconciles
// it with the roster API after each confirmed outcome.
package shell

import (
	"context"
	"sync"
	"time"

	"github.com/10Draken01/Docker-Front/internal/api"
	"github.com/10Draken01/Docker-Front/internal/event"
	"github.com/10Draken01/Docker-Front/internal/form"
	"github.com/10Draken01/Docker-Front/internal/log"
	"github.com/10Draken01/Docker-Front/internal/model"
)

// Status messages shown after confirmed outcomes.
const (
	MsgCreated    = "¡Aventurero invocado correctamente!"
	MsgUpdated    = "¡Aventurero actualizado correctamente!"
	MsgDeleted    = "Aventurero eliminado del registro"
	ConfirmDelete = "¿Estás seguro de que deseas eliminar a este aventurero del reino?"
)

// DefaultMessageTTL is how long a status message stays visible.
const DefaultMessageTTL = 3 * time.Second

// Confirmer asks the user a yes/no question.
type Confirmer func(prompt string) bool

// App is the single owner of the roster view state. Its methods are meant
// to be called from one goroutine; the mutex only covers the status timer.
type App struct {
	client api.UserAPI
	events *event.EventManager
	logger *log.Logger
	ttl    time.Duration

	mu         sync.Mutex
	users      []model.User
	loading    bool
	submitting bool
	editing    *model.User
	form       *form.Form
	message    string
	messageGen uint64
	timer      *time.Timer
}

// Option configures an App.
type Option func(*App)

func WithEvents(em *event.EventManager) Option {
	return func(a *App) { a.events = em }
}

func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithMessageTTL overrides DefaultMessageTTL. Non-positive values are ignored.
func WithMessageTTL(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.ttl = d
		}
	}
}

func New(client api.UserAPI, opts ...Option) *App {
	a := &App{
		client: client,
		ttl:    DefaultMessageTTL,
		users:  []model.User{},
		form:   form.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = log.NewNopLogger()
	}
	return a
}

// Load replaces the whole collection with the server's list.
func (a *App) Load(ctx context.Context) {
	a.mu.Lock()
	a.loading = true
	a.mu.Unlock()

	users := a.client.ListUsers(ctx)

	a.mu.Lock()
	a.users = append([]model.User{}, users...)
	a.loading = false
	a.mu.Unlock()

	a.logger.Info(ctx, "Roster loaded", log.Fields{"count": len(users)})
	a.events.Publish(event.Event{Type: event.RosterLoaded, Data: len(users)})
}

// Create submits data and appends the server's record on success.
func (a *App) Create(ctx context.Context, data model.UserCreationData) bool {
	a.setSubmitting(true)
	defer a.setSubmitting(false)

	user, ok := a.client.CreateUser(ctx, data)
	if !ok {
		return false
	}

	a.mu.Lock()
	a.users = append(a.users, user)
	a.mu.Unlock()

	a.logger.Info(ctx, "Adventurer created", log.Fields{"id": user.ID, "username": user.Username})
	a.events.Publish(event.Event{Type: event.UserCreated, Data: user})
	a.showMessage(MsgCreated)
	return true
}

// Update sends data for the current edit target. Without a target it does
// nothing and reports false.
func (a *App) Update(ctx context.Context, data model.UserCreationData) bool {
	a.mu.Lock()
	if a.editing == nil {
		a.mu.Unlock()
		return false
	}
	id := a.editing.ID
	a.mu.Unlock()

	a.setSubmitting(true)
	defer a.setSubmitting(false)

	user, ok := a.client.UpdateUser(ctx, id, data.Patch())
	if !ok {
		return false
	}

	a.mu.Lock()
	for i := range a.users {
		if a.users[i].ID == user.ID {
			a.users[i] = user
		}
	}
	a.editing = nil
	a.form = form.New()
	a.mu.Unlock()

	a.logger.Info(ctx, "Adventurer updated", log.Fields{"id": user.ID, "username": user.Username})
	a.events.Publish(event.Event{Type: event.UserUpdated, Data: user})
	a.showMessage(MsgUpdated)
	return true
}

// Delete asks confirm first; a declined confirmation issues no call.
func (a *App) Delete(ctx context.Context, id string, confirm Confirmer) bool {
	if confirm == nil || !confirm(ConfirmDelete) {
		return false
	}
	if !a.client.DeleteUser(ctx, id) {
		return false
	}

	a.mu.Lock()
	kept := a.users[:0]
	for _, u := range a.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	a.users = kept
	a.mu.Unlock()

	a.logger.Info(ctx, "Adventurer deleted", log.Fields{"id": id})
	a.events.Publish(event.Event{Type: event.UserDeleted, Data: id})
	a.showMessage(MsgDeleted)
	return true
}

// EditRequest makes user the edit target, replacing any previous one, and
// seeds the form with its fields.
func (a *App) EditRequest(user model.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	target := user
	a.editing = &target
	a.form = form.NewEdit(user.CreationData())
}

// CancelEdit drops the edit target and returns the form to create mode.
func (a *App) CancelEdit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.editing = nil
	a.form = form.New()
}

// SubmitForm validates the current form and routes its draft to Create or
// Update depending on the form's mode.
func (a *App) SubmitForm(ctx context.Context) (submitted, confirmed bool) {
	f := a.Form()
	submitted = f.Submit(func(data model.UserCreationData) {
		if f.Mode() == form.ModeEdit {
			confirmed = a.Update(ctx, data)
		} else {
			confirmed = a.Create(ctx, data)
		}
	})
	return submitted, confirmed
}

// Form returns the form currently shown: the edit form while an edit
// target exists, the create form otherwise.
func (a *App) Form() *form.Form {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.form
}

// Users returns a copy of the collection in display order.
func (a *App) Users() []model.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]model.User{}, a.users...)
}

func (a *App) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

func (a *App) Submitting() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.submitting
}

// Editing returns the edit target, if any.
func (a *App) Editing() (model.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.editing == nil {
		return model.User{}, false
	}
	return *a.editing, true
}

// Message returns the visible status message, empty when none.
func (a *App) Message() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message
}

// Close stops a pending message timer.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *App) setSubmitting(v bool) {
	a.mu.Lock()
	a.submitting = v
	f := a.form
	a.mu.Unlock()
	f.SetBusy(v)
}

// showMessage sets msg and schedules its removal. A newer message restarts
// the delay; a stale timer never clears a newer message.
func (a *App) showMessage(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.message = msg
	a.messageGen++
	gen := a.messageGen
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.ttl, func() {
		a.mu.Lock()
		if a.messageGen != gen {
			a.mu.Unlock()
			return
		}
		a.message = ""
		a.timer = nil
		a.mu.Unlock()
		a.events.Publish(event.Event{Type: event.StatusCleared})
	})
}
