package shell

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10Draken01/Docker-Front/internal/event"
	"github.com/10Draken01/Docker-Front/internal/form"
	"github.com/10Draken01/Docker-Front/internal/model"
)

// fakeAPI is an in-memory roster API. A nil result field makes the call
// fail the way the real client collapses failures.
type fakeAPI struct {
	mu       sync.Mutex
	list     []model.User
	created  *model.User
	updated  *model.User
	deleteOK bool

	onList      func()
	lastPatch   model.UserPatch
	lastID      string
	createCalls int
	deleteCalls int
}

func (f *fakeAPI) ListUsers(context.Context) []model.User {
	if f.onList != nil {
		f.onList()
	}
	return f.list
}

func (f *fakeAPI) GetUser(_ context.Context, id string) (model.User, bool) {
	for _, u := range f.list {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

func (f *fakeAPI) CreateUser(context.Context, model.UserCreationData) (model.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.created == nil {
		return model.User{}, false
	}
	return *f.created, true
}

func (f *fakeAPI) UpdateUser(_ context.Context, id string, patch model.UserPatch) (model.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastID, f.lastPatch = id, patch
	if f.updated == nil {
		return model.User{}, false
	}
	return *f.updated, true
}

func (f *fakeAPI) DeleteUser(_ context.Context, id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	f.lastID = id
	return f.deleteOK
}

func user(id, name string, level int) model.User {
	return model.User{
		ID:        id,
		Username:  name,
		Class:     model.ClassWarrior,
		Level:     level,
		Element:   model.ElementEarth,
		CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func yes(string) bool { return true }
func no(string) bool  { return false }

func TestLoad_ReplacesCollectionAndFlagsLoadingInFlight(t *testing.T) {
	var seenLoading bool
	api := &fakeAPI{list: []model.User{user("a", "Ana", 3), user("b", "Borin", 8), user("c", "Cira", 12)}}
	app := New(api)
	api.onList = func() { seenLoading = app.Loading() }

	assert.False(t, app.Loading())
	app.Load(context.Background())

	assert.True(t, seenLoading)
	assert.False(t, app.Loading())
	assert.Len(t, app.Users(), 3)

	api.list = nil
	app.Load(context.Background())
	assert.Empty(t, app.Users())
}

func TestCreate_LyraExample(t *testing.T) {
	lyra := model.User{ID: "u1", Username: "Lyra", Class: model.ClassMage, Level: 5, Element: model.ElementFire, AvatarIndex: 0}
	api := &fakeAPI{created: &lyra}
	app := New(api, WithMessageTTL(time.Hour))
	defer app.Close()

	ok := app.Create(context.Background(), model.UserCreationData{Username: "Lyra", Class: model.ClassMage, Level: 5, Element: model.ElementFire})

	require.True(t, ok)
	require.Len(t, app.Users(), 1)
	assert.Equal(t, lyra, app.Users()[0])
	assert.Equal(t, MsgCreated, app.Message())
	assert.False(t, app.Submitting())
}

func TestCreate_FailureLeavesStateUnchanged(t *testing.T) {
	api := &fakeAPI{list: []model.User{user("a", "Ana", 3)}}
	app := New(api)
	app.Load(context.Background())

	assert.False(t, app.Create(context.Background(), model.DefaultCreationData()))
	assert.Len(t, app.Users(), 1)
	assert.Empty(t, app.Message())
	assert.False(t, app.Submitting())
}

func TestUpdate_ReplacesInPlaceAndClearsTarget(t *testing.T) {
	updated := user("b", "Borin", 9)
	api := &fakeAPI{
		list:    []model.User{user("a", "Ana", 3), user("b", "Borin", 8), user("c", "Cira", 12)},
		updated: &updated,
	}
	app := New(api, WithMessageTTL(time.Hour))
	defer app.Close()
	app.Load(context.Background())

	app.EditRequest(app.Users()[1])
	data := app.Users()[1].CreationData()
	data.Level = 9
	require.True(t, app.Update(context.Background(), data))

	users := app.Users()
	require.Len(t, users, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{users[0].ID, users[1].ID, users[2].ID})
	assert.Equal(t, 9, users[1].Level)
	assert.Equal(t, "b", api.lastID)
	require.NotNil(t, api.lastPatch.Level)
	assert.Equal(t, 9, *api.lastPatch.Level)

	_, editing := app.Editing()
	assert.False(t, editing)
	assert.Equal(t, form.ModeCreate, app.Form().Mode())
	assert.Equal(t, MsgUpdated, app.Message())
}

func TestUpdate_WithoutTargetIsNoop(t *testing.T) {
	updated := user("b", "Borin", 9)
	api := &fakeAPI{updated: &updated}
	app := New(api)

	assert.False(t, app.Update(context.Background(), updated.CreationData()))
	assert.Empty(t, api.lastID)
}

func TestUpdate_FailureKeepsTarget(t *testing.T) {
	api := &fakeAPI{list: []model.User{user("a", "Ana", 3)}}
	app := New(api)
	app.Load(context.Background())
	app.EditRequest(app.Users()[0])

	assert.False(t, app.Update(context.Background(), app.Users()[0].CreationData()))
	target, editing := app.Editing()
	assert.True(t, editing)
	assert.Equal(t, "a", target.ID)
	assert.False(t, app.Form().Busy())
}

func TestDelete_DeclinedIssuesNoCall(t *testing.T) {
	api := &fakeAPI{list: []model.User{user("a", "Ana", 3)}, deleteOK: true}
	app := New(api)
	app.Load(context.Background())

	var asked string
	assert.False(t, app.Delete(context.Background(), "a", func(p string) bool { asked = p; return false }))
	assert.Equal(t, ConfirmDelete, asked)
	assert.Zero(t, api.deleteCalls)
	assert.Len(t, app.Users(), 1)

	assert.False(t, app.Delete(context.Background(), "a", nil))
	assert.Zero(t, api.deleteCalls)
}

func TestDelete_ConfirmedRemovesOnlyThatUser(t *testing.T) {
	api := &fakeAPI{list: []model.User{user("a", "Ana", 3), user("b", "Borin", 8)}, deleteOK: true}
	app := New(api, WithMessageTTL(time.Hour))
	defer app.Close()
	app.Load(context.Background())

	require.True(t, app.Delete(context.Background(), "a", yes))
	users := app.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "b", users[0].ID)
	assert.Equal(t, MsgDeleted, app.Message())
}

func TestDelete_ServerFailureKeepsUser(t *testing.T) {
	api := &fakeAPI{list: []model.User{user("a", "Ana", 3)}}
	app := New(api)
	app.Load(context.Background())

	assert.False(t, app.Delete(context.Background(), "a", yes))
	assert.Equal(t, 1, api.deleteCalls)
	assert.Len(t, app.Users(), 1)
}

func TestEditRequest_ReplacesTargetAndCancelReturnsToCreate(t *testing.T) {
	app := New(&fakeAPI{})
	app.EditRequest(user("a", "Ana", 3))
	app.EditRequest(user("b", "Borin", 8))

	target, ok := app.Editing()
	require.True(t, ok)
	assert.Equal(t, "b", target.ID)
	assert.Equal(t, form.ModeEdit, app.Form().Mode())
	assert.Equal(t, "Borin", app.Form().Draft().Username)

	app.CancelEdit()
	_, ok = app.Editing()
	assert.False(t, ok)
	assert.Equal(t, model.DefaultCreationData(), app.Form().Draft())
}

func TestSubmitForm_RoutesByMode(t *testing.T) {
	created := user("n", "Nia", 1)
	updated := user("a", "Ana", 4)
	api := &fakeAPI{list: []model.User{user("a", "Ana", 3)}, created: &created, updated: &updated}
	app := New(api, WithMessageTTL(time.Hour))
	defer app.Close()
	app.Load(context.Background())

	submitted, confirmed := app.SubmitForm(context.Background())
	assert.False(t, submitted)
	assert.False(t, confirmed)
	assert.Equal(t, form.MsgUsernameRequired, app.Form().Error(form.FieldUsername))

	app.Form().SetField(form.FieldUsername, "Nia")
	submitted, confirmed = app.SubmitForm(context.Background())
	assert.True(t, submitted)
	assert.True(t, confirmed)
	assert.Equal(t, 1, api.createCalls)
	assert.Equal(t, "", app.Form().Draft().Username)

	app.EditRequest(app.Users()[0])
	app.Form().SetField(form.FieldLevel, "4")
	submitted, confirmed = app.SubmitForm(context.Background())
	assert.True(t, submitted)
	assert.True(t, confirmed)
	assert.Equal(t, "a", api.lastID)
	assert.Equal(t, 4, app.Users()[0].Level)
	assert.Equal(t, form.ModeCreate, app.Form().Mode())
}

func TestMessage_AutoClearsAndNewerRestartsDelay(t *testing.T) {
	created := user("n", "Nia", 1)
	api := &fakeAPI{created: &created, deleteOK: true}
	em := event.NewEventManager(nil)
	cleared := make(chan struct{}, 4)
	em.Subscribe(event.StatusCleared, func(event.Event) { cleared <- struct{}{} })

	app := New(api, WithEvents(em), WithMessageTTL(200*time.Millisecond))
	defer app.Close()

	app.Create(context.Background(), created.CreationData())
	time.Sleep(120 * time.Millisecond)
	app.Delete(context.Background(), "n", yes)
	time.Sleep(120 * time.Millisecond)

	// The first message's deadline has passed but the newer one is still fresh.
	assert.Equal(t, MsgDeleted, app.Message())

	assert.Eventually(t, func() bool { return app.Message() == "" }, time.Second, 10*time.Millisecond)
	select {
	case <-cleared:
	case <-time.After(time.Second):
		t.Fatal("StatusCleared not published")
	}
	em.Wait()
	assert.Len(t, cleared, 0)
}

func TestEvents_PublishedOnConfirmedOutcomes(t *testing.T) {
	created := user("n", "Nia", 1)
	api := &fakeAPI{list: []model.User{user("a", "Ana", 3)}, created: &created, deleteOK: true}
	em := event.NewEventManager(nil)

	var mu sync.Mutex
	var seen []event.EventType
	for _, typ := range []event.EventType{event.RosterLoaded, event.UserCreated, event.UserDeleted} {
		em.Subscribe(typ, func(e event.Event) {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, e.Type)
		})
	}

	app := New(api, WithEvents(em), WithMessageTTL(time.Hour))
	defer app.Close()
	app.Load(context.Background())
	app.Create(context.Background(), created.CreationData())
	app.Delete(context.Background(), "a", no)
	app.Delete(context.Background(), "a", yes)
	em.Wait()

	assert.ElementsMatch(t, []event.EventType{event.RosterLoaded, event.UserCreated, event.UserDeleted}, seen)
}
