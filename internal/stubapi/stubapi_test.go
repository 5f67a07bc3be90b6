package stubapi

import (
	"context"
	"encoding/json"
	"go/parser"
	"go/token"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10Draken01/Docker-Front/internal/api"
	"github.com/10Draken01/Docker-Front/internal/model"
	"github.com/10Draken01/Docker-Front/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &model.Config{DatabaseDir: t.TempDir(), DatabaseFile: "roster.db"}
	store, err := storage.NewStorage(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ts := httptest.NewServer(NewServer("", store, nil).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func lyraData() model.UserCreationData {
	return model.UserCreationData{Username: "Lyra", Class: model.ClassMage, Level: 5, Element: model.ElementFire}
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestClientRoundTrip_AgainstStub(t *testing.T) {
	ts := newTestServer(t)
	client := api.NewClient(ts.URL + APIPrefix)
	ctx := context.Background()

	assert.Empty(t, client.ListUsers(ctx))

	created, ok := client.CreateUser(ctx, lyraData())
	require.True(t, ok)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Lyra", created.Username)
	assert.Equal(t, 5, created.Level)
	assert.False(t, created.CreatedAt.IsZero())

	got, ok := client.GetUser(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, created.ID, got.ID)

	level := 100
	updated, ok := client.UpdateUser(ctx, created.ID, model.UserPatch{Level: &level})
	require.True(t, ok)
	assert.Equal(t, 100, updated.Level)
	assert.Equal(t, "Lyra", updated.Username)

	users := client.ListUsers(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, 100, users[0].Level)

	assert.True(t, client.DeleteUser(ctx, created.ID))
	assert.False(t, client.DeleteUser(ctx, created.ID))
	_, ok = client.GetUser(ctx, created.ID)
	assert.False(t, ok)
}

func TestCreate_RejectsInvalidData(t *testing.T) {
	ts := newTestServer(t)

	cases := map[string]string{
		"short name":    `{"username":"ab","class":"Mago","level":5,"element":"Fuego","avatarIndex":0}`,
		"level":         `{"username":"Lyra","class":"Mago","level":101,"element":"Fuego","avatarIndex":0}`,
		"class":         `{"username":"Lyra","class":"Pirata","level":5,"element":"Fuego","avatarIndex":0}`,
		"element":       `{"username":"Lyra","class":"Mago","level":5,"element":"Plasma","avatarIndex":0}`,
		"avatar":        `{"username":"Lyra","class":"Mago","level":5,"element":"Fuego","avatarIndex":7}`,
		"unknown field": `{"username":"Lyra","id":"forged"}`,
		"not json":      `nope`,
	}
	for name, body := range cases {
		resp, err := http.Post(ts.URL+"/api/users", "application/json", strings.NewReader(body))
		require.NoError(t, err, name)
		assert.GreaterOrEqual(t, resp.StatusCode, 400, name)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, false, env["success"], name)
		assert.NotEmpty(t, env["error"], name)
		assert.Nil(t, env["data"], name)
	}
}

func TestUpdate_ValidatesOnlyPresentFields(t *testing.T) {
	ts := newTestServer(t)
	client := api.NewClient(ts.URL + APIPrefix)
	created, ok := client.CreateUser(context.Background(), lyraData())
	require.True(t, ok)

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/users/"+created.ID, strings.NewReader(`{"level":0}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Contains(t, env["error"], "El nivel debe estar entre 1 y 100")

	req, err = http.NewRequest(http.MethodPut, ts.URL+"/api/users/"+created.ID, strings.NewReader(`{"element":"Caos"}`))
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	data := env["data"].(map[string]any)
	assert.Equal(t, "Caos", data["element"])
	assert.Equal(t, "Lyra", data["username"])
}

func TestUnknownRoute_ReturnsEnvelope(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/guilds")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, false, env["success"])
}

func TestServe_StopsWhenContextEnds(t *testing.T) {
	cfg := &model.Config{DatabaseDir: t.TempDir(), DatabaseFile: "roster.db"}
	store, err := storage.NewStorage(cfg, nil)
	require.NoError(t, err)
	defer store.Close()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewServer("", store, nil).Serve(ctx, ln) }()

	client := api.NewClient("http://" + ln.Addr().String() + APIPrefix)
	assert.Eventually(t, func() bool {
		_, ok := client.CreateUser(context.Background(), lyraData())
		return ok
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestValidateCreation_JoinsEveryProblem(t *testing.T) {
	err := ValidateCreation(model.UserCreationData{Username: " ", Class: "x", Level: 0, Element: "y", AvatarIndex: -1})
	require.Error(t, err)
	msg := err.Error()
	for _, part := range []string{"obligatorio", "clase", "nivel", "elemento", "avatar"} {
		assert.Contains(t, msg, part)
	}
	assert.NoError(t, ValidateCreation(lyraData()))
}

func TestValidate_UsesSharedFieldRules(t *testing.T) {
	err := ValidatePatch(model.UserPatch{Username: ptr("  ab "), Level: ptr(model.MaxLevel + 1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), model.MsgUsernameShort)
	assert.Contains(t, err.Error(), model.MsgLevelRange)
	assert.NoError(t, ValidatePatch(model.UserPatch{Level: ptr(model.MinLevel)}))
}

func TestPackage_DoesNotDependOnClientUI(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		require.NoError(t, err)
		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err)
			for _, banned := range []string{"/internal/form", "/internal/ui", "/internal/cli", "/internal/shell"} {
				assert.False(t, strings.HasSuffix(path, banned), "%s imports %s", name, path)
			}
		}
	}
}

func ptr[T any](v T) *T { return &v }
