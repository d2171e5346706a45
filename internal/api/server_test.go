package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matryer/is"

	"github.com/veldt/taskdeck/pkg/persist"
	"github.com/veldt/taskdeck/pkg/task"
)

func testServer(t *testing.T) (*Server, persist.Persistor) {
	t.Helper()
	store := persist.InJSON(filepath.Join(t.TempDir(), "todos.json"))
	return NewServer(store, log.New(io.Discard)), store
}

func request(t *testing.T, s *Server, method, path, body string) Envelope {
	t.Helper()
	is := is.New(t)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	is.Equal(rec.Code, http.StatusOK) // transport is always 200, the envelope carries the code

	var env Envelope
	is.NoErr(json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func asTask(t *testing.T, data interface{}) task.ToDo {
	t.Helper()
	is := is.New(t)
	bs, err := json.Marshal(data)
	is.NoErr(err)
	var out task.ToDo
	is.NoErr(json.Unmarshal(bs, &out))
	return out
}

func TestServer_ListEmpty(t *testing.T) {
	is := is.New(t)
	s, _ := testServer(t)

	env := request(t, s, http.MethodGet, "/api/todos", "")
	is.Equal(env.Code, 200)
	is.Equal(env.Data, []interface{}{})
}

func TestServer_CreateAssignsIDs(t *testing.T) {
	is := is.New(t)
	s, store := testServer(t)

	// Holes in the id sequence do not get reused.
	is.NoErr(store.Save([]task.ToDo{
		{ID: 1, Text: "a", Deadline: time.UnixMilli(1000)},
		{ID: 3, Text: "b", Deadline: time.UnixMilli(1000)},
		{ID: 4, Text: "c", Deadline: time.UnixMilli(1000)},
	}))

	env := request(t, s, http.MethodPost, "/api/todos", `{"text":"new task","deadline":1767139200000}`)
	is.Equal(env.Code, 200)
	created := asTask(t, env.Data)
	is.Equal(created.ID, 5)
	is.Equal(created.Text, "new task")
	is.Equal(created.Done, false) // done defaults to false when omitted

	ts, err := store.Load()
	is.NoErr(err)
	is.Equal(len(ts), 4)
}

func TestServer_CreateOnEmptyStartsAtOne(t *testing.T) {
	is := is.New(t)
	s, _ := testServer(t)

	env := request(t, s, http.MethodPost, "/api/todos", `{"text":"first","deadline":1767139200000}`)
	is.Equal(asTask(t, env.Data).ID, 1)
}

func TestServer_Get(t *testing.T) {
	is := is.New(t)
	s, store := testServer(t)
	is.NoErr(store.Save([]task.ToDo{{ID: 2, Text: "b", Deadline: time.UnixMilli(1000)}}))

	env := request(t, s, http.MethodGet, "/api/todos/2", "")
	is.Equal(env.Code, 200)
	is.Equal(asTask(t, env.Data).Text, "b")

	// Unknown ids answer 200 with empty data, as the original mock did.
	env = request(t, s, http.MethodGet, "/api/todos/99", "")
	is.Equal(env.Code, 200)
	is.Equal(env.Data, nil)
}

func TestServer_Update(t *testing.T) {
	is := is.New(t)
	s, store := testServer(t)
	is.NoErr(store.Save([]task.ToDo{{ID: 2, Text: "b", Deadline: time.UnixMilli(1000)}}))

	env := request(t, s, http.MethodPut, "/api/todos/2", `{"text":"b2","deadline":2000,"done":true}`)
	is.Equal(env.Code, 200)
	updated := asTask(t, env.Data)
	is.Equal(updated.ID, 2)
	is.Equal(updated.Text, "b2")
	is.Equal(updated.Done, true)

	ts, err := store.Load()
	is.NoErr(err)
	is.Equal(ts[0].Text, "b2")
}

func TestServer_UpdateUnknownIDIs404(t *testing.T) {
	is := is.New(t)
	s, _ := testServer(t)

	env := request(t, s, http.MethodPut, "/api/todos/9", `{"text":"x","deadline":1000}`)
	is.Equal(env.Code, 404)
	is.Equal(env.Message, "Not Found")
}

func TestServer_Delete(t *testing.T) {
	is := is.New(t)
	s, store := testServer(t)
	is.NoErr(store.Save([]task.ToDo{
		{ID: 1, Text: "a", Deadline: time.UnixMilli(1000)},
		{ID: 2, Text: "b", Deadline: time.UnixMilli(1000)},
	}))

	env := request(t, s, http.MethodDelete, "/api/todos/1", "")
	is.Equal(env.Code, 200)

	ts, err := store.Load()
	is.NoErr(err)
	is.Equal(len(ts), 1)
	is.Equal(ts[0].ID, 2)

	env = request(t, s, http.MethodDelete, "/api/todos/1", "")
	is.Equal(env.Code, 404)
	is.Equal(env.Message, "Not Found")
}

func TestSeedIfEmpty(t *testing.T) {
	is := is.New(t)

	store := persist.InJSON(filepath.Join(t.TempDir(), "todos.json"))
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	n, err := SeedIfEmpty(store, now)
	is.NoErr(err)
	is.Equal(n, len(seedTitles))

	ts, err := store.Load()
	is.NoErr(err)
	is.Equal(len(ts), len(seedTitles))
	is.Equal(ts[0].ID, 1)
	is.Equal(task.NextID(ts), len(seedTitles)+1)

	// A populated store is left alone.
	n, err = SeedIfEmpty(store, now)
	is.NoErr(err)
	is.Equal(n, 0)
}
