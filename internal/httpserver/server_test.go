package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordsearch/internal/board"
	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/results"
	"github.com/robalobadob/wordsearch/internal/store"
	"github.com/robalobadob/wordsearch/internal/words"
)

func newTestServer(t *testing.T, password string) *Server {
	t.Helper()
	db, err := results.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	b, err := board.Parse([]string{"ANTT", "XSOB"})
	require.NoError(t, err)
	l, err := words.NewList([]string{"ANT", "SOB", "TO"})
	require.NoError(t, err)

	srv, err := New(store.NewMemoryStore(), results.NewStore(db), Options{
		JWTSecret:         "test-secret",
		HostPassword:      password,
		DefaultDifficulty: game.Hard,
		DefaultBoard:      b,
		DefaultWords:      l,
	})
	require.NoError(t, err)
	return srv
}

func do(t *testing.T, srv *Server, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, "")
	rec := do(t, srv, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestPlayThroughToWinner(t *testing.T) {
	srv := newTestServer(t, "")

	rec := do(t, srv, http.MethodPost, "/sessions", startReq{Players: []string{"Alice", "Bob"}}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	started := decode[startRes](t, rec)
	assert.Equal(t, game.Hard, started.View.Difficulty)
	assert.Equal(t, 15, started.View.TimeLeft)
	assert.Equal(t, 3, started.View.Remaining)
	assert.Equal(t, "Alice", started.View.CurrentPlayer)

	path := "/sessions/" + started.ID + "/guess"

	rec = do(t, srv, http.MethodPost, path, guessReq{Guess: "ant"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[guessRes](t, rec)
	assert.Equal(t, game.OutcomeCorrect, res.Outcome)
	assert.Equal(t, "Bob", res.View.CurrentPlayer)
	assert.Nil(t, res.Winner)

	rec = do(t, srv, http.MethodPost, path, guessReq{Guess: "ant"}, "")
	assert.Equal(t, game.OutcomeAlreadyFound, decode[guessRes](t, rec).Outcome)

	rec = do(t, srv, http.MethodPost, path, guessReq{Guess: "sob"}, "")
	assert.Equal(t, game.OutcomeCorrect, decode[guessRes](t, rec).Outcome)

	rec = do(t, srv, http.MethodPost, path, guessReq{Guess: "to"}, "")
	res = decode[guessRes](t, rec)
	assert.Equal(t, game.OutcomeCorrect, res.Outcome)
	assert.Equal(t, game.StatusFinished, res.View.Status)
	require.NotNil(t, res.Winner)
	assert.Equal(t, game.Player{Name: "Alice", Score: 6}, *res.Winner)

	rec = do(t, srv, http.MethodPost, path, guessReq{Guess: "to"}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, srv, http.MethodGet, "/leaderboard", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	lb := decode[struct {
		Top []results.Result `json:"top"`
	}](t, rec)
	require.Len(t, lb.Top, 1)
	assert.Equal(t, "Alice", lb.Top[0].Winner)
	assert.Equal(t, started.ID, lb.Top[0].SessionID)

	rec = do(t, srv, http.MethodGet, "/leaderboard/"+lb.Top[0].ID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"players":[{"name":"Alice","score":6},{"name":"Bob","score":0}]}`, rec.Body.String())
}

func TestStartErrors(t *testing.T) {
	srv := newTestServer(t, "")

	tests := []struct {
		name string
		req  startReq
	}{
		{"invalid board", startReq{Board: []string{"AN1"}, Players: []string{"A"}}},
		{"invalid words", startReq{Words: []string{"B0X"}, Players: []string{"A"}}},
		{"no players", startReq{}},
		{"unknown difficulty", startReq{Players: []string{"A"}, Difficulty: "insane"}},
		{"filtered to nothing", startReq{Words: []string{"ELEPHANTS"}, Players: []string{"A"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/sessions", tt.req, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestUnknownSession(t *testing.T) {
	srv := newTestServer(t, "")
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/sessions/nope", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodPost, "/sessions/nope/guess", guessReq{Guess: "x"}, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodDelete, "/sessions/nope", nil, "").Code)
}

func TestEmptyGuess(t *testing.T) {
	srv := newTestServer(t, "")
	started := decode[startRes](t, do(t, srv, http.MethodPost, "/sessions", startReq{Players: []string{"A"}}, ""))

	rec := do(t, srv, http.MethodPost, "/sessions/"+started.ID+"/guess", guessReq{Guess: "  "}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHostRoutesRequireLogin(t *testing.T) {
	srv := newTestServer(t, "table-password")
	body := startReq{Players: []string{"Alice"}, Difficulty: "medium", Words: []string{"ANTT", "XSOB"}}

	assert.Equal(t, http.StatusUnauthorized, do(t, srv, http.MethodPost, "/sessions", body, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, srv, http.MethodPost, "/sessions", body, "garbage").Code)

	rec := do(t, srv, http.MethodPost, "/auth/login", loginReq{Password: "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, srv, http.MethodPost, "/auth/login", loginReq{Password: "table-password"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	login := decode[struct {
		Token string `json:"token"`
	}](t, rec)
	require.NotEmpty(t, login.Token)

	rec = do(t, srv, http.MethodPost, "/sessions", body, login.Token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	started := decode[startRes](t, rec)
	assert.Empty(t, started.View.Found)
	assert.Equal(t, 2, started.View.Remaining)
	assert.Equal(t, 30, started.View.TimeLeft)

	// players do not need the host token
	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodGet, "/sessions/"+started.ID, nil, "").Code)

	assert.Equal(t, http.StatusUnauthorized, do(t, srv, http.MethodDelete, "/sessions/"+started.ID, nil, "").Code)
	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodDelete, "/sessions/"+started.ID, nil, login.Token).Code)
}

func TestLoginDisabledWithoutPassword(t *testing.T) {
	srv := newTestServer(t, "")
	rec := do(t, srv, http.MethodPost, "/auth/login", loginReq{Password: "x"}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
