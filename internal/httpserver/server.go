// internal/httpserver/server.go
//
// HTTP front end for the word-search engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/leaderboard".
//   - Session endpoints: start (host), view, guess, delete (host).
//   - Archiving finished games in the results store.
//
// Notes:
//   - Players share one screen: there is no per-player identity, the session
//     itself tracks whose turn it is.
//   - Turn timers are driven elsewhere (turnclock); handlers only read TimeLeft.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/board"
	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/results"
	"github.com/robalobadob/wordsearch/internal/store"
	"github.com/robalobadob/wordsearch/internal/words"
)

// Options configures a Server.
type Options struct {
	JWTSecret    string
	JWTTTL       time.Duration
	HostPassword string // empty disables host login; host routes are then open
	CookieName   string
	CookieSecure bool
	ClientOrigin string

	DefaultDifficulty game.Difficulty
	DefaultBoard      board.Board
	DefaultWords      *words.List
}

// Server bundles router, session store and results archive.
type Server struct {
	r        *chi.Mux
	store    store.Store
	results  *results.Store // nil when archiving is disabled
	opts     Options
	hostHash []byte
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, rs *results.Store, opts Options) (*Server, error) {
	if opts.CookieName == "" {
		opts.CookieName = "wordsearch_host"
	}
	if opts.JWTTTL <= 0 {
		opts.JWTTTL = 12 * time.Hour
	}
	if opts.DefaultDifficulty == "" {
		opts.DefaultDifficulty = game.Medium
	}
	s := &Server{r: chi.NewRouter(), store: st, results: rs, opts: opts}
	if opts.HostPassword != "" {
		h, err := hashPassword(opts.HostPassword)
		if err != nil {
			return nil, err
		}
		s.hostHash = h
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordsearch","endpoints":["/health","POST /sessions","GET /sessions/{id}","POST /sessions/{id}/guess","/leaderboard","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.mountAuthRoutes()

	s.r.Route("/sessions", func(r chi.Router) {
		r.With(s.requireHost).Post("/", s.handleStart)
		r.Get("/{id}", s.handleView)
		r.Post("/{id}/guess", s.handleGuess)
		r.With(s.requireHost).Delete("/{id}", s.handleDelete)
	})

	s.mountLeaderboard(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s, nil
}

// Handler exposes the router (useful for tests and http.Server).
func (s *Server) Handler() http.Handler { return s.r }

// Start serves HTTP on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ SESSIONS -----------------------------------

// startReq is the payload for POST /sessions.
// Board and Words fall back to the server defaults when omitted.
type startReq struct {
	Board      []string `json:"board"`
	Words      []string `json:"words"`
	Players    []string `json:"players"`
	Difficulty string   `json:"difficulty"`
}

type startRes struct {
	ID   string    `json:"id"`
	View game.View `json:"view"`
}

// handleStart loads board and words, filters by difficulty and starts a session.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	d := s.opts.DefaultDifficulty
	if req.Difficulty != "" {
		var err error
		if d, err = game.ParseDifficulty(req.Difficulty); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	b := s.opts.DefaultBoard
	if len(req.Board) > 0 {
		var err error
		if b, err = board.Parse(req.Board); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	list := s.opts.DefaultWords
	if len(req.Words) > 0 {
		var err error
		if list, err = words.NewList(words.Parse(req.Words)); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	list, _ = game.ApplyDifficulty(d, list)

	sess, err := game.Start(b, list, req.Players, d)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	if sess.Reachable < list.Len() {
		// Such a session can only end by deletion.
		log.Warn().Str("session", sess.ID).Int("words", list.Len()).Int("reachable", sess.Reachable).
			Msg("some listed words are not on the board")
	}
	log.Info().Str("session", sess.ID).Str("difficulty", string(d)).Int("words", list.Len()).
		Int("players", len(sess.Players)).Msg("session started")

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(startRes{ID: sess.ID, View: sess.Snapshot()})
}

// handleView returns the current snapshot of a session.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	var v game.View
	err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(sess *game.Session) error {
		v = sess.Snapshot()
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

type guessReq struct {
	Guess string `json:"guess"`
}

type guessRes struct {
	Outcome game.Outcome `json:"outcome"`
	View    game.View    `json:"view"`
	Winner  *game.Player `json:"winner,omitempty"`
}

// handleGuess applies the current player's guess and archives the game once finished.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var (
		res  guessRes
		done *game.Session
	)
	err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(sess *game.Session) error {
		out, err := sess.SubmitGuess(req.Guess)
		if err != nil {
			return err
		}
		res.Outcome = out
		res.View = sess.Snapshot()
		if winner, err := sess.Winner(); err == nil {
			res.Winner = &winner
			done = sess
		}
		return nil
	})
	switch {
	case errors.Is(err, game.ErrEmptyGuess):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, game.ErrNotInProgress):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeStoreError(w, err)
		return
	}

	if done != nil {
		log.Info().Str("session", done.ID).Str("winner", res.Winner.Name).Int("score", res.Winner.Score).Msg("session finished")
		s.archive(r.Context(), done)
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleDelete drops a session.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// archive stores the final result; failures are logged, never surfaced to players.
func (s *Server) archive(ctx context.Context, sess *game.Session) {
	if s.results == nil {
		return
	}
	if _, err := s.results.Record(ctx, sess); err != nil {
		log.Warn().Err(err).Str("session", sess.ID).Msg("archive result")
	}
}

// ------------------------------- small util --------------------------------

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	log.Error().Err(err).Msg("session store")
	writeError(w, http.StatusInternalServerError, "server_error")
}
