// internal/httpserver/routes_leaderboard.go
//
// GET /leaderboard returns the best archived results.
// GET /leaderboard/{id} returns one result's final scoreboard.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// mountLeaderboard registers the archive routes.
func (s *Server) mountLeaderboard(r chi.Router) {
	r.Route("/leaderboard", func(r chi.Router) {
		r.Get("/", s.handleLeaderboard)
		r.Get("/{id}", s.handleResultPlayers)
	})
}

// handleLeaderboard returns the top results (default 20, max 100).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		writeError(w, http.StatusServiceUnavailable, "archive_disabled")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit > 100 {
		limit = 100
	}
	rows, err := s.results.Leaderboard(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"top": rows})
}

// handleResultPlayers returns the seat-ordered scoreboard of one result.
func (s *Server) handleResultPlayers(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		writeError(w, http.StatusServiceUnavailable, "archive_disabled")
		return
	}
	players, err := s.results.Players(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Error().Err(err).Msg("result players")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if len(players) == 0 {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"players": players})
}
