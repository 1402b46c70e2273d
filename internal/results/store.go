// internal/results/store.go
//
// Results archive for finished games.
// Responsibilities:
//   - Record a finished session's winner and final scoreboard.
//   - Leaderboard: best winning scores, highest first.
//   - Per-result scoreboard lookup in seat order.

package results

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/robalobadob/wordsearch/internal/game"
)

// Result is one archived finished game.
type Result struct {
	ID         string        `json:"id"`
	SessionID  string        `json:"sessionId"`
	Difficulty string        `json:"difficulty"`
	Winner     string        `json:"winner"`
	Score      int           `json:"score"`
	WordsTotal int           `json:"wordsTotal"`
	FinishedAt string        `json:"finishedAt"`
	Players    []game.Player `json:"players,omitempty"`
}

// Store archives finished games. Only final results are kept, never live state.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record archives a finished session and its final scoreboard.
func (s *Store) Record(ctx context.Context, sess *game.Session) (string, error) {
	w, err := sess.Winner()
	if err != nil {
		return "", err
	}
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO results (id, session_id, difficulty, winner, score, words_total)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, sess.ID, string(sess.Difficulty), w.Name, w.Score, sess.Words.Len(),
	); err != nil {
		return "", fmt.Errorf("insert result: %w", err)
	}
	for seat, p := range sess.Players {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO result_players (result_id, seat, name, score) VALUES (?, ?, ?, ?)`,
			id, seat, p.Name, p.Score,
		); err != nil {
			return "", fmt.Errorf("insert player: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// Leaderboard returns the best winning scores, highest first. Default limit is 20.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, difficulty, winner, score, words_total, finished_at
		FROM results
		ORDER BY score DESC, finished_at ASC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Difficulty, &r.Winner, &r.Score, &r.WordsTotal, &r.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Players returns the final scoreboard of a result in seat order.
func (s *Store) Players(ctx context.Context, resultID string) ([]game.Player, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, score FROM result_players WHERE result_id=? ORDER BY seat`, resultID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []game.Player
	for rows.Next() {
		var p game.Player
		if err := rows.Scan(&p.Name, &p.Score); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
