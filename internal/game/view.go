// internal/game/view.go
//
// Read-only session snapshot for front ends.
// Copies board rows, the crossed-out mask of found words, scores and the
// turn state so callers can render without holding the session.

package game

import "github.com/robalobadob/wordsearch/internal/board"

// View is a read-only snapshot of a session for rendering.
type View struct {
	ID            string     `json:"id"`
	Status        Status     `json:"status"`
	Difficulty    Difficulty `json:"difficulty"`
	Board         []string   `json:"board"`
	Marks         [][]bool   `json:"marks"`
	Found         []string   `json:"found"`
	Players       []Player   `json:"players"`
	CurrentPlayer string     `json:"currentPlayer"`
	TimeLeft      int        `json:"timeLeft"`
	Remaining     int        `json:"remaining"`
	Reachable     int        `json:"reachable"`
}

// Snapshot copies the parts of s a front end needs.
func (s *Session) Snapshot() View {
	return View{
		ID:            s.ID,
		Status:        s.Status,
		Difficulty:    s.Difficulty,
		Board:         s.Board.Rows(),
		Marks:         board.Marks(s.Board, s.Found),
		Found:         append([]string{}, s.Found...),
		Players:       append([]Player(nil), s.Players...),
		CurrentPlayer: s.CurrentPlayer().Name,
		TimeLeft:      s.TimeLeft,
		Remaining:     s.Remaining(),
		Reachable:     s.Reachable,
	}
}
