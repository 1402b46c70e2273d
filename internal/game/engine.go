// internal/game/engine.go
//
// Turn/state machine for a single word-search session.
// Responsibilities:
//   - Start a session once board, word list and players are present.
//   - Apply guesses: already found → correct → incorrect, in that order.
//   - Advance turns after every guess and whenever the turn timer runs out.
//   - Detect completion and pick the winner.
//
// Notes:
//   - Nothing here blocks or schedules; Tick is driven by an external clock.
//   - A wrong guess still costs the turn.
package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/robalobadob/wordsearch/internal/board"
	"github.com/robalobadob/wordsearch/internal/words"
)

// Start creates an in-progress session.
// ws is expected to be filtered by ApplyDifficulty already; it is not filtered again.
// Blank player names are skipped.
func Start(b board.Board, ws *words.List, names []string, d Difficulty) (*Session, error) {
	if b.Empty() {
		return nil, fmt.Errorf("%w: board is empty", ErrPrecondition)
	}
	if ws.Len() == 0 {
		return nil, fmt.Errorf("%w: word list is empty", ErrPrecondition)
	}
	players := make([]Player, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			players = append(players, Player{Name: n})
		}
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: no players", ErrPrecondition)
	}

	return &Session{
		ID:         uuid.NewString(),
		Board:      b,
		Words:      ws,
		Difficulty: d,
		TurnTime:   d.TurnSeconds(),
		Status:     StatusInProgress,
		Players:    players,
		Current:    0,
		Found:      []string{},
		TimeLeft:   d.TurnSeconds(),
		Reachable:  board.CountOnBoard(b, ws.Words()),
		found:      make(map[string]struct{}),
	}, nil
}

// SubmitGuess applies the current player's guess.
// Unless the guess completes the word list, the turn passes to the next player.
func (s *Session) SubmitGuess(raw string) (Outcome, error) {
	if s.Status != StatusInProgress {
		return "", ErrNotInProgress
	}
	guess := words.ToUpperASCII(strings.TrimSpace(raw))
	if guess == "" {
		return "", ErrEmptyGuess
	}

	var out Outcome
	switch {
	case s.isFound(guess):
		out = OutcomeAlreadyFound
	case s.Words.Contains(guess) && board.ContainsWord(s.Board, guess):
		if err := UpdateScore(&s.Players[s.Current], guess); err != nil {
			return "", err
		}
		s.found[guess] = struct{}{}
		s.Found = append(s.Found, guess)
		out = OutcomeCorrect
	default:
		out = OutcomeIncorrect
	}

	if s.Remaining() == 0 {
		s.Status = StatusFinished
		return out, nil
	}
	s.nextTurn()
	return out, nil
}

// Tick counts down one second of the active turn.
// When the timer reaches zero the turn passes on and the timer resets.
func (s *Session) Tick() TickResult {
	if s.Status != StatusInProgress {
		return TickResult{}
	}
	if s.TimeLeft > 0 {
		s.TimeLeft--
	}
	if s.TimeLeft > 0 {
		return TickResult{}
	}
	ended := s.Players[s.Current].Name
	s.nextTurn()
	return TickResult{Expired: true, Player: ended}
}

// Remaining is the number of listed words not found yet.
func (s *Session) Remaining() int {
	return s.Words.Len() - len(s.Found)
}

// CurrentPlayer returns the player whose turn it is.
func (s *Session) CurrentPlayer() Player {
	return s.Players[s.Current]
}

// Winner returns the highest scorer of a finished session.
// Ties go to whoever comes first in turn order.
func (s *Session) Winner() (Player, error) {
	if s.Status != StatusFinished {
		return Player{}, ErrNotFinished
	}
	best := s.Players[0]
	for _, p := range s.Players[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	return best, nil
}

// nextTurn passes play to the next player and restarts the turn timer.
func (s *Session) nextTurn() {
	s.Current = (s.Current + 1) % len(s.Players)
	s.TimeLeft = s.TurnTime
}

func (s *Session) isFound(w string) bool {
	_, ok := s.found[w]
	return ok
}
