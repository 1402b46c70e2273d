// internal/game/types.go
//
// Core type definitions for the word-search game engine.
// Defines:
//   - Status: lifecycle of a started session (in_progress → finished).
//   - Outcome: result of a single guess.
//   - Player: name plus accumulated score.
//   - Session: the complete mutable state of one game.

package game

import (
	"errors"

	"github.com/robalobadob/wordsearch/internal/board"
	"github.com/robalobadob/wordsearch/internal/words"
)

var (
	// ErrInvalidWord is returned when scoring a word with non-alphabetic characters.
	ErrInvalidWord = words.ErrInvalidWord

	ErrPrecondition  = errors.New("session needs a board, a word list and at least one player")
	ErrNotInProgress = errors.New("session is not in progress")
	ErrEmptyGuess    = errors.New("empty guess")
	ErrNotFinished   = errors.New("session is not finished")
)

// Status is the lifecycle state of a session.
// The not-started phase has no Session value: setup happens before Start,
// which either fails with ErrPrecondition or returns an in-progress session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

// Outcome is the result of a submitted guess.
type Outcome string

const (
	OutcomeAlreadyFound Outcome = "already_found"
	OutcomeCorrect      Outcome = "correct"
	OutcomeIncorrect    Outcome = "incorrect"
)

// Player is a participant and their accumulated score.
type Player struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Session holds the state of a single word-search game.
// Board and Words are shared and never mutated.
type Session struct {
	ID         string
	Board      board.Board
	Words      *words.List
	Difficulty Difficulty
	TurnTime   int // seconds a turn lasts, from Difficulty

	Status    Status
	Players   []Player
	Current   int      // index into Players
	Found     []string // in the order they were found
	TimeLeft  int      // seconds left in the active turn
	Reachable int      // list words actually present on the board

	found map[string]struct{}
}

// TickResult reports what a single timer tick did.
type TickResult struct {
	Expired bool   // the active turn ran out of time
	Player  string // player whose turn ended, when Expired
}
