// internal/game/scoring.go
//
// Scoring rules and difficulty presets.
//
// Word length L:   < 3: 0 points
//                 3–6: 1 point per letter
//                 7–9: 2 points per letter
//                 10+: 3 points per letter

package game

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordsearch/internal/words"
)

// Difficulty controls turn length and the word-length filter applied at load time.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty accepts a difficulty name in any case.
// An empty string yields Medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return Medium, nil
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// TurnSeconds is the turn timer duration for d.
func (d Difficulty) TurnSeconds() int {
	switch d {
	case Easy:
		return 45
	case Hard:
		return 15
	default:
		return 30
	}
}

// Keeps reports whether a word of the given length survives d's filter.
func (d Difficulty) Keeps(word string) bool {
	n := len(word)
	switch d {
	case Easy:
		return n >= 5
	case Hard:
		return n <= 5
	default:
		return n >= 4 && n <= 6
	}
}

// ApplyDifficulty filters ws by d and returns the turn timer in seconds.
// Applying it again to its own output changes nothing.
func ApplyDifficulty(d Difficulty, ws *words.List) (*words.List, int) {
	return ws.Filter(d.Keeps), d.TurnSeconds()
}

// WordScore returns the points word earns.
func WordScore(word string) (int, error) {
	w, ok := words.Upper(word)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	n := len(w)
	switch {
	case n < 3:
		return 0, nil
	case n <= 6:
		return n, nil
	case n <= 9:
		return 2 * n, nil
	default:
		return 3 * n, nil
	}
}

// UpdateScore adds the value of word to p's score.
func UpdateScore(p *Player, word string) error {
	pts, err := WordScore(word)
	if err != nil {
		return err
	}
	p.Score += pts
	return nil
}
