// internal/board/board.go
//
// Letter grid parsing for the word search.
//
// A board file holds one row per line. Letters are accepted in either case
// and normalized to uppercase; rows may differ in length (ragged boards).
//
// The board
//     ANTT
//     XSOB
// is represented as [['A','N','T','T'], ['X','S','O','B']].

package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordsearch/internal/words"
)

// ErrInvalidBoard is returned when a board source contains anything other than letters.
var ErrInvalidBoard = errors.New("invalid board: non-alphabetic characters found")

// Board is an ordered sequence of rows of single uppercase letters.
type Board [][]byte

// Cell identifies a single letter on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Parse converts each line into a row of letters.
// Blank lines and lines with any non-letter fail with ErrInvalidBoard.
func Parse(lines []string) (Board, error) {
	b := make(Board, 0, len(lines))
	for i, line := range lines {
		s, ok := words.Upper(strings.TrimSpace(line))
		if !ok {
			return nil, fmt.Errorf("%w (line %d)", ErrInvalidBoard, i+1)
		}
		b = append(b, []byte(s))
	}
	return b, nil
}

// Load scans r and parses it as a board. An empty source yields an empty board.
func Load(r io.Reader) (Board, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	return Parse(lines)
}

// Rows returns the board as strings, one per row.
func (b Board) Rows() []string {
	out := make([]string, len(b))
	for i, row := range b {
		out[i] = string(row)
	}
	return out
}

// Empty reports whether the board has no searchable letters.
func (b Board) Empty() bool {
	return len(b) == 0 || len(b[0]) == 0
}
