// internal/board/search.go
//
// Word search over rows (left to right) and columns (top to bottom).
// There is no diagonal or reversed matching.
//
// Column strings are built from every row long enough to reach the column,
// so on a ragged board shorter rows are skipped for that column.

package board

import "strings"

// ContainsWord reports whether word occurs contiguously in any row or column.
// An empty board, or one whose first row is empty, never contains a word.
func ContainsWord(b Board, word string) bool {
	if b.Empty() {
		return false
	}
	return inRow(b, word) || inColumn(b, word)
}

// CountOnBoard returns how many of ws appear on b.
func CountOnBoard(b Board, ws []string) int {
	n := 0
	for _, w := range ws {
		if ContainsWord(b, w) {
			n++
		}
	}
	return n
}

// Locate returns the cells covered by the first row match of word, or
// failing that the first column match. It returns nil when word is absent.
func Locate(b Board, word string) []Cell {
	if b.Empty() || word == "" {
		return nil
	}
	for r, row := range b {
		if c := strings.Index(string(row), word); c >= 0 {
			cells := make([]Cell, len(word))
			for i := range cells {
				cells[i] = Cell{Row: r, Col: c + i}
			}
			return cells
		}
	}
	for c := 0; c < maxCols(b); c++ {
		col, rows := column(b, c)
		if at := strings.Index(col, word); at >= 0 {
			cells := make([]Cell, len(word))
			for i := range cells {
				cells[i] = Cell{Row: rows[at+i], Col: c}
			}
			return cells
		}
	}
	return nil
}

// Marks returns a per-cell mask with true for every letter covered by a found word.
func Marks(b Board, found []string) [][]bool {
	out := make([][]bool, len(b))
	for r, row := range b {
		out[r] = make([]bool, len(row))
	}
	for _, w := range found {
		for _, cell := range Locate(b, w) {
			out[cell.Row][cell.Col] = true
		}
	}
	return out
}

func inRow(b Board, word string) bool {
	for _, row := range b {
		if strings.Contains(string(row), word) {
			return true
		}
	}
	return false
}

func inColumn(b Board, word string) bool {
	for c := 0; c < maxCols(b); c++ {
		col, _ := column(b, c)
		if strings.Contains(col, word) {
			return true
		}
	}
	return false
}

// column joins the letters at index c from every row that reaches it and
// returns the source row of each letter.
func column(b Board, c int) (string, []int) {
	var sb strings.Builder
	rows := make([]int, 0, len(b))
	for r, row := range b {
		if c < len(row) {
			sb.WriteByte(row[c])
			rows = append(rows, r)
		}
	}
	return sb.String(), rows
}

func maxCols(b Board) int {
	n := 0
	for _, row := range b {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}
