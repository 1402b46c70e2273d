// internal/words/words.go
//
// Word list parsing and lookup for the game engine.
//
// Responsibilities:
//   - Parse a newline-delimited source into an ordered sequence of words.
//   - Build a validated List (uppercase A–Z, duplicates collapsed).
//   - Supply lookups (Contains) and the one-shot Filter used by difficulty.
//
// Parsing never validates content; validation happens when a List is built.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidWord is returned for words containing anything other than A–Z.
var ErrInvalidWord = errors.New("invalid word: contains non-alphabetic characters")

// List is an ordered set of uppercase words.
type List struct {
	words []string
	set   map[string]struct{}
}

// Parse returns one word per non-empty line with surrounding whitespace
// and line terminators stripped. Order is preserved.
func Parse(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

// ReadLines scans r into raw lines.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// Load reads a word list file (one word per line) and builds a List.
func Load(r io.Reader) (*List, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return NewList(Parse(lines))
}

// NewList uppercases and validates words. Repeated words keep their first position.
func NewList(ws []string) (*List, error) {
	l := &List{
		words: make([]string, 0, len(ws)),
		set:   make(map[string]struct{}, len(ws)),
	}
	for _, w := range ws {
		up, ok := Upper(w)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
		w = up
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	return l, nil
}

// Words returns a copy of the words in order.
func (l *List) Words() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.words...)
}

// Len reports the number of distinct words.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// Contains reports whether w is in the list. w must already be uppercase.
func (l *List) Contains(w string) bool {
	if l == nil {
		return false
	}
	_, ok := l.set[w]
	return ok
}

// Filter returns a new List holding the words for which keep is true.
func (l *List) Filter(keep func(string) bool) *List {
	out := &List{set: make(map[string]struct{})}
	if l == nil {
		return out
	}
	for _, w := range l.words {
		if keep(w) {
			out.words = append(out.words, w)
			out.set[w] = struct{}{}
		}
	}
	return out
}

// Upper uppercases an all-ASCII-letter string byte by byte.
// It reports false for empty input or any byte outside a–z and A–Z, so
// Unicode letters that fold into ASCII (ı, ſ) are rejected.
func Upper(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	b := []byte(s)
	for i, c := range b {
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
			b[i] = c - 'a' + 'A'
		default:
			return "", false
		}
	}
	return string(b), true
}

// ToUpperASCII uppercases a–z and leaves every other byte alone.
func ToUpperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
