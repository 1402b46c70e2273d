// Package assets embeds the sample board and word list used when a game is
// started without its own files.
package assets

import (
	"bufio"
	"embed"
)

//go:embed board.txt words.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// BoardLines returns the raw lines of the sample board.
func BoardLines() ([]string, error) {
	return readLines("board.txt")
}

// WordLines returns the raw lines of the sample word list.
func WordLines() ([]string, error) {
	return readLines("words.txt")
}
