package words

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"ANT", "BOX", "SOB"}, Parse([]string{"ANT\n", "", "BOX\r\n", "  ", "SOB"}))
	assert.Empty(t, Parse(nil))
	// no validation at parse time
	assert.Equal(t, []string{"B0X"}, Parse([]string{"B0X"}))
}

func TestNewList(t *testing.T) {
	t.Parallel()

	t.Run("uppercases and dedupes", func(t *testing.T) {
		l, err := NewList([]string{"ant", "BOX", "Ant"})
		require.NoError(t, err)
		assert.Equal(t, []string{"ANT", "BOX"}, l.Words())
		assert.Equal(t, 2, l.Len())
		assert.True(t, l.Contains("ANT"))
		assert.False(t, l.Contains("ant"))
	})

	t.Run("rejects non-alphabetic words", func(t *testing.T) {
		_, err := NewList([]string{"ANT", "B0X"})
		assert.ErrorIs(t, err, ErrInvalidWord)
	})

	t.Run("rejects letters that only fold into A-Z", func(t *testing.T) {
		_, err := NewList([]string{"ſOB"})
		assert.ErrorIs(t, err, ErrInvalidWord)
		_, err = NewList([]string{"ıCE"})
		assert.ErrorIs(t, err, ErrInvalidWord)
	})
}

func TestLoad(t *testing.T) {
	l, err := Load(strings.NewReader("ANT\nBOX\n\nSOB\nTO\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ANT", "BOX", "SOB", "TO"}, l.Words())

	_, err = Load(strings.NewReader("ANT\nICE-CREAM\n"))
	assert.ErrorIs(t, err, ErrInvalidWord)
}

func TestFilter(t *testing.T) {
	l, err := NewList([]string{"ANT", "ELEPHANT", "TO"})
	require.NoError(t, err)

	long := l.Filter(func(w string) bool { return len(w) >= 3 })
	assert.Equal(t, []string{"ANT", "ELEPHANT"}, long.Words())
	assert.False(t, long.Contains("TO"))
	// source is untouched
	assert.Equal(t, 3, l.Len())

	var nilList *List
	assert.Equal(t, 0, nilList.Filter(func(string) bool { return true }).Len())
}

func TestUpper(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"ant", "ANT", true},
		{"XsOb", "XSOB", true},
		{"", "", false},
		{"B0X", "", false},
		{"ſſſ", "", false},
		{"ıNT", "", false},
		{"CAFÉ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Upper(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToUpperASCII(t *testing.T) {
	assert.Equal(t, "SOB", ToUpperASCII("sob"))
	assert.Equal(t, "ſOB", ToUpperASCII("ſob"))
}
