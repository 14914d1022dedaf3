package reservoir_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resorg/internal/faults"
	"resorg/internal/reservoir"
)

const nicasio = `#NICASIO
#Date    Storage (AF)
01/2007     22430
02/2007     22430
03/2007     22430
`

func TestParseWellFormed(t *testing.T) {
	rec, err := reservoir.Parse(strings.NewReader(nicasio))
	require.NoError(t, err)
	assert.Equal(t, "NICASIO", rec.Name)
	assert.Equal(t, "2007", rec.Year)
	assert.Equal(t, "NICASIO_2007.txt", rec.FileName())
}

func TestParseStripsAllWhitespace(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"leading space after marker", "# LAKE SONOMA", "LAKESONOMA"},
		{"space before marker", "   #SHASTA", "SHASTA"},
		{"tabs and trailing", "#\tNEW  MELONES \t", "NEWMELONES"},
		{"crlf line ending", "#FOLSOM\r", "FOLSOM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.header + "\n#Date Storage\n10/1999 12\n"
			rec, err := reservoir.Parse(strings.NewReader(input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Name)
			assert.Equal(t, "1999", rec.Year)
			assert.False(t, strings.ContainsFunc(rec.Name, unicode.IsSpace))
		})
	}
}

func TestParseAcceptsThreeLinesWithoutTrailingNewline(t *testing.T) {
	rec, err := reservoir.Parse(strings.NewReader("#LAKE\n#Date\n12/2005 7"))
	require.NoError(t, err)
	assert.Equal(t, reservoir.Record{Name: "LAKE", Year: "2005"}, rec)
}

func TestParseEmptyNameIsAccepted(t *testing.T) {
	for _, header := range []string{"#", "#   "} {
		rec, err := reservoir.Parse(strings.NewReader(header + "\n#Date\n01/2007 1\n"))
		require.NoError(t, err)
		assert.Equal(t, "", rec.Name)
		assert.Equal(t, "2007", rec.Year)
	}
}

func TestParseFormatErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"missing marker", "NICASIO\n#Date\n01/2007 1\n"},
		{"one line", "#NICASIO\n"},
		{"two lines", "#NICASIO\n#Date Storage\n"},
		{"blank data row", "#NICASIO\n#Date\n\n"},
		{"month out of range", "#NICASIO\n#Date\n13/2007 1\n"},
		{"missing slash", "#NICASIO\n#Date\n012007 1\n"},
		{"two digit year", "#NICASIO\n#Date\n01/07 1\n"},
		{"day month year", "#NICASIO\n#Date\n01/01/2007 1\n"},
		{"not a date", "#NICASIO\n#Date\nStorage 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reservoir.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, faults.ErrFormat), "expected format error, got %v", err)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "NICASIO.txt")
	require.NoError(t, os.WriteFile(path, []byte(nicasio), 0o644))

	rec, err := reservoir.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, reservoir.Record{Name: "NICASIO", Year: "2007"}, rec)
}

func TestParseFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := reservoir.ParseFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, faults.ErrFormat))

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("no header\n"), 0o644))
	_, err = reservoir.ParseFile(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, faults.ErrFormat))
	assert.Contains(t, err.Error(), bad)
}

func TestParseAcceptsSingleDigitMonth(t *testing.T) {
	rec, err := reservoir.Parse(strings.NewReader("#LAKE\n#Date\n1/2005 10500\n"))
	require.NoError(t, err)
	assert.Equal(t, "2005", rec.Year)
}
