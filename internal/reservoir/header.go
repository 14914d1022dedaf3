package reservoir

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"resorg/internal/faults"
	"resorg/internal/textutil"
)

const headerMarker = "#"

// dateLayout accepts months with or without a leading zero.
const dateLayout = "1/2006"

// ParseFile opens path and parses its header.
func ParseFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	rec, err := Parse(f)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Parse reads the first three lines of r and returns the reservoir name and
// the year of the first data row.
func Parse(r io.Reader) (Record, error) {
	br := bufio.NewReader(r)

	first, err := readLine(br)
	if err != nil {
		return Record{}, err
	}
	idx := strings.Index(first, headerMarker)
	if idx < 0 {
		return Record{}, formatError("reservoir name", "first line has no # marker", nil)
	}
	name := textutil.NormalizeName(first[idx+len(headerMarker):])

	if _, err := readLine(br); err != nil {
		return Record{}, err
	}

	third, err := readLine(br)
	if err != nil {
		return Record{}, err
	}
	fields := strings.Fields(third)
	if len(fields) == 0 {
		return Record{}, formatError("data year", "first data row is empty", nil)
	}
	date, err := time.Parse(dateLayout, fields[0])
	if err != nil {
		return Record{}, formatError("data year", fmt.Sprintf("date %q is not MM/YYYY", fields[0]), err)
	}

	return Record{Name: name, Year: fmt.Sprintf("%04d", date.Year())}, nil
}

// readLine returns the next line without its terminator. A final line without
// a newline is returned normally; reading past the end is a format error.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read header: %w", err)
		}
		if line == "" {
			return "", formatError("header", "file has fewer than three lines", nil)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func formatError(operation, message string, err error) error {
	return faults.Wrap(faults.ErrFormat, "reservoir", operation, message, err)
}
