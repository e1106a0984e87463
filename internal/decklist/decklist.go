// Package decklist loads deck-list files into ordered (count, name)
// entries. It knows nothing about card data; resolution happens later.
package decklist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrBadLine reports a deck-list line that cannot be parsed. The wrapped
// message names the offending line.
var ErrBadLine = errors.New("bad deck-list line")

// Entry is one deck-list line: N copies of a named card. Entries keep their
// file order so the initial deck order is reproducible.
type Entry struct {
	Count int
	Name  string
}

// Load reads a deck list from a file. Blank lines, comment lines (`//` or
// `#`), and sideboard markers are skipped; everything else must be a
// positive count followed by a card name.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck list: %w", err)
	}
	defer f.Close()

	var entries []Entry

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || isComment(line) || isSideboardMarker(line) {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read deck list: %w", err)
	}

	return entries, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#")
}

// isSideboardMarker recognizes the common export formats: a bare
// "Sideboard" header or an "SB:" line prefix.
func isSideboardMarker(line string) bool {
	return strings.EqualFold(line, "sideboard") || strings.HasPrefix(line, "SB:")
}

func parseLine(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Entry{}, fmt.Errorf("%w: expected `<count> <card name>`, got `%s`", ErrBadLine, line)
	}

	count, err := strconv.Atoi(strings.TrimSuffix(fields[0], "x"))
	if err != nil {
		return Entry{}, fmt.Errorf("%w: `%s` is not a numeric count in `%s`", ErrBadLine, fields[0], line)
	}
	if count <= 0 {
		return Entry{}, fmt.Errorf("%w: count must be positive in `%s`", ErrBadLine, line)
	}

	return Entry{
		Count: count,
		Name:  strings.Join(fields[1:], " "),
	}, nil
}
