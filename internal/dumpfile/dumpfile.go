// Package dumpfile reads and writes window records in the line format
//
//	title@@@bottom@@@left@@@right@@@top
//
// Titles are written verbatim. A title containing the separator produces a
// line that no longer splits into five fields.
package dumpfile

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/1broseidon/wincfg/internal/platform"
	"github.com/1broseidon/wincfg/internal/snapshot"
)

// Separator delimits the fields of a line.
const Separator = "@@@"

const fieldCount = 5

// maxLineBytes bounds a single line read. Titles are bounded well below this.
const maxLineBytes = 1 << 20

// ParseError reports a field that is not an integer.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid %s value %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatLine encodes one record without the trailing newline.
func FormatLine(rec snapshot.Record) string {
	return strings.Join([]string{
		rec.Title,
		strconv.Itoa(rec.Rect.Bottom),
		strconv.Itoa(rec.Rect.Left),
		strconv.Itoa(rec.Rect.Right),
		strconv.Itoa(rec.Rect.Top),
	}, Separator)
}

// Encode writes one line per record, skipping records with an empty title.
func Encode(w io.Writer, records []snapshot.Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if rec.Title == "" {
			continue
		}
		if _, err := bw.WriteString(FormatLine(rec) + "\n"); err != nil {
			return fmt.Errorf("failed to write record %q: %w", rec.Title, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}
	return nil
}

// Decode reads records until end of input or the first line that does not
// have exactly five fields; everything after such a line is ignored. A
// non-integer field is an error.
func Decode(r io.Reader, logger *slog.Logger) ([]snapshot.Record, error) {
	if logger == nil {
		logger = slog.Default()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []snapshot.Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		fields := strings.Split(line, Separator)
		if len(fields) != fieldCount {
			logger.Debug("stopping at malformed line", "line", lineNo, "fields", len(fields))
			return out, nil
		}

		rec, err := parseFields(lineNo, fields)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return out, nil
}

func parseFields(lineNo int, fields []string) (snapshot.Record, error) {
	names := [fieldCount - 1]string{"bottom", "left", "right", "top"}
	var values [fieldCount - 1]int
	for i, name := range names {
		raw := fields[i+1]
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return snapshot.Record{}, &ParseError{Line: lineNo, Field: name, Value: raw, Err: err}
		}
		values[i] = n
	}

	return snapshot.Record{
		Title: fields[0],
		Rect: platform.Rect{
			Bottom: values[0],
			Left:   values[1],
			Right:  values[2],
			Top:    values[3],
		},
	}, nil
}
