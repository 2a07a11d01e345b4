// Package output writes fixtures as delimited JSON lines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format selects how records are delimited.
type Format string

const (
	// FormatComma writes one object per line followed by a comma. The stream
	// is not a JSON document on its own; it is meant to be pasted inside an
	// array literal.
	FormatComma Format = "comma"

	// FormatJSONL writes one object per line.
	FormatJSONL Format = "jsonl"

	// FormatArray writes a single JSON array, one element per line.
	FormatArray Format = "array"
)

// ParseFormat maps a flag value to a Format. An empty string means
// FormatComma.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatComma, nil
	case FormatComma, FormatJSONL, FormatArray:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want comma, jsonl or array)", s)
	}
}

// Writer encodes records to an underlying writer in a Format.
type Writer struct {
	w      io.Writer
	format Format
	count  int
	closed bool
}

// NewWriter creates a writer. Unknown formats behave as FormatComma.
func NewWriter(w io.Writer, f Format) *Writer {
	if f != FormatJSONL && f != FormatArray {
		f = FormatComma
	}
	return &Writer{w: w, format: f}
}

// Write encodes one record.
func (w *Writer) Write(v any) error {
	if w.closed {
		return fmt.Errorf("write record: writer closed")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("write record: marshal: %w", err)
	}

	var prefix, suffix string
	switch w.format {
	case FormatComma:
		suffix = ",\n"
	case FormatJSONL:
		suffix = "\n"
	case FormatArray:
		prefix = ",\n"
		if w.count == 0 {
			prefix = "[\n"
		}
	}

	if _, err := fmt.Fprintf(w.w, "%s%s%s", prefix, data, suffix); err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	return w.count
}

// Close terminates the stream. Only FormatArray writes anything: the closing
// bracket, or an empty array when no records were written.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.format != FormatArray {
		return nil
	}

	tail := "\n]\n"
	if w.count == 0 {
		tail = "[]\n"
	}
	if _, err := io.WriteString(w.w, tail); err != nil {
		return fmt.Errorf("close writer: %w", err)
	}
	return nil
}
