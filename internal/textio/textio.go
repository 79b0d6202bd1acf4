// Package textio is the text I/O boundary around the tokenizer core. It
// validates encoding, applies Unicode normalization, and converts between
// documents and line slices. The core itself assumes well-formed input;
// everything that can fail lives here.
package textio

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalidEncoding is returned when input is not well-formed UTF-8.
var ErrInvalidEncoding = errors.New("input is not valid UTF-8")

// ReadLines reads r to the end, rejects malformed UTF-8, NFC-normalizes the
// text, and splits it into lines. Line endings are normalized first
// (CRLF and bare CR become LF) so the split is terminator-agnostic.
// A trailing newline does not produce a final empty line.
func ReadLines(r io.Reader) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if !utf8.Valid(b) {
		return nil, ErrInvalidEncoding
	}

	s := norm.NFC.String(string(b))
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")

	if s == "" {
		return nil, nil
	}
	return strings.Split(s, "\n"), nil
}

// WriteLines writes each line followed by a line feed.
func WriteLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
