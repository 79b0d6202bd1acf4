// Package tokenizer implements a Moses-style rule-based tokenizer: an
// ordered cascade of punctuation-splitting rewrites, parameterized by an
// immutable per-language profile, with protected spans (numbers, URLs,
// abbreviations, ellipses, markup) shielded from every rewrite.
//
// The two entry points are TokenizeLine for a single line and
// TokenizeDocument for an ordered sequence of lines. Both are total over
// well-formed UTF-8: they never fail, and an empty or whitespace-only line
// tokenizes to an empty line.
package tokenizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/example/go-mosestok/internal/lang"
)

// Options carries the opt-in behaviors of the Moses tokenizer script. The zero
// value is the default tokenization.
type Options struct {
	// AggressiveHyphens splits single hyphens between alphanumerics into
	// the recoverable "@-@" marker.
	AggressiveHyphens bool

	// Escape rewrites markup-sensitive characters (& | < > ' " [ ]) in the
	// output as XML-style entities.
	Escape bool

	// ProtectedPatterns are caller-supplied regular expressions whose
	// matches are masked before the cascade runs and restored verbatim
	// afterwards.
	ProtectedPatterns []string
}

// Tokenizer binds a language profile and options. It holds no mutable state:
// a single Tokenizer is safe for concurrent use across lines.
type Tokenizer struct {
	profile   *lang.Profile
	opts      Options
	protected []*regexp.Regexp
}

// New builds a Tokenizer for l. The only failure mode is an invalid
// protected pattern.
func New(l lang.Language, opts Options) (*Tokenizer, error) {
	t := &Tokenizer{
		profile: lang.ProfileFor(l),
		opts:    opts,
	}
	for _, pat := range opts.ProtectedPatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("protected pattern %q: %w", pat, err)
		}
		t.protected = append(t.protected, re)
	}
	return t, nil
}

// TokenizeLine applies the full cascade to one line and returns its tokens
// joined by single spaces. It is a pure function of (line, profile, options).
func (t *Tokenizer) TokenizeLine(line string) string {
	s := normalizeWhitespace(line)
	if s == "" {
		return ""
	}

	s, masked := t.maskProtected(s)

	s = isolateSymbols(s, t.profile, t.opts.AggressiveHyphens)
	s = handlePeriods(s, t.profile)
	s = normalizeApostrophes(s, t.profile)
	s = splitContractions(s, t.profile)
	s = finalize(s)

	s = restoreProtected(s, masked)
	if t.opts.Escape {
		s = escaper.Replace(s)
	}
	return s
}

const protectedMark = "THISISPROTECTED"

// maskProtected replaces matches of the caller's protected patterns with
// opaque placeholder tokens the cascade will not touch.
func (t *Tokenizer) maskProtected(s string) (string, []string) {
	if len(t.protected) == 0 {
		return s, nil
	}
	var found []string
	for _, re := range t.protected {
		s = re.ReplaceAllStringFunc(s, func(m string) string {
			ph := fmt.Sprintf("%s%03d", protectedMark, len(found))
			found = append(found, m)
			return ph
		})
	}
	return s, found
}

func restoreProtected(s string, found []string) string {
	for idx, m := range found {
		s = strings.ReplaceAll(s, fmt.Sprintf("%s%03d", protectedMark, idx), m)
	}
	return s
}

// TokenizeLine tokenizes a single line under the default options for l.
func TokenizeLine(line string, l lang.Language) string {
	t, _ := New(l, Options{})
	return t.TokenizeLine(line)
}

// TokenizeDocument tokenizes lines under the default options for l,
// preserving input order.
func TokenizeDocument(lines []string, l lang.Language) []string {
	t, _ := New(l, Options{})
	return t.TokenizeDocument(lines)
}
