package tokenizer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/example/go-mosestok/internal/lang"
)

// SpanReason tags why a character range is protected from the cascade.
type SpanReason int

const (
	SpanNumber SpanReason = iota
	SpanURL
	SpanAbbreviation
	SpanEllipsis
	SpanMarkup
)

// Span is a half-open byte range [Start, End) within a line.
type Span struct {
	Start, End int
	Reason     SpanReason
}

// spanSet accumulates committed, non-overlapping spans in start order.
type spanSet struct {
	spans []Span
}

func (ss *spanSet) overlaps(start, end int) bool {
	for _, s := range ss.spans {
		if start < s.End && s.Start < end {
			return true
		}
	}
	return false
}

// commit adds [start, end) if it does not touch any committed span.
func (ss *spanSet) commit(start, end int, reason SpanReason) {
	if start >= end || ss.overlaps(start, end) {
		return
	}
	ss.spans = append(ss.spans, Span{Start: start, End: end, Reason: reason})
}

// commitClipped adds the fragments of [start, end) not already covered by a
// committed span. Earlier categories keep what they claimed; the remainder of
// the range is still protected under the new reason.
func (ss *spanSet) commitClipped(start, end int, reason SpanReason) {
	if start >= end {
		return
	}
	blocked := make([]Span, 0, len(ss.spans))
	for _, s := range ss.spans {
		if start < s.End && s.Start < end {
			blocked = append(blocked, s)
		}
	}
	sort.Slice(blocked, func(i, j int) bool { return blocked[i].Start < blocked[j].Start })

	cur := start
	for _, b := range blocked {
		if cur < b.Start {
			ss.spans = append(ss.spans, Span{Start: cur, End: b.Start, Reason: reason})
		}
		if b.End > cur {
			cur = b.End
		}
	}
	if cur < end {
		ss.spans = append(ss.spans, Span{Start: cur, End: end, Reason: reason})
	}
}

func (ss *spanSet) sorted() []Span {
	sort.Slice(ss.spans, func(i, j int) bool { return ss.spans[i].Start < ss.spans[j].Start })
	return ss.spans
}

// covered reports whether byte offset i falls inside a committed span.
func covered(spans []Span, i int) bool {
	for _, s := range spans {
		if i >= s.Start && i < s.End {
			return true
		}
	}
	return false
}

// spanAt returns the span containing byte offset i, if any.
func spanAt(spans []Span, i int) (Span, bool) {
	for _, s := range spans {
		if i >= s.Start && i < s.End {
			return s, true
		}
	}
	return Span{}, false
}

// FindProtectedSpans locates the substrings of line that the cascade must not
// split: numbers, URL/email-like runs, nonbreaking abbreviations, ellipses,
// and markup tags, in that priority order. The returned spans never overlap
// and are sorted by start offset.
func FindProtectedSpans(line string, p *lang.Profile) []Span {
	var ss spanSet
	findNumberSpans(line, &ss)
	findURLSpans(line, &ss)
	findAbbreviationSpans(line, p, &ss)
	findEllipsisSpans(line, &ss)
	findMarkupSpans(line, &ss)
	return ss.sorted()
}

// findNumberSpans protects digit runs with interior thousands/decimal marks,
// e.g. "1,234.56". A separator is only absorbed when a digit follows, so the
// period in "56." stays outside the span.
func findNumberSpans(line string, ss *spanSet) {
	i := 0
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if !unicode.IsDigit(r) {
			i += size
			continue
		}
		start := i
		i = consumeDigits(line, i)
		for {
			if i >= len(line) {
				break
			}
			sep := line[i]
			if sep != ',' && sep != '.' {
				break
			}
			next := consumeDigits(line, i+1)
			if next == i+1 {
				break // separator not followed by a digit
			}
			i = next
		}
		ss.commit(start, i, SpanNumber)
	}
}

func consumeDigits(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsDigit(r) {
			return i
		}
		i += size
	}
	return i
}

// findURLSpans protects whitespace-delimited runs that look like URLs or
// email addresses. Trailing sentence punctuation is left outside the span so
// "See https://x.test." still yields an isolated final period.
func findURLSpans(line string, ss *spanSet) {
	for _, r := range nonSpaceRuns(line) {
		start, end := r[0], r[1]
		run := line[start:end]
		if !looksLikeURL(run) {
			continue
		}
		trimmed := strings.TrimRight(run, ".,;:!?'\")]}")
		if trimmed == "" {
			continue
		}
		ss.commitClipped(start, start+len(trimmed), SpanURL)
	}
}

func looksLikeURL(run string) bool {
	if strings.Contains(run, "://") {
		return true
	}
	if at := strings.IndexByte(run, '@'); at > 0 && strings.IndexByte(run[at:], '.') > 0 {
		return true
	}
	lower := strings.ToLower(run)
	return strings.HasPrefix(lower, "www.") || strings.HasPrefix(lower, "mailto:")
}

// nonSpaceRuns returns the byte ranges of whitespace-delimited runs, in
// order of appearance.
func nonSpaceRuns(line string) [][2]int {
	var runs [][2]int
	start := -1
	for i, r := range line {
		if unicode.IsSpace(r) {
			if start >= 0 {
				runs = append(runs, [2]int{start, i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, len(line)})
	}
	return runs
}

// findAbbreviationSpans protects whole-token, case-sensitive matches against
// the profile's nonbreaking-prefix table, period included. Numeric-only
// prefixes commit only when the following word starts with a digit.
func findAbbreviationSpans(line string, p *lang.Profile, ss *spanSet) {
	for _, r := range nonSpaceRuns(line) {
		start, end := r[0], r[1]
		tok := line[start:end]
		if len(tok) < 2 || tok[len(tok)-1] != '.' {
			continue
		}
		kind, ok := p.Prefixes[tok[:len(tok)-1]]
		if !ok {
			continue
		}
		if kind == lang.PrefixNumericOnly && !nextWordStartsWithDigit(line, end) {
			continue
		}
		ss.commit(start, end, SpanAbbreviation)
	}
}

func nextWordStartsWithDigit(line string, from int) bool {
	rest := strings.TrimLeftFunc(line[from:], unicode.IsSpace)
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsDigit(r)
}

// findEllipsisSpans protects runs of two or more periods and the single-rune
// ellipsis glyph.
func findEllipsisSpans(line string, ss *spanSet) {
	i := 0
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if r == '…' {
			ss.commit(i, i+size, SpanEllipsis)
			i += size
			continue
		}
		if r == '.' {
			start := i
			for i < len(line) && line[i] == '.' {
				i++
			}
			if i-start >= 2 {
				ss.commit(start, i, SpanEllipsis)
			}
			continue
		}
		i += size
	}
}

// findMarkupSpans treats angle-bracket-delimited runs as opaque.
func findMarkupSpans(line string, ss *spanSet) {
	i := 0
	for i < len(line) {
		open := strings.IndexByte(line[i:], '<')
		if open < 0 {
			return
		}
		open += i
		gt := strings.IndexByte(line[open+1:], '>')
		if gt < 0 {
			return
		}
		gt += open + 1
		ss.commitClipped(open, gt+1, SpanMarkup)
		i = gt + 1
	}
}
