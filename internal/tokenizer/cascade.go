package tokenizer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/example/go-mosestok/internal/lang"
)

// The cascade is a fixed, ordered sequence of rewrite stages. Each stage is
// idempotent on its own output and re-derives protected spans against the
// text it receives, since earlier stages shift offsets. The order is part of
// the contract and must not change.

// normalizeWhitespace collapses every run of Unicode whitespace to a single
// ASCII space, trims the ends, and strips C0 control characters.
func normalizeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pending = true
			continue
		}
		if r < 0x20 {
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}

// isolateSymbols surrounds punctuation outside protected spans with spaces:
// quotes, brackets, currency and math symbols, commas not inside numbers,
// and dash runs of two or more. Periods, apostrophes, backticks, and single
// hyphens are left for the later stages that know their context.
func isolateSymbols(s string, p *lang.Profile, aggressiveHyphens bool) string {
	spans := FindProtectedSpans(s, p)
	var b strings.Builder
	b.Grow(len(s) + 16)

	i := 0
	for i < len(s) {
		if sp, ok := spanAt(spans, i); ok {
			b.WriteString(s[i:sp.End])
			i = sp.End
			continue
		}
		if strings.HasPrefix(s[i:], "@-@") {
			// hyphen-split marker from a previous aggressive pass
			b.WriteString("@-@")
			i += 3
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == '-':
			j := i + 1
			for j < len(s) && s[j] == '-' && !covered(spans, j) {
				j++
			}
			if j-i >= 2 {
				b.WriteByte(' ')
				b.WriteString(s[i:j])
				b.WriteByte(' ')
			} else {
				b.WriteByte('-')
			}
			i = j
			continue
		case p.IntraWord != 0 && r == p.IntraWord:
			// Word-internal in this language; isolate only when not
			// immediately followed by a lowercase letter.
			next, _ := utf8.DecodeRuneInString(s[i+size:])
			if unicode.IsLower(next) {
				b.WriteRune(r)
			} else {
				b.WriteByte(' ')
				b.WriteRune(r)
				b.WriteByte(' ')
			}
		case isIsolatedSymbol(r):
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
		i += size
	}

	out := normalizeWhitespace(b.String())
	if aggressiveHyphens {
		out = splitHyphens(out, p)
	}
	return out
}

// isIsolatedSymbol reports whether r is separated from its neighbors by the
// symbol-isolation stage. Periods, apostrophes, backticks, and hyphens carry
// context and are handled by later stages.
func isIsolatedSymbol(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
		return false
	}
	switch r {
	case '.', '\'', '`', '-':
		return false
	}
	return true
}

// splitHyphens rewrites a single hyphen between alphanumerics as the
// recoverable marker "@-@", e.g. "rock-hard" -> "rock @-@ hard".
func splitHyphens(s string, p *lang.Profile) string {
	spans := FindProtectedSpans(s, p)
	var b strings.Builder
	b.Grow(len(s) + 16)
	for i, size := 0, 0; i < len(s); i += size {
		var r rune
		r, size = utf8.DecodeRuneInString(s[i:])
		if r != '-' || covered(spans, i) {
			b.WriteRune(r)
			continue
		}
		prev, _ := utf8.DecodeLastRuneInString(s[:i])
		next, _ := utf8.DecodeRuneInString(s[i+1:])
		if isAlnum(prev) && isAlnum(next) {
			b.WriteString(" @-@ ")
		} else {
			b.WriteByte('-')
		}
	}
	return normalizeWhitespace(b.String())
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// handlePeriods isolates sentence-final periods while keeping attached the
// periods of nonbreaking abbreviations, interior-dot tokens ("U.S."),
// ellipses, and periods followed by a lowercase continuation.
func handlePeriods(s string, p *lang.Profile) string {
	s = detachEllipses(s, p)

	spans := FindProtectedSpans(s, p)
	runs := nonSpaceRuns(s)
	words := make([]string, len(runs))
	for k, run := range runs {
		words[k] = s[run[0]:run[1]]
	}

	for k, run := range runs {
		tok := words[k]
		if len(tok) < 2 || tok[len(tok)-1] != '.' || strings.HasSuffix(tok, "..") {
			continue
		}
		if covered(spans, run[1]-1) {
			continue // abbreviation span keeps its period
		}
		pre := tok[:len(tok)-1]
		switch {
		case k == len(words)-1:
			// sentence-final period
		case strings.Contains(pre, ".") && containsLetter(pre):
			continue // interior-dot acronym, "U.S."
		case startsLower(words[k+1]):
			continue // mid-sentence period, not a boundary
		}
		words[k] = pre + " ."
	}
	return strings.Join(words, " ")
}

// detachEllipses separates multi-dot runs and the ellipsis glyph from
// adjacent text so they survive as single tokens.
func detachEllipses(s string, p *lang.Profile) string {
	spans := FindProtectedSpans(s, p)
	var b strings.Builder
	b.Grow(len(s) + 8)
	last := 0
	for _, sp := range spans {
		if sp.Reason != SpanEllipsis {
			continue
		}
		b.WriteString(s[last:sp.Start])
		b.WriteByte(' ')
		b.WriteString(s[sp.Start:sp.End])
		b.WriteByte(' ')
		last = sp.End
	}
	b.WriteString(s[last:])
	return normalizeWhitespace(b.String())
}

func containsLetter(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLetter)
}

func startsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLower(r)
}

// normalizeApostrophes isolates apostrophes acting as quotes and leaves
// word-internal apostrophes for the contraction stage. A leading apostrophe
// whose remainder is a known clitic ("'s", "'em") stays attached.
func normalizeApostrophes(s string, p *lang.Profile) string {
	spans := FindProtectedSpans(s, p)
	var b strings.Builder
	b.Grow(len(s) + 16)
	for i, size := 0, 0; i < len(s); i += size {
		if sp, ok := spanAt(spans, i); ok {
			b.WriteString(s[i:sp.End])
			size = sp.End - i
			continue
		}
		var r rune
		r, size = utf8.DecodeRuneInString(s[i:])
		if r != '\'' {
			b.WriteRune(r)
			continue
		}
		prev, _ := utf8.DecodeLastRuneInString(s[:i])
		next, _ := utf8.DecodeRuneInString(s[i+1:])
		switch {
		case unicode.IsLetter(prev) && unicode.IsLetter(next):
			b.WriteRune(r) // contraction stage decides
		case unicode.IsDigit(prev) && unicode.IsLetter(next) &&
			p.Apostrophe == lang.ApostropheSplitRight:
			b.WriteRune(r) // "1990's", contraction stage decides
		case unicode.IsLetter(next) && p.Apostrophe == lang.ApostropheKeep:
			b.WriteRune(r) // glottal stop
		case isAttachedClitic(s, i, prev, p):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
		}
	}
	return normalizeWhitespace(b.String())
}

// isAttachedClitic reports whether the apostrophe at byte offset i begins an
// already-detached clitic token such as "'s" in "1990 's".
func isAttachedClitic(s string, i int, prev rune, p *lang.Profile) bool {
	if len(p.Clitics) == 0 {
		return false
	}
	if i > 0 && !unicode.IsSpace(prev) {
		return false
	}
	j := i + 1
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if !unicode.IsLetter(r) {
			break
		}
		j += size
	}
	if j == i+1 {
		return false
	}
	if j < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[j:]); !unicode.IsSpace(r) {
			return false
		}
	}
	return p.Clitics[s[i+1:j]]
}

// splitContractions expands fused contractions according to the profile
// policy: English keeps the clitic with the apostrophe ("he 's", "ca n't"),
// the French group keeps the elided article with it ("l' eau"), Somali and
// Tetun leave glottal apostrophes alone, and everything else isolates the
// apostrophe.
func splitContractions(s string, p *lang.Profile) string {
	if p.Apostrophe == lang.ApostropheKeep {
		return s
	}
	spans := FindProtectedSpans(s, p)

	var cuts []int // byte offsets where a space is inserted
	for i, size := 0, 0; i < len(s); i += size {
		var r rune
		r, size = utf8.DecodeRuneInString(s[i:])
		if r != '\'' || covered(spans, i) {
			continue
		}
		prev, prevSize := utf8.DecodeLastRuneInString(s[:i])
		next, _ := utf8.DecodeRuneInString(s[i+1:])

		switch {
		case unicode.IsLetter(prev) && unicode.IsLetter(next):
			switch p.Apostrophe {
			case lang.ApostropheSplitRight:
				if (prev == 'n' || prev == 'N') && (next == 't' || next == 'T') {
					// "can't" -> "ca n't"; an already-split "n't" has no
					// letter before the n and is left alone.
					if beforePrev, _ := utf8.DecodeLastRuneInString(s[:i-prevSize]); unicode.IsLetter(beforePrev) {
						cuts = append(cuts, i-prevSize)
					}
				} else {
					cuts = append(cuts, i)
				}
			case lang.ApostropheSplitLeft:
				cuts = append(cuts, i+1)
			default:
				cuts = append(cuts, i, i+1)
			}
		case unicode.IsDigit(prev) && unicode.IsLetter(next):
			if p.Apostrophe == lang.ApostropheSplitRight {
				cuts = append(cuts, i) // "1990 's"
			} else {
				cuts = append(cuts, i, i+1)
			}
		}
	}
	if len(cuts) == 0 {
		return s
	}

	sort.Ints(cuts)
	var b strings.Builder
	b.Grow(len(s) + len(cuts))
	last := 0
	for _, c := range cuts {
		b.WriteString(s[last:c])
		b.WriteByte(' ')
		last = c
	}
	b.WriteString(s[last:])
	return normalizeWhitespace(b.String())
}

// finalize collapses whitespace and detaches a sentence-final period that
// hides before a closing quote, which the period stage cannot see.
func finalize(s string) string {
	s = normalizeWhitespace(s)
	switch {
	case strings.HasSuffix(s, ". '") && len(s) > 3 && s[len(s)-4] != ' ' && s[len(s)-4] != '.':
		s = s[:len(s)-3] + " . '"
	case strings.HasSuffix(s, ".'") && len(s) > 2 && s[len(s)-3] != ' ' && s[len(s)-3] != '.':
		s = s[:len(s)-2] + " . '"
	}
	return s
}

// escaper rewrites characters that are markup or factor separators in
// downstream MT pipelines. Applied after tokenization when escaping is on.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"|", "&#124;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	"\"", "&quot;",
	"[", "&#91;",
	"]", "&#93;",
)
