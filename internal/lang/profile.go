package lang

import "errors"

// ErrUnknownLanguage is returned by Parse for codes outside the supported set.
var ErrUnknownLanguage = errors.New("unknown language")

// PrefixKind classifies a nonbreaking prefix.
type PrefixKind int

const (
	// PrefixAlways keeps a following period attached regardless of context
	// ("Dr." in English).
	PrefixAlways PrefixKind = iota
	// PrefixNumericOnly keeps the period attached only when the next word
	// starts with a digit ("No. 7").
	PrefixNumericOnly
)

// ApostrophePolicy selects how a word-internal apostrophe between letters is
// handled during contraction splitting.
type ApostrophePolicy int

const (
	// ApostropheIsolate separates every such apostrophe into its own token.
	// Default for languages without a contraction convention.
	ApostropheIsolate ApostrophePolicy = iota
	// ApostropheSplitRight keeps the apostrophe with the following clitic:
	// "he's" -> "he 's", "can't" -> "ca n't".
	ApostropheSplitRight
	// ApostropheSplitLeft keeps the apostrophe with the preceding elided
	// article: "l'eau" -> "l' eau".
	ApostropheSplitLeft
	// ApostropheKeep leaves word-internal apostrophes untouched (Somali and
	// Tetun glottal stops).
	ApostropheKeep
)

// Profile is the immutable per-language data bundle consulted by the cascade.
// Profiles are built once at package init and shared, read-only, across all
// concurrent tokenization tasks.
type Profile struct {
	Lang Language

	// Prefixes maps a nonbreaking prefix (case-sensitive, whole token) to
	// its kind.
	Prefixes map[string]PrefixKind

	// Apostrophe is the contraction-splitting policy.
	Apostrophe ApostrophePolicy

	// Clitics lists the apostrophe-led particles that stay attached to the
	// apostrophe once split off ("'s", "'ll", ...), keyed without the
	// apostrophe. Only meaningful for ApostropheSplitRight.
	Clitics map[string]bool

	// IntraWord is a punctuation rune that may appear inside words in this
	// language (Finnish/Swedish colon, Catalan middle dot, Tetun
	// apostrophe). It is not isolated while the next character is a
	// lowercase letter. Zero means none.
	IntraWord rune
}

var profiles = buildProfiles()

// ProfileFor returns the profile for l. Lookup is an array index; the closed
// Language enum guarantees a profile exists for every constructible value.
func ProfileFor(l Language) *Profile {
	return &profiles[l]
}

var englishClitics = map[string]bool{
	"s": true, "m": true, "d": true, "t": true,
	"ll": true, "re": true, "ve": true, "em": true,
}

func buildProfiles() [numLanguages]Profile {
	var p [numLanguages]Profile
	for i := range p {
		p[i] = Profile{
			Lang:       Language(i),
			Prefixes:   map[string]PrefixKind{},
			Apostrophe: ApostropheIsolate,
		}
	}

	for l, prefixes := range prefixTables {
		p[l].Prefixes = prefixes
	}

	p[En].Apostrophe = ApostropheSplitRight
	p[En].Clitics = englishClitics

	for _, l := range []Language{Fr, It, Ga, Ca} {
		p[l].Apostrophe = ApostropheSplitLeft
	}
	for _, l := range []Language{So, Tdt} {
		p[l].Apostrophe = ApostropheKeep
	}

	// Punctuation that doubles as a word-internal character.
	p[Fi].IntraWord = ':'
	p[Sv].IntraWord = ':'
	p[Ca].IntraWord = '·'
	p[Tdt].IntraWord = '\''

	return p
}
