// Package lang defines the closed set of supported languages and the
// immutable per-language profiles that drive tokenization behavior.
//
// Language variants map one-to-one onto the Moses nonbreaking-prefix
// tables. There is no "undefined" fallback; callers that need to handle an
// unsupported code must substitute a related supported language before
// entering the core.
package lang

import "fmt"

// Language identifies one supported language. The zero value is As
// (Assamese); use Parse to map user-supplied codes.
type Language int

const (
	As Language = iota
	Bn
	Ca
	Cs
	De
	El
	En
	Es
	Et
	Fi
	Fr
	Ga
	Gu
	Hi
	Hu
	Is
	It
	Kn
	Lt
	Lv
	Ml
	Mni
	Mr
	Nl
	Or
	Pa
	Pl
	Pt
	Ro
	Ru
	Sk
	Sl
	So
	Sv
	Ta
	Tdt
	Te
	Yue
	Zh

	numLanguages int = iota
)

var codes = [numLanguages]string{
	As:  "as",
	Bn:  "bn",
	Ca:  "ca",
	Cs:  "cs",
	De:  "de",
	El:  "el",
	En:  "en",
	Es:  "es",
	Et:  "et",
	Fi:  "fi",
	Fr:  "fr",
	Ga:  "ga",
	Gu:  "gu",
	Hi:  "hi",
	Hu:  "hu",
	Is:  "is",
	It:  "it",
	Kn:  "kn",
	Lt:  "lt",
	Lv:  "lv",
	Ml:  "ml",
	Mni: "mni",
	Mr:  "mr",
	Nl:  "nl",
	Or:  "or",
	Pa:  "pa",
	Pl:  "pl",
	Pt:  "pt",
	Ro:  "ro",
	Ru:  "ru",
	Sk:  "sk",
	Sl:  "sl",
	So:  "so",
	Sv:  "sv",
	Ta:  "ta",
	Tdt: "tdt",
	Te:  "te",
	Yue: "yue",
	Zh:  "zh",
}

// String returns the ISO-style code for l, e.g. "en".
func (l Language) String() string {
	if l < 0 || int(l) >= numLanguages {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return codes[l]
}

var byCode = func() map[string]Language {
	m := make(map[string]Language, numLanguages)
	for i, c := range codes {
		m[c] = Language(i)
	}
	return m
}()

// Parse maps a language code to its Language value. It is the shell-side
// boundary where unsupported codes are rejected; the core itself never sees
// an unsupported language.
func Parse(code string) (Language, error) {
	l, ok := byCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return l, nil
}

// Codes returns all supported language codes in enum order.
func Codes() []string {
	out := make([]string, numLanguages)
	copy(out, codes[:])
	return out
}
