// Package textnorm prepares request text for the model and for echo metadata
//
// Model input pipeline
// 1 drop NUL, DEL, C0 controls other than \n \r \t, C1 controls, invalid UTF-8
// 2 Unicode NFC so decomposed Hangul jamo reach the tokenizer composed
// 3 strip BOM and zero width space; ZWJ and ZWNJ stay, they shape Indic and Persian script
//
// Case, punctuation and whitespace are kept: paragraph structure and style are signal
package textnorm

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PreviewRunes is the echo preview cap in characters
const PreviewRunes = 100

// Ellipsis is appended to truncated previews
const Ellipsis = "..."

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.Predicate(invisible)),
		)
	},
}

func invisible(r rune) bool { return r == '\ufeff' || r == '\u200b' }

// ForModel returns s cleaned for tokenization
func ForModel(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// transform only fails on malformed input which Sanitize already removed
		return s
	}
	return out
}

// Sanitize drops control characters other than \n \r \t and every invalid UTF-8 byte
// A literal U+FFFD is dropped too; it carries no signal for the model
func Sanitize(s string) string {
	if !strings.ContainsFunc(s, unwanted) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unwanted(r) {
			return -1
		}
		return r
	}, s)
}

func unwanted(r rune) bool {
	switch r {
	case '\n', '\r', '\t':
		return false
	case utf8.RuneError:
		return true
	}
	return unicode.IsControl(r)
}

// ForModelAll applies ForModel to each element into a new slice
func ForModelAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = ForModel(s)
	}
	return out
}

// CharCount counts characters as Unicode code points
func CharCount(s string) int { return utf8.RuneCountInString(s) }

// IsBlank reports whether s has no non-whitespace character
func IsBlank(s string) bool { return strings.TrimSpace(s) == "" }

// IsBlankForModel reports whether nothing but whitespace survives ForModel
func IsBlankForModel(s string) bool { return IsBlank(s) || IsBlank(ForModel(s)) }

// Preview returns the first PreviewRunes characters plus Ellipsis when s is longer,
// otherwise s unchanged
func Preview(s string) string {
	return PreviewN(s, PreviewRunes)
}

// PreviewN is Preview with a custom cap
func PreviewN(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos] + Ellipsis
		}
		i++
	}
	return s
}
