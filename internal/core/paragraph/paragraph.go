// Package paragraph splits documents into blank-line delimited paragraph units
package paragraph

import (
	"strings"
	"unicode"
)

// Separator is the canonical blank line used when joining paragraphs back together
const Separator = "\n\n"

// Unit is one paragraph of a source document
// Index is the zero based position in document order
type Unit struct {
	Index int
	Text  string
}

// Split returns the trimmed, non-empty paragraphs of doc in document order
// A paragraph boundary is any whitespace run holding two or more '\n' characters
// A document with no boundary yields one paragraph, an all-whitespace document yields none
func Split(doc string) []string {
	out := make([]string, 0, 4)
	start := 0   // byte offset where the current segment begins
	wsStart := 0 // byte offset where the current whitespace run begins
	inWS := false
	newlines := 0

	emit := func(seg string) {
		if s := strings.TrimSpace(seg); s != "" {
			out = append(out, s)
		}
	}

	for i, r := range doc {
		if unicode.IsSpace(r) {
			if !inWS {
				inWS = true
				wsStart = i
				newlines = 0
			}
			if r == '\n' {
				newlines++
			}
			continue
		}
		if inWS && newlines >= 2 {
			emit(doc[start:wsStart])
			start = i
		}
		inWS = false
	}
	emit(doc[start:])
	return out
}

// Units is Split with positional indexes attached
func Units(doc string) []Unit {
	parts := Split(doc)
	out := make([]Unit, len(parts))
	for i, p := range parts {
		out[i] = Unit{Index: i, Text: p}
	}
	return out
}

// Texts flattens units back to their text in order
func Texts(units []Unit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.Text
	}
	return out
}

// Join rebuilds a document from paragraphs using Separator
func Join(paras []string) string { return strings.Join(paras, Separator) }
