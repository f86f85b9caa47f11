// Package langhint tags a document with its dominant writing system
package langhint

import "unicode"

// Undetermined is the BCP-47 tag used when no language is decided
const Undetermined = "und"

// minLetters is the letter count below which no language is claimed
const minLetters = 20

// Script names reported in Hint.Script
const (
	ScriptHangul   = "Hangul"
	ScriptKana     = "Kana"
	ScriptHan      = "Han"
	ScriptLatin    = "Latin"
	ScriptCyrillic = "Cyrillic"
	ScriptOther    = "Other"
)

// Hint is the coarse script and language of a text
type Hint struct {
	Script string
	Lang   string
	// Share is the dominant script's fraction of all letters
	Share float64
	// Letters counts letters of any script
	Letters int
}

// Detect counts letters by script and picks the dominant one
// Lang is set only when the mapping is unambiguous: Hangul means ko, any kana means ja
func Detect(s string) Hint {
	counts := map[string]int{}
	letters := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		counts[scriptOf(r)]++
	}
	h := Hint{Lang: Undetermined, Letters: letters}
	if letters == 0 {
		return h
	}

	// fixed order so ties resolve the same way every time, specific scripts before Latin
	best := 0
	for _, name := range []string{ScriptHangul, ScriptKana, ScriptHan, ScriptCyrillic, ScriptLatin, ScriptOther} {
		if counts[name] > best {
			best = counts[name]
			h.Script = name
		}
	}
	h.Share = float64(best) / float64(letters)

	if letters >= minLetters {
		switch {
		case counts[ScriptKana] > 0:
			h.Lang = "ja"
		case h.Script == ScriptHangul:
			h.Lang = "ko"
		}
	}
	return h
}

func scriptOf(r rune) string {
	switch {
	case unicode.Is(unicode.Hangul, r):
		return ScriptHangul
	case unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r):
		return ScriptKana
	case unicode.Is(unicode.Han, r):
		return ScriptHan
	case unicode.Is(unicode.Latin, r):
		return ScriptLatin
	case unicode.Is(unicode.Cyrillic, r):
		return ScriptCyrillic
	}
	return ScriptOther
}
