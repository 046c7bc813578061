package orchestrator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// fillerWords are utterances the transcriber commonly emits for non-speech or
// hesitation. Kept in sync with the ignore list in the persona prompt.
var fillerWords = map[string]struct{}{
	"um": {}, "umm": {}, "uh": {}, "uhh": {}, "uhm": {},
	"hmm": {}, "hm": {}, "hmmm": {}, "mm": {}, "mhm": {}, "mmm": {},
	"err": {}, "er": {}, "eh": {}, "ah": {}, "oh": {}, "huh": {},
	"click": {}, "tap": {}, "beep": {},
}

// IsDegenerate reports whether transcribed text is too thin to answer: empty,
// pure punctuation, a single character, or nothing but filler utterances.
// This check runs before the generation call so degenerate input never costs
// a model round trip.
func IsDegenerate(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}

	stripped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, trimmed)
	if stripped == "" {
		return true
	}
	if utf8.RuneCountInString(stripped) == 1 {
		return true
	}

	for _, w := range strings.Fields(strings.ToLower(trimmed)) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w == "" {
			continue
		}
		if _, ok := fillerWords[w]; !ok {
			return false
		}
	}
	return true
}
