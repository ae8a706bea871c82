// Package textutil holds the tokenizer, the shared word lists and the numeric guards used by
// every scoring stage.
package textutil

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-z']+`)

// Sentences normalizes whitespace and splits after '.', '!' or '?' followed by a space.
// Terminal punctuation stays attached to its sentence.
func Sentences(text string) []string {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return []string{}
	}

	sentences := []string{}
	start := 0
	for i := 1; i < len(normalized); i++ {
		if normalized[i] != ' ' {
			continue
		}
		switch normalized[i-1] {
		case '.', '!', '?':
			if s := normalized[start:i]; s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}
	if s := normalized[start:]; s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// Words returns the lower-cased runs of letters and apostrophes in text.
func Words(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	if words == nil {
		return []string{}
	}
	return words
}

// CountMatches returns the number of non-overlapping matches of re in text.
func CountMatches(re *regexp.Regexp, text string) int {
	return len(re.FindAllStringIndex(text, -1))
}
