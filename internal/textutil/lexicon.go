package textutil

var stopWords = newSet(
	"the", "a", "an", "and", "or", "but", "if", "then", "when", "at", "by", "for", "with", "about",
	"against", "between", "into", "through", "during", "before", "after", "above", "below", "to",
	"from", "up", "down", "in", "out", "on", "off", "over", "under", "again", "further", "than",
	"once", "here", "there", "why", "how", "all", "any", "both", "each", "few", "more", "most",
	"other", "some", "such", "no", "nor", "not", "only", "own", "same", "so", "too", "very", "can",
	"will", "just", "don", "should", "now",
)

// WeaselPhrases are hedge phrases matched as case-insensitive substrings.
var WeaselPhrases = []string{
	"clearly", "obviously", "undoubtedly", "everyone knows", "many believe", "it is said",
	"arguably", "in general", "basically", "virtually", "literally", "sort of", "kind of",
	"somewhat", "quite", "rather",
}

// IsStopWord reports whether the lower-cased word is in the stop-word set.
func IsStopWord(word string) bool {
	return stopWords[word]
}

// StopWordCount returns how many of words are stop words.
func StopWordCount(words []string) int {
	n := 0
	for _, w := range words {
		if stopWords[w] {
			n++
		}
	}
	return n
}

func newSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
