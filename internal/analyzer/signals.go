package analyzer

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/zombar/textscore/internal/models"
	"github.com/zombar/textscore/internal/textutil"
)

const repetitionWindow = 4

var (
	quoteChars     = regexp.MustCompile(`["“”'‘’]`)
	linkPattern    = regexp.MustCompile(`(?i)https?://|www\.`)
	passivePattern = regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+\w+(ed|en)\b`)
	paragraphBreak = regexp.MustCompile(`\n\s*\n`)
)

// AnalyzeText extracts readability, originality and style signals plus raw counts
func AnalyzeText(text string) models.Signals {
	originality := ComputeOriginality(text)
	return models.Signals{
		Readability: ComputeReadability(text),
		Originality: originality,
		Style:       ComputeStyle(text),
		Counts: models.Counts{
			Words:      len(textutil.Words(text)),
			Sentences:  len(textutil.Sentences(text)),
			Paragraphs: countParagraphs(text),
			Unique:     originality.Unique,
		},
	}
}

// ComputeOriginality calculates lexical diversity, 4-gram reuse, quoting and links
func ComputeOriginality(text string) models.Originality {
	words := textutil.Words(text)
	wc := float64(len(words))

	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	hapax := 0
	for _, c := range counts {
		if c == 1 {
			hapax++
		}
	}

	return models.Originality{
		TTR:         textutil.SafeDiv(float64(len(counts)), wc),
		Hapax:       textutil.SafeDiv(float64(hapax), wc),
		Repetition:  repetitionRatio(words, repetitionWindow),
		QuotesRatio: textutil.SafeDiv(float64(textutil.CountMatches(quoteChars, text)), float64(utf8.RuneCountInString(text))),
		Links:       textutil.CountMatches(linkPattern, text),
		Unique:      len(counts),
	}
}

// repetitionRatio is the share of n-word windows whose sequence already appeared earlier
func repetitionRatio(words []string, n int) float64 {
	windows := len(words) - n + 1
	if windows < 1 {
		windows = 1
	}
	seen := make(map[string]bool)
	repeats := 0
	for i := 0; i+n <= len(words); i++ {
		key := strings.Join(words[i:i+n], " ")
		if seen[key] {
			repeats++
		}
		seen[key] = true
	}
	return textutil.SafeDiv(float64(repeats), float64(windows))
}

// ComputeStyle calculates cadence, stop-word usage, passive/weasel hits and entropy
func ComputeStyle(text string) models.Style {
	sentences := textutil.Sentences(text)
	lengths := make([]int, len(sentences))
	for i, s := range sentences {
		lengths[i] = len(textutil.Words(s))
	}

	words := textutil.Words(text)

	return models.Style{
		Burstiness:  textutil.StdDev(lengths),
		StopRatio:   textutil.SafeDiv(float64(textutil.StopWordCount(words)), float64(len(words))),
		PassiveHits: textutil.CountMatches(passivePattern, text),
		WeaselHits:  countWeaselPhrases(text),
		Entropy:     charEntropy(text),
	}
}

// countWeaselPhrases counts hedge phrases present anywhere in text. Matching is by substring,
// so "clearly" also hits inside "unclearly"; each phrase counts at most once.
func countWeaselPhrases(text string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, phrase := range textutil.WeaselPhrases {
		if strings.Contains(lower, phrase) {
			hits++
		}
	}
	return hits
}

// charEntropy is the Shannon entropy in bits of the character distribution
func charEntropy(text string) float64 {
	total := 0
	freq := make(map[rune]int)
	for _, r := range text {
		freq[r]++
		total++
	}
	if total == 0 {
		return 0
	}
	// summed in rune order so the result is bit-identical across runs
	runes := make([]rune, 0, len(freq))
	for r := range freq {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	entropy := 0.0
	for _, r := range runes {
		p := float64(freq[r]) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// countParagraphs counts blocks separated by blank lines
func countParagraphs(text string) int {
	count := 0
	for _, p := range paragraphBreak.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			count++
		}
	}
	return count
}
