package analyzer

import (
	"math"
	"regexp"

	"github.com/zombar/textscore/internal/models"
	"github.com/zombar/textscore/internal/textutil"
)

var (
	silentSuffix = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	leadingY     = regexp.MustCompile(`^y`)
	vowelGroup   = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// ComputeReadability calculates the seven grade/ease indices for text.
// Zero word or sentence counts are guarded, so the result is always finite.
func ComputeReadability(text string) models.Readability {
	words := textutil.Words(text)
	wc := float64(len(words))
	sc := float64(len(textutil.Sentences(text)))

	chars, syllables, complexWords, longWords := 0, 0, 0, 0
	for _, w := range words {
		s := countSyllablesInWord(w)
		chars += len(w)
		syllables += s
		if s >= 3 {
			complexWords++
		}
		if len(w) > 6 {
			longWords++
		}
	}

	asl := textutil.SafeDiv(wc, sc)
	asw := textutil.SafeDiv(float64(syllables), wc)
	charsPerWord := textutil.SafeDiv(float64(chars), wc)

	return models.Readability{
		Flesch:       206.835 - 1.015*asl - 84.6*asw,
		FKGrade:      0.39*asl + 11.8*asw - 15.59,
		Gunning:      0.4 * (asl + 100*textutil.SafeDiv(float64(complexWords), wc)),
		SMOG:         1.043*math.Sqrt(textutil.SafeDiv(float64(complexWords)*30, sc)) + 3.1291,
		LIX:          asl + 100*textutil.SafeDiv(float64(longWords), wc),
		ARI:          4.71*charsPerWord + 0.5*asl - 21.43,
		ColemanLiau:  0.0588*(100*charsPerWord) - 0.296*(100*textutil.SafeDiv(sc, wc)) - 15.8,
		ComplexWords: complexWords,
		Syllables:    syllables,
	}
}

// countSyllablesInWord approximates syllables in a lower-cased word
func countSyllablesInWord(word string) int {
	if len(word) <= 3 {
		return 1
	}
	word = silentSuffix.ReplaceAllString(word, "")
	word = leadingY.ReplaceAllString(word, "")
	if count := len(vowelGroup.FindAllStringIndex(word, -1)); count > 1 {
		return count
	}
	return 1
}
