package analyzer

import (
	"regexp"
	"strings"

	"github.com/zombar/textscore/internal/models"
	"github.com/zombar/textscore/internal/textutil"
)

var (
	templatePattern    = regexp.MustCompile(`(?i)\b(Firstly|Secondly|Thirdly|In conclusion)\b`)
	openerPattern      = regexp.MustCompile(`(?i)^(the|this|it|in|however|moreover|furthermore|additionally|overall|therefore|thus|consequently)\b`)
	evidenceQuotes     = regexp.MustCompile(`[“”"']`)
	firstPersonPattern = regexp.MustCompile(`\b(i|me|my|mine|we|us|our|ours)\b`)
	digitPattern       = regexp.MustCompile(`\d`)
	yearPattern        = regexp.MustCompile(`\b(1[89]\d{2}|20\d{2}|21\d{2})\b`)
	properNounPattern  = regexp.MustCompile(`\b[A-Z][a-z]{2,}\b`)
	parenPattern       = regexp.MustCompile(`[()]`)
	dashPattern        = regexp.MustCompile(`[—–-]{2,}|—|–`)
)

const varietyPunctuation = ";:—–-()[]/%"

// FeatureValues derives the estimator's feature vector from text and its extracted signals
func FeatureValues(text string, signals models.Signals) models.Features {
	return models.Features{
		Entropy:             signals.Style.Entropy,
		Burstiness:          signals.Style.Burstiness,
		Repetition:          textutil.Clamp01(signals.Originality.Repetition),
		PassiveHits:         signals.Style.PassiveHits,
		TemplateTransitions: textutil.CountMatches(templatePattern, text),
		LinkCount:           signals.Originality.Links,
		StopRatio:           textutil.Clamp01(signals.Style.StopRatio),
		GenericOpeners:      countGenericOpeners(text),
		Sentences:           len(textutil.Sentences(text)),
		Words:               len(textutil.Words(text)),

		QuotesCount:        textutil.CountMatches(evidenceQuotes, text),
		FirstPersonCount:   textutil.CountMatches(firstPersonPattern, strings.ToLower(text)),
		DigitsCount:        textutil.CountMatches(digitPattern, text),
		YearCount:          textutil.CountMatches(yearPattern, text),
		PunctuationVariety: punctuationVariety(text),
		ProperNounsApprox:  textutil.CountMatches(properNounPattern, text),
		ParentheticalCount: textutil.CountMatches(parenPattern, text) + textutil.CountMatches(dashPattern, text),
	}
}

// countGenericOpeners counts sentences that start with a stock discourse marker
func countGenericOpeners(text string) int {
	n := 0
	for _, s := range textutil.Sentences(text) {
		t := strings.TrimSpace(s)
		if t == "" {
			continue
		}
		if openerPattern.MatchString(t) {
			n++
		}
	}
	return n
}

func punctuationVariety(text string) int {
	seen := make(map[rune]bool)
	for _, r := range text {
		if strings.ContainsRune(varietyPunctuation, r) {
			seen[r] = true
		}
	}
	return len(seen)
}
