package analyzer

import (
	"math"

	"github.com/zombar/textscore/internal/models"
	"github.com/zombar/textscore/internal/textutil"
)

// Overall quality weights
const (
	weightOriginality = 0.35
	weightClarity     = 0.25
	weightEvidence    = 0.15
	weightStructure   = 0.10
	weightVoice       = 0.10
	weightMechanics   = 0.05
)

// Short-sample policy
const (
	minWordsForQuality     = 120
	minSentencesForQuality = 5
	shortSampleQualityCap  = 25.0
)

// HintsFromSuggestions turns suggestion lists into capped scoring hints
func HintsFromSuggestions(s models.Suggestions) models.Hints {
	return models.Hints{
		GrammarPenalty: math.Min(15, float64(len(s.Grammar))),
		ClarityPenalty: math.Min(15, float64(len(s.Clarity))),
		EvidenceBonus:  math.Min(30, float64(len(s.Evidence)*5)),
	}
}

// Score maps signals and hints to the six quality dimensions, the overall quality score and
// the coarse AI-risk estimate. Quality does not include any AI-likelihood term.
func Score(signals models.Signals, hints models.Hints) models.Composite {
	orig := signals.Originality
	read := signals.Readability
	style := signals.Style
	counts := signals.Counts

	b := models.Breakdown{
		Originality: clamp100(60 + 25*(orig.TTR-0.35) + 20*(orig.Hapax-0.1) - 50*orig.Repetition - 20*orig.QuotesRatio),
		Clarity:     clamp100(75 + 0.4*read.Flesch - 3*hints.ClarityPenalty - 10*math.Max(0, style.StopRatio-0.55)),
		Evidence:    clamp100(10 + 8*float64(orig.Links) + hints.EvidenceBonus),
		Structure:   clamp100(40 + 15*math.Min(2, float64(counts.Paragraphs)/3) + 0.2*float64(counts.Sentences) - 2*style.Burstiness),
		Voice:       clamp100(70 - 3*float64(style.PassiveHits) - 4*float64(style.WeaselHits) + 3*math.Min(10, style.Burstiness)),
		Mechanics:   clamp100(90 - 4*hints.GrammarPenalty),
	}

	aiRisk := clamp100(50 - 6*(style.Entropy-4) - 2*(style.Burstiness-8) + 100*orig.Repetition + 5*float64(style.PassiveHits))

	quality := clamp100(weightOriginality*b.Originality +
		weightClarity*b.Clarity +
		weightEvidence*b.Evidence +
		weightStructure*b.Structure +
		weightVoice*b.Voice +
		weightMechanics*b.Mechanics)

	return models.Composite{
		Quality:   quality,
		AIRisk:    aiRisk,
		Breakdown: b,
	}
}

// IsTooShort reports whether a sample is too small for a stable quality reading
func IsTooShort(counts models.Counts) bool {
	return counts.Words < minWordsForQuality || counts.Sentences < minSentencesForQuality
}

// CapQuality applies the short-sample cap to a quality score
func CapQuality(quality float64, counts models.Counts) float64 {
	if IsTooShort(counts) {
		return math.Min(quality, shortSampleQualityCap)
	}
	return quality
}

// ComputeConfidence returns the advisory quality and AI confidence percentages
func ComputeConfidence(counts models.Counts) models.Confidence {
	wc := float64(counts.Words)
	sc := float64(counts.Sentences)
	paragraphs := float64(counts.Paragraphs)

	quality := math.Min(1, 0.65*math.Min(1, wc/300)+0.25*math.Min(1, sc/10)+0.10*math.Min(1, paragraphs/4))
	ai := math.Min(1, 0.7*math.Min(1, wc/350)+0.3*math.Min(1, sc/10))

	return models.Confidence{
		Quality:  int(textutil.Round(100 * quality)),
		AI:       int(textutil.Round(100 * ai)),
		TooShort: IsTooShort(counts),
	}
}

func clamp100(x float64) float64 {
	return textutil.Clamp(x, 0, 100)
}
