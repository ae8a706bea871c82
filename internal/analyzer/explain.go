package analyzer

import (
	"math"

	"github.com/zombar/textscore/internal/models"
	"github.com/zombar/textscore/internal/textutil"
)

// Defaults for EstimatorConfig
const (
	DefaultSensitivity = 1.4
	DefaultHumanBonus  = 22.0
)

// Verdict thresholds on the final AI percentage
const (
	VerdictHigh   = "HIGH"
	VerdictMedium = "MEDIUM"
	VerdictLow    = "LOW"
)

// EstimatorConfig tunes the AI-likelihood estimator.
// Sensitivity multiplies the summed AI evidence; HumanBonus is the number of points removed
// when every human-evidence signal is saturated.
type EstimatorConfig struct {
	Sensitivity float64
	HumanBonus  float64
}

// DefaultEstimatorConfig returns the calibrated defaults
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		Sensitivity: DefaultSensitivity,
		HumanBonus:  DefaultHumanBonus,
	}
}

// Estimator computes an explained AI-likelihood percentage from a feature vector
type Estimator struct {
	cfg EstimatorConfig
}

// NewEstimator creates an Estimator
func NewEstimator(cfg EstimatorConfig) *Estimator {
	return &Estimator{cfg: cfg}
}

type aiFeature struct {
	key    string
	label  string
	weight float64
	value  func(f models.Features) float64
}

// aiFeatures are the AI-evidence signals; weights sum to 1.0
var aiFeatures = []aiFeature{
	{"lowEntropy", "Low entropy", 0.28, func(f models.Features) float64 {
		return textutil.Clamp01((7.5 - f.Entropy) / 7.5)
	}},
	{"uniformCadence", "Uniform cadence (low burst.)", 0.18, func(f models.Features) float64 {
		return textutil.Clamp01((13 - f.Burstiness) / 13)
	}},
	{"unnaturalStop", "Unnatural stop-word ratio", 0.12, func(f models.Features) float64 {
		return textutil.Clamp01((math.Abs(f.StopRatio-0.47) - 0.03) / 0.20)
	}},
	{"templating", "Template transitions", 0.10, func(f models.Features) float64 {
		return textutil.Clamp01(float64(f.TemplateTransitions) / 4)
	}},
	{"repeatNgrams", "Repetition of n-grams", 0.10, func(f models.Features) float64 {
		return textutil.Clamp01(f.Repetition * 6.5)
	}},
	{"genericOpeners", "Generic sentence openers", 0.10, func(f models.Features) float64 {
		if f.Sentences == 0 {
			return 0
		}
		return textutil.Clamp01(textutil.SafeDiv(float64(f.GenericOpeners), float64(f.Sentences)))
	}},
	{"sparseLinks", "Sparse citations/links", 0.07, sparseLinks},
	{"passiveVoice", "Passive voice", 0.05, func(f models.Features) float64 {
		return textutil.Clamp01(float64(f.PassiveHits) / 4)
	}},
}

// sparseLinks only penalizes texts long enough to be expected to cite something
func sparseLinks(f models.Features) float64 {
	if f.Words < 400 {
		return 0
	}
	switch {
	case f.LinkCount == 0:
		return 1
	case f.LinkCount <= 1:
		return 0.6
	case f.LinkCount <= 2:
		return 0.4
	default:
		return 0
	}
}

// Explain computes the AI percentage and per-feature contributions.
// The raw score is shrunk toward 50 in proportion to how little text there is.
func (e *Estimator) Explain(f models.Features) models.Explanation {
	contributions := make([]models.Contribution, len(aiFeatures))
	evidence := 0
	for i, feat := range aiFeatures {
		v := feat.value(f)
		c := int(textutil.Round(100 * feat.weight * v))
		contributions[i] = models.Contribution{
			Key:          feat.key,
			Label:        feat.label,
			Weight:       feat.weight,
			Score:        int(textutil.Round(100 * v)),
			Contribution: c,
		}
		evidence += c
	}

	human := HumanEvidence(f)
	aiRaw := textutil.Clamp(float64(evidence)*e.cfg.Sensitivity, 0, 100)
	aiRaw = textutil.Clamp(aiRaw-e.cfg.HumanBonus*human.Score, 0, 100)

	conf := Confidence(f.Words, f.Sentences)
	percent := int(textutil.Round(aiRaw*conf + 50*(1-conf)))

	return models.Explanation{
		AIPercent:     percent,
		Contributions: contributions,
		EvidenceRaw:   evidence,
		AIRaw:         aiRaw,
		Human:         human,
		Confidence:    conf,
		Verdict:       Verdict(percent),
	}
}

// HumanEvidence combines the counterweight signals into a score in [0, 1]
func HumanEvidence(f models.Features) models.HumanEvidence {
	sc := float64(f.Sentences)
	h := models.HumanEvidence{
		FirstDensity:   textutil.Clamp01(float64(f.FirstPersonCount) / math.Max(1, sc)),
		DetailsDensity: textutil.Clamp01(float64(f.DigitsCount+2*f.YearCount) / math.Max(6, sc*1.2)),
		PunctVariety:   textutil.Clamp01(float64(f.PunctuationVariety) / 6),
		ProperNouns:    textutil.Clamp01(float64(f.ProperNounsApprox) / math.Max(6, sc)),
		Parentheticals: textutil.Clamp01(float64(f.ParentheticalCount) / math.Max(5, sc)),
	}
	quotesLinks := 0.0
	if f.QuotesCount > 0 {
		quotesLinks += 0.5
	}
	if f.LinkCount > 0 {
		quotesLinks += 0.5
	}
	h.QuotesLinks = textutil.Clamp01(quotesLinks)

	h.Score = 0.25*h.FirstDensity +
		0.20*h.DetailsDensity +
		0.20*h.QuotesLinks +
		0.15*h.PunctVariety +
		0.10*h.ProperNouns +
		0.10*h.Parentheticals
	return h
}

// Confidence is the length-based evidence weight in [0, 1]
func Confidence(words, sentences int) float64 {
	return textutil.Clamp01(0.70*math.Min(1, float64(words)/350) + 0.30*math.Min(1, float64(sentences)/10))
}

// Verdict buckets an AI percentage
func Verdict(percent int) string {
	switch {
	case percent >= 70:
		return VerdictHigh
	case percent >= 40:
		return VerdictMedium
	default:
		return VerdictLow
	}
}
