package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zombar/textscore/internal/models"
)

// machineLike has low entropy and flat cadence with no human counterweights besides links
func machineLike(words, sentences int) models.Features {
	return models.Features{
		Entropy:    4,
		Burstiness: 2,
		StopRatio:  0.47,
		LinkCount:  3,
		Words:      words,
		Sentences:  sentences,
	}
}

func TestAIFeatureWeights(t *testing.T) {
	sum := 0.0
	for _, f := range aiFeatures {
		sum += f.weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestExplain_KnownFeatures(t *testing.T) {
	e := NewEstimator(DefaultEstimatorConfig())
	exp := e.Explain(machineLike(400, 12))

	require.Len(t, exp.Contributions, len(aiFeatures))
	assert.Equal(t, "lowEntropy", exp.Contributions[0].Key)
	assert.Equal(t, 47, exp.Contributions[0].Score)
	assert.Equal(t, 13, exp.Contributions[0].Contribution)
	assert.Equal(t, 15, exp.Contributions[1].Contribution)
	assert.Equal(t, 28, exp.EvidenceRaw)
	assert.InDelta(t, 0.1, exp.Human.Score, 1e-9)
	assert.InDelta(t, 37, exp.AIRaw, 1e-9)
	assert.Equal(t, 1.0, exp.Confidence)
	assert.Equal(t, 37, exp.AIPercent)
	assert.Equal(t, VerdictLow, exp.Verdict)
}

func TestExplain_ContributionsSumToEvidence(t *testing.T) {
	e := NewEstimator(DefaultEstimatorConfig())
	texts := []string{
		"",
		"Firstly, the plan works. Secondly, the plan scales. In conclusion, the plan is good.",
		twentyWords + " " + twentyWords,
	}
	for _, text := range texts {
		exp := e.Explain(FeatureValues(text, AnalyzeText(text)))
		sum := 0
		for _, c := range exp.Contributions {
			assert.GreaterOrEqual(t, c.Score, 0)
			assert.LessOrEqual(t, c.Score, 100)
			sum += c.Contribution
		}
		assert.Equal(t, exp.EvidenceRaw, sum, "text %q", text)
		assert.GreaterOrEqual(t, exp.AIPercent, 0)
		assert.LessOrEqual(t, exp.AIPercent, 100)
	}
}

func TestExplain_ShrinksShortSamplesTowardFifty(t *testing.T) {
	e := NewEstimator(DefaultEstimatorConfig())

	short := e.Explain(machineLike(80, 4))
	long := e.Explain(machineLike(400, 12))

	assert.Equal(t, 46, short.AIPercent)
	assert.Less(t, math.Abs(float64(short.AIPercent-50)), math.Abs(float64(long.AIPercent-50)))
}

func TestExplain_EmptyFeaturesIsFifty(t *testing.T) {
	exp := NewEstimator(DefaultEstimatorConfig()).Explain(models.Features{})
	assert.Equal(t, 50, exp.AIPercent)
	assert.Equal(t, 0.0, exp.Confidence)
	assert.Equal(t, VerdictMedium, exp.Verdict)
}

func TestExplain_HumanEvidenceLowersPercent(t *testing.T) {
	e := NewEstimator(DefaultEstimatorConfig())

	base := machineLike(400, 12)
	human := base
	human.FirstPersonCount = 8
	human.QuotesCount = 4
	human.DigitsCount = 10
	human.YearCount = 2
	human.PunctuationVariety = 4

	assert.Less(t, e.Explain(human).AIPercent, e.Explain(base).AIPercent)
}

func TestExplain_Sensitivity(t *testing.T) {
	f := machineLike(400, 12)
	f.LinkCount = 0 // no human evidence at all

	low := NewEstimator(EstimatorConfig{Sensitivity: 1.0}).Explain(f)
	high := NewEstimator(EstimatorConfig{Sensitivity: 2.0}).Explain(f)

	assert.Equal(t, 35, low.AIPercent) // 28 + sparse links 7
	assert.Equal(t, 70, high.AIPercent)
	assert.Equal(t, VerdictHigh, high.Verdict)
}

func TestSparseLinks(t *testing.T) {
	tests := []struct {
		words, links int
		expected     float64
	}{
		{399, 0, 0},
		{400, 0, 1},
		{400, 1, 0.6},
		{400, 2, 0.4},
		{400, 3, 0},
	}
	for _, tt := range tests {
		got := sparseLinks(models.Features{Words: tt.words, LinkCount: tt.links})
		assert.Equal(t, tt.expected, got, "words=%d links=%d", tt.words, tt.links)
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		percent  int
		expected string
	}{
		{0, VerdictLow},
		{39, VerdictLow},
		{40, VerdictMedium},
		{69, VerdictMedium},
		{70, VerdictHigh},
		{100, VerdictHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Verdict(tt.percent), "percent=%d", tt.percent)
	}
}
