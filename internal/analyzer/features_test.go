package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureValues_Counters(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		check func(t *testing.T, text string)
	}{
		{
			name: "template transitions",
			text: "Firstly, we start. Secondly, we continue. In conclusion, we stop.",
			check: func(t *testing.T, text string) {
				assert.Equal(t, 3, FeatureValues(text, AnalyzeText(text)).TemplateTransitions)
			},
		},
		{
			name: "generic openers",
			text: "The cat sat. However, it left. Dogs bark. Thus it ends.",
			check: func(t *testing.T, text string) {
				assert.Equal(t, 3, FeatureValues(text, AnalyzeText(text)).GenericOpeners)
			},
		},
		{
			name: "opener must be a whole word",
			text: "Theory matters. Items vary.",
			check: func(t *testing.T, text string) {
				assert.Equal(t, 0, FeatureValues(text, AnalyzeText(text)).GenericOpeners)
			},
		},
		{
			name: "digits and years",
			text: "In 1999 and 2024 we had 3 cats.",
			check: func(t *testing.T, text string) {
				f := FeatureValues(text, AnalyzeText(text))
				assert.Equal(t, 9, f.DigitsCount)
				assert.Equal(t, 2, f.YearCount)
			},
		},
		{
			name: "punctuation variety",
			text: "a; b: c - d (e) 50%",
			check: func(t *testing.T, text string) {
				assert.Equal(t, 6, FeatureValues(text, AnalyzeText(text)).PunctuationVariety)
			},
		},
		{
			name: "proper nouns",
			text: "Alice met Bob in Paris.",
			check: func(t *testing.T, text string) {
				assert.Equal(t, 3, FeatureValues(text, AnalyzeText(text)).ProperNounsApprox)
			},
		},
		{
			name: "parentheticals and dashes",
			text: "x (y) z -- w — v",
			check: func(t *testing.T, text string) {
				assert.Equal(t, 4, FeatureValues(text, AnalyzeText(text)).ParentheticalCount)
			},
		},
		{
			name: "first person is case-insensitive",
			text: "I think my dog likes us.",
			check: func(t *testing.T, text string) {
				assert.Equal(t, 3, FeatureValues(text, AnalyzeText(text)).FirstPersonCount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.text)
		})
	}
}

func TestFeatureValues_CarriesSignals(t *testing.T) {
	text := "The report was written quickly. See https://example.com for details."
	signals := AnalyzeText(text)
	f := FeatureValues(text, signals)

	assert.Equal(t, signals.Style.Entropy, f.Entropy)
	assert.Equal(t, signals.Style.Burstiness, f.Burstiness)
	assert.Equal(t, signals.Style.PassiveHits, f.PassiveHits)
	assert.Equal(t, 1, f.LinkCount)
	assert.Equal(t, 2, f.Sentences)
	assert.Equal(t, 11, f.Words) // the URL splits into https, example and com
}

func TestFeatureValues_FirstPersonNarrative(t *testing.T) {
	text := `I moved to Lisbon in 2019 with my sister. We rented a flat (tiny, loud) near the river; ` +
		`our landlord said "welcome home" on day 1. My notes are at https://example.org/notes.`
	f := FeatureValues(text, AnalyzeText(text))
	human := HumanEvidence(f)

	assert.Greater(t, f.FirstPersonCount, 0)
	assert.Greater(t, f.QuotesCount, 0)
	assert.Greater(t, human.FirstDensity, 0.0)
	assert.Greater(t, human.DetailsDensity, 0.0)
	assert.Equal(t, 1.0, human.QuotesLinks)
	assert.Greater(t, human.Score, 0.0)
}
