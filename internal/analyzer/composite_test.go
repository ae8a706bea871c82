package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zombar/textscore/internal/models"
)

func TestScore_KnownSignals(t *testing.T) {
	signals := models.Signals{
		Readability: models.Readability{Flesch: 50},
		Originality: models.Originality{TTR: 0.35, Hapax: 0.1},
		Style:       models.Style{Burstiness: 5, StopRatio: 0.5, PassiveHits: 1, WeaselHits: 1, Entropy: 4},
		Counts:      models.Counts{Paragraphs: 3, Sentences: 10},
	}
	hints := models.Hints{GrammarPenalty: 2, EvidenceBonus: 10}
	signals.Originality.Links = 2

	c := Score(signals, hints)

	assert.InDelta(t, 60, c.Breakdown.Originality, 1e-9)
	assert.InDelta(t, 95, c.Breakdown.Clarity, 1e-9)
	assert.InDelta(t, 36, c.Breakdown.Evidence, 1e-9)
	assert.InDelta(t, 47, c.Breakdown.Structure, 1e-9)
	assert.InDelta(t, 78, c.Breakdown.Voice, 1e-9)
	assert.InDelta(t, 82, c.Breakdown.Mechanics, 1e-9)
	assert.InDelta(t, 66.75, c.Quality, 1e-9)
	assert.InDelta(t, 61, c.AIRisk, 1e-9)
}

func TestScore_Bounds(t *testing.T) {
	texts := []string{
		"",
		"x",
		strings.Repeat("very very very very ", 200),
		strings.TrimSpace(strings.Repeat(twentyWords+" ", 5)),
		"Supercalifragilisticexpialidocious antidisestablishmentarianism floccinaucinihilipilification.",
		"See https://a.io https://b.io https://c.io https://d.io https://e.io https://f.io https://g.io https://h.io https://i.io https://j.io https://k.io https://l.io https://m.io",
	}
	hints := []models.Hints{
		{},
		{GrammarPenalty: 15, ClarityPenalty: 15, EvidenceBonus: 30},
	}

	for _, text := range texts {
		for _, h := range hints {
			c := Score(AnalyzeText(text), h)
			for name, v := range map[string]float64{
				"originality": c.Breakdown.Originality,
				"clarity":     c.Breakdown.Clarity,
				"evidence":    c.Breakdown.Evidence,
				"structure":   c.Breakdown.Structure,
				"voice":       c.Breakdown.Voice,
				"mechanics":   c.Breakdown.Mechanics,
				"quality":     c.Quality,
				"ai_risk":     c.AIRisk,
			} {
				assert.GreaterOrEqual(t, v, 0.0, "%s below range for %q", name, text)
				assert.LessOrEqual(t, v, 100.0, "%s above range for %q", name, text)
			}
		}
	}
}

func TestHintsFromSuggestions(t *testing.T) {
	issues := func(n int) []models.Issue { return make([]models.Issue, n) }

	tests := []struct {
		name     string
		s        models.Suggestions
		expected models.Hints
	}{
		{"empty", models.Suggestions{}, models.Hints{}},
		{"counts", models.Suggestions{Grammar: issues(3), Clarity: issues(2), Evidence: issues(1)},
			models.Hints{GrammarPenalty: 3, ClarityPenalty: 2, EvidenceBonus: 5}},
		{"capped", models.Suggestions{Grammar: issues(20), Clarity: issues(16), Evidence: issues(7)},
			models.Hints{GrammarPenalty: 15, ClarityPenalty: 15, EvidenceBonus: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HintsFromSuggestions(tt.s))
		})
	}
}

func TestCapQuality(t *testing.T) {
	tests := []struct {
		name     string
		counts   models.Counts
		quality  float64
		expected float64
	}{
		{"few words", models.Counts{Words: 119, Sentences: 10}, 80, 25},
		{"few sentences", models.Counts{Words: 400, Sentences: 4}, 80, 25},
		{"already low", models.Counts{Words: 10, Sentences: 1}, 12, 12},
		{"long enough", models.Counts{Words: 120, Sentences: 5}, 80, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CapQuality(tt.quality, tt.counts))
		})
	}
}

func TestComputeConfidence(t *testing.T) {
	full := ComputeConfidence(models.Counts{Words: 350, Sentences: 10, Paragraphs: 4})
	assert.Equal(t, models.Confidence{Quality: 100, AI: 100, TooShort: false}, full)

	empty := ComputeConfidence(models.Counts{})
	assert.Equal(t, models.Confidence{Quality: 0, AI: 0, TooShort: true}, empty)

	partial := ComputeConfidence(models.Counts{Words: 150, Sentences: 5, Paragraphs: 2})
	assert.Equal(t, 50, partial.Quality) // 0.325 + 0.125 + 0.05
	assert.Equal(t, 45, partial.AI)      // 0.3 + 0.15
	assert.False(t, partial.TooShort)
}
