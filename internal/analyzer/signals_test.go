package analyzer

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twentyWords has no repeated word, so every 4-word window inside one copy is distinct
const twentyWords = "Rivers carve deep canyons over millions of years while wind slowly polishes exposed sandstone cliffs into smooth curving shapes today."

func TestComputeOriginality_Repetition(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat(twentyWords+" ", 5))
	orig := ComputeOriginality(text)

	// 100 words give 97 windows; every window starting in copies 2 to 5 was seen before
	assert.InDelta(t, 77.0/97.0, orig.Repetition, 1e-9)
	assert.InDelta(t, 0.2, orig.TTR, 1e-9)
	assert.Equal(t, 0.0, orig.Hapax)
	assert.Equal(t, 20, orig.Unique)
}

func TestComputeOriginality_LinksAndQuotes(t *testing.T) {
	orig := ComputeOriginality(`She said "go" and linked https://example.com plus WWW.example.org.`)

	assert.Equal(t, 2, orig.Links)
	assert.Greater(t, orig.QuotesRatio, 0.0)
	assert.Less(t, orig.QuotesRatio, 1.0)
}

func TestComputeOriginality_Empty(t *testing.T) {
	orig := ComputeOriginality("")

	assert.Equal(t, 0.0, orig.TTR)
	assert.Equal(t, 0.0, orig.Hapax)
	assert.Equal(t, 0.0, orig.Repetition)
	assert.Equal(t, 0.0, orig.QuotesRatio)
	assert.Equal(t, 0, orig.Links)
}

func TestComputeStyle(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		passive int
		weasel  int
		burst   float64
	}{
		{
			name:    "passive constructions",
			text:    "The cake was baked. The letters were written.",
			passive: 2,
			burst:   0,
		},
		{
			name:   "weasel phrases counted once each",
			text:   "Clearly this is quite obvious. Clearly it obviously works well.",
			weasel: 3, // clearly, quite, obviously
			burst:  0,
		},
		{
			name:   "weasel matched inside longer words",
			text:   "He spoke unclearly.",
			weasel: 1,
			burst:  0,
		},
		{
			name:  "uneven sentence lengths",
			text:  "One two. One two three four.",
			burst: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := ComputeStyle(tt.text)
			assert.Equal(t, tt.passive, style.PassiveHits)
			assert.Equal(t, tt.weasel, style.WeaselHits)
			assert.InDelta(t, tt.burst, style.Burstiness, 1e-9)
		})
	}
}

func TestCharEntropy(t *testing.T) {
	assert.Equal(t, 0.0, charEntropy(""))
	assert.Equal(t, 0.0, charEntropy("aaaa"))
	assert.InDelta(t, 1.0, charEntropy("abab"), 1e-12)
	assert.InDelta(t, 2.0, charEntropy("abcd"), 1e-12)

	// deterministic for the same input
	text := "The quick brown fox jumps over the lazy dog, “twice”."
	first := charEntropy(text)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, charEntropy(text))
	}
}

func TestCountParagraphs(t *testing.T) {
	assert.Equal(t, 0, countParagraphs(""))
	assert.Equal(t, 1, countParagraphs("single block\nwith a line break"))
	assert.Equal(t, 3, countParagraphs("a\n\nb\n  \n c\n\n\n"))
}

func TestAnalyzeText_Counts(t *testing.T) {
	text := "First paragraph here. It has two sentences.\n\nSecond paragraph is short."
	signals := AnalyzeText(text)

	assert.Equal(t, 11, signals.Counts.Words)
	assert.Equal(t, 3, signals.Counts.Sentences)
	assert.Equal(t, 2, signals.Counts.Paragraphs)
	assert.Equal(t, signals.Originality.Unique, signals.Counts.Unique)
}

func TestAnalyzeText_AllFinite(t *testing.T) {
	inputs := []string{"", "a", "?!.", "word word word word word", "http://x.y"}
	for _, in := range inputs {
		s := AnalyzeText(in)
		values := []float64{
			s.Originality.TTR, s.Originality.Hapax, s.Originality.Repetition, s.Originality.QuotesRatio,
			s.Style.Burstiness, s.Style.StopRatio, s.Style.Entropy,
		}
		for i, v := range values {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "input %q value %d not finite", in, i)
		}
	}
}
