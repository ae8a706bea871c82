package analyzer

import (
	"fmt"
	"math"
	"regexp"

	"github.com/zombar/textscore/internal/models"
	"github.com/zombar/textscore/internal/textutil"
)

// Suggestion list limits
const (
	maxGrammarIssues  = 8
	maxClarityIssues  = 8
	maxEvidenceIssues = 5
)

// Suggestion sources
const (
	SourceLLM       = "llm"
	SourceHeuristic = "heuristic"
)

var straightOrCurlyQuote = regexp.MustCompile(`“|”|"`)

// HeuristicSuggestions produces rule-based grammar, clarity and evidence issues.
// It is used whenever no LLM suggestions are available.
func HeuristicSuggestions(text string, read models.Readability) models.Suggestions {
	s := models.Suggestions{
		Grammar:  []models.Issue{},
		Clarity:  []models.Issue{},
		Evidence: []models.Issue{},
		Source:   SourceHeuristic,
	}

	for i, sentence := range textutil.Sentences(text) {
		if wc := len(textutil.Words(sentence)); wc > 35 {
			s.Grammar = append(s.Grammar, models.Issue{
				Type: "grammar",
				Text: fmt.Sprintf("Sentence %d is very long (%d words).", i+1, wc),
				Fix:  "Split into 2–3 shorter sentences with one idea each.",
			})
		}
	}

	if read.FKGrade > 14 {
		s.Clarity = append(s.Clarity, models.Issue{
			Type: "clarity",
			Text: fmt.Sprintf("Readability grade ~%.1f (dense).", read.FKGrade),
			Fix:  "Shorten sentences, use simpler words, define terms.",
		})
	}

	if textutil.CountMatches(linkPattern, text) == 0 {
		s.Evidence = append(s.Evidence, models.Issue{Type: "evidence", Text: "No citations or links to sources."})
	}
	if len(text) > 500 && textutil.CountMatches(straightOrCurlyQuote, text) == 0 {
		s.Evidence = append(s.Evidence, models.Issue{Type: "evidence", Text: "No quotations or data points to support claims."})
	}

	return LimitSuggestions(s)
}

// LimitSuggestions truncates each list to its maximum length
func LimitSuggestions(s models.Suggestions) models.Suggestions {
	s.Grammar = limitIssues(s.Grammar, maxGrammarIssues)
	s.Clarity = limitIssues(s.Clarity, maxClarityIssues)
	s.Evidence = limitIssues(s.Evidence, maxEvidenceIssues)
	return s
}

func limitIssues(issues []models.Issue, limit int) []models.Issue {
	if issues == nil {
		return []models.Issue{}
	}
	if len(issues) > limit {
		return issues[:limit]
	}
	return issues
}

// ImprovementPlan lists the concrete next steps for a report
func ImprovementPlan(read models.Readability, counts models.Counts, links, aiPercent int) []string {
	plan := []string{}
	if read.FKGrade > 12 {
		plan = append(plan, "Reduce grade level to ~10: shorter sentences and simpler wording.")
	}
	wantParagraphs := math.Max(3, math.Ceil(float64(counts.Words)/200))
	if float64(counts.Paragraphs) < wantParagraphs {
		plan = append(plan, "Add more paragraphs; one main idea per paragraph.")
	}
	if links == 0 {
		plan = append(plan, "Add 2–3 credible sources with links or DOIs.")
	}
	if aiPercent >= 50 {
		plan = append(plan, "Add personal examples or primary data to lower AI suspicion.")
	}
	return append(plan, "Light polish: tighten sentences and verify any claims.")
}

// reportNotes explains how the headline numbers were built
func reportNotes(tooShort bool) []string {
	notes := []string{
		"AI % = weighted sum of feature contributions (see 'Why this AI %').",
		"Quality weights: Originality 35, Clarity 25, Evidence 15, Structure 10, Voice 10, Mechanics 5.",
	}
	if tooShort {
		notes = append(notes, "Short sample: metrics are capped and less reliable. Add more text for stable readings.")
	}
	return notes
}
