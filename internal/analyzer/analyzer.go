package analyzer

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zombar/textscore/internal/models"
	"github.com/zombar/textscore/internal/overlap"
)

const tracerName = "textscore/analyzer"

// Suggester supplies grammar, clarity and evidence issues for a text.
// Implementations may be slow or fail; the analyzer falls back to heuristics.
type Suggester interface {
	Suggest(ctx context.Context, text string) (*models.Suggestions, error)
}

// Analyzer runs the full scoring pipeline and merges the results into one report
type Analyzer struct {
	estimator *Estimator
	suggester Suggester
	corpus    *overlap.Index
	logger    *slog.Logger
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithSuggester enables LLM suggestions
func WithSuggester(s Suggester) Option {
	return func(a *Analyzer) { a.suggester = s }
}

// WithCorpus attaches an overlap index
func WithCorpus(idx *overlap.Index) Option {
	return func(a *Analyzer) { a.corpus = idx }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// New creates a new Analyzer
func New(cfg EstimatorConfig, opts ...Option) *Analyzer {
	a := &Analyzer{
		estimator: NewEstimator(cfg),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze performs the full analysis without a caller context
func (a *Analyzer) Analyze(text string) models.Report {
	return a.AnalyzeWithContext(context.Background(), text)
}

// AnalyzeWithContext performs the full analysis. The context only bounds the suggestion
// provider; scoring itself is synchronous and never fails.
func (a *Analyzer) AnalyzeWithContext(ctx context.Context, text string) models.Report {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "analyzer.analyze",
		trace.WithAttributes(attribute.Int("text.length", len(text))))
	defer span.End()

	signals := AnalyzeText(text)
	suggestions := a.suggestions(ctx, text, signals.Readability)
	composite := Score(signals, HintsFromSuggestions(suggestions))
	features := FeatureValues(text, signals)
	explanation := a.estimator.Explain(features)
	confidence := ComputeConfidence(signals.Counts)

	report := models.Report{
		Quality:     CapQuality(composite.Quality, signals.Counts),
		AIRisk:      composite.AIRisk,
		AIPercent:   explanation.AIPercent,
		Verdict:     explanation.Verdict,
		Explanation: explanation,
		Features:    features,
		Breakdown:   composite.Breakdown,
		Readability: signals.Readability,
		Counts:      signals.Counts,
		Flags: models.Flags{
			QuotesRatio: signals.Originality.QuotesRatio,
			Links:       signals.Originality.Links,
			PassiveHits: signals.Style.PassiveHits,
			WeaselHits:  signals.Style.WeaselHits,
		},
		Suggestions:     suggestions,
		ImprovementPlan: ImprovementPlan(signals.Readability, signals.Counts, signals.Originality.Links, explanation.AIPercent),
		Confidence:      confidence,
		Notes:           reportNotes(confidence.TooShort),
	}

	if a.corpus != nil {
		overlapReport := a.CheckOverlap(ctx, text)
		report.Overlap = &overlapReport
	}

	span.SetAttributes(
		attribute.Int("report.words", signals.Counts.Words),
		attribute.Int("report.ai_percent", report.AIPercent),
		attribute.Float64("report.quality", report.Quality),
		attribute.String("suggestions.source", suggestions.Source),
	)

	a.logger.Debug("analysis complete",
		"words", signals.Counts.Words,
		"sentences", signals.Counts.Sentences,
		"quality", report.Quality,
		"ai_percent", report.AIPercent,
		"too_short", confidence.TooShort,
	)

	return report
}

// HasSuggester reports whether LLM suggestions are configured
func (a *Analyzer) HasSuggester() bool {
	return a.suggester != nil
}

// Corpus returns the attached overlap index, or nil
func (a *Analyzer) Corpus() *overlap.Index {
	return a.corpus
}

// Explain runs the AI-likelihood estimator on a precomputed feature vector
func (a *Analyzer) Explain(f models.Features) models.Explanation {
	return a.estimator.Explain(f)
}

// CheckOverlap compares text against the attached corpus. Without a corpus the report is
// disabled and empty.
func (a *Analyzer) CheckOverlap(ctx context.Context, text string) models.OverlapReport {
	if a.corpus == nil {
		return models.OverlapReport{Results: []models.OverlapHit{}}
	}
	_, span := otel.Tracer(tracerName).Start(ctx, "overlap.check",
		trace.WithAttributes(attribute.Int("text.length", len(text))))
	defer span.End()

	report := a.corpus.Check(text)
	span.SetAttributes(
		attribute.Bool("overlap.enabled", report.Enabled),
		attribute.Int("overlap.checked", report.Checked),
		attribute.Int("overlap.matched", report.Matched),
		attribute.Int("overlap.score", report.Score),
	)
	return report
}

// suggestions asks the suggester first and fills any missing list from the heuristics
func (a *Analyzer) suggestions(ctx context.Context, text string, read models.Readability) models.Suggestions {
	fallback := HeuristicSuggestions(text, read)
	if a.suggester == nil {
		return fallback
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "analyzer.suggest")
	defer span.End()

	llm, err := a.suggester.Suggest(ctx, text)
	if err != nil || llm == nil {
		a.logger.Warn("LLM suggestions failed, using heuristic fallback", "error", err)
		span.SetAttributes(attribute.Bool("suggest.fallback", true))
		return fallback
	}

	merged := *llm
	merged.Source = SourceLLM
	if merged.Grammar == nil {
		merged.Grammar = fallback.Grammar
	}
	if merged.Clarity == nil {
		merged.Clarity = fallback.Clarity
	}
	if merged.Evidence == nil {
		merged.Evidence = fallback.Evidence
	}
	return LimitSuggestions(merged)
}
