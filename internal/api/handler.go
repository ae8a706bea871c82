package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zombar/textscore/internal/analyzer"
	"github.com/zombar/textscore/internal/metrics"
	"github.com/zombar/textscore/internal/models"
	"github.com/zombar/textscore/pkg/logging"
	"github.com/zombar/textscore/pkg/tracing"
)

const (
	minTextChars     = 20
	maxRequestBytes  = 1 << 20
	errTooShortInput = "Provide at least 20 characters."
)

// Options configures a Handler
type Options struct {
	Analyzer  *analyzer.Analyzer
	CacheSize int
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
	Logger    *slog.Logger
}

// Handler handles HTTP requests
type Handler struct {
	analyzer *analyzer.Analyzer
	cache    *lru.Cache[string, models.Report]
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	logger   *slog.Logger
	mux      *http.ServeMux
}

// textRequest is the body accepted by the analyze and overlap endpoints
type textRequest struct {
	Text string `json:"text"`
}

// analyzeResponse is a report tagged with the request it answers
type analyzeResponse struct {
	RequestID string `json:"request_id"`
	Cached    bool   `json:"cached"`
	models.Report
}

type overlapResponse struct {
	RequestID string `json:"request_id"`
	models.OverlapReport
}

// NewHandler creates a new API handler with CORS support and metrics
func NewHandler(opts Options) (http.Handler, error) {
	h, err := newHandler(opts)
	if err != nil {
		return nil, err
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(h.mux), nil
}

func newHandler(opts Options) (*Handler, error) {
	if opts.Analyzer == nil {
		return nil, fmt.Errorf("analyzer is required")
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 256
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New(prometheus.NewRegistry())
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	cache, err := lru.New[string, models.Report](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create report cache: %w", err)
	}

	h := &Handler{
		analyzer: opts.Analyzer,
		cache:    cache,
		metrics:  opts.Metrics,
		gatherer: opts.Gatherer,
		logger:   opts.Logger,
		mux:      http.NewServeMux(),
	}
	h.setupRoutes()
	return h, nil
}

// setupRoutes configures all API routes
func (h *Handler) setupRoutes() {
	h.mux.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	h.mux.HandleFunc("/api/analyze", h.handleAnalyze)
	h.mux.HandleFunc("/api/overlap", h.handleOverlap)
	h.mux.HandleFunc("/api/corpus", h.handleCorpus)
	h.mux.HandleFunc("/health", h.handleHealth)
}

// handleHealth handles health check requests
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleAnalyze scores a text and returns the full report
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	text, ok := h.decodeText(w, r)
	if !ok {
		return
	}

	requestID := uuid.NewString()
	tracing.SetSpanAttributes(r.Context(),
		attribute.String("request.id", requestID),
		attribute.Int("text.length", len(text)))

	key := cacheKey(text)
	if report, found := h.cache.Get(key); found {
		h.metrics.ObserveCacheHit()
		h.logger.Debug("serving cached report", "request_id", requestID, "key", key[:12])
		respondJSON(w, analyzeResponse{RequestID: requestID, Cached: true, Report: report}, http.StatusOK)
		return
	}

	start := time.Now()
	report := h.analyzer.AnalyzeWithContext(r.Context(), text)
	duration := time.Since(start)

	if h.cacheable(report) {
		h.cache.Add(key, report)
	}
	h.metrics.ObserveReport(duration, report.AIPercent, report.Quality, report.Suggestions.Source)
	if report.Overlap != nil && report.Overlap.Enabled {
		h.metrics.OverlapScore.Observe(float64(report.Overlap.Score))
	}

	h.logger.Info("text analyzed",
		"request_id", requestID,
		"words", report.Counts.Words,
		"ai_percent", report.AIPercent,
		"verdict", report.Verdict,
		"quality", report.Quality,
		"suggestions", report.Suggestions.Source,
		"duration_ms", duration.Milliseconds(),
	)

	respondJSON(w, analyzeResponse{RequestID: requestID, Report: report}, http.StatusOK)
}

// handleOverlap checks a text against the local corpus only
func (h *Handler) handleOverlap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	text, ok := h.decodeText(w, r)
	if !ok {
		return
	}

	requestID := uuid.NewString()
	tracing.SetSpanAttributes(r.Context(),
		attribute.String("request.id", requestID),
		attribute.Int("text.length", len(text)))

	report := h.analyzer.CheckOverlap(r.Context(), text)
	if report.Enabled {
		h.metrics.OverlapScore.Observe(float64(report.Score))
	}

	respondJSON(w, overlapResponse{RequestID: requestID, OverlapReport: report}, http.StatusOK)
}

// handleCorpus reports the state of the overlap corpus
func (h *Handler) handleCorpus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := map[string]any{
		"enabled":   false,
		"documents": 0,
		"shingles":  0,
	}
	if idx := h.analyzer.Corpus(); idx != nil {
		docs := idx.Documents()
		h.metrics.CorpusDocuments.Set(float64(docs))
		status["enabled"] = docs > 0
		status["documents"] = docs
		status["shingles"] = idx.Shingles()
	}
	respondJSON(w, status, http.StatusOK)
}

// decodeText reads and validates the request body, writing the error response itself
func (h *Handler) decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req textRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		h.metrics.ObserveRejected()
		logging.HTTPErrorLogger(h.logger, http.StatusBadRequest, err, r)
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return "", false
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Text)) < minTextChars {
		h.metrics.ObserveRejected()
		respondError(w, errTooShortInput, http.StatusBadRequest)
		return "", false
	}
	return req.Text, true
}

// cacheable rejects reports built on the heuristic fallback after a suggester failure,
// so the next request for the same text retries the LLM
func (h *Handler) cacheable(report models.Report) bool {
	return !h.analyzer.HasSuggester() || report.Suggestions.Source != analyzer.SourceHeuristic
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, map[string]string{"error": message}, statusCode)
}
