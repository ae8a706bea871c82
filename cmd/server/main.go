package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zombar/textscore/internal/analyzer"
	"github.com/zombar/textscore/internal/api"
	"github.com/zombar/textscore/internal/config"
	"github.com/zombar/textscore/internal/metrics"
	"github.com/zombar/textscore/internal/ollama"
	"github.com/zombar/textscore/internal/overlap"
	"github.com/zombar/textscore/pkg/logging"
	"github.com/zombar/textscore/pkg/tracing"
)

func main() {
	// Setup structured logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	logger.Info("textscore service initializing", "version", "1.0.0")

	if cfg.OTLPEndpoint == "" {
		logger.Info("tracing disabled, no OTLP endpoint configured")
	} else if tp, err := tracing.InitTracer(context.Background(), cfg.ServiceName, cfg.OTLPEndpoint); err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("error shutting down tracer", "error", err)
			}
		}()
		logger.Info("tracing initialized", "endpoint", cfg.OTLPEndpoint)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	corpus := overlap.New(cfg.CorpusDirs, logger)
	corpus.Load()
	m.CorpusDocuments.Set(float64(corpus.Documents()))

	textAnalyzer, err := newAnalyzer(cfg, corpus, logger)
	if err != nil {
		logger.Error("failed to initialize analyzer", "error", err)
		os.Exit(1)
	}

	apiHandler, err := api.NewHandler(api.Options{
		Analyzer:  textAnalyzer,
		CacheSize: cfg.CacheSize,
		Metrics:   m,
		Gatherer:  prometheus.DefaultGatherer,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("failed to initialize API handler", "error", err)
		os.Exit(1)
	}

	// Wrap handler with middleware chain: tracing -> HTTP logging -> handlers
	handler := tracing.HTTPMiddleware(cfg.ServiceName)(
		logging.HTTPLoggingMiddleware(logger)(apiHandler),
	)

	// Timeouts leave room for slow LLM suggestions
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: ollama.DefaultTimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("textscore service starting",
			"port", cfg.Port,
			"corpus_dirs", cfg.CorpusDirs,
			"corpus_documents", corpus.Documents(),
			"ai_sensitivity", cfg.Estimator.Sensitivity,
			"ai_human_bonus", cfg.Estimator.HumanBonus,
			"ollama_enabled", cfg.UseOllama,
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// newAnalyzer builds the analyzer, attaching Ollama suggestions when enabled
func newAnalyzer(cfg *config.Config, corpus *overlap.Index, logger *slog.Logger) (*analyzer.Analyzer, error) {
	opts := []analyzer.Option{
		analyzer.WithCorpus(corpus),
		analyzer.WithLogger(logger),
	}

	if !cfg.UseOllama {
		logger.Info("Ollama disabled, using heuristic suggestions")
		return analyzer.New(cfg.Estimator, opts...), nil
	}

	client, err := ollama.New(cfg.OllamaURL, cfg.OllamaModel)
	if err != nil {
		logger.Warn("failed to initialize Ollama client, falling back to heuristic suggestions",
			"error", err,
			"ollama_url", cfg.OllamaURL,
			"ollama_model", cfg.OllamaModel,
		)
		return analyzer.New(cfg.Estimator, opts...), nil
	}

	logger.Info("Ollama client initialized", "model", client.Model(), "url", cfg.OllamaURL)
	return analyzer.New(cfg.Estimator, append(opts, analyzer.WithSuggester(client))...), nil
}
