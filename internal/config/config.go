package config

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/zombar/textscore/internal/analyzer"
	"github.com/zombar/textscore/internal/ollama"
)

// Config holds the service settings
type Config struct {
	Port         string
	CorpusDirs   []string
	Estimator    analyzer.EstimatorConfig
	UseOllama    bool
	OllamaURL    string
	OllamaModel  string
	CacheSize    int
	ServiceName  string
	OTLPEndpoint string
}

const defaultCorpusDirs = "public/corpus,corpus"

// Load reads an optional .env file, then parses args with defaults taken from the environment
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("textscore", flag.ContinueOnError)
	port := fs.String("port", getEnv("PORT", "8080"), "Server port (env: PORT)")
	corpusDirs := fs.String("corpus-dirs", getEnv("CORPUS_DIRS", defaultCorpusDirs), "Comma-separated corpus directories (env: CORPUS_DIRS)")
	sensitivity := fs.Float64("ai-sensitivity", getEnvFloat("AI_SENSITIVITY", analyzer.DefaultSensitivity), "AI evidence multiplier (env: AI_SENSITIVITY)")
	humanBonus := fs.Float64("ai-human-bonus", getEnvFloat("AI_HUMAN_BONUS", analyzer.DefaultHumanBonus), "Points removed for full human evidence (env: AI_HUMAN_BONUS)")
	useOllama := fs.Bool("use-ollama", getEnvBool("USE_OLLAMA", false), "Enable Ollama suggestions (env: USE_OLLAMA)")
	ollamaURL := fs.String("ollama-url", getEnv("OLLAMA_URL", ollama.DefaultURL), "Ollama API URL (env: OLLAMA_URL)")
	ollamaModel := fs.String("ollama-model", getEnv("OLLAMA_MODEL", ollama.DefaultModel), "Ollama model to use (env: OLLAMA_MODEL)")
	cacheSize := fs.Int("cache-size", getEnvInt("CACHE_SIZE", 256), "Number of cached reports (env: CACHE_SIZE)")
	serviceName := fs.String("service-name", getEnv("OTEL_SERVICE_NAME", "textscore"), "Tracing service name (env: OTEL_SERVICE_NAME)")
	otlpEndpoint := fs.String("otlp-endpoint", getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""), "OTLP gRPC endpoint, empty disables tracing (env: OTEL_EXPORTER_OTLP_ENDPOINT)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg := &Config{
		Port:       strings.TrimPrefix(*port, ":"),
		CorpusDirs: splitList(*corpusDirs),
		Estimator: analyzer.EstimatorConfig{
			Sensitivity: *sensitivity,
			HumanBonus:  *humanBonus,
		},
		UseOllama:    *useOllama,
		OllamaURL:    *ollamaURL,
		OllamaModel:  *ollamaModel,
		CacheSize:    *cacheSize,
		ServiceName:  *serviceName,
		OTLPEndpoint: strings.TrimSpace(*otlpEndpoint),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot run with
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Port, err)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache size must be positive, got %d", c.CacheSize)
	}
	if !finite(c.Estimator.Sensitivity) || c.Estimator.Sensitivity < 0 {
		return fmt.Errorf("AI sensitivity must be a finite non-negative number, got %g", c.Estimator.Sensitivity)
	}
	if !finite(c.Estimator.HumanBonus) || c.Estimator.HumanBonus < 0 {
		return fmt.Errorf("AI human bonus must be a finite non-negative number, got %g", c.Estimator.HumanBonus)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := strings.ToLower(strings.TrimSpace(os.Getenv(key))); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil {
		return v
	}
	return defaultValue
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
