package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/zombar/textscore/internal/models"
)

const (
	DefaultURL     = "http://localhost:11434"
	DefaultModel   = "gpt-oss:20b"
	DefaultTimeout = 120 * time.Second
)

// generator is the part of the Ollama API client used here
type generator interface {
	Generate(ctx context.Context, req *api.GenerateRequest, fn api.GenerateResponseFunc) error
}

// Client wraps the Ollama API client
type Client struct {
	client  generator
	model   string
	timeout time.Duration
}

// New creates a new Ollama client
func New(ollamaURL, model string) (*Client, error) {
	if ollamaURL == "" {
		ollamaURL = DefaultURL
	}
	if model == "" {
		model = DefaultModel
	}

	baseURL, err := url.Parse(ollamaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}

	return &Client{
		client:  api.NewClient(baseURL, http.DefaultClient),
		model:   model,
		timeout: DefaultTimeout,
	}, nil
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}

// GenerateResponse generates a response from the LLM
func (c *Client) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	slog.Debug("ollama request", "model", c.model, "timeout", c.timeout)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &api.GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: new(bool), // false
		Options: map[string]any{
			"temperature": 0.2,
			"num_predict": 900,
		},
	}

	var response strings.Builder
	err := c.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		response.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	result := strings.TrimSpace(response.String())
	slog.Debug("ollama response received", "model", c.model, "chars", len(result))
	return result, nil
}

// suggestionResponse is the JSON shape the model is asked to return
type suggestionResponse struct {
	Grammar  []models.Issue `json:"grammar"`
	Clarity  []models.Issue `json:"clarity"`
	Evidence []models.Issue `json:"evidence"`
	Improved *string        `json:"improved"`
}

// Suggest asks the model for grammar, clarity and evidence issues plus an improved rewrite
func (c *Client) Suggest(ctx context.Context, text string) (*models.Suggestions, error) {
	prompt := fmt.Sprintf(`Return strict JSON only with keys: grammar(array of {text,fix}), clarity(array of {text,fix}), evidence(array of {text}), improved(string). Rules: Preserve meaning; never invent sources; target grade 8–11; shorten if verbose.
Text:
%s

Find up to 8 grammar issues, 8 clarity issues, 5 evidence gaps. Provide an improved version that keeps citations/quotes.`, text)

	response, err := c.GenerateResponse(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseSuggestions(response)
}

// parseSuggestions extracts the first JSON object from a model response
func parseSuggestions(response string) (*models.Suggestions, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var parsed suggestionResponse
	if err := json.Unmarshal([]byte(response[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions JSON: %w", err)
	}
	if parsed.Grammar == nil && parsed.Clarity == nil && parsed.Evidence == nil {
		return nil, fmt.Errorf("suggestions JSON has no issue lists")
	}

	s := &models.Suggestions{
		Grammar:  tagIssues(parsed.Grammar, "grammar"),
		Clarity:  tagIssues(parsed.Clarity, "clarity"),
		Evidence: tagIssues(parsed.Evidence, "evidence"),
	}
	if parsed.Improved != nil {
		s.Improved = strings.TrimSpace(*parsed.Improved)
	}
	return s, nil
}

// tagIssues keeps a missing list nil so the caller can fall back for that list only
func tagIssues(issues []models.Issue, issueType string) []models.Issue {
	if issues == nil {
		return nil
	}
	out := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if strings.TrimSpace(issue.Text) == "" {
			continue
		}
		issue.Type = issueType
		out = append(out, issue)
	}
	return out
}
