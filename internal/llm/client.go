package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const systemPrompt = "You are a helpful restaurant recommendation assistant."

// Generator is the minimal capability the recommendation flow needs from an
// LLM: one prompt in, the raw completion text out. Implemented by GroqClient
// and by test doubles.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ConfigError indicates the client cannot be constructed, e.g. a missing API
// key. It is raised before any network attempt.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// TransportError indicates the HTTP round trip failed or the endpoint
// answered with a non-2xx status.
type TransportError struct {
	StatusCode int
	Cause      error
	Body       string
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("llm request failed: %v", e.Cause)
	}
	return fmt.Sprintf("llm endpoint returned status %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ProtocolError indicates a 2xx response whose body does not carry a
// completion in the expected envelope.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return e.Message
}

// GroqClient calls the Groq chat completions API, which speaks the
// OpenAI-compatible envelope. One synchronous round trip per Generate call,
// no retries; the http.Client timeout is the single upper bound on waiting.
type GroqClient struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	client      *http.Client
}

// GroqOption configures optional client behaviour.
type GroqOption func(*GroqClient)

// WithHTTPClient overrides the default HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) GroqOption {
	return func(c *GroqClient) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(temperature float64) GroqOption {
	return func(c *GroqClient) {
		c.temperature = temperature
	}
}

// NewGroqClient builds a Groq-backed generator. A missing API key is a
// *ConfigError; no network traffic happens during construction.
func NewGroqClient(baseURL, apiKey, model string, timeout time.Duration, opts ...GroqOption) (*GroqClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &ConfigError{Message: "Groq API key is required. Set GROQ_API_KEY or pass a key explicitly."}
	}
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &GroqClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		model:       model,
		temperature: 0.4,
		client:      &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate posts the prompt to the chat completions endpoint and returns the
// first choice's text.
func (c *GroqClient) Generate(ctx context.Context, prompt string) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TransportError{StatusCode: resp.StatusCode, Body: snippet(raw)}
	}

	var envelope chatResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", &ProtocolError{Message: "unexpected response format from Groq API"}
	}
	if len(envelope.Choices) == 0 || envelope.Choices[0].Message.Content == nil {
		return "", &ProtocolError{Message: "unexpected response format from Groq API"}
	}

	return *envelope.Choices[0].Message.Content, nil
}

func snippet(body []byte) string {
	const max = 256
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max]
	}
	return s
}

var _ Generator = (*GroqClient)(nil)
