package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type OllamaConfig struct {
	Host        string
	Model       string
	Temperature float64
}

// OllamaRepository talks to a local Ollama instance over its /api/chat
// endpoint with streaming disabled.
type OllamaRepository struct {
	cfg    OllamaConfig
	client *http.Client
}

func NewOllamaRepository(cfg OllamaConfig) *OllamaRepository {
	return &OllamaRepository{
		cfg:    cfg,
		client: &http.Client{},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string         `json:"model"`
	Messages []chatMessage  `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Error   string      `json:"error,omitempty"`
}

func (r *OllamaRepository) chat(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: r.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: false,
		Options: map[string]any{
			"temperature": r.cfg.Temperature,
			"top_p":       0.9,
			"num_ctx":     2048,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	url := r.cfg.Host + "/api/chat"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read ollama response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama status %d: %s", res.StatusCode, string(raw))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("ollama error: %s", parsed.Error)
	}

	return parsed.Message.Content, nil
}

// Complete returns the model output parsed as a list of strings, trying the
// strictest interpretation first.
func (r *OllamaRepository) Complete(ctx context.Context, system, user string) ([]string, error) {
	content, err := r.chat(ctx, system, user)
	if err != nil {
		return nil, err
	}
	return parseStringList(content)
}

// CompleteText returns the raw model output.
func (r *OllamaRepository) CompleteText(ctx context.Context, system, user string) (string, error) {
	return r.chat(ctx, system, user)
}
