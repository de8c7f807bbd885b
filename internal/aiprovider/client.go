// Package aiprovider реализует клиент внешнего AI-сервиса с
// OpenAI-совместимым API chat/completions. Сервис используется как
// прозрачный генератор подсказок по проекту, никакого состояния
// на нашей стороне он не несёт.
package aiprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/magabrotheeeer/project-tracker/internal/config"
)

const systemPrompt = "You are a helpful project management assistant. " +
	"Provide practical and actionable suggestions for project planning."

// Client — клиент AI-провайдера.
type Client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт новый клиент по настройкам из конфига.
func NewClient(cfg config.AIProvider) *Client {
	timeout := cfg.TimeoutAI
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// IsConfigured сообщает, задан ли API-ключ провайдера.
// Без ключа функция подсказок отключена.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// GenerateSuggestions запрашивает у провайдера подсказки по проекту:
// развёрнутое описание, статус, срок и следующие шаги.
func (c *Client) GenerateSuggestions(ctx context.Context, projectTitle, projectDescription string) (*Suggestions, error) {
	const op = "aiprovider.GenerateSuggestions"

	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(projectTitle, projectDescription)},
		},
		Temperature: 0.7,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/chat/completions", &buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return nil, errors.New(op + ": empty response from provider")
	}

	var suggestions Suggestions
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &suggestions); err != nil {
		return nil, fmt.Errorf("%s: failed to parse provider response: %w", op, err)
	}
	return &suggestions, nil
}

func buildPrompt(title, description string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Based on the project title %q", title)
	if description != "" {
		fmt.Fprintf(&sb, " and description %q", description)
	}
	sb.WriteString(`, suggest:

1. A more detailed description (2-3 sentences)
2. Suggested status (draft, active, or completed) with reasoning
3. Suggested due date (if applicable) with reasoning
4. 3-5 actionable next steps for this project

Format your response as JSON with the following structure:
{
  "suggestedDescription": "detailed description here",
  "suggestedStatus": "draft|active|completed",
  "statusReasoning": "reasoning for status",
  "suggestedDueDate": "YYYY-MM-DD or null",
  "dueDateReasoning": "reasoning for due date or null",
  "nextSteps": ["step 1", "step 2", "step 3", "step 4", "step 5"]
}

Keep suggestions practical and actionable.`)
	return sb.String()
}
