package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ADVENTURA_BACK-END/internal/config"
	"ADVENTURA_BACK-END/internal/models"
)

// AIClient generates the playful copy attached to adventures. Callers must
// treat failures as recoverable: the service always falls back to
// deterministic templated text.
type AIClient interface {
	GenerateDescription(ctx context.Context, title string, participants []models.Participant) (string, error)
	GenerateSummary(ctx context.Context, title, description string, participants []models.Participant) (string, error)
}

func participantNames(participants []models.Participant) string {
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.Username)
	}
	if len(names) == 0 {
		return "friends"
	}
	return strings.Join(names, ", ")
}

// FallbackDescription is the deterministic copy used when AI generation is
// unavailable or fails.
func FallbackDescription(title string, participants []models.Participant) string {
	return fmt.Sprintf("AI draft: adventure %q with %s. It will be fun and memorable.", title, participantNames(participants))
}

// FallbackSummary is the deterministic recap used when AI generation is
// unavailable or fails.
func FallbackSummary(title, description string, participants []models.Participant) string {
	trimmed := description
	if len(trimmed) > 120 {
		trimmed = trimmed[:120]
	}
	return fmt.Sprintf("They completed %q: %s. Recap: %s...", title, participantNames(participants), trimmed)
}

// FallbackAI generates the deterministic copy directly, with no network.
type FallbackAI struct{}

func (FallbackAI) GenerateDescription(ctx context.Context, title string, participants []models.Participant) (string, error) {
	return FallbackDescription(title, participants), nil
}

func (FallbackAI) GenerateSummary(ctx context.Context, title, description string, participants []models.Participant) (string, error) {
	return FallbackSummary(title, description, participants), nil
}

// MistralAI calls the Mistral chat-completions API.
type MistralAI struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewMistralAI creates a client against api.mistral.ai
func NewMistralAI(cfg config.AIConfig) *MistralAI {
	return &MistralAI{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		endpoint:   "https://api.mistral.ai/v1/chat/completions",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewAIClientFromConfig returns the Mistral client when an API key is
// configured and the fallback client otherwise.
func NewAIClientFromConfig(cfg config.AIConfig) AIClient {
	if cfg.APIKey == "" {
		return FallbackAI{}
	}
	return NewMistralAI(cfg)
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
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (m *MistralAI) complete(ctx context.Context, system, user string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: m.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.6,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	res, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("mistral request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read mistral response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mistral status %d: %s", res.StatusCode, body)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse mistral response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("mistral returned no choices")
	}

	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("mistral returned empty text")
	}
	return text, nil
}

func (m *MistralAI) GenerateDescription(ctx context.Context, title string, participants []models.Participant) (string, error) {
	system := "You are a friendly copywriter. Write one vivid paragraph of at most 40 words about the planned outing, and end with a mood emoji."
	user := fmt.Sprintf("Title: %s\nParticipants: %s", title, participantNames(participants))
	return m.complete(ctx, system, user)
}

func (m *MistralAI) GenerateSummary(ctx context.Context, title, description string, participants []models.Participant) (string, error) {
	system := "You are an attentive storyteller. Write a two-sentence recap of at most 50 words, mention every participant, add no new facts."
	user := fmt.Sprintf("Title: %s\nParticipants: %s\nDescription: %s", title, participantNames(participants), description)
	return m.complete(ctx, system, user)
}
