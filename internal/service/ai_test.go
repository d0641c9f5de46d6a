package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ADVENTURA_BACK-END/internal/config"
	"ADVENTURA_BACK-END/internal/models"
	"ADVENTURA_BACK-END/internal/service"
)

func TestFallbackAI_Description(t *testing.T) {
	participants := []models.Participant{
		{ID: uuid.New(), Username: "alice"},
		{ID: uuid.New(), Username: "bob"},
	}

	text, err := service.FallbackAI{}.GenerateDescription(context.Background(), "Night run", participants)
	require.NoError(t, err)
	assert.Contains(t, text, `"Night run"`)
	assert.Contains(t, text, "alice, bob")

	// deterministic: same inputs, same copy
	again, err := service.FallbackAI{}.GenerateDescription(context.Background(), "Night run", participants)
	require.NoError(t, err)
	assert.Equal(t, text, again)
}

func TestFallbackAI_DescriptionWithoutParticipants(t *testing.T) {
	text, err := service.FallbackAI{}.GenerateDescription(context.Background(), "Night run", nil)
	require.NoError(t, err)
	assert.Contains(t, text, "friends")
}

func TestFallbackAI_SummaryTruncatesDescription(t *testing.T) {
	long := strings.Repeat("x", 400)
	text, err := service.FallbackAI{}.GenerateSummary(context.Background(), "Night run", long, nil)
	require.NoError(t, err)
	assert.Contains(t, text, strings.Repeat("x", 120))
	assert.NotContains(t, text, strings.Repeat("x", 121))
}

func TestNewAIClientFromConfig(t *testing.T) {
	client := service.NewAIClientFromConfig(config.AIConfig{})
	assert.IsType(t, service.FallbackAI{}, client)

	client = service.NewAIClientFromConfig(config.AIConfig{APIKey: "key", Model: "mistral-small-latest"})
	assert.IsType(t, &service.MistralAI{}, client)
}
