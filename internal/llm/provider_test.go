package llm

import (
	"testing"

	"biomed-maintenance-tracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModel_DisabledWithoutKey(t *testing.T) {
	model, err := NewModel(config.AIConfig{Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Nil(t, model)
}

func TestNewModel_WithKey(t *testing.T) {
	model, err := NewModel(config.AIConfig{APIKey: "sk-test", BaseURL: "http://localhost:11434/v1", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.NotNil(t, model)
}
