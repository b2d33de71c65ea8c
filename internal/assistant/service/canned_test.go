package service

import (
	"context"
	"testing"

	"github.com/contafacil/portal/internal/assistant/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCannedAssistant_KeywordMatch(t *testing.T) {
	assistant := newCannedAssistant()

	reply, err := assistant.Ask(context.Background(), "Quando vence o DAS deste mês?")
	require.NoError(t, err)
	assert.Contains(t, reply, "dia 20")

	reply, err = assistant.Ask(context.Background(), "Vale a pena migrar para o Lucro Presumido?")
	require.NoError(t, err)
	assert.Contains(t, reply, "percentual fixo")
}

func TestCannedAssistant_Fallback(t *testing.T) {
	assistant := newCannedAssistant()

	reply, err := assistant.Ask(context.Background(), "Qual a previsão do tempo?")
	require.NoError(t, err)
	assert.Equal(t, cannedFallback, reply)
}

func TestCannedAssistant_EmptyPrompt(t *testing.T) {
	assistant := newCannedAssistant()

	_, err := assistant.Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyPrompt)
}
