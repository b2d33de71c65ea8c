package service

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/contafacil/portal/internal/assistant/domain"
)

const systemPrompt = "Você é o assistente contábil do ContaFácil. Responda em " +
	"português, de forma curta e prática, sobre Simples Nacional, Lucro " +
	"Presumido, notas fiscais e obrigações de pequenas empresas. Nunca dê " +
	"aconselhamento jurídico definitivo; recomende o contador para casos " +
	"específicos."

type openAIAssistant struct {
	log    *zap.Logger
	client *openai.Client
	model  string
}

func newOpenAIAssistant(log *zap.Logger, apiKey, model string) domain.Assistant {
	return &openAIAssistant{
		log:    log.Named("assistant.openai"),
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (a *openAIAssistant) Ask(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", domain.ErrEmptyPrompt
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		a.log.Warn("chat completion failed", zap.Error(err))
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
