package service

import (
	"context"
	"strings"

	"github.com/contafacil/portal/internal/assistant/domain"
)

// cannedAssistant answers from a small keyword table when no API key is
// configured, so the chat endpoint works in development and tests.
type cannedAssistant struct{}

func newCannedAssistant() domain.Assistant {
	return &cannedAssistant{}
}

var cannedReplies = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"das", "guia", "simples"},
		reply: "O DAS do Simples Nacional vence todo dia 20 do mês seguinte à " +
			"competência. Você pode gerar a guia na aba Impostos.",
	},
	{
		keywords: []string{"presumido", "lucro"},
		reply: "No Lucro Presumido os impostos (ISS, PIS/COFINS, IRPJ e CSLL) " +
			"incidem como percentual fixo sobre o faturamento. Compare os " +
			"regimes na aba Impostos antes de decidir.",
	},
	{
		keywords: []string{"nota", "nfs", "fiscal"},
		reply: "Notas fiscais emitidas ou pagas entram no faturamento do mês " +
			"da emissão. Rascunhos e notas canceladas não contam.",
	},
}

const cannedFallback = "Não tenho uma resposta pronta para isso. Envie a " +
	"dúvida para sua contadora pelo chat de suporte que ela responde em até " +
	"1 dia útil."

func (a *cannedAssistant) Ask(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", domain.ErrEmptyPrompt
	}

	lower := strings.ToLower(prompt)
	for _, entry := range cannedReplies {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.reply, nil
			}
		}
	}
	return cannedFallback, nil
}
