package service

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/contafacil/portal/internal/assistant/domain"
	"github.com/contafacil/portal/internal/config"
)

type Params struct {
	fx.In

	Cfg config.Config
	Log *zap.Logger
}

// New picks the OpenAI-backed assistant when an API key is configured and
// falls back to canned replies otherwise.
func New(p Params) domain.Assistant {
	if p.Cfg.OpenAIAPIKey != "" {
		return newOpenAIAssistant(p.Log, p.Cfg.OpenAIAPIKey, p.Cfg.OpenAIModel)
	}
	p.Log.Named("assistant").Info("no OpenAI API key configured, using canned replies")
	return newCannedAssistant()
}
