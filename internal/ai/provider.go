package ai

import (
	"fmt"
	"net/http"

	"modeldemo/internal/config"

	"go.uber.org/zap"
)

// NewProvider выбирает провайдера пайплайнов согласно конфигурации.
func NewProvider(cfg *config.Config, logger *zap.SugaredLogger) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderHuggingFace:
		return NewHuggingFace(cfg.HuggingFace, &http.Client{Timeout: cfg.RequestTimeout}, logger), nil
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.OpenAI, cfg.RequestTimeout, logger), nil
	case config.ProviderStub:
		return NewStubProvider(), nil
	default:
		return nil, fmt.Errorf("ai: unknown provider %q", cfg.Provider)
	}
}
