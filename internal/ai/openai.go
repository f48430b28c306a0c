package ai

import (
	"context"
	"fmt"
	"time"

	"modeldemo/internal/config"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// OpenAI строит пайплайны поверх Images API и Responses API.
type OpenAI struct {
	client *openai.Client
	logger *zap.SugaredLogger
}

// NewOpenAI создаёт клиента. Пустой ключ — клиент берёт OPENAI_API_KEY из окружения.
func NewOpenAI(cfg config.OpenAIConfig, timeout time.Duration, logger *zap.SugaredLogger) *OpenAI {
	var opts []option.RequestOption
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	client := openai.NewClient(opts...)
	return &OpenAI{client: &client, logger: logger}
}

func (o *OpenAI) Name() string { return config.ProviderOpenAI }

func (o *OpenAI) NewGenerator(ctx context.Context, model string) (ImageGenerator, error) {
	if err := o.checkModel(ctx, model); err != nil {
		return nil, err
	}
	return NewImageClient(o.client, model, o.logger), nil
}

func (o *OpenAI) NewClassifier(ctx context.Context, model string) (ImageClassifier, error) {
	if err := o.checkModel(ctx, model); err != nil {
		return nil, err
	}
	return NewVisionClient(o.client, model), nil
}

// checkModel запрашивает модель, чтобы неверное имя или ключ всплыли при загрузке, а не при запуске.
func (o *OpenAI) checkModel(ctx context.Context, model string) error {
	m, err := o.client.Models.Get(ctx, model)
	if err != nil {
		return fmt.Errorf("openai: model %s: %w", model, err)
	}
	o.logger.Infow("OpenAI model resolved", "model", m.ID, "owner", m.OwnedBy)
	return nil
}
