package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"

	"github.com/openai/openai-go/v3"
	"go.uber.org/zap"
)

// ImageClient генерирует изображение через OpenAI Images API
type ImageClient struct {
	client *openai.Client
	model  string
	logger *zap.SugaredLogger
}

func NewImageClient(client *openai.Client, model string, logger *zap.SugaredLogger) *ImageClient {
	return &ImageClient{
		client: client,
		model:  model,
		logger: logger,
	}
}

// Generate запрашивает одно изображение 512x512. Шаги и guidance у Images API не настраиваются.
func (c *ImageClient) Generate(ctx context.Context, prompt string, params GenerateParams) (image.Image, error) {
	c.logger.Debugw("Sampling parameters are not supported by the Images API",
		"steps", params.Steps, "guidance_scale", params.GuidanceScale)

	resp, err := c.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         prompt,
		Model:          openai.ImageModel(c.model),
		N:              openai.Int(1),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
		Size:           openai.ImageGenerateParamsSize512x512,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, errors.New("openai: empty image response")
	}

	raw, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("openai: decode base64 image: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("openai: decode image: %w", err)
	}
	return img, nil
}
