package model

import (
	"context"
	"image"

	"modeldemo/internal/ai"
)

// Фиксированные параметры инференса, наружу не выставляются.
const (
	InferenceSteps = 20
	GuidanceScale  = 7.5
)

// TextToImage генерирует одно изображение по промпту.
type TextToImage struct {
	lazyPipeline[ai.ImageGenerator]
}

var _ Wrapper[string, image.Image] = (*TextToImage)(nil)

func NewTextToImage(modelName string, factory Factory[ai.ImageGenerator]) *TextToImage {
	return &TextToImage{lazyPipeline: lazyPipeline[ai.ImageGenerator]{name: modelName, factory: factory}}
}

func (m *TextToImage) Run(ctx context.Context, prompt string) (image.Image, error) {
	gen, err := m.get(ctx)
	if err != nil {
		return nil, err
	}
	img, err := gen.Generate(ctx, prompt, ai.GenerateParams{Steps: InferenceSteps, GuidanceScale: GuidanceScale})
	if err != nil {
		return nil, &InferenceError{Model: m.name, Err: err}
	}
	return img, nil
}
