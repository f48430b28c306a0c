package ai

import (
	"context"
	"image"
)

// GenerateParams фиксированные параметры инференса для генерации изображений.
type GenerateParams struct {
	Steps         int
	GuidanceScale float64
}

// Prediction одна метка классификатора с уверенностью.
type Prediction struct {
	Label string
	Score float64
}

// ImageGenerator генерирует одно изображение по текстовому промпту. Все реализации должны быть взаимозаменяемыми.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string, params GenerateParams) (image.Image, error)
}

// ImageClassifier возвращает ранжированный список меток для файла изображения.
type ImageClassifier interface {
	Classify(ctx context.Context, imagePath string) ([]Prediction, error)
}

// Provider строит пайплайны по имени модели. Построение может ходить в сеть и быть медленным.
type Provider interface {
	Name() string
	NewGenerator(ctx context.Context, model string) (ImageGenerator, error)
	NewClassifier(ctx context.Context, model string) (ImageClassifier, error)
}
