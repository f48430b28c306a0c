package ai

import (
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"os"
)

// StubProvider заглушка, которая не делает реальных запросов
type StubProvider struct{}

func NewStubProvider() *StubProvider { return &StubProvider{} }

func (p *StubProvider) Name() string { return "stub" }

func (p *StubProvider) NewGenerator(ctx context.Context, _ string) (ImageGenerator, error) {
	if err := context.Cause(ctx); err != nil {
		return nil, err
	}
	return &stubGenerator{}, nil
}

func (p *StubProvider) NewClassifier(ctx context.Context, _ string) (ImageClassifier, error) {
	if err := context.Cause(ctx); err != nil {
		return nil, err
	}
	return &stubClassifier{}, nil
}

const stubImageSize = 512

type stubGenerator struct{}

// Generate рисует градиент, цвет которого детерминированно зависит от промпта.
func (g *stubGenerator) Generate(ctx context.Context, prompt string, _ GenerateParams) (image.Image, error) {
	if err := context.Cause(ctx); err != nil {
		return nil, err
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(prompt))
	sum := h.Sum32()
	base := color.RGBA{R: uint8(sum), G: uint8(sum >> 8), B: uint8(sum >> 16), A: 0xff}

	img := image.NewRGBA(image.Rect(0, 0, stubImageSize, stubImageSize))
	for y := range stubImageSize {
		for x := range stubImageSize {
			img.SetRGBA(x, y, color.RGBA{
				R: base.R ^ uint8(x/2),
				G: base.G ^ uint8(y/2),
				B: base.B,
				A: 0xff,
			})
		}
	}
	return img, nil
}

type stubClassifier struct{}

var stubPredictions = []Prediction{
	{Label: "tabby cat", Score: 0.812},
	{Label: "tiger cat", Score: 0.431},
	{Label: "lynx", Score: 0.103},
	{Label: "house cat", Score: 0.05},
}

// Classify проверяет, что файл декодируется, и отдаёт фиксированный ответ.
func (c *stubClassifier) Classify(ctx context.Context, imagePath string) ([]Prediction, error) {
	if err := context.Cause(ctx); err != nil {
		return nil, err
	}
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if _, _, err := image.DecodeConfig(f); err != nil {
		return nil, fmt.Errorf("stub: %s: %w", imagePath, err)
	}
	out := make([]Prediction, len(stubPredictions))
	copy(out, stubPredictions)
	return out, nil
}
