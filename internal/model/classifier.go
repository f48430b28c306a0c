package model

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"modeldemo/internal/ai"
)

// TopK сколько меток показываем пользователю.
const TopK = 3

// ImageClassifier классифицирует файл изображения и отдаёт top-3 меток текстом.
type ImageClassifier struct {
	lazyPipeline[ai.ImageClassifier]
}

var _ Wrapper[string, string] = (*ImageClassifier)(nil)

func NewImageClassifier(modelName string, factory Factory[ai.ImageClassifier]) *ImageClassifier {
	return &ImageClassifier{lazyPipeline: lazyPipeline[ai.ImageClassifier]{name: modelName, factory: factory}}
}

func (m *ImageClassifier) Run(ctx context.Context, imagePath string) (string, error) {
	cls, err := m.get(ctx)
	if err != nil {
		return "", err
	}
	preds, err := cls.Classify(ctx, imagePath)
	if err != nil {
		return "", &InferenceError{Model: m.name, Err: err}
	}
	return FormatPredictions(TopPredictions(preds, TopK)), nil
}

// TopPredictions возвращает не более k меток по убыванию уверенности. Исходный срез не меняется.
func TopPredictions(preds []ai.Prediction, k int) []ai.Prediction {
	out := slices.Clone(preds)
	slices.SortStableFunc(out, func(a, b ai.Prediction) int {
		return -cmp.Compare(a.Score, b.Score)
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}

// FormatPredictions: "label (0.812)" построчно.
func FormatPredictions(preds []ai.Prediction) string {
	lines := make([]string, 0, len(preds))
	for _, p := range preds {
		lines = append(lines, fmt.Sprintf("%s (%.3f)", p.Label, p.Score))
	}
	return strings.Join(lines, "\n")
}
