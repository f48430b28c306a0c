package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/responses"
)

const classifyInstruction = "Classify the main subject of this image. " +
	"Answer with a JSON array only, no prose: up to 5 objects {\"label\": string, \"score\": number from 0 to 1}, " +
	"sorted by score descending."

// VisionClient отправляет картинку в OpenAI и просит ранжированный список меток
type VisionClient struct {
	client *openai.Client
	model  string
}

func NewVisionClient(client *openai.Client, model string) *VisionClient {
	return &VisionClient{
		client: client,
		model:  model,
	}
}

func (c *VisionClient) Classify(ctx context.Context, imagePath string) ([]Prediction, error) {
	imageURL, err := dataURL(imagePath)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: c.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(
					responses.ResponseInputMessageContentListParam{
						{
							OfInputText: &responses.ResponseInputTextParam{
								Text: classifyInstruction,
							},
						},
						{
							OfInputImage: &responses.ResponseInputImageParam{
								Detail:   responses.ResponseInputImageDetailAuto,
								ImageURL: openai.String(imageURL),
							},
						},
					},
					responses.EasyInputMessageRoleUser,
				),
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return parseVisionPredictions(resp.OutputText())
}

// parseVisionPredictions снимает markdown-ограждение, если модель его добавила.
func parseVisionPredictions(text string) ([]Prediction, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	preds, err := parsePredictions([]byte(strings.TrimSpace(text)))
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	return preds, nil
}

func dataURL(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:%s;base64,%s", http.DetectContentType(b), base64.StdEncoding.EncodeToString(b)), nil
}
