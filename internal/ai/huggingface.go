package ai

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"modeldemo/internal/config"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"
)

const (
	hfTaskTextToImage         = "text-to-image"
	hfTaskImageClassification = "image-classification"
)

// HuggingFace строит пайплайны поверх Hugging Face Inference API.
type HuggingFace struct {
	cfg    config.HuggingFaceConfig
	http   *http.Client
	logger *zap.SugaredLogger
}

func NewHuggingFace(cfg config.HuggingFaceConfig, httpClient *http.Client, logger *zap.SugaredLogger) *HuggingFace {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HuggingFace{cfg: cfg, http: httpClient, logger: logger}
}

func (h *HuggingFace) Name() string { return config.ProviderHuggingFace }

// NewGenerator проверяет модель в Hub и возвращает генератор.
func (h *HuggingFace) NewGenerator(ctx context.Context, model string) (ImageGenerator, error) {
	if err := h.checkModel(ctx, model, hfTaskTextToImage); err != nil {
		return nil, err
	}
	return &hfGenerator{hf: h, model: model}, nil
}

// NewClassifier проверяет модель в Hub и возвращает классификатор.
func (h *HuggingFace) NewClassifier(ctx context.Context, model string) (ImageClassifier, error) {
	if err := h.checkModel(ctx, model, hfTaskImageClassification); err != nil {
		return nil, err
	}
	return &hfClassifier{hf: h, model: model}, nil
}

// checkModel убеждается, что модель существует и обслуживает нужную задачу.
func (h *HuggingFace) checkModel(ctx context.Context, model, task string) error {
	if strings.TrimSpace(model) == "" {
		return fmt.Errorf("huggingface: empty model name")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.hubURL(model), nil)
	if err != nil {
		return err
	}
	h.authorize(req)

	body, status, err := h.do(req)
	if err != nil {
		return fmt.Errorf("huggingface: fetch model %s: %w", model, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("huggingface: model %s: %s", model, apiError(status, body))
	}
	// Модели без pipeline_tag пропускаем: Inference API всё равно ответит ошибкой, если задача не та
	if tag := gjson.GetBytes(body, "pipeline_tag").String(); tag != "" && tag != task {
		return fmt.Errorf("huggingface: model %s serves %q, not %q", model, tag, task)
	}
	h.logger.Infow("Hugging Face model resolved", "model", model, "task", task)
	return nil
}

func (h *HuggingFace) hubURL(model string) string {
	return strings.TrimRight(h.cfg.HubURL, "/") + "/api/models/" + model
}

func (h *HuggingFace) inferenceURL(model string) string {
	return strings.TrimRight(h.cfg.InferenceURL, "/") + "/models/" + model
}

func (h *HuggingFace) authorize(req *http.Request) {
	if h.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+h.cfg.Token)
	}
}

func (h *HuggingFace) do(req *http.Request) ([]byte, int, error) {
	resp, err := h.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

type hfGenerator struct {
	hf    *HuggingFace
	model string
}

func (g *hfGenerator) Generate(ctx context.Context, prompt string, params GenerateParams) (image.Image, error) {
	payload := []byte(`{}`)
	payload, err := sjson.SetBytes(payload, "inputs", prompt)
	if err != nil {
		return nil, err
	}
	if params.Steps > 0 {
		if payload, err = sjson.SetBytes(payload, "parameters.num_inference_steps", params.Steps); err != nil {
			return nil, err
		}
	}
	if params.GuidanceScale > 0 {
		if payload, err = sjson.SetBytes(payload, "parameters.guidance_scale", params.GuidanceScale); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.hf.inferenceURL(g.model), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/png")
	g.hf.authorize(req)

	body, status, err := g.hf.do(req)
	if err != nil {
		return nil, fmt.Errorf("huggingface: generate: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("huggingface: generate: %s", apiError(status, body))
	}
	img, format, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("huggingface: decode generated image: %w", err)
	}
	g.hf.logger.Debugw("Image generated", "model", g.model, "format", format, "size", img.Bounds().Size().String())
	return img, nil
}

type hfClassifier struct {
	hf    *HuggingFace
	model string
}

func (c *hfClassifier) Classify(ctx context.Context, imagePath string) ([]Prediction, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.hf.inferenceURL(c.model), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", http.DetectContentType(data))
	req.Header.Set("Accept", "application/json")
	c.hf.authorize(req)

	body, status, err := c.hf.do(req)
	if err != nil {
		return nil, fmt.Errorf("huggingface: classify: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("huggingface: classify: %s", apiError(status, body))
	}
	return parsePredictions(body)
}

// parsePredictions разбирает массив [{"label","score"}]; вложенный массив [[...]] тоже допустим.
func parsePredictions(body []byte) ([]Prediction, error) {
	res := gjson.ParseBytes(body)
	if !res.IsArray() {
		return nil, fmt.Errorf("unexpected classification response: %s", truncate(string(body), 200))
	}
	if first := res.Get("0"); first.IsArray() {
		res = first
	}
	var out []Prediction
	res.ForEach(func(_, v gjson.Result) bool {
		label := v.Get("label")
		if !label.Exists() {
			return true
		}
		out = append(out, Prediction{Label: label.String(), Score: v.Get("score").Float()})
		return true
	})
	return out, nil
}

func apiError(status int, body []byte) string {
	msg := gjson.GetBytes(body, "error").String()
	if msg == "" {
		msg = string(body)
	}
	// Тело ответа шлюза бывает многострочным HTML: схлопываем в одну строку
	msg = strings.Join(strings.Fields(msg), " ")
	if msg == "" {
		msg = http.StatusText(status)
	}
	return fmt.Sprintf("status %d: %s", status, truncate(msg, 200))
}

// truncate обрезает по границе руны, n в байтах.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
