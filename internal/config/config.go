package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Провайдеры пайплайнов
const (
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
	ProviderStub        = "stub"
)

type Config struct {
	DebugMode bool   `env:"DEBUG_MODE"` //Режим дебага
	Provider  string `env:"PROVIDER"`   // huggingface|openai|stub, по умолчанию huggingface

	TextToImageModel         string        `env:"TEXT_TO_IMAGE_MODEL"`        // Модель генерации изображений; пусто — дефолт провайдера
	ImageClassificationModel string        `env:"IMAGE_CLASSIFICATION_MODEL"` // Модель классификации; пусто — дефолт провайдера
	RequestTimeout           time.Duration `env:"REQUEST_TIMEOUT"`            // Таймаут одного запроса к провайдеру, 0 — без таймаута

	HuggingFace HuggingFaceConfig
	OpenAI      OpenAIConfig

	// Окно
	WindowWidth  int `env:"WINDOW_WIDTH"`
	WindowHeight int `env:"WINDOW_HEIGHT"`

	NotificationSoundPath string `env:"NOTIFICATION_SOUND_PATH"` // Звук по завершении запуска модели (mp3|wav), пусто — выключено
}

// HuggingFaceConfig конфигурация Hugging Face Hub и Inference API.
type HuggingFaceConfig struct {
	Token        string `env:"HF_TOKEN"`         // Токен берём из .env/ENV
	HubURL       string `env:"HF_HUB_URL"`       // Адрес Hub API для проверки модели
	InferenceURL string `env:"HF_INFERENCE_URL"` // Базовый адрес Inference API
}

// OpenAIConfig конфигурация клиента OpenAI.
type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`  // Пусто — клиент читает OPENAI_API_KEY сам
	BaseURL string `env:"OPENAI_BASE_URL"` // Пусто — официальный адрес
}

// Модели по умолчанию для каждого провайдера: генерация, классификация.
var defaultModels = map[string][2]string{
	ProviderHuggingFace: {"runwayml/stable-diffusion-v1-5", "google/vit-base-patch16-224"},
	ProviderOpenAI:      {"dall-e-2", "gpt-4o"},
	ProviderStub:        {"stub/text-to-image", "stub/image-classification"},
}

// Defaults возвращает конфигурацию с предустановленными значениями по умолчанию.
// Эти значения перекрываются .env, переменными окружения и флагами CLI.
func Defaults() *Config {
	return &Config{
		DebugMode: false,
		Provider:  ProviderHuggingFace,
		HuggingFace: HuggingFaceConfig{
			HubURL:       "https://huggingface.co",
			InferenceURL: "https://router.huggingface.co/hf-inference",
		},
		WindowWidth:  900,
		WindowHeight: 600,
	}
}

// NewConfig загружает конфигурацию приложения.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	// Стартуем с дефолтов, затем перекрываем .env/окружением и флагами
	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	RegisterFlags(flag.CommandLine, cfg)
	flag.Parse()

	cfg.ApplyModelDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RegisterFlags регистрирует флаги CLI поверх уже загруженных значений.
func RegisterFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DebugMode, "debug-mode", cfg.DebugMode, "включить режим дебага")
	fs.StringVar(&cfg.Provider, "provider", cfg.Provider, "провайдер пайплайнов: huggingface|openai|stub")
	fs.StringVar(&cfg.TextToImageModel, "text-to-image-model", cfg.TextToImageModel, "имя модели генерации изображений")
	fs.StringVar(&cfg.ImageClassificationModel, "image-classification-model", cfg.ImageClassificationModel, "имя модели классификации изображений")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "таймаут одного запроса к провайдеру, напр. 2m; 0 — без таймаута")
	fs.StringVar(&cfg.HuggingFace.HubURL, "hf-hub-url", cfg.HuggingFace.HubURL, "адрес Hugging Face Hub API")
	fs.StringVar(&cfg.HuggingFace.InferenceURL, "hf-inference-url", cfg.HuggingFace.InferenceURL, "базовый адрес Hugging Face Inference API")
	fs.StringVar(&cfg.OpenAI.BaseURL, "openai-base-url", cfg.OpenAI.BaseURL, "базовый адрес OpenAI API")
	fs.IntVar(&cfg.WindowWidth, "window-width", cfg.WindowWidth, "ширина окна")
	fs.IntVar(&cfg.WindowHeight, "window-height", cfg.WindowHeight, "высота окна")
	fs.StringVar(&cfg.NotificationSoundPath, "notification-sound-path", cfg.NotificationSoundPath, "путь к звуку завершения запуска (mp3 или wav)")
}

// ApplyModelDefaults подставляет модели провайдера, если они не заданы явно.
func (c *Config) ApplyModelDefaults() {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	models, ok := defaultModels[c.Provider]
	if !ok {
		return
	}
	if strings.TrimSpace(c.TextToImageModel) == "" {
		c.TextToImageModel = models[0]
	}
	if strings.TrimSpace(c.ImageClassificationModel) == "" {
		c.ImageClassificationModel = models[1]
	}
}

// Validate проверяет значения, от которых зависит запуск.
func (c *Config) Validate() error {
	if _, ok := defaultModels[c.Provider]; !ok {
		return fmt.Errorf("config: unknown provider %q (want huggingface|openai|stub)", c.Provider)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config: negative request timeout %s", c.RequestTimeout)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
