package main

import (
	"context"
	"os"

	"modeldemo/internal/ai"
	"modeldemo/internal/app/shell"
	"modeldemo/internal/config"
	"modeldemo/internal/logging"
	"modeldemo/internal/model"
	"modeldemo/internal/service/notify"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"
)

const windowTitle = "ML Model Demo: text-to-image and image classification"

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		// логгер ещё не настроен: сообщаем через логгер разработки
		fallback, _ := zap.NewDevelopment()
		fallback.Sugar().Errorw("Invalid configuration", "error", err)
		_ = fallback.Sync()
		os.Exit(1)
	}

	// уровень логов зависит от DEBUG_MODE
	logger, err := logging.New(cfg.DebugMode)
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	sugar.Infow(
		"Starting app",
		"DebugMode", cfg.DebugMode,
		"Provider", cfg.Provider,
		"TextToImageModel", cfg.TextToImageModel,
		"ImageClassificationModel", cfg.ImageClassificationModel,
	)

	provider, err := ai.NewProvider(cfg, sugar)
	if err != nil {
		sugar.Errorw("Failed to create provider", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	// Пайплайны строятся лениво, при первом запуске модели
	textModel := model.NewTextToImage(cfg.TextToImageModel, func(ctx context.Context, name string) (ai.ImageGenerator, error) {
		sugar.Infow("Loading pipeline", "model", name, "task", "text-to-image")
		return provider.NewGenerator(ctx, name)
	})
	imageModel := model.NewImageClassifier(cfg.ImageClassificationModel, func(ctx context.Context, name string) (ai.ImageClassifier, error) {
		sugar.Infow("Loading pipeline", "model", name, "task", "image-classification")
		return provider.NewClassifier(ctx, name)
	})

	a := app.NewWithID("modeldemo")
	w := a.NewWindow(windowTitle)

	ui := shell.New(textModel, imageModel, shell.Options{
		Provider: provider.Name(),
		Dialogs:  shell.NewFyneDialogs(w),
		Picker:   shell.NewFynePicker(w, sugar),
		Notifier: notify.NewSoundNotifier(sugar, cfg.NotificationSoundPath),
		Logger:   sugar,
	})
	w.SetContent(ui.Content())
	shell.NewCenterPlacer(cfg.WindowWidth, cfg.WindowHeight, sugar).Place(w)
	w.SetMaster()
	w.ShowAndRun()

	sugar.Infow("App stopped")
}
