package shell

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"modeldemo/internal/model"
	preview "modeldemo/internal/service/image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
)

const (
	hintInference = "Make sure the inference provider is reachable and its credentials are configured."
	hintLoad      = "The model could not be loaded: check the model name, network access and provider credentials."
)

// runSelectedModel Idle -> Running -> Idle. Все ошибки превращаются в текст панели вывода или диалог.
func (a *App) runSelectedModel() {
	if a.running {
		a.logger.Warnw("Run ignored: a model is already running", "mode", a.mode)
		return
	}
	a.running = true
	defer func() { a.running = false }()

	input, err := a.readInput()
	if err != nil {
		a.dialogs.Warning("Input required", a.inputHint())
		return
	}

	logger := a.logger.With("run_id", uuid.NewString(), "mode", a.mode)
	a.clearOutput()
	ctx := context.Background()

	switch a.mode {
	case ModeTextToImage:
		img, err := a.textModel.Run(ctx, input)
		if err != nil {
			logger.Errorw("Model run failed", "model", a.textModel.Name(), "error", err)
			a.showText(errorMessage(err))
			return
		}
		a.showImage(preview.Thumbnail(img, preview.ResultSize))
	default:
		labels, err := a.imageModel.Run(ctx, input)
		if err != nil {
			logger.Errorw("Model run failed", "model", a.imageModel.Name(), "error", err)
			a.showText(errorMessage(err))
			return
		}
		a.showText(labels)
	}
	logger.Infow("Model run finished")
	a.notifier.Notify()
}

// readInput возвращает промпт или путь к файлу текущего режима.
func (a *App) readInput() (string, error) {
	var entry *widget.Entry
	if a.mode == ModeTextToImage {
		entry = a.textEntry
	} else {
		entry = a.pathEntry
	}
	if entry == nil {
		return "", model.ErrEmptyInput
	}
	v := strings.TrimSpace(entry.Text)
	if v == "" {
		return "", model.ErrEmptyInput
	}
	return v, nil
}

func (a *App) inputHint() string {
	if a.mode == ModeTextToImage {
		return "Please enter a text prompt."
	}
	return "Please select an image file."
}

// errorMessage две строки: сама ошибка и подсказка по её виду.
func errorMessage(err error) string {
	hint := hintInference
	var initErr *model.PipelineInitError
	if errors.As(err, &initErr) {
		hint = hintLoad
	}
	// Текст ошибки провайдера может быть многострочным; в панели ровно две строки
	msg := strings.Join(strings.Fields(err.Error()), " ")
	return fmt.Sprintf("Error running model: %s\n%s", msg, hint)
}

// browseImage выбирает файл и показывает превью. Ошибка декодирования не сбрасывает путь.
func (a *App) browseImage() {
	a.picker.PickImage(func(path string) {
		if path == "" || a.mode != ModeImageClassify || a.pathEntry == nil {
			return
		}
		if !preview.IsSupported(path) {
			a.logger.Warnw("Unsupported image file", "path", path)
			a.dialogs.Warning("Unsupported file", "Please select a "+strings.Join(preview.Extensions, ", ")+" file.")
			return
		}
		a.pathEntry.SetText(path)
		img, err := preview.Decode(path)
		if err != nil {
			a.logger.Warnw("Failed to preview image", "path", path, "error", err)
			a.dialogs.Error("Image error", err)
			return
		}
		a.showThumbnail(preview.Thumbnail(img, preview.ThumbnailSize))
	})
}

func (a *App) showThumbnail(img image.Image) {
	size := img.Bounds().Size()
	a.thumb.Image = img
	a.thumb.SetMinSize(fyne.NewSize(float32(size.X), float32(size.Y)))
	a.thumb.Refresh()
}

func (a *App) clearOutput() {
	a.outputArea.RemoveAll()
	a.outputArea.Refresh()
}

func (a *App) showImage(img image.Image) {
	size := img.Bounds().Size()
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	c.SetMinSize(fyne.NewSize(float32(size.X), float32(size.Y)))
	a.outputArea.Add(c)
}

func (a *App) showText(text string) {
	out := widget.NewMultiLineEntry()
	out.Wrapping = fyne.TextWrapWord
	out.SetMinRowsVisible(6)
	out.SetText(text)
	a.outputArea.Add(out)
}

func (a *App) showModelInfo() {
	info := fmt.Sprintf(
		"Text-to-Image model: %s (task: text-to-image)\n"+
			"Image Classification model: %s (task: image-classification)\n"+
			"Provider: %s\n\n"+
			"Notes:\n"+
			"- Models are loaded lazily the first time you run them.\n"+
			"- Image generation may take a while; the window does not respond until it finishes.\n"+
			"- Supported image files: %s\n",
		a.textModel.Name(), a.imageModel.Name(), a.provider, strings.Join(preview.Extensions, " "),
	)
	a.dialogs.Info("Model Info", info)
}
