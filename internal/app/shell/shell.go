// Package shell собирает главное окно: выбор режима, панель ввода, панель вывода и пояснения.
// Запуск модели выполняется синхронно в обработчике кнопки, окно на это время не отвечает.
package shell

import (
	"image"

	"modeldemo/internal/decorate"
	"modeldemo/internal/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

// Mode выбранный тип задачи.
type Mode string

const (
	ModeTextToImage   Mode = "text-to-image"
	ModeImageClassify Mode = "image-classification"
)

// Notifier сигнализирует об успешном завершении запуска.
type Notifier interface {
	Notify()
}

type nopNotifier struct{}

func (nopNotifier) Notify() {}

// Options внешние зависимости окна.
type Options struct {
	Provider string // имя провайдера для окна "Model Info"
	Dialogs  Dialogs
	Picker   FilePicker
	Notifier Notifier
	Logger   *zap.SugaredLogger
}

// App состояние приложения и дерево виджетов. По одному экземпляру обёртки на тип модели.
type App struct {
	textModel  model.Wrapper[string, image.Image]
	imageModel model.Wrapper[string, string]

	provider string
	dialogs  Dialogs
	picker   FilePicker
	notifier Notifier
	logger   *zap.SugaredLogger

	mode    Mode
	running bool

	modeSelect  *widget.Select
	runButton   *widget.Button
	infoButton  *widget.Button
	inputArea   *fyne.Container
	outputArea  *fyne.Container
	explanation *widget.RichText
	content     fyne.CanvasObject

	// Виджеты текущего режима; пересоздаются при смене режима
	textEntry    *widget.Entry
	pathEntry    *widget.Entry
	browseButton *widget.Button
	thumb        *canvas.Image
}

func New(textModel model.Wrapper[string, image.Image], imageModel model.Wrapper[string, string], opts Options) *App {
	a := &App{
		textModel:  textModel,
		imageModel: imageModel,
		provider:   opts.Provider,
		dialogs:    opts.Dialogs,
		picker:     opts.Picker,
		notifier:   opts.Notifier,
		logger:     opts.Logger,
	}
	if a.notifier == nil {
		a.notifier = nopNotifier{}
	}
	if a.logger == nil {
		a.logger = zap.NewNop().Sugar()
	}
	a.createWidgets()
	return a
}

// Content корневой виджет для окна.
func (a *App) Content() fyne.CanvasObject { return a.content }

// Mode текущий режим.
func (a *App) Mode() Mode { return a.mode }

func (a *App) createWidgets() {
	a.modeSelect = widget.NewSelect([]string{string(ModeTextToImage), string(ModeImageClassify)}, a.onModeSelected)

	// Логгер снаружи, таймер внутри
	run := decorate.Logged(a.logger, "runSelectedModel",
		decorate.Timed(a.logger, "runSelectedModel", a.runSelectedModel))
	a.runButton = widget.NewButton("Run Model", run)
	a.infoButton = widget.NewButton("Model Info", a.showModelInfo)

	controls := container.NewBorder(nil, nil,
		container.NewHBox(widget.NewLabel("Select input type:"), a.modeSelect),
		container.NewHBox(a.infoButton, a.runButton),
	)

	a.inputArea = container.NewVBox()
	a.outputArea = container.NewVBox()

	a.explanation = widget.NewRichTextFromMarkdown(explanationMarkdown)
	a.explanation.Wrapping = fyne.TextWrapWord
	explScroll := container.NewVScroll(a.explanation)
	explScroll.SetMinSize(fyne.NewSize(0, 160))

	a.content = container.NewVBox(
		controls,
		a.inputArea,
		widget.NewLabel("Output:"),
		a.outputArea,
		widget.NewLabel("How this demo works:"),
		explScroll,
	)

	a.SetMode(ModeTextToImage)
}

// SetMode переключает режим так же, как выбор в списке.
func (a *App) SetMode(m Mode) {
	if a.modeSelect.Selected == string(m) {
		a.onModeSelected(string(m))
		return
	}
	a.modeSelect.SetSelected(string(m))
}

func (a *App) onModeSelected(selected string) {
	a.mode = Mode(selected)
	a.updateInputArea()
}

// updateInputArea удаляет все виджеты панели ввода и строит их заново под текущий режим.
// Прежний ввод не сохраняется.
func (a *App) updateInputArea() {
	a.inputArea.RemoveAll()
	a.textEntry, a.pathEntry, a.browseButton, a.thumb = nil, nil, nil, nil

	switch a.mode {
	case ModeTextToImage:
		a.textEntry = widget.NewMultiLineEntry()
		a.textEntry.Wrapping = fyne.TextWrapWord
		a.textEntry.SetMinRowsVisible(6)
		a.inputArea.Add(widget.NewLabel("Enter text prompt:"))
		a.inputArea.Add(a.textEntry)
	default:
		a.pathEntry = widget.NewEntry()
		a.pathEntry.SetPlaceHolder("path to .png, .jpg, .jpeg, .bmp or .gif")
		a.browseButton = widget.NewButton("Browse", a.browseImage)
		a.thumb = &canvas.Image{FillMode: canvas.ImageFillContain}

		a.inputArea.Add(widget.NewLabel("Select image file:"))
		a.inputArea.Add(container.NewBorder(nil, nil, nil, a.browseButton, a.pathEntry))
		a.inputArea.Add(a.thumb)
	}
	a.inputArea.Refresh()
}
