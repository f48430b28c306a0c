package shell

import (
	preview "modeldemo/internal/service/image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

// Dialogs модальные диалоги окна.
type Dialogs interface {
	Warning(title, message string)
	Error(title string, err error)
	Info(title, message string)
}

// FilePicker открывает выбор файла изображения; onChosen не вызывается при отмене.
type FilePicker interface {
	PickImage(onChosen func(path string))
}

// FyneDialogs показывает диалоги поверх окна fyne.
type FyneDialogs struct {
	win fyne.Window
}

func NewFyneDialogs(win fyne.Window) *FyneDialogs { return &FyneDialogs{win: win} }

func (d *FyneDialogs) Warning(title, message string) {
	d.show(title, theme.WarningIcon(), message)
}

func (d *FyneDialogs) Error(title string, err error) {
	d.show(title, theme.ErrorIcon(), err.Error())
}

func (d *FyneDialogs) Info(title, message string) {
	dialog.ShowInformation(title, message, d.win)
}

func (d *FyneDialogs) show(title string, icon fyne.Resource, message string) {
	body := widget.NewLabel(message)
	body.Wrapping = fyne.TextWrapWord
	dialog.NewCustom(title, "OK", container.NewBorder(nil, nil, widget.NewIcon(icon), nil, body), d.win).Show()
}

// FynePicker файловый диалог fyne с фильтром растровых форматов.
type FynePicker struct {
	win    fyne.Window
	logger *zap.SugaredLogger
}

func NewFynePicker(win fyne.Window, logger *zap.SugaredLogger) *FynePicker {
	return &FynePicker{win: win, logger: logger}
}

func (p *FynePicker) PickImage(onChosen func(path string)) {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			p.logger.Warnw("File dialog failed", "error", err)
			return
		}
		if rc == nil {
			return // отмена
		}
		path := rc.URI().Path()
		if cerr := rc.Close(); cerr != nil {
			p.logger.Warnw("Failed to close chosen file", "path", path, "error", cerr)
		}
		onChosen(path)
	}, p.win)
	fd.SetFilter(storage.NewExtensionFileFilter(preview.Extensions))
	fd.Show()
}
