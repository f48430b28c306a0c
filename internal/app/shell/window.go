package shell

import (
	"modeldemo/internal/app/screen"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"
)

// Placer задаёт размер и положение окна.
type Placer interface {
	Place(w fyne.Window)
}

// CenterPlacer ужимает окно до размеров экрана и ставит его по центру.
type CenterPlacer struct {
	Width, Height int
	Screen        func() (int, int, bool)
	Logger        *zap.SugaredLogger
}

func NewCenterPlacer(width, height int, logger *zap.SugaredLogger) *CenterPlacer {
	return &CenterPlacer{Width: width, Height: height, Screen: screen.Primary, Logger: logger}
}

// Geometry вычисляет размер и позицию; без дисплея — просто заданный размер.
func (p *CenterPlacer) Geometry() screen.Geometry {
	sw, sh, ok := p.Screen()
	if !ok {
		return screen.Geometry{Width: p.Width, Height: p.Height}
	}
	return screen.Center(sw, sh, p.Width, p.Height)
}

// Place применяет только размер. fyne не даёт задать координаты окна, поэтому
// центрирует сам оконный менеджер через CenterOnScreen; X/Y из Geometry попадают лишь в лог.
func (p *CenterPlacer) Place(w fyne.Window) {
	g := p.Geometry()
	w.Resize(fyne.NewSize(float32(g.Width), float32(g.Height)))
	w.CenterOnScreen()
	p.Logger.Infow("Window placed", "geometry", g.String(), "position", "centered by window manager")
}
