// Package screen вычисляет размер и положение главного окна относительно основного дисплея.
package screen

import "fmt"

// Geometry размер и позиция окна в пикселях экрана.
type Geometry struct {
	Width, Height int
	X, Y          int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", g.Width, g.Height, g.X, g.Y)
}

// Primary возвращает размер основного дисплея; ok=false, если дисплей не найден (headless).
func Primary() (width, height int, ok bool) {
	return primary()
}

// Center вписывает окно w×h в экран и центрирует его.
// Если экран меньше окна, окно ужимается до размеров экрана.
func Center(screenW, screenH, w, h int) Geometry {
	if screenW > 0 && w > screenW {
		w = screenW
	}
	if screenH > 0 && h > screenH {
		h = screenH
	}
	return Geometry{
		Width:  w,
		Height: h,
		X:      max(0, (screenW-w)/2),
		Y:      max(0, (screenH-h)/2),
	}
}
