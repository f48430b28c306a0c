//go:build !windows

package screen

import "github.com/kbinani/screenshot"

func primary() (w int, h int, ok bool) {
	// На Linux без X-сервера библиотека может паниковать, а не вернуть 0 дисплеев
	defer func() {
		if recover() != nil {
			w, h, ok = 0, 0, false
		}
	}()
	if screenshot.NumActiveDisplays() <= 0 {
		return 0, 0, false
	}
	b := screenshot.GetDisplayBounds(0)
	return b.Dx(), b.Dy(), b.Dx() > 0 && b.Dy() > 0
}
