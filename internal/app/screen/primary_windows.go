//go:build windows

package screen

import "github.com/lxn/win"

func primary() (int, int, bool) {
	w := int(win.GetSystemMetrics(win.SM_CXSCREEN))
	h := int(win.GetSystemMetrics(win.SM_CYSCREEN))
	return w, h, w > 0 && h > 0
}
