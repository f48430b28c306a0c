package image

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Размеры превью по длинной стороне
const (
	ThumbnailSize = 240
	ResultSize    = 400
)

// Extensions растровые форматы, которые можно выбрать для классификации.
var Extensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif"}

// DecodeError файл не удалось открыть или декодировать.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("cannot open image %s: %v", e.Path, e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

// IsSupported проверяет расширение файла без учёта регистра.
func IsSupported(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

// Decode открывает и декодирует изображение с диска.
func Decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("invalid image size: %dx%d", b.Dx(), b.Dy())}
	}
	return img, nil
}

// Thumbnail возвращает новую картинку, длинная сторона которой не больше maxSide.
// Пропорции сохраняются, увеличения нет, исходное изображение не меняется.
func Thumbnail(src image.Image, maxSide int) *image.RGBA {
	sb := src.Bounds()
	w, h := FitSize(sb.Dx(), sb.Dy(), maxSide)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == sb.Dx() && h == sb.Dy() {
		draw.Copy(dst, image.Point{}, src, sb, draw.Src, nil)
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst
}

// FitSize вписывает w×h в квадрат maxSide×maxSide.
func FitSize(w, h, maxSide int) (int, int) {
	if w <= 0 || h <= 0 {
		return 1, 1
	}
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return w, h
	}
	scale := math.Min(float64(maxSide)/float64(w), float64(maxSide)/float64(h))
	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))
	return min(nw, maxSide), min(nh, maxSide)
}
