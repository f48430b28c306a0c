package ai

// Декодеры форматов, которые возвращают провайдеры и принимает классификатор.
import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)
