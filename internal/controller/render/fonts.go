package render

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const fontSize = 13.0

var (
	parsedFont    *opentype.Font
	parsedFontErr error
	parseFontOnce sync.Once
)

// loadFace возвращает Go Regular нужного размера (есть кириллица),
// при ошибке разбора шрифта - basicfont
func loadFace(size float64) font.Face {
	parseFontOnce.Do(func() {
		parsedFont, parsedFontErr = opentype.Parse(goregular.TTF)
	})
	if parsedFontErr != nil {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(parsedFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
