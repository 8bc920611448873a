package raster

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce sync.Once
	fontData *truetype.Font
	fontErr  error
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		fontData, fontErr = freetype.ParseFont(goregular.TTF)
	})
	return fontData, fontErr
}

// drawCaption writes text with its baseline at (x, y).
func drawCaption(img *image.RGBA, x, y int, text string, size float64, c color.Color) error {
	f, err := loadFont()
	if err != nil {
		return fmt.Errorf("raster: font: %w", err)
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(c))
	ctx.SetHinting(font.HintingFull)

	if _, err := ctx.DrawString(text, freetype.Pt(x, y)); err != nil {
		return fmt.Errorf("raster: caption: %w", err)
	}
	return nil
}
