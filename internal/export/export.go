package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format is an output image encoding.
type Format string

const (
	WebP Format = "webp"
	PNG  Format = "png"
	TGA  Format = "tga"
)

// ParseFormat accepts "webp", "png" or "tga"; empty means WebP.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", WebP:
		return WebP, nil
	case PNG, TGA:
		return Format(s), nil
	}
	return "", fmt.Errorf("export: unknown format %q", s)
}

// Ext returns the file extension without the dot.
func (f Format) Ext() string {
	if f == "" {
		return string(WebP)
	}
	return string(f)
}

// Encode writes img to w. WebP output is lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case "", WebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("export: webp encode: %w", err)
		}
	case PNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("export: png encode: %w", err)
		}
	case TGA:
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("export: tga encode: %w", err)
		}
	default:
		return fmt.Errorf("export: unknown format %q", f)
	}
	return nil
}

// Save encodes img to path, creating parent directories.
func Save(path string, img image.Image, f Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := Encode(out, img, f); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}
