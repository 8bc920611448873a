package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func TestDownsampleSolid(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 40, 80, 120, 255
	}

	got := Downsample(src, 16)
	if got.Bounds() != image.Rect(0, 0, 16, 16) {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	for _, p := range []image.Point{{0, 0}, {7, 9}, {15, 15}} {
		c := got.NRGBAAt(p.X, p.Y)
		if c != (color.NRGBA{40, 80, 120, 255}) {
			t.Errorf("pixel %v = %v", p, c)
		}
	}
}

func TestDownsampleUnpremultiplies(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(1, 1, color.RGBA{50, 0, 0, 100})

	got := Downsample(src, 4)
	c := got.NRGBAAt(1, 1)
	if c.A != 100 || c.R != 128 {
		t.Errorf("pixel = %v, want R=128 A=100", c)
	}
	if got.NRGBAAt(0, 0).A != 0 {
		t.Errorf("transparent pixel = %v", got.NRGBAAt(0, 0))
	}
}

func TestUnpremultiplyRoundsHalvesUp(t *testing.T) {
	tests := []struct {
		premul, alpha, want uint8
	}{
		{50, 100, 128},  // 127.5
		{10, 20, 128},
		{100, 200, 128},
		{1, 2, 128},
		{64, 128, 128},
		{200, 255, 200},
	}
	for _, tt := range tests {
		src := image.NewRGBA(image.Rect(0, 0, 1, 1))
		src.SetRGBA(0, 0, color.RGBA{tt.premul, tt.premul, tt.premul, tt.alpha})
		c := unpremultiply(src).NRGBAAt(0, 0)
		if c.R != tt.want || c.G != tt.want || c.B != tt.want || c.A != tt.alpha {
			t.Errorf("unpremultiply(%d @ %d) = %v, want %d", tt.premul, tt.alpha, c, tt.want)
		}
	}
}
