package internal

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestHexToColor(t *testing.T) {
	got := HexToColor(0xD73A59)
	want := sdl.Color{R: 215, G: 58, B: 89, A: 255}
	if got != want {
		t.Errorf("HexToColor() = %+v, want %+v", got, want)
	}
}

func TestWithAlpha(t *testing.T) {
	c := sdl.Color{R: 1, G: 2, B: 3, A: 255}

	tests := []struct {
		alpha float64
		want  uint8
	}{
		{1.0, 255},
		{1.5, 255},
		{0.6, 153},
		{0.8, 204},
		{0, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := WithAlpha(c, tt.alpha).A; got != tt.want {
			t.Errorf("WithAlpha(%v).A = %d, want %d", tt.alpha, got, tt.want)
		}
	}
}
