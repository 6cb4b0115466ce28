package internal

import "testing"

func TestRasterizeArrows(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		insideX int
	}{
		{"left", arrowLeftSVG, 26},
		{"right", arrowRightSVG, 38},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := RasterizeSVG(tt.data, 64)
			if err != nil {
				t.Fatalf("RasterizeSVG() failed: %v", err)
			}

			if a := img.RGBAAt(tt.insideX, 32).A; a == 0 {
				t.Errorf("pixel inside the arrow is transparent")
			}
			if a := img.RGBAAt(2, 2).A; a != 0 {
				t.Errorf("corner pixel alpha = %d, want 0", a)
			}
		})
	}
}

func TestRasterizeScales(t *testing.T) {
	img, err := RasterizeSVG(arrowLeftSVG, 128)
	if err != nil {
		t.Fatalf("RasterizeSVG() failed: %v", err)
	}
	if img.Bounds().Dx() != 128 {
		t.Errorf("width = %d, want 128", img.Bounds().Dx())
	}
	if a := img.RGBAAt(52, 64).A; a == 0 {
		t.Error("scaled arrow not drawn")
	}
}

func TestRasterizeRejectsGarbage(t *testing.T) {
	if _, err := RasterizeSVG([]byte("not svg at all <"), 32); err == nil {
		t.Error("RasterizeSVG() accepted garbage")
	}
}
