package internal

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/constants"
)

// PX converts a fraction of the logical width to pixels.
func PX(f float64) int32 {
	return int32(f*float64(constants.LogicalWidth) + 0.5)
}

// PY converts a fraction of the logical height to pixels.
func PY(f float64) int32 {
	return int32(f*float64(constants.LogicalHeight) + 0.5)
}

// FracRect builds a rect from fractions of the logical screen.
func FracRect(x, y, w, h float64) sdl.Rect {
	return sdl.Rect{X: PX(x), Y: PY(y), W: PX(w), H: PY(h)}
}

// FitHeight scales a w x h image to the given height, keeping its aspect ratio,
// and centers it on (cx, cy).
func FitHeight(w, h, cx, cy, height int32) sdl.Rect {
	if h <= 0 {
		return sdl.Rect{X: cx, Y: cy}
	}
	width := int32(int64(w) * int64(height) / int64(h))
	return sdl.Rect{X: cx - width/2, Y: cy - height/2, W: width, H: height}
}

// AlignX returns the left edge for text of width w anchored at x.
func AlignX(x, w int32, align constants.TextAlign) int32 {
	switch align {
	case constants.TextAlignCenter:
		return x - w/2
	case constants.TextAlignRight:
		return x - w
	default:
		return x
	}
}

// DrawText renders one line of text anchored at (x, y) and returns its size.
func DrawText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, x, y int32, align constants.TextAlign) (int32, int32) {
	if text == "" || font == nil {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetLogger().Debug("Failed to render text", "text", text, "error", err)
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetLogger().Debug("Failed to create text texture", "error", err)
		return 0, 0
	}
	defer texture.Destroy()

	if color.A < 255 {
		texture.SetAlphaMod(color.A)
	}

	dst := sdl.Rect{X: AlignX(x, surface.W, align), Y: y, W: surface.W, H: surface.H}
	renderer.Copy(texture, nil, &dst)
	return surface.W, surface.H
}

// DrawLines renders lines top to bottom and returns the total height used.
func DrawLines(renderer *sdl.Renderer, font *ttf.Font, lines []string, color sdl.Color, x, y int32, align constants.TextAlign) int32 {
	if font == nil {
		return 0
	}

	lineHeight := int32(font.LineSkip())
	total := int32(0)
	for _, line := range lines {
		DrawText(renderer, font, line, color, x, y+total, align)
		total += lineHeight
	}
	return total
}

// FillRect fills rect with color, honoring its alpha.
func FillRect(renderer *sdl.Renderer, rect sdl.Rect, color sdl.Color) {
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(&rect)
}

// StrokeRect draws a rectangle outline thickness pixels wide, growing inward.
func StrokeRect(renderer *sdl.Renderer, rect sdl.Rect, color sdl.Color, thickness int32) {
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	for i := int32(0); i < thickness && i*2 < rect.W && i*2 < rect.H; i++ {
		r := sdl.Rect{X: rect.X + i, Y: rect.Y + i, W: rect.W - 2*i, H: rect.H - 2*i}
		renderer.DrawRect(&r)
	}
}

// DrawTexture copies texture into dst with the given opacity.
func DrawTexture(renderer *sdl.Renderer, texture *sdl.Texture, dst sdl.Rect, alpha float64) {
	if texture == nil {
		return
	}
	texture.SetAlphaMod(WithAlpha(sdl.Color{A: 255}, alpha).A)
	renderer.Copy(texture, nil, &dst)
}

// DrawTinted copies a white texture into dst multiplied by color.
func DrawTinted(renderer *sdl.Renderer, texture *sdl.Texture, dst sdl.Rect, color sdl.Color) {
	if texture == nil {
		return
	}
	texture.SetColorMod(color.R, color.G, color.B)
	texture.SetAlphaMod(color.A)
	renderer.Copy(texture, nil, &dst)
}

// TextureSize returns the pixel size of a texture.
func TextureSize(texture *sdl.Texture) (int32, int32) {
	_, _, w, h, err := texture.Query()
	if err != nil {
		return 0, 0
	}
	return w, h
}
