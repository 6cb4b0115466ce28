package internal

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed icons/arrow_left.svg
var arrowLeftSVG []byte

//go:embed icons/arrow_right.svg
var arrowRightSVG []byte

// Icons are white so they can be tinted with SetColorMod.
type Icons struct {
	ArrowLeft  *sdl.Texture
	ArrowRight *sdl.Texture
}

// RasterizeSVG renders an SVG document into a size x size RGBA image.
func RasterizeSVG(data []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

func svgTexture(renderer *sdl.Renderer, data []byte, size int) (*sdl.Texture, error) {
	rgba, err := RasterizeSVG(data, size)
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(size), int32(size), 32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// LoadIcons rasterizes the embedded icons at the given pixel size.
func LoadIcons(renderer *sdl.Renderer, size int) (*Icons, error) {
	left, err := svgTexture(renderer, arrowLeftSVG, size)
	if err != nil {
		return nil, fmt.Errorf("arrow_left: %w", err)
	}

	right, err := svgTexture(renderer, arrowRightSVG, size)
	if err != nil {
		left.Destroy()
		return nil, fmt.Errorf("arrow_right: %w", err)
	}

	return &Icons{ArrowLeft: left, ArrowRight: right}, nil
}

func (i *Icons) Destroy() {
	if i == nil {
		return
	}
	if i.ArrowLeft != nil {
		i.ArrowLeft.Destroy()
	}
	if i.ArrowRight != nil {
		i.ArrowRight.Destroy()
	}
}
