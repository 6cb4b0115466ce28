package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/constants"
)

// ErrNoFont is returned when neither the configured font nor any fallback exists.
var ErrNoFont = errors.New("no usable font found")

// Fonts that can render Japanese, tried in order when no font is configured.
var fallbackFonts = []string{
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/google-noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/fonts-japanese-gothic.ttf",
	`C:\Windows\Fonts\meiryo.ttc`,
	`C:\Windows\Fonts\msgothic.ttc`,
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// FontSet holds the fonts used by every screen.
type FontSet struct {
	Path    string
	Card    *ttf.Font
	Overlay *ttf.Font
	Break   *ttf.Font
}

var fonts *FontSet

// FindFont returns configured if it exists, otherwise the first fallback that does.
func FindFont(configured string, candidates []string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrNoFont, configured, err)
		}
		return configured, nil
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrNoFont
}

func initFonts(configured string) error {
	path, err := FindFont(configured, fallbackFonts)
	if err != nil {
		return err
	}

	set := &FontSet{Path: path}
	sizes := []struct {
		dst  **ttf.Font
		size int
	}{
		{&set.Card, constants.CardFontSize},
		{&set.Overlay, constants.OverlayFontSize},
		{&set.Break, constants.BreakFontSize},
	}

	for _, s := range sizes {
		font, err := ttf.OpenFont(path, s.size)
		if err != nil {
			set.close()
			return fmt.Errorf("open font %s at %d: %w", path, s.size, err)
		}
		*s.dst = font
	}

	GetLogger().Debug("Loaded fonts", "path", path)
	fonts = set
	return nil
}

func (f *FontSet) close() {
	for _, font := range []*ttf.Font{f.Card, f.Overlay, f.Break} {
		if font != nil {
			font.Close()
		}
	}
}

func closeFonts() {
	if fonts != nil {
		fonts.close()
		fonts = nil
	}
}

// GetFonts returns the fonts loaded by Init.
func GetFonts() *FontSet {
	return fonts
}
