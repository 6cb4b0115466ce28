package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Init brings up SDL, the window and the fonts. On error everything that
// was started is shut down again.
func Init(title string, winOpts WindowOptions, fontPath string) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetLogger().Warn("Image codecs unavailable", "error", err)
	}

	if err := ttf.Init(); err != nil {
		img.Quit()
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	win, err := initWindow(title, winOpts)
	if err != nil {
		ttf.Quit()
		img.Quit()
		sdl.Quit()
		return err
	}
	window = win

	if err := initFonts(fontPath); err != nil {
		window.closeWindow()
		window = nil
		ttf.Quit()
		img.Quit()
		sdl.Quit()
		return fmt.Errorf("load font: %w", err)
	}

	return nil
}

func SDLCleanup() {
	closeFonts()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}

// ShowMessage shows a blocking message box. It works before Init.
func ShowMessage(title, message string, isError bool) {
	flags := uint32(sdl.MESSAGEBOX_INFORMATION)
	if isError {
		flags = uint32(sdl.MESSAGEBOX_ERROR)
	}

	var parent *sdl.Window
	if window != nil {
		parent = window.Window
	}

	if err := sdl.ShowSimpleMessageBox(flags, title, message, parent); err != nil {
		GetLogger().Error("Failed to show message box", "title", title, "message", message, "error", err)
	}
}
