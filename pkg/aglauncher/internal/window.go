package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/constants"
)

// Window wraps the SDL window and renderer. Everything is drawn on a
// 1920x1080 logical surface that SDL scales to the real window.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	Background      *sdl.Texture
	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		GetLogger().Error("Failed to get display mode", "error", err)
		displayMode.W, displayMode.H = constants.LogicalWidth, constants.LogicalHeight
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, winOpts)
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetLogger().Warn("Invalid window size; using default", "variable", name, "value", v)
		return fallback
	}
	return int32(n)
}

func initWindowWithSize(title string, width, height int32, winOpts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		winOpts = winOpts.Windowed()

		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, 1280)
		height = envSize(constants.WindowHeightEnvVar, 720)
	}

	GetLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.Flags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		sdlWindow.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")
	renderer.SetLogicalSize(constants.LogicalWidth, constants.LogicalHeight)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   sdlWindow,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}

	win.loadBackground()

	return win, nil
}

func (window *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if path == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		GetLogger().Warn("Failed to load background image", "path", path, "error", err)
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// Clear fills the logical surface with the theme background.
func (window *Window) Clear() {
	bg := GetTheme().BackgroundColor
	window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	window.Renderer.Clear()

	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{W: constants.LogicalWidth, H: constants.LogicalHeight})
	}
}

// Minimize hides the launcher behind a running game.
func (window *Window) Minimize() {
	window.Window.Minimize()
}

// Restore brings the launcher back to the front after a game exits.
func (window *Window) Restore() {
	window.Window.Restore()
	window.Window.Raise()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		frame := uint64(constants.DefaultFrameDelay.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
