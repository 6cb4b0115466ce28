package aglauncher

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/carousel"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/catalog"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/constants"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/internal"
)

const (
	frameThickness  = 6
	bannerHeight    = 0.08
	sideBarIdle     = 0.45
	sideBarHover    = 1.0
	placeholderFill = 0.25
)

// carouselScreen runs frames until the window closes or the session runs out.
func (k *Kiosk) carouselScreen() (LauncherResult, error) {
	win := internal.GetWindow()

	for {
		now := time.Now()

		in, quit := k.input.Poll(now)
		if quit {
			return LauncherResult{Action: LauncherActionQuit, SessionElapsed: FormatStopwatch(k.controller.SessionElapsed(now))}, nil
		}

		res := k.controller.Tick(now, in)
		k.handle(res, now)

		if k.controller.OnBreak() {
			return LauncherResult{Action: LauncherActionBreak, SessionElapsed: FormatStopwatch(k.controller.SessionElapsed(now))}, nil
		}

		if k.controller.ProcessRunning() && k.opts.MinimizeOnRun {
			// Nothing to draw behind a running game.
			sdl.Delay(uint32(constants.DefaultFrameDelay.Milliseconds()))
			continue
		}

		k.render(win, now, in)
		win.Present()
	}
}

// cardAlpha picks the opacity of a card resting in slot rel.
func cardAlpha(rel int, hover carousel.Region, pointerValid, demo bool) float64 {
	if rel != 0 {
		return carousel.NeighbourAlpha
	}
	if pointerValid && !demo && hover == carousel.RegionCenter {
		return carousel.HoverAlpha
	}
	return carousel.SelectedAlpha
}

func (k *Kiosk) render(win *internal.Window, now time.Time, in carousel.Input) {
	renderer := win.Renderer
	theme := internal.GetTheme()
	fonts := internal.GetFonts()
	c := k.controller
	cat := c.Catalog()
	demo := c.InDemoMode()

	win.Clear()

	k.drawSideBars(renderer, theme, in.Hover, k.input.PointerValid() && !demo)

	if c.QueueState() == carousel.StateIdle {
		for rel := -1; rel <= 1; rel++ {
			entry := cat.At(c.Index().Offset(rel))
			k.drawCard(renderer, theme, fonts, entry, carousel.SlotX(rel), cardAlpha(rel, in.Hover, k.input.PointerValid(), demo))
		}
		if !demo {
			internal.StrokeRect(renderer, internal.FracRect(carousel.SelectedRectX, carousel.SelectedRectY, carousel.SelectedRectW, carousel.SelectedRectH), theme.FrameColor, frameThickness)
		}
	} else {
		for _, slide := range c.Slides() {
			k.drawCard(renderer, theme, fonts, cat.At(slide.Entry), slide.X(), slide.Alpha())
		}
	}

	k.drawDescription(renderer, theme, fonts, cat.At(c.Selected()))

	internal.DrawText(renderer, fonts.Overlay, FormatCounter(c.Selected(), cat.Len()), theme.TextColor,
		internal.PX(carousel.CounterX), internal.PY(carousel.CounterY), constants.TextAlignCenter)

	if elapsed := c.SessionElapsed(now); elapsed > 0 {
		internal.DrawText(renderer, fonts.Overlay, FormatStopwatch(elapsed), theme.TextColor,
			internal.PX(carousel.StopwatchOverlay), internal.PY(carousel.StopwatchOverlay), constants.TextAlignCenter)
	}

	if banner := k.Banner(now); banner != "" {
		rect := internal.FracRect(0, 0, 1, bannerHeight)
		internal.FillRect(renderer, rect, theme.FrameColor)
		internal.DrawText(renderer, fonts.Overlay, banner, theme.PanelColor,
			internal.PX(0.5), rect.H/2-int32(fonts.Overlay.Height())/2, constants.TextAlignCenter)
	}
}

func (k *Kiosk) drawSideBars(renderer *sdl.Renderer, theme internal.Theme, hover carousel.Region, showHover bool) {
	bars := []struct {
		region carousel.Region
		x      float64
		icon   *sdl.Texture
	}{
		{carousel.RegionLeft, 0, k.icons.ArrowLeft},
		{carousel.RegionRight, 1 - carousel.SideBarW, k.icons.ArrowRight},
	}

	for _, bar := range bars {
		alpha := sideBarIdle
		if showHover && hover == bar.region {
			alpha = sideBarHover
		}

		rect := internal.FracRect(bar.x, carousel.SideBarY, carousel.SideBarW, carousel.SideBarH)
		internal.FillRect(renderer, rect, internal.WithAlpha(theme.LineColor, alpha))

		size := rect.W
		iconRect := sdl.Rect{X: rect.X, Y: rect.Y + rect.H/2 - size/2, W: size, H: size}
		internal.DrawTinted(renderer, bar.icon, iconRect, internal.WithAlpha(theme.PanelColor, alpha))
	}
}

func (k *Kiosk) drawCard(renderer *sdl.Renderer, theme internal.Theme, fonts *internal.FontSet, entry catalog.Entry, x, alpha float64) {
	cx, cy := internal.PX(x), internal.PY(carousel.CardCenterY)
	height := internal.PY(carousel.CardHeight)

	if texture := k.thumbs.Load(renderer, entry.Thumb); texture != nil {
		w, h := internal.TextureSize(texture)
		internal.DrawTexture(renderer, texture, internal.FitHeight(w, h, cx, cy, height), alpha)
	} else {
		// 16:9 placeholder for entries without a usable thumbnail.
		rect := internal.FitHeight(16, 9, cx, cy, height)
		internal.FillRect(renderer, rect, internal.WithAlpha(theme.LineColor, alpha*placeholderFill))
		internal.StrokeRect(renderer, rect, internal.WithAlpha(theme.LineColor, alpha), 2)
	}

	internal.DrawText(renderer, fonts.Card, entry.Title, internal.WithAlpha(theme.TextColor, alpha),
		cx, internal.PY(carousel.CardTitleY), constants.TextAlignCenter)
}

func (k *Kiosk) drawDescription(renderer *sdl.Renderer, theme internal.Theme, fonts *internal.FontSet, entry catalog.Entry) {
	top := internal.PY(carousel.DescriptionTop)
	panel := sdl.Rect{X: 0, Y: top, W: constants.LogicalWidth, H: constants.LogicalHeight - top}
	internal.FillRect(renderer, panel, theme.PanelColor)

	line := sdl.Rect{X: 0, Y: top, W: constants.LogicalWidth, H: frameThickness}
	internal.FillRect(renderer, line, theme.LineColor)

	internal.DrawLines(renderer, fonts.Overlay, entry.DescriptionLines(), theme.TextColor,
		internal.PX(0.5), top+internal.PY(0.03), constants.TextAlignCenter)
}
