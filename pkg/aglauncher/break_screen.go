package aglauncher

import (
	"time"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/constants"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/internal"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/locale"
)

// breakScreen asks the player to hand over. Only the attendant button
// (or F1 in dev mode) or closing the window ends it; players cannot.
func (k *Kiosk) breakScreen() (BreakResult, error) {
	win := internal.GetWindow()
	renderer := win.Renderer
	theme := internal.GetTheme()
	fonts := internal.GetFonts()

	message := k.text(locale.BreakSuggestion, nil)
	hint := k.text(locale.BreakDismissHint, nil)

	// Presses left over from before the break do not count.
	k.attendant.TakePress()
	k.input.TakeAttendantKey()

	for {
		now := time.Now()

		if _, quit := k.input.Poll(now); quit {
			return BreakResult{Action: BreakActionQuit}, nil
		}
		if k.input.TakeAttendantKey() {
			k.attendant.Press()
		}
		if k.attendant.TakePress() {
			return BreakResult{Action: BreakActionResume}, nil
		}

		bg := theme.PanelColor
		renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
		renderer.Clear()

		internal.DrawText(renderer, fonts.Break, message, theme.TextColor,
			internal.PX(0.5), internal.PY(0.45), constants.TextAlignCenter)
		internal.DrawText(renderer, fonts.Overlay, hint, internal.WithAlpha(theme.LineColor, 0.8),
			internal.PX(0.5), internal.PY(0.85), constants.TextAlignCenter)

		win.Present()
	}
}
