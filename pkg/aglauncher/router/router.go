package router

import (
	"fmt"
	"log/slog"
)

// Screen is a type-safe identifier for screens.
// Applications define their own Screen constants using iota.
type Screen int

// ScreenFunc runs a screen until it finishes and returns its result.
// The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// Return (screen, input) to navigate, or (ScreenExit, nil) to stop the router.
type TransitionFunc func(from Screen, result any) (next Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

type registration struct {
	name string
	fn   ScreenFunc
}

// Router runs screens one after another. A single transition function
// holds all routing logic.
type Router struct {
	screens    map[Screen]registration
	transition TransitionFunc
	logger     *slog.Logger
}

// New creates a new Router. A nil logger disables transition logging.
func New(logger *slog.Logger) *Router {
	return &Router{
		screens: make(map[Screen]registration),
		logger:  logger,
	}
}

// Register adds a named screen to the router.
func (r *Router) Register(screen Screen, name string, fn ScreenFunc) *Router {
	r.screens[screen] = registration{name: name, fn: fn}
	return r
}

// OnTransition sets the transition function that determines navigation flow.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Name returns the registered name of a screen.
func (r *Router) Name(screen Screen) string {
	if screen == ScreenExit {
		return "exit"
	}
	if reg, ok := r.screens[screen]; ok {
		return reg.name
	}
	return fmt.Sprintf("screen(%d)", screen)
}

// Run starts the router at the given screen with the given input.
// It continues until the transition function returns ScreenExit or a screen fails.
func (r *Router) Run(start Screen, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	current := start
	currentInput := input

	for {
		reg, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: screen %d not registered", current)
		}

		result, err := reg.fn(currentInput)
		if err != nil {
			return fmt.Errorf("router: %s: %w", reg.name, err)
		}

		next, nextInput := r.transition(current, result)
		if r.logger != nil {
			r.logger.Debug("Screen transition", "from", reg.name, "to", r.Name(next))
		}

		if next == ScreenExit {
			return nil
		}

		current = next
		currentInput = nextInput
	}
}
