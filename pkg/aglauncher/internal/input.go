package internal

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/carousel"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/constants"
)

// Stick deflection that counts as a held direction.
const axisDeadZone = 16000

var keyboardMapping = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_LEFT:     constants.VirtualButtonLeft,
	sdl.K_RIGHT:    constants.VirtualButtonRight,
	sdl.K_RETURN:   constants.VirtualButtonConfirm,
	sdl.K_KP_ENTER: constants.VirtualButtonConfirm,
	sdl.K_SPACE:    constants.VirtualButtonConfirm,
}

var controllerMapping = map[uint8]constants.VirtualButton{
	uint8(sdl.CONTROLLER_BUTTON_DPAD_LEFT):  constants.VirtualButtonLeft,
	uint8(sdl.CONTROLLER_BUTTON_DPAD_RIGHT): constants.VirtualButtonRight,
	uint8(sdl.CONTROLLER_BUTTON_A):          constants.VirtualButtonA,
	uint8(sdl.CONTROLLER_BUTTON_B):          constants.VirtualButtonB,
	uint8(sdl.CONTROLLER_BUTTON_X):          constants.VirtualButtonX,
	uint8(sdl.CONTROLLER_BUTTON_Y):          constants.VirtualButtonY,
}

// Raw joysticks without a controller mapping report their first four buttons.
var joystickMapping = map[uint8]constants.VirtualButton{
	0: constants.VirtualButtonA,
	1: constants.VirtualButtonB,
	2: constants.VirtualButtonX,
	3: constants.VirtualButtonY,
}

// InputPoller turns SDL events into one carousel.Input per frame.
type InputPoller struct {
	keyboard DirectionalInput
	pointer  DirectionalInput
	gamepad  DirectionalInput

	pointerX     float64
	pointerDown  bool
	pointerValid bool

	confirm      bool
	active       bool
	quit         bool
	attendantKey bool // F1 in dev mode stands in for the attendant button

	controllers map[sdl.JoystickID]*sdl.GameController
	joysticks   map[sdl.JoystickID]*sdl.Joystick
}

// NewInputPoller creates a poller whose held directions repeat after repeatDelay.
func NewInputPoller(repeatDelay time.Duration) *InputPoller {
	return &InputPoller{
		keyboard:    NewDirectionalInputWithDelay(repeatDelay),
		pointer:     NewDirectionalInputWithDelay(repeatDelay),
		gamepad:     NewDirectionalInputWithDelay(repeatDelay),
		pointerX:    0.5,
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		joysticks:   make(map[sdl.JoystickID]*sdl.Joystick),
	}
}

// OpenConnectedDevices opens every gamepad attached at startup.
func (p *InputPoller) OpenConnectedDevices() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		p.openDevice(i)
	}
}

func (p *InputPoller) openDevice(index int) {
	if sdl.IsGameController(index) {
		gc := sdl.GameControllerOpen(index)
		if gc == nil {
			GetLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
			return
		}
		id := gc.Joystick().InstanceID()
		if _, ok := p.controllers[id]; ok {
			gc.Close()
			return
		}
		p.controllers[id] = gc
		GetLogger().Debug("Opened game controller", "name", gc.Name(), "id", id)
		return
	}

	joy := sdl.JoystickOpen(index)
	if joy == nil {
		GetLogger().Warn("Failed to open joystick", "index", index, "error", sdl.GetError())
		return
	}
	id := joy.InstanceID()
	if _, ok := p.joysticks[id]; ok {
		joy.Close()
		return
	}
	p.joysticks[id] = joy
	GetLogger().Debug("Opened joystick", "name", joy.Name(), "id", id)
}

func (p *InputPoller) closeDevice(id sdl.JoystickID) {
	if gc, ok := p.controllers[id]; ok {
		gc.Close()
		delete(p.controllers, id)
		p.gamepad.Reset()
	}
	if joy, ok := p.joysticks[id]; ok {
		joy.Close()
		delete(p.joysticks, id)
		p.gamepad.Reset()
	}
}

// Close releases every opened device.
func (p *InputPoller) Close() {
	for id := range p.controllers {
		p.closeDevice(id)
	}
	for id := range p.joysticks {
		p.closeDevice(id)
	}
}

// Poll drains the SDL event queue and returns the frame's input.
// The second result reports a request to quit.
func (p *InputPoller) Poll(now time.Time) (carousel.Input, bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		p.HandleEvent(event, now)
	}
	return p.Frame(now), p.quit
}

// Frame returns the input accumulated since the previous frame and starts a new one.
func (p *InputPoller) Frame(now time.Time) carousel.Input {
	in := carousel.Input{
		Delta:   p.keyboard.Delta(now) + p.pointer.Delta(now) + p.gamepad.Delta(now),
		Confirm: p.confirm,
		Active:  p.active || p.keyboard.IsHeld() || p.pointer.IsHeld() || p.gamepad.IsHeld(),
		Hover:   carousel.RegionAt(p.pointerX),
	}
	p.confirm = false
	p.active = false
	return in
}

// TakeAttendantKey reports whether the dev-mode attendant key was released
// since the last call and clears it.
func (p *InputPoller) TakeAttendantKey() bool {
	pressed := p.attendantKey
	p.attendantKey = false
	return pressed
}

// PointerValid reports whether the pointer has been seen inside the window.
func (p *InputPoller) PointerValid() bool {
	return p.pointerValid
}

// HandleEvent folds a single SDL event into the current frame.
func (p *InputPoller) HandleEvent(event sdl.Event, now time.Time) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		p.quit = true

	case *sdl.KeyboardEvent:
		p.active = true
		if e.Repeat != 0 {
			return
		}
		pressed := e.Type == sdl.KEYDOWN
		if constants.IsDevMode() && !pressed {
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE:
				p.quit = true
				return
			case sdl.K_F1:
				p.attendantKey = true
				return
			}
		}
		if button, ok := keyboardMapping[e.Keysym.Sym]; ok {
			p.handleButton(&p.keyboard, button, pressed, now)
		}

	case *sdl.MouseMotionEvent:
		p.active = true
		p.movePointer(e.X, now)

	case *sdl.MouseButtonEvent:
		p.active = true
		if e.Button != sdl.BUTTON_LEFT {
			return
		}
		p.movePointer(e.X, now)
		p.handlePointerButton(e.Type == sdl.MOUSEBUTTONDOWN, now)

	case *sdl.MouseWheelEvent:
		p.active = true

	case *sdl.ControllerButtonEvent:
		p.active = true
		if button, ok := controllerMapping[e.Button]; ok {
			p.handleButton(&p.gamepad, button, e.Type == sdl.CONTROLLERBUTTONDOWN, now)
		}

	case *sdl.ControllerAxisEvent:
		if e.Axis != uint8(sdl.CONTROLLER_AXIS_LEFTX) {
			return
		}
		if e.Value < -axisDeadZone || e.Value > axisDeadZone {
			p.active = true
		}
		p.gamepad.SetHeld(constants.VirtualButtonLeft, e.Value < -axisDeadZone, now)
		p.gamepad.SetHeld(constants.VirtualButtonRight, e.Value > axisDeadZone, now)

	case *sdl.JoyButtonEvent:
		// Controllers also report raw joystick events.
		if _, ok := p.controllers[e.Which]; ok {
			return
		}
		p.active = true
		if button, ok := joystickMapping[e.Button]; ok {
			p.handleButton(&p.gamepad, button, e.Type == sdl.JOYBUTTONDOWN, now)
		}

	case *sdl.JoyHatEvent:
		if _, ok := p.controllers[e.Which]; ok {
			return
		}
		p.active = true
		p.gamepad.SetHeld(constants.VirtualButtonLeft, e.Value&uint8(sdl.HAT_LEFT) != 0, now)
		p.gamepad.SetHeld(constants.VirtualButtonRight, e.Value&uint8(sdl.HAT_RIGHT) != 0, now)

	case *sdl.ControllerDeviceEvent:
		if e.Type == sdl.CONTROLLERDEVICEREMOVED {
			p.closeDevice(e.Which)
		}

	case *sdl.JoyDeviceAddedEvent:
		p.openDevice(int(e.Which))

	case *sdl.JoyDeviceRemovedEvent:
		p.closeDevice(e.Which)

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_LEAVE {
			p.pointerValid = false
			p.pointer.Reset()
			p.pointerDown = false
		}
	}
}

func (p *InputPoller) handleButton(dir *DirectionalInput, button constants.VirtualButton, pressed bool, now time.Time) {
	if dir.SetHeld(button, pressed, now) {
		return
	}
	if !pressed && (button == constants.VirtualButtonConfirm || button.IsFaceButton()) {
		p.confirm = true
	}
}

func (p *InputPoller) movePointer(x int32, now time.Time) {
	p.pointerX = float64(x) / float64(constants.LogicalWidth)
	p.pointerValid = true
	if p.pointerDown {
		p.pressPointerRegion(now)
	}
}

func (p *InputPoller) handlePointerButton(pressed bool, now time.Time) {
	region := carousel.RegionAt(p.pointerX)

	if pressed {
		p.pointerDown = true
		p.pressPointerRegion(now)
		return
	}

	p.pointerDown = false
	p.pointer.SetHeld(constants.VirtualButtonLeft, false, now)
	p.pointer.SetHeld(constants.VirtualButtonRight, false, now)
	if region == carousel.RegionCenter {
		p.confirm = true
	}
}

// pressPointerRegion holds the direction under a pressed pointer. Dragging
// into another region releases the old one and presses the new one.
func (p *InputPoller) pressPointerRegion(now time.Time) {
	switch carousel.RegionAt(p.pointerX).Delta() {
	case -1:
		p.pointer.SetHeld(constants.VirtualButtonRight, false, now)
		p.pointer.SetHeld(constants.VirtualButtonLeft, true, now)
	case 1:
		p.pointer.SetHeld(constants.VirtualButtonLeft, false, now)
		p.pointer.SetHeld(constants.VirtualButtonRight, true, now)
	default:
		p.pointer.SetHeld(constants.VirtualButtonLeft, false, now)
		p.pointer.SetHeld(constants.VirtualButtonRight, false, now)
	}
}
