// Package input handles SDL2 input events and pointer tracking for the
// camera controller.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/TanukiSharp/OrbitalCamera/pkg/camera"
	"github.com/TanukiSharp/OrbitalCamera/pkg/math"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Input polls SDL events and maintains the pointer snapshot the camera
// controller consumes. While any tracked button is held the mouse is
// captured, so motion keeps arriving after the pointer leaves the window.
type Input struct {
	events  []Event
	pointer camera.PointerState
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and refreshes the pointer snapshot.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}

		case *sdl.MouseMotionEvent:
			i.pointer.Position = math.Vec2{X: float64(e.X), Y: float64(e.Y)}

		case *sdl.MouseButtonEvent:
			i.pointer.Position = math.Vec2{X: float64(e.X), Y: float64(e.Y)}
			i.setButton(e.Button, e.Type == sdl.MOUSEBUTTONDOWN)
			i.updateCapture()
		}
	}

	return false
}

// setButton maps an SDL button id to the tracked button flags.
func (i *Input) setButton(sdlButton uint8, pressed bool) {
	switch sdlButton {
	case sdl.BUTTON_LEFT:
		i.pointer.Primary = pressed
	case sdl.BUTTON_MIDDLE:
		i.pointer.Middle = pressed
	case sdl.BUTTON_RIGHT:
		i.pointer.Secondary = pressed
	}
}

// updateCapture keeps the mouse captured while any tracked button is held.
func (i *Input) updateCapture() {
	held := i.pointer.Primary || i.pointer.Middle || i.pointer.Secondary
	sdl.CaptureMouse(held)
}

// Pointer returns the current pointer snapshot for the camera controller.
func (i *Input) Pointer() *camera.PointerState {
	snapshot := i.pointer
	return &snapshot
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
