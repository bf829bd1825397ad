package camera

import "github.com/TanukiSharp/OrbitalCamera/pkg/math"

// Button identifies one of the three tracked pointer buttons.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// String returns the button name for logging.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonMiddle:
		return "middle"
	case ButtonSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// trackOrder fixes the order in which buttons are examined for
// released-to-pressed transitions before deltas are read.
var trackOrder = [3]Button{ButtonPrimary, ButtonMiddle, ButtonSecondary}

// PointerState is one pointer sample supplied by the host: which buttons are
// currently held and where the pointer is, in a 2D coordinate space that is
// consistent across consecutive samples (e.g. client coordinates of a fixed
// viewport). The host is responsible for pointer capture so that samples keep
// arriving while a button is held outside the viewport bounds.
type PointerState struct {
	Position math.Vec2

	Primary   bool
	Middle    bool
	Secondary bool
}

// IsPressed reports whether the given button is held in this sample.
func (s *PointerState) IsPressed(b Button) bool {
	switch b {
	case ButtonPrimary:
		return s.Primary
	case ButtonMiddle:
		return s.Middle
	case ButtonSecondary:
		return s.Secondary
	default:
		return false
	}
}

// tracker remembers per-button press state between updates plus a single
// shared previous-position sample used to compute drag deltas. The previous
// position is one slot shared by all three buttons, not per-button.
type tracker struct {
	primary   bool
	middle    bool
	secondary bool

	previous math.Vec2
}

func (t *tracker) isPressed(b Button) bool {
	switch b {
	case ButtonPrimary:
		return t.primary
	case ButtonMiddle:
		return t.middle
	case ButtonSecondary:
		return t.secondary
	default:
		return false
	}
}

func (t *tracker) setPressed(b Button, pressed bool) {
	switch b {
	case ButtonPrimary:
		t.primary = pressed
	case ButtonMiddle:
		t.middle = pressed
	case ButtonSecondary:
		t.secondary = pressed
	}
}
