package camera

import (
	gomath "math"

	"github.com/TanukiSharp/OrbitalCamera/pkg/math"
)

// WorldUp is the default reference up direction (world Y axis).
var WorldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// View is the record published to the host after every mutation. The host
// copies these three fields into its own renderer camera; the controller
// never touches projection or clipping settings.
type View struct {
	Position      math.Vec3
	LookDirection math.Vec3
	UpDirection   math.Vec3
}

// state is the full camera state. Operations replace it atomically with a
// freshly derived value instead of mutating fields in place, so the basis is
// always consistent with position/target/up.
type state struct {
	position math.Vec3
	target   math.Vec3
	up       math.Vec3
	basis    Basis
}

func newState(position, target, up math.Vec3) state {
	return state{
		position: position,
		target:   target,
		up:       up,
		basis:    ComputeBasis(position, target, up),
	}
}

// Controller owns the camera state, configuration and pointer tracking.
//
// Known boundary condition: the Position/Target setters and Move do not
// enforce MinimumDirectionLength, so driving target onto position through
// them produces a zero-length view vector and a NaN basis. Only Zoom clamps
// the distance. Callers must avoid collapsing the distance through the
// setters.
type Controller struct {
	opts  Options
	cur   state
	track tracker
}

// New creates a controller looking from position at target, with the world Y
// axis as up and default options.
func New(position, target math.Vec3) *Controller {
	return NewWithOptions(position, target, WorldUp, DefaultOptions())
}

// NewWithOptions creates a controller with an explicit reference up direction
// and options.
func NewWithOptions(position, target, up math.Vec3, opts Options) *Controller {
	return &Controller{
		opts: opts,
		cur:  newState(position, target, up),
	}
}

// Position returns the camera position in world space.
func (c *Controller) Position() math.Vec3 { return c.cur.position }

// SetPosition moves the camera and re-derives the basis.
func (c *Controller) SetPosition(position math.Vec3) {
	c.cur = newState(position, c.cur.target, c.cur.up)
}

// Target returns the point the camera looks at.
func (c *Controller) Target() math.Vec3 { return c.cur.target }

// SetTarget changes the look-at point and re-derives the basis.
func (c *Controller) SetTarget(target math.Vec3) {
	c.cur = newState(c.cur.position, target, c.cur.up)
}

// Up returns the raw reference up direction, not the derived orthonormal up.
func (c *Controller) Up() math.Vec3 { return c.cur.up }

// SetUp changes the reference up direction and re-derives the basis.
func (c *Controller) SetUp(up math.Vec3) {
	c.cur = newState(c.cur.position, c.cur.target, up)
}

// Options returns the controller configuration.
func (c *Controller) Options() Options { return c.opts }

// Basis returns the current orthonormal view basis.
func (c *Controller) Basis() Basis { return c.cur.basis }

// View returns the current publish record for the host's renderer camera.
// UpDirection is the raw reference up, not the orthonormalized basis up.
func (c *Controller) View() View {
	return View{
		Position:      c.cur.position,
		LookDirection: c.cur.basis.View,
		UpDirection:   c.cur.up,
	}
}

// Move translates position and target together by direction. The view vector
// and distance are unchanged. No clamping is applied.
func (c *Controller) Move(direction math.Vec3) {
	c.cur = newState(
		c.cur.position.Add(direction),
		c.cur.target.Add(direction),
		c.cur.up,
	)
}

// Rotate orbits the camera around the target: yaw radians around the
// reference up direction, then pitch radians around the pre-rotation right
// vector. The target is the pivot and the distance is preserved.
//
// Yaw is unclamped. Pitch is clamped so the angle between the view vector
// and the reference up never comes within RotationEpsilon of 0 or pi, which
// would make the right vector undefined. The polar angle is measured against
// the raw up field: a non-unit or skewed up shifts the effective epsilon
// margin accordingly.
func (c *Controller) Rotate(yaw, pitch float64) {
	s := c.cur

	f := gomath.Acos(s.basis.View.Dot(s.up))
	if pitch > 0 {
		pitch = gomath.Min(pitch, f-c.opts.RotationEpsilon)
	} else {
		pitch = gomath.Max(pitch, f-gomath.Pi+c.opts.RotationEpsilon)
	}

	// Yaw first, then pitch about the pre-rotation right vector.
	rotation := math.QuatFromAxisAngle(s.basis.Right, pitch).
		Mul(math.QuatFromAxisAngle(s.up, yaw))

	view := rotation.Rotate(s.basis.View)
	position := s.target.Sub(view.Scale(s.basis.Length))

	c.cur = newState(position, s.target, s.up)
}

// Zoom dollies the camera along the view axis by a unitless factor relative
// to the current distance. The target is fixed; only the position moves. The
// resulting distance never goes below MinimumDirectionLength.
func (c *Controller) Zoom(factor float64) {
	s := c.cur

	length := gomath.Max(c.opts.MinimumDirectionLength, s.basis.Length*factor)
	position := s.target.Sub(s.basis.View.Scale(length))

	c.cur = newState(position, s.target, s.up)
}

// Update maps one pointer sample to orbit/pan/zoom operations. A nil sample
// is a no-op.
//
// When a button transitions from released to pressed the shared previous
// position is reset to the current position before deltas are read, so the
// first sample after a press establishes a baseline instead of producing a
// jump. All pressed buttons act in one update, in the fixed order
// rotate, pan, zoom, each reading the basis as left by the previous stage.
func (c *Controller) Update(pointer *PointerState) {
	if pointer == nil {
		return
	}

	pos := pointer.Position
	for _, b := range trackOrder {
		pressed := pointer.IsPressed(b)
		if pressed && !c.track.isPressed(b) {
			c.track.previous = pos
		}
		c.track.setPressed(b, pressed)
	}

	delta := pos.Sub(c.track.previous)

	if pointer.Primary {
		c.Rotate(-c.opts.RotationRatio*delta.X, -c.opts.RotationRatio*delta.Y)
	}

	if pointer.Middle {
		basis := c.cur.basis
		pan := basis.Right.Scale(-delta.X).
			Add(basis.Up.Scale(delta.Y)).
			Scale(basis.Length * c.opts.MoveRatio)
		c.Move(pan)
	}

	if pointer.Secondary {
		factor := 1 + delta.Y*c.opts.ZoomRatio
		if factor < c.opts.MinimumZoom {
			factor = c.opts.MinimumZoom
		}
		if factor > c.opts.MaximumZoom {
			factor = c.opts.MaximumZoom
		}
		c.Zoom(factor)
	}

	c.track.previous = pos
}
