// Package camera implements an orbital ("arcball"-style) camera controller:
// given a position, a look-at target and a reference up direction it maintains
// an orthonormal view basis and exposes orbit, pan and zoom operations driven
// by pointer-drag deltas.
//
// The controller performs no I/O and owns no event loop; it consumes pointer
// samples supplied by the host and publishes a plain view record the host
// copies into its own renderer camera. It is not internally synchronized and
// must be confined to the goroutine that owns the host's event loop.
package camera

import "github.com/TanukiSharp/OrbitalCamera/pkg/math"

// Basis is the right-handed orthonormal view basis derived from a
// position/target/up triple, plus the unnormalized view length.
type Basis struct {
	// View is the unit vector pointing from position toward target.
	View math.Vec3
	// Right is normalize(View x up).
	Right math.Vec3
	// Up is normalize(Right x View). It is orthonormal to View and Right and
	// generally differs from the raw reference up it was derived from.
	Up math.Vec3
	// Length is the distance from position to target before normalization.
	Length float64
}

// ComputeBasis derives the view basis for the given position, target and
// reference up direction.
//
// up must not be parallel to the view direction: if it is, Right has zero
// length and the normalized outputs are undefined. This precondition is
// enforced upstream by the controller's pitch clamp, not checked here.
func ComputeBasis(position, target, up math.Vec3) Basis {
	raw := target.Sub(position)
	length := raw.Length()
	view := raw.Normalize()
	right := view.Cross(up).Normalize()

	return Basis{
		View:   view,
		Right:  right,
		Up:     right.Cross(view).Normalize(),
		Length: length,
	}
}
