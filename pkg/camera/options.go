package camera

// Options configures controller sensitivity and clamping. Options are
// immutable once the controller is constructed.
type Options struct {
	// MinimumDirectionLength is the floor on the camera-to-target distance,
	// enforced by Zoom. Direct Position/Target setters and Move do not
	// re-enforce it.
	MinimumDirectionLength float64

	// MoveRatio is the pan sensitivity applied to pointer deltas.
	MoveRatio float64

	// RotationRatio is the orbit sensitivity in radians per pointer pixel.
	RotationRatio float64

	// RotationEpsilon is the angular safety margin, in radians, kept between
	// the view vector and the reference up direction to avoid the polar
	// singularity.
	RotationEpsilon float64

	// ZoomRatio is the dolly sensitivity applied to vertical pointer deltas.
	ZoomRatio float64

	// MinimumZoom and MaximumZoom clamp the per-update multiplicative zoom
	// factor derived from a pointer delta.
	MinimumZoom float64
	MaximumZoom float64
}

// DefaultOptions returns the default controller settings.
func DefaultOptions() Options {
	return Options{
		MinimumDirectionLength: 0.001,
		MoveRatio:              0.0025,
		RotationRatio:          0.01,
		RotationEpsilon:        0.001,
		ZoomRatio:              0.005,
		MinimumZoom:            0.9,
		MaximumZoom:            1.2,
	}
}
