package math

import (
	"math"
	"testing"
)

const quatEps = 1e-9

func vec3Near(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestQuatIdentityRotate(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := QuatIdentity().Rotate(v)
	if !vec3Near(got, v, quatEps) {
		t.Errorf("identity rotation changed vector: got %v, want %v", got, v)
	}
}

func TestQuatAxisAngleRotate(t *testing.T) {
	// Rotating X axis by 90 degrees around Y should give -Z.
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, math.Pi/2)
	got := q.Rotate(Vec3{1, 0, 0})
	want := Vec3{0, 0, -1}
	if !vec3Near(got, want, quatEps) {
		t.Errorf("Rotate() = %v, want %v", got, want)
	}
}

func TestQuatMulComposesRotations(t *testing.T) {
	// 45 + 45 around the same axis equals 90.
	half := QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi/4)
	full := QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi/2)

	got := half.Mul(half).Rotate(Vec3{1, 0, 0})
	want := full.Rotate(Vec3{1, 0, 0})
	if !vec3Near(got, want, quatEps) {
		t.Errorf("composed rotation = %v, want %v", got, want)
	}
}

func TestQuatMulOrder(t *testing.T) {
	// q.Mul(p) must apply p first.
	p := QuatFromAxisAngle(Vec3{0, 1, 0}, math.Pi/2)
	q := QuatFromAxisAngle(Vec3{1, 0, 0}, math.Pi/2)

	got := q.Mul(p).Rotate(Vec3{1, 0, 0})
	want := q.Rotate(p.Rotate(Vec3{1, 0, 0}))
	if !vec3Near(got, want, quatEps) {
		t.Errorf("q.Mul(p).Rotate = %v, want q.Rotate(p.Rotate()) = %v", got, want)
	}
}

func TestQuatRotatePreservesLength(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{1, 2, 3}.Normalize(), 1.234)
	v := Vec3{-4, 5, 0.5}
	got := q.Rotate(v).Length()
	want := v.Length()
	if math.Abs(got-want) > quatEps {
		t.Errorf("rotation changed length: got %v, want %v", got, want)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}.Normalize()
	l := math.Sqrt(q.Dot(q))
	if math.Abs(l-1) > quatEps {
		t.Errorf("Normalize() length = %v, want 1", l)
	}
}
