// Package mesh generates demo scene geometry as interleaved vertex data.
// Vertex format: position (3) + normal (3) + color (3), non-indexed triangles.
package mesh

import "github.com/TanukiSharp/OrbitalCamera/pkg/math"

// Stride is the number of floats per vertex.
const Stride = 9

// Color is an RGB vertex color.
type Color [3]float32

// builder accumulates triangles with computed face normals.
type builder struct {
	data []float32
}

// triangle appends one triangle with a flat face normal derived from the
// winding (counter-clockwise seen from outside).
func (b *builder) triangle(v0, v1, v2 math.Vec3, c Color) {
	normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	for _, v := range []math.Vec3{v0, v1, v2} {
		b.data = append(b.data,
			float32(v.X), float32(v.Y), float32(v.Z),
			float32(normal.X), float32(normal.Y), float32(normal.Z),
			c[0], c[1], c[2],
		)
	}
}

// quad appends two triangles for the corners c0..c3 given in
// counter-clockwise order.
func (b *builder) quad(v0, v1, v2, v3 math.Vec3, c Color) {
	b.triangle(v0, v1, v2, c)
	b.triangle(v0, v2, v3, c)
}

// GenerateCube returns vertices for an axis-aligned cube centered at the
// origin with the given edge size.
func GenerateCube(size float64, c Color) []float32 {
	h := size / 2
	var b builder

	// +Z
	b.quad(math.Vec3{X: -h, Y: -h, Z: h}, math.Vec3{X: h, Y: -h, Z: h},
		math.Vec3{X: h, Y: h, Z: h}, math.Vec3{X: -h, Y: h, Z: h}, c)
	// -Z
	b.quad(math.Vec3{X: h, Y: -h, Z: -h}, math.Vec3{X: -h, Y: -h, Z: -h},
		math.Vec3{X: -h, Y: h, Z: -h}, math.Vec3{X: h, Y: h, Z: -h}, c)
	// +X
	b.quad(math.Vec3{X: h, Y: -h, Z: h}, math.Vec3{X: h, Y: -h, Z: -h},
		math.Vec3{X: h, Y: h, Z: -h}, math.Vec3{X: h, Y: h, Z: h}, c)
	// -X
	b.quad(math.Vec3{X: -h, Y: -h, Z: -h}, math.Vec3{X: -h, Y: -h, Z: h},
		math.Vec3{X: -h, Y: h, Z: h}, math.Vec3{X: -h, Y: h, Z: -h}, c)
	// +Y
	b.quad(math.Vec3{X: -h, Y: h, Z: h}, math.Vec3{X: h, Y: h, Z: h},
		math.Vec3{X: h, Y: h, Z: -h}, math.Vec3{X: -h, Y: h, Z: -h}, c)
	// -Y
	b.quad(math.Vec3{X: -h, Y: -h, Z: -h}, math.Vec3{X: h, Y: -h, Z: -h},
		math.Vec3{X: h, Y: -h, Z: h}, math.Vec3{X: -h, Y: -h, Z: h}, c)

	return b.data
}

// GeneratePyramid returns vertices for a square-based pyramid. The base sits
// on the XZ plane at y=0 with the given edge size, the apex at y=height.
func GeneratePyramid(size, height float64, c Color) []float32 {
	h := size / 2
	apex := math.Vec3{Y: height}

	b0 := math.Vec3{X: -h, Z: -h}
	b1 := math.Vec3{X: h, Z: -h}
	b2 := math.Vec3{X: h, Z: h}
	b3 := math.Vec3{X: -h, Z: h}

	var b builder
	b.triangle(b3, b2, apex, c) // +Z side
	b.triangle(b2, b1, apex, c) // +X side
	b.triangle(b1, b0, apex, c) // -Z side
	b.triangle(b0, b3, apex, c) // -X side
	b.quad(b0, b1, b2, b3, c)   // base, facing down

	return b.data
}

// GenerateGround returns vertices for a checkered ground plane on the XZ
// plane at y=0, spanning [-halfExtent, halfExtent] with divisions tiles per
// side, alternating the two colors.
func GenerateGround(halfExtent float64, divisions int, colorA, colorB Color) []float32 {
	var b builder
	step := 2 * halfExtent / float64(divisions)

	for i := 0; i < divisions; i++ {
		for j := 0; j < divisions; j++ {
			x0 := -halfExtent + float64(i)*step
			z0 := -halfExtent + float64(j)*step
			x1 := x0 + step
			z1 := z0 + step

			c := colorA
			if (i+j)%2 == 1 {
				c = colorB
			}

			b.quad(
				math.Vec3{X: x0, Z: z0},
				math.Vec3{X: x0, Z: z1},
				math.Vec3{X: x1, Z: z1},
				math.Vec3{X: x1, Z: z0},
				c,
			)
		}
	}

	return b.data
}

// VertexCount returns the number of vertices in interleaved data.
func VertexCount(data []float32) int {
	return len(data) / Stride
}
