package mesh

import (
	gomath "math"
	"testing"
)

func checkNormalsUnit(t *testing.T, data []float32) {
	t.Helper()
	for i := 0; i < len(data); i += Stride {
		nx := float64(data[i+3])
		ny := float64(data[i+4])
		nz := float64(data[i+5])
		l := gomath.Sqrt(nx*nx + ny*ny + nz*nz)
		if gomath.Abs(l-1) > 1e-5 {
			t.Fatalf("vertex %d normal length = %v, want 1", i/Stride, l)
		}
	}
}

func TestGenerateCube(t *testing.T) {
	data := GenerateCube(2.0, Color{1, 0, 0})

	// 6 faces x 2 triangles x 3 vertices
	if got := VertexCount(data); got != 36 {
		t.Errorf("cube vertex count = %d, want 36", got)
	}
	checkNormalsUnit(t, data)

	// All positions on the surface of the half-size box.
	for i := 0; i < len(data); i += Stride {
		for axis := 0; axis < 3; axis++ {
			if v := data[i+axis]; v < -1 || v > 1 {
				t.Fatalf("vertex %d coordinate %v outside [-1, 1]", i/Stride, v)
			}
		}
	}
}

func TestGeneratePyramid(t *testing.T) {
	data := GeneratePyramid(2.0, 3.0, Color{0, 1, 0})

	// 4 sides + 2 base triangles
	if got := VertexCount(data); got != 18 {
		t.Errorf("pyramid vertex count = %d, want 18", got)
	}
	checkNormalsUnit(t, data)

	// Height spans [0, 3].
	for i := 0; i < len(data); i += Stride {
		if y := data[i+1]; y < 0 || y > 3 {
			t.Fatalf("vertex %d height %v outside [0, 3]", i/Stride, y)
		}
	}
}

func TestGenerateGround(t *testing.T) {
	data := GenerateGround(10, 4, Color{0.5, 0.5, 0.5}, Color{0.3, 0.3, 0.3})

	// 4x4 tiles x 6 vertices
	if got := VertexCount(data); got != 96 {
		t.Errorf("ground vertex count = %d, want 96", got)
	}
	checkNormalsUnit(t, data)

	for i := 0; i < len(data); i += Stride {
		if data[i+1] != 0 {
			t.Fatalf("ground vertex %d not on y=0 plane: %v", i/Stride, data[i+1])
		}
		if data[i] < -10 || data[i] > 10 || data[i+2] < -10 || data[i+2] > 10 {
			t.Fatalf("ground vertex %d outside extent", i/Stride)
		}
		// Normals face straight up.
		if data[i+4] != 1 {
			t.Fatalf("ground vertex %d normal not +Y", i/Stride)
		}
	}
}
