// Package renderer provides OpenGL rendering for the demo scene.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/TanukiSharp/OrbitalCamera/internal/engine/mesh"
	"github.com/TanukiSharp/OrbitalCamera/internal/engine/shader"
	"github.com/TanukiSharp/OrbitalCamera/internal/logger"
	"github.com/TanukiSharp/OrbitalCamera/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Mesh is geometry uploaded to the GPU.
type Mesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// Renderer owns the shader program and uploaded meshes.
type Renderer struct {
	config Config

	program     uint32
	uProjection int32
	uView       int32
	uModel      int32
	uLightDir   int32

	meshes []*Mesh
}

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;

uniform mat4 uProjection;
uniform mat4 uView;
uniform mat4 uModel;

out vec3 vNormal;
out vec3 vColor;

void main() {
	gl_Position = uProjection * uView * uModel * vec4(aPos, 1.0);
	vNormal = mat3(uModel) * aNormal;
	vColor = aColor;
}
`

const fragmentShaderSource = `
#version 410 core

in vec3 vNormal;
in vec3 vColor;

uniform vec3 uLightDir;

out vec4 FragColor;

void main() {
	float diffuse = max(dot(normalize(vNormal), -uLightDir), 0.0);
	vec3 lit = vColor * (0.3 + 0.7 * diffuse);
	FragColor = vec4(lit, 1.0);
}
`

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.program, err = shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.uProjection = shader.MustGetUniform(r.program, "uProjection")
	r.uView = shader.MustGetUniform(r.program, "uView")
	r.uModel = shader.MustGetUniform(r.program, "uModel")
	r.uLightDir = shader.MustGetUniform(r.program, "uLightDir")

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the current width/height ratio.
func (r *Renderer) Aspect() float64 {
	if r.config.Height == 0 {
		return 1
	}
	return float64(r.config.Width) / float64(r.config.Height)
}

// UploadMesh uploads interleaved vertex data (position, normal, color) and
// returns a handle usable with Draw. The renderer owns the GPU resources.
func (r *Renderer) UploadMesh(data []float32) (*Mesh, error) {
	if len(data) == 0 || len(data)%mesh.Stride != 0 {
		return nil, fmt.Errorf("invalid vertex data length %d", len(data))
	}

	m := &Mesh{count: int32(mesh.VertexCount(data))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	stride := int32(mesh.Stride * 4)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	// Color attribute (location = 2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.meshes = append(r.meshes, m)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", m.vao),
		zap.Int32("vertices", m.count),
	)
	return m, nil
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetCamera uploads the projection and view matrices plus the light
// direction for the frame.
func (r *Renderer) SetCamera(projection, view math.Mat4, lightDir math.Vec3) {
	gl.UseProgram(r.program)

	p := projection.Float32()
	v := view.Float32()
	gl.UniformMatrix4fv(r.uProjection, 1, false, &p[0])
	gl.UniformMatrix4fv(r.uView, 1, false, &v[0])

	l := lightDir.Normalize()
	gl.Uniform3f(r.uLightDir, float32(l.X), float32(l.Y), float32(l.Z))
}

// Draw renders a mesh with the given model matrix. SetCamera must have been
// called this frame.
func (r *Renderer) Draw(m *Mesh, model math.Mat4) {
	mm := model.Float32()
	gl.UniformMatrix4fv(r.uModel, 1, false, &mm[0])

	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}
