// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/gridlight/internal/engine/frame"
	"github.com/Faultbox/gridlight/internal/engine/renderer/shaders"
	"github.com/Faultbox/gridlight/internal/engine/shader"
	"github.com/Faultbox/gridlight/internal/logger"
)

const (
	uniformModel       = "uModel"
	uniformMVP         = "uMVP"
	uniformLightPos    = "uLightPosition"
	uniformLightRadius = "uLightRadiusSq"
	uniformAmbient     = "uAmbient"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	VSync  bool

	ClearColor [4]float32
}

// DefaultConfig returns the renderer defaults for the given viewport.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:      width,
		Height:     height,
		VSync:      true,
		ClearColor: [4]float32{0.1, 0.1, 0.15, 1.0},
	}
}

// Renderer owns the scene shader program and the uploaded meshes, and
// executes draw calls.
type Renderer struct {
	config  Config
	program *shader.Program
	meshes  []*GPUMesh

	// Current program state, to skip redundant binds within a frame.
	boundVAO uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
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
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	program, err := shader.NewProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader,
		uniformModel, uniformMVP, uniformLightPos, uniformLightRadius, uniformAmbient)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene program: %w", err)
	}
	r.program = program
	logger.Debug("scene program created", zap.Uint32("program", program.ID))

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, m := range r.meshes {
		m.release()
	}
	r.meshes = nil
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width == r.config.Width && height == r.config.Height {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
	r.boundVAO = 0
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	r.boundVAO = 0
}

// Submit executes one draw call. It implements frame.Submitter.
// Geometry that was not uploaded by this renderer is skipped.
func (r *Renderer) Submit(call *frame.DrawCall) {
	m, ok := call.Geometry.(*GPUMesh)
	if !ok || call.VertexCount == 0 {
		return
	}

	gl.UniformMatrix4fv(r.program.Uniform(uniformModel), 1, false, call.Model.Ptr())
	gl.UniformMatrix4fv(r.program.Uniform(uniformMVP), 1, false, call.MVP.Ptr())
	light, ambient := call.LightPosition.Array(), call.Ambient.Array()
	gl.Uniform3fv(r.program.Uniform(uniformLightPos), 1, &light[0])
	gl.Uniform1f(r.program.Uniform(uniformLightRadius), call.LightRadius*call.LightRadius)
	gl.Uniform3fv(r.program.Uniform(uniformAmbient), 1, &ambient[0])

	if r.boundVAO != m.vao {
		gl.BindVertexArray(m.vao)
		r.boundVAO = m.vao
	}
	gl.DrawArrays(primitive(call.Topology), 0, int32(call.VertexCount))
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
// Call it before SwapBuffers.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func primitive(t frame.Topology) uint32 {
	switch t {
	case frame.Triangles:
		return gl.TRIANGLES
	default:
		panic(fmt.Sprintf("renderer: unsupported topology %v", t))
	}
}
