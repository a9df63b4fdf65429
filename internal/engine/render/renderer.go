// Package render draws the animated tree with instanced OpenGL calls:
// one draw per level, consuming the flat matrix buffers produced by the
// tree package.
package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/canopy/internal/engine/mesh"
	"github.com/Faultbox/canopy/internal/engine/shader"
	"github.com/Faultbox/canopy/internal/engine/tree"
	"github.com/Faultbox/canopy/internal/logger"
	"github.com/Faultbox/canopy/pkg/math"
)

// matrixBytes is the per-instance stride: three vec4 rows.
const matrixBytes = 12 * 4

// Config holds renderer configuration. MaxInstances must cover the
// largest level that will be drawn.
type Config struct {
	Width  int
	Height int

	BranchColorA [3]float32
	BranchColorB [3]float32
	LeafColor    [3]float32

	MaxInstances int
}

// meshBuffers holds the GPU objects for one instanced mesh.
type meshBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Renderer owns the instancing pipeline: one shader, one shared dynamic
// instance buffer, and a VAO per mesh wired to it.
type Renderer struct {
	cfg Config

	program     uint32
	locViewProj int32
	locColor    int32
	locSeed     int32
	locLightDir int32

	branch meshBuffers
	leaf   meshBuffers

	instanceVBO uint32
}

// New creates the renderer. Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	if cfg.MaxInstances <= 0 {
		return nil, fmt.Errorf("render: max instances %d is not positive", cfg.MaxInstances)
	}

	r := &Renderer{cfg: cfg}

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
	gl.ClearColor(0.07, 0.09, 0.12, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	program, err := shader.CompileProgram(treeVertexShader, treeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("tree shader: %w", err)
	}
	r.program = program
	r.locViewProj = shader.GetUniform(program, "uViewProj")
	r.locColor = shader.GetUniform(program, "uColor")
	r.locSeed = shader.GetUniform(program, "uSeed")
	r.locLightDir = shader.GetUniform(program, "uLightDir")

	// Shared instance buffer, sized once for the deepest level.
	gl.GenBuffers(1, &r.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, cfg.MaxInstances*matrixBytes, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.branch = r.uploadMesh(mesh.Branch())
	r.leaf = r.uploadMesh(mesh.Leaf())

	logger.Debug("renderer created",
		zap.Int("max_instances", cfg.MaxInstances),
		zap.Uint32("program", program),
	)
	return r, nil
}

// uploadMesh creates a VAO for the mesh with the shared instance buffer
// bound as three per-instance vec4 rows (locations 2..4).
func (r *Renderer) uploadMesh(m *mesh.Mesh) meshBuffers {
	var mb meshBuffers

	gl.GenVertexArrays(1, &mb.vao)
	gl.BindVertexArray(mb.vao)

	gl.GenBuffers(1, &mb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mb.vbo)
	vertexSize := int(unsafe.Sizeof(mesh.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// Per-instance transform rows from the shared buffer.
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	for row := uint32(0); row < 3; row++ {
		loc := 2 + row
		gl.VertexAttribPointerWithOffset(loc, 4, gl.FLOAT, false, matrixBytes, uintptr(row*16))
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribDivisor(loc, 1)
	}

	gl.GenBuffers(1, &mb.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mb.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	mb.indexCount = int32(len(m.Indices))
	gl.BindVertexArray(0)
	return mb
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.cfg.Width = width
	r.cfg.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders every level of the frame's tree data with one instanced
// call per level.
func (r *Renderer) Draw(data *tree.RenderData, viewProj math.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform3f(r.locLightDir, 0.35, 0.9, 0.25)

	for _, level := range data.Levels {
		if len(level.Matrices) == 0 {
			continue
		}
		if len(level.Matrices) > r.cfg.MaxInstances {
			panic(fmt.Sprintf("render: level with %d instances exceeds buffer capacity %d",
				len(level.Matrices), r.cfg.MaxInstances))
		}

		gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(level.Matrices)*matrixBytes,
			unsafe.Pointer(&level.Matrices[0]))
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)

		color := LevelColor(r.cfg, level)
		gl.Uniform3f(r.locColor, color[0], color[1], color[2])
		gl.Uniform4f(r.locSeed, level.Seed[0], level.Seed[1], level.Seed[2], level.Seed[3])

		mb := r.branch
		if level.Leaf {
			mb = r.leaf
		}
		gl.BindVertexArray(mb.vao)
		gl.DrawElementsInstanced(gl.TRIANGLES, mb.indexCount, gl.UNSIGNED_INT, nil, int32(len(level.Matrices)))
	}

	gl.BindVertexArray(0)
}

// LevelColor resolves a level's base color: leaves use the leaf color,
// interior levels interpolate the branch gradient.
func LevelColor(cfg Config, level tree.LevelData) [3]float32 {
	if level.Leaf {
		return cfg.LeafColor
	}
	t := level.Gradient
	return [3]float32{
		cfg.BranchColorA[0] + t*(cfg.BranchColorB[0]-cfg.BranchColorA[0]),
		cfg.BranchColorA[1] + t*(cfg.BranchColorB[1]-cfg.BranchColorA[1]),
		cfg.BranchColorA[2] + t*(cfg.BranchColorB[2]-cfg.BranchColorA[2]),
	}
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	logger.Info("closing renderer")
	for _, mb := range []meshBuffers{r.branch, r.leaf} {
		if mb.vao != 0 {
			gl.DeleteVertexArrays(1, &mb.vao)
		}
		if mb.vbo != 0 {
			gl.DeleteBuffers(1, &mb.vbo)
		}
		if mb.ebo != 0 {
			gl.DeleteBuffers(1, &mb.ebo)
		}
	}
	if r.instanceVBO != 0 {
		gl.DeleteBuffers(1, &r.instanceVBO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
