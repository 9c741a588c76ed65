package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Cube vertices with position and normal attributes, one face per six
// triangles, CCW front faces.
var cubeVertices = []float32{
	// NORTH
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1,

	// SOUTH
	0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	0.5, -0.5, -0.5, 0, 0, -1,

	// WEST
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,

	// EAST
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,

	// TOP
	-0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, 0.5, 0, 1, 0,

	// BOTTOM
	-0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,
}

// Unit quad for billboards, expanded along the camera axes in the shader.
var quadVertices = []float32{
	-0.5, -0.5,
	0.5, -0.5,
	0.5, 0.5,
	0.5, 0.5,
	-0.5, 0.5,
	-0.5, -0.5,
}

const cubeVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec3 aOffset;

uniform mat4 proj;
uniform mat4 view;

out vec3 vNormal;

void main() {
    gl_Position = proj * view * vec4(aPos + aOffset, 1.0);
    vNormal = aNormal;
}
`

const cubeFragSrc = `#version 410 core

uniform vec3 lightDir;

in vec3 vNormal;
out vec4 FragColor;

void main() {
    float diffuse = max(dot(normalize(vNormal), lightDir), 0.0);
    vec3 base = vec3(0.45, 0.65, 0.35);
    FragColor = vec4(base * (0.35 + 0.65 * diffuse), 1.0);
}
`

const billboardVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec3 aOffset;

uniform mat4 proj;
uniform mat4 view;
uniform vec3 camRight;
uniform vec3 camUp;

void main() {
    vec3 worldPos = aOffset + camRight * aPos.x + camUp * aPos.y;
    gl_Position = proj * view * vec4(worldPos, 1.0);
}
`

const billboardFragSrc = `#version 410 core

out vec4 FragColor;

void main() {
    FragColor = vec4(0.4, 0.5, 0.4, 1.0);
}
`

// GLGraph is an OpenGL draw-list scene graph: registered renderables are
// drawn while attached and skipped while detached. Meshes render as
// instanced unit cubes, billboards as camera-facing quads. All methods must
// run on the GL thread.
type GLGraph struct {
	cubeProgram uint32
	cubeVAO     uint32
	cubeVBO     uint32
	cubeInstVBO uint32

	bbProgram uint32
	bbVAO     uint32
	bbVBO     uint32
	bbInstVBO uint32

	next       Handle
	meshes     map[Handle]mgl32.Vec3
	billboards map[Handle]mgl32.Vec3
	attached   map[Handle]struct{}

	dirty     bool
	cubeInst  []float32
	bbInst    []float32
	cubeCount int32
	bbCount   int32
}

// NewGLGraph initializes GL state and compiles the shaders. gl.Init must
// have been called on the current context.
func NewGLGraph() (*GLGraph, error) {
	g := &GLGraph{
		next:       1,
		meshes:     make(map[Handle]mgl32.Vec3),
		billboards: make(map[Handle]mgl32.Vec3),
		attached:   make(map[Handle]struct{}),
	}

	var err error
	if g.cubeProgram, err = compileProgram(cubeVertSrc, cubeFragSrc); err != nil {
		return nil, err
	}
	if g.bbProgram, err = compileProgram(billboardVertSrc, billboardFragSrc); err != nil {
		return nil, err
	}

	g.setupCubeVAO()
	g.setupBillboardVAO()
	return g, nil
}

func (g *GLGraph) setupCubeVAO() {
	gl.GenVertexArrays(1, &g.cubeVAO)
	gl.BindVertexArray(g.cubeVAO)

	gl.GenBuffers(1, &g.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.GenBuffers(1, &g.cubeInstVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.cubeInstVBO)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, 3*4, 0)
	gl.VertexAttribDivisor(2, 1)
}

func (g *GLGraph) setupBillboardVAO() {
	gl.GenVertexArrays(1, &g.bbVAO)
	gl.BindVertexArray(g.bbVAO)

	gl.GenBuffers(1, &g.bbVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.bbVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)

	gl.GenBuffers(1, &g.bbInstVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.bbInstVBO)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 3*4, 0)
	gl.VertexAttribDivisor(1, 1)
}

// AddMesh registers a cube renderable at a world position. The handle
// starts detached.
func (g *GLGraph) AddMesh(pos mgl32.Vec3) Handle {
	h := g.next
	g.next++
	g.meshes[h] = pos
	return h
}

// AddBillboard registers a camera-facing quad at a world position.
func (g *GLGraph) AddBillboard(pos mgl32.Vec3) Handle {
	h := g.next
	g.next++
	g.billboards[h] = pos
	return h
}

// Attach adds the handle to the draw list.
func (g *GLGraph) Attach(h Handle) {
	if _, ok := g.attached[h]; ok {
		return
	}
	g.attached[h] = struct{}{}
	g.dirty = true
}

// Detach removes the handle from the draw list.
func (g *GLGraph) Detach(h Handle) {
	if _, ok := g.attached[h]; !ok {
		return
	}
	delete(g.attached, h)
	g.dirty = true
}

// AttachedCount returns the number of handles currently drawn.
func (g *GLGraph) AttachedCount() int {
	return len(g.attached)
}

// rebuildInstances repacks the instance buffers from the attached set.
func (g *GLGraph) rebuildInstances() {
	g.cubeInst = g.cubeInst[:0]
	g.bbInst = g.bbInst[:0]
	for h := range g.attached {
		if pos, ok := g.meshes[h]; ok {
			g.cubeInst = append(g.cubeInst, pos.X(), pos.Y(), pos.Z())
			continue
		}
		if pos, ok := g.billboards[h]; ok {
			g.bbInst = append(g.bbInst, pos.X(), pos.Y(), pos.Z())
		}
	}
	g.cubeCount = int32(len(g.cubeInst) / 3)
	g.bbCount = int32(len(g.bbInst) / 3)

	gl.BindBuffer(gl.ARRAY_BUFFER, g.cubeInstVBO)
	if len(g.cubeInst) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(g.cubeInst)*4, gl.Ptr(g.cubeInst), gl.DYNAMIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, g.bbInstVBO)
	if len(g.bbInst) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(g.bbInst)*4, gl.Ptr(g.bbInst), gl.DYNAMIC_DRAW)
	}
	g.dirty = false
}

// Draw renders everything currently attached.
func (g *GLGraph) Draw(view, projection mgl32.Mat4) {
	if g.dirty {
		g.rebuildInstances()
	}

	if g.cubeCount > 0 {
		gl.UseProgram(g.cubeProgram)
		gl.UniformMatrix4fv(gl.GetUniformLocation(g.cubeProgram, gl.Str("proj\x00")), 1, false, &projection[0])
		gl.UniformMatrix4fv(gl.GetUniformLocation(g.cubeProgram, gl.Str("view\x00")), 1, false, &view[0])
		light := mgl32.Vec3{0.3, 1.0, 0.3}.Normalize()
		gl.Uniform3f(gl.GetUniformLocation(g.cubeProgram, gl.Str("lightDir\x00")), light.X(), light.Y(), light.Z())

		gl.BindVertexArray(g.cubeVAO)
		gl.DrawArraysInstanced(gl.TRIANGLES, 0, int32(len(cubeVertices)/6), g.cubeCount)
	}

	if g.bbCount > 0 {
		// Camera right/up come from the view matrix rows, so the quads
		// always face the camera.
		right := mgl32.Vec3{view[0], view[4], view[8]}
		up := mgl32.Vec3{view[1], view[5], view[9]}

		gl.UseProgram(g.bbProgram)
		gl.UniformMatrix4fv(gl.GetUniformLocation(g.bbProgram, gl.Str("proj\x00")), 1, false, &projection[0])
		gl.UniformMatrix4fv(gl.GetUniformLocation(g.bbProgram, gl.Str("view\x00")), 1, false, &view[0])
		gl.Uniform3f(gl.GetUniformLocation(g.bbProgram, gl.Str("camRight\x00")), right.X(), right.Y(), right.Z())
		gl.Uniform3f(gl.GetUniformLocation(g.bbProgram, gl.Str("camUp\x00")), up.X(), up.Y(), up.Z())

		gl.BindVertexArray(g.bbVAO)
		gl.DrawArraysInstanced(gl.TRIANGLES, 0, 6, g.bbCount)
	}
}
