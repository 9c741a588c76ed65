package main

import (
	"log"
	"time"

	"voxelcull/internal/metrics"
	"voxelcull/internal/profiling"
	"voxelcull/internal/render"
	"voxelcull/internal/scene"
	"voxelcull/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	moveSpeed        = 24.0 // world units per second
	mouseSensitivity = 0.1
	slowFrame        = 16 * time.Millisecond
)

// loop owns the per-frame state of the demo.
type loop struct {
	window    *glfw.Window
	camera    *render.FlyCamera
	manager   *render.Manager
	graph     *scene.GLGraph
	blocks    *world.BlockStore
	collector *metrics.Collector

	lastTime   time.Time
	lastMouseX float64
	lastMouseY float64
	firstMouse bool

	profileNames []string
	profileIdx   int
}

func newLoop(window *glfw.Window, camera *render.FlyCamera, manager *render.Manager, graph *scene.GLGraph, blocks *world.BlockStore, collector *metrics.Collector) *loop {
	l := &loop{
		window:       window,
		camera:       camera,
		manager:      manager,
		graph:        graph,
		blocks:       blocks,
		collector:    collector,
		lastTime:     time.Now(),
		firstMouse:   true,
		profileNames: []string{"low", "balanced", "high", "ultra"},
	}
	window.SetCursorPosCallback(l.onMouseMove)
	window.SetKeyCallback(l.onKey)
	return l
}

func (l *loop) run() {
	for !l.window.ShouldClose() {
		l.tick()
	}
}

func (l *loop) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(l.lastTime).Seconds()
	l.lastTime = start

	glfw.PollEvents()
	l.handleMovement(dt)

	coord := l.camera.ChunkCoord()
	l.manager.Update(coord.X, coord.Z, l.camera.Position.Y(), l.blocks)
	l.manager.SyncAttachments(l.blocks)
	l.collector.Observe(l.manager.Stats())

	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	l.graph.Draw(l.camera.ViewMatrix(), l.camera.ProjectionMatrix())

	l.window.SwapBuffers()

	if d := time.Since(start); d > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}
}

func (l *loop) handleMovement(dt float64) {
	forward := l.camera.Forward()
	flat := mgl32.Vec3{forward.X(), 0, forward.Z()}
	if flat.Len() > 0 {
		flat = flat.Normalize()
	}
	right := flat.Cross(mgl32.Vec3{0, 1, 0})

	step := float32(moveSpeed * dt)
	move := mgl32.Vec3{}
	if l.window.GetKey(glfw.KeyW) == glfw.Press {
		move = move.Add(flat)
	}
	if l.window.GetKey(glfw.KeyS) == glfw.Press {
		move = move.Sub(flat)
	}
	if l.window.GetKey(glfw.KeyD) == glfw.Press {
		move = move.Add(right)
	}
	if l.window.GetKey(glfw.KeyA) == glfw.Press {
		move = move.Sub(right)
	}
	if l.window.GetKey(glfw.KeySpace) == glfw.Press {
		move = move.Add(mgl32.Vec3{0, 1, 0})
	}
	if l.window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		move = move.Sub(mgl32.Vec3{0, 1, 0})
	}
	if move.Len() > 0 {
		l.camera.Position = l.camera.Position.Add(move.Normalize().Mul(step))
	}
}

func (l *loop) onMouseMove(_ *glfw.Window, xpos, ypos float64) {
	if l.firstMouse {
		l.lastMouseX = xpos
		l.lastMouseY = ypos
		l.firstMouse = false
		return
	}
	dx := (xpos - l.lastMouseX) * mouseSensitivity
	dy := (l.lastMouseY - ypos) * mouseSensitivity
	l.lastMouseX = xpos
	l.lastMouseY = ypos
	l.camera.Turn(dx, dy)
}

func (l *loop) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		l.window.SetShouldClose(true)
	case glfw.KeyF:
		l.profileIdx = (l.profileIdx + 1) % len(l.profileNames)
		name := l.profileNames[l.profileIdx]
		if l.manager.ApplyProfile(name) {
			log.Printf("profile: %s", name)
		}
	case glfw.KeyV:
		log.Printf("adaptive visibility: %v", l.manager.ToggleAdaptiveVisibility())
	case glfw.KeyG:
		next := (l.manager.GPUTier() + 1) % 3
		l.manager.SetGPUTier(next)
		log.Printf("gpu tier: %s", next)
	case glfw.KeyB:
		log.Printf("bounds: %s, attached: %d, stats: %+v",
			l.manager.VerticalBounds(), l.graph.AttachedCount(), l.manager.Stats())
	case glfw.KeyC:
		// Precise visibility of the viewer's own chunk, for eyeballing
		// the frustum test against the directional heuristic.
		coord := l.camera.ChunkCoord()
		log.Printf("chunk %v visible=%v", coord, l.manager.IsVisible(coord))
	}
}
