package render_test

import (
	"testing"

	"voxelcull/internal/render"
	"voxelcull/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBehindViewer(t *testing.T) {
	forward := mgl32.Vec3{1, 0, 0}
	viewer := world.ChunkCoord{X: 0, Z: 0}

	cases := []struct {
		chunk world.ChunkCoord
		want  bool
	}{
		{world.ChunkCoord{X: 5, Z: 0}, false},  // straight ahead
		{world.ChunkCoord{X: -5, Z: 0}, true},  // straight behind
		{world.ChunkCoord{X: 0, Z: 5}, false},  // perpendicular, dot 0
		{world.ChunkCoord{X: -1, Z: 5}, false}, // slightly behind, above the threshold
		{world.ChunkCoord{X: -5, Z: 1}, true},
		{world.ChunkCoord{X: 0, Z: 0}, false}, // own chunk
	}
	for _, c := range cases {
		if got := render.BehindViewer(forward, viewer, c.chunk); got != c.want {
			t.Errorf("BehindViewer(%v) = %v, want %v", c.chunk, got, c.want)
		}
	}
}

func TestBehindViewerVerticalForward(t *testing.T) {
	// Looking straight down has no horizontal direction to test against.
	forward := mgl32.Vec3{0, -1, 0}
	viewer := world.ChunkCoord{X: 0, Z: 0}
	if render.BehindViewer(forward, viewer, world.ChunkCoord{X: -5, Z: 0}) {
		t.Errorf("vertical forward must not exclude anything")
	}
}

func TestFrustumIntersectsAABB(t *testing.T) {
	cam := render.NewFlyCamera(900, 600)
	cam.Position = mgl32.Vec3{0, 50, 0}
	cam.Yaw = 0 // facing +X

	f := render.NewFrustum(cam.ProjectionMatrix(), cam.ViewMatrix())

	ahead := f.IntersectsAABB(mgl32.Vec3{32, 40, -8}, mgl32.Vec3{48, 60, 8})
	if !ahead {
		t.Errorf("box directly ahead reported outside the frustum")
	}

	behind := f.IntersectsAABB(mgl32.Vec3{-48, 40, -8}, mgl32.Vec3{-32, 60, 8})
	if behind {
		t.Errorf("box directly behind reported inside the frustum")
	}

	// A box straddling the camera touches the frustum and must survive.
	straddle := f.IntersectsAABB(mgl32.Vec3{-8, 40, -8}, mgl32.Vec3{8, 60, 8})
	if !straddle {
		t.Errorf("box containing the camera reported outside the frustum")
	}
}
