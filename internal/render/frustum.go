package render

import (
	"voxelcull/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Frustum is the camera's visible volume for one frame, kept as the
// combined clip matrix (projection * view).
type Frustum struct {
	clip mgl32.Mat4
}

// NewFrustum builds the frame's frustum from the camera transforms.
func NewFrustum(projection, view mgl32.Mat4) Frustum {
	return Frustum{clip: projection.Mul4(view)}
}

// IntersectsAABB tests the box against the frustum with clip-space
// half-space tests: the box is rejected only when all eight corners fall
// outside the same plane, which is conservative but never drops geometry
// that touches the frustum.
func (f Frustum) IntersectsAABB(min, max mgl32.Vec3) bool {
	corners := [8]mgl32.Vec4{
		{min.X(), min.Y(), min.Z(), 1},
		{max.X(), min.Y(), min.Z(), 1},
		{min.X(), max.Y(), min.Z(), 1},
		{max.X(), max.Y(), min.Z(), 1},
		{min.X(), min.Y(), max.Z(), 1},
		{max.X(), min.Y(), max.Z(), 1},
		{min.X(), max.Y(), max.Z(), 1},
		{max.X(), max.Y(), max.Z(), 1},
	}

	var v [8]mgl32.Vec4
	for i := range corners {
		v[i] = f.clip.Mul4x1(corners[i])
	}

	// The six planes in clip space: +-x, +-y, +-z against w.
	planes := [6]struct {
		axis int
		sign float32
	}{
		{0, 1}, {0, -1},
		{1, 1}, {1, -1},
		{2, 1}, {2, -1},
	}
	for _, p := range planes {
		outside := 0
		for i := range v {
			if p.sign*v[i][p.axis]-v[i][3] > 0 {
				outside++
			}
		}
		if outside == len(v) {
			return false
		}
	}
	return true
}

// behindDot is the directional-exclusion threshold: chunks whose horizontal
// direction from the viewer dots below it against the forward vector are
// treated as behind the camera.
const behindDot = -0.3

// BehindViewer reports whether a chunk lies substantially behind the
// viewer's horizontal forward direction. The viewer's own chunk is never
// behind. This is the cheap approximation used on the hot path; it is not a
// substitute for the precise frustum test.
func BehindViewer(forward mgl32.Vec3, viewer, chunk world.ChunkCoord) bool {
	dx := float32(chunk.X - viewer.X)
	dz := float32(chunk.Z - viewer.Z)
	if dx == 0 && dz == 0 {
		return false
	}

	flat := mgl32.Vec3{forward.X(), 0, forward.Z()}
	if flat.Len() == 0 {
		// Looking straight up or down: nothing is behind.
		return false
	}

	dir := mgl32.Vec3{dx, 0, dz}.Normalize()
	return dir.Dot(flat.Normalize()) < behindDot
}
