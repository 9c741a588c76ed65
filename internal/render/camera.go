package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcull/internal/world"
)

// FlyCamera is a free-flying camera implementing View. Yaw and pitch are in
// degrees; pitch is constrained so the view never flips over.
type FlyCamera struct {
	Position mgl32.Vec3
	Yaw      float64
	Pitch    float64

	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

// NewFlyCamera creates a camera for the given viewport size.
func NewFlyCamera(width, height int) *FlyCamera {
	return &FlyCamera{
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// ProjectionMatrix returns the perspective projection.
func (c *FlyCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ViewMatrix returns the world-to-camera transform.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	target := c.Position.Add(c.Forward())
	return mgl32.LookAtV(c.Position, target, mgl32.Vec3{0, 1, 0})
}

// Forward returns the normalized view direction.
func (c *FlyCamera) Forward() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(c.Yaw))
	p := mgl32.DegToRad(float32(c.Pitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(p)))
	fy := float32(math.Sin(float64(p)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(p)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

// Turn applies a mouse delta to yaw and pitch.
func (c *FlyCamera) Turn(dx, dy float64) {
	c.Yaw += dx
	c.Pitch += dy
	if c.Pitch > 89.0 {
		c.Pitch = 89.0
	}
	if c.Pitch < -89.0 {
		c.Pitch = -89.0
	}
}

// ChunkCoord returns the chunk tile the camera is over.
func (c *FlyCamera) ChunkCoord() world.ChunkCoord {
	return world.BlockCoord{
		X: int(math.Floor(float64(c.Position.X()))),
		Y: int(math.Floor(float64(c.Position.Y()))),
		Z: int(math.Floor(float64(c.Position.Z()))),
	}.Chunk()
}
