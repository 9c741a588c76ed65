package world

const (
	// ChunkSize is the horizontal edge length of a chunk tile in blocks.
	ChunkSize = 16

	// MaxY is the world build height. Nothing renders above it.
	MaxY = 256
)

// ChunkCoord identifies a horizontal chunk tile of the world.
type ChunkCoord struct {
	X, Z int
}

// Dist returns the Chebyshev distance between two chunk coordinates.
func (c ChunkCoord) Dist(o ChunkCoord) int {
	dx := abs(c.X - o.X)
	dz := abs(c.Z - o.Z)
	if dx > dz {
		return dx
	}
	return dz
}

// BlockCoord identifies a single block cell by integer world coordinates.
type BlockCoord struct {
	X, Y, Z int
}

// Chunk returns the chunk tile containing the block.
func (b BlockCoord) Chunk() ChunkCoord {
	return ChunkCoord{X: floorDiv(b.X, ChunkSize), Z: floorDiv(b.Z, ChunkSize)}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
