package world

import (
	"runtime"

	"github.com/aquilax/go-perlin"
	"golang.org/x/sync/errgroup"
)

// Terrain generation parameters. The generator only exists to give the
// culling system and its tests a world with real ground levels, cliffs and
// water; it is not a gameplay feature.
const (
	seaLevel      = 24
	baseHeight    = 28
	heightScale   = 22.0
	noiseFreq     = 1.0 / 64.0
	snowLine      = 44
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// TerrainGenerator produces deterministic perlin hill terrain.
type TerrainGenerator struct {
	noise *perlin.Perlin
}

// NewTerrainGenerator creates a generator for the given seed.
func NewTerrainGenerator(seed int64) *TerrainGenerator {
	return &TerrainGenerator{
		noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
	}
}

// HeightAt returns the terrain surface height at a world column.
func (g *TerrainGenerator) HeightAt(x, z int) int {
	n := g.noise.Noise2D(float64(x)*noiseFreq, float64(z)*noiseFreq)
	h := baseHeight + int(n*heightScale)
	if h < 1 {
		h = 1
	}
	if h >= MaxY {
		h = MaxY - 1
	}
	return h
}

// Populate fills the store with terrain for every chunk within radius chunks
// of the center coordinate. Columns generate in parallel; the store's lock
// serializes the writes.
func (g *TerrainGenerator) Populate(store *BlockStore, center ChunkCoord, radius int) error {
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())

	for cx := center.X - radius; cx <= center.X+radius; cx++ {
		for cz := center.Z - radius; cz <= center.Z+radius; cz++ {
			cx, cz := cx, cz
			eg.Go(func() error {
				g.populateChunk(store, cx, cz)
				return nil
			})
		}
	}
	return eg.Wait()
}

func (g *TerrainGenerator) populateChunk(store *BlockStore, chunkX, chunkZ int) {
	x0 := chunkX * ChunkSize
	z0 := chunkZ * ChunkSize
	for x := x0; x < x0+ChunkSize; x++ {
		for z := z0; z < z0+ChunkSize; z++ {
			g.populateColumn(store, x, z)
		}
	}
}

func (g *TerrainGenerator) populateColumn(store *BlockStore, x, z int) {
	h := g.HeightAt(x, z)

	for y := 0; y < h-3; y++ {
		store.SetBlock(x, y, z, BlockTypeStone)
	}
	for y := max(h-3, 0); y < h; y++ {
		store.SetBlock(x, y, z, BlockTypeDirt)
	}

	switch {
	case h <= seaLevel:
		store.SetBlock(x, h, z, BlockTypeSand)
		for y := h + 1; y <= seaLevel; y++ {
			store.SetBlock(x, y, z, BlockTypeWater)
		}
	case h >= snowLine:
		store.SetBlock(x, h, z, BlockTypeSnow)
	default:
		store.SetBlock(x, h, z, BlockTypeGrass)
	}
}
