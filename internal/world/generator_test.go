package world_test

import (
	"testing"

	"voxelcull/internal/world"
)

func TestHeightAtDeterministic(t *testing.T) {
	a := world.NewTerrainGenerator(42)
	b := world.NewTerrainGenerator(42)
	for x := -32; x <= 32; x += 7 {
		for z := -32; z <= 32; z += 7 {
			if a.HeightAt(x, z) != b.HeightAt(x, z) {
				t.Fatalf("same seed produced different heights at (%d, %d)", x, z)
			}
		}
	}
}

func TestHeightAtInRange(t *testing.T) {
	g := world.NewTerrainGenerator(7)
	for x := -128; x <= 128; x += 11 {
		for z := -128; z <= 128; z += 11 {
			h := g.HeightAt(x, z)
			if h < 1 || h >= world.MaxY {
				t.Fatalf("height %d at (%d, %d) out of range", h, x, z)
			}
		}
	}
}

func TestPopulateColumns(t *testing.T) {
	g := world.NewTerrainGenerator(42)
	s := world.NewBlockStore()
	if err := g.Populate(s, world.ChunkCoord{}, 1); err != nil {
		t.Fatal(err)
	}
	if s.Len() == 0 {
		t.Fatal("populate produced no blocks")
	}

	for x := -16; x < 32; x += 5 {
		for z := -16; z < 32; z += 5 {
			h := g.HeightAt(x, z)

			if got := s.BlockAt(x, h, z); got == world.BlockTypeAir || got == world.BlockTypeWater {
				t.Errorf("column (%d, %d): surface at y=%d is %v", x, z, h, got)
			}
			if h > 4 {
				if got := s.BlockAt(x, 0, z); got != world.BlockTypeStone {
					t.Errorf("column (%d, %d): bedrock level is %v, want stone", x, z, got)
				}
			}
			if got := s.BlockAt(x, world.MaxY-1, z); got != world.BlockTypeAir {
				t.Errorf("column (%d, %d): sky is %v, want air", x, z, got)
			}
		}
	}
}

func TestPopulateOutsideRadiusEmpty(t *testing.T) {
	g := world.NewTerrainGenerator(42)
	s := world.NewBlockStore()
	if err := g.Populate(s, world.ChunkCoord{}, 1); err != nil {
		t.Fatal(err)
	}
	// Chunk (5, 5) is outside radius 1 and must stay air.
	if got := s.BlockAt(5*world.ChunkSize, 10, 5*world.ChunkSize); got != world.BlockTypeAir {
		t.Errorf("block outside the populated radius is %v", got)
	}
}
