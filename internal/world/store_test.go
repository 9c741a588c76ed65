package world_test

import (
	"testing"

	"voxelcull/internal/world"
)

func TestBlockStoreSetAndGet(t *testing.T) {
	s := world.NewBlockStore()

	if got := s.BlockAt(1, 2, 3); got != world.BlockTypeAir {
		t.Errorf("empty store BlockAt = %v, want air", got)
	}

	s.SetBlock(1, 2, 3, world.BlockTypeStone)
	if got := s.BlockAt(1, 2, 3); got != world.BlockTypeStone {
		t.Errorf("BlockAt = %v, want stone", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}

	// Retyping reuses the entry.
	e := s.Entry(world.BlockCoord{X: 1, Y: 2, Z: 3})
	s.SetBlock(1, 2, 3, world.BlockTypeGrass)
	if e2 := s.Entry(world.BlockCoord{X: 1, Y: 2, Z: 3}); e2 != e {
		t.Errorf("retyping replaced the entry")
	}
	if got := s.BlockAt(1, 2, 3); got != world.BlockTypeGrass {
		t.Errorf("BlockAt after retype = %v, want grass", got)
	}
}

func TestBlockStoreAirDeletes(t *testing.T) {
	s := world.NewBlockStore()
	s.SetBlock(0, 0, 0, world.BlockTypeStone)
	s.SetBlock(0, 0, 0, world.BlockTypeAir)

	if s.Len() != 0 {
		t.Errorf("Len = %d after air set, want 0", s.Len())
	}
	if e := s.Entry(world.BlockCoord{}); e != nil {
		t.Errorf("entry survived an air set: %+v", e)
	}
}

func TestBlockStoreModCount(t *testing.T) {
	s := world.NewBlockStore()
	base := s.ModCount()

	s.SetBlock(0, 0, 0, world.BlockTypeStone)
	if s.ModCount() != base+1 {
		t.Errorf("add did not bump mod count")
	}

	// Retyping is not a structural change.
	s.SetBlock(0, 0, 0, world.BlockTypeDirt)
	if s.ModCount() != base+1 {
		t.Errorf("retype bumped mod count")
	}

	s.SetBlock(0, 0, 0, world.BlockTypeAir)
	if s.ModCount() != base+2 {
		t.Errorf("remove did not bump mod count")
	}

	// Deleting a missing entry is a no-op.
	s.SetBlock(9, 9, 9, world.BlockTypeAir)
	if s.ModCount() != base+2 {
		t.Errorf("deleting a missing entry bumped mod count")
	}
}

func TestBlockStoreRange(t *testing.T) {
	s := world.NewBlockStore()
	s.SetBlock(0, 0, 0, world.BlockTypeStone)
	s.SetBlock(1, 0, 0, world.BlockTypeStone)
	s.SetBlock(2, 0, 0, world.BlockTypeStone)

	count := 0
	s.Range(func(world.BlockCoord, *world.BlockEntry) bool {
		count++
		return true
	})
	if count != 3 {
		t.Errorf("ranged over %d entries, want 3", count)
	}

	// Early stop.
	count = 0
	s.Range(func(world.BlockCoord, *world.BlockEntry) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("early stop visited %d entries, want 1", count)
	}
}
