package world

import (
	"sync"

	"voxelcull/internal/scene"
)

// BlockEntry is one materialized block: its material, its optional scene
// handles (zero handle means the representation does not exist yet), and
// whether its geometry is currently attached to the scene graph. Entries are
// created and destroyed by the world storage owner; the render side only
// reads the type and toggles attachment.
type BlockEntry struct {
	Type      BlockType
	Mesh      scene.Handle
	Billboard scene.Handle

	attached bool
}

// Attached reports whether the entry's geometry is in the scene graph.
func (e *BlockEntry) Attached() bool { return e.attached }

// SetAttached records the current scene membership.
func (e *BlockEntry) SetAttached(v bool) { e.attached = v }

// BlockStore maps integer block coordinates to materialized block entries.
// The flat map preserves O(1) point-lookup semantics for raycasting; reads
// take the read lock so a scan cannot race a concurrent world edit.
type BlockStore struct {
	mu       sync.RWMutex
	entries  map[BlockCoord]*BlockEntry
	modCount uint64
}

// NewBlockStore creates an empty store.
func NewBlockStore() *BlockStore {
	return &BlockStore{entries: make(map[BlockCoord]*BlockEntry)}
}

// SetBlock creates or retypes the entry at the given coordinates. Setting
// air removes the entry.
func (s *BlockStore) SetBlock(x, y, z int, t BlockType) {
	pos := BlockCoord{X: x, Y: y, Z: z}
	s.mu.Lock()
	defer s.mu.Unlock()
	if t == BlockTypeAir {
		if _, ok := s.entries[pos]; ok {
			delete(s.entries, pos)
			s.modCount++
		}
		return
	}
	if e, ok := s.entries[pos]; ok {
		e.Type = t
		return
	}
	s.entries[pos] = &BlockEntry{Type: t}
	s.modCount++
}

// Put installs a fully built entry, replacing any existing one.
func (s *BlockStore) Put(pos BlockCoord, e *BlockEntry) {
	s.mu.Lock()
	s.entries[pos] = e
	s.modCount++
	s.mu.Unlock()
}

// Entry returns the entry at pos, or nil.
func (s *BlockStore) Entry(pos BlockCoord) *BlockEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[pos]
}

// BlockAt returns the block type at the given world coordinates, air when
// nothing is materialized there.
func (s *BlockStore) BlockAt(x, y, z int) BlockType {
	s.mu.RLock()
	e := s.entries[BlockCoord{X: x, Y: y, Z: z}]
	s.mu.RUnlock()
	if e == nil {
		return BlockTypeAir
	}
	return e.Type
}

// Range calls fn for every entry until fn returns false. The read lock is
// held for the duration; fn must not call back into the store.
func (s *BlockStore) Range(fn func(pos BlockCoord, e *BlockEntry) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for pos, e := range s.entries {
		if !fn(pos, e) {
			return
		}
	}
}

// Len returns the number of materialized entries.
func (s *BlockStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// ModCount increases on any entry add or remove.
func (s *BlockStore) ModCount() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modCount
}
