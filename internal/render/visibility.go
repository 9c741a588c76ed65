package render

import (
	"log"

	"voxelcull/internal/profiling"
	"voxelcull/internal/world"
)

// SyncAttachments reconciles every materialized block entry's scene
// membership against the current vertical bounds. Pure attach/detach: no
// entry is created, destroyed or remeshed here, so it is safe to run every
// frame or on a throttled cadence. With vertical culling disabled every
// entry ends up attached.
func (m *Manager) SyncAttachments(store *world.BlockStore) {
	defer profiling.Track("render.SyncAttachments")()

	if m.graph == nil {
		log.Printf("render: attachment sync skipped: no scene graph")
		return
	}

	bounds := m.VerticalBounds()
	all := !m.vertical.Enabled

	store.Range(func(pos world.BlockCoord, e *world.BlockEntry) bool {
		want := all || bounds.Contains(float32(pos.Y))
		if want == e.Attached() {
			return true
		}
		if want {
			if e.Mesh != 0 {
				m.graph.Attach(e.Mesh)
			}
			if e.Billboard != 0 {
				m.graph.Attach(e.Billboard)
			}
		} else {
			if e.Mesh != 0 {
				m.graph.Detach(e.Mesh)
			}
			if e.Billboard != 0 {
				m.graph.Detach(e.Billboard)
			}
		}
		e.SetAttached(want)
		return true
	})
}
