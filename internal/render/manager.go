package render

import (
	"log"

	"voxelcull/internal/profiling"
	"voxelcull/internal/scene"
	"voxelcull/internal/settings"
	"voxelcull/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// profileKey is the settings-store key holding the active preset name.
const profileKey = "render.profile"

// View supplies the camera transforms the culler consumes each frame.
type View interface {
	ProjectionMatrix() mgl32.Mat4
	ViewMatrix() mgl32.Mat4
	Forward() mgl32.Vec3
}

// Stats is the per-frame diagnostics record.
type Stats struct {
	FullCount       int
	SimplifiedCount int
	BillboardCount  int
	// CulledCount is chunks discarded by directional exclusion even though
	// they were within range; out-of-range chunks are not counted.
	CulledCount int
	GPUTier     GPUTier
	Bounds      Bounds
	Adaptive    bool
}

// Manager owns all per-session culling state: the active profile, the LOD
// thresholds, the visibility scanner, the frame frustum and the per-tier
// candidate sets. One Manager per active world; there are no package-level
// singletons.
type Manager struct {
	view  View
	graph scene.Graph
	store settings.Store

	profiles map[string]Profile
	current  string

	thresholds Thresholds
	gpuTier    GPUTier

	vertical VerticalParams
	scanner  *Scanner

	frustum     Frustum
	haveFrustum bool
	forward     mgl32.Vec3

	lastViewerY float32

	full       []world.ChunkCoord
	simplified []world.ChunkCoord
	billboards []world.ChunkCoord

	stats Stats
}

// NewManager wires a manager to its collaborators. view and graph may be
// nil; the affected sub-steps are then skipped per frame. A nil store gets
// an in-memory one. The persisted profile name is restored, falling back to
// the default preset when absent or unknown.
func NewManager(view View, graph scene.Graph, store settings.Store) *Manager {
	if store == nil {
		store = settings.NewMemStore()
	}
	m := &Manager{
		view:     view,
		graph:    graph,
		store:    store,
		profiles: make(map[string]Profile),
		gpuTier:  GPUTierMedium,
		scanner:  NewScanner(AdaptiveParams{}),
	}
	m.thresholds = gpuTierThresholds[m.gpuTier]
	for _, p := range builtinProfiles() {
		m.profiles[p.Name] = p
	}

	name, err := store.Get(profileKey)
	if err != nil {
		log.Printf("render: restore profile: %v", err)
		name = ""
	}
	if name == "" || !m.ApplyProfile(name) {
		m.ApplyProfile(DefaultProfileName)
	}
	return m
}

// RegisterProfile adds or replaces a preset. The active profile's live
// parameters are unaffected until it is applied again.
func (m *Manager) RegisterProfile(p Profile) {
	m.profiles[p.Name] = p
}

// ApplyProfile activates the named preset: render distance, adaptive
// visibility and vertical culling all switch in one step, and the name is
// persisted. An unknown name returns false and changes nothing.
func (m *Manager) ApplyProfile(name string) bool {
	p, ok := m.profiles[name]
	if !ok {
		return false
	}
	m.current = name
	m.thresholds.Full = p.RenderDistance
	m.scanner.SetParams(p.Adaptive)
	m.vertical = p.Vertical.clamped()

	if err := m.store.Set(profileKey, name); err != nil {
		// Persistence is best effort; the in-memory state already switched.
		log.Printf("render: persist profile %q: %v", name, err)
	}
	return true
}

// CurrentProfile returns the active preset.
func (m *Manager) CurrentProfile() Profile {
	return m.profiles[m.current]
}

// SetGPUTier recomputes the three distance thresholds from the fixed tier
// table. All other parameters stay untouched; a later ApplyProfile may
// override the full-detail radius again ("last applied wins").
func (m *Manager) SetGPUTier(t GPUTier) {
	th, ok := gpuTierThresholds[t]
	if !ok {
		return
	}
	m.gpuTier = t
	m.thresholds = th
}

// GPUTier returns the active performance class.
func (m *Manager) GPUTier() GPUTier { return m.gpuTier }

// Thresholds returns the active tier radii.
func (m *Manager) Thresholds() Thresholds { return m.thresholds }

// SetVerticalCulling reconfigures the fixed vertical window. Depth and
// height clamp to a minimum of one block.
func (m *Manager) SetVerticalCulling(enabled, heightLimit bool, undergroundDepth, abovegroundHeight int) {
	m.vertical = VerticalParams{
		Enabled:           enabled,
		HeightLimit:       heightLimit,
		UndergroundDepth:  undergroundDepth,
		AbovegroundHeight: abovegroundHeight,
	}.clamped()
}

// SetAdaptiveVisibility reconfigures the scanner, clamping every knob to
// its safe range.
func (m *Manager) SetAdaptiveVisibility(enabled bool, rayCount, buffer int, scanRateHz float64) {
	m.scanner.SetParams(AdaptiveParams{
		Enabled:    enabled,
		RayCount:   rayCount,
		Buffer:     buffer,
		ScanRateHz: scanRateHz,
	})
}

// ToggleAdaptiveVisibility flips the scanner on or off and returns the new
// state.
func (m *Manager) ToggleAdaptiveVisibility() bool {
	p := m.scanner.Params()
	p.Enabled = !p.Enabled
	m.scanner.SetParams(p)
	return p.Enabled
}

// VerticalBounds returns the active vertical window: the unbounded sentinel
// when vertical culling is off, the adaptive window when the scanner has
// samples, the fixed window otherwise.
func (m *Manager) VerticalBounds() Bounds {
	if !m.vertical.Enabled {
		return Unbounded()
	}
	if m.scanner.Params().Enabled {
		if b, ok := m.scanner.Bounds(); ok {
			return b
		}
	}
	return FixedBounds(m.lastViewerY, m.vertical)
}

// Update runs one frame of culling: optional adaptive scan, frustum
// rebuild, then tier classification with directional exclusion for every
// chunk within the maximum radius. The per-tier candidate sets and stats
// are valid until the next call.
func (m *Manager) Update(viewerChunkX, viewerChunkZ int, viewerY float32, src BlockSource) {
	defer profiling.Track("render.Update")()

	m.lastViewerY = viewerY
	viewer := world.ChunkCoord{X: viewerChunkX, Z: viewerChunkZ}

	if m.scanner.Params().Enabled {
		if src == nil {
			log.Printf("render: adaptive scan skipped: no world snapshot")
		} else {
			origin := mgl32.Vec3{
				float32(viewerChunkX*world.ChunkSize) + world.ChunkSize/2,
				viewerY,
				float32(viewerChunkZ*world.ChunkSize) + world.ChunkSize/2,
			}
			maxDist := float32(m.thresholds.Full * world.ChunkSize)
			m.scanner.Scan(origin, maxDist, src)
		}
	}

	if m.view == nil {
		m.haveFrustum = false
		log.Printf("render: frustum rebuild skipped: no camera view")
	} else {
		m.frustum = NewFrustum(m.view.ProjectionMatrix(), m.view.ViewMatrix())
		m.forward = m.view.Forward()
		m.haveFrustum = true
	}

	m.full = m.full[:0]
	m.simplified = m.simplified[:0]
	m.billboards = m.billboards[:0]
	m.stats = Stats{GPUTier: m.gpuTier, Adaptive: m.scanner.Params().Enabled}

	maxR := m.thresholds.MaxRadius()
	for dx := -maxR; dx <= maxR; dx++ {
		for dz := -maxR; dz <= maxR; dz++ {
			coord := world.ChunkCoord{X: viewerChunkX + dx, Z: viewerChunkZ + dz}
			tier := m.thresholds.Classify(viewer.Dist(coord))
			if tier == TierNone {
				continue
			}
			if m.haveFrustum && BehindViewer(m.forward, viewer, coord) {
				m.stats.CulledCount++
				continue
			}
			switch tier {
			case TierFull:
				m.full = append(m.full, coord)
				m.stats.FullCount++
			case TierSimplified:
				m.simplified = append(m.simplified, coord)
				m.stats.SimplifiedCount++
			case TierBillboard:
				m.billboards = append(m.billboards, coord)
				m.stats.BillboardCount++
			}
		}
	}

	m.stats.Bounds = m.VerticalBounds()
}

// FullDetail returns the chunks that get complete geometry this frame. The
// slice is reused; callers must not retain it across updates.
func (m *Manager) FullDetail() []world.ChunkCoord { return m.full }

// Simplified returns the chunks that get simplified geometry this frame.
func (m *Manager) Simplified() []world.ChunkCoord { return m.simplified }

// Billboards returns the chunks that get billboard placeholders this frame.
func (m *Manager) Billboards() []world.ChunkCoord { return m.billboards }

// Stats returns the diagnostics record of the last update.
func (m *Manager) Stats() Stats { return m.stats }

// Scanner exposes the visibility scanner for diagnostics consumers.
func (m *Manager) Scanner() *Scanner { return m.scanner }

// IsVisible is the precise per-chunk frustum query, using the current
// vertical bounds for the box height. More expensive than the directional
// test and not part of the hot update path; shadow or minimap consumers
// call it on demand. Without a camera everything is reported visible.
func (m *Manager) IsVisible(coord world.ChunkCoord) bool {
	if !m.haveFrustum {
		return true
	}
	minY, maxY := float32(0), float32(world.MaxY)
	if b := m.VerticalBounds(); !b.IsUnbounded() {
		if b.Min > minY {
			minY = b.Min
		}
		if b.Max < maxY {
			maxY = b.Max
		}
		if maxY < minY {
			maxY = minY
		}
	}
	min := mgl32.Vec3{
		float32(coord.X * world.ChunkSize),
		minY,
		float32(coord.Z * world.ChunkSize),
	}
	max := mgl32.Vec3{
		min.X() + world.ChunkSize,
		maxY,
		min.Z() + world.ChunkSize,
	}
	return m.frustum.IntersectsAABB(min, max)
}
