package render

import (
	"math"
	"time"

	"voxelcull/internal/profiling"
	"voxelcull/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// SweepKind tags the family a sampling ray belongs to.
type SweepKind int

const (
	// SweepHorizontal rays catch nearby walls and cliffs.
	SweepHorizontal SweepKind = iota
	// SweepDownward rays establish the ground level below the viewer.
	SweepDownward
	// SweepUpward rays catch overhangs and ceilings; cast sparsely since
	// those are rarer.
	SweepUpward
)

func (k SweepKind) String() string {
	switch k {
	case SweepHorizontal:
		return "horizontal"
	case SweepDownward:
		return "downward"
	default:
		return "upward"
	}
}

// SampleKey identifies one sampling ray within a scan.
type SampleKey struct {
	Sweep SweepKind
	Index int
}

// AdaptiveParams configure the visibility scanner.
type AdaptiveParams struct {
	Enabled    bool
	RayCount   int
	Buffer     int
	ScanRateHz float64
}

// Safe ranges for the performance/accuracy trade-off knobs.
const (
	minRayCount     = 8
	maxRayCount     = 64
	maxBuffer       = 5
	minScanInterval = 50 * time.Millisecond
	defScanInterval = 100 * time.Millisecond
)

func (p AdaptiveParams) clamped() AdaptiveParams {
	if p.RayCount < minRayCount {
		p.RayCount = minRayCount
	}
	if p.RayCount > maxRayCount {
		p.RayCount = maxRayCount
	}
	if p.Buffer < 0 {
		p.Buffer = 0
	}
	if p.Buffer > maxBuffer {
		p.Buffer = maxBuffer
	}
	return p
}

// minInterval converts the scan rate into the rate limiter's interval.
func (p AdaptiveParams) minInterval() time.Duration {
	if p.ScanRateHz <= 0 {
		return defScanInterval
	}
	iv := time.Duration(float64(time.Second) / p.ScanRateHz)
	if iv < minScanInterval {
		iv = minScanInterval
	}
	return iv
}

// BlockSource is the read-only point lookup the scanner marches through.
// It must return air for coordinates with nothing materialized.
type BlockSource interface {
	BlockAt(x, y, z int) world.BlockType
}

const (
	// scanStep is the fixed ray-march increment in world units.
	scanStep = 0.5
	// biasDrift is the horizontal drift of the vertical-biased rays.
	biasDrift = 0.1
)

// Scanner estimates the visible vertical extent of the world by casting
// sampling rays from the viewer and recording the Y of the first solid hit
// per ray. The sample set is global, not per chunk.
type Scanner struct {
	params   AdaptiveParams
	samples  map[SampleKey]int
	lastScan time.Time

	now func() time.Time // swapped out in tests
}

// NewScanner creates a scanner with clamped parameters.
func NewScanner(params AdaptiveParams) *Scanner {
	return &Scanner{
		params:  params.clamped(),
		samples: make(map[SampleKey]int),
		now:     time.Now,
	}
}

// SetParams replaces the scanner configuration, clamping to safe ranges.
func (s *Scanner) SetParams(p AdaptiveParams) {
	s.params = p.clamped()
}

// Params returns the active (clamped) configuration.
func (s *Scanner) Params() AdaptiveParams { return s.params }

// Scan recomputes the sample set from scratch. Returns false when the call
// arrives before the minimum interval has elapsed; in that case the previous
// samples stay untouched.
func (s *Scanner) Scan(origin mgl32.Vec3, maxDist float32, src BlockSource) bool {
	t := s.now()
	if !s.lastScan.IsZero() && t.Sub(s.lastScan) < s.params.minInterval() {
		return false
	}
	s.lastScan = t

	defer profiling.Track("render.Scan")()

	clear(s.samples)
	for i := 0; i < s.params.RayCount; i++ {
		ang := 2 * math.Pi * float64(i) / float64(s.params.RayCount)
		cos := float32(math.Cos(ang))
		sin := float32(math.Sin(ang))

		horiz := mgl32.Vec3{cos, 0, sin}
		if y, ok := s.march(origin, horiz, maxDist, src); ok {
			s.samples[SampleKey{Sweep: SweepHorizontal, Index: i}] = y
		}

		down := mgl32.Vec3{cos * biasDrift, -1, sin * biasDrift}.Normalize()
		if y, ok := s.march(origin, down, maxDist, src); ok {
			s.samples[SampleKey{Sweep: SweepDownward, Index: i}] = y
		}

		if i%4 == 0 {
			up := mgl32.Vec3{cos * biasDrift, 1, sin * biasDrift}.Normalize()
			if y, ok := s.march(origin, up, maxDist, src); ok {
				s.samples[SampleKey{Sweep: SweepUpward, Index: i}] = y
			}
		}
	}
	return true
}

// march steps along the ray at fixed increments and returns the Y of the
// first block that is not see-through.
func (s *Scanner) march(origin, dir mgl32.Vec3, maxDist float32, src BlockSource) (int, bool) {
	steps := int(maxDist / scanStep)
	for i := 1; i <= steps; i++ {
		p := origin.Add(dir.Mul(float32(i) * scanStep))
		bx := int(math.Floor(float64(p.X())))
		by := int(math.Floor(float64(p.Y())))
		bz := int(math.Floor(float64(p.Z())))
		if !src.BlockAt(bx, by, bz).SeeThrough() {
			return by, true
		}
	}
	return 0, false
}

// ResetRateLimit clears the rate limiter so the next Scan always runs.
func (s *Scanner) ResetRateLimit() {
	s.lastScan = time.Time{}
}

// Samples returns a copy of the current sample set.
func (s *Scanner) Samples() map[SampleKey]int {
	out := make(map[SampleKey]int, len(s.samples))
	for k, v := range s.samples {
		out[k] = v
	}
	return out
}

// Bounds aggregates the current samples into an adaptive vertical window
// padded by the configured buffer. ok is false when no surfaces were
// detected; callers then fall back to the fixed window.
func (s *Scanner) Bounds() (Bounds, bool) {
	if len(s.samples) == 0 {
		return Bounds{}, false
	}
	first := true
	var lo, hi int
	for _, y := range s.samples {
		if first {
			lo, hi = y, y
			first = false
			continue
		}
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	return Bounds{
		Min: float32(lo - s.params.Buffer),
		Max: float32(hi + s.params.Buffer),
	}, true
}
