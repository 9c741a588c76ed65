package render

// Tier is the level of detail assigned to a chunk by distance.
type Tier int

const (
	// TierFull gets complete block geometry.
	TierFull Tier = iota
	// TierSimplified gets cheap simplified geometry.
	TierSimplified
	// TierBillboard gets a flat camera-facing placeholder.
	TierBillboard
	// TierNone is outside every configured radius.
	TierNone
)

func (t Tier) String() string {
	switch t {
	case TierFull:
		return "full"
	case TierSimplified:
		return "simplified"
	case TierBillboard:
		return "billboard"
	default:
		return "none"
	}
}

// Thresholds hold the cumulative tier radii, in chunks. Full is the
// full-detail radius, Visual the additional simplified-geometry band, and
// Billboard the additional billboard band beyond that.
type Thresholds struct {
	Full      int
	Visual    int
	Billboard int
}

// MaxRadius is the outermost radius that renders anything at all.
func (t Thresholds) MaxRadius() int {
	return t.Full + t.Visual + t.Billboard
}

// Classify maps a Chebyshev chunk distance to a tier. Monotonic in dist.
func (t Thresholds) Classify(dist int) Tier {
	switch {
	case dist <= t.Full:
		return TierFull
	case dist <= t.Full+t.Visual:
		return TierSimplified
	case dist <= t.MaxRadius():
		return TierBillboard
	default:
		return TierNone
	}
}
