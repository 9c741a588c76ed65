package render_test

import (
	"testing"

	"voxelcull/internal/render"
)

func TestClassify(t *testing.T) {
	th := render.Thresholds{Full: 2, Visual: 1, Billboard: 1}

	cases := []struct {
		dist int
		want render.Tier
	}{
		{0, render.TierFull},
		{1, render.TierFull},
		{2, render.TierFull},
		{3, render.TierSimplified},
		{4, render.TierBillboard},
		{5, render.TierNone},
		{100, render.TierNone},
	}
	for _, c := range cases {
		if got := th.Classify(c.dist); got != c.want {
			t.Errorf("Classify(%d) = %v, want %v", c.dist, got, c.want)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	th := render.Thresholds{Full: 4, Visual: 3, Billboard: 2}

	prev := th.Classify(0)
	for d := 1; d <= th.MaxRadius()+2; d++ {
		got := th.Classify(d)
		if got < prev {
			t.Fatalf("tier dropped from %v to %v at distance %d", prev, got, d)
		}
		prev = got
	}
	if prev != render.TierNone {
		t.Errorf("expected TierNone past max radius, got %v", prev)
	}
}

func TestMaxRadius(t *testing.T) {
	th := render.Thresholds{Full: 5, Visual: 2, Billboard: 2}
	if got := th.MaxRadius(); got != 9 {
		t.Errorf("MaxRadius = %d, want 9", got)
	}
}
