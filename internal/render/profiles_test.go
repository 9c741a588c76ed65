package render_test

import (
	"testing"

	"voxelcull/internal/render"
	"voxelcull/internal/settings"
)

func TestManagerDefaultProfile(t *testing.T) {
	m := render.NewManager(nil, nil, nil)
	if got := m.CurrentProfile().Name; got != "balanced" {
		t.Errorf("fresh manager profile = %q, want balanced", got)
	}
	if got := m.Thresholds().Full; got != 5 {
		t.Errorf("balanced render distance = %d, want 5", got)
	}
}

func TestApplyProfileUnknownName(t *testing.T) {
	m := render.NewManager(nil, nil, nil)
	before := m.CurrentProfile()
	if m.ApplyProfile("does-not-exist") {
		t.Fatalf("unknown preset applied")
	}
	if m.CurrentProfile() != before {
		t.Errorf("failed apply changed the active profile")
	}
}

func TestApplyProfileIdempotent(t *testing.T) {
	m := render.NewManager(nil, nil, nil)

	type observable struct {
		profile    render.Profile
		thresholds render.Thresholds
		adaptive   render.AdaptiveParams
		bounds     render.Bounds
	}
	snapshot := func() observable {
		return observable{
			profile:    m.CurrentProfile(),
			thresholds: m.Thresholds(),
			adaptive:   m.Scanner().Params(),
			bounds:     m.VerticalBounds(),
		}
	}

	if !m.ApplyProfile("high") {
		t.Fatalf("apply high failed")
	}
	first := snapshot()

	if !m.ApplyProfile("high") {
		t.Fatalf("reapply high failed")
	}
	if second := snapshot(); second != first {
		t.Errorf("reapplying the same preset changed state:\n first %+v\nsecond %+v", first, second)
	}
}

func TestProfilePersistenceRoundTrip(t *testing.T) {
	store := settings.NewMemStore()

	m1 := render.NewManager(nil, nil, store)
	if !m1.ApplyProfile("high") {
		t.Fatalf("apply high failed")
	}

	// A second session over the same store restores the choice.
	m2 := render.NewManager(nil, nil, store)
	if got := m2.CurrentProfile().Name; got != "high" {
		t.Errorf("restored profile = %q, want high", got)
	}
	if got := m2.Thresholds().Full; got != 8 {
		t.Errorf("restored render distance = %d, want 8", got)
	}
}

func TestProfileRestoreFallsBackOnStaleName(t *testing.T) {
	store := settings.NewMemStore()
	if err := store.Set("render.profile", "removed-preset"); err != nil {
		t.Fatal(err)
	}
	m := render.NewManager(nil, nil, store)
	if got := m.CurrentProfile().Name; got != "balanced" {
		t.Errorf("stale persisted name should fall back to balanced, got %q", got)
	}
}

func TestRegisterProfile(t *testing.T) {
	m := render.NewManager(nil, nil, nil)
	m.RegisterProfile(render.Profile{
		Name:           "cinematic",
		RenderDistance: 10,
	})
	if !m.ApplyProfile("cinematic") {
		t.Fatalf("registered preset not applicable")
	}
	if got := m.Thresholds().Full; got != 10 {
		t.Errorf("render distance = %d, want 10", got)
	}
}

func TestSetGPUTier(t *testing.T) {
	m := render.NewManager(nil, nil, nil)

	cases := []struct {
		tier render.GPUTier
		want render.Thresholds
	}{
		{render.GPUTierLow, render.Thresholds{Full: 3, Visual: 1, Billboard: 1}},
		{render.GPUTierMedium, render.Thresholds{Full: 5, Visual: 2, Billboard: 2}},
		{render.GPUTierHigh, render.Thresholds{Full: 8, Visual: 3, Billboard: 3}},
	}
	for _, c := range cases {
		m.SetGPUTier(c.tier)
		if got := m.Thresholds(); got != c.want {
			t.Errorf("tier %v thresholds = %+v, want %+v", c.tier, got, c.want)
		}
	}
}

func TestGPUTierThenProfileLastWins(t *testing.T) {
	m := render.NewManager(nil, nil, nil)
	m.SetGPUTier(render.GPUTierHigh)
	m.ApplyProfile("low")

	got := m.Thresholds()
	if got.Full != 3 {
		t.Errorf("profile should override the full radius, got %d", got.Full)
	}
	if got.Visual != 3 || got.Billboard != 3 {
		t.Errorf("tier visual/billboard radii should survive, got %+v", got)
	}
}

func TestParseProfiles(t *testing.T) {
	data := []byte(`
profiles:
  - name: potato
    renderDistance: 2
    adaptiveVisibility:
      enabled: true
      rayCount: 8
      buffer: 1
      scanRateHz: 5
    verticalCulling:
      enabled: true
      heightLimitEnabled: true
      undergroundDepth: 2
      abovegroundHeight: 4
`)
	profiles, err := render.ParseProfiles(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 1 {
		t.Fatalf("got %d profiles, want 1", len(profiles))
	}
	p := profiles[0]
	if p.Name != "potato" || p.RenderDistance != 2 {
		t.Errorf("unexpected profile %+v", p)
	}
	if !p.Adaptive.Enabled || p.Adaptive.RayCount != 8 || p.Adaptive.ScanRateHz != 5 {
		t.Errorf("unexpected adaptive params %+v", p.Adaptive)
	}
	if !p.Vertical.HeightLimit || p.Vertical.AbovegroundHeight != 4 {
		t.Errorf("unexpected vertical params %+v", p.Vertical)
	}
}

func TestParseProfilesRejectsBadPresets(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"missing name", "profiles:\n  - renderDistance: 3\n"},
		{"zero distance", "profiles:\n  - name: x\n    renderDistance: 0\n"},
		{"malformed yaml", "profiles: [\n"},
	}
	for _, c := range cases {
		if _, err := render.ParseProfiles([]byte(c.data)); err == nil {
			t.Errorf("%s: want error, got nil", c.name)
		}
	}
}
