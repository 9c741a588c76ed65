package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is an immutable named preset bundling the render distance and
// every culling parameter. Activating a profile replaces all of them
// atomically.
type Profile struct {
	Name           string
	RenderDistance int
	Adaptive       AdaptiveParams
	Vertical       VerticalParams
}

// DefaultProfileName is activated when nothing is persisted.
const DefaultProfileName = "balanced"

func builtinProfiles() []Profile {
	return []Profile{
		{
			Name:           "low",
			RenderDistance: 3,
			Adaptive:       AdaptiveParams{Enabled: true, RayCount: 8, Buffer: 2, ScanRateHz: 5},
			Vertical:       VerticalParams{Enabled: true, HeightLimit: true, UndergroundDepth: 4, AbovegroundHeight: 8},
		},
		{
			Name:           "balanced",
			RenderDistance: 5,
			Adaptive:       AdaptiveParams{Enabled: true, RayCount: 16, Buffer: 3, ScanRateHz: 10},
			Vertical:       VerticalParams{Enabled: true, HeightLimit: true, UndergroundDepth: 8, AbovegroundHeight: 16},
		},
		{
			Name:           "high",
			RenderDistance: 8,
			Adaptive:       AdaptiveParams{Enabled: true, RayCount: 32, Buffer: 4, ScanRateHz: 10},
			Vertical:       VerticalParams{Enabled: true, HeightLimit: false, UndergroundDepth: 12, AbovegroundHeight: 32},
		},
		{
			Name:           "ultra",
			RenderDistance: 12,
			Adaptive:       AdaptiveParams{Enabled: false, RayCount: 32, Buffer: 5, ScanRateHz: 10},
			Vertical:       VerticalParams{Enabled: false, HeightLimit: false, UndergroundDepth: 16, AbovegroundHeight: 64},
		},
	}
}

// GPUTier is a coarse performance class driving the base distance
// thresholds.
type GPUTier int

const (
	GPUTierLow GPUTier = iota
	GPUTierMedium
	GPUTierHigh
)

func (t GPUTier) String() string {
	switch t {
	case GPUTierLow:
		return "low"
	case GPUTierMedium:
		return "medium"
	case GPUTierHigh:
		return "high"
	default:
		return "unknown"
	}
}

// gpuTierThresholds is the fixed (render, visual, billboard) distance table.
var gpuTierThresholds = map[GPUTier]Thresholds{
	GPUTierLow:    {Full: 3, Visual: 1, Billboard: 1},
	GPUTierMedium: {Full: 5, Visual: 2, Billboard: 2},
	GPUTierHigh:   {Full: 8, Visual: 3, Billboard: 3},
}

// profileFile mirrors the on-disk YAML preset format.
type profileFile struct {
	Profiles []struct {
		Name           string `yaml:"name"`
		RenderDistance int    `yaml:"renderDistance"`
		Adaptive       struct {
			Enabled    bool    `yaml:"enabled"`
			RayCount   int     `yaml:"rayCount"`
			Buffer     int     `yaml:"buffer"`
			ScanRateHz float64 `yaml:"scanRateHz"`
		} `yaml:"adaptiveVisibility"`
		Vertical struct {
			Enabled           bool `yaml:"enabled"`
			HeightLimit       bool `yaml:"heightLimitEnabled"`
			UndergroundDepth  int  `yaml:"undergroundDepth"`
			AbovegroundHeight int  `yaml:"abovegroundHeight"`
		} `yaml:"verticalCulling"`
	} `yaml:"profiles"`
}

// ParseProfiles decodes extra presets from YAML. Out-of-range knobs clamp
// when the profile is activated, not here.
func ParseProfiles(data []byte) ([]Profile, error) {
	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	out := make([]Profile, 0, len(f.Profiles))
	for _, p := range f.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("decode profiles: preset without a name")
		}
		if p.RenderDistance < 1 {
			return nil, fmt.Errorf("decode profiles: %q: renderDistance must be >= 1", p.Name)
		}
		out = append(out, Profile{
			Name:           p.Name,
			RenderDistance: p.RenderDistance,
			Adaptive: AdaptiveParams{
				Enabled:    p.Adaptive.Enabled,
				RayCount:   p.Adaptive.RayCount,
				Buffer:     p.Adaptive.Buffer,
				ScanRateHz: p.Adaptive.ScanRateHz,
			},
			Vertical: VerticalParams{
				Enabled:           p.Vertical.Enabled,
				HeightLimit:       p.Vertical.HeightLimit,
				UndergroundDepth:  p.Vertical.UndergroundDepth,
				AbovegroundHeight: p.Vertical.AbovegroundHeight,
			},
		})
	}
	return out, nil
}

// LoadProfilesFile reads extra presets from a YAML file.
func LoadProfilesFile(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	return ParseProfiles(data)
}
