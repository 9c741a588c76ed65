// Package metrics exports the render manager's frame diagnostics as
// Prometheus gauges.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"voxelcull/internal/render"
)

// Collector publishes one Stats record per frame.
type Collector struct {
	full       prometheus.Gauge
	simplified prometheus.Gauge
	billboard  prometheus.Gauge
	culled     prometheus.Gauge
	adaptive   prometheus.Gauge
	boundsMin  prometheus.Gauge
	boundsMax  prometheus.Gauge
}

// NewCollector registers the gauges with reg (use
// prometheus.DefaultRegisterer for the global registry).
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		full: f.NewGauge(prometheus.GaugeOpts{
			Name: "voxelcull_chunks_full",
			Help: "Chunks assigned the full-detail tier this frame.",
		}),
		simplified: f.NewGauge(prometheus.GaugeOpts{
			Name: "voxelcull_chunks_simplified",
			Help: "Chunks assigned the simplified tier this frame.",
		}),
		billboard: f.NewGauge(prometheus.GaugeOpts{
			Name: "voxelcull_chunks_billboard",
			Help: "Chunks assigned the billboard tier this frame.",
		}),
		culled: f.NewGauge(prometheus.GaugeOpts{
			Name: "voxelcull_chunks_culled",
			Help: "In-range chunks discarded by directional exclusion this frame.",
		}),
		adaptive: f.NewGauge(prometheus.GaugeOpts{
			Name: "voxelcull_adaptive_enabled",
			Help: "Whether the adaptive visibility scanner is active (0/1).",
		}),
		boundsMin: f.NewGauge(prometheus.GaugeOpts{
			Name: "voxelcull_bounds_min_y",
			Help: "Lower edge of the active vertical render window.",
		}),
		boundsMax: f.NewGauge(prometheus.GaugeOpts{
			Name: "voxelcull_bounds_max_y",
			Help: "Upper edge of the active vertical render window.",
		}),
	}
}

// Observe records one frame's diagnostics.
func (c *Collector) Observe(s render.Stats) {
	c.full.Set(float64(s.FullCount))
	c.simplified.Set(float64(s.SimplifiedCount))
	c.billboard.Set(float64(s.BillboardCount))
	c.culled.Set(float64(s.CulledCount))
	if s.Adaptive {
		c.adaptive.Set(1)
	} else {
		c.adaptive.Set(0)
	}
	c.boundsMin.Set(float64(s.Bounds.Min))
	c.boundsMax.Set(float64(s.Bounds.Max))
}

// Handler serves the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
