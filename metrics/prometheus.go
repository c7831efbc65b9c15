package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink exports every Emit as a gauge in a registry, a read-only
// side channel over the already-computed counters (spec §9's Non-goals
// note: this is not distributed search, just an optional live view of
// one process's own metrics). String values that cannot be parsed as a
// float are exported as their length, and values of any other
// non-numeric type as 0, instead of being dropped, so a scrape target
// never goes missing a series mid-run.
type PrometheusSink struct {
	registry *prometheus.Registry
	gauges   map[string]prometheus.Gauge
	labels   prometheus.Labels
}

// NewPrometheusSink registers a fresh registry tagged with the given
// algorithm/instance labels. The cmd/search driver does not construct
// one; it has no `-metrics-addr` flag.
func NewPrometheusSink(algorithm, instance string) *PrometheusSink {
	return &PrometheusSink{
		registry: prometheus.NewRegistry(),
		gauges:   make(map[string]prometheus.Gauge),
		labels:   prometheus.Labels{"algorithm": algorithm, "instance": instance},
	}
}

// Registry returns the underlying registry, for a host process to mount
// behind promhttp.HandlerFor.
func (s *PrometheusSink) Registry() *prometheus.Registry { return s.registry }

// Emit implements Sink, lazily registering one gauge per distinct key.
func (s *PrometheusSink) Emit(key string, value any) {
	g, ok := s.gauges[key]
	if !ok {
		g = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "heurisearch",
			Name:        sanitize(key),
			Help:        "search metrics trailer: " + key,
			ConstLabels: s.labels,
		})
		s.registry.MustRegister(g)
		s.gauges[key] = g
	}
	g.Set(toFloat(key, value))
}

func toFloat(key string, value any) float64 {
	switch v := value.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		return float64(len(v))
	default:
		return 0
	}
}

func sanitize(key string) string {
	out := make([]byte, 0, len(key))
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, byte(r))
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
