// Package metrics exposes prometheus collectors for lookups and bot commands.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes.
const (
	OutcomeSpecial  = "special"
	OutcomeFound    = "found"
	OutcomeFallback = "fallback"
	OutcomeNotFound = "not_found"
)

// Collector records lookup and command activity.
type Collector struct {
	lookups        *prometheus.CounterVec
	lookupDuration *prometheus.HistogramVec
	commands       *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		lookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dictbot_lookups_total",
			Help: "Word lookups by outcome.",
		}, []string{"outcome"}),
		lookupDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dictbot_lookup_duration_seconds",
			Help:    "Time spent resolving a word, including rate gate waits.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"outcome"}),
		commands: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dictbot_commands_total",
			Help: "Bot commands handled, by command and result.",
		}, []string{"command", "result"}),
	}
}

// ObserveLookup records one finished lookup.
func (c *Collector) ObserveLookup(outcome string, d time.Duration) {
	c.lookups.WithLabelValues(outcome).Inc()
	c.lookupDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// ObserveCommand records one handled command.
func (c *Collector) ObserveCommand(command, result string) {
	c.commands.WithLabelValues(command, result).Inc()
}
