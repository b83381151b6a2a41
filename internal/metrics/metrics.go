// Package metrics exposes engine activity as prometheus counters.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nixie-Tech-LLC/marquee/internal/engine"
	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

type Collector struct {
	materialized *prometheus.CounterVec
	diagnostics  *prometheus.CounterVec
	snoozes      prometheus.Counter
	republished  prometheus.Counter
	reorders     *prometheus.CounterVec
}

var _ engine.Metrics = (*Collector)(nil)

// NewCollector builds the counters and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		materialized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marquee_rows_materialized_total",
			Help: "Row views computed, by whether rotation applied.",
		}, []string{"rotated"}),
		diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marquee_diagnostics_total",
			Help: "Bad stored values the engine degraded around.",
		}, []string{"kind"}),
		snoozes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marquee_slides_snoozed_total",
			Help: "Slides temporarily unpublished until the next republish hour.",
		}),
		republished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marquee_slides_republished_total",
			Help: "Slides whose temporary unpublish was cleared in bulk.",
		}),
		reorders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marquee_reorders_total",
			Help: "Committed reorders, by collection kind.",
		}, []string{"collection"}),
	}

	reg.MustRegister(c.materialized, c.diagnostics, c.snoozes, c.republished, c.reorders)
	return c
}

func (c *Collector) RecordMaterialized(rotated bool) {
	c.materialized.WithLabelValues(strconv.FormatBool(rotated)).Inc()
}

func (c *Collector) RecordDiagnostic(kind model.DiagnosticKind) {
	c.diagnostics.WithLabelValues(string(kind)).Inc()
}

func (c *Collector) RecordSnooze() { c.snoozes.Inc() }

func (c *Collector) RecordRepublish(count int) { c.republished.Add(float64(count)) }

func (c *Collector) RecordReorder(collection string) {
	c.reorders.WithLabelValues(collection).Inc()
}

// Handler serves the registry in the prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
