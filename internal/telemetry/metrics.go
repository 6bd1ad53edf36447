package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricSelections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spool",
		Name:      "topic_selections_total",
		Help:      "Topic selections that changed the displayed topic.",
	}, []string{"surface", "topic"})
	metricViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spool",
		Name:      "topic_views_total",
		Help:      "Topic pages served, the default topic included.",
	}, []string{"surface", "topic"})
	metricRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spool",
		Name:      "page_renders_total",
		Help:      "Topic browser pages rendered.",
	}, []string{"surface"})
)
