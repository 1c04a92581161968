package sidebar

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/geodemc/geode/metrics"
)

const namespace = "sidebar"

var (
	renderedScores = metrics.NewCounter(
		"scores",
		namespace,
		"number of score payloads produced by render passes",
		[]string{"op"},
	)
	addedScores   = renderedScores.WithLabelValues("add")
	removedScores = renderedScores.WithLabelValues("remove")

	displayedEntries = metrics.NewGauge(
		"entries",
		namespace,
		"number of entries currently displayed",
		[]string{},
	).WithLabelValues()

	renderDuration = metrics.NewHistogramWithBuckets(
		"render_duration_seconds",
		namespace,
		"duration of a single render pass",
		[]string{},
		prometheus.ExponentialBuckets(0.000001, 4, 10),
	).WithLabelValues()
)
