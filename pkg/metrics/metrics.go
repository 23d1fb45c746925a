package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "profilesite"

	metricLabelKind    = "kind"
	metricLabelStatus  = "status"
	metricLabelTrigger = "trigger"
)

// Metrics is the structure that holds all prometheus metrics
var (
	// BuildsCompletedCounter count the number of successful builds
	BuildsCompletedCounter = newCounterVec(
		"builds_completed_count",
		"Number of builds that were successfully completed",
		metricLabelTrigger,
	)
	// BuildsFailedCounter count the number of builds that had an error
	BuildsFailedCounter = newCounterVec(
		"builds_failed_count",
		"Number of builds that failed due to an error",
		metricLabelTrigger, metricLabelKind,
	)
	// BuildDuration observe the duration of each build
	BuildDuration = newSummaryVec(
		"build_duration_seconds",
		"Duration in seconds for each build",
		metricLabelTrigger,
	)
	// BuildsRejectedCounter count rebuild requests coalesced into a running build
	BuildsRejectedCounter = newCounterVec(
		"builds_rejected_count",
		"Number of rebuild requests dropped because a build was already queued",
	)
	// SectionsGauge number of sections in the last successful build
	SectionsGauge = newGaugeVec(
		"sections_total",
		"Number of sections rendered by the last successful build",
	)
	// ItemsGauge number of items in the last successful build
	ItemsGauge = newGaugeVec(
		"items_total",
		"Number of items rendered by the last successful build",
	)
	// PreviewRequestCounter count the number of preview requests
	PreviewRequestCounter = newCounterVec(
		"preview_request_count",
		"Count of preview requests",
		metricLabelStatus,
	)
)

func newSummaryVec(name, help string, labels ...string) *prometheus.SummaryVec {
	vec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}

func newCounterVec(name, help string, labels ...string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}

func newGaugeVec(name, help string, labels ...string) *prometheus.GaugeVec {
	vec := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}
