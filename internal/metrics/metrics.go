package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	PlantsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantsPlanted,
			Help: HelpTextPlantsPlanted,
		},
		[]string{LabelPlant},
	)

	HarvestsCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvestsCollected,
			Help: HelpTextHarvestsCollected,
		},
		[]string{LabelPlant},
	)

	ItemsCrafted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsCrafted,
			Help: HelpTextItemsCrafted,
		},
		[]string{LabelRecipe},
	)

	ResourcesDumped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResourcesDumped,
			Help: HelpTextResourcesDumped,
		},
		[]string{LabelResource},
	)

	SlotsPurchased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlotsPurchased,
			Help: HelpTextSlotsPurchased,
		},
	)

	WorkersHired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWorkersHired,
			Help: HelpTextWorkersHired,
		},
	)

	TonEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTonEarned,
			Help: HelpTextTonEarned,
		},
	)

	TonWithdrawn = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTonWithdrawn,
			Help: HelpTextTonWithdrawn,
		},
	)

	TonBurned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTonBurned,
			Help: HelpTextTonBurned,
		},
	)
)
