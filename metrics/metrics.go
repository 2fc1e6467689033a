// Package metrics provides Prometheus observability metrics for the investment calculator.
// It includes Critical and Important metrics for business and operational visibility.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// =============================================================================
// CRITICAL METRICS - Business Impact Visibility
// =============================================================================

// RecommendationsTotal counts recommendations by chosen action.
// A rising optimize_costs count means the baseline CAC is over the ceiling.
var RecommendationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "calculator",
	Name:      "recommendations_total",
	Help:      "Total investment recommendations by action",
}, []string{"action"})

// IncrementalSales tracks the gated incremental sales of the last recommendation.
var IncrementalSales = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "calculator",
	Name:      "incremental_sales",
	Help:      "Incremental sales per lever after the CAC gate, for the last recommendation",
}, []string{"lever"})

// BaselineCAC tracks the baseline customer acquisition cost.
// Set to -1 when the baseline has no conversions.
var BaselineCAC = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "calculator",
	Name:      "baseline_cac_dollars",
	Help:      "Baseline customer acquisition cost (-1 when undefined)",
})

// CapacityUtilization tracks handled leads over agent capacity for the baseline.
var CapacityUtilization = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "calculator",
	Name:      "capacity_utilization_ratio",
	Help:      "Share of baseline agent capacity used by handled leads",
})

// =============================================================================
// IMPORTANT METRICS - Operational Health
// =============================================================================

// ScenariosEvaluatedTotal counts scenario evaluations by kind.
var ScenariosEvaluatedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "scenario",
	Name:      "evaluations_total",
	Help:      "Total scenario evaluations by kind",
}, []string{"kind"})

// UndefinedCACTotal counts evaluations that produced no conversions.
var UndefinedCACTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "scenario",
	Name:      "undefined_cac_total",
	Help:      "Scenario evaluations whose CAC was undefined due to zero conversions",
})

// SeriesDurationSeconds tracks time to evaluate a scenario series.
var SeriesDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "scenario",
	Name:      "series_duration_seconds",
	Help:      "Time taken to evaluate a scenario series",
	Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
})

// RecommendationDurationSeconds tracks time to produce a recommendation.
var RecommendationDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "calculator",
	Name:      "recommendation_duration_seconds",
	Help:      "Time taken to produce an investment recommendation",
	Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
})

// ConfigErrorsTotal tracks configuration and tier table errors by field.
var ConfigErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "config",
	Name:      "errors_total",
	Help:      "Total configuration errors by field",
}, []string{"field"})

// ParserRecordsTotal tracks tier table records successfully parsed.
var ParserRecordsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "records_total",
	Help:      "Total tier table records successfully parsed",
})

// =============================================================================
// Helper Functions
// =============================================================================

// ResetRecommendationGauges clears gauges that describe a single recommendation.
// Call this before publishing a new recommendation.
func ResetRecommendationGauges() {
	IncrementalSales.Reset()
	BaselineCAC.Set(0)
	CapacityUtilization.Set(0)
}
