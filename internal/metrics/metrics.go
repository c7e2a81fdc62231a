// Package metrics exposes Prometheus instrumentation for the analysis
// engines. Collectors register on the default registry, so any process that
// serves promhttp picks them up without extra wiring.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	balanceRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "obito_balance_runs_total",
		Help: "Balance computations performed.",
	})
	balanceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "obito_balance_run_duration_seconds",
		Help:    "Time spent computing balances and settlements per run.",
		Buckets: prometheus.DefBuckets,
	})
	balanceGroupSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "obito_balance_group_size",
		Help:    "Members per balance run.",
		Buckets: prometheus.LinearBuckets(1, 1, 12),
	})
	balanceTransfers = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "obito_balance_transfers",
		Help:    "Settlement transfers generated per run.",
		Buckets: prometheus.LinearBuckets(0, 1, 12),
	})
	detectionRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "obito_detection_runs_total",
		Help: "Recurring-expense detection runs performed.",
	})
	detectionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "obito_detection_run_duration_seconds",
		Help:    "Time spent detecting recurring expenses per run.",
		Buckets: prometheus.DefBuckets,
	})
	detectionPatterns = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "obito_detection_patterns",
		Help:    "Recurring patterns found per run.",
		Buckets: prometheus.LinearBuckets(0, 1, 12),
	})
	expensesScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "obito_expenses_scanned_total",
		Help: "Expenses read across all analysis runs.",
	})
)

// ObserveBalanceRun records one balance computation.
func ObserveBalanceRun(d time.Duration, members, expenses, transfers int) {
	balanceRuns.Inc()
	balanceDuration.Observe(d.Seconds())
	balanceGroupSize.Observe(float64(members))
	balanceTransfers.Observe(float64(transfers))
	expensesScanned.Add(float64(expenses))
}

// ObserveDetection records one recurring-expense detection run.
func ObserveDetection(d time.Duration, expenses, patterns int) {
	detectionRuns.Inc()
	detectionDuration.Observe(d.Seconds())
	detectionPatterns.Observe(float64(patterns))
	expensesScanned.Add(float64(expenses))
}
