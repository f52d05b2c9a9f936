package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
)

var reconciliations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_reconciliations_total",
		Help: "How many category deltas were applied, partitioned by outcome.",
	},
	[]string{"outcome"},
)

const (
	outcomeApplied  = "applied"
	outcomeDangling = "dangling"
)

// Metrics returns the Prometheus collectors of the ledger.
func Metrics() []prometheus.Collector {
	return []prometheus.Collector{reconciliations}
}
