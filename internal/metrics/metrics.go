package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesTotal counts relationship queries, labeled by relation kind.
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "familytree_queries_total",
			Help: "Total number of relationship queries answered",
		},
		[]string{"relation"},
	)

	// MutationsTotal counts tree mutations by operation and outcome ("ok" or the rejection reason).
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "familytree_mutations_total",
			Help: "Total number of family tree mutations attempted",
		},
		[]string{"op", "result"},
	)

)

var familiesOpts = prometheus.GaugeOpts{
	Name: "familytree_families",
	Help: "Number of families registered in the served tree",
}

// WatchFamilies exports count as the families gauge on the default registry,
// replacing any tree watched before.
func WatchFamilies(count func() int) (prometheus.GaugeFunc, error) {
	g := prometheus.NewGaugeFunc(familiesOpts, func() float64 { return float64(count()) })
	prometheus.Unregister(g)
	if err := prometheus.Register(g); err != nil {
		return nil, err
	}
	return g, nil
}
