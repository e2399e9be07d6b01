package sorter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeChanged    = "changed"
	outcomeUnchanged  = "unchanged"
	outcomeUnsortable = "unsortable"
)

var (
	selectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorter_selections_total",
		Help: "Total number of header selections by sorter and outcome (changed, unchanged or unsortable)",
	}, []string{"sorter", "outcome"})

	sortsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorter_sorts_total",
		Help: "Total number of sorts applied by sorter and direction",
	}, []string{"sorter", "direction"})

	sortItems = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "sorter_sort_items",
		Help:    "Number of items in each applied sort",
		Buckets: prometheus.ExponentialBuckets(2, 4, 8),
	}, []string{"sorter"})
)

func sanitizeName(name string) string {
	if name == "" {
		return "default"
	}

	return name
}
