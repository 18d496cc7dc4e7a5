package services

import "github.com/prometheus/client_golang/prometheus"

var (
	lookupCacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_cache_hits_total",
			Help: "The total number of lookups answered from the in-process cache",
		},
		[]string{"cache"},
	)

	lookupCacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_cache_misses_total",
			Help: "The total number of lookups that had to run the aggregation queries",
		},
		[]string{"cache"},
	)
)

func init() {
	prometheus.MustRegister(lookupCacheHits)
	prometheus.MustRegister(lookupCacheMisses)
}
