package config

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for the search read path. Registered on the
// default registry; exposed by main.go on /metrics.
var (
	SearchCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_search_cache_hits_total",
		Help: "Search responses served from the Redis cache.",
	})

	SearchCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_search_cache_misses_total",
		Help: "Search responses computed against the database.",
	})

	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_search_duration_seconds",
		Help:    "Wall time of the filtered product search pipeline.",
		Buckets: prometheus.DefBuckets,
	})

	FacetDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_facet_duration_seconds",
		Help:    "Wall time of facet aggregation.",
		Buckets: prometheus.DefBuckets,
	})
)
