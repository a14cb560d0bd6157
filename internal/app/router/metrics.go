package router

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK          = "ok"
	outcomeBadRequest  = "bad_request"
	outcomeUnavailable = "unavailable"
	outcomeNoEntry     = "no_entry"
	outcomeUpstream    = "upstream_error"
)

var (
	lookupCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wowcpe",
		Name:      "lookups_total",
		Help:      "Number of playlist lookups by outcome.",
	}, []string{"outcome"})

	lookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "wowcpe",
		Name:      "lookup_duration_seconds",
		Help:      "Duration of a playlist lookup, including the page fetch.",
		Buckets:   prometheus.DefBuckets,
	})
)
