package fractional

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeDirect    = "direct"
	outcomeCollision = "collision"
	outcomeAppend    = "append"
)

var (
	appendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "fractional_appends_total",
		Help: "The total number of elements appended to a sequence",
	}, []string{"sequence"})

	insertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "fractional_inserts_total",
		Help: "The total number of inserts, by how the key was chosen",
	}, []string{"sequence", "outcome"})

	removalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "fractional_removals_total",
		Help: "The total number of elements removed from a sequence",
	}, []string{"sequence"})

	keySpaceExhausted = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "fractional_key_space_exhausted_total",
		Help: "The total number of inserts rejected because no key could be represented",
	}, []string{"sequence"})

	keyDenominatorBits = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "fractional_key_denominator_bits",
		Help:    "Bit length of the denominator of each newly assigned key",
		Buckets: prometheus.LinearBuckets(8, 8, 8), //nolint:mnd
	}, []string{"sequence"})
)
