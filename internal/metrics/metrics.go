package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	scheduleValidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "menuboard",
			Name:      "schedule_validations_total",
			Help:      "Count of schedule validations by result.",
		},
		[]string{"result"},
	)

	availabilityChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "menuboard",
			Name:      "availability_checks_total",
			Help:      "Count of availability evaluations by outcome.",
		},
		[]string{"outcome"},
	)

	labelCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "menuboard",
			Name:      "label_cache_total",
			Help:      "Count of display-label cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(scheduleValidations, availabilityChecks, labelCache)
	})
}

func IncValidation(ok bool) {
	result := "ok"
	if !ok {
		result = "invalid"
	}
	scheduleValidations.WithLabelValues(result).Inc()
}

func IncAvailabilityCheck(open bool) {
	outcome := "closed"
	if open {
		outcome = "open"
	}
	availabilityChecks.WithLabelValues(outcome).Inc()
}

func IncLabelCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	labelCache.WithLabelValues(result).Inc()
}
