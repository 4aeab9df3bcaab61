package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsRouted = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "contractassist", Name: "requests_total", Help: "Number of assistant requests by routed intent."},
		[]string{"intent"},
	)
	GenerationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "contractassist", Name: "generation_failures_total", Help: "Number of failed generation backend calls."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RequestsRouted)
	reg.MustRegister(GenerationFailures)
}
