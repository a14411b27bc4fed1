package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	metrics *metrics
}

type metrics struct {
	registry    *prometheus.Registry
	classified  *prometheus.CounterVec
	comparisons *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		classified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hands_classified_total",
			Help: "hands classified, by category",
		}, []string{"category"}),
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "comparisons_total",
			Help: "hand comparisons, by result",
		}, []string{"result"}),
	}

	m.registry.MustRegister(m.classified, m.comparisons)
	return m
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		metrics: newMetrics(),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/hand/classify").Handler(this.postHandClassify())
	r.Methods(http.MethodPost).Path("/hand/compare").Handler(this.postHandCompare())
	r.Methods(http.MethodGet).Path("/metrics").Handler(promhttp.HandlerFor(this.metrics.registry, promhttp.HandlerOpts{}))

	return this
}
