package common

import "github.com/prometheus/client_golang/prometheus"

const (
	HTTPRequestTotal           = "http_requests_total"
	HTTPRequestDurationSeconds = "http_request_duration_seconds"
	RaffleResolvedTotal        = "raffle_resolved_total"
	ChainCallFailureTotal      = "chain_call_failure_total"
)

var (
	PromCounters = map[string]*prometheus.CounterVec{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: HTTPRequestTotal,
			Help: "Count of all HTTP requests",
		}, []string{"path", "status_code"}),
		RaffleResolvedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: RaffleResolvedTotal,
			Help: "Count of raffles whose winner is stored",
		}, []string{"status"}),
		ChainCallFailureTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ChainCallFailureTotal,
			Help: "Count of all failed contract calls",
		}, []string{"method"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: HTTPRequestDurationSeconds,
			Help: "Duration of all HTTP requests",
		}, []string{"path", "status_code"}),
	}
)
