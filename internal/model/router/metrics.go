package router

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramInvocationTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "smartreceipts",
		Subsystem: "lambda",
		Name:      "invocation_seconds",
		Help:      "Handler invocation time by handler name and response status.",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	},
	[]string{"handler", "status"},
)

func observeInvocation(handler string, status int, elapsed time.Duration) {
	histogramInvocationTime.
		WithLabelValues(handler, strconv.Itoa(status)).
		Observe(elapsed.Seconds())
}
