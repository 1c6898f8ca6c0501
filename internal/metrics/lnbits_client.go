package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lnbitsRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zappie",
		Subsystem: "lnbits_client",
		Name:      "operations_total",
		Help:      "Count of LNbits API operations.",
	}, []string{"operation", "status"})

	lnbitsRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zappie",
		Subsystem: "lnbits_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of LNbits API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// LNbitsClient records metrics for LNbits API calls.
type LNbitsClient struct{}

// NewLNbitsClient returns an LNbits client metrics recorder.
func NewLNbitsClient() *LNbitsClient {
	return &LNbitsClient{}
}

func (m LNbitsClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	lnbitsRequestsTotal.WithLabelValues(operation, status).Inc()
	lnbitsRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
