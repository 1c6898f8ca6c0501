// Package metrics defines prometheus instrumentation for the dashboard.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterScanCycleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zappie",
		Subsystem: "zap_ingester",
		Name:      "scan_cycle_total",
		Help:      "Count of wallet scan cycles.",
	}, []string{"status"})

	ingesterScanCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zappie",
		Subsystem: "zap_ingester",
		Name:      "scan_cycle_duration_seconds",
		Help:      "Duration of a full wallet scan cycle.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	ingesterScanCycleWallets = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "zappie",
		Subsystem: "zap_ingester",
		Name:      "scan_cycle_wallets",
		Help:      "Number of wallets visited per scan cycle.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	})

	ingesterScanWalletTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zappie",
		Subsystem: "zap_ingester",
		Name:      "scan_wallet_total",
		Help:      "Count of per-wallet payment fetches.",
	}, []string{"status"})

	ingesterScanWalletDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zappie",
		Subsystem: "zap_ingester",
		Name:      "scan_wallet_duration_seconds",
		Help:      "Duration of fetching and normalizing one wallet.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	ingesterRecordsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "zappie",
		Subsystem: "zap_ingester",
		Name:      "records_ingested_total",
		Help:      "Count of normalized transactions added to the session.",
	})

	ingesterRecordsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "zappie",
		Subsystem: "zap_ingester",
		Name:      "records_rejected_total",
		Help:      "Count of raw payment records rejected during normalization.",
	})
)

// ZapIngester records metrics for the zap ingestion loop.
type ZapIngester struct{}

// NewZapIngester returns a ZapIngester metrics recorder.
func NewZapIngester() *ZapIngester {
	return &ZapIngester{}
}

func (m ZapIngester) ObserveScanCycle(err error, wallets int, started time.Time) {
	status := statusLabel(err)
	ingesterScanCycleTotal.WithLabelValues(status).Inc()
	ingesterScanCycleDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	ingesterScanCycleWallets.Observe(float64(wallets))
}

func (m ZapIngester) ObserveScanWallet(err error, started time.Time) {
	status := statusLabel(err)
	ingesterScanWalletTotal.WithLabelValues(status).Inc()
	ingesterScanWalletDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

func (m ZapIngester) AddIngested(count int) {
	ingesterRecordsIngested.Add(float64(count))
}

func (m ZapIngester) AddRejected(count int) {
	ingesterRecordsRejected.Add(float64(count))
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
