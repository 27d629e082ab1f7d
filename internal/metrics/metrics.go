// Package metrics exposes Prometheus counters for the wallet ledger.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ewallet_transfers_total",
		Help: "Transfer attempts by kind and outcome.",
	}, []string{"kind", "status"})

	scansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ewallet_token_scans_total",
		Help: "Token presentations by outcome.",
	}, []string{"status"})

	commitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ewallet_transfer_commit_seconds",
		Help:    "Latency of atomic transfer commits.",
		Buckets: prometheus.DefBuckets,
	})
)

// TransferCommitted records a successful transfer commit and its latency.
func TransferCommitted(kind string, elapsed time.Duration) {
	transfersTotal.WithLabelValues(kind, "committed").Inc()
	commitDuration.Observe(elapsed.Seconds())
}

// TransferAborted records a failed transfer attempt.
func TransferAborted(kind string) {
	transfersTotal.WithLabelValues(kind, "aborted").Inc()
}

// ScanRecorded records a token presentation outcome.
func ScanRecorded(ok bool) {
	status := "ok"
	if !ok {
		status = "rejected"
	}
	scansTotal.WithLabelValues(status).Inc()
}
