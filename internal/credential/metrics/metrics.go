package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	CredentialsIssued prometheus.Counter
	IssueFailures     *prometheus.CounterVec
	IssueDuration     prometheus.Histogram
	WalletsVerified   prometheus.Counter
	LedgerSubmitTime  prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		CredentialsIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "credchain_credentials_issued_total",
			Help: "Total number of credentials issued on-chain",
		}),
		IssueFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "credchain_issue_failures_total",
			Help: "Issuance failures by domain error code",
		}, []string{"code"}),
		IssueDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "credchain_issue_duration_seconds",
			Help:    "End-to-end duration of issuance (metadata store + ledger submit)",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		WalletsVerified: promauto.NewCounter(prometheus.CounterOpts{
			Name: "credchain_wallets_verified_total",
			Help: "Total number of wallet verification lookups",
		}),
		LedgerSubmitTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "credchain_ledger_submit_duration_seconds",
			Help:    "Duration of ledger transaction submissions",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

func (m *Metrics) ObserveIssue(start time.Time) {
	m.IssueDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveSubmit(start time.Time) {
	m.LedgerSubmitTime.Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementIssued() {
	m.CredentialsIssued.Inc()
}

func (m *Metrics) IncrementIssueFailure(code string) {
	m.IssueFailures.WithLabelValues(code).Inc()
}

func (m *Metrics) IncrementVerified() {
	m.WalletsVerified.Inc()
}
