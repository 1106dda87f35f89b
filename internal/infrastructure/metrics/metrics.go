// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Piiquante/internal/usecase/contract"
)

const namespace = "piiquante"

// VoteMetrics records vote outcomes and latency.
type VoteMetrics struct {
	votes    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ usecasecontract.IVoteRecorder = (*VoteMetrics)(nil)

func NewVoteMetrics(reg prometheus.Registerer) *VoteMetrics {
	factory := promauto.With(reg)
	return &VoteMetrics{
		votes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_total",
			Help:      "Vote requests by direction and result.",
		}, []string{"direction", "result"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "vote_duration_seconds",
			Help:      "Time spent applying a vote, lock wait included.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
	}
}

func (m *VoteMetrics) ObserveVote(direction entity.VoteDirection, result string, seconds float64) {
	m.votes.WithLabelValues(direction.String(), result).Inc()
	m.duration.WithLabelValues(result).Observe(seconds)
}

// Votes exposes the counter for tests.
func (m *VoteMetrics) Votes() *prometheus.CounterVec { return m.votes }

// HTTPMetrics counts served requests.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	return &HTTPMetrics{
		requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
	}
}

func (m *HTTPMetrics) ObserveRequest(method, route, status string) {
	m.requests.WithLabelValues(method, route, status).Inc()
}

// Requests exposes the counter for tests.
func (m *HTTPMetrics) Requests() *prometheus.CounterVec { return m.requests }
