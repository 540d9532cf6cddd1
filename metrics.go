package matchengine

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matchengine_requests_total",
		Help: "Total inbound requests processed by the dispatch loop",
	}, []string{"type"})

	responsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matchengine_responses_total",
		Help: "Total responses emitted by the dispatch loop",
	}, []string{"type"})

	bookDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "matchengine_book_depth",
		Help: "Resting orders per symbol and side",
	}, []string{"symbol", "side"})
)

// Metrics exposes dispatch loop queue depths and the processed request
// count for tests and debug endpoints.
type Metrics struct {
	getInput  func() int
	getOutput func() int
	count     int64 // Used with atomic
}

func (m *Metrics) InputLen() int {
	if m.getInput == nil {
		return 0
	}
	return m.getInput()
}

func (m *Metrics) OutputLen() int {
	if m.getOutput == nil {
		return 0
	}
	return m.getOutput()
}

func (m *Metrics) Count() int64 {
	return atomic.LoadInt64(&m.count)
}

func (m *Metrics) incCount() {
	atomic.AddInt64(&m.count, 1)
}
