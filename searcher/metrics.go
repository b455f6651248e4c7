package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64
	Cutoffs   int64
	Workers   int
}

// MetricsCollector counts search work. Implementations are safe for concurrent workers.
type MetricsCollector interface {
	Start(workers int)
	AddNode()
	AddCutoff()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime time.Time
	workers   int
	nodes     atomic.Int64
	cutoffs   atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(workers int) {
	m.startTime = time.Now()
	m.workers = workers
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes.Load(),
		Cutoffs:   m.cutoffs.Load(),
		Workers:   m.workers,
	}
}
