package search

import (
	"github.com/simon-stahlberg/mimir-sub009/internal/stats"
)

// Metrics accumulates running statistics over a single FindSolution call.
// The zero value is ready to use; pass a *Metrics to FindSolution to have it
// populated, or nil to skip the bookkeeping entirely.
type Metrics struct {
	branching stats.Mean
	fValue    *stats.Median
}

// NewMetrics returns a Metrics whose median f-value covers the f-values of
// the last historySize expansions; a historySize below 100 is raised to
// 100 (see stats.NewMedian).
func NewMetrics(historySize int) *Metrics {
	if historySize < 100 {
		historySize = 100
	}
	return &Metrics{fValue: stats.NewMedian(historySize)}
}

// recordExpansion is called once per popped-and-expanded node, with the
// number of applicable actions found and the f-value it was popped at.
func (m *Metrics) recordExpansion(numSuccessors int, f float64) {
	if m == nil {
		return
	}
	m.branching.Record(float64(numSuccessors))
	if m.fValue != nil {
		m.fValue.Record(f)
	}
}

// MeanBranchingFactor returns the average number of applicable actions
// found per expanded node so far.
func (m *Metrics) MeanBranchingFactor() float64 {
	if m == nil {
		return 0
	}
	return m.branching.Get()
}

// MedianFValue returns the median f-value (g+h) among expanded nodes,
// which tends to track search progress more robustly than the mean when a
// few outlier states have pathological heuristic estimates.
func (m *Metrics) MedianFValue() float64 {
	if m == nil || m.fValue == nil {
		return 0
	}
	return m.fValue.Get()
}
