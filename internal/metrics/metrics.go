package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	CandidatesCollected int64
	ArticlesAnalyzed    int64
	ExtractionFailures  int64
	ModelCalls          int64
	ModelFailures       int64
	ReportsEmailed      int64

	// Timings
	LastRunDuration    time.Duration
	AverageRunDuration time.Duration
	TotalRunDuration   time.Duration
	RunCount           int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) AddCandidates(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CandidatesCollected += int64(n)
}

func (m *Metrics) IncrementArticlesAnalyzed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesAnalyzed++
}

func (m *Metrics) IncrementExtractionFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExtractionFailures++
}

func (m *Metrics) IncrementModelCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ModelCalls++
}

func (m *Metrics) IncrementModelFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ModelFailures++
}

func (m *Metrics) IncrementReportsEmailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReportsEmailed++
}

func (m *Metrics) RecordRunDuration(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastRunDuration = duration
	m.TotalRunDuration += duration
	m.RunCount++

	if m.RunCount > 0 {
		m.AverageRunDuration = m.TotalRunDuration / time.Duration(m.RunCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"candidates_collected":    m.CandidatesCollected,
		"articles_analyzed":       m.ArticlesAnalyzed,
		"extraction_failures":     m.ExtractionFailures,
		"model_calls":             m.ModelCalls,
		"model_failures":          m.ModelFailures,
		"reports_emailed":         m.ReportsEmailed,
		"last_run_duration_ms":    m.LastRunDuration.Milliseconds(),
		"average_run_duration_ms": m.AverageRunDuration.Milliseconds(),
		"last_run_time":           m.LastRunTime.Format(time.RFC3339),
		"last_error_time":         m.LastErrorTime.Format(time.RFC3339),
		"last_error":              m.LastError,
		"is_healthy":              m.IsHealthy,
	}
}
