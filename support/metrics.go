package support

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// recordTextLimit bounds the stored prefix of the original and translated
// text for storage economy
const recordTextLimit = 100

// ErrNoQueries is returned by Summarize when nothing has been logged yet
var ErrNoQueries = errors.New("no queries processed yet")

// QueryRecord is one logged entry of a processed query. Records are
// append-only and never mutated.
type QueryRecord struct {
	ID           string
	Timestamp    time.Time
	Language     string
	Original     string
	Translation  string
	Confidence   float64
	ResponseTime float64 // seconds
}

// LanguageCount is one entry of the per-language breakdown
type LanguageCount struct {
	Language string
	Count    int
}

// Summary is a read-only projection over the logged records
type Summary struct {
	TotalQueries    int
	SessionDuration time.Duration
	Languages       []LanguageCount
	AvgConfidence   float64
	AvgResponseTime float64
}

// Metrics aggregates per-query records for the lifetime of the process
type Metrics struct {
	mu        sync.RWMutex
	records   []QueryRecord
	startTime time.Time
}

// NewMetrics creates an empty collector; session duration is measured from
// this moment
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// LogQuery appends a record for one processed query. The text fields are
// truncated to a bounded prefix; logging cannot fail.
func (m *Metrics) LogQuery(languageName, original, translation string, confidence, responseTime float64) {
	record := QueryRecord{
		ID:           uuid.New().String(),
		Timestamp:    time.Now(),
		Language:     languageName,
		Original:     truncate(original, recordTextLimit),
		Translation:  truncate(translation, recordTextLimit),
		Confidence:   confidence,
		ResponseTime: responseTime,
	}

	m.mu.Lock()
	m.records = append(m.records, record)
	m.mu.Unlock()
}

// Records returns a copy of the logged records in insertion order
func (m *Metrics) Records() []QueryRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]QueryRecord, len(m.records))
	copy(records, m.records)
	return records
}

// Summarize computes session statistics over the logged records. It returns
// ErrNoQueries when nothing has been logged, which is distinct from a
// zero-valued summary.
func (m *Metrics) Summarize() (*Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.records) == 0 {
		return nil, ErrNoQueries
	}

	counts := make(map[string]int)
	var order []string
	var confidenceSum, timeSum float64
	for _, record := range m.records {
		if _, seen := counts[record.Language]; !seen {
			order = append(order, record.Language)
		}
		counts[record.Language]++
		confidenceSum += record.Confidence
		timeSum += record.ResponseTime
	}

	// Descending by count; the stable sort keeps first-seen order for ties
	languages := make([]LanguageCount, 0, len(order))
	for _, lang := range order {
		languages = append(languages, LanguageCount{Language: lang, Count: counts[lang]})
	}
	sort.SliceStable(languages, func(i, j int) bool {
		return languages[i].Count > languages[j].Count
	})

	total := len(m.records)
	return &Summary{
		TotalQueries:    total,
		SessionDuration: time.Since(m.startTime),
		Languages:       languages,
		AvgConfidence:   confidenceSum / float64(total),
		AvgResponseTime: timeSum / float64(total),
	}, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
