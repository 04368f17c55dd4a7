package support

import (
	"context"
	"fmt"
	"time"
)

// QueryResult is the structured outcome of one processed query
type QueryResult struct {
	Original     string
	Language     string
	English      string
	Confidence   float64
	Response     string
	ResponseTime float64 // seconds
}

// Pipeline orchestrates one query start-to-finish: detect the language,
// translate to English, generate a support reply, record metrics. It is the
// single orchestration point; the components never call each other directly.
type Pipeline struct {
	detector   LanguageDetector
	translator *Translator
	responder  *Responder
	metrics    *Metrics
}

// NewPipeline creates a Pipeline with the given configuration
func NewPipeline(cfg Config) (*Pipeline, error) {
	cfg.applyDefaults()

	if cfg.CompletionClient == nil {
		return nil, fmt.Errorf("CompletionClient is required")
	}
	if cfg.Detector == nil {
		return nil, fmt.Errorf("Detector is required")
	}

	return &Pipeline{
		detector:   cfg.Detector,
		translator: NewTranslator(cfg.CompletionClient),
		responder:  NewResponder(cfg.CompletionClient),
		metrics:    cfg.Metrics,
	}, nil
}

// Process runs one query through the full pipeline. It always returns a
// result: remote failures surface as error text inside the result, never as
// an aborted query.
func (p *Pipeline) Process(ctx context.Context, raw string) *QueryResult {
	start := time.Now()

	code := p.detector.Detect(raw)
	languageName := LanguageName(code)

	english, confidence := p.translator.Translate(ctx, raw, code)
	response := p.responder.Reply(ctx, english)

	elapsed := time.Since(start).Seconds()
	p.metrics.LogQuery(languageName, raw, english, confidence, elapsed)

	return &QueryResult{
		Original:     raw,
		Language:     languageName,
		English:      english,
		Confidence:   confidence,
		Response:     response,
		ResponseTime: elapsed,
	}
}

// Metrics exposes the session collector for summary rendering
func (p *Pipeline) Metrics() *Metrics {
	return p.metrics
}
