package support

// Config holds configuration for the Pipeline
type Config struct {
	// CompletionClient performs remote text generation. Required.
	CompletionClient CompletionClient

	// Detector classifies input text into a language code. Required.
	Detector LanguageDetector

	// Metrics collects per-query records. If nil, a fresh collector is used.
	Metrics *Metrics
}

// applyDefaults fills in default values for unset config fields
func (c *Config) applyDefaults() {
	if c.Metrics == nil {
		c.Metrics = NewMetrics()
	}
}
