package llm

// Config holds connection and sampling settings for the generation backend.
// It is constructed once at process start and passed into NewAzureClient;
// nothing in this package reads the environment.
type Config struct {
	Endpoint    string
	Key         string
	Deployment  string
	TimeoutMs   int
	Temperature float64
	MaxTokens   int
	LogCalls    bool
}

// Configured reports whether the optional endpoint/key/deployment trio is set.
func (c Config) Configured() bool {
	return c.Endpoint != "" && c.Key != "" && c.Deployment != ""
}

// DefaultConfig returns a Config with bounded creativity and the standard
// single-attempt timeout. Endpoint, key, and deployment stay empty, which
// leaves enrichment disabled.
func DefaultConfig() Config {
	return Config{
		TimeoutMs:   60000,
		Temperature: 0.3,
		MaxTokens:   800,
	}
}
