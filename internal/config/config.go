package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/catalog"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/llm"
)

// Config is the full process configuration, constructed once at startup and
// passed into each client constructor. Business logic never reads the
// environment on its own.
type Config struct {
	Search catalog.Config
	OpenAI llm.Config
}

// SearchEnabled reports whether the required search trio is configured.
func (c Config) SearchEnabled() bool { return c.Search.Configured() }

// EnrichEnabled reports whether the optional generation trio is configured.
func (c Config) EnrichEnabled() bool { return c.OpenAI.Configured() }

// Load reads configuration from the environment, consulting a local .env
// file first if one exists. Unset values leave the corresponding feature
// disabled rather than failing.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Search: catalog.DefaultConfig(),
		OpenAI: llm.DefaultConfig(),
	}

	cfg.Search.Endpoint = os.Getenv("AZURE_SEARCH_ENDPOINT")
	cfg.Search.Key = os.Getenv("AZURE_SEARCH_KEY")
	cfg.Search.Index = os.Getenv("AZURE_SEARCH_INDEX")

	cfg.OpenAI.Endpoint = os.Getenv("AZURE_OPENAI_ENDPOINT")
	cfg.OpenAI.Key = os.Getenv("AZURE_OPENAI_KEY")
	cfg.OpenAI.Deployment = os.Getenv("AZURE_OPENAI_DEPLOYMENT")

	if v := os.Getenv("KIDSGUIDE_SEARCH_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Search.TimeoutMs = n
		}
	}
	if v := os.Getenv("KIDSGUIDE_GENERATION_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.OpenAI.TimeoutMs = n
		}
	}
	if v := os.Getenv("KIDSGUIDE_LOG_CALLS"); v != "" {
		cfg.OpenAI.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
