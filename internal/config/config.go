package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// VerificationPrompts holds the prompt templates used by the judge.
// Evidence is used when locally gathered evidence is injected into the
// prompt; Grounded is used when retrieval is delegated to the model's
// web-search tool. Both are fmt.Sprintf templates.
type VerificationPrompts struct {
	Evidence string `toml:"evidence"`
	Grounded string `toml:"grounded"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type ServerConfig struct {
	LogLevel       string   `toml:"log_level"`
	AllowedOrigins []string `toml:"allowed_origins"`
	RateLimitRPS   float64  `toml:"rate_limit_rps"`
	RateLimitBurst int      `toml:"rate_limit_burst"`
	MaxClaimChars  int      `toml:"max_claim_chars"`
}

type EvidenceConfig struct {
	Mode     string `toml:"mode"`
	MaxItems int    `toml:"max_items"`
}

type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLMinutes int    `toml:"ttl_minutes"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type CredibilityConfig struct {
	HighTrust []string `toml:"high_trust"`
	LowTrust  []string `toml:"low_trust"`
}

type EnrichConfig struct {
	Enabled        bool `toml:"enabled"`
	MaxFetches     int  `toml:"max_fetches"`
	TimeoutSeconds int  `toml:"timeout_seconds"`
}

type SchedulerConfig struct {
	Enabled bool   `toml:"enabled"`
	Spec    string `toml:"spec"`
}

type Config struct {
	LLM         LLMConfig           `toml:"llm"`
	Server      ServerConfig        `toml:"server"`
	Evidence    EvidenceConfig      `toml:"evidence"`
	Cache       CacheConfig         `toml:"cache"`
	Memgraph    MemgraphConfig      `toml:"memgraph"`
	Credibility CredibilityConfig   `toml:"credibility"`
	Enrich      EnrichConfig        `toml:"enrich"`
	Scheduler   SchedulerConfig     `toml:"scheduler"`
	Prompts     VerificationPrompts `toml:"prompts"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}
