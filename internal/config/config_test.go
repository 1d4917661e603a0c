package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	content := `
[llm]
provider = "gemini"
model = "gemini-1.5-flash"

[server]
log_level = "debug"
max_claim_chars = 300

[evidence]
mode = "keyword"
max_items = 4

[cache]
enabled = true
addr = "localhost:6379"
ttl_minutes = 90

[credibility]
high_trust = ["reuters.com"]
low_trust = ["example-tabloid.com"]

[prompts]
evidence = "claim: %s evidence: %s"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.Model)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 300, cfg.Server.MaxClaimChars)
	assert.Equal(t, "keyword", cfg.Evidence.Mode)
	assert.Equal(t, 4, cfg.Evidence.MaxItems)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 90, cfg.Cache.TTLMinutes)
	assert.Equal(t, []string{"reuters.com"}, cfg.Credibility.HighTrust)
	assert.Equal(t, "claim: %s evidence: %s", cfg.Prompts.Evidence)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does/not/exist.toml")
	assert.Error(t, err)
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[llm\nprovider = "), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
