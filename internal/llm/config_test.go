package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearKeyEnv unsets every env var the config layer reads, so tests
// are insulated from the developer's shell.
func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"TAKSA_LLM_PROVIDER",
		"TAKSA_GEMINI_API_KEY", "TAKSA_GEMINI_MODEL",
		"TAKSA_OPENAI_API_KEY", "TAKSA_OPENAI_MODEL", "TAKSA_OPENAI_BASE_URL",
		"TAKSA_ANTHROPIC_API_KEY", "TAKSA_ANTHROPIC_MODEL",
		"TAKSA_OPENROUTER_API_KEY", "TAKSA_OPENROUTER_MODEL",
		"GEMINI_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY",
		"ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(v, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-flash", cfg.Gemini.Model)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("TAKSA_LLM_PROVIDER", "openai")
	t.Setenv("TAKSA_OPENAI_API_KEY", "sk-test")
	t.Setenv("TAKSA_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	require.NoError(t, cfg.Validate())
}

func TestValidateMissingKey(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TAKSA_GEMINI_API_KEY")
}

func TestValidateUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "bard"

	assert.Error(t, cfg.Validate())
}

func TestValidateMockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	assert.NoError(t, cfg.Validate())
}

func TestDiscoverConfigGeminiFirst(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
}

func TestDiscoverConfigFallsThrough(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "a-key")

	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "a-key", cfg.Anthropic.APIKey)
}

func TestDiscoverConfigNothingSet(t *testing.T) {
	clearKeyEnv(t)

	_, ok := DiscoverConfig()
	assert.False(t, ok)
}
