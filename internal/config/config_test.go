package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGeneratorConfig_Defaults(t *testing.T) {
	cfg := LoadGeneratorConfig()

	assert.Equal(t, ProviderGroq, cfg.Provider)
	assert.Equal(t, "llama3-8b-8192", cfg.GroqModel)
	assert.InDelta(t, 0.7, float64(cfg.Temperature), 0.001)
	assert.Equal(t, 300, cfg.MaxTokens)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
}

func TestLoadGeneratorConfig_Env(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "claude")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("LLM_MAX_TOKENS", "512")

	cfg := LoadGeneratorConfig()

	assert.Equal(t, ProviderClaude, cfg.Provider)
	assert.Equal(t, "sk-test", cfg.AnthropicAPIKey)
	assert.Equal(t, 512, cfg.MaxTokens)
}

func TestLoadSearchConfig_Defaults(t *testing.T) {
	cfg := LoadSearchConfig()

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "llama-3.1-sonar-small-128k-online", cfg.Model)
	assert.Equal(t, 5, cfg.ItemCount)
	assert.Equal(t, DefaultSearchQuery, cfg.DefaultQuery)
}

func TestEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("LLM_MAX_TOKENS", "not-a-number")

	cfg := LoadGeneratorConfig()

	assert.Equal(t, 300, cfg.MaxTokens)
}

func TestLoadCronConfig_Defaults(t *testing.T) {
	cfg := LoadCronConfig()

	assert.Equal(t, "0 * * * *", cfg.Schedule)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 9091, cfg.HealthPort)
}

func TestLoadCompanyProfile_EmbeddedDefault(t *testing.T) {
	profile, err := LoadCompanyProfile()
	require.NoError(t, err)

	assert.Equal(t, "Fleete", profile.Name)
	assert.NotEmpty(t, profile.Industry)
	assert.NotEmpty(t, profile.TargetAudience)
	assert.Len(t, profile.UniqueSellingPoints, 7)
	require.Len(t, profile.Solutions, 3)
	assert.Equal(t, "Charging Hubs", profile.Solutions[0].Name)
}

func TestLoadCompanyProfile_OverrideFile(t *testing.T) {
	path := t.TempDir() + "/profile.yaml"
	yaml := "name: Acme\nindustry: Logistics\ntarget_audience: Fleet managers\ntone: Friendly\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("COMPANY_PROFILE_PATH", path)

	profile, err := LoadCompanyProfile()
	require.NoError(t, err)

	assert.Equal(t, "Acme", profile.Name)
	assert.Equal(t, "Logistics", profile.Industry)
}

func TestLoadCompanyProfile_MissingFile(t *testing.T) {
	t.Setenv("COMPANY_PROFILE_PATH", "/does/not/exist.yaml")

	_, err := LoadCompanyProfile()
	assert.Error(t, err)
}
