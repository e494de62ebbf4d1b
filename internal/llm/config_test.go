package llm

import (
	"strings"
	"testing"
)

// clearProviderEnv blanks every env var the config layer reads so a
// developer's real keys cannot leak into assertions.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"VOKAB_LLM_PROVIDER",
		"VOKAB_ANTHROPIC_API_KEY", "VOKAB_ANTHROPIC_MODEL",
		"VOKAB_OPENAI_API_KEY", "VOKAB_OPENAI_MODEL", "VOKAB_OPENAI_BASE_URL",
		"VOKAB_GEMINI_API_KEY", "VOKAB_GEMINI_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestResolveConfigExplicitProvider(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("VOKAB_LLM_PROVIDER", "openai")
	t.Setenv("VOKAB_OPENAI_API_KEY", "sk-test")
	t.Setenv("VOKAB_OPENAI_MODEL", "gpt-4o")

	cfg, err := ResolveConfig()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q, want env override", cfg.OpenAI.Model)
	}
}

func TestResolveConfigExplicitProviderMissingKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("VOKAB_LLM_PROVIDER", "gemini")
	// A discoverable key for another provider must not rescue an
	// explicit selection that fails validation.
	t.Setenv("OPENAI_API_KEY", "sk-other")

	_, err := ResolveConfig()
	if err == nil || !strings.Contains(err.Error(), "VOKAB_GEMINI_API_KEY") {
		t.Fatalf("err = %v, want missing gemini key", err)
	}
}

func TestResolveConfigDiscoversStandardKeys(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, err := ResolveConfig()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "sk-ant" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestResolveConfigNothingSet(t *testing.T) {
	clearProviderEnv(t)

	_, err := ResolveConfig()
	if err == nil || !strings.Contains(err.Error(), "no LLM provider configured") {
		t.Fatalf("err = %v, want configuration error", err)
	}
}

func TestValidateUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "oracle"
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate accepted an unknown provider")
	}
}
