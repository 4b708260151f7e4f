package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoad(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("openai.api_key", "token")
	viper.Set("openai.model", "gpt-4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OpenAI.APIKey != "token" {
		t.Fatalf("unexpected api key: %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4" {
		t.Fatalf("unexpected model: %q", cfg.OpenAI.Model)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		model string
		ok    bool
	}{
		{"", true},
		{"gpt-4", true},
		{"gpt-3.5-turbo-16k", true},
		{"gpt-9-imaginary", false},
	}
	for _, tc := range cases {
		cfg := Config{OpenAI: OpenAIConfig{Model: tc.model}}
		err := cfg.Validate()
		if tc.ok && err != nil {
			t.Fatalf("model %q: unexpected error: %v", tc.model, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("model %q: expected error", tc.model)
		}
	}
}
