package domain

import "testing"

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Fatalf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.Model != DefaultModel {
		t.Fatalf("Model = %q", cfg.Model)
	}
	if cfg.TimeoutSeconds != DefaultTimeout {
		t.Fatalf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}
}

func TestConfigWithDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		BaseURL:        "http://10.0.0.5:8080",
		Model:          "other-model",
		TimeoutSeconds: 5,
	}.WithDefaults()
	if cfg.BaseURL != "http://10.0.0.5:8080" || cfg.Model != "other-model" || cfg.TimeoutSeconds != 5 {
		t.Fatalf("explicit values overwritten: %+v", cfg)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Fatalf("Endpoint = %q, want default filled in", cfg.Endpoint)
	}
}
