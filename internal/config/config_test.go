package config

import (
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"SERVER_PORT", "LPR_PROVIDER", "GOOGLE_API_KEY", "GEMINI_MODEL", "AWS_REGION"} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingGoogleAPIKeyFailsStartup(t *testing.T) {
	clearConfigEnv(t)

	// Không có credential thì Load phải fail - không có fallback nhúng trong code
	if _, err := Load(); err == nil {
		t.Fatal("Expected error when GOOGLE_API_KEY is unset, got nil")
	}
}

func TestLoad_GeminiDefaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("GOOGLE_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Provider != ProviderGemini {
		t.Errorf("Provider = %q, expected %q", cfg.Provider, ProviderGemini)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, expected %q", cfg.ServerPort, "8080")
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("GeminiModel = %q, expected %q", cfg.GeminiModel, "gemini-2.0-flash")
	}
	if cfg.GoogleAPIKey != "test-key" {
		t.Errorf("GoogleAPIKey = %q, expected %q", cfg.GoogleAPIKey, "test-key")
	}
}

func TestLoad_RekognitionRequiresRegion(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("LPR_PROVIDER", ProviderRekognition)

	if _, err := Load(); err == nil {
		t.Fatal("Expected error when AWS_REGION is unset for rekognition provider, got nil")
	}

	t.Setenv("AWS_REGION", "ap-southeast-1")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.AWSRegion != "ap-southeast-1" {
		t.Errorf("AWSRegion = %q, expected %q", cfg.AWSRegion, "ap-southeast-1")
	}
}

func TestLoad_UnknownProvider(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("LPR_PROVIDER", "tesseract")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for unknown provider, got nil")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro-latest")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, expected %q", cfg.ServerPort, "9090")
	}
	if cfg.GeminiModel != "gemini-1.5-pro-latest" {
		t.Errorf("GeminiModel = %q, expected %q", cfg.GeminiModel, "gemini-1.5-pro-latest")
	}
}
