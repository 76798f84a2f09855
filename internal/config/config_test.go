package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("FIRESTORE_COLLECTION", "")
	t.Setenv("DEFAULT_HOUR_WIDTH", "")

	cfg := Load()
	if cfg.Port != "8092" {
		t.Errorf("port = %q, want 8092", cfg.Port)
	}
	if cfg.FirestoreCollection != "preventivi" {
		t.Errorf("collection = %q, want preventivi", cfg.FirestoreCollection)
	}
	if cfg.DefaultHourWidth != 220 {
		t.Errorf("hour width = %v, want 220", cfg.DefaultHourWidth)
	}
}

func TestLoad_HourWidthOverride(t *testing.T) {
	t.Setenv("DEFAULT_HOUR_WIDTH", "140")
	if cfg := Load(); cfg.DefaultHourWidth != 140 {
		t.Errorf("hour width = %v, want 140", cfg.DefaultHourWidth)
	}
}

func TestLoad_BadHourWidthFallsBack(t *testing.T) {
	t.Setenv("DEFAULT_HOUR_WIDTH", "-5")
	if cfg := Load(); cfg.DefaultHourWidth != 220 {
		t.Errorf("hour width = %v, want 220", cfg.DefaultHourWidth)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{FirestoreProjectID: "demo", AdminAPIKey: "secret"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.AdminAPIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing admin api key")
	}

	cfg = Config{AdminAPIKey: "secret"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing project id")
	}
}
