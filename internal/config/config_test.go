package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Normalize()

	if cfg.Country != "SA" {
		t.Errorf("Country = %q, want SA", cfg.Country)
	}
	if len(cfg.WeekendDays) != 2 || cfg.WeekendDays[0] != "friday" || cfg.WeekendDays[1] != "saturday" {
		t.Errorf("WeekendDays = %v", cfg.WeekendDays)
	}
	if cfg.WorkStartHour != 9 || cfg.WorkEndHour != 17 {
		t.Errorf("work hours = %d-%d, want 9-17", cfg.WorkStartHour, cfg.WorkEndHour)
	}
	if cfg.WeekStart != "sunday" || cfg.FiscalStartMonth != 1 {
		t.Errorf("WeekStart = %q, FiscalStartMonth = %d", cfg.WeekStart, cfg.FiscalStartMonth)
	}
	if cfg.TriggerCron == "" || cfg.LogLevel != "INFO" {
		t.Errorf("TriggerCron = %q, LogLevel = %q", cfg.TriggerCron, cfg.LogLevel)
	}
}

func TestNormalizeCanonicalizes(t *testing.T) {
	cfg := &Config{
		Country:     "sa",
		WeekendDays: []string{" Friday ", "SATURDAY"},
		WeekStart:   "tuesday",
	}
	cfg.Normalize()

	if cfg.Country != "SA" {
		t.Errorf("Country = %q, want SA", cfg.Country)
	}
	if cfg.WeekendDays[0] != "friday" || cfg.WeekendDays[1] != "saturday" {
		t.Errorf("WeekendDays = %v", cfg.WeekendDays)
	}
	// Unsupported week starts fall back to sunday.
	if cfg.WeekStart != "sunday" {
		t.Errorf("WeekStart = %q, want sunday", cfg.WeekStart)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	cfg.WeekendDays = []string{"someday"}
	if err := cfg.Validate(); err == nil {
		t.Error("unknown weekend day accepted")
	}

	cfg.WeekendDays = []string{"friday", "friday"}
	if err := cfg.Validate(); err == nil {
		t.Error("duplicate weekend day accepted")
	}

	cfg.WeekendDays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	if err := cfg.Validate(); err == nil {
		t.Error("all-week weekend accepted")
	}
}

func TestWeekendAndWeekStart(t *testing.T) {
	cfg := DefaultConfig()
	weekend := cfg.Weekend()
	if !weekend[time.Friday] || !weekend[time.Saturday] || len(weekend) != 2 {
		t.Errorf("Weekend = %v", weekend)
	}
	if cfg.WeekStartDay() != time.Sunday {
		t.Errorf("WeekStartDay = %v, want Sunday", cfg.WeekStartDay())
	}
	cfg.WeekStart = "monday"
	if cfg.WeekStartDay() != time.Monday {
		t.Errorf("WeekStartDay = %v, want Monday", cfg.WeekStartDay())
	}
}

func TestLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Country != "SA" {
		t.Errorf("Country = %q, want SA", cfg.Country)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}

	info, err := os.Stat(path)
	if err == nil && info.Mode().Perm() != 0o600 {
		t.Errorf("config mode = %o, want 0600", info.Mode().Perm())
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Country = "AE"
	cfg.FiscalStartMonth = 7
	cfg.WeekStart = "monday"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Country != "AE" || got.FiscalStartMonth != 7 || got.WeekStart != "monday" {
		t.Errorf("round-tripped config = %+v", got)
	}
}

func TestLoadRejectsBadYAMLAndConfig(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("country: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed YAML accepted")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("weekend_days: [someday]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("invalid weekend day accepted")
	}
}
