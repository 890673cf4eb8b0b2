package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("Load() = %+v, want zero config", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	content := `profile: finops
region: eu-west-1
format: json
output: report.json
min_monthly_savings: 25.5
timeout: 2m
`
	if err := os.WriteFile(filepath.Join(dir, ".faasspectre.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Profile != "finops" {
		t.Errorf("Profile = %q, want %q", cfg.Profile, "finops")
	}
	if cfg.Region != "eu-west-1" {
		t.Errorf("Region = %q, want %q", cfg.Region, "eu-west-1")
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
	if cfg.Output != "report.json" {
		t.Errorf("Output = %q, want %q", cfg.Output, "report.json")
	}
	if cfg.MinMonthlySavings != 25.5 {
		t.Errorf("MinMonthlySavings = %v, want 25.5", cfg.MinMonthlySavings)
	}
	if got := cfg.TimeoutDuration(); got != 2*time.Minute {
		t.Errorf("TimeoutDuration() = %v, want 2m", got)
	}
}

func TestLoadYMLFallback(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".faasspectre.yml"), []byte("region: us-east-2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Region != "us-east-2" {
		t.Errorf("Region = %q, want %q", cfg.Region, "us-east-2")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".faasspectre.yaml"), []byte("region: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}

func TestTimeoutDurationEmpty(t *testing.T) {
	if got := (Config{}).TimeoutDuration(); got != 0 {
		t.Errorf("TimeoutDuration() = %v, want 0", got)
	}
}
