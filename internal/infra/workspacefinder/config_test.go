package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/cubebag/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ConfigFile)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	p := writeConfig(t, "cubebag:\n  output:\n    format: json\n")

	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Output.Format != "json" {
		t.Fatalf("expected format=json, got=%s", cfg.Output.Format)
	}
	if cfg.Paths.Input != "input.txt" {
		t.Fatalf("expected input=input.txt, got=%s", cfg.Paths.Input)
	}
	if cfg.Paths.ReportsDir != "reports" {
		t.Fatalf("expected reports dir=reports, got=%s", cfg.Paths.ReportsDir)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	p := writeConfig(t, "cubebag:\n  paths:\n    input: day02.txt\n    reports_dir: out\n")

	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Paths.Input != "day02.txt" || cfg.Paths.ReportsDir != "out" {
		t.Fatalf("unexpected paths: %+v", cfg.Paths)
	}
	if cfg.Output.Format != "plain" {
		t.Fatalf("expected default format, got=%s", cfg.Output.Format)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), ConfigFile))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	p := writeConfig(t, "cubebag: [unterminated\n")

	_, err := LoadConfig(p)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}
