package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OutputDir != "reports" {
		t.Errorf("OutputDir = %q, want reports", cfg.OutputDir)
	}
	if cfg.ZipkinURL != "http://localhost:9411" {
		t.Errorf("ZipkinURL = %q, want http://localhost:9411", cfg.ZipkinURL)
	}
	if cfg.CombineSimilarNames {
		t.Error("CombineSimilarNames = true, want false by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SVCREPORT_OUTPUT_DIR":            "/var/reports",
		"SVCREPORT_ZIPKIN_URL":            "http://zipkin.internal:9411",
		"SVCREPORT_COMBINE_SIMILAR_NAMES": "true",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OutputDir != "/var/reports" {
		t.Errorf("OutputDir = %q, want /var/reports", cfg.OutputDir)
	}
	if cfg.ZipkinURL != "http://zipkin.internal:9411" {
		t.Errorf("ZipkinURL = %q, want http://zipkin.internal:9411", cfg.ZipkinURL)
	}
	if !cfg.CombineSimilarNames {
		t.Error("CombineSimilarNames = false, want true")
	}
}

func TestLoad_BadBool(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SVCREPORT_COMBINE_SIMILAR_NAMES": "definitely",
	}))
	if err == nil {
		t.Fatal("expected error for non-boolean value")
	}
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("SVCREPORT_OUTPUT_DIR", "/tmp/reports")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputDir != "/tmp/reports" {
		t.Errorf("OutputDir = %q, want /tmp/reports", cfg.OutputDir)
	}
}
