package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mrsinham/rectforge/internal/export"
	"github.com/mrsinham/rectforge/internal/rect"
	"github.com/mrsinham/rectforge/internal/rng"
)

func TestLoadFromYAML_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	content := `
seed: 42
preset: tall
algorithm: pcg
format: json
output: rects.json
summary: true
params:
  max_canvas_width: 800
  height:
    min: 20
    max: 150
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	f, err := LoadFromYAML(configPath)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	r, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if r.Seed != 42 {
		t.Errorf("Seed = %d, want 42", r.Seed)
	}
	if r.Preset != rect.Tall || r.Algorithm != rng.PCG || r.Format != export.JSON {
		t.Errorf("unexpected names: %s %s %s", r.Preset, r.Algorithm, r.Format)
	}
	if r.Output != "rects.json" || !r.Summary {
		t.Errorf("unexpected output settings: %q %v", r.Output, r.Summary)
	}
	if !r.Custom {
		t.Error("overrides should mark params as custom")
	}

	want := rect.Tall.Params()
	want.MaxCanvasWidth = 800
	want.Height = rect.Range{Min: 20, Max: 150}
	if r.Params != want {
		t.Errorf("Params = %+v, want %+v", r.Params, want)
	}
}

func TestLoadFromYAML_NonExistentFile(t *testing.T) {
	_, err := LoadFromYAML("/non/existent/path/config.yaml")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestLoadFromYAML_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(configPath, []byte("seed: [not a number"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := LoadFromYAML(configPath); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestResolve_Defaults(t *testing.T) {
	r, err := (&File{Seed: 7}).Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if r.Preset != rect.DefaultPreset || r.Algorithm != rng.DefaultAlgorithm || r.Format != export.DefaultFormat {
		t.Errorf("unexpected defaults: %s %s %s", r.Preset, r.Algorithm, r.Format)
	}
	if r.Custom {
		t.Error("no overrides should not be custom")
	}
	if r.Params != rect.DefaultPreset.Params() {
		t.Errorf("Params = %+v, want preset params", r.Params)
	}
}

func TestResolve_Errors(t *testing.T) {
	inverted := rect.Range{Min: 100, Max: 10}

	tests := []struct {
		name    string
		file    File
		wantErr error
	}{
		{"preset", File{Preset: "wide"}, rect.ErrUnknownPreset},
		{"algorithm", File{Algorithm: "xorshift"}, rng.ErrUnknownAlgorithm},
		{"format", File{Format: "csv"}, export.ErrUnknownFormat},
		{"range", File{Params: &ParamsYAML{Width: &inverted}}, rect.ErrInvalidRange},
		{"seed too large", File{Seed: 1 << 31}, ErrSeedRange},
		{"seed too small", File{Seed: -1<<31 - 1}, ErrSeedRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.Resolve()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Resolve() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveToYAML_AndLoadBack(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "saved.yaml")

	minPos := float32(0)
	original, err := (&File{
		Seed:      -12,
		Preset:    "bleed",
		Algorithm: "libc",
		Format:    "yaml",
		Params:    &ParamsYAML{MinPos: &minPos},
	}).Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if err := SaveToYAML(FromResolved(original), configPath); err != nil {
		t.Fatalf("SaveToYAML failed: %v", err)
	}

	loaded, err := LoadFromYAML(configPath)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}
	got, err := loaded.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got != original {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, original)
	}
}

func TestFromResolved_OmitsPresetParams(t *testing.T) {
	r, err := (&File{Preset: "tall"}).Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if f := FromResolved(r); f.Params != nil {
		t.Errorf("expected no params for an unmodified preset, got %+v", f.Params)
	}
}

func TestLoadServer_Defaults(t *testing.T) {
	for _, key := range []string{"RECTFORGE_HTTP_ADDR", "RECTFORGE_STATIC_DIR", "RECTFORGE_COMPRESS_THRESHOLD", "RECTFORGE_SHUTDOWN_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	c, err := LoadServer(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadServer failed: %v", err)
	}
	if c.HTTPAddr != ":3000" {
		t.Errorf("HTTPAddr = %q, want :3000", c.HTTPAddr)
	}
	if c.CompressThreshold != 1024 {
		t.Errorf("CompressThreshold = %d, want 1024", c.CompressThreshold)
	}
	if c.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", c.ShutdownTimeout)
	}
	if c.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", c.LogLevel)
	}
}

func TestLoadServer_FromEnvFile(t *testing.T) {
	t.Setenv("RECTFORGE_STATIC_DIR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("RECTFORGE_COMPRESS_THRESHOLD", "")
	os.Unsetenv("RECTFORGE_STATIC_DIR")
	os.Unsetenv("LOG_LEVEL")
	t.Setenv("RECTFORGE_HTTP_ADDR", ":8081")

	envPath := filepath.Join(t.TempDir(), "test.env")
	content := "RECTFORGE_STATIC_DIR=/srv/www\nLOG_LEVEL=debug\nRECTFORGE_HTTP_ADDR=:9999\n"
	if err := os.WriteFile(envPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	c, err := LoadServer(envPath)
	if err != nil {
		t.Fatalf("LoadServer failed: %v", err)
	}
	if c.StaticDir != "/srv/www" {
		t.Errorf("StaticDir = %q, want /srv/www", c.StaticDir)
	}
	if c.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", c.LogLevel)
	}
	if c.HTTPAddr != ":8081" {
		t.Errorf("process environment should win, got HTTPAddr %q", c.HTTPAddr)
	}
}

func TestLoadServer_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"RECTFORGE_COMPRESS_THRESHOLD", "-1"},
		{"RECTFORGE_COMPRESS_THRESHOLD", "big"},
		{"RECTFORGE_SHUTDOWN_TIMEOUT", "soon"},
		{"LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadServer(filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
