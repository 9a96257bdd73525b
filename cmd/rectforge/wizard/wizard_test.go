package wizard

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrsinham/rectforge/cmd/rectforge/wizard/types"
	"github.com/mrsinham/rectforge/internal/config"
	"github.com/mrsinham/rectforge/internal/rect"
)

func TestToFile_FromFile_RoundTrip(t *testing.T) {
	width := rect.Range{Min: 20, Max: 40}
	settings := &types.Settings{
		Seed:      -8,
		Preset:    "tall",
		Algorithm: "pcg",
		Format:    "yaml",
		Output:    "out.yaml",
		Summary:   true,
		Params:    &config.ParamsYAML{Width: &width},
	}

	got := FromFile(ToFile(settings))

	if got.Seed != settings.Seed || got.Preset != settings.Preset ||
		got.Algorithm != settings.Algorithm || got.Format != settings.Format ||
		got.Output != settings.Output || got.Summary != settings.Summary {
		t.Errorf("round trip = %+v, want %+v", got, settings)
	}
	if got.Params == nil || *got.Params.Width != width {
		t.Errorf("Params not preserved: %+v", got.Params)
	}
}

func TestSaveToYAML_LoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wizard.yaml")
	settings := &types.Settings{Seed: 42, Preset: "bleed", Algorithm: "libc", Format: "json"}

	if err := SaveToYAML(settings, path); err != nil {
		t.Fatalf("SaveToYAML() error = %v", err)
	}
	loaded, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML() error = %v", err)
	}
	if *loaded != *settings {
		t.Errorf("loaded = %+v, want %+v", loaded, settings)
	}
}

func TestResolve_InvalidSettings(t *testing.T) {
	_, err := Resolve(&types.Settings{Preset: "wide"})
	if !errors.Is(err, rect.ErrUnknownPreset) {
		t.Errorf("Resolve() error = %v, want %v", err, rect.ErrUnknownPreset)
	}
}

func TestNewWizard_NilSettingsUsesDefaults(t *testing.T) {
	w := NewWizard(nil)
	if w.phase != PhaseSettings {
		t.Errorf("phase = %v, want PhaseSettings", w.phase)
	}
	if w.settings.Preset != string(rect.DefaultPreset) {
		t.Errorf("Preset = %q, want %q", w.settings.Preset, rect.DefaultPreset)
	}
}

func TestWizard_PreviewBackReturnsToSettings(t *testing.T) {
	w := NewWizard(&types.Settings{Seed: 3})
	w.transitionToPreview("")
	if w.phase != PhasePreview {
		t.Fatalf("phase = %v, want PhasePreview", w.phase)
	}

	w.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if w.phase != PhaseSettings {
		t.Errorf("phase = %v, want PhaseSettings", w.phase)
	}
	if w.settings.Seed != 3 {
		t.Errorf("Seed = %d, want 3", w.settings.Seed)
	}
}

func TestWizard_PreviewWithInvalidSettingsStops(t *testing.T) {
	w := NewWizard(&types.Settings{Format: "csv"})
	_, cmd := w.transitionToPreview("")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if w.err == nil {
		t.Error("expected error to be recorded")
	}
}

func TestWizard_SaveConfigEscReturnsToPreview(t *testing.T) {
	w := NewWizard(&types.Settings{})
	w.transitionToSaveConfig()
	if w.configPath != "rectforge.yaml" {
		t.Errorf("configPath = %q, want default", w.configPath)
	}

	w.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if w.phase != PhasePreview {
		t.Errorf("phase = %v, want PhasePreview", w.phase)
	}
}

func TestFinish_Cancelled(t *testing.T) {
	w := NewWizard(nil)
	w.cancelled = true

	if err := w.finish(&bytes.Buffer{}); !errors.Is(err, ErrAborted) {
		t.Errorf("finish() error = %v, want %v", err, ErrAborted)
	}
}

func TestFinish_WritesOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rects.txt")
	w := NewWizard(&types.Settings{Seed: 42, Output: out})
	w.finished = true

	var stdout bytes.Buffer
	if err := w.finish(&stdout); err != nil {
		t.Fatalf("finish() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if lines := strings.Count(string(data), "\n"); lines != rect.BatchSize {
		t.Errorf("output has %d lines, want %d", lines, rect.BatchSize)
	}
	if !strings.Contains(stdout.String(), "rectforge --seed 42") {
		t.Errorf("stdout missing equivalent command:\n%s", stdout.String())
	}
}

func TestFinish_StdoutGetsOnlyData(t *testing.T) {
	w := NewWizard(&types.Settings{Seed: 1, Format: "binary"})
	w.finished = true

	var stdout bytes.Buffer
	if err := w.finish(&stdout); err != nil {
		t.Fatalf("finish() error = %v", err)
	}
	if stdout.Len() != rect.BufferLen*4 {
		t.Errorf("stdout has %d bytes, want %d", stdout.Len(), rect.BufferLen*4)
	}
}
