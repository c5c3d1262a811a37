package herofx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	data := []byte(`
overlay:
  duration: 2.0
pong:
  max_speed: 12
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Overlay.Duration != 2.0 {
		t.Errorf("Duration = %v, want 2.0", cfg.Overlay.Duration)
	}
	if cfg.Overlay.FadeDuration != 0.4 {
		t.Errorf("FadeDuration = %v, want default 0.4", cfg.Overlay.FadeDuration)
	}
	if cfg.Pong.MaxSpeed != 12 {
		t.Errorf("MaxSpeed = %v, want 12", cfg.Pong.MaxSpeed)
	}
	if cfg.Nav.SafetyUnlock != 2.5 {
		t.Errorf("SafetyUnlock = %v, want default 2.5", cfg.Nav.SafetyUnlock)
	}
	if len(cfg.Layout.Lines) != 5 {
		t.Errorf("len(Lines) = %d, want 5 default lines", len(cfg.Layout.Lines))
	}
}

func TestParseConfigLinesReplaceDefaults(t *testing.T) {
	data := []byte(`
layout:
  lines:
    - name: only
      text: Hello
      x: 500
      y: 300
      size: 40
      font: sans
      alpha: 1
      combo:
        text: World
        x: 600
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if len(cfg.Layout.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(cfg.Layout.Lines))
	}
	ln := cfg.Layout.Lines[0]
	if ln.Combo == nil || ln.Combo.Text != "World" || ln.Combo.X != 600 {
		t.Errorf("Combo = %+v, want World@600", ln.Combo)
	}
	if ln.Strike != nil {
		t.Errorf("Strike = %+v, want nil", ln.Strike)
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero duration", "overlay: {duration: 0}"},
		{"bad ease", "overlay: {ease: wobbly}"},
		{"empty source", "overlay: {source: ''}"},
		{"bounce below one", "pong: {bounce: 0.5}"},
		{"no safety unlock", "nav: {safety_unlock: 0}"},
		{"unknown font", "layout: {lines: [{text: a, size: 10, font: serif}]}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseConfigMalformedYAML(t *testing.T) {
	_, err := ParseConfig([]byte("overlay: [unterminated"))
	if err == nil {
		t.Fatal("expected error for malformed yaml")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("malformed yaml should not be reported as a validation error")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "herofx.yaml")
	if err := os.WriteFile(path, []byte("overlay: {duration: 3}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Overlay.Duration != 3 {
		t.Errorf("Duration = %v, want 3", cfg.Overlay.Duration)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfigWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewConfigWatcher(dir)
	if err != nil {
		t.Fatalf("NewConfigWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "herofx.yaml")
	if err := os.WriteFile(path, []byte("overlay: {duration: 1}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "herofx.yaml" {
			t.Errorf("event for %q, want herofx.yaml", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for yaml write")
	}
}

func TestIsConfigFile(t *testing.T) {
	tests := map[string]bool{
		"a.yaml":    true,
		"b.YML":     true,
		"c.json":    false,
		"d.yaml~":   false,
		"noext":     false,
		"dir/e.yml": true,
	}
	for path, want := range tests {
		if got := isConfigFile(path); got != want {
			t.Errorf("isConfigFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestConfigWatcherCloseTwice(t *testing.T) {
	w, err := NewConfigWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewConfigWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
