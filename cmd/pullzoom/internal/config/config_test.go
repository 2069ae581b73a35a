package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.ModulePath != "" {
		t.Errorf("ModulePath = %q, want empty without go.mod", cfg.ModulePath)
	}
	if cfg.ChartTitle != filepath.Base(dir) {
		t.Errorf("ChartTitle = %q, want %q", cfg.ChartTitle, filepath.Base(dir))
	}
	if cfg.NaturalHeight != defaultNaturalHeight {
		t.Errorf("NaturalHeight = %d", cfg.NaturalHeight)
	}
	if cfg.CellHeight != defaultCellHeight || cfg.FrameInterval != defaultFrameInterval {
		t.Errorf("cell/frame = %d/%v", cfg.CellHeight, cfg.FrameInterval)
	}
	if cfg.Zoom.SnapCurve == nil {
		t.Error("Zoom.SnapCurve should be resolved")
	}
}

func TestResolve_ModulePathNamesChart(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/gallery/v2\n\ngo 1.24\n")

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.ModulePath != "example.com/acme/gallery/v2" {
		t.Errorf("ModulePath = %q", cfg.ModulePath)
	}
	if cfg.ChartTitle != "gallery" {
		t.Errorf("ChartTitle = %q, want gallery", cfg.ChartTitle)
	}
}

func TestResolve_File(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/gallery\n")
	writeFile(t, dir, FileName, `
zoom:
  snap_duration: 300ms
  damping: 0.25
  snap_curve: linear
  parallax: true
  disable_overscroll: true
host:
  natural_height: 250
  cell_height: 10
chart:
  title: Header stretch
  width: 800
`)

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Zoom.SnapDuration != 300*time.Millisecond || cfg.Zoom.Damping != 0.25 {
		t.Errorf("Zoom = %+v", cfg.Zoom)
	}
	if got := cfg.Zoom.SnapCurve(0.5); got != 0.5 {
		t.Errorf("SnapCurve(0.5) = %v, want linear", got)
	}
	if !cfg.Zoom.Parallax || !cfg.Zoom.DisableOverscroll || cfg.Zoom.DisableZoom {
		t.Errorf("Zoom flags = %+v", cfg.Zoom)
	}
	if cfg.NaturalHeight != 250 || cfg.CellHeight != 10 {
		t.Errorf("host = %d/%d", cfg.NaturalHeight, cfg.CellHeight)
	}
	if cfg.ChartTitle != "Header stretch" || cfg.ChartWidth != 800 || cfg.ChartHeight != defaultChartHeight {
		t.Errorf("chart = %q %dx%d", cfg.ChartTitle, cfg.ChartWidth, cfg.ChartHeight)
	}
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"damping", "zoom:\n  damping: 3\n"},
		{"curve", "zoom:\n  snap_curve: wobble\n"},
		{"syntax", "zoom: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.yaml)
			if _, err := Resolve(dir); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Zoom.Damping != 0 || cfg.Host.NaturalHeight != 0 {
		t.Errorf("cfg = %+v, want zero", cfg)
	}
}

func TestDefaultTitle(t *testing.T) {
	tests := []struct {
		module string
		dir    string
		want   string
	}{
		{"github.com/acme/viewer", "/src/x", "viewer"},
		{"github.com/acme/viewer/v3", "/src/x", "viewer"},
		{"", "/src/project", "project"},
		{"", "/", "pullzoom"},
	}
	for _, tt := range tests {
		if got := defaultTitle(tt.module, tt.dir); got != tt.want {
			t.Errorf("defaultTitle(%q, %q) = %q, want %q", tt.module, tt.dir, got, tt.want)
		}
	}
}
