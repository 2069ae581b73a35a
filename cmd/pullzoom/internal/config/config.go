// Package config loads the optional pullzoom.yaml that tunes the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pullzoom/pkg/animation"
	"github.com/go-drift/pullzoom/pkg/zoom"
)

// FileName is the configuration file looked up in the project directory.
const FileName = "pullzoom.yaml"

const (
	defaultNaturalHeight = 200
	defaultCellHeight    = 20
	defaultFrameInterval = 16 * time.Millisecond
	defaultChartWidth    = 640
	defaultChartHeight   = 360
)

// Config represents the optional pullzoom.yaml configuration.
type Config struct {
	Zoom  ZoomConfig  `yaml:"zoom"`
	Host  HostConfig  `yaml:"host"`
	Chart ChartConfig `yaml:"chart"`
}

// ZoomConfig mirrors zoom.Config in file form.
type ZoomConfig struct {
	SnapDuration      time.Duration `yaml:"snap_duration,omitempty"`
	Damping           float64       `yaml:"damping,omitempty"`
	SnapCurve         string        `yaml:"snap_curve,omitempty"`
	Parallax          bool          `yaml:"parallax,omitempty"`
	ParallaxFactor    float64       `yaml:"parallax_factor,omitempty"`
	Disabled          bool          `yaml:"disabled,omitempty"`
	DisableOverscroll bool          `yaml:"disable_overscroll,omitempty"`
}

// HostConfig contains the demo host's geometry. The screen height comes
// from the terminal size.
type HostConfig struct {
	NaturalHeight int           `yaml:"natural_height,omitempty"`
	CellHeight    int           `yaml:"cell_height,omitempty"`
	FrameInterval time.Duration `yaml:"frame_interval,omitempty"`
}

// ChartConfig contains chart defaults.
type ChartConfig struct {
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Zoom       zoom.Config

	NaturalHeight int
	// CellHeight is how many pixels one terminal row stands for.
	CellHeight    int
	FrameInterval time.Duration

	ChartTitle  string
	ChartWidth  int
	ChartHeight int
}

// LoadOptional reads pullzoom.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads pullzoom.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	zc, err := cfg.Zoom.resolve()
	if err != nil {
		return nil, err
	}

	modPath := modulePath(dir)
	title := strings.TrimSpace(cfg.Chart.Title)
	if title == "" {
		title = defaultTitle(modPath, dir)
	}

	return &Resolved{
		Root:          dir,
		ModulePath:    modPath,
		Zoom:          zc,
		NaturalHeight: orDefault(cfg.Host.NaturalHeight, defaultNaturalHeight),
		CellHeight:    orDefault(cfg.Host.CellHeight, defaultCellHeight),
		FrameInterval: orDefault(cfg.Host.FrameInterval, defaultFrameInterval),
		ChartTitle:    title,
		ChartWidth:    orDefault(cfg.Chart.Width, defaultChartWidth),
		ChartHeight:   orDefault(cfg.Chart.Height, defaultChartHeight),
	}, nil
}

func (z ZoomConfig) resolve() (zoom.Config, error) {
	curve, err := animation.CurveByName(strings.TrimSpace(z.SnapCurve))
	if err != nil {
		return zoom.Config{}, fmt.Errorf("invalid zoom.snap_curve: %w", err)
	}
	zc := zoom.Config{
		SnapDuration:      z.SnapDuration,
		Damping:           z.Damping,
		SnapCurve:         curve,
		Parallax:          z.Parallax,
		ParallaxFactor:    z.ParallaxFactor,
		DisableZoom:       z.Disabled,
		DisableOverscroll: z.DisableOverscroll,
	}
	if err := zc.Validate(); err != nil {
		return zoom.Config{}, fmt.Errorf("invalid zoom settings in %s: %w", FileName, err)
	}
	return zc, nil
}

func orDefault[T int | time.Duration](v, def T) T {
	if v <= 0 {
		return def
	}
	return v
}

// FindProjectRoot walks up from the current directory to the first
// directory holding pullzoom.yaml or go.mod. It falls back to the current
// directory.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// modulePath returns the module path declared in dir/go.mod, or "".
func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "pullzoom"
	}
	return base
}
