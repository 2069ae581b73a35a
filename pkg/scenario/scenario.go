// Package scenario scripts pull-to-zoom gestures in YAML and replays them
// against a controller on a fake clock.
//
// A scenario file looks like:
//
//	version: v1.0.0
//	name: pull and release
//	layout:
//	  screen_height: 600
//	  natural_height: 300
//	steps:
//	  - {at: 0s, kind: down, pointer: 1, y: 100}
//	  - {at: 32ms, kind: move, pointer: 1, y: 250}
//	  - {at: 64ms, kind: up, pointer: 1, y: 250}
//
// Step times are offsets from the start of the run and must not decrease.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pullzoom/pkg/animation"
	"github.com/go-drift/pullzoom/pkg/errors"
	"github.com/go-drift/pullzoom/pkg/gestures"
)

// DefaultFrameInterval is the frame spacing when a scenario names none.
const DefaultFrameInterval = 16 * time.Millisecond

// StepKind names what a step does.
type StepKind string

const (
	StepDown          StepKind = "down"
	StepMove          StepKind = "move"
	StepUp            StepKind = "up"
	StepCancel        StepKind = "cancel"
	StepOutside       StepKind = "outside"
	StepSecondaryDown StepKind = "secondary_down"
	StepSecondaryUp   StepKind = "secondary_up"
	StepScroll        StepKind = "scroll"
	StepToggle        StepKind = "toggle"
)

// PointerPhase returns the pointer phase a step delivers. It reports false
// for host actions (scroll, toggle) and unknown kinds.
func (k StepKind) PointerPhase() (gestures.PointerPhase, bool) {
	return gestures.ParsePointerPhase(string(k))
}

func (k StepKind) valid() bool {
	if k == StepScroll || k == StepToggle {
		return true
	}
	_, ok := k.PointerPhase()
	return ok
}

// Scenario is a decoded gesture script.
type Scenario struct {
	Version string `yaml:"version"`
	Name    string `yaml:"name"`
	Layout  Layout `yaml:"layout"`
	// FrameInterval spaces the frames pumped while a snap runs.
	FrameInterval time.Duration `yaml:"frame_interval,omitempty"`
	// RunUntil extends the run past the last step. Zero runs until the
	// last snap has had time to settle.
	RunUntil time.Duration `yaml:"run_until,omitempty"`
	// SnapCurve overrides the controller's curve by name.
	SnapCurve string `yaml:"snap_curve,omitempty"`
	Steps     []Step `yaml:"steps"`
}

// Layout is what the host would measure before the first gesture.
type Layout struct {
	ScreenHeight  int `yaml:"screen_height"`
	NaturalHeight int `yaml:"natural_height"`
}

// Step is one scripted event.
type Step struct {
	At   time.Duration `yaml:"at"`
	Kind StepKind      `yaml:"kind"`
	// Pointer is the event's pointer id. For cancel it names the pointer
	// that stays down; leave it out when none does.
	Pointer *int64  `yaml:"pointer,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	// Offset is the content scroll offset of a scroll step.
	Offset float64 `yaml:"offset,omitempty"`
}

// PointerID returns the step's pointer, or gestures.NoPointer.
func (s Step) PointerID() int64 {
	if s.Pointer == nil {
		return gestures.NoPointer
	}
	return *s.Pointer
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a scenario. source names the input in
// errors.
func Parse(source string, data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}
	if err := sc.normalize(source); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) normalize(source string) error {
	version := strings.TrimSpace(sc.Version)
	if version == "" {
		version = "v1"
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return &errors.ParseError{Source: source, Field: "version", Got: sc.Version, Reason: "not a semantic version"}
	}
	if semver.Major(version) != "v1" {
		return &errors.ParseError{Source: source, Field: "version", Got: sc.Version, Reason: "only v1 scenarios are supported"}
	}
	sc.Version = semver.Canonical(version)

	if sc.Name == "" {
		sc.Name = source
	}
	if sc.Layout.ScreenHeight <= 0 {
		return &errors.ParseError{Source: source, Field: "layout.screen_height", Got: sc.Layout.ScreenHeight, Reason: "must be positive"}
	}
	if sc.Layout.NaturalHeight <= 0 {
		return &errors.ParseError{Source: source, Field: "layout.natural_height", Got: sc.Layout.NaturalHeight, Reason: "must be positive"}
	}
	if sc.FrameInterval < 0 {
		return &errors.ParseError{Source: source, Field: "frame_interval", Got: sc.FrameInterval, Reason: "must not be negative"}
	}
	if sc.FrameInterval == 0 {
		sc.FrameInterval = DefaultFrameInterval
	}
	if sc.RunUntil < 0 {
		return &errors.ParseError{Source: source, Field: "run_until", Got: sc.RunUntil, Reason: "must not be negative"}
	}
	if _, err := animation.CurveByName(sc.SnapCurve); err != nil {
		return &errors.ParseError{Source: source, Field: "snap_curve", Got: sc.SnapCurve, Reason: err.Error()}
	}

	var prev time.Duration
	for i, step := range sc.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		if !step.Kind.valid() {
			return &errors.ParseError{Source: source, Field: field + ".kind", Got: step.Kind}
		}
		if step.At < prev {
			return &errors.ParseError{Source: source, Field: field + ".at", Got: step.At, Reason: "steps must be in time order"}
		}
		prev = step.At
		if step.Pointer == nil && needsPointer(step.Kind) {
			return &errors.ParseError{Source: source, Field: field + ".pointer", Got: "none", Reason: "required for " + string(step.Kind)}
		}
	}
	return nil
}

func needsPointer(kind StepKind) bool {
	switch kind {
	case StepCancel, StepScroll, StepToggle:
		return false
	default:
		return true
	}
}

// Duration returns the time of the last step.
func (sc *Scenario) Duration() time.Duration {
	if len(sc.Steps) == 0 {
		return 0
	}
	return sc.Steps[len(sc.Steps)-1].At
}
