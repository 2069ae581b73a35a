package scenario

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pullzoom/pkg/animation"
	"github.com/go-drift/pullzoom/pkg/errors"
	"github.com/go-drift/pullzoom/pkg/gestures"
	"github.com/go-drift/pullzoom/pkg/graphics"
	zoomtest "github.com/go-drift/pullzoom/pkg/testing"
	"github.com/go-drift/pullzoom/pkg/trace"
	"github.com/go-drift/pullzoom/pkg/zoom"
)

// Report is the outcome of one run.
type Report struct {
	ID             uuid.UUID `yaml:"id"`
	Name           string    `yaml:"name"`
	Version        string    `yaml:"version"`
	FinalHeight    int       `yaml:"final_height"`
	FinalScale     float64   `yaml:"final_scale"`
	FinalPhase     string    `yaml:"final_phase"`
	ConsumedEvents int       `yaml:"consumed_events"`
	Diagnostics    []string  `yaml:"diagnostics,omitempty"`
	// Timeline holds one sample per delivered step and per snap frame.
	Timeline trace.Timeline `yaml:"timeline"`
}

// Encode writes the report as YAML.
func (r *Report) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

// Run replays sc against a fresh controller. Steps are delivered at their
// scripted times; between them frames are pumped at the scenario's frame
// interval for as long as a snap is running.
//
// Run swaps the animation clock and the global error handler for its
// duration, so runs must not overlap.
func Run(sc *Scenario, cfg zoom.Config) (report *Report, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid zoom config: %w", err)
	}
	if sc.SnapCurve != "" {
		curve, err := animation.CurveByName(sc.SnapCurve)
		if err != nil {
			return nil, err
		}
		cfg.SnapCurve = curve
	}
	cfg.UseFrameTicker = false
	interval := sc.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	clk := zoomtest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clk))
	rec := &errors.Recorder{}
	defer errors.SetHandler(errors.SetHandler(rec))
	defer errors.RecoverWithCallback("scenario.Run", func(r any) {
		err = fmt.Errorf("scenario %q panicked: %v", sc.Name, r)
	})

	c := zoom.NewController(cfg)
	end := max(sc.RunUntil, sc.Duration()+c.Config().SnapDuration+interval)
	buf := trace.NewBuffer(len(sc.Steps) + int(end/interval) + 2)
	buf.SetBounds(sc.Layout.NaturalHeight, sc.Layout.ScreenHeight)

	consumed := 0
	record := func(event string, eventConsumed bool) {
		if eventConsumed {
			consumed++
		}
		buf.Add(trace.Sample{
			Timestamp:    clk.Elapsed(),
			Event:        event,
			Phase:        c.Phase().String(),
			Scale:        c.Scale(),
			Height:       c.RenderedHeight(),
			HeaderOffset: c.HeaderOffset(),
			Consumed:     eventConsumed,
		})
	}

	c.Layout(sc.Layout.ScreenHeight, sc.Layout.NaturalHeight)
	record("layout", false)

	next := 0
	nextFrame := interval
	for next < len(sc.Steps) || nextFrame <= end {
		if next < len(sc.Steps) && sc.Steps[next].At <= nextFrame {
			step := sc.Steps[next]
			next++
			clk.Set(zoomtest.Epoch.Add(step.At))
			apply(c, step, record)
			continue
		}
		clk.Set(zoomtest.Epoch.Add(nextFrame))
		if c.Phase() == zoom.PhaseSnapping {
			c.Tick(clk.Now())
			record("frame", false)
		}
		nextFrame += interval
	}

	// Version 7 ids sort by creation time.
	id, idErr := uuid.NewV7()
	if idErr != nil {
		id = uuid.New()
	}
	report = &Report{
		ID:             id,
		Name:           sc.Name,
		Version:        sc.Version,
		FinalHeight:    c.RenderedHeight(),
		FinalScale:     c.Scale(),
		FinalPhase:     c.Phase().String(),
		ConsumedEvents: consumed,
		Timeline:       buf.Snapshot(),
	}
	for _, e := range rec.Errors {
		report.Diagnostics = append(report.Diagnostics, e.Error())
	}
	for _, p := range rec.Panics {
		report.Diagnostics = append(report.Diagnostics, p.Error())
	}
	return report, nil
}

func apply(c *zoom.Controller, step Step, record func(string, bool)) {
	switch step.Kind {
	case StepScroll:
		c.ScrollChanged(step.Offset)
		record(string(step.Kind), false)
	case StepToggle:
		c.Toggle()
		record(string(step.Kind), false)
	default:
		phase, _ := step.Kind.PointerPhase()
		consumed := c.HandlePointer(gestures.PointerEvent{
			PointerID: step.PointerID(),
			Position:  graphics.Offset{Y: step.Y},
			Phase:     phase,
		})
		record(string(step.Kind), consumed)
	}
}
