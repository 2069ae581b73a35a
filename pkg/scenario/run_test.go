package scenario

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pullzoom/pkg/zoom"
)

func mustLoad(t *testing.T, path string) *Scenario {
	t.Helper()
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	return sc
}

func TestRun_PullAndRelease(t *testing.T) {
	report, err := Run(mustLoad(t, "testdata/pull_release.yaml"), zoom.Config{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.ID == uuid.Nil {
		t.Error("report has no ID")
	}
	if report.FinalHeight != 300 || report.FinalPhase != "idle" {
		t.Errorf("final = %d/%s, want 300/idle", report.FinalHeight, report.FinalPhase)
	}
	if report.ConsumedEvents != 1 {
		t.Errorf("ConsumedEvents = %d, want 1", report.ConsumedEvents)
	}
	if len(report.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v", report.Diagnostics)
	}

	samples := report.Timeline.Samples
	if len(samples) < 5 {
		t.Fatalf("only %d samples recorded", len(samples))
	}
	if samples[0].Event != "layout" || samples[0].Height != 300 {
		t.Errorf("first sample = %+v", samples[0])
	}
	move := samples[2]
	if move.Event != "move" || move.Height != 375 || !move.Consumed || move.Timestamp != 32*time.Millisecond {
		t.Errorf("move sample = %+v", move)
	}
	if up := samples[3]; up.Event != "up" || up.Phase != "snapping" {
		t.Errorf("up sample = %+v", up)
	}

	prev := 375
	for _, s := range samples[4:] {
		if s.Event != "frame" {
			t.Fatalf("unexpected %q after release", s.Event)
		}
		if s.Height > prev {
			t.Errorf("height grew from %d to %d while snapping", prev, s.Height)
		}
		prev = s.Height
	}
	if report.Timeline.MaxHeight() != 375 {
		t.Errorf("MaxHeight() = %d", report.Timeline.MaxHeight())
	}
	if report.Timeline.NaturalHeight != 300 || report.Timeline.ScreenHeight != 600 {
		t.Errorf("timeline bounds = %d/%d", report.Timeline.NaturalHeight, report.Timeline.ScreenHeight)
	}
}

func TestRun_Handoff(t *testing.T) {
	report, err := Run(mustLoad(t, "testdata/handoff.yaml"), zoom.Config{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	var afterHandoff int
	for _, s := range report.Timeline.Samples {
		if s.Event == "move" && s.Timestamp == 64*time.Millisecond {
			afterHandoff = s.Height
		}
	}
	if afterHandoff != 375 {
		t.Errorf("height after handoff move = %d, want 375", afterHandoff)
	}
	if report.FinalHeight != 300 {
		t.Errorf("FinalHeight = %d, want 300", report.FinalHeight)
	}
	if report.ConsumedEvents != 2 {
		t.Errorf("ConsumedEvents = %d, want 2", report.ConsumedEvents)
	}
}

func TestRun_Diagnostics(t *testing.T) {
	sc, err := Parse("stray.yaml", []byte(`
layout: {screen_height: 600, natural_height: 300}
steps:
  - {at: 0s, kind: down, pointer: 1, y: 100}
  - {at: 16ms, kind: move, pointer: 9, y: 200}
  - {at: 32ms, kind: up, pointer: 1, y: 200}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	report, err := Run(sc, zoom.Config{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Diagnostics) != 1 || !strings.Contains(report.Diagnostics[0], "pointer=9") {
		t.Errorf("Diagnostics = %v, want one unknown pointer report", report.Diagnostics)
	}
}

func TestRun_ScrollAndToggle(t *testing.T) {
	sc, err := Parse("toggle.yaml", []byte(`
layout: {screen_height: 600, natural_height: 300}
steps:
  - {at: 0s, kind: toggle}
  - {at: 400ms, kind: scroll, offset: 50}
  - {at: 410ms, kind: down, pointer: 1, y: 100}
  - {at: 420ms, kind: move, pointer: 1, y: 300}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	report, err := Run(sc, zoom.Config{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Timeline.MaxHeight() != 600 {
		t.Errorf("MaxHeight() = %d, want the toggle to fill the screen", report.Timeline.MaxHeight())
	}
	if report.ConsumedEvents != 0 {
		t.Errorf("ConsumedEvents = %d, gestures while scrolled must not be consumed", report.ConsumedEvents)
	}
	if report.FinalHeight != 600 {
		t.Errorf("FinalHeight = %d, want 600", report.FinalHeight)
	}
}

func TestRun_StrayUpDuringToggle(t *testing.T) {
	sc, err := Parse("stray_up.yaml", []byte(`
layout: {screen_height: 600, natural_height: 300}
steps:
  - {at: 0s, kind: toggle}
  - {at: 48ms, kind: up, pointer: 7, y: 100}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	report, err := Run(sc, zoom.Config{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.FinalHeight != 600 {
		t.Errorf("FinalHeight = %d, want the scale-up to finish", report.FinalHeight)
	}
	if len(report.Diagnostics) != 1 || !strings.Contains(report.Diagnostics[0], "pointer=7") {
		t.Errorf("Diagnostics = %v, want one unknown pointer report", report.Diagnostics)
	}
}

func TestRun_RunUntil(t *testing.T) {
	sc := mustLoad(t, "testdata/pull_release.yaml")
	sc.RunUntil = 2 * time.Second
	report, err := Run(sc, zoom.Config{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.FinalHeight != 300 {
		t.Errorf("FinalHeight = %d", report.FinalHeight)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	if _, err := Run(mustLoad(t, "testdata/pull_release.yaml"), zoom.Config{Damping: 2}); err == nil {
		t.Error("expected an error for damping above 1")
	}
}

func TestReport_Encode(t *testing.T) {
	report, err := Run(mustLoad(t, "testdata/pull_release.yaml"), zoom.Config{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	var buf bytes.Buffer
	if err := report.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("report is not YAML: %v", err)
	}
	if doc["id"] != report.ID.String() {
		t.Errorf("id = %v, want %s", doc["id"], report.ID)
	}
	if doc["final_height"] != 300 {
		t.Errorf("final_height = %v", doc["final_height"])
	}
	if !strings.Contains(buf.String(), "t: 32ms") {
		t.Errorf("durations should encode as strings:\n%s", buf.String())
	}
}
