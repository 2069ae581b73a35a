package zoom

import (
	"strings"
	"testing"
)

func laidOut(cfg Config) *Controller {
	c := NewController(cfg)
	c.Layout(600, 300)
	return c
}

func TestScrollChanged_AtTop(t *testing.T) {
	c := laidOut(Config{})
	tests := []struct {
		offset float64
		atTop  bool
	}{
		{0, true},
		{-12, true},
		{0.5, false},
		{240, false},
		{0, true},
	}
	for _, tt := range tests {
		c.ScrollChanged(tt.offset)
		if c.AtTop() != tt.atTop {
			t.Errorf("ScrollChanged(%v): AtTop() = %v, want %v", tt.offset, c.AtTop(), tt.atTop)
		}
	}
}

func TestScrollChanged_DisabledKeepsAtTop(t *testing.T) {
	c := laidOut(Config{DisableZoom: true})
	c.ScrollChanged(100)
	if !c.AtTop() {
		t.Error("a disabled controller does not track the scroll position")
	}
}

func TestScrollChanged_Parallax(t *testing.T) {
	c := laidOut(Config{Parallax: true})
	tests := []struct {
		offset float64
		want   int
	}{
		{0, 0},
		{100, -65},
		{200, -130},
		{300, 0},
		{450, 0},
		{20, -13},
	}
	for _, tt := range tests {
		c.ScrollChanged(tt.offset)
		if got := c.HeaderOffset(); got != tt.want {
			t.Errorf("ScrollChanged(%v): HeaderOffset() = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestScrollChanged_NoParallaxByDefault(t *testing.T) {
	c := laidOut(Config{})
	c.ScrollChanged(100)
	if got := c.HeaderOffset(); got != 0 {
		t.Errorf("HeaderOffset() = %d, want 0 without parallax", got)
	}
}

func TestScrollChanged_Listeners(t *testing.T) {
	c := laidOut(Config{})
	var got []ScrollChange
	unsubscribe := c.AddScrollListener(func(change ScrollChange) { got = append(got, change) })

	c.ScrollChanged(10)
	c.ScrollChanged(25)
	unsubscribe()
	c.ScrollChanged(30)

	want := []ScrollChange{{Offset: 10, Previous: 0}, {Offset: 25, Previous: 10}}
	if len(got) != len(want) {
		t.Fatalf("listener saw %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("change %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if c.ScrollOffset() != 30 {
		t.Errorf("ScrollOffset() = %v, want 30", c.ScrollOffset())
	}
}

func TestAllowedOverscroll(t *testing.T) {
	if got := laidOut(Config{}).AllowedOverscroll(48); got != 48 {
		t.Errorf("AllowedOverscroll = %d, want 48", got)
	}
	if got := laidOut(Config{DisableOverscroll: true}).AllowedOverscroll(48); got != 0 {
		t.Errorf("AllowedOverscroll with overscroll disabled = %d, want 0", got)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SnapDuration != DefaultSnapDuration {
		t.Errorf("SnapDuration = %v", cfg.SnapDuration)
	}
	if cfg.Damping != DefaultDamping {
		t.Errorf("Damping = %v", cfg.Damping)
	}
	if cfg.ParallaxFactor != DefaultParallaxFactor {
		t.Errorf("ParallaxFactor = %v", cfg.ParallaxFactor)
	}
	if cfg.SnapCurve == nil {
		t.Error("SnapCurve should default to a curve")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero", Config{}, false},
		{"damping one", Config{Damping: 1}, false},
		{"zero damping takes default", Config{Damping: 0}, false},
		{"damping too large", Config{Damping: 1.5}, true},
		{"negative damping", Config{Damping: -0.1}, true},
		{"negative duration", Config{SnapDuration: -1}, true},
		{"negative parallax", Config{ParallaxFactor: -0.2}, true},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
	if err := (Config{Damping: 2}).Validate(); err == nil || !strings.Contains(err.Error(), "[0, 1]") {
		t.Errorf("Validate() = %v, want the accepted damping range", err)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "idle"},
		{PhaseDragging, "dragging"},
		{PhaseSnapping, "snapping"},
		{Phase(7), "Phase(7)"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
