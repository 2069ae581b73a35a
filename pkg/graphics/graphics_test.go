package graphics

import (
	"image/color"
	"testing"
)

func TestRect_Inset(t *testing.T) {
	r := RectFromLTWH(0, 0, 640, 360).Inset(56, 28, 16, 28)
	want := Rect{Left: 56, Top: 28, Right: 624, Bottom: 332}
	if r != want {
		t.Errorf("Inset = %+v, want %+v", r, want)
	}
	if r.Width() != 568 || r.Height() != 304 {
		t.Errorf("size = %vx%v", r.Width(), r.Height())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true for a positive area")
	}
}

func TestRect_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"zero", Rect{}, true},
		{"flat", RectFromLTWH(0, 0, 10, 0), true},
		{"inverted", RectFromLTWH(0, 0, 10, 10).Inset(8, 0, 8, 0), true},
		{"unit", RectFromLTWH(3, 4, 1, 1), false},
	}
	for _, tt := range tests {
		if got := tt.r.IsEmpty(); got != tt.want {
			t.Errorf("%s: IsEmpty() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestColor_ImplementsImageColor(t *testing.T) {
	var c color.Color = RGB(0x12, 0x34, 0x56)
	got := color.RGBAModel.Convert(c).(color.RGBA)
	want := color.RGBA{0x12, 0x34, 0x56, 0xff}
	if got != want {
		t.Errorf("converted = %v, want %v", got, want)
	}

	half := RGBA(0xff, 0, 0, 0.5)
	r, _, _, a := half.RGBA()
	if a != 0x8080 || r != a {
		t.Errorf("premultiplied red = %#x/%#x, want 0x8080/0x8080", r, a)
	}
}

func TestColor_Components(t *testing.T) {
	r, g, b, a := Color(0x80112233).Components()
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x80 {
		t.Errorf("Components() = %#x %#x %#x %#x", r, g, b, a)
	}
	if got := ColorWhite.WithAlpha(0).Alpha(); got != 0 {
		t.Errorf("Alpha() = %v", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(ColorBlack, ColorWhite, 0); got != ColorBlack {
		t.Errorf("Lerp(t=0) = %#x", uint32(got))
	}
	if got := Lerp(ColorBlack, ColorWhite, 2); got != ColorWhite {
		t.Errorf("Lerp(t=2) = %#x, want clamped to white", uint32(got))
	}
	if got := Lerp(RGB(0, 0, 0), RGB(200, 100, 50), 0.5); got != RGB(100, 50, 25) {
		t.Errorf("Lerp(t=0.5) = %#x", uint32(got))
	}
}
