package trace

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/pullzoom/pkg/graphics"
)

const (
	marginLeft   = 56
	marginRight  = 16
	marginTop    = 28
	marginBottom = 28
	lineWidth    = 1.5
)

// ChartOptions controls RenderChart.
type ChartOptions struct {
	Width  int
	Height int
	Title  string

	// Zero colors take the defaults.
	Background graphics.Color
	Grid       graphics.Color
	Fill       graphics.Color
	Line       graphics.Color
	Marker     graphics.Color
	Text       graphics.Color
}

// DefaultChartOptions returns a 640x360 light chart.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Width:      640,
		Height:     360,
		Background: graphics.ColorWhite,
		Grid:       graphics.RGB(0xc8, 0xcc, 0xd2),
		Fill:       graphics.RGB(0xcf, 0xe0, 0xfc),
		Line:       graphics.RGB(0x1a, 0x73, 0xe8),
		Marker:     graphics.RGB(0xe8, 0x71, 0x0a),
		Text:       graphics.RGB(0x20, 0x21, 0x24),
	}
}

func (o ChartOptions) withDefaults() ChartOptions {
	d := DefaultChartOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Background == graphics.ColorTransparent {
		o.Background = d.Background
	}
	if o.Grid == graphics.ColorTransparent {
		o.Grid = d.Grid
	}
	if o.Fill == graphics.ColorTransparent {
		o.Fill = d.Fill
	}
	if o.Line == graphics.ColorTransparent {
		o.Line = d.Line
	}
	if o.Marker == graphics.ColorTransparent {
		o.Marker = d.Marker
	}
	if o.Text == graphics.ColorTransparent {
		o.Text = d.Text
	}
	return o
}

// plot is the drawing area inside the margins, or the empty rectangle when
// the image is too small to hold one.
func (o ChartOptions) plot() image.Rectangle {
	area := graphics.RectFromLTWH(0, 0, float64(o.Width), float64(o.Height)).
		Inset(marginLeft, marginTop, marginRight, marginBottom)
	if area.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(int(area.Left), int(area.Top), int(area.Right), int(area.Bottom))
}

// RenderChart draws the rendered height over time. The natural and screen
// heights appear as reference lines; samples that consumed a pointer event
// are marked along the time axis.
func RenderChart(tl Timeline, opts ChartOptions) *image.RGBA {
	opts = opts.withDefaults()
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	plot := opts.plot()
	if plot.Empty() {
		return img
	}

	yMax := max(tl.MaxHeight(), tl.ScreenHeight, 1)
	span := tl.Duration()
	if span <= 0 {
		span = time.Millisecond
	}
	xOf := func(d time.Duration) float32 {
		return float32(plot.Min.X) + float32(plot.Dx())*float32(float64(d)/float64(span))
	}
	yOf := func(h int) float32 {
		return float32(plot.Max.Y) - float32(plot.Dy())*float32(h)/float32(yMax)
	}

	hline(img, plot.Min.X, plot.Max.X, plot.Max.Y, opts.Grid)
	vline(img, plot.Min.X, plot.Min.Y, plot.Max.Y, opts.Grid)
	for _, ref := range []int{tl.NaturalHeight, tl.ScreenHeight} {
		if ref <= 0 {
			continue
		}
		y := int(yOf(ref))
		hline(img, plot.Min.X, plot.Max.X, y, opts.Grid)
		label(img, opts.Text, 4, y+4, strconv.Itoa(ref))
	}

	if len(tl.Samples) > 0 {
		fillArea(img, tl.Samples, xOf, yOf, float32(plot.Max.Y), opts.Fill)
		strokeCurve(img, tl.Samples, xOf, yOf, opts.Line)
		for _, s := range tl.Samples {
			if s.Consumed {
				x := int(xOf(s.Timestamp))
				vline(img, x, plot.Max.Y-4, plot.Max.Y, opts.Marker)
			}
		}
	}

	if opts.Title != "" {
		label(img, opts.Text, plot.Min.X, marginTop-10, opts.Title)
	}
	label(img, opts.Text, plot.Min.X, opts.Height-8, "0")
	end := span.String()
	label(img, opts.Text, plot.Max.X-textWidth(end), opts.Height-8, end)
	return img
}

// fillArea shades the region between the height curve and the time axis.
func fillArea(dst *image.RGBA, samples []Sample, xOf func(time.Duration) float32, yOf func(int) float32, base float32, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(xOf(samples[0].Timestamp), base)
	for _, s := range samples {
		z.LineTo(xOf(s.Timestamp), yOf(s.Height))
	}
	z.LineTo(xOf(samples[len(samples)-1].Timestamp), base)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// strokeCurve draws each segment of the height curve as a thin quad.
func strokeCurve(dst *image.RGBA, samples []Sample, xOf func(time.Duration) float32, yOf func(int) float32, c color.Color) {
	if len(samples) < 2 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	const half = lineWidth / 2
	for i := 1; i < len(samples); i++ {
		x0, y0 := xOf(samples[i-1].Timestamp), yOf(samples[i-1].Height)
		x1, y1 := xOf(samples[i].Timestamp), yOf(samples[i].Height)
		z.MoveTo(x0, y0-half)
		z.LineTo(x1, y1-half)
		z.LineTo(x1, y1+half)
		z.LineTo(x0, y0+half)
		z.ClosePath()
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func hline(dst *image.RGBA, x0, x1, y int, c color.Color) {
	draw.Draw(dst, image.Rect(x0, y, x1, y+1), image.NewUniform(c), image.Point{}, draw.Src)
}

func vline(dst *image.RGBA, x, y0, y1 int, c color.Color) {
	draw.Draw(dst, image.Rect(x, y0, x+1, y1), image.NewUniform(c), image.Point{}, draw.Src)
}

func label(dst *image.RGBA, c color.Color, x, y int, s string) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: basicfont.Face7x13, Dot: fixed.P(x, y)}
	d.DrawString(s)
}

func textWidth(s string) int {
	meas := &font.Drawer{Face: basicfont.Face7x13}
	return meas.MeasureString(s).Round()
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode chart: %w", err)
	}
	return nil
}
