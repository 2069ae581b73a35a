package cmd

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/pullzoom/cmd/pullzoom/internal/config"
	"github.com/go-drift/pullzoom/pkg/animation"
	"github.com/go-drift/pullzoom/pkg/errors"
	"github.com/go-drift/pullzoom/pkg/gestures"
	"github.com/go-drift/pullzoom/pkg/graphics"
	"github.com/go-drift/pullzoom/pkg/zoom"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Interactive terminal demo",
		Long: `Host a zoomable header in the terminal. Each terminal row stands for
host.cell_height pixels (default 20).

Controls:
  drag with the left button   stretch the header or scroll the list
  mouse wheel                 scroll the list
  t                           toggle between natural size and full screen
  e                           enable or disable zooming
  q, Esc                      quit`,
		Usage: "pullzoom demo",
		Run:   runDemo,
	})
}

// mousePointer is the pointer id the demo reports for the mouse.
const mousePointer int64 = 1

const demoItems = 40

// demoHost adapts terminal events to a zoom controller and draws the
// result. It plays the part of the scroll container: pointer moves the
// controller does not consume scroll the list.
type demoHost struct {
	ctrl       *zoom.Controller
	cellHeight int
	natural    int
	cols, rows int

	dragging bool
	lastY    float64
	scroll   float64
}

func newDemoHost(zc zoom.Config, cfg *config.Resolved) *demoHost {
	zc.UseFrameTicker = true
	return &demoHost{
		ctrl:       zoom.NewController(zc),
		cellHeight: max(cfg.CellHeight, 1),
		natural:    cfg.NaturalHeight,
	}
}

func runDemo(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q\n\nUsage: pullzoom demo", args[0])
	}
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Reports would scribble over the screen; hold them until it is closed.
	diagnostics := &errors.Recorder{}
	prevHandler := errors.SetHandler(diagnostics)
	defer func() {
		errors.SetHandler(prevHandler)
		diagnostics.Replay(prevHandler)
	}()
	defer errors.Recover("pullzoom.demo")
	defer screen.Fini()
	screen.EnableMouse()

	host := newDemoHost(cfg.Zoom, cfg)
	host.resize(screen.Size())

	ticker := time.NewTicker(cfg.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !host.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			animation.StepTickers()
			host.frame()
			host.draw(screen)
			screen.Show()
		}
	}
}

// resize lays the controller out for a terminal of cols x rows. The last
// row is the status line.
func (h *demoHost) resize(cols, rows int) {
	h.cols, h.rows = cols, rows
	h.ctrl.Layout(max(rows-1, 1)*h.cellHeight, h.natural)
}

// handleEvent reports false when the demo should quit.
func (h *demoHost) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.key(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.mouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		h.resize(ev.Size())
	}
	return true
}

func (h *demoHost) key(key tcell.Key, r rune) bool {
	switch {
	case key == tcell.KeyEscape || key == tcell.KeyCtrlC:
		return false
	case key != tcell.KeyRune:
	case r == 'q':
		return false
	case r == 't':
		h.ctrl.Toggle()
	case r == 'e':
		h.ctrl.SetEnabled(!h.ctrl.Enabled())
	}
	return true
}

func (h *demoHost) mouse(_, y int, buttons tcell.ButtonMask) {
	py := float64(y * h.cellHeight)
	switch {
	case buttons&tcell.WheelUp != 0:
		h.scrollBy(-float64(h.cellHeight))
	case buttons&tcell.WheelDown != 0:
		h.scrollBy(float64(h.cellHeight))
	case buttons&tcell.Button1 != 0:
		if !h.dragging {
			h.dragging = true
			h.lastY = py
			h.send(gestures.PointerPhaseDown, py)
			return
		}
		if py == h.lastY {
			return
		}
		if !h.send(gestures.PointerPhaseMove, py) {
			h.scrollBy(h.lastY - py)
		}
		h.lastY = py
	case h.dragging:
		h.dragging = false
		h.send(gestures.PointerPhaseUp, py)
	}
}

func (h *demoHost) send(phase gestures.PointerPhase, y float64) bool {
	return h.ctrl.HandlePointer(gestures.PointerEvent{
		PointerID: mousePointer,
		Position:  graphics.Offset{Y: y},
		Phase:     phase,
	})
}

func (h *demoHost) maxScroll() float64 {
	content := h.ctrl.RenderedHeight() + demoItems*h.cellHeight
	return float64(max(content-(h.rows-1)*h.cellHeight, 0))
}

// scrollBy moves the list, allowing as much overscroll at the top as the
// controller permits.
func (h *demoHost) scrollBy(d float64) {
	lo := -float64(h.ctrl.AllowedOverscroll(h.cellHeight))
	next := min(max(h.scroll+d, lo), h.maxScroll())
	if next == h.scroll {
		return
	}
	h.scroll = next
	h.ctrl.ScrollChanged(next)
}

// frame springs overscroll back once the mouse is released.
func (h *demoHost) frame() {
	if h.scroll < 0 && !h.dragging {
		h.scroll = 0
		h.ctrl.ScrollChanged(0)
	}
}

func (h *demoHost) draw(s tcell.Screen) {
	s.Clear()
	body := h.rows - 1
	cell := h.cellHeight
	headerRows := (h.ctrl.RenderedHeight() + cell/2) / cell
	scrollRows := int(h.scroll) / cell
	shiftRows := h.ctrl.HeaderOffset() / cell

	for r := range headerRows {
		y := r - scrollRows
		if y < 0 || y >= body {
			continue
		}
		style := tcell.StyleDefault.Background(headerColor(r-shiftRows, headerRows))
		for x := range h.cols {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
	if y := headerRows/2 - scrollRows; y >= 0 && y < body {
		label := fmt.Sprintf(" %dpx ", h.ctrl.RenderedHeight())
		drawText(s, max((h.cols-len(label))/2, 0), y, tcell.StyleDefault.Reverse(true), label)
	}

	for i := range demoItems {
		y := headerRows + i - scrollRows
		if y < 0 || y >= body {
			continue
		}
		drawText(s, 2, y, tcell.StyleDefault, fmt.Sprintf("item %02d", i+1))
	}

	enabled := "on"
	if !h.ctrl.Enabled() {
		enabled = "off"
	}
	status := fmt.Sprintf("height=%d scale=%.2f phase=%s zoom=%s  [t]oggle [e]nable [q]uit",
		h.ctrl.RenderedHeight(), h.ctrl.Scale(), h.ctrl.Phase(), enabled)
	drawText(s, 0, body, tcell.StyleDefault.Foreground(tcell.ColorYellow), status)
}

var (
	headerTop    = graphics.RGB(40, 80, 160)
	headerBottom = graphics.RGB(160, 200, 240)
)

// headerColor shades the header from a deep blue at the top to a light
// blue at the bottom.
func headerColor(row, rows int) tcell.Color {
	c := headerTop
	if rows > 1 {
		c = graphics.Lerp(headerTop, headerBottom, float64(row)/float64(rows-1))
	}
	r, g, b, _ := c.Components()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
