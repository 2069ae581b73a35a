package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-drift/pullzoom/pkg/trace"
)

func init() {
	RegisterCommand(&Command{
		Name:  "chart",
		Short: "Chart a scenario as PNG",
		Long: `Replay a YAML gesture scenario and draw the rendered header height over
time. The natural and screen heights are drawn as reference lines; events
the controller consumed are marked along the time axis.

Flags:
  -o, --output FILE   PNG file to write (default: <scenario>.png)
  --width N           Image width in pixels
  --height N          Image height in pixels`,
		Usage: "pullzoom chart <scenario.yaml> [-o out.png] [--width N] [--height N]",
		Run:   runChart,
	})
}

func runChart(args []string) error {
	var path, output string
	var width, height int
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name := strings.SplitN(arg, "=", 2)[0]
		switch {
		case name == "-o" || name == "--output":
			v, next, err := flagValue(args, i, name)
			if err != nil {
				return err
			}
			output, i = v, next
		case name == "--width" || name == "--height":
			v, next, err := flagValue(args, i, name)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fmt.Errorf("%s must be a positive integer, got %q", name, v)
			}
			if name == "--width" {
				width = n
			} else {
				height = n
			}
			i = next
		case strings.HasPrefix(arg, "-"):
			return fmt.Errorf("unknown flag %q", arg)
		case path == "":
			path = arg
		default:
			return fmt.Errorf("unexpected argument %q", arg)
		}
	}
	if path == "" {
		return fmt.Errorf("scenario file is required\n\nUsage: pullzoom chart <scenario.yaml> [-o out.png]")
	}
	if output == "" {
		output = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
	}

	report, cfg, err := runScenario(path)
	if err != nil {
		return err
	}

	opts := trace.DefaultChartOptions()
	opts.Width = cfg.ChartWidth
	opts.Height = cfg.ChartHeight
	if width > 0 {
		opts.Width = width
	}
	if height > 0 {
		opts.Height = height
	}
	opts.Title = fmt.Sprintf("%s: %s", cfg.ChartTitle, report.Name)

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create chart: %w", err)
	}
	if err := trace.WritePNG(f, trace.RenderChart(report.Timeline, opts)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	fmt.Fprintf(stdout, "Wrote %s (%dx%d, %d samples)\n", output, opts.Width, opts.Height, len(report.Timeline.Samples))
	return nil
}
