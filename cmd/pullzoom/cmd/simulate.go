package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/pullzoom/cmd/pullzoom/internal/config"
	"github.com/go-drift/pullzoom/pkg/scenario"
)

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Replay a gesture scenario",
		Long: `Replay a YAML gesture scenario against a fresh controller and print the
report: final height and phase, diagnostics, and the per-frame timeline.

Flags:
  -o, --output FILE   Write the report to FILE instead of stdout

Controller settings come from pullzoom.yaml when present.`,
		Usage: "pullzoom simulate <scenario.yaml> [-o report.yaml]",
		Run:   runSimulate,
	})
}

func runSimulate(args []string) error {
	var path, output string
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
		case strings.HasPrefix(arg, "-"):
			return fmt.Errorf("unknown flag %q", arg)
		case path == "":
			path = arg
		default:
			return fmt.Errorf("unexpected argument %q", arg)
		}
	}
	if path == "" {
		return fmt.Errorf("scenario file is required\n\nUsage: pullzoom simulate <scenario.yaml> [-o report.yaml]")
	}

	report, _, err := runScenario(path)
	if err != nil {
		return err
	}

	var w io.Writer = stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create report: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := report.Encode(w); err != nil {
		return err
	}

	fmt.Fprintf(stderr, "%s: final height %d (%s), %d consumed, %d diagnostics\n",
		report.Name, report.FinalHeight, report.FinalPhase, report.ConsumedEvents, len(report.Diagnostics))
	return nil
}

// runScenario loads the scenario at path and replays it with the project's
// controller settings.
func runScenario(path string) (*scenario.Report, *config.Resolved, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, nil, err
	}
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, nil, err
	}
	report, err := scenario.Run(sc, cfg.Zoom)
	if err != nil {
		return nil, nil, err
	}
	return report, cfg, nil
}
