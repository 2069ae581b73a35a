// Package cmd implements the pullzoom CLI commands.
//
// The command structure follows a root command that dispatches to
// subcommands (simulate, chart, demo).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/pullzoom/cmd/pullzoom/internal/config"
	"github.com/go-drift/pullzoom/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "pullzoom",
	Short: "pullzoom - pull-to-zoom header tooling",
	Long: `pullzoom drives the pull-to-zoom controller outside of an app: it replays
scripted gestures, charts the header height over time and hosts an
interactive terminal demo.

Use "pullzoom <command> --help" for more information about a command.`,
	Usage: "pullzoom <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// Output streams, replaceable in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// projectDir overrides the directory pullzoom.yaml is read from.
var projectDir string

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "pullzoom version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			errors.SetHandler(&errors.LogHandler{Verbose: true, Out: stderr})
		case "--project":
			if i+1 < len(args) {
				projectDir = args[i+1]
				i++
			} else {
				return fmt.Errorf("--project requires a directory path")
			}
		default:
			if strings.HasPrefix(arg, "--project=") {
				projectDir = strings.TrimPrefix(arg, "--project=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// resolveConfig loads pullzoom.yaml from --project or the enclosing
// project.
func resolveConfig() (*config.Resolved, error) {
	dir := projectDir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			return nil, err
		}
		dir = root
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// flagValue returns the value following a flag such as "-o", accepting both
// "-o value" and "-o=value".
func flagValue(args []string, i int, name string) (string, int, error) {
	arg := args[i]
	if v, ok := strings.CutPrefix(arg, name+"="); ok {
		return v, i, nil
	}
	if i+1 >= len(args) {
		return "", i, fmt.Errorf("%s requires a value", name)
	}
	return args[i+1], i + 1, nil
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --verbose            Log errors with stack traces")
	fmt.Fprintln(stdout, "  --project DIR        Read pullzoom.yaml from DIR")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  pullzoom simulate pull.yaml          Replay a scenario and print the report")
	fmt.Fprintln(stdout, "  pullzoom chart pull.yaml -o pull.png Chart the header height")
	fmt.Fprintln(stdout, "  pullzoom demo                        Drag the header with the mouse")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
