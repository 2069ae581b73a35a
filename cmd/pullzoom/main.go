// Command pullzoom replays, charts and demonstrates pull-to-zoom gestures.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/pullzoom/cmd/pullzoom/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
