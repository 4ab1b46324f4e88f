package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	// Color functions with auto-detection for terminal support.
	// These fall back gracefully when colors are unavailable.
	successMark = color.New(color.FgGreen, color.Bold).SprintFunc()
	pathText    = color.New(color.FgCyan).SprintFunc()
	dimText     = color.New(color.Faint).SprintFunc()
	warnLabel   = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// printSuccess prints a green checkmark line naming a written file.
func printSuccess(out io.Writer, message, path string) {
	fmt.Fprintf(out, "%s %s %s\n", successMark("✓"), message, pathText(path))
}

// printSkip prints a dim line for a package that produced no scaffold.
func printSkip(out io.Writer, message string) {
	fmt.Fprintf(out, "%s\n", dimText(message))
}

// printWarning prints a yellow warning line.
func printWarning(out io.Writer, message string) {
	fmt.Fprintf(out, "%s %s\n", warnLabel("Warning:"), message)
}
