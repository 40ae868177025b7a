package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	// fatih/color disables itself automatically when stdout is not a TTY.
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// printSection prints a section header.
func printSection(title string) {
	fmt.Println()
	_, _ = headerColor.Printf("▸ %s\n", title)
}

// printSuccess prints a success message with a checkmark.
func printSuccess(msg string) {
	_, _ = successColor.Printf("✓ %s\n", msg)
}

// printWarning prints a warning message with a warning symbol.
func printWarning(msg string) {
	_, _ = warningColor.Printf("⚠ %s\n", msg)
}

// printError prints an error message to stderr.
func printError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// printLabelValue prints an indented label-value pair.
func printLabelValue(label, value string) {
	_, _ = labelColor.Printf("  %s: ", label)
	_, _ = dimColor.Println(value)
}
