package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	labelColor  = color.New(color.Bold)
	okColor     = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed)
)

func printHeader(title string) {
	headerColor.Fprintf(os.Stderr, "%s\n", title)
}

func printLabel(label, format string, args ...interface{}) {
	labelColor.Fprintf(os.Stderr, "  %-12s", label+":")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// newProgressBar builds a 0-100 bar for pipeline progress. It writes to
// stderr and clears itself when done so the actual output path stays the
// last line on stdout.
func newProgressBar(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(
		100,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowDescriptionAtLineEnd(false),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// formatDuration renders seconds as H:MM:SS for display.
func formatDuration(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
