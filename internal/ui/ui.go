package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sokinpui/snip/model"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
)

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

// Report prints a plain result line to stdout.
func Report(format string, a ...interface{}) {
	fmt.Printf(format+"\n", a...)
}

// PrintSummary prints the plain-text report for a run: the size
// progression of each document, then a closing message.
func PrintSummary(summary model.Summary) {
	multi := len(summary.Reports) > 1
	for _, report := range summary.Reports {
		if multi {
			Report("%s:", report.Path)
		}
		for i, step := range report.Steps {
			if i == 0 {
				Report("Original file size: %d characters", step.Size)
			} else {
				Report("After removing %s: %d characters", step.Label, step.Size)
			}
		}
	}
	if summary.Message != "" {
		Report("%s", summary.Message)
	}
}
