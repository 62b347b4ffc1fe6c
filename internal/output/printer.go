// Package output provides terminal formatting for query results
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes human-facing output. Messages go to out, errors to err.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// ResolveColors applies NO_COLOR and TERM=dumb on top of the configured setting
func ResolveColors(configColors bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return configColors
}

// NewPrinter creates a printer on stdout/stderr
func NewPrinter(useColors bool) *Printer {
	return NewPrinterWithWriters(os.Stdout, os.Stderr, useColors)
}

// NewPrinterWithWriters creates a printer on custom writers
func NewPrinterWithWriters(out, errOut io.Writer, useColors bool) *Printer {
	return &Printer{
		out:       out,
		err:       errOut,
		useColors: useColors,
	}
}

// Out returns the writer used for regular output
func (p *Printer) Out() io.Writer {
	return p.out
}

// Info prints an informational message
func (p *Printer) Info(format string, args ...any) {
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Success prints a success message
func (p *Printer) Success(format string, args ...any) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Error prints an error message
func (p *Printer) Error(format string, args ...any) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
	}
}

// Print prints a plain line
func (p *Printer) Print(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Prompt prints text without a trailing newline
func (p *Printer) Prompt(text string) {
	if p.useColors {
		color.New(color.Bold).Fprint(p.out, text)
	} else {
		fmt.Fprint(p.out, text)
	}
}

// Header prints a section header
func (p *Printer) Header(title string) {
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n", title)
		color.New(color.FgWhite).Fprintf(p.out, "%s\n", repeatChar('─', len([]rune(title))))
	} else {
		fmt.Fprintf(p.out, "\n%s\n%s\n", title, repeatChar('-', len([]rune(title))))
	}
}

// Dim returns dimmed text
func (p *Printer) Dim(text string) string {
	if p.useColors {
		return color.New(color.Faint).Sprint(text)
	}
	return text
}

func repeatChar(char rune, count int) string {
	result := make([]rune, count)
	for i := range result {
		result[i] = char
	}
	return string(result)
}
