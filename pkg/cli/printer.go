// Package cli contains helpers for terminal output.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dnaka91/unidirs/pkg/dirs"
)

var bold = color.New(color.Bold).SprintfFunc()

type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out: out,
	}
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.out, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// PrintDirs prints the resolved directories as aligned label and path
// lines, skipping directories the platform does not define.
func (p *Printer) PrintDirs(mode dirs.Mode, d dirs.Dirs) {
	p.Printf("Directories for %s mode:\n\n", bold("%s", mode))

	fields := d.Fields()
	width := 0
	for _, f := range fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}
	for _, f := range fields {
		p.Printf("  %-*s  %s\n", width, f.Label, f.Path)
	}
}

// PrintError prints an error message
func (p *Printer) PrintError(err error) {
	p.Printf("%s %s\n", color.RedString("Error:"), err)
}
