// Package status renders the user-facing progress lines the CLI prints while
// operating on packages.
package status

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/pakt/internal/core/ports"
	"go.trai.ch/pakt/internal/ui/output"
	"go.trai.ch/pakt/internal/ui/style"
)

// verbWidth right-aligns every status verb into a fixed column so that
// consecutive lines read as a table.
const verbWidth = 12

// Renderer implements ports.Status on a termenv output.
type Renderer struct {
	out *termenv.Output
}

// New creates a renderer writing to w, stderr when w is nil.
func New(w io.Writer) *Renderer {
	return &Renderer{out: output.New(w)}
}

// Status prints a progress line with the verb highlighted and right-aligned.
func (r *Renderer) Status(verb, msg string) {
	padded := fmt.Sprintf("%*s", verbWidth, verb)
	styled := r.out.String(padded).Foreground(termenv.RGBColor(string(style.Green))).Bold()
	_, _ = r.out.WriteString(styled.String() + " " + msg + "\n")
}

// Warn prints a warning line.
func (r *Renderer) Warn(msg string) {
	prefix := r.out.String("warning:").Foreground(termenv.RGBColor(string(style.Yellow))).Bold()
	_, _ = r.out.WriteString(prefix.String() + " " + msg + "\n")
}

// Print prints a plain output row.
func (r *Renderer) Print(line string) {
	_, _ = r.out.WriteString(line + "\n")
}

var _ ports.Status = (*Renderer)(nil)

// Margin computes the label column width for aligned listings: the longest
// label plus breathing room.
func Margin(labels []string) int {
	longest := 0
	for _, label := range labels {
		if n := len([]rune(label)); n > longest {
			longest = n
		}
	}
	return longest + 4
}

// Row formats a label and its annotation into one aligned listing row.
func Row(label, annotation string, margin int) string {
	if annotation == "" {
		return label
	}
	pad := margin - len([]rune(label))
	if pad < 1 {
		pad = 1
	}
	return label + strings.Repeat(" ", pad) + annotation
}
