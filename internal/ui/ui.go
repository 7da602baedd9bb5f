// Package ui prints status lines for the tuvi commands. Chart documents go
// to stdout through the render package; everything here goes to stderr.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/papapumpkin/tuvi/internal/ansi"
	"github.com/papapumpkin/tuvi/internal/batch"
)

// Printer writes colored status output. With plain set the color codes are
// stripped.
type Printer struct {
	w     io.Writer
	plain bool
}

// New returns a Printer on stderr that honors NO_COLOR.
func New() *Printer {
	return &Printer{w: os.Stderr, plain: ansi.Disabled()}
}

// NewWriter returns a Printer on w that honors NO_COLOR.
func NewWriter(w io.Writer) *Printer {
	return &Printer{w: w, plain: ansi.Disabled()}
}

func (p *Printer) printf(format string, args ...any) {
	if p.plain {
		format = ansi.Strip(format)
	}
	fmt.Fprintf(p.w, format, args...)
}

// Error prints a red error line.
func (p *Printer) Error(msg string) {
	p.printf(ansi.Red+ansi.Bold+"error: "+ansi.Reset+"%s\n", msg)
}

// Info prints a dim status line.
func (p *Printer) Info(msg string) {
	p.printf(ansi.Dim+"%s"+ansi.Reset+"\n", msg)
}

// ValidateResult reports the outcome of checking a batch file.
func (p *Printer) ValidateResult(path string, count int, errs []batch.ValidationError) {
	if len(errs) == 0 {
		p.printf(ansi.Green+ansi.Bold+"✓ %s"+ansi.Reset+" %d birth(s), no errors\n", path, count)
		return
	}
	p.printf(ansi.Red+ansi.Bold+"✗ %s"+ansi.Reset+" %d error(s):\n", path, len(errs))
	for _, e := range errs {
		p.printf("  "+ansi.Red+"• "+ansi.Reset+"%s\n", e.Error())
	}
}

// BatchResults lists every record of a run with its chart ID or error.
func (p *Printer) BatchResults(results []batch.Result) {
	for _, r := range results {
		switch {
		case r.Err != nil:
			p.printf("  "+ansi.Red+"✗ %s"+ansi.Reset+" %v\n", r.Label, r.Err)
		case r.DuplicateOf >= 0:
			p.printf("  "+ansi.Yellow+"= %s"+ansi.Reset+ansi.Dim+" same chart as #%d"+ansi.Reset+"\n", r.Label, r.DuplicateOf+1)
		default:
			p.printf("  "+ansi.Green+"✓ %s"+ansi.Reset+" %s "+ansi.Dim+"(%s, Mệnh %s)"+ansi.Reset+"\n",
				r.Label, r.Chart.ID, r.Chart.Bureau, r.Chart.SelfBranch)
		}
	}
}

// BatchSummary prints the counts of a run.
func (p *Printer) BatchSummary(s batch.Summary) {
	color := ansi.Green
	if s.Failed > 0 {
		color = ansi.Yellow
	}
	p.printf(color+ansi.Bold+"batch done"+ansi.Reset+" %d/%d computed, %d failed, %d duplicate(s) "+ansi.Dim+"(%.1fms, run %s)"+ansi.Reset+"\n",
		s.Computed, s.Total, s.Failed, s.Duplicates, float64(s.Elapsed.Microseconds())/1000, s.RunID)
}

// Watching announces that the batch command is waiting for changes.
func (p *Printer) Watching(path string) {
	p.printf(ansi.Cyan+"◆ watching"+ansi.Reset+" %s "+ansi.Dim+"(ctrl-c to stop)"+ansi.Reset+"\n", path)
}
