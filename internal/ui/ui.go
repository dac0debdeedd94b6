// Package ui provides stderr-based output for advisor's non-interactive
// commands: colored banners, course listings, load reports, and errors.
package ui

import (
	"fmt"
	"os"

	"github.com/abcu/advisor/internal/course"
	"github.com/abcu/advisor/internal/loader"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// Printer writes user-facing messages to stderr, keeping stdout clean for
// course data so command output stays pipeable.
type Printer struct{}

// New returns a ready-to-use Printer.
func New() *Printer {
	return &Printer{}
}

// Banner prints the program banner.
func (p *Printer) Banner() {
	fmt.Fprintln(os.Stderr, bold+cyan+"  ╔════════════════════════════════╗"+reset)
	fmt.Fprintln(os.Stderr, bold+cyan+"  ║"+reset+bold+"  ADVISOR  "+dim+"ABC University catalog"+reset+bold+cyan+" ║"+reset)
	fmt.Fprintln(os.Stderr, bold+cyan+"  ╚════════════════════════════════╝"+reset)
	fmt.Fprintln(os.Stderr)
}

// Error prints an error message.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

// Warn prints a warning message.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(os.Stderr, yellow+"warning: "+reset+"%s\n", msg)
}

// Info prints a de-emphasized informational message.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, dim+"%s"+reset+"\n", msg)
}

// CourseList writes courses to stdout, one display line each, under a header.
func (p *Printer) CourseList(header string, courses []*course.Course) {
	fmt.Fprintf(os.Stdout, bold+"-------- %s --------"+reset+"\n", header)
	if len(courses) == 0 {
		fmt.Fprintln(os.Stdout, dim+"No matching courses found."+reset)
		return
	}
	for _, c := range courses {
		fmt.Fprintln(os.Stdout, c.String())
	}
}

// Course writes a single course to stdout.
func (p *Printer) Course(c *course.Course) {
	fmt.Fprintln(os.Stdout, c.String())
}

// LoadReport summarizes a completed file load on stderr.
func (p *Printer) LoadReport(r loader.Report) {
	fmt.Fprintf(os.Stderr, green+"✓ loaded"+reset+" %s "+dim+"(%d course(s))"+reset+"\n", r.File, r.Loaded)
	if r.Duplicates > 0 {
		fmt.Fprintf(os.Stderr, yellow+"  %d duplicate id(s) skipped"+reset+"\n", r.Duplicates)
	}
	for _, bad := range r.BadLines {
		fmt.Fprintf(os.Stderr, yellow+"  skipped line %d:"+reset+" %v\n", bad.Line, bad.Err)
	}
}
