// Package diagnostics wraps the standard library's log package into the
// lop.Logger shape: per-attempt banners and per-edge trace lines written
// to a configurable destination (SPEC_FULL.md §6.3). No structured-
// logging library is available here, so this wraps log.Logger rather
// than reimplementing one from scratch.
package diagnostics

import (
	"io"
	"log"

	"github.com/haruta-rin/railtrail/railway"
)

// Logger writes lop's solve-loop diagnostics through a *log.Logger.
// It satisfies lop.Logger without importing lop, avoiding an import
// cycle (lop depends on nothing in this package).
type Logger struct {
	log *log.Logger
}

// New returns a Logger writing to w, with no log flags (no timestamp
// prefix — each line is already self-describing).
func New(w io.Writer) *Logger {
	return &Logger{log: log.New(w, "", 0)}
}

func (l *Logger) Attempt(n int) {
	l.log.Printf("=== attempt %d ===", n)
}

func (l *Logger) Objective(totalDistance int64) {
	l.log.Printf("objective: %d", totalDistance)
}

func (l *Logger) MajorPathBanner() {
	l.log.Println("[major path]")
}

func (l *Logger) MajorPathEdge(e *railway.Edge) {
	l.log.Println(e.TSV())
}

func (l *Logger) MinorLoopBanner() {
	l.log.Println("[minor loop]")
}

func (l *Logger) MinorLoopEdge(e *railway.Edge) {
	l.log.Println(e.TSV())
}
