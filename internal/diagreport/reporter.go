// Package diagreport accumulates severity-tagged diagnostics with source
// locations and renders them in the filename:line:col format every other
// pipeline stage shares.
package diagreport

import (
	"fmt"
	"io"
	"strings"

	"github.com/theQuarky/tspp/internal/position"
)

// Severity mirrors the three levels the reporter distinguishes; only Error
// increments the error count.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported message.
type Diagnostic struct {
	Severity Severity
	Pos      position.Position
	Message  string
	Code     string
}

// Reporter holds an ordered list of diagnostics and the error/warning/info
// counts. It never raises; every pipeline stage calls
// Error/Warning/Info and keeps going.
type Reporter struct {
	diagnostics  []Diagnostic
	errorCount   int
	warningCount int
	infoCount    int
	sources      *position.SourceMap
}

func New(sources *position.SourceMap) *Reporter {
	return &Reporter{sources: sources}
}

func (r *Reporter) report(sev Severity, pos position.Position, message, code string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{Severity: sev, Pos: pos, Message: message, Code: code})

	switch sev {
	case Error:
		r.errorCount++
	case Warning:
		r.warningCount++
	case Info:
		r.infoCount++
	}
}

func (r *Reporter) Error(pos position.Position, message string, code ...string) {
	r.report(Error, pos, message, firstOr(code, ""))
}

func (r *Reporter) Warning(pos position.Position, message string, code ...string) {
	r.report(Warning, pos, message, firstOr(code, ""))
}

func (r *Reporter) Info(pos position.Position, message string, code ...string) {
	r.report(Info, pos, message, firstOr(code, ""))
}

func firstOr(codes []string, def string) string {
	if len(codes) > 0 {
		return codes[0]
	}

	return def
}

func (r *Reporter) Clear() {
	r.diagnostics = nil
	r.errorCount = 0
	r.warningCount = 0
	r.infoCount = 0
}

func (r *Reporter) HasErrors() bool   { return r.errorCount > 0 }
func (r *Reporter) ErrorCount() int   { return r.errorCount }
func (r *Reporter) WarningCount() int { return r.warningCount }

func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// colorCode returns the ANSI escape for sev: red for error, yellow for
// warning, blue for info.
func colorCode(sev Severity) string {
	switch sev {
	case Error:
		return "\033[31m"
	case Warning:
		return "\033[33m"
	case Info:
		return "\033[34m"
	default:
		return ""
	}
}

const colorReset = "\033[0m"

// Format renders d as "filename:line:col: severity[code]: message" followed
// by the offending source line and a caret under the column.
// Colour codes are applied only when useColor is true.
func (r *Reporter) Format(d Diagnostic, useColor bool) string {
	var b strings.Builder

	sev := d.Severity.String()
	if d.Code != "" {
		sev = fmt.Sprintf("%s[%s]", sev, d.Code)
	}

	if useColor {
		b.WriteString(colorCode(d.Severity))
	}

	fmt.Fprintf(&b, "%s: %s", d.Pos.String(), sev)

	if useColor {
		b.WriteString(colorReset)
	}

	fmt.Fprintf(&b, ": %s\n", d.Message)

	if r.sources != nil {
		if line := r.sources.GetLine(d.Pos); line != "" {
			fmt.Fprintf(&b, "%s\n", line)
			b.WriteString(strings.Repeat(" ", max(0, d.Pos.Column-1)))
			b.WriteString("^\n")
		}
	}

	return b.String()
}

// PrintAll writes every accumulated diagnostic to w in report order.
func (r *Reporter) PrintAll(w io.Writer, useColor bool) {
	for _, d := range r.diagnostics {
		fmt.Fprint(w, r.Format(d, useColor))
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
