// Package diagslog wraps the standard log.Logger for pipeline-stage tracing
// (lexer start/end, parser recursion depth warnings, checker pass
// boundaries).
package diagslog

import (
	"io"
	"log"
	"os"
)

// Logger tags every line with the pipeline stage that produced it.
type Logger struct {
	std *log.Logger
}

// New returns a Logger writing to w with the standard log flags, or a
// disabled Logger writing to io.Discard when w is nil.
func New(w io.Writer) *Logger {
	if w == nil {
		w = io.Discard
	}

	return &Logger{std: log.New(w, "", log.LstdFlags)}
}

// Default writes to stderr.
func Default() *Logger {
	return New(os.Stderr)
}

func (l *Logger) Stage(stage, format string, args ...interface{}) {
	l.std.Printf("["+stage+"] "+format, args...)
}

func (l *Logger) LexerStart(filename string)        { l.Stage("lexer", "start %s", filename) }
func (l *Logger) LexerEnd(filename string, n int)    { l.Stage("lexer", "end %s: %d tokens", filename, n) }
func (l *Logger) ParserDepth(depth, limit int) {
	if depth >= limit-1 {
		l.Stage("parser", "recursion depth %d approaching limit %d", depth, limit)
	}
}
func (l *Logger) CheckerPass(pass int, name string) { l.Stage("checker", "pass %d: %s", pass, name) }
