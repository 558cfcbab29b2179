// Package position tracks source locations for the TSPP front-end: every
// token and every AST node carries a Position or a Span back to this
// package, and the diagnostic reporter uses SourceMap to recover the
// offending line for caret printing.
package position

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Position is a single point in source text, 1-based in line and column
// as required by the front-end's location model.
type Position struct {
	Filename string
	Line     int
	Column   int
	Offset   int
}

func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0 && p.Offset >= 0
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", filepath.Base(p.Filename), p.Line, p.Column)
	}

	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before implements the lexicographic (line, column) ordering used by the
// tokenisation-termination and location-monotonicity properties.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}

	return p.Column < other.Column
}

func (p Position) Equal(other Position) bool {
	return p.Filename == other.Filename && p.Line == other.Line && p.Column == other.Column
}

// Span is a half-open range [Start, End) between two positions in the same file.
type Span struct {
	Start Position
	End   Position
}

func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.Start.Filename == s.End.Filename
}

func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s:%d:%d-%d", filepath.Base(s.Start.Filename), s.Start.Line, s.Start.Column, s.End.Column)
	}

	return fmt.Sprintf("%s:%d:%d-%d:%d", filepath.Base(s.Start.Filename), s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

// Union returns the smallest span covering both s and other.
func (s Span) Union(other Span) Span {
	if !s.IsValid() {
		return other
	}

	if !other.IsValid() {
		return s
	}

	start := s.Start
	if other.Start.Before(start) {
		start = other.Start
	}

	end := s.End
	if end.Before(other.End) {
		end = other.End
	}

	return Span{Start: start, End: end}
}

// SourceFile holds a file's content pre-split into lines so that a
// diagnostic can cheaply recover the text of the line it points at.
type SourceFile struct {
	Filename string
	Content  string
	Lines    []string
}

func NewSourceFile(filename, content string) *SourceFile {
	return &SourceFile{
		Filename: filename,
		Content:  content,
		Lines:    strings.Split(content, "\n"),
	}
}

// GetLine returns the 1-based line, or "" if out of range.
func (sf *SourceFile) GetLine(lineNum int) string {
	if lineNum < 1 || lineNum > len(sf.Lines) {
		return ""
	}

	return sf.Lines[lineNum-1]
}

func (sf *SourceFile) GetSpanText(span Span) string {
	if !span.IsValid() || span.Start.Offset < 0 || span.End.Offset > len(sf.Content) || span.Start.Offset > span.End.Offset {
		return ""
	}

	return sf.Content[span.Start.Offset:span.End.Offset]
}

// SourceMap lets the reporter resolve a position to its source line without
// every component threading the raw source string around.
type SourceMap struct {
	files map[string]*SourceFile
}

func NewSourceMap() *SourceMap {
	return &SourceMap{files: make(map[string]*SourceFile)}
}

func (sm *SourceMap) AddFile(filename, content string) *SourceFile {
	f := NewSourceFile(filename, content)
	sm.files[filename] = f

	return f
}

func (sm *SourceMap) GetFile(filename string) *SourceFile {
	return sm.files[filename]
}

func (sm *SourceMap) GetLine(pos Position) string {
	f := sm.GetFile(pos.Filename)
	if f == nil {
		return ""
	}

	return f.GetLine(pos.Line)
}
