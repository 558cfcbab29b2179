// Package pipeline wires the front-end stages — lexer, token stream,
// parser, type checker — behind a single entry point: given a source
// string and a filename, return either (tokens, ast) or a non-empty
// diagnostic list. External collaborators (a CLI, a REPL, a code
// generator) do not live in this repository; Compile is the seam they
// would import.
package pipeline

import (
	"fmt"

	"github.com/theQuarky/tspp/internal/ast"
	"github.com/theQuarky/tspp/internal/config"
	"github.com/theQuarky/tspp/internal/diagreport"
	"github.com/theQuarky/tspp/internal/diagslog"
	"github.com/theQuarky/tspp/internal/lexer"
	"github.com/theQuarky/tspp/internal/parser"
	"github.com/theQuarky/tspp/internal/position"
	"github.com/theQuarky/tspp/internal/token"
	"github.com/theQuarky/tspp/internal/tokenstream"
	"github.com/theQuarky/tspp/internal/typechecker"
)

// Result is what Compile returns on both success and failure: the pipeline
// always runs every stage to completion so a single file can surface as
// many diagnostics as possible in one
// pass, rather than stopping at the first failing stage.
type Result struct {
	Tokens      []token.Token
	Program     *ast.Program
	Diagnostics []diagreport.Diagnostic
	Ok          bool
}

// Pipeline holds the cross-stage collaborators a host may want to
// configure once and reuse across files: a logger for stage tracing and a
// feature gate derived from a loaded tspp.toml. The zero value is a
// usable Pipeline with logging disabled and every feature gate open.
type Pipeline struct {
	Logger *diagslog.Logger
	Gate   *config.Gate
}

// New returns a Pipeline with no logging and no feature gate, matching
// DefaultConfig's "every feature on" stance.
func New() *Pipeline {
	return &Pipeline{}
}

// WithConfig derives a Pipeline's feature gate from cfg and points its
// logger at diagslog.Default().
func WithConfig(cfg *config.Config) (*Pipeline, error) {
	gate, err := config.NewGate(cfg)
	if err != nil {
		return nil, fmt.Errorf("pipeline: loading feature gate: %w", err)
	}

	return &Pipeline{Logger: diagslog.Default(), Gate: gate}, nil
}

// Compile runs the pipeline sequentially on one goroutine: lex -> token
// stream -> parse -> check, with one diagreport.Reporter threaded through
// every stage. It recovers a panic surfacing from any stage into an
// int001 "internal error" diagnostic rather than letting it
// cross into the caller — the pipeline's only recover().
func (p *Pipeline) Compile(source, filename string) (result *Result, err error) {
	sources := position.NewSourceMap()
	sources.AddFile(filename, source)
	reporter := diagreport.New(sources)

	defer func() {
		if rec := recover(); rec != nil {
			reporter.Error(position.Position{Filename: filename, Line: 1, Column: 1},
				fmt.Sprintf("internal error: %v", rec), "int001")
			result = &Result{Diagnostics: reporter.Diagnostics(), Ok: false}
			err = nil
		}
	}()

	if p.Logger != nil {
		p.Logger.LexerStart(filename)
	}

	lx := lexer.New(source, filename, reporter)
	tokens := lx.Lex()

	if p.Logger != nil {
		p.Logger.LexerEnd(filename, len(tokens))
	}

	ts := tokenstream.New(tokens)
	prs := parser.New(ts, reporter, filename)

	if p.Logger != nil {
		prs.SetLogger(p.Logger)
	}

	if p.Gate != nil {
		prs.SetGate(p.Gate)
	}

	program := prs.ParseProgram()

	if p.Logger != nil {
		p.Logger.CheckerPass(1, "declaration collection")
	}

	checker := typechecker.New(reporter)
	checker.Check(program)

	if p.Logger != nil {
		p.Logger.CheckerPass(2, "checking")
	}

	return &Result{
		Tokens:      tokens,
		Program:     program,
		Diagnostics: reporter.Diagnostics(),
		Ok:          !reporter.HasErrors(),
	}, nil
}

// Compile is a package-level convenience wrapping a default Pipeline, for
// a collaborator that has no tspp.toml to load and wants no stage
// logging — the common case.
func Compile(source, filename string) (*Result, error) {
	return New().Compile(source, filename)
}
