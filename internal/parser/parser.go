// Package parser is a hand-written recursive-descent, Pratt-style parser
// that lowers a TSPP token stream to the AST defined in internal/ast. It
// is organised as cooperating sub-parsers — expression, statement,
// declaration, and type — that all share one Parser context rather than
// holding pointers to each other.
//
// No production ever throws: a failed parse reports at least one
// diagnostic through the shared reporter and returns a nil sentinel node.
// Failed expression statements and blocks resynchronise with
// Stream.Synchronize, and a class or interface body skips to the next
// member start. The orchestrator loop in ParseProgram drops the sentinel
// and does not resynchronise on its own.
package parser

import (
	"fmt"

	"github.com/theQuarky/tspp/internal/ast"
	"github.com/theQuarky/tspp/internal/config"
	"github.com/theQuarky/tspp/internal/diagreport"
	"github.com/theQuarky/tspp/internal/diagslog"
	"github.com/theQuarky/tspp/internal/position"
	"github.com/theQuarky/tspp/internal/token"
	"github.com/theQuarky/tspp/internal/tokenstream"
)

// maxCallArguments is the hard limit on a call's argument list.
const maxCallArguments = 255

// maxExprDepth is the expression-recursion depth at which the parser starts
// warning through its logger, well short of a Go goroutine stack overflow
// but deep enough to flag a pathologically nested expression.
const maxExprDepth = 200

// Parser holds the shared state every sub-parser reads and mutates: the
// token cursor and the diagnostic reporter. Sub-parsers are plain methods
// on this type rather than separate structs wired together after
// construction.
type Parser struct {
	ts        *tokenstream.Stream
	rep       *diagreport.Reporter
	filename  string
	logger    *diagslog.Logger
	gate      *config.Gate
	exprDepth int
}

// New constructs a Parser over ts, reporting through rep.
func New(ts *tokenstream.Stream, rep *diagreport.Reporter, filename string) *Parser {
	return &Parser{ts: ts, rep: rep, filename: filename}
}

// SetLogger attaches a stage logger used for recursion-depth tracing; a
// Parser built via New without calling this stays silent.
func (p *Parser) SetLogger(l *diagslog.Logger) { p.logger = l }

// SetGate attaches the project's feature gate; a Parser built via New
// without calling this accepts every feature (the GLOSSARY's "Feature
// gate" is only active once a tspp.toml has actually been loaded).
func (p *Parser) SetGate(g *config.Gate) { p.gate = g }

// requireFeature reports a syn001-class diagnostic at pos when name isn't
// allowed by the active feature gate, but never stops the parse — the
// offending construct is still parsed into the AST so the rest of the file
// keeps checking.
func (p *Parser) requireFeature(name, syntax string, pos position.Position) {
	if p.gate != nil && !p.gate.FeatureAllowed(name) {
		p.errorAt(token.Token{Pos: pos}, "syn001", "%s is not enabled by this project's language_version", syntax)
	}
}

// ParseProgram is the orchestrator loop: while not at end, it
// decides declaration-or-statement by looking at the current token and
// dispatches. A failed declaration or statement is dropped and the loop
// continues from wherever the sub-parser stopped; it does not call
// synchronize. The success status is not returned here — Ok reports it,
// and since the reporter is shared with the lexer it covers lexical
// errors too.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.peek().Pos
	prog := &ast.Program{}

	for !p.ts.IsAtEnd() {
		before := p.ts.Position()

		// Error tokens already carried their diagnostic out of the lexer;
		// consuming them silently keeps one lexical error from cascading
		// into unrelated-looking parse errors.
		if p.check(token.ERROR) {
			p.advance()

			continue
		}

		var decl ast.Declaration
		if p.startsDeclaration() {
			decl = p.parseDeclaration()
		} else {
			stmt := p.parseStatement()
			if stmt != nil {
				decl = &ast.StatementDecl{Span: stmt.GetSpan(), Stmt: stmt}
			}
		}

		if decl != nil {
			prog.Declarations = append(prog.Declarations, decl)
		}

		// Guarantee forward progress: if nothing was consumed and no
		// recovery already advanced the cursor, force an advance so a
		// pathological token never loops the orchestrator forever.
		if p.ts.Position() == before {
			p.ts.Advance()
		}
	}

	end := p.previous().Pos
	prog.Span = spanOf(start, end)

	return prog
}

// Ok reports whether the reporter accumulated zero Error-severity
// diagnostics, the orchestrator's success criterion.
func (p *Parser) Ok() bool { return !p.rep.HasErrors() }

func (p *Parser) startsDeclaration() bool {
	// `#asm` is lexically an attribute but syntactically a statement head.
	if p.check(token.ATTRIBUTE) && p.peek().Lexeme == "#asm" {
		return false
	}

	return p.peek().IsDeclarationStart()
}

// --- shared cursor helpers -------------------------------------------------

func (p *Parser) peek() token.Token          { return p.ts.Peek() }
func (p *Parser) peekNext(n int) token.Token { return p.ts.PeekNext(n) }
func (p *Parser) previous() token.Token      { return p.ts.Previous() }
func (p *Parser) advance() token.Token       { return p.ts.Advance() }
func (p *Parser) check(k token.Kind) bool    { return p.ts.Check(k) }
func (p *Parser) match(k token.Kind) bool    { return p.ts.Match(k) }

// consume advances past the current token if it has kind k, else reports
// a syn001/syn002-class diagnostic at the current position and returns
// false without advancing.
func (p *Parser) consume(k token.Kind, context string) bool {
	if p.check(k) {
		p.advance()

		return true
	}

	code := "syn001"
	if k.IsDelimiter() {
		code = "syn002"
	}

	p.errorf(code, "Expected %s %s, found %s", k.String(), context, p.describeCurrent())

	return false
}

func (p *Parser) describeCurrent() string {
	cur := p.peek()
	if cur.IsEOF() {
		return "end of file"
	}

	return fmt.Sprintf("%q", cur.String())
}

func (p *Parser) errorf(code, format string, args ...interface{}) {
	p.rep.Error(p.peek().Pos, fmt.Sprintf(format, args...), code)
}

func (p *Parser) errorAt(tok token.Token, code, format string, args ...interface{}) {
	p.rep.Error(tok.Pos, fmt.Sprintf(format, args...), code)
}

// synchronize is the statement-level recovery step, delegated to the token
// stream's Synchronize.
func (p *Parser) synchronize() { p.ts.Synchronize() }
