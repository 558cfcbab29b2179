package parser

import (
	"github.com/theQuarky/tspp/internal/ast"
	"github.com/theQuarky/tspp/internal/position"
	"github.com/theQuarky/tspp/internal/token"
)

// parseStatement is the statement sub-parser's entry point: it dispatches
// on the current token kind. A failed statement
// reports a diagnostic, synchronises, and returns nil; the caller (a
// block or the orchestrator) keeps scanning.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.check(token.ERROR):
		p.advance() // already reported by the lexer

		return nil
	case p.check(token.SEMICOLON):
		p.advance() // empty statement, e.g. an ASI semicolon after `}`

		return nil
	case p.check(token.LBRACE):
		return p.parseBlock()
	case p.check(token.IF):
		return p.parseIfStmt()
	case p.check(token.SWITCH):
		return p.parseSwitchStmt()
	case p.check(token.WHILE):
		return p.parseWhileStmt()
	case p.check(token.DO):
		return p.parseDoWhileStmt()
	case p.check(token.FOR):
		return p.parseForStmt()
	case p.check(token.TRY):
		return p.parseTryStmt()
	case p.check(token.RETURN):
		return p.parseReturnStmt()
	case p.check(token.BREAK):
		return p.parseBreakStmt()
	case p.check(token.CONTINUE):
		return p.parseContinueStmt()
	case p.check(token.THROW):
		return p.parseThrowStmt()
	case p.check(token.ATTRIBUTE) && p.peek().Lexeme == "#asm":
		return p.parseAssemblyStmt()
	case p.check(token.LET) || p.check(token.CONST):
		return p.parseLocalDeclStmt()
	case p.check(token.IDENTIFIER) && p.peekNext(1).Kind == token.COLON:
		return p.parseLabeledStmt()
	default:
		return p.parseExpressionStmt()
	}
}

// parseBlock opens a new lexical scope; the scope itself is
// established by the checker, not the parser — this method only builds
// the node.
func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.peek().Pos
	p.advance() // '{'

	var stmts []ast.Statement

	for !p.check(token.RBRACE) && !p.ts.IsAtEnd() {
		before := p.ts.Position()

		if s := p.parseStatement(); s != nil {
			stmts = append(stmts, s)
		}

		if p.ts.Position() == before {
			p.synchronize()
		}
	}

	p.consume(token.RBRACE, "to close block")

	return &ast.BlockStmt{Span: p.spanFrom(start), Statements: stmts}
}

func (p *Parser) parseIfStmt() ast.Statement {
	start := p.peek().Pos
	p.advance() // 'if'
	p.consume(token.LPAREN, "after if")

	cond := p.parseExpression()
	p.consume(token.RPAREN, "to close if condition")

	then := p.parseStatement()

	var els ast.Statement
	if p.match(token.ELSE) {
		els = p.parseStatement()
	}

	return &ast.IfStmt{Span: p.spanFrom(start), Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseSwitchStmt() ast.Statement {
	start := p.peek().Pos
	p.advance() // 'switch'
	p.consume(token.LPAREN, "after switch")

	expr := p.parseExpression()
	p.consume(token.RPAREN, "to close switch expression")
	p.consume(token.LBRACE, "to open switch body")

	var cases []*ast.SwitchCase

	for !p.check(token.RBRACE) && !p.ts.IsAtEnd() {
		caseStart := p.peek().Pos

		var value ast.Expression

		if p.match(token.CASE) {
			value = p.parseExpression()
		} else if !p.match(token.DEFAULT) {
			p.errorf("syn001", "Expected case or default, found %s", p.describeCurrent())
			p.synchronize()

			continue
		}

		p.consume(token.COLON, "after case label")

		var body []ast.Statement
		for !p.check(token.CASE) && !p.check(token.DEFAULT) && !p.check(token.RBRACE) && !p.ts.IsAtEnd() {
			if s := p.parseStatement(); s != nil {
				body = append(body, s)
			}
		}

		cases = append(cases, &ast.SwitchCase{Span: p.spanFrom(caseStart), Value: value, Body: body})
	}

	p.consume(token.RBRACE, "to close switch body")

	return &ast.SwitchStmt{Span: p.spanFrom(start), Expr: expr, Cases: cases}
}

func (p *Parser) parseWhileStmt() ast.Statement {
	start := p.peek().Pos
	p.advance() // 'while'
	p.consume(token.LPAREN, "after while")

	cond := p.parseExpression()
	p.consume(token.RPAREN, "to close while condition")

	body := p.parseStatement()

	return &ast.WhileStmt{Span: p.spanFrom(start), Cond: cond, Body: body}
}

func (p *Parser) parseDoWhileStmt() ast.Statement {
	start := p.peek().Pos
	p.advance() // 'do'

	body := p.parseStatement()

	p.consume(token.WHILE, "after do-while body")
	p.consume(token.LPAREN, "after while")

	cond := p.parseExpression()
	p.consume(token.RPAREN, "to close do-while condition")
	p.consumeSemicolon()

	return &ast.DoWhileStmt{Span: p.spanFrom(start), Body: body, Cond: cond}
}

// parseForStmt handles both `for (init?; cond?; inc?) body` and, when the
// parenthesised head starts with `let`/`const` followed by `ident of`,
// the for-of form.
func (p *Parser) parseForStmt() ast.Statement {
	start := p.peek().Pos
	p.advance() // 'for'
	p.consume(token.LPAREN, "after for")

	if (p.check(token.LET) || p.check(token.CONST)) && p.peekNext(1).Kind == token.IDENTIFIER && p.peekNext(2).Kind == token.OF {
		return p.parseForOfStmt(start)
	}

	var init ast.Statement

	switch {
	case p.check(token.SEMICOLON):
		p.advance()
	case p.check(token.LET) || p.check(token.CONST):
		init = p.parseLocalDeclStmt()
	default:
		init = p.parseExpressionStmt()
	}

	var cond ast.Expression
	if !p.check(token.SEMICOLON) {
		cond = p.parseExpression()
	}

	p.consume(token.SEMICOLON, "after for condition")

	var inc ast.Expression
	if !p.check(token.RPAREN) {
		inc = p.parseExpression()
	}

	p.consume(token.RPAREN, "to close for clause")

	body := p.parseStatement()

	return &ast.ForStmt{Span: p.spanFrom(start), Init: init, Cond: cond, Inc: inc, Body: body}
}

func (p *Parser) parseForOfStmt(start position.Position) ast.Statement {
	isConst := p.check(token.CONST)
	p.advance() // 'let' or 'const'

	name, _ := p.expectIdentifierName("for-of variable name")
	p.consume(token.OF, "in for-of loop")

	iterable := p.parseExpression()
	p.consume(token.RPAREN, "to close for-of clause")

	body := p.parseStatement()

	return &ast.ForOfStmt{Span: p.spanFrom(start), IsConst: isConst, Name: name, Iterable: iterable, Body: body}
}

// parseTryStmt requires at least one catch clause or a finally block;
// violating input still yields a buildable node,
// with the checker free to flag the empty-handler case.
func (p *Parser) parseTryStmt() ast.Statement {
	start := p.peek().Pos
	p.advance() // 'try'

	body := p.parseBlock()

	var catches []*ast.CatchClause

	for p.check(token.CATCH) {
		catchStart := p.peek().Pos
		p.advance()
		p.consume(token.LPAREN, "after catch")

		name, _ := p.expectIdentifierName("catch parameter name")

		var typ ast.TypeNode
		if p.match(token.COLON) {
			typ = p.parseType()
		}

		p.consume(token.RPAREN, "to close catch parameter")

		clauseBody := p.parseBlock()

		catches = append(catches, &ast.CatchClause{
			Span: p.spanFrom(catchStart), Param: name, ParamType: typ, Body: clauseBody,
		})
	}

	var finally *ast.BlockStmt
	if p.match(token.FINALLY) {
		finally = p.parseBlock()
	}

	if len(catches) == 0 && finally == nil {
		p.errorAt(p.previous(), "syn002", "A try statement needs at least one catch clause or a finally block")
	}

	return &ast.TryStmt{Span: p.spanFrom(start), Body: body, Catches: catches, Finally: finally}
}

func (p *Parser) parseReturnStmt() ast.Statement {
	start := p.peek().Pos
	p.advance() // 'return'

	var value ast.Expression
	if !p.check(token.SEMICOLON) {
		value = p.parseExpression()
	}

	p.consumeSemicolon()

	return &ast.ReturnStmt{Span: p.spanFrom(start), Value: value}
}

func (p *Parser) parseBreakStmt() ast.Statement {
	start := p.peek().Pos
	p.advance() // 'break'

	var label string
	if p.check(token.IDENTIFIER) {
		label = p.advance().Lexeme
	}

	p.consumeSemicolon()

	return &ast.BreakStmt{Span: p.spanFrom(start), Label: label}
}

func (p *Parser) parseContinueStmt() ast.Statement {
	start := p.peek().Pos
	p.advance() // 'continue'

	var label string
	if p.check(token.IDENTIFIER) {
		label = p.advance().Lexeme
	}

	p.consumeSemicolon()

	return &ast.ContinueStmt{Span: p.spanFrom(start), Label: label}
}

func (p *Parser) parseThrowStmt() ast.Statement {
	start := p.peek().Pos
	p.advance() // 'throw'

	value := p.parseExpression()
	p.consumeSemicolon()

	return &ast.ThrowStmt{Span: p.spanFrom(start), Value: value}
}

// parseAssemblyStmt handles `#asm ( string-literal (, string-literal)* )
// ;`. The first string is the assembly code; the rest are
// constraint strings.
func (p *Parser) parseAssemblyStmt() ast.Statement {
	start := p.peek().Pos
	p.requireFeature("inline_asm", "#asm blocks", start)
	p.advance() // '#asm'
	p.consume(token.LPAREN, "after #asm")

	var code string

	var constraints []string

	if p.check(token.STRING_LITERAL) {
		code = p.advance().Lexeme

		for p.match(token.COMMA) {
			if p.check(token.STRING_LITERAL) {
				constraints = append(constraints, p.advance().Lexeme)
			}
		}
	} else {
		p.errorf("syn001", "Expected assembly code string, found %s", p.describeCurrent())
	}

	p.consume(token.RPAREN, "to close #asm argument list")
	p.consumeSemicolon()

	return &ast.AssemblyStmt{Span: p.spanFrom(start), Code: code, Constraints: constraints}
}

// parseLocalDeclStmt parses a `let`/`const` declaration appearing in
// statement position, wrapping it as a DeclarationStmt.
func (p *Parser) parseLocalDeclStmt() ast.Statement {
	start := p.peek().Pos

	var storage ast.StorageClass // local declarations carry no storage-class attribute prefix in statement position

	decl := p.parseVariableDecl(start, storage, nil)
	if decl == nil {
		return nil
	}

	return &ast.DeclarationStmt{Span: decl.GetSpan(), Decl: decl}
}

func (p *Parser) parseLabeledStmt() ast.Statement {
	start := p.peek().Pos
	label := p.advance().Lexeme
	p.advance() // ':'

	inner := p.parseStatement()

	return &ast.LabeledStmt{Span: p.spanFrom(start), Label: label, Stmt: inner}
}

func (p *Parser) parseExpressionStmt() ast.Statement {
	start := p.peek().Pos

	expr := p.parseExpression()
	if expr == nil {
		p.synchronize()

		return nil
	}

	p.consumeSemicolon()

	return &ast.ExpressionStmt{Span: p.spanFrom(start), Expr: expr}
}
