package parser

import (
	"github.com/theQuarky/tspp/internal/ast"
	"github.com/theQuarky/tspp/internal/position"
	"github.com/theQuarky/tspp/internal/token"
)

// parseExpression is the expression sub-parser's entry point: a
// precedence-climbing Pratt parser over the fixed precedence ladder,
// bottoming out at assignment (the loosest-binding form) and working down
// through conditional, logical, bitwise, equality, relational, shift,
// additive, multiplicative, unary, and postfix to primary.
func (p *Parser) parseExpression() ast.Expression {
	p.exprDepth++
	if p.logger != nil {
		p.logger.ParserDepth(p.exprDepth, maxExprDepth)
	}

	defer func() { p.exprDepth-- }()

	return p.parseAssignment()
}

// parseAssignment handles plain and compound assignment, which are
// right-associative and require the left-hand side to already have
// parsed as a valid l-value.
func (p *Parser) parseAssignment() ast.Expression {
	left := p.parseConditional()
	if left == nil {
		return nil
	}

	op, ok := assignOpFor(p.peek().Kind)
	if !ok {
		return left
	}

	opTok := p.advance()

	if !isAssignable(left) {
		p.errorAt(opTok, "syn003", "Invalid assignment target")
	}

	value := p.parseAssignment()

	return &ast.AssignmentExpr{Span: spanOf(left.GetSpan().Start, p.previous().Pos), Target: left, Op: op, Value: value}
}

func assignOpFor(k token.Kind) (ast.AssignOp, bool) {
	switch k {
	case token.ASSIGN:
		return ast.AssignPlain, true
	case token.PLUS_ASSIGN:
		return ast.AssignAdd, true
	case token.MINUS_ASSIGN:
		return ast.AssignSub, true
	case token.STAR_ASSIGN:
		return ast.AssignMul, true
	case token.SLASH_ASSIGN:
		return ast.AssignDiv, true
	case token.PERCENT_ASSIGN:
		return ast.AssignMod, true
	case token.AMP_ASSIGN:
		return ast.AssignAnd, true
	case token.PIPE_ASSIGN:
		return ast.AssignOr, true
	case token.CARET_ASSIGN:
		return ast.AssignXor, true
	default:
		return 0, false
	}
}

// isAssignable reports whether target is a valid l-value: an identifier,
// a member access, an index, or a member access rooted at `this`.
func isAssignable(target ast.Expression) bool {
	switch target.(type) {
	case *ast.Identifier, *ast.MemberExpr, *ast.IndexExpr:
		return true
	default:
		return false
	}
}

func (p *Parser) parseConditional() ast.Expression {
	cond := p.parseLogicalOr()
	if cond == nil || !p.match(token.QUESTION) {
		return cond
	}

	then := p.parseAssignment()
	p.consume(token.COLON, "in conditional expression")
	els := p.parseAssignment()

	return &ast.ConditionalExpr{Span: spanOf(cond.GetSpan().Start, p.previous().Pos), Cond: cond, Then: then, Else: els}
}

// binaryLevel is one rung of the precedence ladder: the set of operator
// tokens recognised at this level and the next-tighter parser to call for
// operands.
type binaryLevel struct {
	ops  map[token.Kind]ast.BinaryOp
	next func(*Parser) ast.Expression
}

func (p *Parser) parseBinaryLevel(lvl binaryLevel) ast.Expression {
	left := lvl.next(p)
	if left == nil {
		return nil
	}

	for {
		op, ok := lvl.ops[p.peek().Kind]
		if !ok {
			return left
		}

		p.advance()

		right := lvl.next(p)
		left = &ast.BinaryExpr{Span: spanOf(left.GetSpan().Start, p.previous().Pos), Left: left, Op: op, Right: right}
	}
}

func (p *Parser) parseLogicalOr() ast.Expression {
	return p.parseBinaryLevel(binaryLevel{ops: map[token.Kind]ast.BinaryOp{token.PIPEPIPE: ast.OpLogOr}, next: (*Parser).parseLogicalAnd})
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	return p.parseBinaryLevel(binaryLevel{ops: map[token.Kind]ast.BinaryOp{token.AMPAMP: ast.OpLogAnd}, next: (*Parser).parseBitOr})
}

func (p *Parser) parseBitOr() ast.Expression {
	return p.parseBinaryLevel(binaryLevel{ops: map[token.Kind]ast.BinaryOp{token.PIPE: ast.OpBitOr}, next: (*Parser).parseBitXor})
}

func (p *Parser) parseBitXor() ast.Expression {
	return p.parseBinaryLevel(binaryLevel{ops: map[token.Kind]ast.BinaryOp{token.CARET: ast.OpBitXor}, next: (*Parser).parseBitAnd})
}

func (p *Parser) parseBitAnd() ast.Expression {
	return p.parseBinaryLevel(binaryLevel{ops: map[token.Kind]ast.BinaryOp{token.AMP: ast.OpBitAnd}, next: (*Parser).parseEquality})
}

func (p *Parser) parseEquality() ast.Expression {
	return p.parseBinaryLevel(binaryLevel{
		ops:  map[token.Kind]ast.BinaryOp{token.EQ: ast.OpEq, token.NE: ast.OpNe},
		next: (*Parser).parseRelational,
	})
}

func (p *Parser) parseRelational() ast.Expression {
	return p.parseBinaryLevel(binaryLevel{
		ops: map[token.Kind]ast.BinaryOp{
			token.LT: ast.OpLt, token.GT: ast.OpGt, token.LE: ast.OpLe, token.GE: ast.OpGe,
		},
		next: (*Parser).parseShift,
	})
}

func (p *Parser) parseShift() ast.Expression {
	return p.parseBinaryLevel(binaryLevel{
		ops:  map[token.Kind]ast.BinaryOp{token.SHL: ast.OpShl, token.SHR: ast.OpShr},
		next: (*Parser).parseAdditive,
	})
}

func (p *Parser) parseAdditive() ast.Expression {
	return p.parseBinaryLevel(binaryLevel{
		ops:  map[token.Kind]ast.BinaryOp{token.PLUS: ast.OpAdd, token.MINUS: ast.OpSub},
		next: (*Parser).parseMultiplicative,
	})
}

func (p *Parser) parseMultiplicative() ast.Expression {
	return p.parseBinaryLevel(binaryLevel{
		ops: map[token.Kind]ast.BinaryOp{
			token.STAR: ast.OpMul, token.SLASH: ast.OpDiv, token.PERCENT: ast.OpMod,
		},
		next: (*Parser).parseUnary,
	})
}

// parseUnary handles prefix operators: `+ - ! ~ ++ -- @`. `@` prefixing
// an expression takes its address; `@` in postfix position
// (handled in parsePostfix) instead dereferences for member access.
func (p *Parser) parseUnary() ast.Expression {
	start := p.peek().Pos

	op, ok := unaryPrefixOpFor(p.peek().Kind)
	if !ok {
		return p.parsePostfix()
	}

	p.advance()

	operand := p.parseUnary()

	return &ast.UnaryExpr{Span: p.spanFrom(start), Op: op, Operand: operand, Prefix: true}
}

func unaryPrefixOpFor(k token.Kind) (ast.UnaryOp, bool) {
	switch k {
	case token.PLUS:
		return ast.OpPlus, true
	case token.MINUS:
		return ast.OpMinus, true
	case token.BANG:
		return ast.OpNot, true
	case token.TILDE:
		return ast.OpBitNot, true
	case token.PLUSPLUS:
		return ast.OpIncrement, true
	case token.MINUSMINUS:
		return ast.OpDecrement, true
	case token.AT:
		return ast.OpAddressOf, true
	default:
		return 0, false
	}
}

// parsePostfix handles the left-recursive chain of call, index, member
// (`.` and `@`), and postfix `++`/`--` applied to a primary expression.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	start := expr.GetSpan().Start

	for {
		switch {
		case p.match(token.DOT):
			name, ok := p.expectIdentifierName("member name")
			if !ok {
				return expr
			}

			expr = &ast.MemberExpr{Span: p.spanFrom(start), Object: expr, Member: name, ViaPointer: false}

		case p.check(token.AT) && p.peekNext(1).Kind == token.IDENTIFIER:
			p.advance()

			name := p.advance().Lexeme
			expr = &ast.MemberExpr{Span: p.spanFrom(start), Object: expr, Member: name, ViaPointer: true}

		case p.match(token.LBRACKET):
			index := p.parseExpression()
			p.consume(token.RBRACKET, "to close index expression")
			expr = &ast.IndexExpr{Span: p.spanFrom(start), Array: expr, Index: index}

		case p.check(token.LPAREN):
			expr = p.parseCallArgs(start, expr)

		case p.check(token.PLUSPLUS) || p.check(token.MINUSMINUS):
			op := ast.OpIncrement
			if p.peek().Kind == token.MINUSMINUS {
				op = ast.OpDecrement
			}

			p.advance()

			expr = &ast.UnaryExpr{Span: p.spanFrom(start), Op: op, Operand: expr, Prefix: false}

		default:
			return expr
		}
	}
}

// parseCallArgs parses `( arg (, arg)* )`, enforcing the 255-argument
// limit (syn004).
func (p *Parser) parseCallArgs(start position.Position, callee ast.Expression) ast.Expression {
	p.advance() // '('

	var args []ast.Expression

	if !p.check(token.RPAREN) {
		for {
			args = append(args, p.parseAssignment())

			if len(args) > maxCallArguments {
				p.errorf("syn004", "Call exceeds the maximum of %d arguments", maxCallArguments)
			}

			if !p.match(token.COMMA) {
				break
			}
		}
	}

	p.consume(token.RPAREN, "to close call argument list")

	return &ast.CallExpr{Span: p.spanFrom(start), Callee: callee, Args: args}
}

// parsePrimary handles literals, identifiers, `this`, parenthesized
// expressions, array literals, `new`, `cast<T>(expr)`, and the four
// compile-time operators.
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.peek()
	start := tok.Pos

	switch {
	case tok.Kind == token.NUMBER:
		p.advance()
		return &ast.Literal{Span: p.spanFrom(start), Kind: ast.LiteralNumber, Value: tok.Lexeme}
	case tok.Kind == token.STRING_LITERAL:
		p.advance()
		return &ast.Literal{Span: p.spanFrom(start), Kind: ast.LiteralString, Value: tok.Lexeme}
	case tok.Kind == token.CHAR_LITERAL:
		p.advance()
		return &ast.Literal{Span: p.spanFrom(start), Kind: ast.LiteralChar, Value: tok.Lexeme}
	case tok.Kind == token.TRUE:
		p.advance()
		return &ast.Literal{Span: p.spanFrom(start), Kind: ast.LiteralTrue, Value: tok.Lexeme}
	case tok.Kind == token.FALSE:
		p.advance()
		return &ast.Literal{Span: p.spanFrom(start), Kind: ast.LiteralFalse, Value: tok.Lexeme}
	case tok.Kind == token.NULL:
		p.advance()
		return &ast.Literal{Span: p.spanFrom(start), Kind: ast.LiteralNull, Value: tok.Lexeme}
	case tok.Kind == token.UNDEFINED:
		p.advance()
		return &ast.Literal{Span: p.spanFrom(start), Kind: ast.LiteralUndefined, Value: tok.Lexeme}
	case tok.Kind == token.THIS:
		p.advance()
		return &ast.ThisExpr{Span: p.spanFrom(start)}
	case tok.Kind == token.IDENTIFIER:
		p.advance()
		return &ast.Identifier{Span: p.spanFrom(start), Name: tok.Lexeme}
	case tok.Kind == token.LPAREN:
		p.advance()

		inner := p.parseExpression()
		p.consume(token.RPAREN, "to close parenthesized expression")

		return inner
	case tok.Kind == token.LBRACKET:
		return p.parseArrayLiteral(start)
	case tok.Kind == token.NEW:
		return p.parseNewExpr(start)
	case tok.Kind == token.CAST:
		return p.parseCastExpr(start)
	case tok.Kind == token.SIZEOF:
		return p.parseCompileTimeExpr(start, ast.CompileTimeSizeof)
	case tok.Kind == token.ALIGNOF:
		return p.parseCompileTimeExpr(start, ast.CompileTimeAlignof)
	case tok.Kind == token.TYPEOF:
		return p.parseCompileTimeExpr(start, ast.CompileTimeTypeof)
	case tok.Kind == token.CONSTEXPR:
		return p.parseCompileTimeExpr(start, ast.CompileTimeConstexpr)
	case tok.Kind == token.ERROR:
		p.advance() // already reported by the lexer

		return nil
	default:
		p.errorf("syn001", "Expected expression, found %s", p.describeCurrent())
		p.advance() // avoid an infinite loop at the call site

		return nil
	}
}

// parseArrayLiteral parses `[ (expr (, expr)*)? ]`. An empty literal is
// permitted syntactically — the checker, not the parser, flags it.
func (p *Parser) parseArrayLiteral(start position.Position) ast.Expression {
	p.advance() // '['

	var elements []ast.Expression

	if !p.check(token.RBRACKET) {
		for {
			elements = append(elements, p.parseAssignment())

			if !p.match(token.COMMA) {
				break
			}
		}
	}

	p.consume(token.RBRACKET, "to close array literal")

	return &ast.ArrayLiteral{Span: p.spanFrom(start), Elements: elements}
}

// parseNewExpr parses `new DottedName ( args )`. Constructor-argument
// arity/type checking against the named class is not yet performed
// anywhere in the pipeline — the arguments are parsed and recorded,
// nothing more.
func (p *Parser) parseNewExpr(start position.Position) ast.Expression {
	p.advance() // 'new'

	name, ok := p.expectIdentifierName("class name")
	if !ok {
		return nil
	}

	for p.match(token.DOT) {
		seg, ok := p.expectIdentifierName("class name segment")
		if !ok {
			break
		}

		name += "." + seg
	}

	var args []ast.Expression

	if p.consume(token.LPAREN, "after class name") {
		if !p.check(token.RPAREN) {
			for {
				args = append(args, p.parseAssignment())

				if !p.match(token.COMMA) {
					break
				}
			}
		}

		p.consume(token.RPAREN, "to close constructor argument list")
	}

	return &ast.NewExpr{Span: p.spanFrom(start), ClassName: name, Args: args}
}

func (p *Parser) parseCastExpr(start position.Position) ast.Expression {
	p.advance() // 'cast'
	p.consume(token.LT, "after cast")
	target := p.parseType()
	p.consume(token.GT, "to close cast target type")
	p.consume(token.LPAREN, "after cast<T>")
	inner := p.parseExpression()
	p.consume(token.RPAREN, "to close cast expression")

	return &ast.CastExpr{Span: p.spanFrom(start), TargetType: target, Expr: inner}
}

func (p *Parser) parseCompileTimeExpr(start position.Position, kind ast.CompileTimeKind) ast.Expression {
	p.requireFeature("compile_time_ops", kind.String()+" operators", start)
	p.advance() // operator keyword
	p.consume(token.LPAREN, "after "+kind.String())
	operand := p.parseExpression()
	p.consume(token.RPAREN, "to close "+kind.String()+" expression")

	return &ast.CompileTimeExpr{Span: p.spanFrom(start), Kind: kind, Operand: operand}
}
