package parser

import (
	"github.com/theQuarky/tspp/internal/ast"
	"github.com/theQuarky/tspp/internal/position"
	"github.com/theQuarky/tspp/internal/token"
)

// parseType is the type sub-parser's entry point: a primary type followed
// by any number of postfix modifiers — array brackets, `@`-pointer
// suffixes, `&`-reference, and `|`-union. Postfix
// modifiers bind left-to-right, so `int[]@` is a pointer to an array,
// not an array of pointers.
func (p *Parser) parseType() ast.TypeNode {
	base := p.parsePrimaryType()
	if base == nil {
		return nil
	}

	return p.parseTypePostfix(base)
}

func (p *Parser) parseTypePostfix(base ast.TypeNode) ast.TypeNode {
	start := base.GetSpan().Start

	for {
		switch {
		case p.check(token.LBRACKET):
			p.advance()

			var size ast.Expression
			if !p.check(token.RBRACKET) {
				size = p.parseExpression()
			}

			p.consume(token.RBRACKET, "to close array type")
			base = &ast.ArrayType{Span: p.spanFrom(start), Elem: base, Size: size}

		case p.check(token.AT):
			p.advance()
			base = p.parsePointerSuffix(start, base)

		case p.check(token.AMP):
			p.advance()
			base = &ast.ReferenceType{Span: p.spanFrom(start), Base: base}

		case p.check(token.PIPE):
			p.advance()

			right := p.parseType()
			base = &ast.UnionType{Span: p.spanFrom(start), Left: base, Right: right}

			return base // union is the outermost form; no further postfix binds to its right operand here

		default:
			return base
		}
	}
}

// parsePointerSuffix handles the text following an already-consumed `@`:
// bare (`T@`, raw), or a bare-word kind (`T@safe`, `T@unsafe`,
// `T@aligned(N)`). These kind words are ordinary identifiers, not
// keywords, so they are matched by lexeme.
func (p *Parser) parsePointerSuffix(start position.Position, base ast.TypeNode) ast.TypeNode {
	kind := ast.PointerRaw

	var alignment ast.Expression

	if p.check(token.IDENTIFIER) {
		switch p.peek().Lexeme {
		case "safe":
			kind = ast.PointerSafe
			p.advance()
		case "unsafe":
			kind = ast.PointerUnsafe
			p.advance()
		case "aligned":
			kind = ast.PointerAligned
			p.advance()
			p.consume(token.LPAREN, "after @aligned")
			alignment = p.parseExpression()
			p.consume(token.RPAREN, "to close @aligned argument")
		}
	}

	return &ast.PointerType{Span: p.spanFrom(start), Base: base, Kind: kind, Alignment: alignment}
}

// parsePrimaryType parses the unmodified head of a type: a primitive
// keyword, a smart-pointer attribute, or a (possibly dotted, possibly
// generic) name.
func (p *Parser) parsePrimaryType() ast.TypeNode {
	start := p.peek().Pos

	switch {
	case p.check(token.INT):
		p.advance()
		return &ast.PrimitiveType{Span: p.spanFrom(start), Kind: ast.PrimitiveInt}
	case p.check(token.FLOAT):
		p.advance()
		return &ast.PrimitiveType{Span: p.spanFrom(start), Kind: ast.PrimitiveFloat}
	case p.check(token.BOOL):
		p.advance()
		return &ast.PrimitiveType{Span: p.spanFrom(start), Kind: ast.PrimitiveBool}
	case p.check(token.STRING_TYPE):
		p.advance()
		return &ast.PrimitiveType{Span: p.spanFrom(start), Kind: ast.PrimitiveString}
	case p.check(token.VOID):
		p.advance()
		return &ast.PrimitiveType{Span: p.spanFrom(start), Kind: ast.PrimitiveVoid}

	case p.check(token.ATTRIBUTE) && token.IsSmartPointerKind(p.peek().Lexeme):
		return p.parseSmartPointerType(start)

	case p.check(token.LPAREN):
		return p.parseFunctionTypeOrParen(start)

	case p.check(token.IDENTIFIER):
		return p.parseNamedOrTemplateType(start)

	default:
		p.errorf("syn001", "Expected type, found %s", p.describeCurrent())

		return nil
	}
}

func (p *Parser) parseSmartPointerType(start position.Position) ast.TypeNode {
	tok := p.advance() // '#shared' | '#unique' | '#weak'

	var kind ast.SmartKind

	switch tok.Lexeme {
	case "#unique":
		kind = ast.SmartUnique
	case "#weak":
		kind = ast.SmartWeak
	default:
		kind = ast.SmartShared
	}

	p.consume(token.LT, "after smart pointer attribute")
	pointee := p.parseType()
	p.consume(token.GT, "to close smart pointer type")

	return &ast.SmartPointerType{Span: p.spanFrom(start), Pointee: pointee, Kind: kind}
}

// parseFunctionTypeOrParen handles a parenthesized parameter-type list;
// the lexical grammar has no arrow token, so a plain parenthesized type
// group degenerates to whatever single type it wraps.
func (p *Parser) parseFunctionTypeOrParen(start position.Position) ast.TypeNode {
	p.advance() // '('

	var params []ast.TypeNode
	if !p.check(token.RPAREN) {
		params = p.parseTypeList()
	}

	p.consume(token.RPAREN, "to close type group")

	if len(params) == 1 {
		return params[0]
	}

	return &ast.FunctionType{Span: p.spanFrom(start), Params: params}
}

// parseNamedOrTemplateType parses a dotted identifier chain, optionally
// applied to a `<...>` type-argument list.
func (p *Parser) parseNamedOrTemplateType(start position.Position) ast.TypeNode {
	parts := []string{p.advance().Lexeme}

	for p.match(token.DOT) {
		name, ok := p.expectIdentifierName("qualified type segment")
		if !ok {
			break
		}

		parts = append(parts, name)
	}

	var base ast.TypeNode
	if len(parts) > 1 {
		base = &ast.QualifiedType{Span: p.spanFrom(start), Parts: parts}
	} else {
		base = &ast.NamedType{Span: p.spanFrom(start), Name: parts[0]}
	}

	if !p.check(token.LT) {
		return base
	}

	named, ok := base.(*ast.NamedType)
	if !ok {
		// Qualified names are not generic; leave '<' for the
		// caller (it will be read as a comparison operator instead).
		return base
	}

	p.advance() // '<'
	args := p.parseTypeList()
	p.consume(token.GT, "to close type argument list")

	return &ast.TemplateType{Span: p.spanFrom(start), Base: named, Args: args}
}

// parseTypeList parses a comma-separated list of types, used for
// `implements`/`throws` clauses and template/function-type argument lists.
func (p *Parser) parseTypeList() []ast.TypeNode {
	var list []ast.TypeNode

	for {
		t := p.parseType()
		if t != nil {
			list = append(list, t)
		}

		if !p.match(token.COMMA) {
			return list
		}
	}
}
