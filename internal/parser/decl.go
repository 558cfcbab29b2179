package parser

import (
	"github.com/theQuarky/tspp/internal/ast"
	"github.com/theQuarky/tspp/internal/position"
	"github.com/theQuarky/tspp/internal/token"
)

// parseDeclaration is the declaration sub-parser's entry point: access
// modifiers and `#`-attributes (storage classes included), then the head
// keyword. The modifiers and attributes are accepted in any order; their
// order is not checked, and when more than one storage class appears the
// last one wins.
func (p *Parser) parseDeclaration() ast.Declaration {
	start := p.peek().Pos

	access, storage, attrs, funcMods, classMods := p.parseModifiersAndAttributes()

	switch {
	case p.check(token.LET) || p.check(token.CONST):
		if d := p.parseVariableDecl(start, storage, attrs); d != nil {
			return d
		}
	case p.check(token.FUNCTION):
		if d := p.parseFunctionDecl(start, funcMods, attrs); d != nil {
			return d
		}
	case p.check(token.CLASS):
		if d := p.parseClassDecl(start, classMods, attrs); d != nil {
			return d
		}
	case p.check(token.INTERFACE):
		if d := p.parseInterfaceDecl(start, attrs); d != nil {
			return d
		}
	case p.check(token.ENUM):
		if d := p.parseEnumDecl(start, attrs); d != nil {
			return d
		}
	default:
		_ = access // top-level access modifiers are accepted but meaningless; the checker never consults them

		p.errorf("syn001", "Expected declaration, found %s", p.describeCurrent())
	}

	return nil
}

// parseModifiersAndAttributes consumes any mixture of access modifiers and
// `#`-attribute tokens, classifying each attribute into the storage
// class, function-modifier, or class-modifier buckets, while also
// recording every attribute verbatim for the
// declaration node's Attributes field.
func (p *Parser) parseModifiersAndAttributes() (access ast.AccessModifier, storage ast.StorageClass, attrs []*ast.Attribute, funcMods []ast.FunctionModifier, classMods []ast.ClassModifier) {
	access = ast.AccessPublic

	for {
		switch {
		case p.check(token.PUBLIC):
			access = ast.AccessPublic
			p.advance()
		case p.check(token.PRIVATE):
			access = ast.AccessPrivate
			p.advance()
		case p.check(token.PROTECTED):
			access = ast.AccessProtected
			p.advance()
		case p.check(token.ATTRIBUTE):
			attr := p.parseAttribute()
			attrs = append(attrs, attr)

			spelling := "#" + attr.Name

			switch {
			case token.IsStorageClass(spelling):
				storage = storageClassFor(spelling)
			case token.IsFunctionModifier(spelling):
				funcMods = append(funcMods, functionModifierFor(spelling))
			case token.IsClassModifier(spelling):
				classMods = append(classMods, classModifierFor(spelling))
			}
		default:
			return
		}
	}
}

// parseAttribute scans one `#identifier` (optionally `(expr)`) token into
// an *ast.Attribute; Name omits the leading `#`.
func (p *Parser) parseAttribute() *ast.Attribute {
	tok := p.advance()
	name := tok.Lexeme[1:] // strip '#'

	var arg ast.Expression
	if p.match(token.LPAREN) {
		if !p.check(token.RPAREN) {
			arg = p.parseExpression()
		}

		p.consume(token.RPAREN, "to close attribute argument")
	}

	return &ast.Attribute{Span: spanOf(tok.Pos, p.previous().Pos), Name: name, Arg: arg}
}

func storageClassFor(attr string) ast.StorageClass {
	switch attr {
	case "#stack":
		return ast.StorageStack
	case "#heap":
		return ast.StorageHeap
	case "#static":
		return ast.StorageStatic
	default:
		return ast.StorageNone
	}
}

func functionModifierFor(attr string) ast.FunctionModifier {
	switch attr {
	case "#inline":
		return ast.ModInline
	case "#virtual":
		return ast.ModVirtual
	case "#unsafe":
		return ast.ModUnsafe
	case "#simd":
		return ast.ModSIMD
	case "#async":
		return ast.ModAsync
	default:
		return ast.ModInline
	}
}

func classModifierFor(attr string) ast.ClassModifier {
	switch attr {
	case "#aligned":
		return ast.ClassAligned
	case "#packed":
		return ast.ClassPacked
	case "#abstract":
		return ast.ClassAbstract
	default:
		return ast.ClassAligned
	}
}

func (p *Parser) expectIdentifierName(context string) (string, bool) {
	if !p.check(token.IDENTIFIER) {
		p.errorf("syn001", "Expected %s, found %s", context, p.describeCurrent())

		return "", false
	}

	name := p.peek().Lexeme
	p.advance()

	return name, true
}

// consumeSemicolon ends a statement. End of input, a closing `}`, and a
// lexer error token are accepted as implicit terminators: the first two
// per the ASI rule's follower set, the last because the lexer already
// reported it and a second "expected ;" on top would only be noise.
func (p *Parser) consumeSemicolon() {
	if p.match(token.SEMICOLON) {
		return
	}

	if p.peek().IsEOF() || p.check(token.RBRACE) || p.check(token.ERROR) {
		return
	}

	p.errorf("syn002", "Expected ; to end the statement, found %s", p.describeCurrent())
}

// parseVariableDecl handles `(let|const) name (: type)? (= expr)? ;`.
// `const` without an initializer is a sem006 diagnostic, not a syntax
// error — the AST is still built.
func (p *Parser) parseVariableDecl(start position.Position, storage ast.StorageClass, attrs []*ast.Attribute) *ast.VariableDecl {
	isConst := p.check(token.CONST)
	p.advance() // 'let' or 'const'

	nameTok := p.peek()

	name, ok := p.expectIdentifierName("variable name")
	if !ok {
		return nil
	}

	var typ ast.TypeNode
	if p.match(token.COLON) {
		typ = p.parseType()
	}

	var init ast.Expression
	if p.match(token.ASSIGN) {
		init = p.parseExpression()
	}

	if isConst && init == nil {
		p.errorAt(nameTok, "sem006", "Const declarations must have an initializer")
	}

	p.consumeSemicolon()

	return &ast.VariableDecl{
		Span: p.spanFrom(start), Name: name, Type: typ, Init: init,
		Storage: storage, IsConst: isConst, Attributes: attrs,
	}
}

// parseFunctionDecl handles plain and generic functions: `function name
// (< T (, U)* >)? (where T : Bound, …)? ( params ) (: returnType)?
// (throws T (, T)*)? ( { body } | ; )`.
func (p *Parser) parseFunctionDecl(start position.Position, mods []ast.FunctionModifier, attrs []*ast.Attribute) *ast.FunctionDecl {
	p.advance() // 'function'

	name, ok := p.expectIdentifierName("function name")
	if !ok {
		return nil
	}

	var generics []*ast.GenericParam
	if p.match(token.LT) {
		generics = p.parseGenericParamList()
		p.consume(token.GT, "to close generic parameter list")
	}

	var constraints []*ast.Constraint
	if p.match(token.WHERE) {
		constraints = p.parseConstraintList()
	}

	p.consume(token.LPAREN, "after function name")
	params := p.parseParameterList()
	p.consume(token.RPAREN, "to close parameter list")

	var ret ast.TypeNode
	if p.match(token.COLON) {
		ret = p.parseType()
	}

	var throws []ast.TypeNode
	if p.match(token.THROWS) {
		p.requireFeature("throws", "throws clauses", p.previous().Pos)

		throws = p.parseTypeList()
	}

	var body *ast.BlockStmt
	if p.check(token.LBRACE) {
		body = p.parseBlock()
	} else {
		p.consumeSemicolon()
	}

	return &ast.FunctionDecl{
		Span: p.spanFrom(start), Name: name, Generics: generics, Constraints: constraints,
		Params: params, ReturnType: ret, Throws: throws, Modifiers: mods, Body: body, Attributes: attrs,
	}
}

func (p *Parser) parseGenericParamList() []*ast.GenericParam {
	p.requireFeature("generics", "generics", p.peek().Pos)

	var list []*ast.GenericParam

	for {
		tok := p.peek()

		name, ok := p.expectIdentifierName("generic parameter name")
		if !ok {
			return list
		}

		list = append(list, &ast.GenericParam{Span: spanOf(tok.Pos, p.previous().Pos), Name: name})

		if !p.match(token.COMMA) {
			return list
		}
	}
}

// parseConstraintList handles the `T : Bound (, U : Bound)*` of a where
// clause. The checker, not the parser, enforces that each constrained
// name was declared as a generic parameter.
func (p *Parser) parseConstraintList() []*ast.Constraint {
	var list []*ast.Constraint

	for {
		tok := p.peek()

		name, ok := p.expectIdentifierName("constraint parameter name")
		if !ok {
			return list
		}

		if !p.consume(token.COLON, "in generic constraint") {
			return list
		}

		bound := p.parseType()
		list = append(list, &ast.Constraint{Span: p.spanFrom(tok.Pos), Param: name, Bound: bound})

		if !p.match(token.COMMA) {
			return list
		}
	}
}

// parseParameterList handles `(ref? const? name : type (= default)?)(, …)`.
// The caller has already consumed the opening '(' and consumes the
// closing ')'.
func (p *Parser) parseParameterList() []*ast.Parameter {
	var params []*ast.Parameter

	if p.check(token.RPAREN) {
		return params
	}

	for {
		start := p.peek().Pos
		isRef := p.match(token.REF)
		isConst := p.match(token.CONST)

		name, ok := p.expectIdentifierName("parameter name")
		if !ok {
			return params
		}

		var typ ast.TypeNode
		if p.consume(token.COLON, "after parameter name") {
			typ = p.parseType()
		}

		var def ast.Expression
		if p.match(token.ASSIGN) {
			def = p.parseExpression()
		}

		params = append(params, &ast.Parameter{
			Span: p.spanFrom(start), Name: name, Type: typ, Default: def, IsRef: isRef, IsConst: isConst,
		})

		if !p.match(token.COMMA) {
			return params
		}
	}
}

// parseClassDecl handles `class Name (< generics >)? (extends Base)?
// (implements I, …)? { members }`.
func (p *Parser) parseClassDecl(start position.Position, mods []ast.ClassModifier, attrs []*ast.Attribute) *ast.ClassDecl {
	p.advance() // 'class'

	name, ok := p.expectIdentifierName("class name")
	if !ok {
		return nil
	}

	var generics []*ast.GenericParam
	if p.match(token.LT) {
		generics = p.parseGenericParamList()
		p.consume(token.GT, "to close generic parameter list")
	}

	var base ast.TypeNode
	if p.match(token.EXTENDS) {
		base = p.parseType()
	}

	var interfaces []ast.TypeNode
	if p.match(token.IMPLEMENTS) {
		interfaces = p.parseTypeList()
	}

	p.consume(token.LBRACE, "to open class body")

	var members []ast.Declaration

	for !p.check(token.RBRACE) && !p.ts.IsAtEnd() {
		// A semicolon between members (ASI puts one after a member's
		// closing `}` or after the body's `{`) is skipped.
		if p.match(token.SEMICOLON) {
			continue
		}

		before := p.ts.Position()

		if m := p.parseClassMember(); m != nil {
			members = append(members, m)
		}

		if p.ts.Position() == before {
			p.synchronizeClassMember()
		}
	}

	p.consume(token.RBRACE, "to close class body")

	return &ast.ClassDecl{
		Span: p.spanFrom(start), Name: name, Generics: generics, Modifiers: mods,
		Base: base, Interfaces: interfaces, Members: members, Attributes: attrs,
	}
}

// synchronizeClassMember keeps a class-body parse from giving up because
// one member failed: it skips to the next member start and continues.
func (p *Parser) synchronizeClassMember() {
	p.advance()

	for !p.ts.IsAtEnd() && !p.check(token.RBRACE) {
		t := p.peek()
		if t.IsAccessModifier() || t.IsAttribute() ||
			t.Kind == token.CONSTRUCTOR || t.Kind == token.FUNCTION ||
			t.Kind == token.LET || t.Kind == token.CONST ||
			t.Kind == token.GET || t.Kind == token.SET {
			return
		}

		p.advance()
	}
}

func (p *Parser) parseClassMember() ast.Declaration {
	start := p.peek().Pos

	access, storage, attrs, funcMods, _ := p.parseModifiersAndAttributes()

	switch {
	case p.check(token.CONSTRUCTOR):
		if d := p.parseConstructorDecl(start, access, attrs); d != nil {
			return d
		}
	case p.check(token.FUNCTION):
		if d := p.parseMethodDecl(start, access, funcMods, attrs); d != nil {
			return d
		}
	case p.check(token.LET) || p.check(token.CONST):
		if d := p.parseFieldDecl(start, access, storage, attrs); d != nil {
			return d
		}
	case p.check(token.GET):
		if d := p.parsePropertyDecl(start, access, ast.PropertyGetter, attrs); d != nil {
			return d
		}
	case p.check(token.SET):
		if d := p.parsePropertyDecl(start, access, ast.PropertySetter, attrs); d != nil {
			return d
		}
	default:
		p.errorf("syn001", "Expected class member, found %s", p.describeCurrent())
	}

	return nil
}

func (p *Parser) parseConstructorDecl(start position.Position, access ast.AccessModifier, attrs []*ast.Attribute) *ast.ConstructorDecl {
	p.advance() // 'constructor'
	p.consume(token.LPAREN, "after constructor")
	params := p.parseParameterList()
	p.consume(token.RPAREN, "to close parameter list")
	body := p.parseBlock()

	return &ast.ConstructorDecl{Span: p.spanFrom(start), Access: access, Params: params, Body: body, Attributes: attrs}
}

func (p *Parser) parseMethodDecl(start position.Position, access ast.AccessModifier, mods []ast.FunctionModifier, attrs []*ast.Attribute) *ast.MethodDecl {
	p.advance() // 'function'

	name, ok := p.expectIdentifierName("method name")
	if !ok {
		return nil
	}

	var generics []*ast.GenericParam
	if p.match(token.LT) {
		generics = p.parseGenericParamList()
		p.consume(token.GT, "to close generic parameter list")
	}

	p.consume(token.LPAREN, "after method name")
	params := p.parseParameterList()
	p.consume(token.RPAREN, "to close parameter list")

	var ret ast.TypeNode
	if p.match(token.COLON) {
		ret = p.parseType()
	}

	var throws []ast.TypeNode
	if p.match(token.THROWS) {
		p.requireFeature("throws", "throws clauses", p.previous().Pos)

		throws = p.parseTypeList()
	}

	body := p.parseBlock()

	return &ast.MethodDecl{
		Span: p.spanFrom(start), Access: access, Name: name, Generics: generics,
		Params: params, ReturnType: ret, Throws: throws, Modifiers: mods, Body: body, Attributes: attrs,
	}
}

func (p *Parser) parseFieldDecl(start position.Position, access ast.AccessModifier, storage ast.StorageClass, attrs []*ast.Attribute) *ast.FieldDecl {
	isConst := p.check(token.CONST)
	p.advance() // 'let' or 'const'

	name, ok := p.expectIdentifierName("field name")
	if !ok {
		return nil
	}

	var typ ast.TypeNode
	if p.match(token.COLON) {
		typ = p.parseType()
	}

	var init ast.Expression
	if p.match(token.ASSIGN) {
		init = p.parseExpression()
	}

	if isConst && init == nil {
		p.errorAt(p.previous(), "sem006", "Const declarations must have an initializer")
	}

	p.consumeSemicolon()

	return &ast.FieldDecl{
		Span: p.spanFrom(start), Access: access, Name: name, Type: typ,
		Init: init, IsConst: isConst, Storage: storage, Attributes: attrs,
	}
}

// parsePropertyDecl handles `get name (: returnType)? { body }` (an empty
// `()` after a getter's name is also accepted) and
// `set name ( value : type ) { body }`. The setter-has-one-parameter /
// getter-has-none invariant is enforced by the checker, not
// here — a malformed property still parses to a node the checker can
// report on.
func (p *Parser) parsePropertyDecl(start position.Position, access ast.AccessModifier, kind ast.PropertyKind, attrs []*ast.Attribute) *ast.PropertyDecl {
	p.advance() // 'get' or 'set'

	name, ok := p.expectIdentifierName("property name")
	if !ok {
		return nil
	}

	decl := &ast.PropertyDecl{Access: access, Kind: kind, Name: name, Attributes: attrs}

	if kind == ast.PropertySetter {
		p.consume(token.LPAREN, "after setter name")

		if !p.check(token.RPAREN) {
			paramStart := p.peek().Pos

			paramName, ok := p.expectIdentifierName("setter parameter name")
			if ok {
				var typ ast.TypeNode
				if p.consume(token.COLON, "after setter parameter name") {
					typ = p.parseType()
				}

				decl.Param = &ast.Parameter{Span: p.spanFrom(paramStart), Name: paramName, Type: typ}
			}
		}

		p.consume(token.RPAREN, "to close setter parameter list")
	} else {
		if p.match(token.LPAREN) {
			p.consume(token.RPAREN, "to close getter parameter list")
		}

		if p.match(token.COLON) {
			decl.ReturnType = p.parseType()
		}
	}

	decl.Body = p.parseBlock()
	decl.Span = p.spanFrom(start)

	return decl
}

// parseEnumDecl handles `enum Name (: Underlying)? { member (= expr)?
// (, member …)? ,? }`.
func (p *Parser) parseEnumDecl(start position.Position, attrs []*ast.Attribute) *ast.EnumDecl {
	p.advance() // 'enum'

	name, ok := p.expectIdentifierName("enum name")
	if !ok {
		return nil
	}

	var underlying ast.TypeNode
	if p.match(token.COLON) {
		underlying = p.parseType()
	}

	p.consume(token.LBRACE, "to open enum body")

	var members []*ast.EnumMember

	for !p.check(token.RBRACE) && !p.ts.IsAtEnd() {
		memberStart := p.peek().Pos

		memberName, ok := p.expectIdentifierName("enum member name")
		if !ok {
			break
		}

		var value ast.Expression
		if p.match(token.ASSIGN) {
			value = p.parseExpression()
		}

		members = append(members, &ast.EnumMember{Span: p.spanFrom(memberStart), Name: memberName, Value: value})

		if !p.match(token.COMMA) {
			break
		}
	}

	p.consume(token.RBRACE, "to close enum body")

	return &ast.EnumDecl{Span: p.spanFrom(start), Name: name, Underlying: underlying, Members: members, Attributes: attrs}
}

// parseInterfaceDecl is a class-shaped declaration whose body holds
// method signatures (no bodies) only; any other member, a field slot
// included, is reported and skipped.
func (p *Parser) parseInterfaceDecl(start position.Position, attrs []*ast.Attribute) *ast.InterfaceDecl {
	p.advance() // 'interface'

	name, ok := p.expectIdentifierName("interface name")
	if !ok {
		return nil
	}

	var generics []*ast.GenericParam
	if p.match(token.LT) {
		generics = p.parseGenericParamList()
		p.consume(token.GT, "to close generic parameter list")
	}

	p.consume(token.LBRACE, "to open interface body")

	var methods []*ast.InterfaceMethod

	for !p.check(token.RBRACE) && !p.ts.IsAtEnd() {
		methodStart := p.peek().Pos

		if !p.consume(token.FUNCTION, "interface method signature") {
			p.synchronizeClassMember()

			continue
		}

		methodName, ok := p.expectIdentifierName("method name")
		if !ok {
			p.synchronizeClassMember()

			continue
		}

		p.consume(token.LPAREN, "after method name")
		params := p.parseParameterList()
		p.consume(token.RPAREN, "to close parameter list")

		var ret ast.TypeNode
		if p.match(token.COLON) {
			ret = p.parseType()
		}

		var throws []ast.TypeNode
		if p.match(token.THROWS) {
			p.requireFeature("throws", "throws clauses", p.previous().Pos)

			throws = p.parseTypeList()
		}

		p.consumeSemicolon()

		methods = append(methods, &ast.InterfaceMethod{
			Span: p.spanFrom(methodStart), Name: methodName, Params: params, ReturnType: ret, Throws: throws,
		})
	}

	p.consume(token.RBRACE, "to close interface body")

	return &ast.InterfaceDecl{Span: p.spanFrom(start), Name: name, Generics: generics, Methods: methods, Attributes: attrs}
}
