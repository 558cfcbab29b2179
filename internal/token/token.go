package token

import "github.com/theQuarky/tspp/internal/position"

// Token is the tagged record (kind, lexeme, location, optional error
// message) that flows through the rest of the pipeline. ErrorMessage is
// non-empty iff Kind is ERROR.
type Token struct {
	Kind         Kind
	Lexeme       string
	Pos          position.Position
	ErrorMessage string
}

func New(kind Kind, lexeme string, pos position.Position) Token {
	return Token{Kind: kind, Lexeme: lexeme, Pos: pos}
}

// NewError builds an ERROR token; message must be non-empty per the
// token-stream invariant that every error token carries one.
func NewError(lexeme string, pos position.Position, message string) Token {
	return Token{Kind: ERROR, Lexeme: lexeme, Pos: pos, ErrorMessage: message}
}

func (t Token) IsError() bool { return t.Kind == ERROR }
func (t Token) IsEOF() bool   { return t.Kind == EOF }

func (t Token) IsAttribute() bool { return t.Kind == ATTRIBUTE }

func (t Token) IsStorageClass() bool    { return t.Kind == ATTRIBUTE && IsStorageClass(t.Lexeme) }
func (t Token) IsFunctionModifier() bool { return t.Kind == ATTRIBUTE && IsFunctionModifier(t.Lexeme) }
func (t Token) IsClassModifier() bool    { return t.Kind == ATTRIBUTE && IsClassModifier(t.Lexeme) }
func (t Token) IsSmartPointerKind() bool { return t.Kind == ATTRIBUTE && IsSmartPointerKind(t.Lexeme) }

func (t Token) IsAccessModifier() bool {
	switch t.Kind {
	case PUBLIC, PRIVATE, PROTECTED:
		return true
	default:
		return false
	}
}

// IsDeclarationStart reports whether t's kind can start a declaration,
// the orchestrator's dispatch test.
func (t Token) IsDeclarationStart() bool {
	switch t.Kind {
	case LET, CONST, FUNCTION, CLASS, INTERFACE, ENUM:
		return true
	default:
		return t.IsStorageClass() || t.IsAttribute() || t.IsFunctionModifier() || t.IsClassModifier() || t.IsAccessModifier()
	}
}

// IsControlFlow reports whether t's kind is a control-flow keyword.
func (t Token) IsControlFlow() bool {
	switch t.Kind {
	case IF, ELSE, WHILE, DO, FOR, OF, RETURN, BREAK, CONTINUE, SWITCH, CASE, DEFAULT, TRY, CATCH, FINALLY, THROW, THROWS:
		return true
	default:
		return false
	}
}

// IsType reports whether t's kind is a primitive type keyword.
func (t Token) IsType() bool {
	switch t.Kind {
	case INT, FLOAT, BOOL, STRING_TYPE, VOID:
		return true
	default:
		return false
	}
}

func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NUMBER, STRING_LITERAL, CHAR_LITERAL, TRUE, FALSE, NULL, UNDEFINED:
		return true
	default:
		return false
	}
}

func (t Token) IsDelimiter() bool { return t.Kind.IsDelimiter() }

// IsStatementStart reports whether t's kind can start a new top-level
// statement or declaration — the keyword set the lexer's semicolon
// insertion treats as beginning a fresh statement after a newline.
func (t Token) IsStatementStart() bool {
	switch t.Kind {
	case FUNCTION, LET, CONST, FOR, IF, WHILE, RETURN:
		return true
	default:
		return false
	}
}

func (t Token) String() string {
	if t.Kind == IDENTIFIER || t.Kind == NUMBER || t.Kind == STRING_LITERAL || t.Kind == CHAR_LITERAL || t.Kind == ATTRIBUTE {
		return t.Lexeme
	}

	return t.Kind.String()
}
