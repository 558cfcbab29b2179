package lexer

import (
	"testing"

	"github.com/theQuarky/tspp/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}

	return ks
}

func TestLexMinimalDeclaration(t *testing.T) {
	toks := New("let x: int = 42;", "f.tspp", nil).Lex()

	want := []token.Kind{token.LET, token.IDENTIFIER, token.COLON, token.INT, token.ASSIGN, token.NUMBER, token.SEMICOLON, token.EOF}
	got := kinds(toks)

	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexEndsWithEOF(t *testing.T) {
	toks := New("", "f.tspp", nil).Lex()
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("empty source should lex to a single EOF, got %v", toks)
	}
}

func TestASIBetweenStatements(t *testing.T) {
	withNewlines := New("let x = 10\nlet y = 20\n", "f.tspp", nil).Lex()
	withSemis := New("let x = 10;let y = 20;", "f.tspp", nil).Lex()

	if len(kinds(withNewlines)) != len(kinds(withSemis)) {
		t.Fatalf("ASI should produce the same token kinds: %v vs %v", kinds(withNewlines), kinds(withSemis))
	}

	for i := range withNewlines {
		if withNewlines[i].Kind != withSemis[i].Kind {
			t.Fatalf("token %d kind mismatch: %v vs %v", i, withNewlines[i].Kind, withSemis[i].Kind)
		}
	}
}

func TestASINotInsertedMidExpression(t *testing.T) {
	src := "let x = 1 +\n2;"
	toks := New(src, "f.tspp", nil).Lex()

	for _, tk := range toks {
		if tk.Kind == token.SEMICOLON && tk.Pos.Line == 1 {
			t.Fatalf("ASI should not split a multi-line expression: %v", kinds(toks))
		}
	}
}

func TestMultiStatementLineRejected(t *testing.T) {
	toks := New("let y = 20 let z = 30", "f.tspp", nil).Lex()

	var errCount int

	for _, tk := range toks {
		if tk.IsError() {
			errCount++

			if tk.ErrorMessage != "Multiple statements on one line require explicit semicolons" {
				t.Fatalf("unexpected error message: %q", tk.ErrorMessage)
			}
		}
	}

	if errCount != 1 {
		t.Fatalf("expected exactly one error token, got %d: %v", errCount, kinds(toks))
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	toks := New("let x = `;", "f.tspp", nil).Lex()

	found := false

	for _, tk := range toks {
		if tk.IsError() && tk.ErrorMessage == "Unexpected character: '`'" {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected an unexpected-character error, got %v", toks)
	}
}

func TestInvalidEscapeSequence(t *testing.T) {
	toks := New(`"bad \q escape"`, "f.tspp", nil).Lex()

	found := false

	for _, tk := range toks {
		if tk.IsError() && tk.ErrorMessage == "Invalid escape sequence" {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected an invalid-escape error, got %v", toks)
	}
}

func TestAttributeTokenRetainsHash(t *testing.T) {
	toks := New("#heap let x: int = 1;", "f.tspp", nil).Lex()

	if toks[0].Kind != token.ATTRIBUTE || toks[0].Lexeme != "#heap" {
		t.Fatalf("attribute token = %+v, want lexeme #heap", toks[0])
	}

	if !toks[0].IsStorageClass() {
		t.Fatal("#heap should classify as a storage class")
	}
}

func TestLocationMonotonicity(t *testing.T) {
	toks := New("let x = 1;\nlet y = 2;\n", "f.tspp", nil).Lex()

	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1].Pos, toks[i].Pos
		if cur.Line < prev.Line || (cur.Line == prev.Line && cur.Column < prev.Column) {
			t.Fatalf("locations not monotonic at %d: %v then %v", i, prev, cur)
		}
	}
}

func TestLongestMatchOperators(t *testing.T) {
	toks := New("a >>= b", "f.tspp", nil).Lex()
	// >>= is not in the operator table (compound assignment covers only
	// +=,-=,*=,/=,%=,&=,|=,^=); >> then = is the correct split.
	want := []token.Kind{token.IDENTIFIER, token.SHR, token.ASSIGN, token.IDENTIFIER, token.EOF}
	got := kinds(toks)

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v (%v)", i, got[i], want[i], got)
		}
	}
}
