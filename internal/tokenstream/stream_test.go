package tokenstream

import (
	"testing"

	"github.com/theQuarky/tspp/internal/token"
)

func toks(kinds ...token.Kind) []token.Token {
	ts := make([]token.Token, len(kinds))
	for i, k := range kinds {
		ts[i] = token.Token{Kind: k}
	}

	return ts
}

func TestPeekPastEndReturnsEOF(t *testing.T) {
	s := New(toks(token.LET, token.IDENTIFIER))
	s.Advance()
	s.Advance()

	if s.Peek().Kind != token.EOF {
		t.Fatalf("Peek past end = %v, want EOF", s.Peek().Kind)
	}
}

func TestPreviousBeforeAdvanceReturnsFirst(t *testing.T) {
	s := New(toks(token.LET, token.IDENTIFIER))

	if s.Previous().Kind != token.LET {
		t.Fatalf("Previous before advance = %v, want LET", s.Previous().Kind)
	}
}

func TestMatchAdvancesOnlyOnMatch(t *testing.T) {
	s := New(toks(token.LET, token.IDENTIFIER))

	if s.Match(token.IF) {
		t.Fatal("Match(IF) should fail against LET")
	}

	if s.Position() != 0 {
		t.Fatal("failed Match should not advance")
	}

	if !s.Match(token.LET) {
		t.Fatal("Match(LET) should succeed")
	}

	if s.Position() != 1 {
		t.Fatal("successful Match should advance")
	}
}

func TestCheckDoesNotAdvance(t *testing.T) {
	s := New(toks(token.LET))
	s.Check(token.LET)

	if s.Position() != 0 {
		t.Fatal("Check must not advance the cursor")
	}
}

func TestSynchronizeStopsAtSemicolon(t *testing.T) {
	s := New(toks(token.BANG, token.NUMBER, token.SEMICOLON, token.LET))
	s.Synchronize()

	if s.Previous().Kind != token.SEMICOLON {
		t.Fatalf("Synchronize should stop with previous = SEMICOLON, got %v", s.Previous().Kind)
	}
}

func TestSynchronizeStopsAtStatementStart(t *testing.T) {
	s := New(toks(token.BANG, token.NUMBER, token.IF, token.LPAREN))
	s.Synchronize()

	if s.Peek().Kind != token.IF {
		t.Fatalf("Synchronize should stop with Peek = IF, got %v", s.Peek().Kind)
	}
}

func TestSynchronizeTerminatesOnPathologicalInput(t *testing.T) {
	s := New(toks(token.BANG, token.BANG, token.BANG))
	s.Synchronize() // must return, never loop forever, even with no sync point

	if !s.IsAtEnd() {
		t.Fatal("Synchronize should have run the cursor to the end")
	}
}

func TestSetPositionClamps(t *testing.T) {
	s := New(toks(token.LET, token.IDENTIFIER))
	s.SetPosition(100)

	if s.Position() != len(s.tokens)-1 {
		t.Fatalf("SetPosition should clamp to last index, got %d", s.Position())
	}
}
