// Package tokenstream provides a random-access cursor over a token
// vector, with lookahead, matching, and panic-mode resynchronisation.
package tokenstream

import "github.com/theQuarky/tspp/internal/token"

// Stream is a cursor over a fixed token vector produced by the lexer.
type Stream struct {
	tokens  []token.Token
	current int
}

// New wraps tokens in a Stream, appending an EOF token if the vector is
// empty or does not already end with one.
func New(tokens []token.Token) *Stream {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		tokens = append(tokens, token.Token{Kind: token.EOF})
	}

	return &Stream{tokens: tokens}
}

// Peek returns the current token, or EOF if the cursor has run past the
// end of the vector.
func (s *Stream) Peek() token.Token {
	if s.current >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}

	return s.tokens[s.current]
}

// PeekNext returns the token n positions ahead of the cursor (n<=0 is
// treated as 1), or EOF past the end.
func (s *Stream) PeekNext(n int) token.Token {
	if n <= 0 {
		n = 1
	}

	idx := s.current + n
	if idx >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}

	return s.tokens[idx]
}

// Previous returns the first token if the cursor has never advanced, EOF
// if it has run past the end, and otherwise the token just consumed.
func (s *Stream) Previous() token.Token {
	if s.current == 0 {
		return s.tokens[0]
	}

	if s.current > len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}

	return s.tokens[s.current-1]
}

// Advance consumes and returns the current token, unless already at end.
func (s *Stream) Advance() token.Token {
	if !s.IsAtEnd() {
		s.current++
	}

	return s.Previous()
}

// IsAtEnd reports whether the cursor has reached the last token or an
// EOF token.
func (s *Stream) IsAtEnd() bool {
	return s.current >= len(s.tokens)-1 || s.tokens[s.current].Kind == token.EOF
}

func (s *Stream) Check(kind token.Kind) bool {
	if s.IsAtEnd() {
		return false
	}

	return s.Peek().Kind == kind
}

// Match advances past the current token iff it has kind k.
func (s *Stream) Match(k token.Kind) bool {
	if s.Check(k) {
		s.Advance()

		return true
	}

	return false
}

func (s *Stream) MatchAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if s.Match(k) {
			return true
		}
	}

	return false
}

func (s *Stream) Position() int { return s.current }

// SetPosition clamps p to the valid range before repositioning the
// cursor.
func (s *Stream) SetPosition(p int) {
	if p < len(s.tokens) {
		s.current = p
	} else {
		s.current = len(s.tokens) - 1
	}
}

// synchronizeKinds are the declaration and statement starts the recovery
// mechanism resynchronises on.
var synchronizeKinds = map[token.Kind]bool{
	token.FUNCTION: true,
	token.LET:      true,
	token.CONST:    true,
	token.CLASS:    true,
	token.FOR:      true,
	token.IF:       true,
	token.WHILE:    true,
	token.RETURN:   true,
}

// Synchronize is the sole panic-mode recovery mechanism: it advances past
// the token where an error occurred, then consumes tokens until the
// previous token is a SEMICOLON or the next token starts a new
// declaration/statement.
func (s *Stream) Synchronize() {
	s.Advance()

	for !s.IsAtEnd() {
		if s.Previous().Kind == token.SEMICOLON {
			return
		}

		if synchronizeKinds[s.Peek().Kind] {
			return
		}

		s.Advance()
	}
}
