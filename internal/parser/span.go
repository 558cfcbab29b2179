package parser

import "github.com/theQuarky/tspp/internal/position"

// spanOf builds a Span from two positions, used throughout the sub-parsers
// to cover "from the first consumed token to the last".
func spanOf(start, end position.Position) position.Span {
	return position.Span{Start: start, End: end}
}

// spanFrom builds a Span from a start position to the position just
// consumed (p.previous()).
func (p *Parser) spanFrom(start position.Position) position.Span {
	return spanOf(start, p.previous().Pos)
}
