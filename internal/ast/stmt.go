package ast

import "github.com/theQuarky/tspp/internal/position"

type BlockStmt struct {
	Span       position.Span
	Statements []Statement
}

func (s *BlockStmt) GetSpan() position.Span      { return s.Span }
func (s *BlockStmt) Accept(v Visitor) interface{} { return v.VisitBlockStmt(s) }
func (s *BlockStmt) statementNode()              {}

type ExpressionStmt struct {
	Span position.Span
	Expr Expression
}

func (s *ExpressionStmt) GetSpan() position.Span      { return s.Span }
func (s *ExpressionStmt) Accept(v Visitor) interface{} { return v.VisitExpressionStmt(s) }
func (s *ExpressionStmt) statementNode()              {}

type IfStmt struct {
	Span position.Span
	Cond Expression
	Then Statement
	Else Statement // nil if no else branch
}

func (s *IfStmt) GetSpan() position.Span      { return s.Span }
func (s *IfStmt) Accept(v Visitor) interface{} { return v.VisitIfStmt(s) }
func (s *IfStmt) statementNode()              {}

type WhileStmt struct {
	Span position.Span
	Cond Expression
	Body Statement
}

func (s *WhileStmt) GetSpan() position.Span      { return s.Span }
func (s *WhileStmt) Accept(v Visitor) interface{} { return v.VisitWhileStmt(s) }
func (s *WhileStmt) statementNode()              {}

type DoWhileStmt struct {
	Span position.Span
	Body Statement
	Cond Expression
}

func (s *DoWhileStmt) GetSpan() position.Span      { return s.Span }
func (s *DoWhileStmt) Accept(v Visitor) interface{} { return v.VisitDoWhileStmt(s) }
func (s *DoWhileStmt) statementNode()              {}

type ForStmt struct {
	Span position.Span
	Init Statement  // nil if omitted
	Cond Expression // nil if omitted
	Inc  Expression // nil if omitted
	Body Statement
}

func (s *ForStmt) GetSpan() position.Span      { return s.Span }
func (s *ForStmt) Accept(v Visitor) interface{} { return v.VisitForStmt(s) }
func (s *ForStmt) statementNode()              {}

type ForOfStmt struct {
	Span     position.Span
	IsConst  bool
	Name     string
	Iterable Expression
	Body     Statement
}

func (s *ForOfStmt) GetSpan() position.Span      { return s.Span }
func (s *ForOfStmt) Accept(v Visitor) interface{} { return v.VisitForOfStmt(s) }
func (s *ForOfStmt) statementNode()              {}

type ReturnStmt struct {
	Span  position.Span
	Value Expression // nil for a bare return
}

func (s *ReturnStmt) GetSpan() position.Span      { return s.Span }
func (s *ReturnStmt) Accept(v Visitor) interface{} { return v.VisitReturnStmt(s) }
func (s *ReturnStmt) statementNode()              {}

type BreakStmt struct {
	Span  position.Span
	Label string // "" if omitted
}

func (s *BreakStmt) GetSpan() position.Span      { return s.Span }
func (s *BreakStmt) Accept(v Visitor) interface{} { return v.VisitBreakStmt(s) }
func (s *BreakStmt) statementNode()              {}

type ContinueStmt struct {
	Span  position.Span
	Label string
}

func (s *ContinueStmt) GetSpan() position.Span      { return s.Span }
func (s *ContinueStmt) Accept(v Visitor) interface{} { return v.VisitContinueStmt(s) }
func (s *ContinueStmt) statementNode()              {}

// SwitchCase is one `case expr:` section, or the `default:` section when
// Value is nil. Body holds the statements up to the next case/default/`}`.
type SwitchCase struct {
	Span  position.Span
	Value Expression
	Body  []Statement
}

type SwitchStmt struct {
	Span  position.Span
	Expr  Expression
	Cases []*SwitchCase
}

func (s *SwitchStmt) GetSpan() position.Span      { return s.Span }
func (s *SwitchStmt) Accept(v Visitor) interface{} { return v.VisitSwitchStmt(s) }
func (s *SwitchStmt) statementNode()              {}

// CatchClause binds an optional-type parameter to the thrown value.
type CatchClause struct {
	Span      position.Span
	Param     string
	ParamType TypeNode // nil if omitted
	Body      *BlockStmt
}

// TryStmt requires at least one of Catches or Finally to be non-empty,
// enforced by the parser.
type TryStmt struct {
	Span    position.Span
	Body    *BlockStmt
	Catches []*CatchClause
	Finally *BlockStmt // nil if omitted
}

func (s *TryStmt) GetSpan() position.Span      { return s.Span }
func (s *TryStmt) Accept(v Visitor) interface{} { return v.VisitTryStmt(s) }
func (s *TryStmt) statementNode()              {}

type ThrowStmt struct {
	Span  position.Span
	Value Expression
}

func (s *ThrowStmt) GetSpan() position.Span      { return s.Span }
func (s *ThrowStmt) Accept(v Visitor) interface{} { return v.VisitThrowStmt(s) }
func (s *ThrowStmt) statementNode()              {}

type AssemblyStmt struct {
	Span        position.Span
	Code        string
	Constraints []string
}

func (s *AssemblyStmt) GetSpan() position.Span      { return s.Span }
func (s *AssemblyStmt) Accept(v Visitor) interface{} { return v.VisitAssemblyStmt(s) }
func (s *AssemblyStmt) statementNode()              {}

type LabeledStmt struct {
	Span  position.Span
	Label string
	Stmt  Statement
}

func (s *LabeledStmt) GetSpan() position.Span      { return s.Span }
func (s *LabeledStmt) Accept(v Visitor) interface{} { return v.VisitLabeledStmt(s) }
func (s *LabeledStmt) statementNode()              {}

// DeclarationStmt wraps a declaration that appears in statement position
// (e.g. a local `let` inside a block).
type DeclarationStmt struct {
	Span position.Span
	Decl Declaration
}

func (s *DeclarationStmt) GetSpan() position.Span      { return s.Span }
func (s *DeclarationStmt) Accept(v Visitor) interface{} { return v.VisitDeclarationStmt(s) }
func (s *DeclarationStmt) statementNode()              {}
