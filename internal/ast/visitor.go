package ast

// Visitor is implemented by every AST traversal. Each
// node's Accept dispatches to exactly one method here, giving callers
// exhaustive-switch-like coverage without a type assertion per node kind.
type Visitor interface {
	VisitProgram(p *Program) interface{}

	VisitVariableDecl(d *VariableDecl) interface{}
	VisitFunctionDecl(d *FunctionDecl) interface{}
	VisitClassDecl(d *ClassDecl) interface{}
	VisitConstructorDecl(d *ConstructorDecl) interface{}
	VisitMethodDecl(d *MethodDecl) interface{}
	VisitFieldDecl(d *FieldDecl) interface{}
	VisitPropertyDecl(d *PropertyDecl) interface{}
	VisitEnumDecl(d *EnumDecl) interface{}
	VisitInterfaceDecl(d *InterfaceDecl) interface{}
	VisitStatementDecl(d *StatementDecl) interface{}

	VisitBlockStmt(s *BlockStmt) interface{}
	VisitExpressionStmt(s *ExpressionStmt) interface{}
	VisitIfStmt(s *IfStmt) interface{}
	VisitWhileStmt(s *WhileStmt) interface{}
	VisitDoWhileStmt(s *DoWhileStmt) interface{}
	VisitForStmt(s *ForStmt) interface{}
	VisitForOfStmt(s *ForOfStmt) interface{}
	VisitReturnStmt(s *ReturnStmt) interface{}
	VisitBreakStmt(s *BreakStmt) interface{}
	VisitContinueStmt(s *ContinueStmt) interface{}
	VisitSwitchStmt(s *SwitchStmt) interface{}
	VisitTryStmt(s *TryStmt) interface{}
	VisitThrowStmt(s *ThrowStmt) interface{}
	VisitAssemblyStmt(s *AssemblyStmt) interface{}
	VisitLabeledStmt(s *LabeledStmt) interface{}
	VisitDeclarationStmt(s *DeclarationStmt) interface{}

	VisitLiteral(e *Literal) interface{}
	VisitIdentifier(e *Identifier) interface{}
	VisitThisExpr(e *ThisExpr) interface{}
	VisitBinaryExpr(e *BinaryExpr) interface{}
	VisitUnaryExpr(e *UnaryExpr) interface{}
	VisitAssignmentExpr(e *AssignmentExpr) interface{}
	VisitCallExpr(e *CallExpr) interface{}
	VisitMemberExpr(e *MemberExpr) interface{}
	VisitIndexExpr(e *IndexExpr) interface{}
	VisitNewExpr(e *NewExpr) interface{}
	VisitCastExpr(e *CastExpr) interface{}
	VisitArrayLiteral(e *ArrayLiteral) interface{}
	VisitConditionalExpr(e *ConditionalExpr) interface{}
	VisitCompileTimeExpr(e *CompileTimeExpr) interface{}

	VisitPrimitiveType(t *PrimitiveType) interface{}
	VisitNamedType(t *NamedType) interface{}
	VisitQualifiedType(t *QualifiedType) interface{}
	VisitArrayType(t *ArrayType) interface{}
	VisitPointerType(t *PointerType) interface{}
	VisitReferenceType(t *ReferenceType) interface{}
	VisitFunctionType(t *FunctionType) interface{}
	VisitTemplateType(t *TemplateType) interface{}
	VisitSmartPointerType(t *SmartPointerType) interface{}
	VisitUnionType(t *UnionType) interface{}
}
