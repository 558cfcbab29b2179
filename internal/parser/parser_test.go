package parser

import (
	"testing"

	"github.com/theQuarky/tspp/internal/ast"
	"github.com/theQuarky/tspp/internal/diagreport"
	"github.com/theQuarky/tspp/internal/lexer"
	"github.com/theQuarky/tspp/internal/position"
	"github.com/theQuarky/tspp/internal/tokenstream"
)

// parse lexes and parses src in one step, returning the program and the
// reporter so tests can assert on diagnostics too.
func parse(t *testing.T, src string) (*ast.Program, *diagreport.Reporter) {
	t.Helper()

	sources := position.NewSourceMap()
	sources.AddFile("t.tspp", src)
	rep := diagreport.New(sources)

	toks := lexer.New(src, "t.tspp", rep).Lex()
	ts := tokenstream.New(toks)
	prog := New(ts, rep, "t.tspp").ParseProgram()

	return prog, rep
}

func TestParseMinimalVariableDeclaration(t *testing.T) {
	prog, rep := parse(t, "let x: int = 42;")

	if rep.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", rep.Diagnostics())
	}

	if len(prog.Declarations) != 1 {
		t.Fatalf("want 1 declaration, got %d", len(prog.Declarations))
	}

	decl, ok := prog.Declarations[0].(*ast.VariableDecl)
	if !ok {
		t.Fatalf("want *ast.VariableDecl, got %T", prog.Declarations[0])
	}

	if decl.Name != "x" || decl.IsConst {
		t.Fatalf("got %+v", decl)
	}

	if _, ok := decl.Type.(*ast.PrimitiveType); !ok {
		t.Fatalf("want primitive type, got %T", decl.Type)
	}
}

func TestParseConstWithoutInitializerReportsSem006(t *testing.T) {
	_, rep := parse(t, "const k: int;")

	found := false

	for _, d := range rep.Diagnostics() {
		if d.Code == "sem006" {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected sem006 diagnostic, got %v", rep.Diagnostics())
	}
}

func TestParseForOfLoop(t *testing.T) {
	prog, rep := parse(t, "for (const item of items) {\n  print(item);\n}")

	if rep.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", rep.Diagnostics())
	}

	wrapper, ok := prog.Declarations[0].(*ast.StatementDecl)
	if !ok {
		t.Fatalf("want *ast.StatementDecl, got %T", prog.Declarations[0])
	}

	forOf, ok := wrapper.Stmt.(*ast.ForOfStmt)
	if !ok {
		t.Fatalf("want *ast.ForOfStmt, got %T", wrapper.Stmt)
	}

	if !forOf.IsConst || forOf.Name != "item" {
		t.Fatalf("got %+v", forOf)
	}

	if _, ok := forOf.Iterable.(*ast.Identifier); !ok {
		t.Fatalf("want identifier iterable, got %T", forOf.Iterable)
	}

	block, ok := forOf.Body.(*ast.BlockStmt)
	if !ok || len(block.Statements) != 1 {
		t.Fatalf("want one-statement block body, got %+v", forOf.Body)
	}

	exprStmt, ok := block.Statements[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("want expression statement, got %T", block.Statements[0])
	}

	call, ok := exprStmt.Expr.(*ast.CallExpr)
	if !ok || len(call.Args) != 1 {
		t.Fatalf("want one-argument call, got %+v", exprStmt.Expr)
	}
}

func TestParseMultiStatementLineReportsAndStopsAtFirstDecl(t *testing.T) {
	prog, rep := parse(t, "let y = 20 let z = 30")

	count := 0

	for _, d := range rep.Diagnostics() {
		if d.Code == "lex003" {
			count++
		}
	}

	if count != 1 {
		t.Fatalf("want exactly 1 lex003 diagnostic, got %d: %v", count, rep.Diagnostics())
	}

	if !rep.HasErrors() {
		t.Fatal("expected pipeline failure status")
	}

	if len(prog.Declarations) == 0 {
		t.Fatal("expected at least the first VarDecl to survive")
	}

	if _, ok := prog.Declarations[0].(*ast.VariableDecl); !ok {
		t.Fatalf("first declaration should be the VarDecl, got %T", prog.Declarations[0])
	}
}

func TestParseFunctionWithGenericsAndWhereClause(t *testing.T) {
	prog, rep := parse(t, "function id<T> where T: Comparable (x: T): T { return x; }")

	if rep.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", rep.Diagnostics())
	}

	fn, ok := prog.Declarations[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("want *ast.FunctionDecl, got %T", prog.Declarations[0])
	}

	if len(fn.Generics) != 1 || fn.Generics[0].Name != "T" {
		t.Fatalf("got generics %+v", fn.Generics)
	}

	if len(fn.Constraints) != 1 || fn.Constraints[0].Param != "T" {
		t.Fatalf("got constraints %+v", fn.Constraints)
	}

	if len(fn.Params) != 1 || fn.Params[0].Name != "x" {
		t.Fatalf("got params %+v", fn.Params)
	}
}

func TestParseClassWithConstructorFieldAndMethod(t *testing.T) {
	src := `
class Point {
  private let x: int;
  constructor(x: int) { this.x = x; }
  function getX(): int { return this.x; }
}`
	prog, rep := parse(t, src)

	if rep.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", rep.Diagnostics())
	}

	class, ok := prog.Declarations[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("want *ast.ClassDecl, got %T", prog.Declarations[0])
	}

	if class.Name != "Point" || len(class.Members) != 3 {
		t.Fatalf("got %+v", class)
	}

	if _, ok := class.Members[0].(*ast.FieldDecl); !ok {
		t.Fatalf("want field first, got %T", class.Members[0])
	}

	if _, ok := class.Members[1].(*ast.ConstructorDecl); !ok {
		t.Fatalf("want constructor second, got %T", class.Members[1])
	}

	if _, ok := class.Members[2].(*ast.MethodDecl); !ok {
		t.Fatalf("want method third, got %T", class.Members[2])
	}
}

func TestParseAssignmentToNonLValueReportsSyn003(t *testing.T) {
	_, rep := parse(t, "1 + 2 = 3;")

	found := false

	for _, d := range rep.Diagnostics() {
		if d.Code == "syn003" {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected syn003 diagnostic, got %v", rep.Diagnostics())
	}
}

func TestParseTryWithoutCatchOrFinallyReportsSyn002(t *testing.T) {
	_, rep := parse(t, "try { doWork(); }")

	found := false

	for _, d := range rep.Diagnostics() {
		if d.Code == "syn002" {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected syn002 diagnostic, got %v", rep.Diagnostics())
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	prog, rep := parse(t, "let r = 1 + 2 * 3;")

	if rep.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", rep.Diagnostics())
	}

	decl := prog.Declarations[0].(*ast.VariableDecl)

	bin, ok := decl.Init.(*ast.BinaryExpr)
	if !ok || bin.Op != ast.OpAdd {
		t.Fatalf("want top-level add, got %+v", decl.Init)
	}

	rhs, ok := bin.Right.(*ast.BinaryExpr)
	if !ok || rhs.Op != ast.OpMul {
		t.Fatalf("want multiplication nested under the add, got %+v", bin.Right)
	}
}

func TestParseCastAndNewExpressions(t *testing.T) {
	prog, rep := parse(t, "let a = cast<int>(x);\nlet b = new Widget(1, 2);")

	if rep.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", rep.Diagnostics())
	}

	a := prog.Declarations[0].(*ast.VariableDecl)
	if _, ok := a.Init.(*ast.CastExpr); !ok {
		t.Fatalf("want CastExpr, got %T", a.Init)
	}

	b := prog.Declarations[1].(*ast.VariableDecl)

	newExpr, ok := b.Init.(*ast.NewExpr)
	if !ok {
		t.Fatalf("want NewExpr, got %T", b.Init)
	}

	if newExpr.ClassName != "Widget" || len(newExpr.Args) != 2 {
		t.Fatalf("got %+v", newExpr)
	}
}

func TestParseAssemblyStatement(t *testing.T) {
	prog, rep := parse(t, `#asm("nop", "r");`)

	if rep.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", rep.Diagnostics())
	}

	wrapper := prog.Declarations[0].(*ast.StatementDecl)

	asm, ok := wrapper.Stmt.(*ast.AssemblyStmt)
	if !ok {
		t.Fatalf("want *ast.AssemblyStmt, got %T", wrapper.Stmt)
	}

	if asm.Code != "nop" || len(asm.Constraints) != 1 || asm.Constraints[0] != "r" {
		t.Fatalf("got %+v", asm)
	}
}

func TestParsePointerAndSmartPointerTypes(t *testing.T) {
	prog, rep := parse(t, "let p: int@unsafe;\nlet s: #shared<int>;")

	if rep.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", rep.Diagnostics())
	}

	p := prog.Declarations[0].(*ast.VariableDecl)

	ptr, ok := p.Type.(*ast.PointerType)
	if !ok || ptr.Kind != ast.PointerUnsafe {
		t.Fatalf("got %+v", p.Type)
	}

	s := prog.Declarations[1].(*ast.VariableDecl)

	smart, ok := s.Type.(*ast.SmartPointerType)
	if !ok || smart.Kind != ast.SmartShared {
		t.Fatalf("got %+v", s.Type)
	}
}
