package pipeline_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tlc-go/packages/compiler/src/expression_parser"
	"tlc-go/packages/compiler/src/template/pipeline"
	"tlc-go/packages/compiler/src/template/pipeline/ir"
)

func TestConvertAst(t *testing.T) {
	t.Run("should lower a bare read to a lexical read", func(t *testing.T) {
		expr, err := pipeline.ConvertAst(read("user"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lexical, ok := expr.(*ir.LexicalReadExpr)
		if !ok {
			t.Fatalf("expected a LexicalReadExpr, got %T", expr)
		}
		if lexical.Name != "user" {
			t.Errorf("expected name %q, got %q", "user", lexical.Name)
		}
	})

	t.Run("should lower a qualified read to a property read", func(t *testing.T) {
		ast := expression_parser.NewPropertyRead(read("user"), "name", nil)
		expr, err := pipeline.ConvertAst(ast)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff("user.name", expr.String()); diff != "" {
			t.Errorf("rendering mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should lower a keyed read", func(t *testing.T) {
		ast := expression_parser.NewKeyedRead(read("items"), expression_parser.NewLiteralPrimitive(0, nil), nil)
		expr, err := pipeline.ConvertAst(ast)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff("items[0]", expr.String()); diff != "" {
			t.Errorf("rendering mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should lower literal primitives", func(t *testing.T) {
		expr, err := pipeline.ConvertAst(expression_parser.NewLiteralPrimitive("hello", nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		literal, ok := expr.(*ir.LiteralExpr)
		if !ok {
			t.Fatalf("expected a LiteralExpr, got %T", expr)
		}
		if literal.Value != "hello" {
			t.Errorf("expected value %q, got %v", "hello", literal.Value)
		}
	})

	t.Run("should lower binary operations", func(t *testing.T) {
		ast := expression_parser.NewBinary("+", read("a"), read("b"), nil)
		expr, err := pipeline.ConvertAst(ast)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		binary, ok := expr.(*ir.BinaryExpr)
		if !ok {
			t.Fatalf("expected a BinaryExpr, got %T", expr)
		}
		if binary.Operator != ir.BinaryOperatorPlus {
			t.Errorf("expected plus, got %v", binary.Operator)
		}
		if diff := cmp.Diff("(a + b)", expr.String()); diff != "" {
			t.Errorf("rendering mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should lower conditionals", func(t *testing.T) {
		ast := expression_parser.NewConditional(read("c"), read("t"), read("f"), nil)
		expr, err := pipeline.ConvertAst(ast)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff("(c ? t : f)", expr.String()); diff != "" {
			t.Errorf("rendering mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should unwrap an ASTWithSource", func(t *testing.T) {
		expr, err := pipeline.ConvertAst(expression_parser.NewASTWithSource(read("x"), nil, nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := expr.(*ir.LexicalReadExpr); !ok {
			t.Fatalf("expected a LexicalReadExpr, got %T", expr)
		}
	})

	t.Run("should reject an unknown binary operator", func(t *testing.T) {
		ast := expression_parser.NewBinary("??", read("a"), read("b"), nil)
		_, err := pipeline.ConvertAst(ast)
		var unsupported *pipeline.UnsupportedExpressionError
		if !errors.As(err, &unsupported) {
			t.Fatalf("expected an UnsupportedExpressionError, got %v", err)
		}
	})

	t.Run("should reject an expression kind it does not lower", func(t *testing.T) {
		ast := expression_parser.NewInterpolation([]string{"", ""}, []expression_parser.AST{read("x")}, nil)
		_, err := pipeline.ConvertAst(ast)
		var unsupported *pipeline.UnsupportedExpressionError
		if !errors.As(err, &unsupported) {
			t.Fatalf("expected an UnsupportedExpressionError, got %v", err)
		}
	})

	t.Run("should surface a nested failure", func(t *testing.T) {
		ast := expression_parser.NewBinary("+",
			read("a"),
			expression_parser.NewBinary("??", read("b"), read("c"), nil),
			nil,
		)
		_, err := pipeline.ConvertAst(ast)
		var unsupported *pipeline.UnsupportedExpressionError
		if !errors.As(err, &unsupported) {
			t.Fatalf("expected an UnsupportedExpressionError, got %v", err)
		}
	})
}
