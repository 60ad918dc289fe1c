package pipeline

import (
	"fmt"

	"tlc-go/packages/compiler/src/expression_parser"
	"tlc-go/packages/compiler/src/util"
)

// UnsupportedNodeError reports a template construct the lowering pass does not
// implement. It names the construct kind and, when available, its source
// location, so a driver can emit a diagnostic instead of crashing.
type UnsupportedNodeError struct {
	Construct string
	Span      *util.ParseSourceSpan
}

func (e *UnsupportedNodeError) Error() string {
	if e.Span != nil {
		return fmt.Sprintf("unsupported template construct: %s at %s", e.Construct, e.Span)
	}
	return fmt.Sprintf("unsupported template construct: %s", e.Construct)
}

// UnsupportedExpressionError reports an expression node kind the expression
// preprocessor does not implement.
type UnsupportedExpressionError struct {
	Expr expression_parser.AST
}

func (e *UnsupportedExpressionError) Error() string {
	if span := e.Expr.Span(); span != nil {
		return fmt.Sprintf("unsupported expression: %T at %d:%d", e.Expr, span.Start, span.End)
	}
	return fmt.Sprintf("unsupported expression: %T", e.Expr)
}
