package pipeline

import (
	"tlc-go/packages/compiler/src/expression_parser"
	"tlc-go/packages/compiler/src/template/pipeline/ir"
)

// binaryOperators maps source operator spellings to IR operators.
var binaryOperators = map[string]ir.BinaryOperator{
	"+":  ir.BinaryOperatorPlus,
	"-":  ir.BinaryOperatorMinus,
	"*":  ir.BinaryOperatorMultiply,
	"/":  ir.BinaryOperatorDivide,
	"%":  ir.BinaryOperatorModulo,
	"&&": ir.BinaryOperatorAnd,
	"||": ir.BinaryOperatorOr,
	"==": ir.BinaryOperatorEquals,
	"!=": ir.BinaryOperatorNotEquals,
	"<":  ir.BinaryOperatorLower,
	"<=": ir.BinaryOperatorLowerEquals,
	">":  ir.BinaryOperatorBigger,
	">=": ir.BinaryOperatorBiggerEquals,
}

// ConvertAst lowers a parsed binding expression into its IR equivalent. It is
// pure and deterministic over the expression kinds it supports; any other
// kind yields an UnsupportedExpressionError. Interpolations are not handled
// here: they only occur in bound text, which unpacks them before lowering the
// sub-expressions.
func ConvertAst(ast expression_parser.AST) (ir.Expression, error) {
	switch e := ast.(type) {
	case *expression_parser.ASTWithSource:
		return ConvertAst(e.AST)
	case *expression_parser.PropertyRead:
		if _, ok := e.Receiver.(*expression_parser.ImplicitReceiver); ok {
			return ir.NewLexicalReadExpr(e.Name), nil
		}
		receiver, err := ConvertAst(e.Receiver)
		if err != nil {
			return nil, err
		}
		return ir.NewReadPropExpr(receiver, e.Name), nil
	case *expression_parser.KeyedRead:
		receiver, err := ConvertAst(e.Receiver)
		if err != nil {
			return nil, err
		}
		key, err := ConvertAst(e.Key)
		if err != nil {
			return nil, err
		}
		return ir.NewKeyedReadExpr(receiver, key), nil
	case *expression_parser.LiteralPrimitive:
		return ir.NewLiteralExpr(e.Value), nil
	case *expression_parser.Binary:
		operator, ok := binaryOperators[e.Operation]
		if !ok {
			return nil, &UnsupportedExpressionError{Expr: e}
		}
		lhs, err := ConvertAst(e.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := ConvertAst(e.Right)
		if err != nil {
			return nil, err
		}
		return ir.NewBinaryExpr(operator, lhs, rhs), nil
	case *expression_parser.Conditional:
		condition, err := ConvertAst(e.Condition)
		if err != nil {
			return nil, err
		}
		trueCase, err := ConvertAst(e.TrueExp)
		if err != nil {
			return nil, err
		}
		falseCase, err := ConvertAst(e.FalseExp)
		if err != nil {
			return nil, err
		}
		return ir.NewConditionalExpr(condition, trueCase, falseCase), nil
	default:
		return nil, &UnsupportedExpressionError{Expr: ast}
	}
}

// convertExpressions lowers a slice of expressions, failing on the first
// unsupported one.
func convertExpressions(expressions []expression_parser.AST) ([]ir.Expression, error) {
	result := make([]ir.Expression, len(expressions))
	for i, expr := range expressions {
		lowered, err := ConvertAst(expr)
		if err != nil {
			return nil, err
		}
		result[i] = lowered
	}
	return result, nil
}
