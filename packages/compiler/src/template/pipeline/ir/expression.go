package ir

import "fmt"

// Expression is a value-level IR expression, as produced by lowering template
// bindings through the expression preprocessor.
type Expression interface {
	fmt.Stringer
	isExpression()
}

// LexicalReadExpr is a read of a name from the lexical scope of the view.
type LexicalReadExpr struct {
	Name string
}

// NewLexicalReadExpr creates a new LexicalReadExpr
func NewLexicalReadExpr(name string) *LexicalReadExpr {
	return &LexicalReadExpr{Name: name}
}

func (e *LexicalReadExpr) isExpression() {}

func (e *LexicalReadExpr) String() string {
	return e.Name
}

// LiteralExpr is a literal primitive value.
type LiteralExpr struct {
	Value interface{}
}

// NewLiteralExpr creates a new LiteralExpr
func NewLiteralExpr(value interface{}) *LiteralExpr {
	return &LiteralExpr{Value: value}
}

func (e *LiteralExpr) isExpression() {}

func (e *LiteralExpr) String() string {
	if s, ok := e.Value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", e.Value)
}

// ReadPropExpr is a property read off a receiver expression.
type ReadPropExpr struct {
	Receiver Expression
	Name     string
}

// NewReadPropExpr creates a new ReadPropExpr
func NewReadPropExpr(receiver Expression, name string) *ReadPropExpr {
	return &ReadPropExpr{Receiver: receiver, Name: name}
}

func (e *ReadPropExpr) isExpression() {}

func (e *ReadPropExpr) String() string {
	return fmt.Sprintf("%s.%s", e.Receiver, e.Name)
}

// KeyedReadExpr is an indexed read off a receiver expression.
type KeyedReadExpr struct {
	Receiver Expression
	Index    Expression
}

// NewKeyedReadExpr creates a new KeyedReadExpr
func NewKeyedReadExpr(receiver, index Expression) *KeyedReadExpr {
	return &KeyedReadExpr{Receiver: receiver, Index: index}
}

func (e *KeyedReadExpr) isExpression() {}

func (e *KeyedReadExpr) String() string {
	return fmt.Sprintf("%s[%s]", e.Receiver, e.Index)
}

// BinaryOperator enumerates the binary operations the IR models.
type BinaryOperator int

const (
	// BinaryOperatorPlus - addition or string concatenation
	BinaryOperatorPlus BinaryOperator = iota
	// BinaryOperatorMinus - subtraction
	BinaryOperatorMinus
	// BinaryOperatorMultiply - multiplication
	BinaryOperatorMultiply
	// BinaryOperatorDivide - division
	BinaryOperatorDivide
	// BinaryOperatorModulo - remainder
	BinaryOperatorModulo
	// BinaryOperatorAnd - logical and
	BinaryOperatorAnd
	// BinaryOperatorOr - logical or
	BinaryOperatorOr
	// BinaryOperatorEquals - loose equality
	BinaryOperatorEquals
	// BinaryOperatorNotEquals - loose inequality
	BinaryOperatorNotEquals
	// BinaryOperatorLower - less than
	BinaryOperatorLower
	// BinaryOperatorLowerEquals - less than or equal
	BinaryOperatorLowerEquals
	// BinaryOperatorBigger - greater than
	BinaryOperatorBigger
	// BinaryOperatorBiggerEquals - greater than or equal
	BinaryOperatorBiggerEquals
)

// String returns the operator's source form.
func (op BinaryOperator) String() string {
	switch op {
	case BinaryOperatorPlus:
		return "+"
	case BinaryOperatorMinus:
		return "-"
	case BinaryOperatorMultiply:
		return "*"
	case BinaryOperatorDivide:
		return "/"
	case BinaryOperatorModulo:
		return "%"
	case BinaryOperatorAnd:
		return "&&"
	case BinaryOperatorOr:
		return "||"
	case BinaryOperatorEquals:
		return "=="
	case BinaryOperatorNotEquals:
		return "!="
	case BinaryOperatorLower:
		return "<"
	case BinaryOperatorLowerEquals:
		return "<="
	case BinaryOperatorBigger:
		return ">"
	case BinaryOperatorBiggerEquals:
		return ">="
	}
	return "?"
}

// BinaryExpr is a binary operation over two expressions.
type BinaryExpr struct {
	Operator BinaryOperator
	Lhs      Expression
	Rhs      Expression
}

// NewBinaryExpr creates a new BinaryExpr
func NewBinaryExpr(operator BinaryOperator, lhs, rhs Expression) *BinaryExpr {
	return &BinaryExpr{Operator: operator, Lhs: lhs, Rhs: rhs}
}

func (e *BinaryExpr) isExpression() {}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Lhs, e.Operator, e.Rhs)
}

// ConditionalExpr is a ternary over three expressions.
type ConditionalExpr struct {
	Condition Expression
	TrueCase  Expression
	FalseCase Expression
}

// NewConditionalExpr creates a new ConditionalExpr
func NewConditionalExpr(condition, trueCase, falseCase Expression) *ConditionalExpr {
	return &ConditionalExpr{Condition: condition, TrueCase: trueCase, FalseCase: falseCase}
}

func (e *ConditionalExpr) isExpression() {}

func (e *ConditionalExpr) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", e.Condition, e.TrueCase, e.FalseCase)
}
