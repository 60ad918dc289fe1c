package expression_parser

import (
	"fmt"
	"strings"
)

// ParseSpan is a character range within the parsed expression source
type ParseSpan struct {
	Start int
	End   int
}

// NewParseSpan creates a new ParseSpan
func NewParseSpan(start, end int) *ParseSpan {
	return &ParseSpan{Start: start, End: end}
}

// AST is the base interface for all expression nodes
type AST interface {
	Span() *ParseSpan
	String() string
}

// astBase carries the span common to all expression nodes
type astBase struct {
	span *ParseSpan
}

// Span returns the source span of the node
func (a *astBase) Span() *ParseSpan {
	return a.span
}

// ASTWithSource wraps a parsed expression together with its original source text
type ASTWithSource struct {
	astBase
	AST    AST
	Source *string
}

// NewASTWithSource creates a new ASTWithSource
func NewASTWithSource(ast AST, source *string, span *ParseSpan) *ASTWithSource {
	return &ASTWithSource{astBase: astBase{span: span}, AST: ast, Source: source}
}

func (a *ASTWithSource) String() string {
	if a.Source != nil {
		return *a.Source
	}
	return a.AST.String()
}

// ImplicitReceiver is the receiver of an unqualified property access
type ImplicitReceiver struct {
	astBase
}

// NewImplicitReceiver creates a new ImplicitReceiver
func NewImplicitReceiver(span *ParseSpan) *ImplicitReceiver {
	return &ImplicitReceiver{astBase: astBase{span: span}}
}

func (i *ImplicitReceiver) String() string {
	return ""
}

// PropertyRead is a property access such as `a.b` or the bare `b`
type PropertyRead struct {
	astBase
	Receiver AST
	Name     string
}

// NewPropertyRead creates a new PropertyRead
func NewPropertyRead(receiver AST, name string, span *ParseSpan) *PropertyRead {
	return &PropertyRead{astBase: astBase{span: span}, Receiver: receiver, Name: name}
}

func (p *PropertyRead) String() string {
	recv := p.Receiver.String()
	if recv == "" {
		return p.Name
	}
	return recv + "." + p.Name
}

// KeyedRead is an indexed access such as `a[b]`
type KeyedRead struct {
	astBase
	Receiver AST
	Key      AST
}

// NewKeyedRead creates a new KeyedRead
func NewKeyedRead(receiver, key AST, span *ParseSpan) *KeyedRead {
	return &KeyedRead{astBase: astBase{span: span}, Receiver: receiver, Key: key}
}

func (k *KeyedRead) String() string {
	return fmt.Sprintf("%s[%s]", k.Receiver, k.Key)
}

// LiteralPrimitive is a literal string, number, boolean or null value
type LiteralPrimitive struct {
	astBase
	Value interface{}
}

// NewLiteralPrimitive creates a new LiteralPrimitive
func NewLiteralPrimitive(value interface{}, span *ParseSpan) *LiteralPrimitive {
	return &LiteralPrimitive{astBase: astBase{span: span}, Value: value}
}

func (l *LiteralPrimitive) String() string {
	return fmt.Sprintf("%v", l.Value)
}

// Binary is a binary operation such as `a + b`
type Binary struct {
	astBase
	Operation string
	Left      AST
	Right     AST
}

// NewBinary creates a new Binary
func NewBinary(operation string, left, right AST, span *ParseSpan) *Binary {
	return &Binary{astBase: astBase{span: span}, Operation: operation, Left: left, Right: right}
}

func (b *Binary) String() string {
	return fmt.Sprintf("%s %s %s", b.Left, b.Operation, b.Right)
}

// Conditional is a ternary such as `a ? b : c`
type Conditional struct {
	astBase
	Condition AST
	TrueExp   AST
	FalseExp  AST
}

// NewConditional creates a new Conditional
func NewConditional(condition, trueExp, falseExp AST, span *ParseSpan) *Conditional {
	return &Conditional{astBase: astBase{span: span}, Condition: condition, TrueExp: trueExp, FalseExp: falseExp}
}

func (c *Conditional) String() string {
	return fmt.Sprintf("%s ? %s : %s", c.Condition, c.TrueExp, c.FalseExp)
}

// Interpolation is an alternating sequence of literal strings and expressions,
// as produced for `a {{ b }} c`. Strings always has one more entry than
// Expressions; the leading and trailing strings may be empty.
type Interpolation struct {
	astBase
	Strings     []string
	Expressions []AST
}

// NewInterpolation creates a new Interpolation
func NewInterpolation(strs []string, expressions []AST, span *ParseSpan) *Interpolation {
	return &Interpolation{astBase: astBase{span: span}, Strings: strs, Expressions: expressions}
}

func (i *Interpolation) String() string {
	var sb strings.Builder
	for idx, s := range i.Strings {
		sb.WriteString(s)
		if idx < len(i.Expressions) {
			sb.WriteString("{{")
			sb.WriteString(i.Expressions[idx].String())
			sb.WriteString("}}")
		}
	}
	return sb.String()
}
