package ir

import (
	"fmt"
	"strings"

	"tlc-go/packages/compiler/src/util"
)

// UpdateOp is the interface of binding operations: ops re-evaluated on every
// change-detection pass against the view built by the create list.
type UpdateOp interface {
	Op[UpdateOp]
	GetXref() XrefId
}

// UpdateList holds the binding operations of one template level.
type UpdateList = OpList[UpdateOp]

// NewUpdateList creates an empty UpdateList
func NewUpdateList() *UpdateList {
	return &OpList[UpdateOp]{}
}

// PropertyOp is an operation to bind an expression to a property of an
// element identified by Target.
type PropertyOp struct {
	OpBase[UpdateOp]
	Target     XrefId
	Name       string
	Expression Expression
	SourceSpan *util.ParseSourceSpan
}

// NewPropertyOp creates a new PropertyOp
func NewPropertyOp(target XrefId, name string, expression Expression, sourceSpan *util.ParseSourceSpan) *PropertyOp {
	return &PropertyOp{
		Target:     target,
		Name:       name,
		Expression: expression,
		SourceSpan: sourceSpan,
	}
}

// GetKind returns the operation kind
func (o *PropertyOp) GetKind() OpKind {
	return OpKindProperty
}

// GetXref returns the xref ID of the targeted element
func (o *PropertyOp) GetXref() XrefId {
	return o.Target
}

// String returns a rendering of the operation for diagnostics.
func (o *PropertyOp) String() string {
	return fmt.Sprintf("Property(%d, %s, %s)", o.Target, o.Name, o.Expression)
}

// Interpolation is the payload of an InterpolateTextOp: literal strings
// alternating with lowered expressions. Strings always has exactly one more
// entry than Expressions.
type Interpolation struct {
	Strings     []string
	Expressions []Expression
}

// NewInterpolation creates a new Interpolation, validating the alternation
// invariant.
func NewInterpolation(strs []string, expressions []Expression) (*Interpolation, error) {
	if len(strs) != len(expressions)+1 {
		return nil, fmt.Errorf(
			"expected %d interpolation strings for %d expressions, but got %d",
			len(expressions)+1,
			len(expressions),
			len(strs),
		)
	}
	return &Interpolation{
		Strings:     strs,
		Expressions: expressions,
	}, nil
}

// String returns a rendering of the interpolation for diagnostics.
func (i *Interpolation) String() string {
	var sb strings.Builder
	for idx, s := range i.Strings {
		fmt.Fprintf(&sb, "%q", s)
		if idx < len(i.Expressions) {
			fmt.Fprintf(&sb, " {{%s}} ", i.Expressions[idx])
		}
	}
	return sb.String()
}

// InterpolateTextOp is an operation to interpolate text into a text node
// allocated by the TextOp carrying the same xref.
type InterpolateTextOp struct {
	OpBase[UpdateOp]
	Target        XrefId
	Interpolation *Interpolation
	SourceSpan    *util.ParseSourceSpan
}

// NewInterpolateTextOp creates a new InterpolateTextOp
func NewInterpolateTextOp(target XrefId, interpolation *Interpolation, sourceSpan *util.ParseSourceSpan) *InterpolateTextOp {
	return &InterpolateTextOp{
		Target:        target,
		Interpolation: interpolation,
		SourceSpan:    sourceSpan,
	}
}

// GetKind returns the operation kind
func (o *InterpolateTextOp) GetKind() OpKind {
	return OpKindInterpolateText
}

// GetXref returns the xref ID of the targeted text node
func (o *InterpolateTextOp) GetXref() XrefId {
	return o.Target
}

// String returns a rendering of the operation for diagnostics.
func (o *InterpolateTextOp) String() string {
	return fmt.Sprintf("InterpolateText(%d, %s)", o.Target, o.Interpolation)
}
