package ir

import (
	"fmt"
	"strings"

	"tlc-go/packages/compiler/src/util"
)

// CreateOp is the interface of structural operations: ops that build the
// shape of a view when it is instantiated.
type CreateOp interface {
	Op[CreateOp]
	GetXref() XrefId
}

// CreateList holds the structural operations of one template level.
type CreateList = OpList[CreateOp]

// NewCreateList creates an empty CreateList
func NewCreateList() *CreateList {
	return &OpList[CreateOp]{}
}

// LocalRef is the handle minted for a declared reference. The same handle is
// shared between the scope record and the op that carries it.
type LocalRef struct {
	Name  string
	Value string
}

// String returns a rendering of the reference for diagnostics.
func (r *LocalRef) String() string {
	if r.Value == "" {
		return "#" + r.Name
	}
	return "#" + r.Name + "=" + r.Value
}

// ElementStartOp is an operation to begin rendering of an element.
type ElementStartOp struct {
	OpBase[CreateOp]
	Xref XrefId
	Tag  string
	// Attrs is the flattened attribute array: static name/value pairs first,
	// then core.AttributeMarkerBindings followed by each bound input's name.
	// Nil when the element has neither attributes nor bindings.
	Attrs []interface{}
	// LocalRefs holds the handles of references declared on this element.
	LocalRefs  []*LocalRef
	SourceSpan *util.ParseSourceSpan
}

// NewElementStartOp creates a new ElementStartOp
func NewElementStartOp(tag string, xref XrefId, sourceSpan *util.ParseSourceSpan) *ElementStartOp {
	return &ElementStartOp{
		Xref:       xref,
		Tag:        tag,
		SourceSpan: sourceSpan,
	}
}

// GetKind returns the operation kind
func (o *ElementStartOp) GetKind() OpKind {
	return OpKindElementStart
}

// GetXref returns the xref ID
func (o *ElementStartOp) GetXref() XrefId {
	return o.Xref
}

// String returns a rendering of the operation for diagnostics.
func (o *ElementStartOp) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ElementStart(%s, %d", o.Tag, o.Xref)
	if len(o.Attrs) > 0 {
		sb.WriteString(", attrs=[")
		for i, attr := range o.Attrs {
			if i > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%v", attr)
		}
		sb.WriteString("]")
	}
	if len(o.LocalRefs) > 0 {
		sb.WriteString(", refs=[")
		for i, ref := range o.LocalRefs {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(ref.String())
		}
		sb.WriteString("]")
	}
	sb.WriteString(")")
	return sb.String()
}

// ElementEndOp is an operation to end rendering of an element previously
// started with an ElementStartOp carrying the same xref.
type ElementEndOp struct {
	OpBase[CreateOp]
	Xref       XrefId
	SourceSpan *util.ParseSourceSpan
}

// NewElementEndOp creates a new ElementEndOp
func NewElementEndOp(xref XrefId, sourceSpan *util.ParseSourceSpan) *ElementEndOp {
	return &ElementEndOp{
		Xref:       xref,
		SourceSpan: sourceSpan,
	}
}

// GetKind returns the operation kind
func (o *ElementEndOp) GetKind() OpKind {
	return OpKindElementEnd
}

// GetXref returns the xref ID
func (o *ElementEndOp) GetXref() XrefId {
	return o.Xref
}

// String returns a rendering of the operation for diagnostics.
func (o *ElementEndOp) String() string {
	return fmt.Sprintf("ElementEnd(%d)", o.Xref)
}

// TextOp is an operation to allocate a text node. Value is empty for text
// whose content is produced by an InterpolateTextOp in the update list.
type TextOp struct {
	OpBase[CreateOp]
	Xref       XrefId
	Value      string
	SourceSpan *util.ParseSourceSpan
}

// NewTextOp creates a new TextOp
func NewTextOp(xref XrefId, value string, sourceSpan *util.ParseSourceSpan) *TextOp {
	return &TextOp{
		Xref:       xref,
		Value:      value,
		SourceSpan: sourceSpan,
	}
}

// GetKind returns the operation kind
func (o *TextOp) GetKind() OpKind {
	return OpKindText
}

// GetXref returns the xref ID
func (o *TextOp) GetXref() XrefId {
	return o.Xref
}

// String returns a rendering of the operation for diagnostics.
func (o *TextOp) String() string {
	return fmt.Sprintf("Text(%d, %q)", o.Xref, o.Value)
}

// TemplateOp is an operation which declares an embedded view. The nested
// view's own create/update pair is attached as a sub-structure of this op.
type TemplateOp struct {
	OpBase[CreateOp]
	Xref XrefId
	// Tag is the declared tag name, or nil for tagless templates.
	Tag    *string
	Create *CreateList
	Update *UpdateList
	// LocalRefs holds the handles of references declared on this template;
	// they are recorded in the parent scope.
	LocalRefs  []*LocalRef
	SourceSpan *util.ParseSourceSpan
}

// NewTemplateOp creates a new TemplateOp
func NewTemplateOp(xref XrefId, tag *string, create *CreateList, update *UpdateList, sourceSpan *util.ParseSourceSpan) *TemplateOp {
	return &TemplateOp{
		Xref:       xref,
		Tag:        tag,
		Create:     create,
		Update:     update,
		SourceSpan: sourceSpan,
	}
}

// GetKind returns the operation kind
func (o *TemplateOp) GetKind() OpKind {
	return OpKindTemplate
}

// GetXref returns the xref ID
func (o *TemplateOp) GetXref() XrefId {
	return o.Xref
}

// String returns a rendering of the operation for diagnostics. The nested
// lists are summarized by size only; print them separately when needed.
func (o *TemplateOp) String() string {
	tag := ""
	if o.Tag != nil {
		tag = *o.Tag
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Template(%s, %d, create=%d, update=%d", tag, o.Xref, o.Create.Size(), o.Update.Size())
	if len(o.LocalRefs) > 0 {
		sb.WriteString(", refs=[")
		for i, ref := range o.LocalRefs {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(ref.String())
		}
		sb.WriteString("]")
	}
	sb.WriteString(")")
	return sb.String()
}
