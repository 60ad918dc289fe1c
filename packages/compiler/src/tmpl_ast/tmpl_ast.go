package tmpl_ast

import (
	"tlc-go/packages/compiler/src/expression_parser"
	"tlc-go/packages/compiler/src/util"
)

// Node is the base interface for all template AST nodes
type Node interface {
	SourceSpan() *util.ParseSourceSpan
	Visit(visitor Visitor) interface{}
}

// Visitor visits template AST nodes
type Visitor interface {
	VisitElement(element *Element) interface{}
	VisitTemplate(template *Template) interface{}
	VisitContent(content *Content) interface{}
	VisitVariable(variable *Variable) interface{}
	VisitReference(reference *Reference) interface{}
	VisitTextAttribute(attribute *TextAttribute) interface{}
	VisitBoundAttribute(attribute *BoundAttribute) interface{}
	VisitBoundEvent(event *BoundEvent) interface{}
	VisitText(text *Text) interface{}
	VisitBoundText(text *BoundText) interface{}
	VisitIcu(icu *Icu) interface{}
}

// Text is a literal text node
type Text struct {
	Value      string
	sourceSpan *util.ParseSourceSpan
}

// NewText creates a new Text node
func NewText(value string, sourceSpan *util.ParseSourceSpan) *Text {
	return &Text{Value: value, sourceSpan: sourceSpan}
}

// SourceSpan returns the source span
func (t *Text) SourceSpan() *util.ParseSourceSpan {
	return t.sourceSpan
}

// Visit visits the node with a visitor
func (t *Text) Visit(visitor Visitor) interface{} {
	return visitor.VisitText(t)
}

// BoundText is a text node whose content is an interpolated expression
type BoundText struct {
	Value      expression_parser.AST
	sourceSpan *util.ParseSourceSpan
}

// NewBoundText creates a new BoundText node
func NewBoundText(value expression_parser.AST, sourceSpan *util.ParseSourceSpan) *BoundText {
	return &BoundText{Value: value, sourceSpan: sourceSpan}
}

// SourceSpan returns the source span
func (bt *BoundText) SourceSpan() *util.ParseSourceSpan {
	return bt.sourceSpan
}

// Visit visits the node with a visitor
func (bt *BoundText) Visit(visitor Visitor) interface{} {
	return visitor.VisitBoundText(bt)
}

// TextAttribute is a static name/value attribute
type TextAttribute struct {
	Name       string
	Value      string
	sourceSpan *util.ParseSourceSpan
	KeySpan    *util.ParseSourceSpan
	ValueSpan  *util.ParseSourceSpan
}

// NewTextAttribute creates a new TextAttribute
func NewTextAttribute(name, value string, sourceSpan, keySpan, valueSpan *util.ParseSourceSpan) *TextAttribute {
	return &TextAttribute{
		Name:       name,
		Value:      value,
		sourceSpan: sourceSpan,
		KeySpan:    keySpan,
		ValueSpan:  valueSpan,
	}
}

// SourceSpan returns the source span
func (ta *TextAttribute) SourceSpan() *util.ParseSourceSpan {
	return ta.sourceSpan
}

// Visit visits the node with a visitor
func (ta *TextAttribute) Visit(visitor Visitor) interface{} {
	return visitor.VisitTextAttribute(ta)
}

// BoundAttribute is an input binding such as `[id]="expr"`
type BoundAttribute struct {
	Name       string
	Value      expression_parser.AST
	sourceSpan *util.ParseSourceSpan
	KeySpan    *util.ParseSourceSpan
	ValueSpan  *util.ParseSourceSpan
}

// NewBoundAttribute creates a new BoundAttribute
func NewBoundAttribute(name string, value expression_parser.AST, sourceSpan, keySpan, valueSpan *util.ParseSourceSpan) *BoundAttribute {
	return &BoundAttribute{
		Name:       name,
		Value:      value,
		sourceSpan: sourceSpan,
		KeySpan:    keySpan,
		ValueSpan:  valueSpan,
	}
}

// SourceSpan returns the source span
func (ba *BoundAttribute) SourceSpan() *util.ParseSourceSpan {
	return ba.sourceSpan
}

// Visit visits the node with a visitor
func (ba *BoundAttribute) Visit(visitor Visitor) interface{} {
	return visitor.VisitBoundAttribute(ba)
}

// BoundEvent is an event binding such as `(click)="handler()"`
type BoundEvent struct {
	Name       string
	Handler    expression_parser.AST
	sourceSpan *util.ParseSourceSpan
}

// NewBoundEvent creates a new BoundEvent
func NewBoundEvent(name string, handler expression_parser.AST, sourceSpan *util.ParseSourceSpan) *BoundEvent {
	return &BoundEvent{Name: name, Handler: handler, sourceSpan: sourceSpan}
}

// SourceSpan returns the source span
func (be *BoundEvent) SourceSpan() *util.ParseSourceSpan {
	return be.sourceSpan
}

// Visit visits the node with a visitor
func (be *BoundEvent) Visit(visitor Visitor) interface{} {
	return visitor.VisitBoundEvent(be)
}

// Reference is a local reference declaration such as `#ref`
type Reference struct {
	Name       string
	Value      string
	sourceSpan *util.ParseSourceSpan
}

// NewReference creates a new Reference
func NewReference(name, value string, sourceSpan *util.ParseSourceSpan) *Reference {
	return &Reference{Name: name, Value: value, sourceSpan: sourceSpan}
}

// SourceSpan returns the source span
func (r *Reference) SourceSpan() *util.ParseSourceSpan {
	return r.sourceSpan
}

// Visit visits the node with a visitor
func (r *Reference) Visit(visitor Visitor) interface{} {
	return visitor.VisitReference(r)
}

// Variable is a template-local variable declaration such as `let-item`
type Variable struct {
	Name       string
	Value      string
	sourceSpan *util.ParseSourceSpan
}

// NewVariable creates a new Variable
func NewVariable(name, value string, sourceSpan *util.ParseSourceSpan) *Variable {
	return &Variable{Name: name, Value: value, sourceSpan: sourceSpan}
}

// SourceSpan returns the source span
func (v *Variable) SourceSpan() *util.ParseSourceSpan {
	return v.sourceSpan
}

// Visit visits the node with a visitor
func (v *Variable) Visit(visitor Visitor) interface{} {
	return visitor.VisitVariable(v)
}

// Element is a markup element with attributes, bindings and children
type Element struct {
	Name            string
	Attributes      []*TextAttribute
	Inputs          []*BoundAttribute
	Outputs         []*BoundEvent
	Children        []Node
	References      []*Reference
	sourceSpan      *util.ParseSourceSpan
	StartSourceSpan *util.ParseSourceSpan
	EndSourceSpan   *util.ParseSourceSpan
}

// NewElement creates a new Element node
func NewElement(
	name string,
	attributes []*TextAttribute,
	inputs []*BoundAttribute,
	outputs []*BoundEvent,
	children []Node,
	references []*Reference,
	sourceSpan *util.ParseSourceSpan,
	startSourceSpan *util.ParseSourceSpan,
	endSourceSpan *util.ParseSourceSpan,
) *Element {
	return &Element{
		Name:            name,
		Attributes:      attributes,
		Inputs:          inputs,
		Outputs:         outputs,
		Children:        children,
		References:      references,
		sourceSpan:      sourceSpan,
		StartSourceSpan: startSourceSpan,
		EndSourceSpan:   endSourceSpan,
	}
}

// SourceSpan returns the source span
func (e *Element) SourceSpan() *util.ParseSourceSpan {
	return e.sourceSpan
}

// Visit visits the node with a visitor
func (e *Element) Visit(visitor Visitor) interface{} {
	return visitor.VisitElement(e)
}

// Template is an embedded view declaration. TagName is nil for templates
// created from structural directives.
type Template struct {
	TagName         *string
	Attributes      []*TextAttribute
	Inputs          []*BoundAttribute
	Children        []Node
	References      []*Reference
	Variables       []*Variable
	sourceSpan      *util.ParseSourceSpan
	StartSourceSpan *util.ParseSourceSpan
	EndSourceSpan   *util.ParseSourceSpan
}

// NewTemplate creates a new Template node
func NewTemplate(
	tagName *string,
	attributes []*TextAttribute,
	inputs []*BoundAttribute,
	children []Node,
	references []*Reference,
	variables []*Variable,
	sourceSpan *util.ParseSourceSpan,
	startSourceSpan *util.ParseSourceSpan,
	endSourceSpan *util.ParseSourceSpan,
) *Template {
	return &Template{
		TagName:         tagName,
		Attributes:      attributes,
		Inputs:          inputs,
		Children:        children,
		References:      references,
		Variables:       variables,
		sourceSpan:      sourceSpan,
		StartSourceSpan: startSourceSpan,
		EndSourceSpan:   endSourceSpan,
	}
}

// SourceSpan returns the source span
func (t *Template) SourceSpan() *util.ParseSourceSpan {
	return t.sourceSpan
}

// Visit visits the node with a visitor
func (t *Template) Visit(visitor Visitor) interface{} {
	return visitor.VisitTemplate(t)
}

// Content is a content projection marker such as `<ng-content>`
type Content struct {
	Selector   string
	sourceSpan *util.ParseSourceSpan
}

// NewContent creates a new Content node
func NewContent(selector string, sourceSpan *util.ParseSourceSpan) *Content {
	return &Content{Selector: selector, sourceSpan: sourceSpan}
}

// SourceSpan returns the source span
func (c *Content) SourceSpan() *util.ParseSourceSpan {
	return c.sourceSpan
}

// Visit visits the node with a visitor
func (c *Content) Visit(visitor Visitor) interface{} {
	return visitor.VisitContent(c)
}

// Icu is an internationalization expansion block
type Icu struct {
	sourceSpan *util.ParseSourceSpan
}

// NewIcu creates a new Icu node
func NewIcu(sourceSpan *util.ParseSourceSpan) *Icu {
	return &Icu{sourceSpan: sourceSpan}
}

// SourceSpan returns the source span
func (i *Icu) SourceSpan() *util.ParseSourceSpan {
	return i.sourceSpan
}

// Visit visits the node with a visitor
func (i *Icu) Visit(visitor Visitor) interface{} {
	return visitor.VisitIcu(i)
}
