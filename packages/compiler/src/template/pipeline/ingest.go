package pipeline

import (
	"fmt"

	"tlc-go/packages/compiler/core"
	"tlc-go/packages/compiler/src/expression_parser"
	"tlc-go/packages/compiler/src/template/pipeline/ir"
	"tlc-go/packages/compiler/src/tmpl_ast"
)

// TemplateCompilation is the named root IR of a lowered template.
type TemplateCompilation struct {
	Name string
	Root *ViewCompilationUnit
}

// ViewCompilationUnit holds the create/update op pair and the scope for one
// template level. Nested templates get their own unit, attached to the parent
// through the TemplateOp that declares them.
type ViewCompilationUnit struct {
	Create *ir.CreateList
	Update *ir.UpdateList
	Scope  *Scope
}

// newViewCompilationUnit creates an empty unit rooted at scope.
func newViewCompilationUnit(scope *Scope) *ViewCompilationUnit {
	return &ViewCompilationUnit{
		Create: ir.NewCreateList(),
		Update: ir.NewUpdateList(),
		Scope:  scope,
	}
}

// IngestTemplate lowers a template AST into its create/update IR lists. The
// template name is attached to the result after the root level is lowered.
func IngestTemplate(name string, template []tmpl_ast.Node) (*TemplateCompilation, error) {
	root, err := ingestView(RootScope(), template)
	if err != nil {
		return nil, err
	}
	return &TemplateCompilation{
		Name: name,
		Root: root,
	}, nil
}

// ingestView lowers one template level with a fresh unit rooted at scope.
func ingestView(scope *Scope, nodes []tmpl_ast.Node) (*ViewCompilationUnit, error) {
	unit := newViewCompilationUnit(scope)
	if err := ingestNodes(unit, nodes); err != nil {
		return nil, err
	}
	return unit, nil
}

// ingestNodes lowers the nodes of one template level into the given unit.
func ingestNodes(unit *ViewCompilationUnit, nodes []tmpl_ast.Node) error {
	for _, node := range nodes {
		var err error
		switch n := node.(type) {
		case *tmpl_ast.Element:
			err = ingestElement(unit, n)
		case *tmpl_ast.Template:
			err = ingestTemplate(unit, n)
		case *tmpl_ast.Text:
			ingestText(unit, n)
		case *tmpl_ast.BoundText:
			err = ingestBoundText(unit, n)
		case *tmpl_ast.Content:
			err = &UnsupportedNodeError{Construct: "content projection", Span: n.SourceSpan()}
		case *tmpl_ast.Icu:
			err = &UnsupportedNodeError{Construct: "i18n expansion", Span: n.SourceSpan()}
		case *tmpl_ast.Variable:
			err = &UnsupportedNodeError{Construct: "top-level variable", Span: n.SourceSpan()}
		case *tmpl_ast.Reference:
			err = &UnsupportedNodeError{Construct: "top-level reference", Span: n.SourceSpan()}
		case *tmpl_ast.TextAttribute:
			err = &UnsupportedNodeError{Construct: "top-level attribute", Span: n.SourceSpan()}
		case *tmpl_ast.BoundAttribute:
			err = &UnsupportedNodeError{Construct: "top-level binding", Span: n.SourceSpan()}
		case *tmpl_ast.BoundEvent:
			err = &UnsupportedNodeError{Construct: "event binding", Span: n.SourceSpan()}
		default:
			err = &UnsupportedNodeError{Construct: fmt.Sprintf("%T", node), Span: node.SourceSpan()}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ingestElement lowers an element node: element-start with the flattened
// attribute array and reference handles, one property op per bound input,
// the children, then element-end under the same id.
func ingestElement(unit *ViewCompilationUnit, element *tmpl_ast.Element) error {
	if len(element.Outputs) > 0 {
		return &UnsupportedNodeError{Construct: "event binding", Span: element.Outputs[0].SourceSpan()}
	}

	id := unit.Scope.AllocateId()

	startOp := ir.NewElementStartOp(element.Name, id, element.StartSourceSpan)
	for _, ref := range element.References {
		startOp.LocalRefs = append(startOp.LocalRefs, unit.Scope.RecordReference(ref.Name, id, ref.Value))
	}
	startOp.Attrs = flattenAttrs(element.Attributes, element.Inputs)
	unit.Create.Push(startOp)

	for _, input := range element.Inputs {
		value, err := ConvertAst(input.Value)
		if err != nil {
			return err
		}
		unit.Update.Push(ir.NewPropertyOp(id, input.Name, value, input.SourceSpan()))
	}

	if err := ingestNodes(unit, element.Children); err != nil {
		return err
	}

	// The end op's span is the closing tag when one exists; void elements
	// fall back to the start span.
	endSpan := element.EndSourceSpan
	if endSpan == nil {
		endSpan = element.StartSourceSpan
	}
	unit.Create.Push(ir.NewElementEndOp(id, endSpan))
	return nil
}

// flattenAttrs builds the flattened attribute array for an element: static
// name/value pairs first, then the bindings marker followed by each bound
// input's name. Nil when there is nothing to record.
func flattenAttrs(attributes []*tmpl_ast.TextAttribute, inputs []*tmpl_ast.BoundAttribute) []interface{} {
	if len(attributes) == 0 && len(inputs) == 0 {
		return nil
	}
	attrs := make([]interface{}, 0, len(attributes)*2+len(inputs)+1)
	for _, attr := range attributes {
		attrs = append(attrs, attr.Name, attr.Value)
	}
	if len(inputs) > 0 {
		attrs = append(attrs, core.AttributeMarkerBindings)
		for _, input := range inputs {
			attrs = append(attrs, input.Name)
		}
	}
	return attrs
}

// ingestTemplate lowers an embedded view: the children are lowered by a fresh
// unit rooted at a child scope, and the resulting pair travels on a single
// TemplateOp in the parent's create list. References declared on the template
// are recorded in the parent scope, keyed by the template's id.
func ingestTemplate(unit *ViewCompilationUnit, tmpl *tmpl_ast.Template) error {
	if len(tmpl.Inputs) > 0 {
		return &UnsupportedNodeError{Construct: "template binding", Span: tmpl.Inputs[0].SourceSpan()}
	}
	if len(tmpl.Attributes) > 0 {
		return &UnsupportedNodeError{Construct: "template attribute", Span: tmpl.Attributes[0].SourceSpan()}
	}

	id := unit.Scope.AllocateId()

	childScope := unit.Scope.Child(id)
	for _, variable := range tmpl.Variables {
		value := variable.Value
		if value == "" {
			value = "$implicit"
		}
		childScope.RecordVariable(variable.Name, id, value)
	}

	childView, err := ingestView(childScope, tmpl.Children)
	if err != nil {
		return err
	}

	templateOp := ir.NewTemplateOp(id, tmpl.TagName, childView.Create, childView.Update, tmpl.StartSourceSpan)
	for _, ref := range tmpl.References {
		templateOp.LocalRefs = append(templateOp.LocalRefs, unit.Scope.RecordReference(ref.Name, id, ref.Value))
	}
	unit.Create.Push(templateOp)
	return nil
}

// ingestText lowers a literal text node.
func ingestText(unit *ViewCompilationUnit, text *tmpl_ast.Text) {
	unit.Create.Push(ir.NewTextOp(unit.Scope.AllocateId(), text.Value, text.SourceSpan()))
}

// ingestBoundText lowers an interpolated text node: a TextOp with no static
// value in the create list, and an InterpolateTextOp carrying the literal
// separator strings and the lowered sub-expressions in the update list.
func ingestBoundText(unit *ViewCompilationUnit, text *tmpl_ast.BoundText) error {
	value := text.Value
	if astWithSource, ok := value.(*expression_parser.ASTWithSource); ok {
		value = astWithSource.AST
	}

	interpolation, ok := value.(*expression_parser.Interpolation)
	if !ok {
		return fmt.Errorf("expected an interpolation for a bound text node, got %T at %s", value, text.SourceSpan())
	}

	id := unit.Scope.AllocateId()
	unit.Create.Push(ir.NewTextOp(id, "", text.SourceSpan()))

	expressions, err := convertExpressions(interpolation.Expressions)
	if err != nil {
		return err
	}
	interp, err := ir.NewInterpolation(interpolation.Strings, expressions)
	if err != nil {
		return err
	}
	unit.Update.Push(ir.NewInterpolateTextOp(id, interp, text.SourceSpan()))
	return nil
}
