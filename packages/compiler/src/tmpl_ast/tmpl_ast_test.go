package tmpl_ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tlc-go/packages/compiler/src/expression_parser"
	"tlc-go/packages/compiler/src/tmpl_ast"
)

// kindCollector records the kind of every node it visits, recursing into
// elements and templates.
type kindCollector struct {
	kinds []string
}

func (c *kindCollector) visitAll(nodes []tmpl_ast.Node) {
	for _, node := range nodes {
		node.Visit(c)
	}
}

func (c *kindCollector) VisitElement(element *tmpl_ast.Element) interface{} {
	c.kinds = append(c.kinds, "element:"+element.Name)
	c.visitAll(element.Children)
	return nil
}

func (c *kindCollector) VisitTemplate(template *tmpl_ast.Template) interface{} {
	c.kinds = append(c.kinds, "template")
	c.visitAll(template.Children)
	return nil
}

func (c *kindCollector) VisitContent(content *tmpl_ast.Content) interface{} {
	c.kinds = append(c.kinds, "content")
	return nil
}

func (c *kindCollector) VisitVariable(variable *tmpl_ast.Variable) interface{} {
	c.kinds = append(c.kinds, "variable:"+variable.Name)
	return nil
}

func (c *kindCollector) VisitReference(reference *tmpl_ast.Reference) interface{} {
	c.kinds = append(c.kinds, "reference:"+reference.Name)
	return nil
}

func (c *kindCollector) VisitTextAttribute(attribute *tmpl_ast.TextAttribute) interface{} {
	c.kinds = append(c.kinds, "attribute:"+attribute.Name)
	return nil
}

func (c *kindCollector) VisitBoundAttribute(attribute *tmpl_ast.BoundAttribute) interface{} {
	c.kinds = append(c.kinds, "binding:"+attribute.Name)
	return nil
}

func (c *kindCollector) VisitBoundEvent(event *tmpl_ast.BoundEvent) interface{} {
	c.kinds = append(c.kinds, "event:"+event.Name)
	return nil
}

func (c *kindCollector) VisitText(text *tmpl_ast.Text) interface{} {
	c.kinds = append(c.kinds, "text:"+text.Value)
	return nil
}

func (c *kindCollector) VisitBoundText(text *tmpl_ast.BoundText) interface{} {
	c.kinds = append(c.kinds, "boundtext")
	return nil
}

func (c *kindCollector) VisitIcu(icu *tmpl_ast.Icu) interface{} {
	c.kinds = append(c.kinds, "icu")
	return nil
}

func TestVisitor(t *testing.T) {
	t.Run("should dispatch each node to its visit method", func(t *testing.T) {
		implicit := expression_parser.NewImplicitReceiver(nil)
		nodes := []tmpl_ast.Node{
			tmpl_ast.NewElement("div", nil, nil, nil, []tmpl_ast.Node{
				tmpl_ast.NewText("hi", nil),
				tmpl_ast.NewBoundText(expression_parser.NewPropertyRead(implicit, "x", nil), nil),
			}, nil, nil, nil, nil),
			tmpl_ast.NewTemplate(nil, nil, nil, []tmpl_ast.Node{
				tmpl_ast.NewContent("*", nil),
			}, nil, nil, nil, nil, nil),
			tmpl_ast.NewIcu(nil),
		}

		collector := &kindCollector{}
		collector.visitAll(nodes)

		want := []string{"element:div", "text:hi", "boundtext", "template", "content", "icu"}
		if diff := cmp.Diff(want, collector.kinds); diff != "" {
			t.Errorf("visit order mismatch (-want +got):\n%s", diff)
		}
	})
}
