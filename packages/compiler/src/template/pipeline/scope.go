package pipeline

import (
	"tlc-go/packages/compiler/src/template/pipeline/ir"
)

// Scope tracks identifier allocation plus the references and variables
// declared at one template nesting level. Each level numbers its ids
// independently, starting at zero; a child scope's identifiers live in their
// own namespace and may shadow names recorded in its ancestors.
type Scope struct {
	parent     *Scope
	owner      ir.XrefId
	nextId     ir.XrefId
	references []*ScopeReference
	variables  []*ScopeVariable
	children   []*Scope
}

// ScopeReference is a named reference recorded against the op that declared it.
type ScopeReference struct {
	Name  string
	Owner ir.XrefId
	// Ref is the handle attached to the owning op.
	Ref *ir.LocalRef
}

// ScopeVariable is a template-local variable recorded against the template op
// that declared it.
type ScopeVariable struct {
	Name  string
	Owner ir.XrefId
	Value string
}

// RootScope creates the scope for the top level of a template.
func RootScope() *Scope {
	return &Scope{}
}

// Child creates the scope for a view nested under the op identified by owner
// (in this scope's numbering).
func (s *Scope) Child(owner ir.XrefId) *Scope {
	child := &Scope{
		parent: s,
		owner:  owner,
	}
	s.children = append(s.children, child)
	return child
}

// AllocateId mints the next id at this level.
func (s *Scope) AllocateId() ir.XrefId {
	id := s.nextId
	s.nextId++
	return id
}

// RecordReference records a named reference declared on owner and returns the
// handle to attach to the owning op.
func (s *Scope) RecordReference(name string, owner ir.XrefId, value string) *ir.LocalRef {
	ref := &ir.LocalRef{Name: name, Value: value}
	s.references = append(s.references, &ScopeReference{
		Name:  name,
		Owner: owner,
		Ref:   ref,
	})
	return ref
}

// RecordVariable records a template-local variable declared on owner.
func (s *Scope) RecordVariable(name string, owner ir.XrefId, value string) {
	s.variables = append(s.variables, &ScopeVariable{
		Name:  name,
		Owner: owner,
		Value: value,
	})
}

// Parent returns the enclosing scope, or nil at the root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Owner returns the id, in the parent's numbering, of the op that owns this
// scope. Only meaningful when Parent is non-nil.
func (s *Scope) Owner() ir.XrefId {
	return s.owner
}

// References returns the references recorded at this level, in declaration order.
func (s *Scope) References() []*ScopeReference {
	return s.references
}

// Variables returns the variables recorded at this level, in declaration order.
func (s *Scope) Variables() []*ScopeVariable {
	return s.variables
}

// Children returns the scopes of the views nested directly under this level,
// in creation order.
func (s *Scope) Children() []*Scope {
	return s.children
}
