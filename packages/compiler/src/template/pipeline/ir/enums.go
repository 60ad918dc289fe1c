package ir

// OpKind distinguishes different kinds of IR operations
type OpKind int

const (
	// OpKindElementStart - an operation to begin rendering of an element
	OpKindElementStart OpKind = iota
	// OpKindElementEnd - an operation to end rendering of an element previously started with `ElementStart`
	OpKindElementEnd
	// OpKindText - an operation to render a text node
	OpKindText
	// OpKindTemplate - an operation which declares an embedded view
	OpKindTemplate
	// OpKindInterpolateText - an operation to interpolate text into a text node
	OpKindInterpolateText
	// OpKindProperty - an operation to bind an expression to a property of an element
	OpKindProperty
)

// String returns the kind name for diagnostics.
func (k OpKind) String() string {
	switch k {
	case OpKindElementStart:
		return "ElementStart"
	case OpKindElementEnd:
		return "ElementEnd"
	case OpKindText:
		return "Text"
	case OpKindTemplate:
		return "Template"
	case OpKindInterpolateText:
		return "InterpolateText"
	case OpKindProperty:
		return "Property"
	}
	return "Unknown"
}
