package core

// AttributeMarker is a marker value inserted into a flattened attribute array
// to denote the role of the entries that follow it. Static name/value pairs
// come first, unmarked.
type AttributeMarker int

const (
	// AttributeMarkerNamespaceURI - the next entries are a namespaced attribute
	AttributeMarkerNamespaceURI AttributeMarker = iota
	// AttributeMarkerClasses - the next entries are class names
	AttributeMarkerClasses
	// AttributeMarkerStyles - the next entries are style name/value pairs
	AttributeMarkerStyles
	// AttributeMarkerBindings - the next entries are the names of bound inputs
	AttributeMarkerBindings
	// AttributeMarkerTemplate - the next entries are bindings applied to a template
	AttributeMarkerTemplate
	// AttributeMarkerProjectAs - the next entry is a projection selector
	AttributeMarkerProjectAs
	// AttributeMarkerI18n - the next entries are translated attribute names
	AttributeMarkerI18n
)

// String returns the marker name for diagnostics.
func (m AttributeMarker) String() string {
	switch m {
	case AttributeMarkerNamespaceURI:
		return "NamespaceURI"
	case AttributeMarkerClasses:
		return "Classes"
	case AttributeMarkerStyles:
		return "Styles"
	case AttributeMarkerBindings:
		return "Bindings"
	case AttributeMarkerTemplate:
		return "Template"
	case AttributeMarkerProjectAs:
		return "ProjectAs"
	case AttributeMarkerI18n:
		return "I18n"
	}
	return "Unknown"
}
