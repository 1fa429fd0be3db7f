package dom

import "strings"

type Namespace uint

const (
	Htmlns Namespace = iota
	Svgns
	Mathmlns
)

// URI returns the namespace URI.
// https://infra.spec.whatwg.org/#namespaces
func (ns Namespace) URI() string {
	switch ns {
	case Svgns:
		return "http://www.w3.org/2000/svg"
	case Mathmlns:
		return "http://www.w3.org/1998/Math/MathML"
	default:
		return "http://www.w3.org/1999/xhtml"
	}
}

// short is the namespace name golang.org/x/net/html uses for foreign content.
func (ns Namespace) short() string {
	switch ns {
	case Svgns:
		return "svg"
	case Mathmlns:
		return "math"
	}
	return ""
}

func namespaceFromShort(s string) Namespace {
	switch s {
	case "svg":
		return Svgns
	case "math":
		return Mathmlns
	}
	return Htmlns
}

// Element is https://dom.spec.whatwg.org/#interface-element
type Element struct {
	NamespaceURI      Namespace
	Prefix, LocalName string
	Attributes        *NamedNodeMap

	handlers map[string]EventHandler
}

func newElement(od *Node, name string, namespace Namespace, prefix string) *Node {
	qualified := name
	if prefix != "" {
		qualified = prefix + ":" + name
	}
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      qualified,
		OwnerDocument: od,
		Element: &Element{
			NamespaceURI: namespace,
			Prefix:       prefix,
			LocalName:    name,
		},
	}
	n.Element.Attributes = NewNamedNodeMap(n)
	return n
}

// TagName is the qualified name, uppercased for HTML elements.
func (e *Element) TagName() string {
	if e == nil {
		return ""
	}
	name := e.LocalName
	if e.Prefix != "" {
		name = e.Prefix + ":" + name
	}
	if e.NamespaceURI == Htmlns {
		return strings.ToUpper(name)
	}
	return name
}

func (e *Element) ID() string        { return e.GetAttribute("id") }
func (e *Element) ClassName() string { return e.GetAttribute("class") }

// ClassList returns the class tokens in attribute order.
func (e *Element) ClassList() []string {
	return strings.Fields(e.ClassName())
}

func (e *Element) HasAttributes() bool {
	return e != nil && e.Attributes.Length() > 0
}

func (e *Element) GetAttributeNames() []string {
	if e == nil {
		return nil
	}
	names := make([]string, 0, e.Attributes.Length())
	for _, a := range e.Attributes.Attrs {
		names = append(names, a.Name)
	}
	return names
}

// GetAttribute returns the attribute's value, or "" when it is not set.
func (e *Element) GetAttribute(qualifiedName string) string {
	if e == nil {
		return ""
	}
	if a := e.Attributes.GetNamedItem(qualifiedName); a != nil {
		return a.Value
	}
	return ""
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	return e != nil && e.Attributes.GetNamedItem(qualifiedName) != nil
}

// SetAttribute is https://dom.spec.whatwg.org/#dom-element-setattribute
func (e *Element) SetAttribute(qualifiedName, value string) error {
	if e == nil {
		return newException(TypeError, "setAttribute called on a non-element node")
	}
	if !isValidName(qualifiedName) {
		return newException(InvalidCharacterError, "%q is not a valid attribute name", qualifiedName)
	}
	if e.NamespaceURI == Htmlns {
		qualifiedName = strings.ToLower(qualifiedName)
	}
	if a := e.Attributes.GetNamedItem(qualifiedName); a != nil {
		a.Value = value
		return nil
	}
	e.Attributes.SetNamedItem(NewAttr(qualifiedName, value, nil))
	return nil
}

func (e *Element) RemoveAttribute(qualifiedName string) {
	if e == nil {
		return
	}
	e.Attributes.RemoveNamedItem(qualifiedName)
}

// ToggleAttribute is https://dom.spec.whatwg.org/#dom-element-toggleattribute
func (e *Element) ToggleAttribute(qualifiedName string, force ...bool) (bool, error) {
	if e == nil {
		return false, newException(TypeError, "toggleAttribute called on a non-element node")
	}
	has := e.HasAttribute(qualifiedName)
	want := !has
	if len(force) > 0 {
		want = force[0]
	}
	switch {
	case want && !has:
		if err := e.SetAttribute(qualifiedName, ""); err != nil {
			return false, err
		}
	case !want && has:
		e.RemoveAttribute(qualifiedName)
	}
	return want, nil
}
