package dom

import "strings"

// NamedNodeMap is https://dom.spec.whatwg.org/#namednodemap
// Attributes keep the order in which they were first set.
type NamedNodeMap struct {
	Attrs             []*Attr
	AssociatedElement *Node
}

func NewNamedNodeMap(oe *Node) *NamedNodeMap {
	return &NamedNodeMap{AssociatedElement: oe}
}

func (m *NamedNodeMap) Length() int {
	if m == nil {
		return 0
	}
	return len(m.Attrs)
}

func (m *NamedNodeMap) Item(i int) *Attr {
	if i < 0 || i >= m.Length() {
		return nil
	}
	return m.Attrs[i]
}

func (m *NamedNodeMap) GetNamedItem(qn string) *Attr {
	if i := m.index(qn); i >= 0 {
		return m.Attrs[i]
	}
	return nil
}

// SetNamedItem stores attr, replacing an attribute of the same name in place.
// It returns the replaced attribute, if any.
func (m *NamedNodeMap) SetNamedItem(attr *Attr) *Attr {
	if attr == nil {
		return nil
	}
	attr.OwnerElement = m.AssociatedElement
	i := m.index(attr.Name)
	if i < 0 {
		m.Attrs = append(m.Attrs, attr)
		return nil
	}
	old := m.Attrs[i]
	m.Attrs[i] = attr
	return old
}

func (m *NamedNodeMap) RemoveNamedItem(qn string) *Attr {
	i := m.index(qn)
	if i < 0 {
		return nil
	}
	old := m.Attrs[i]
	m.Attrs = append(m.Attrs[:i], m.Attrs[i+1:]...)
	old.OwnerElement = nil
	return old
}

// https://dom.spec.whatwg.org/#concept-element-attributes-get-by-name
func (m *NamedNodeMap) index(qn string) int {
	if m == nil {
		return -1
	}
	if m.AssociatedElement != nil &&
		m.AssociatedElement.Element != nil &&
		m.AssociatedElement.Element.NamespaceURI == Htmlns {
		qn = strings.ToLower(qn)
	}
	for i, a := range m.Attrs {
		if a.Name == qn {
			return i
		}
	}
	return -1
}
