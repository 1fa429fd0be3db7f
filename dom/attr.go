package dom

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace    string
	Name         string
	Value        string
	OwnerElement *Node
}

// NewAttr returns an attribute owned by oe.
func NewAttr(name, value string, oe *Node) *Attr {
	return &Attr{
		Name:         name,
		Value:        value,
		OwnerElement: oe,
	}
}
