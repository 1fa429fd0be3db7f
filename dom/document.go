package dom

import "strings"

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	URL, ContentType, CompatMode string

	// Type is "html" or "xml".
	Type string

	node *Node
}

// NewDocument returns an empty HTML document.
func NewDocument() *Document {
	n := &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
	}
	d := &Document{
		URL:         "about:blank",
		ContentType: "text/html",
		CompatMode:  "CSS1Compat",
		Type:        "html",
		node:        n,
	}
	n.Document = d
	return d
}

// AsNode returns the document node.
func (d *Document) AsNode() *Node {
	return d.node
}

// CreateElement is https://dom.spec.whatwg.org/#dom-document-createelement
func (d *Document) CreateElement(localName string) (*Node, error) {
	if !isValidName(localName) {
		return nil, newException(InvalidCharacterError, "%q is not a valid element name", localName)
	}
	if d.Type == "html" {
		localName = strings.ToLower(localName)
	}
	return newElement(d.node, localName, Htmlns, ""), nil
}

// CreateElementNS is https://dom.spec.whatwg.org/#dom-document-createelementns
func (d *Document) CreateElementNS(namespace Namespace, qualifiedName string) (*Node, error) {
	if !isValidName(qualifiedName) {
		return nil, newException(InvalidCharacterError, "%q is not a valid element name", qualifiedName)
	}
	var prefix string
	localName := qualifiedName
	if i := strings.IndexByte(qualifiedName, ':'); i >= 0 {
		prefix, localName = qualifiedName[:i], qualifiedName[i+1:]
		if prefix == "" || localName == "" {
			return nil, newException(InvalidCharacterError, "%q is not a valid qualified name", qualifiedName)
		}
	}
	return newElement(d.node, localName, namespace, prefix), nil
}

func (d *Document) CreateTextNode(data string) *Node {
	return NewTextNode(d.node, data)
}

func (d *Document) CreateComment(data string) *Node {
	return NewCommentNode(d.node, data)
}
