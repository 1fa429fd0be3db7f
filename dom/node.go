package dom

import (
	"strings"

	"github.com/sirupsen/logrus"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node types
	*Element
	*Text
	*Comment
	*Document
}

func NewTextNode(od *Node, text string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text:          NewText(text),
	}
}

func NewCommentNode(od *Node, data string) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		Comment:       NewComment(data),
	}
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for i := other; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

// TextContent is https://dom.spec.whatwg.org/#dom-node-textcontent
func (n *Node) TextContent() string {
	switch n.NodeType {
	case TextNode:
		return n.Text.Data
	case CommentNode:
		return n.Comment.Data
	}
	var b strings.Builder
	n.collectText(&b)
	return b.String()
}

func (n *Node) collectText(b *strings.Builder) {
	for _, c := range n.ChildNodes {
		switch c.NodeType {
		case TextNode:
			b.WriteString(c.Text.Data)
		case ElementNode:
			c.collectText(b)
		}
	}
}

// https://dom.spec.whatwg.org/#concept-node-ensure-pre-insertion-validity
func (n *Node) ensurePreInsertionValidity(child *Node) error {
	if child == nil {
		return newException(HierarchyRequestError, "cannot insert a nil node")
	}
	switch n.NodeType {
	case ElementNode, DocumentNode, DocumentFragmentNode:
	default:
		return newException(HierarchyRequestError, "%s cannot have children", n.NodeName)
	}
	if child.NodeType == DocumentNode {
		return newException(HierarchyRequestError, "a document cannot be inserted")
	}
	if child.Contains(n) {
		return newException(HierarchyRequestError, "the new child contains the parent")
	}
	return nil
}

// AppendChild is https://dom.spec.whatwg.org/#dom-node-appendchild
// A child that already has a parent is moved.
func (n *Node) AppendChild(child *Node) (*Node, error) {
	return n.InsertBefore(child, nil)
}

// InsertBefore is https://dom.spec.whatwg.org/#dom-node-insertbefore
func (n *Node) InsertBefore(child, ref *Node) (*Node, error) {
	if err := n.ensurePreInsertionValidity(child); err != nil {
		return nil, err
	}
	if ref != nil && ref.ParentNode != n {
		return nil, newException(NotFoundError, "the reference node is not a child of this node")
	}
	if ref == child {
		ref = child.NextSibling
	}
	if child.ParentNode != nil {
		child.ParentNode.detach(child)
	}
	i := len(n.ChildNodes)
	if ref != nil {
		i = n.ChildNodes.Contains(ref)
	}
	n.ChildNodes.WedgeIn(i, child)
	child.ParentNode = n
	n.relink()
	return child, nil
}

// RemoveChild is https://dom.spec.whatwg.org/#dom-node-removechild
func (n *Node) RemoveChild(child *Node) (*Node, error) {
	if child == nil || child.ParentNode != n {
		return nil, newException(NotFoundError, "the node is not a child of this node")
	}
	n.detach(child)
	return child, nil
}

func (n *Node) detach(child *Node) {
	n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	child.ParentNode, child.PreviousSibling, child.NextSibling = nil, nil, nil
	n.relink()
}

func (n *Node) removeAllChildren() {
	for _, c := range n.ChildNodes {
		c.ParentNode, c.PreviousSibling, c.NextSibling = nil, nil, nil
	}
	n.ChildNodes = nil
	n.relink()
}

func (n *Node) relink() {
	n.FirstChild, n.LastChild = nil, nil
	last := len(n.ChildNodes) - 1
	for i, c := range n.ChildNodes {
		c.PreviousSibling, c.NextSibling = nil, nil
		if i > 0 {
			c.PreviousSibling = n.ChildNodes[i-1]
		}
		if i < last {
			c.NextSibling = n.ChildNodes[i+1]
		}
	}
	if last >= 0 {
		n.FirstChild, n.LastChild = n.ChildNodes[0], n.ChildNodes[last]
	}
}

// Append is https://dom.spec.whatwg.org/#dom-parentnode-append
// returning the receiver so calls can be chained. Children that cannot be
// inserted here are skipped and logged.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if _, err := n.AppendChild(c); err != nil {
			logrus.WithField("method", "Append").WithError(err).Warn("skipping child")
		}
	}
	return n
}

// AppendText appends one text node per string and returns the receiver.
func (n *Node) AppendText(texts ...string) *Node {
	for _, t := range texts {
		n.Append(NewTextNode(n.ownerOrSelf(), t))
	}
	return n
}

func (n *Node) ownerOrSelf() *Node {
	if n.NodeType == DocumentNode {
		return n
	}
	return n.OwnerDocument
}

// CloneNode is https://dom.spec.whatwg.org/#dom-node-clonenode
// The copy has no parent.
func (n *Node) CloneNode(deep bool) *Node {
	var copy *Node
	switch n.NodeType {
	case ElementNode:
		copy = newElement(n.OwnerDocument, n.Element.LocalName, n.Element.NamespaceURI, n.Element.Prefix)
		for _, a := range n.Element.Attributes.Attrs {
			copy.Element.Attributes.SetNamedItem(&Attr{Namespace: a.Namespace, Name: a.Name, Value: a.Value})
		}
		if len(n.Element.handlers) > 0 {
			copy.Element.handlers = make(map[string]EventHandler, len(n.Element.handlers))
			for k, h := range n.Element.handlers {
				copy.Element.handlers[k] = h
			}
		}
	case TextNode:
		copy = NewTextNode(n.OwnerDocument, n.Text.Data)
	case CommentNode:
		copy = NewCommentNode(n.OwnerDocument, n.Comment.Data)
	case DocumentNode:
		d := NewDocument()
		d.URL, d.ContentType, d.CompatMode, d.Type = n.Document.URL, n.Document.ContentType, n.Document.CompatMode, n.Document.Type
		copy = d.node
	default:
		copy = &Node{NodeType: n.NodeType, NodeName: n.NodeName, OwnerDocument: n.OwnerDocument}
	}

	if deep {
		for _, child := range n.ChildNodes {
			c := child.CloneNode(true)
			if copy.NodeType == DocumentNode {
				c.setOwner(copy)
			}
			copy.ChildNodes = append(copy.ChildNodes, c)
			c.ParentNode = copy
		}
		copy.relink()
	}
	return copy
}

func (n *Node) setOwner(od *Node) {
	n.OwnerDocument = od
	for _, c := range n.ChildNodes {
		c.setOwner(od)
	}
}

// IsEqualNode is https://dom.spec.whatwg.org/#concept-node-equals
func (n *Node) IsEqualNode(on *Node) bool {
	if on == nil || n.NodeType != on.NodeType || len(n.ChildNodes) != len(on.ChildNodes) {
		return false
	}

	switch n.NodeType {
	case ElementNode:
		a, b := n.Element, on.Element
		if a.NamespaceURI != b.NamespaceURI || a.Prefix != b.Prefix || a.LocalName != b.LocalName ||
			a.Attributes.Length() != b.Attributes.Length() {
			return false
		}
		for _, attr := range a.Attributes.Attrs {
			other := b.Attributes.GetNamedItem(attr.Name)
			if other == nil || other.Namespace != attr.Namespace || other.Value != attr.Value {
				return false
			}
		}
	case TextNode:
		if n.Text.Data != on.Text.Data {
			return false
		}
	case CommentNode:
		if n.Comment.Data != on.Comment.Data {
			return false
		}
	}

	for i := range n.ChildNodes {
		if !n.ChildNodes[i].IsEqualNode(on.ChildNodes[i]) {
			return false
		}
	}
	return true
}
