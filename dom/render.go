package dom

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLNode converts the subtree rooted at n to a golang.org/x/net/html tree.
// Node types html cannot represent are left out.
func (n *Node) HTMLNode() *html.Node {
	var h *html.Node
	switch n.NodeType {
	case ElementNode:
		e := n.Element
		h = &html.Node{
			Type:      html.ElementNode,
			Data:      n.NodeName,
			Namespace: e.NamespaceURI.short(),
		}
		if e.NamespaceURI == Htmlns {
			h.DataAtom = atom.Lookup([]byte(e.LocalName))
		}
		for _, a := range e.Attributes.Attrs {
			h.Attr = append(h.Attr, html.Attribute{Namespace: a.Namespace, Key: a.Name, Val: a.Value})
		}
	case TextNode:
		h = &html.Node{Type: html.TextNode, Data: n.Text.Data}
	case CommentNode:
		h = &html.Node{Type: html.CommentNode, Data: n.Comment.Data}
	case DocumentNode:
		h = &html.Node{Type: html.DocumentNode}
	default:
		logrus.WithField("nodeType", n.NodeType).Warn("node type cannot be rendered")
		return nil
	}
	for _, c := range n.ChildNodes {
		if hc := c.HTMLNode(); hc != nil {
			h.AppendChild(hc)
		}
	}
	return h
}

// Render writes the HTML serialization of n to w.
func (n *Node) Render(w io.Writer) error {
	h := n.HTMLNode()
	if h == nil {
		return nil
	}
	return errors.Wrapf(html.Render(w, h), "rendering <%s>", n.NodeName)
}

// OuterHTML is https://w3c.github.io/DOM-Parsing/#dom-element-outerhtml
func (n *Node) OuterHTML() string {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		logrus.WithField("method", "OuterHTML").WithError(err).Warn("incomplete serialization")
	}
	return b.String()
}

// InnerHTML is https://w3c.github.io/DOM-Parsing/#dom-innerhtml-innerhtml
func (n *Node) InnerHTML() string {
	var b strings.Builder
	for _, c := range n.ChildNodes {
		if err := c.Render(&b); err != nil {
			logrus.WithField("method", "InnerHTML").WithError(err).Warn("incomplete serialization")
		}
	}
	return b.String()
}

// https://html.spec.whatwg.org/#html-fragment-parsing-algorithm
func (n *Node) setInnerHTML(markup string) error {
	context := &html.Node{
		Type:      html.ElementNode,
		Data:      n.Element.LocalName,
		Namespace: n.Element.NamespaceURI.short(),
	}
	if n.Element.NamespaceURI == Htmlns {
		context.DataAtom = atom.Lookup([]byte(n.Element.LocalName))
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return errors.WithStack(err)
	}

	n.removeAllChildren()
	for _, h := range nodes {
		if c := fromHTML(n.OwnerDocument, h); c != nil {
			n.ChildNodes = append(n.ChildNodes, c)
			c.ParentNode = n
		}
	}
	n.relink()
	return nil
}

func fromHTML(od *Node, h *html.Node) *Node {
	var n *Node
	switch h.Type {
	case html.ElementNode:
		n = newElement(od, h.Data, namespaceFromShort(h.Namespace), "")
		for _, a := range h.Attr {
			n.Element.Attributes.SetNamedItem(&Attr{Namespace: a.Namespace, Name: a.Key, Value: a.Val})
		}
	case html.TextNode:
		return NewTextNode(od, h.Data)
	case html.CommentNode:
		return NewCommentNode(od, h.Data)
	default:
		return nil
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if child := fromHTML(od, c); child != nil {
			n.ChildNodes = append(n.ChildNodes, child)
			child.ParentNode = n
		}
	}
	n.relink()
	return n
}
