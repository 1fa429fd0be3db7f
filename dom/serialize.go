package dom

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xlab/treeprint"
)

// describe renders a single node, without its children or attributes.
func (n *Node) describe() string {
	switch n.NodeType {
	case ElementNode:
		e := "<"
		if ns := n.Element.NamespaceURI.short(); ns != "" {
			e += ns + " "
		}
		return e + n.NodeName + ">"
	case TextNode:
		return strconv.Quote(n.Text.Data)
	case CommentNode:
		return "<!-- " + n.Comment.Data + " -->"
	case DocumentNode:
		return "#document"
	default:
		logrus.WithField("nodeType", n.NodeType).Debug("describing unknown node type")
		return n.NodeName
	}
}

func (n *Node) serialize(b *strings.Builder, depth int) {
	if n.NodeType == DocumentNode {
		b.WriteString("#document\n")
	} else {
		spaces := "| " + strings.Repeat("  ", depth)
		b.WriteString(spaces + n.describe() + "\n")
		if n.Element != nil {
			for _, a := range n.Element.Attributes.Attrs {
				b.WriteString(spaces + "  " + a.Name + "=" + strconv.Quote(a.Value) + "\n")
			}
		}
		depth++
	}
	for _, child := range n.ChildNodes {
		child.serialize(b, depth)
	}
}

// String renders the subtree one node per line, attributes indented under
// their element, in the html5lib tree test format.
func (n *Node) String() string {
	var b strings.Builder
	n.serialize(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (n *Node) label() string {
	if n.NodeType != ElementNode {
		return n.describe()
	}
	var b strings.Builder
	b.WriteString("<" + n.NodeName)
	for _, a := range n.Element.Attributes.Attrs {
		b.WriteString(" " + a.Name + "=" + strconv.Quote(a.Value))
	}
	for _, t := range eventTypes {
		if n.Element.handlers[t] != nil {
			b.WriteString(" on" + t + "=<func>")
		}
	}
	b.WriteString(">")
	return b.String()
}

// Dump draws the subtree as an ASCII tree.
func Dump(n *Node) string {
	tree := treeprint.New()
	dumpNode(tree, n)
	return tree.String()
}

func dumpNode(tree treeprint.Tree, n *Node) {
	if !n.HasChildNodes() {
		tree.AddNode(n.label())
		return
	}
	branch := tree.AddBranch(n.label())
	for _, c := range n.ChildNodes {
		dumpNode(branch, c)
	}
}
