package spec

import (
	"strings"

	"github.com/emdom/emdom/parser/webidl"
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

type DocumentPosition uint16

const (
	Disconnected DocumentPosition = 0x01
	Preceding    DocumentPosition = 0x02
	Following    DocumentPosition = 0x04
	Contain      DocumentPosition = 0x08
	ContainedBy  DocumentPosition = 0x10
)

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	BaseURI                                                         webidl.USVString
	IsConnected                                                     bool
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node kind payloads; exactly one is set per node.
	*Element
	*Attr
	*Text
	*Comment
	*ProcessingInstruction
	*Document
	*DocumentType
	*DocumentFragment
}

// NewDocumentNode returns an empty document node that can own parse
// targets.
func NewDocumentNode() *Node {
	return &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{Type: "html"},
	}
}

// NewDocumentFragment returns a fresh parse target owned by od. od may
// be nil for a detached fragment.
func NewDocumentFragment(od *Node) *Node {
	return &Node{
		NodeType:         DocumentFragmentNode,
		NodeName:         "#document-fragment",
		OwnerDocument:    od,
		DocumentFragment: &DocumentFragment{},
	}
}

func NewDOMElement(od *Node, name string, namespace Namespace) *Node {
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			NamespaceURI: namespace,
			LocalName:    name,
		},
	}
	n.Element.Attributes = NewNamedNodeMap(n)
	return n
}

func NewTextNode(od *Node, text string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text:          NewText(text),
	}
}

// NewComment returns a comment node with its Data section filled.
func NewComment(data string, od *Node) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		Comment: &Comment{
			CharacterData: &CharacterData{
				Data:   webidl.DOMString(data),
				Length: len(data),
			},
		},
	}
}

func NewProcessingInstruction(od *Node, target, data string) *Node {
	return &Node{
		NodeType:      ProcessingInstructionNode,
		NodeName:      target,
		OwnerDocument: od,
		ProcessingInstruction: &ProcessingInstruction{
			Target: webidl.DOMString(target),
			CharacterData: &CharacterData{
				Data:   webidl.DOMString(data),
				Length: len(data),
			},
		},
	}
}

func NewDocTypeNode(name, pub, sys string) *Node {
	return &Node{
		NodeType: DocumentTypeNode,
		NodeName: name,
		DocumentType: &DocumentType{
			Name:     webidl.DOMString(name),
			PublicID: webidl.DOMString(pub),
			SystemID: webidl.DOMString(sys),
		},
	}
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// AppendChild attaches on as the last child of n.
// https://dom.spec.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) *Node {
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

func (n *Node) InsertBefore(on, child *Node) *Node {
	i := n.ChildNodes.Contains(child)
	if i < 0 {
		return n.AppendChild(on)
	}
	n.ChildNodes.WedgeIn(i, on)
	on.ParentNode = n
	on.NextSibling = child
	child.PreviousSibling = on
	if i == 0 {
		n.FirstChild = on
	} else {
		prev := n.ChildNodes[i-1]
		on.PreviousSibling = prev
		prev.NextSibling = on
	}
	return on
}

func (n *Node) RemoveChild(child *Node) *Node {
	i := n.ChildNodes.Contains(child)
	if i < 0 {
		return nil
	}
	node := n.ChildNodes.Remove(i)
	if node.PreviousSibling != nil {
		node.PreviousSibling.NextSibling = node.NextSibling
	}
	if node.NextSibling != nil {
		node.NextSibling.PreviousSibling = node.PreviousSibling
	}
	if n.FirstChild == node {
		n.FirstChild = node.NextSibling
	}
	if n.LastChild == node {
		n.LastChild = node.PreviousSibling
	}
	node.ParentNode = nil
	node.PreviousSibling = nil
	node.NextSibling = nil
	return node
}

// SetAttributeNS records an attribute on an element node, preserving
// encounter order. ns may be NoNamespace.
func (n *Node) SetAttributeNS(ns Namespace, name, value string) {
	if n.NodeType != ElementNode || n.Element == nil {
		return
	}
	a := NewAttr(name, value, n)
	a.Namespace = ns
	n.Element.Attributes.SetNamedItem(a)
}

// GetAttribute returns an attribute's value and whether it is present.
func (n *Node) GetAttribute(name string) (string, bool) {
	if n.NodeType != ElementNode || n.Element == nil {
		return "", false
	}
	a := n.Element.Attributes.GetNamedItem(webidl.DOMString(name))
	if a == nil {
		return "", false
	}
	return string(a.Value), true
}

func serializeNodeType(node *Node) string {
	switch node.NodeType {
	case ElementNode:
		e := "<"
		switch node.Element.NamespaceURI {
		case Svgns:
			e += "svg "
		case Mathmlns:
			e += "math "
		}
		e += node.NodeName
		for _, attr := range node.Element.Attributes.InOrder() {
			e += " " + string(attr.Name) + "=\"" + string(attr.Value) + "\""
		}
		return e + ">"
	case TextNode:
		return "\"" + string(node.Text.Data) + "\""
	case CommentNode:
		return "<!-- " + string(node.Comment.Data) + " -->"
	case ProcessingInstructionNode:
		return "<?" + string(node.ProcessingInstruction.Target) + " " + string(node.ProcessingInstruction.Data) + ">"
	case DocumentTypeNode:
		d := "<!DOCTYPE " + string(node.DocumentType.Name)
		if len(node.DocumentType.PublicID) != 0 || len(node.DocumentType.SystemID) != 0 {
			d += " \"" + string(node.DocumentType.PublicID) + "\""
			d += " \"" + string(node.DocumentType.SystemID) + "\""
		}
		return d + ">"
	case DocumentNode:
		return "#document"
	case DocumentFragmentNode:
		return "#document-fragment"
	default:
		return node.NodeName
	}
}

func (node *Node) serialize(ident int) string {
	ser := serializeNodeType(node) + "\n"
	if node.NodeType != DocumentNode && node.NodeType != DocumentFragmentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.ChildNodes {
		ser += child.serialize(ident + 1)
	}
	return ser
}

// String renders the subtree in the "| "-indented dump format used by
// tests and debug logs.
func (node *Node) String() string {
	return strings.TrimRight(node.serialize(0), "\n")
}
