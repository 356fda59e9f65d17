package parser

import (
	"strings"

	"github.com/emdom/emdom/parser/spec"
)

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, "\u00A0", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}
	return s
}

// SerializeFragment renders node's children back into markup. Raw-text
// children are emitted verbatim, void elements carry no end tag, and
// attributes keep their encounter order.
func SerializeFragment(fragment *spec.Node) string {
	var sb strings.Builder
	for _, child := range fragment.ChildNodes {
		serializeNode(&sb, child)
	}
	return sb.String()
}

func serializeNode(sb *strings.Builder, node *spec.Node) {
	switch node.NodeType {
	case spec.ElementNode:
		tag := lowerASCII(node.NodeName)
		sb.WriteString("<" + tag)
		for _, attr := range node.Element.Attributes.InOrder() {
			sb.WriteString(" " + string(attr.Name) + "=\"" + escapeString(string(attr.Value), true) + "\"")
		}
		sb.WriteString(">")
		if spec.IsVoid(node.NodeName) {
			return
		}
		if spec.IsRawText(node.NodeName) {
			for _, child := range node.ChildNodes {
				if child.NodeType == spec.TextNode {
					sb.WriteString(string(child.Text.Data))
				}
			}
		} else {
			for _, child := range node.ChildNodes {
				serializeNode(sb, child)
			}
		}
		sb.WriteString("</" + tag + ">")
	case spec.TextNode:
		sb.WriteString(escapeString(string(node.Text.Data), false))
	case spec.CommentNode:
		sb.WriteString("<!--" + string(node.Comment.Data) + "-->")
	case spec.ProcessingInstructionNode:
		sb.WriteString("<?" + string(node.ProcessingInstruction.Target) + " " + string(node.ProcessingInstruction.Data) + "?>")
	case spec.DocumentTypeNode:
		sb.WriteString("<!DOCTYPE " + string(node.DocumentType.Name))
		if len(node.DocumentType.PublicID) != 0 {
			sb.WriteString(" PUBLIC \"" + string(node.DocumentType.PublicID) + "\" \"" + string(node.DocumentType.SystemID) + "\"")
		} else if len(node.DocumentType.SystemID) != 0 {
			sb.WriteString(" SYSTEM \"" + string(node.DocumentType.SystemID) + "\"")
		}
		sb.WriteString(">")
	}
}
