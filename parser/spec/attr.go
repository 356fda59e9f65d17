package spec

import "github.com/emdom/emdom/parser/webidl"

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace    Namespace
	Prefix       webidl.DOMString
	LocalName    webidl.DOMString
	Name         webidl.DOMString
	Value        webidl.DOMString
	OwnerElement *Node
	Specified    bool
}

func NewAttr(name, value string, oe *Node) *Attr {
	return &Attr{
		LocalName:    webidl.DOMString(name),
		Name:         webidl.DOMString(name),
		Value:        webidl.DOMString(value),
		OwnerElement: oe,
		Specified:    true,
	}
}
