package spec

import "github.com/emdom/emdom/parser/webidl"

func NewNamedNodeMap(oe *Node) *NamedNodeMap {
	return &NamedNodeMap{
		Attrs:             map[webidl.DOMString]*Attr{},
		AssociatedElement: oe,
	}
}

// NamedNodeMap stores an element's attributes. Order remembers the
// sequence attributes were first set in, which callers rely on when
// serializing or dumping a tree.
type NamedNodeMap struct {
	Length            int
	Attrs             map[webidl.DOMString]*Attr
	Order             []webidl.DOMString
	AssociatedElement *Node
}

func (n *NamedNodeMap) GetNamedItem(qn webidl.DOMString) *Attr {
	if v, ok := n.Attrs[qn]; ok {
		return v
	}
	return nil
}

func (n *NamedNodeMap) GetNamedItemNS(ns Namespace, ln webidl.DOMString) *Attr {
	if v, ok := n.Attrs[ln]; ok && v.Namespace == ns {
		return v
	}
	return nil
}

// SetNamedItem adds or replaces an attribute. A replacement keeps the
// original encounter position.
func (n *NamedNodeMap) SetNamedItem(a *Attr) *Attr {
	if a == nil {
		return nil
	}
	a.OwnerElement = n.AssociatedElement
	if _, ok := n.Attrs[a.Name]; !ok {
		n.Order = append(n.Order, a.Name)
		n.Length++
	}
	n.Attrs[a.Name] = a
	return a
}

func (n *NamedNodeMap) RemoveNamedItem(qn webidl.DOMString) *Attr {
	old, ok := n.Attrs[qn]
	if !ok {
		return nil
	}
	delete(n.Attrs, qn)
	for i, name := range n.Order {
		if name == qn {
			n.Order = append(n.Order[:i], n.Order[i+1:]...)
			break
		}
	}
	n.Length--
	return old
}

// InOrder returns the attributes in encounter order.
func (n *NamedNodeMap) InOrder() []*Attr {
	attrs := make([]*Attr, 0, len(n.Order))
	for _, name := range n.Order {
		attrs = append(attrs, n.Attrs[name])
	}
	return attrs
}
