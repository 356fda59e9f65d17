package spec

// Document is the document payload of a Node.
// https://dom.spec.whatwg.org/#interface-document
type Document struct {
	Type string
}

// DocumentFragment is https://dom.spec.whatwg.org/#documentfragment
type DocumentFragment struct{}
