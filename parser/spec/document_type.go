package spec

import "github.com/emdom/emdom/parser/webidl"

// DocumentType is https://dom.spec.whatwg.org/#documenttype
type DocumentType struct {
	Name     webidl.DOMString
	PublicID webidl.DOMString
	SystemID webidl.DOMString
}
