package spec

import "github.com/emdom/emdom/parser/webidl"

// CharacterData is https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	Data   webidl.DOMString
	Length int
}
