package spec

import "github.com/emdom/emdom/parser/webidl"

// https://dom.spec.whatwg.org/#processinginstruction
type ProcessingInstruction struct {
	Target webidl.DOMString
	*CharacterData
}
