package spec

import "github.com/emdom/emdom/parser/webidl"

// Text is https://dom.spec.whatwg.org/#text
type Text struct {
	WholeText webidl.DOMString
	*CharacterData
}

func NewText(data string) *Text {
	return &Text{
		WholeText: webidl.DOMString(data),
		CharacterData: &CharacterData{
			Data:   webidl.DOMString(data),
			Length: len(data),
		},
	}
}
