package parser

import "strings"

// tokenizer is a cursor-based lexer over a complete markup string. It
// holds no tree state: raw-text suppression and terminator relevance
// are the tree builder's concern. At a given position the alternatives
// are tried in priority order: comment, declaration, processing
// instruction, end tag, start-tag open. Terminators (">", "/>") match
// anywhere; the builder decides whether they mean anything.
type tokenizer struct {
	data string
}

func newTokenizer(data string) *tokenizer {
	return &tokenizer{data: data}
}

// next returns the first lexical match at or after pos. ok is false
// once the rest of the input holds no recognizable form; everything
// skipped over is literal text.
func (t *tokenizer) next(pos int) (match, bool) {
	for i := pos; i < len(t.data); i++ {
		switch t.data[i] {
		case '<':
			if m, ok := t.matchAngle(i); ok {
				return m, true
			}
		case '>':
			return match{kind: tagCloseMatch, start: i, end: i + 1}, true
		case '/':
			if i+1 < len(t.data) && t.data[i+1] == '>' {
				return match{kind: selfCloseMatch, start: i, end: i + 2}, true
			}
		}
	}
	return match{}, false
}

func (t *tokenizer) matchAngle(i int) (match, bool) {
	rest := t.data[i:]
	switch {
	case strings.HasPrefix(rest, "<!--"):
		return t.matchComment(i), true
	case strings.HasPrefix(rest, "<!"):
		return t.matchDeclaration(i), true
	case strings.HasPrefix(rest, "<?"):
		return t.matchProcInst(i), true
	case strings.HasPrefix(rest, "</"):
		return t.matchEndTag(i)
	default:
		return t.matchStartTagOpen(i)
	}
}

// matchComment is lenient about the terminator: a missing "-->" falls
// back to "--!>", then to end of input.
func (t *tokenizer) matchComment(i int) match {
	body := i + len("<!--")
	if j := strings.Index(t.data[body:], "-->"); j >= 0 {
		return match{kind: commentMatch, start: i, end: body + j + 3, text: t.data[body : body+j]}
	}
	if j := strings.Index(t.data[body:], "--!>"); j >= 0 {
		return match{kind: commentMatch, start: i, end: body + j + 4, text: t.data[body : body+j]}
	}
	return match{kind: commentMatch, start: i, end: len(t.data), text: t.data[body:]}
}

func (t *tokenizer) matchDeclaration(i int) match {
	body := i + len("<!")
	if j := strings.IndexByte(t.data[body:], '>'); j >= 0 {
		return match{kind: declarationMatch, start: i, end: body + j + 1, text: t.data[body : body+j]}
	}
	return match{kind: declarationMatch, start: i, end: len(t.data), text: t.data[body:]}
}

func (t *tokenizer) matchProcInst(i int) match {
	body := i + len("<?")
	j := body
	for j < len(t.data) && !isWhitespace(t.data[j]) && t.data[j] != '?' && t.data[j] != '>' {
		j++
	}
	target := t.data[body:j]
	if k := strings.Index(t.data[j:], "?>"); k >= 0 {
		return match{kind: procInstMatch, start: i, end: j + k + 2, name: target, text: t.data[j : j+k]}
	}
	if k := strings.IndexByte(t.data[j:], '>'); k >= 0 {
		return match{kind: procInstMatch, start: i, end: j + k + 1, name: target, text: t.data[j : j+k]}
	}
	return match{kind: procInstMatch, start: i, end: len(t.data), name: target, text: t.data[j:]}
}

func (t *tokenizer) matchEndTag(i int) (match, bool) {
	j := i + len("</")
	if j >= len(t.data) || !isNameStart(t.data[j]) {
		return match{}, false
	}
	k := j + 1
	for k < len(t.data) && isNameChar(t.data[k]) {
		k++
	}
	name := t.data[j:k]
	for k < len(t.data) && isWhitespace(t.data[k]) {
		k++
	}
	if k >= len(t.data) || t.data[k] != '>' {
		return match{}, false
	}
	return match{kind: endTagMatch, start: i, end: k + 1, name: name}, true
}

// matchStartTagOpen consumes only "<" and the tag name; attributes and
// the terminator are the builder's business.
func (t *tokenizer) matchStartTagOpen(i int) (match, bool) {
	j := i + 1
	if j >= len(t.data) || !isNameStart(t.data[j]) {
		return match{}, false
	}
	k := j + 1
	for k < len(t.data) && isNameChar(t.data[k]) {
		k++
	}
	return match{kind: startTagOpenMatch, start: i, end: k, name: t.data[j:k]}, true
}

func isNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') || c == '-'
}

// https://infra.spec.whatwg.org/#ascii-whitespace
func isWhitespace(c byte) bool {
	switch c {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}
