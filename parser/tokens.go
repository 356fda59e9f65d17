package parser

//go:generate stringer -type=matchKind
type matchKind uint

const (
	commentMatch matchKind = iota
	declarationMatch
	procInstMatch
	startTagOpenMatch
	endTagMatch
	selfCloseMatch
	tagCloseMatch
)

// match is one positioned lexical occurrence. start and end span the
// matched characters in the input; name and text hold the captures
// that apply to the kind (tag name or instruction target, and
// comment/declaration/instruction interiors).
type match struct {
	kind       matchKind
	start, end int
	name       string
	text       string
}

// attribute is one name/value pair pulled out of a start tag's
// interior. Names are lower-cased; a bare name carries an empty value.
type attribute struct {
	name, value string
}

// scanAttributes extracts attributes from the substring between a
// start tag's name and its terminator. The four recognized forms are
// name="value", name='value', name=value and bare name. Anything that
// cannot be shaped into a pair is skipped rather than failing the tag.
func scanAttributes(s string) []attribute {
	var attrs []attribute
	i := 0
	for i < len(s) {
		c := s[i]
		if isWhitespace(c) || c == '/' || c == '=' || c == '>' {
			i++
			continue
		}

		start := i
		for i < len(s) && !isWhitespace(s[i]) && s[i] != '=' {
			i++
		}
		name := lowerASCII(s[start:i])

		for i < len(s) && isWhitespace(s[i]) {
			i++
		}
		if i >= len(s) || s[i] != '=' {
			attrs = append(attrs, attribute{name: name})
			continue
		}
		i++
		for i < len(s) && isWhitespace(s[i]) {
			i++
		}
		if i >= len(s) {
			attrs = append(attrs, attribute{name: name})
			break
		}

		var value string
		switch s[i] {
		case '"', '\'':
			quote := s[i]
			i++
			start = i
			for i < len(s) && s[i] != quote {
				i++
			}
			value = s[start:i]
			if i < len(s) {
				i++ // closing quote
			}
		default:
			start = i
			for i < len(s) && !isWhitespace(s[i]) {
				i++
			}
			value = s[start:i]
		}
		attrs = append(attrs, attribute{name: name, value: value})
	}
	return attrs
}

func lowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 0x20
		}
	}
	return string(b)
}

func upperASCII(s string) string {
	hasLower := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			hasLower = true
			break
		}
	}
	if !hasLower {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 0x20
		}
	}
	return string(b)
}
