package spec

import "html"

// DecodeEntities maps an encoded attribute or text value to its
// literal character content. The stdlib table covers the full set of
// named character references.
func DecodeEntities(s string) string {
	if !containsAmp(s) {
		return s
	}
	return html.UnescapeString(s)
}

func containsAmp(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '&' {
			return true
		}
	}
	return false
}
