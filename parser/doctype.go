package parser

import "strings"

// docType carries the pieces pulled out of a DOCTYPE declaration.
type docType struct {
	Name, PublicID, SystemID string
}

// parseDoctype extracts the root element name and identifiers from a
// declaration's interior text. ok is false when the text is not a
// DOCTYPE at all; that is a normal negative result, not an error, and
// the caller falls back to a plain comment node.
func parseDoctype(text string) (docType, bool) {
	fields := strings.Fields(text)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "doctype") {
		return docType{}, false
	}
	dt := docType{Name: lowerASCII(fields[1])}

	rest := strings.Join(fields[2:], " ")
	quoted := quotedSegments(rest)
	if strings.Contains(rest, "PUBLIC") {
		if len(quoted) > 0 {
			dt.PublicID = quoted[0]
		}
		if len(quoted) > 1 {
			dt.SystemID = quoted[1]
		}
	} else if len(quoted) > 0 {
		dt.SystemID = quoted[0]
	}
	return dt, true
}

// quotedSegments collects every double-quoted segment of s in order.
func quotedSegments(s string) []string {
	var segs []string
	for {
		i := strings.IndexByte(s, '"')
		if i < 0 {
			break
		}
		j := strings.IndexByte(s[i+1:], '"')
		if j < 0 {
			break
		}
		segs = append(segs, s[i+1:i+1+j])
		s = s[i+j+2:]
	}
	return segs
}
