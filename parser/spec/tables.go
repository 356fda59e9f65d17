package spec

// Classification tables consulted during tree construction. Membership
// is over canonical (upper-case) tag names.

// VoidElements never have children and are implicitly self-closed.
var VoidElements = makeSet(
	"AREA", "BASE", "BASEFONT", "BR", "COL", "EMBED", "FRAME", "HR",
	"IMG", "INPUT", "KEYGEN", "LINK", "META", "PARAM", "SOURCE",
	"TRACK", "WBR",
)

// RawTextElements have their content captured verbatim until the
// matching end tag.
var RawTextElements = makeSet(
	"SCRIPT", "STYLE", "TITLE", "TEXTAREA", "XMP", "PLAINTEXT",
)

// UnnestableElements must not contain another instance of themselves;
// a new occurrence force-closes the open one.
var UnnestableElements = makeSet("A", "P", "LI", "DT", "DD", "OPTION")

// EvaluableElements are the script- and link-like elements that carry
// the parse-time evaluateScripts flag.
var EvaluableElements = makeSet("SCRIPT", "LINK", "STYLE")

func makeSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func IsVoid(tag string) bool       { return VoidElements[tag] }
func IsRawText(tag string) bool    { return RawTextElements[tag] }
func IsUnnestable(tag string) bool { return UnnestableElements[tag] }
func IsEvaluable(tag string) bool  { return EvaluableElements[tag] }
