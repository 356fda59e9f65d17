package spec

// Namespace identifies the namespace an element or attribute lives in.
// Values are the registered namespace URIs, so an xmlns attribute can
// carry an arbitrary namespace through unchanged.
type Namespace string

const (
	NoNamespace Namespace = ""
	Htmlns      Namespace = "http://www.w3.org/1999/xhtml"
	Mathmlns    Namespace = "http://www.w3.org/1998/Math/MathML"
	Svgns       Namespace = "http://www.w3.org/2000/svg"
	Xlinkns     Namespace = "http://www.w3.org/1999/xlink"
	Xmlns       Namespace = "http://www.w3.org/XML/1998/namespace"
	Xmlnsns     Namespace = "http://www.w3.org/2000/xmlns/"
)

// Namespaces maps registry names to their URIs.
var Namespaces = map[string]Namespace{
	"html":   Htmlns,
	"mathml": Mathmlns,
	"svg":    Svgns,
	"xlink":  Xlinkns,
	"xml":    Xmlns,
	"xmlns":  Xmlnsns,
}

// https://dom.spec.whatwg.org/#htmlcollection
type HTMLCollection []*Element

// Element is the element payload of a Node.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	NamespaceURI      Namespace
	Prefix, LocalName string
	Attributes        *NamedNodeMap

	// CanEvaluate carries the parse-time evaluateScripts flag on
	// script- and link-like elements. The execution collaborator reads
	// it after parsing; nothing in this package acts on it.
	CanEvaluate bool
}
