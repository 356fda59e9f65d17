package parser

import (
	"io"
	"strings"

	"github.com/emdom/emdom/parser/spec"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type parseState uint

const (
	scanningTags parseState = iota
	insideStartTag
	rawTextOrConditional
)

// Options configures one parse call.
type Options struct {
	// EvaluateScripts is recorded on script- and link-like elements so
	// the execution collaborator can decide later whether to run them.
	// The parser itself never executes anything.
	EvaluateScripts bool
}

// TreeBuilder drives tokenizer matches into tree mutations on the
// document model. One builder serves exactly one parse call and keeps
// none of its state afterward.
type TreeBuilder struct {
	data string
	tok  *tokenizer
	doc  *spec.Node
	root *spec.Node
	opts Options

	state        parseState
	openElements spec.NodeList

	// unnestable tracks the names of currently open elements that must
	// not contain another instance of themselves.
	unnestable []string

	pos       int // where the tokenizer scans next
	lastIndex int // input is consumed up to here; text before the next match start is pending
	attrStart int // insideStartTag: the tag interior begins here

	rawTextName string // rawTextOrConditional: active raw-text tag, "" when conditional
	rawStart    int
	condStart   int // rawTextOrConditional: conditional interior start, -1 when raw text
}

// Parse converts markup into a tree of nodes under a fresh fragment
// owned by document. It never fails on malformed markup.
func Parse(document *spec.Node, data string) *spec.Node {
	return ParseWithOptions(document, data, Options{})
}

func ParseWithOptions(document *spec.Node, data string, opts Options) *spec.Node {
	root := spec.NewDocumentFragment(document)
	if data == "" {
		return root
	}
	b := &TreeBuilder{
		data:      data,
		tok:       newTokenizer(data),
		doc:       document,
		root:      root,
		opts:      opts,
		condStart: -1,
	}
	b.openElements.Push(root)
	b.run()
	return root
}

// ParseReader reads the entire stream and parses it. Unlike Parse it
// can fail, but only on the read itself; a nil reader yields an empty
// root.
func ParseReader(document *spec.Node, r io.Reader, opts Options) (*spec.Node, error) {
	if r == nil {
		return spec.NewDocumentFragment(document), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading markup input")
	}
	return ParseWithOptions(document, string(data), opts), nil
}

func (b *TreeBuilder) run() {
	for {
		m, ok := b.tok.next(b.pos)
		if !ok {
			break
		}
		b.pos = m.end
		switch b.state {
		case scanningTags:
			b.scanningTagsHandler(m)
		case insideStartTag:
			b.insideStartTagHandler(m)
		case rawTextOrConditional:
			b.rawTextHandler(m)
		}
	}
	// Trailing text after the last match. Unterminated raw-text or
	// conditional content is dropped here on purpose.
	if b.state == scanningTags && b.lastIndex < len(b.data) {
		b.currentNode().AppendChild(spec.NewTextNode(b.doc, b.data[b.lastIndex:]))
	}
}

func (b *TreeBuilder) currentNode() *spec.Node {
	return b.openElements.Top()
}

// popCurrent drops the current node, clamped at the root.
func (b *TreeBuilder) popCurrent() *spec.Node {
	if len(b.openElements) <= 1 {
		return nil
	}
	return b.openElements.Pop()
}

func (b *TreeBuilder) flushText(upto int) {
	if upto <= b.lastIndex {
		return
	}
	b.currentNode().AppendChild(spec.NewTextNode(b.doc, b.data[b.lastIndex:upto]))
}

func (b *TreeBuilder) scanningTagsHandler(m match) {
	switch m.kind {
	case tagCloseMatch, selfCloseMatch:
		// Stray terminator in text; it stays pending for the next
		// text flush.
		return
	}
	b.flushText(m.start)

	switch m.kind {
	case commentMatch:
		if isConditionalOpen(m.text) {
			b.state = rawTextOrConditional
			b.condStart = m.start + len("<!--")
			// Rescan the interior so the closer surfaces as its own
			// token whichever form the author used.
			b.pos = b.condStart
			b.lastIndex = b.condStart
			return
		}
		b.currentNode().AppendChild(spec.NewComment(m.text, b.doc))
		b.lastIndex = m.end

	case declarationMatch:
		if dt, ok := parseDoctype(m.text); ok {
			b.currentNode().AppendChild(spec.NewDocTypeNode(dt.Name, dt.PublicID, dt.SystemID))
		} else {
			b.currentNode().AppendChild(spec.NewComment(m.text, b.doc))
		}
		b.lastIndex = m.end

	case procInstMatch:
		b.currentNode().AppendChild(spec.NewProcessingInstruction(b.doc, m.name, strings.TrimSpace(m.text)))
		b.lastIndex = m.end

	case startTagOpenMatch:
		name := upperASCII(m.name)
		b.autoClose(name)
		el := spec.NewDOMElement(b.doc, name, b.resolveNamespace(name))
		if spec.IsEvaluable(name) {
			el.Element.CanEvaluate = b.opts.EvaluateScripts
		}
		b.currentNode().AppendChild(el)
		b.openElements.Push(el)
		b.state = insideStartTag
		b.attrStart = m.end
		b.lastIndex = m.end

	case endTagMatch:
		name := upperASCII(m.name)
		cur := b.currentNode()
		if cur.NodeType == spec.ElementNode && cur.NodeName == name {
			b.popCurrent()
			b.removeUnnestable(name)
		} else {
			logrus.WithField("tag", m.name).Debug("ignoring unmatched end tag")
		}
		b.lastIndex = m.end
	}
}

func (b *TreeBuilder) insideStartTagHandler(m match) {
	if m.kind != selfCloseMatch && m.kind != tagCloseMatch {
		return
	}
	el := b.currentNode()
	for _, a := range scanAttributes(b.data[b.attrStart:m.start]) {
		value := spec.DecodeEntities(a.value)
		ns := spec.NoNamespace
		if a.name == "xmlns" && el.Element.NamespaceURI == spec.Svgns {
			// The one source of a non-inherited namespace: the
			// attribute carries it, and the element reports it from
			// here on so descendants inherit the override.
			ns = spec.Namespace(value)
			el.Element.NamespaceURI = ns
		}
		el.SetAttributeNS(ns, a.name, value)
	}
	b.lastIndex = m.end

	name := el.NodeName
	if m.kind == selfCloseMatch || spec.IsVoid(name) {
		b.popCurrent()
		b.state = scanningTags
		return
	}
	if spec.IsRawText(name) {
		b.rawTextName = name
		b.rawStart = m.end
		b.condStart = -1
		b.state = rawTextOrConditional
		return
	}
	if spec.IsUnnestable(name) {
		b.unnestable = append(b.unnestable, name)
	}
	b.state = scanningTags
}

func (b *TreeBuilder) rawTextHandler(m match) {
	if b.condStart >= 0 {
		if (m.kind == commentMatch || m.kind == declarationMatch) && isConditionalClose(m.text) {
			text := strings.TrimSuffix(b.data[b.condStart:m.start], "--")
			b.currentNode().AppendChild(spec.NewComment(text, b.doc))
			b.condStart = -1
			b.state = scanningTags
			b.lastIndex = m.end
		}
		return
	}
	if m.kind != endTagMatch || !strings.EqualFold(m.name, b.rawTextName) {
		return
	}
	el := b.currentNode()
	if m.start > b.rawStart {
		// Raw content becomes a single text node, never tokenized
		// further.
		el.AppendChild(spec.NewTextNode(b.doc, b.data[b.rawStart:m.start]))
	}
	b.popCurrent()
	b.rawTextName = ""
	b.state = scanningTags
	b.lastIndex = m.end
}

// autoClose force-closes an open unnestable element matching name,
// together with everything nested inside it.
func (b *TreeBuilder) autoClose(name string) {
	if !spec.IsUnnestable(name) || !b.removeUnnestable(name) {
		return
	}
	logrus.WithField("tag", name).Debug("auto-closing open unnestable element")
	for len(b.openElements) > 1 {
		popped := b.openElements.Pop()
		if popped.NodeName == name {
			break
		}
		// Forced closes drop tracker entries too, or a stale name
		// would auto-close the wrong element later.
		b.removeUnnestable(popped.NodeName)
	}
}

// removeUnnestable drops the most recent tracker entry for name and
// reports whether one was present.
func (b *TreeBuilder) removeUnnestable(name string) bool {
	for i := len(b.unnestable) - 1; i >= 0; i-- {
		if b.unnestable[i] == name {
			b.unnestable = append(b.unnestable[:i], b.unnestable[i+1:]...)
			return true
		}
	}
	return false
}

// resolveNamespace picks the namespace for a new element: an svg root
// forces the SVG namespace, everything else inherits from the current
// node, defaulting to the HTML namespace at the fragment root.
func (b *TreeBuilder) resolveNamespace(name string) spec.Namespace {
	if name == "SVG" {
		return spec.Svgns
	}
	if cur := b.currentNode(); cur.NodeType == spec.ElementNode {
		return cur.Element.NamespaceURI
	}
	return spec.Htmlns
}

// isConditionalOpen replicates the fixed legacy heuristic for
// conditional-comment openers.
func isConditionalOpen(text string) bool {
	return strings.HasPrefix(text, "[if ") && strings.HasSuffix(text, "]")
}

func isConditionalClose(text string) bool {
	return strings.EqualFold(strings.TrimSuffix(text, "--"), "[endif]")
}
