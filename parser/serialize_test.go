package parser

import (
	"os"
	"testing"

	"github.com/emdom/emdom/parser/spec"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

type serializeTestcase struct {
	name string
	in   string
	out  string
}

var serializeTests = []serializeTestcase{
	{
		"round trip",
		`<div class="a">hello</div>`,
		`<div class="a">hello</div>`,
	},
	{
		"tag names come back lower-cased",
		"<DIV><Span></Span></DIV>",
		"<div><span></span></div>",
	},
	{
		"void element without end tag",
		"<p><br>x</p>",
		"<p><br>x</p>",
	},
	{
		"self-closed non-void gets an explicit end tag",
		"<foo/>",
		"<foo></foo>",
	},
	{
		"raw text is emitted verbatim",
		"<script>if (a < b) {}</script>",
		"<script>if (a < b) {}</script>",
	},
	{
		"text is escaped",
		"<b>1 < 2 & 3 > 4</b>",
		"<b>1 &lt; 2 &amp; 3 &gt; 4</b>",
	},
	{
		"non-breaking space becomes an entity",
		"<i>a b</i>",
		"<i>a&nbsp;b</i>",
	},
	{
		"attribute values are quoted and escaped",
		`<a href='x"y'>z</a>`,
		`<a href="x&quot;y">z</a>`,
	},
	{
		"comment",
		"x<!--c-->",
		"x<!--c-->",
	},
	{
		"processing instruction",
		`<?xml version="1.0"?>`,
		`<?xml version="1.0"?>`,
	},
	{
		"doctype with public identifier",
		`<!DOCTYPE html PUBLIC "-//X" "sys">`,
		`<!DOCTYPE html PUBLIC "-//X" "sys">`,
	},
	{
		"doctype with system identifier",
		`<!doctype html SYSTEM "about:legacy-compat">`,
		`<!DOCTYPE html SYSTEM "about:legacy-compat">`,
	},
}

func TestSerializeFragment(t *testing.T) {
	for _, tt := range serializeTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := spec.NewDocumentNode()
			root := Parse(doc, tt.in)
			assert.Equal(t, tt.out, SerializeFragment(root))
		})
	}
}

func TestSerializeSnapshot(t *testing.T) {
	in := dedent.Dedent(`
		<!DOCTYPE html>
		<html lang="en">
		<head><title>Fixture &amp; Friends</title></head>
		<body>
		<!-- header -->
		<p class=intro>Hello <b>world</b>
		<ul><li>one<li>two</ul>
		<svg viewBox="0 0 1 1"><rect width="1"/></svg>
		<script>document.write("<p>not parsed</p>");</script>
		</body>
		</html>`)
	doc := spec.NewDocumentNode()
	root := Parse(doc, in)
	snaps.MatchSnapshot(t, root.String())
	snaps.MatchSnapshot(t, SerializeFragment(root))
}
