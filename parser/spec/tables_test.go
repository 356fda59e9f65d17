package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementClassification(t *testing.T) {
	t.Parallel()

	assert.True(t, IsVoid("BR"))
	assert.True(t, IsVoid("IMG"))
	assert.False(t, IsVoid("DIV"))
	// Membership is over canonical names only.
	assert.False(t, IsVoid("br"))

	assert.True(t, IsRawText("SCRIPT"))
	assert.True(t, IsRawText("TEXTAREA"))
	assert.False(t, IsRawText("PRE"))

	assert.True(t, IsUnnestable("A"))
	assert.True(t, IsUnnestable("LI"))
	assert.False(t, IsUnnestable("SPAN"))

	assert.True(t, IsEvaluable("SCRIPT"))
	assert.True(t, IsEvaluable("LINK"))
	assert.False(t, IsEvaluable("IMG"))
}

type decodeTestcase struct {
	in, out string
}

var decodeTests = []decodeTestcase{
	{"", ""},
	{"plain", "plain"},
	{"&amp;", "&"},
	{"&lt;a&gt;", "<a>"},
	{"&quot;x&quot;", `"x"`},
	{"&#65;", "A"},
	{"&#x41;", "A"},
	{"&nbsp;", " "},
	{"a &amp; b", "a & b"},
	// Unknown references pass through untouched.
	{"&bogus;", "&bogus;"},
}

func TestDecodeEntities(t *testing.T) {
	for _, tt := range decodeTests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.out, DecodeEntities(tt.in))
		})
	}
}
