package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStyle(t *testing.T) {
	decls := parseStyle("Width: 0%; opacity:1;; bogus ; background: url(a:b)")

	assert.Equal(t, []declaration{
		{property: "width", value: "0%"},
		{property: "opacity", value: "1"},
		{property: "background", value: "url(a:b)"},
	}, decls)
}

func TestParseStyle_SemicolonInsideValue(t *testing.T) {
	decls := parseStyle(`background: url("data:image/svg+xml;utf8,<svg/>"); font-family: 'a;b', serif; mask: url(x;y); width: 5%`)

	assert.Equal(t, []declaration{
		{property: "background", value: `url("data:image/svg+xml;utf8,<svg/>")`},
		{property: "font-family", value: `'a;b', serif`},
		{property: "mask", value: "url(x;y)"},
		{property: "width", value: "5%"},
	}, decls)
}

func TestSetDeclaration(t *testing.T) {
	t.Run("updates in place", func(t *testing.T) {
		decls := setDeclaration(parseStyle("width: 0%; opacity: 1"), "width", "5%")
		assert.Equal(t, "width: 5%; opacity: 1;", formatStyle(decls))
	})

	t.Run("appends new property", func(t *testing.T) {
		decls := setDeclaration(parseStyle("width: 0%"), "height", "5px")
		assert.Equal(t, "width: 0%; height: 5px;", formatStyle(decls))
	})

	t.Run("empty value removes", func(t *testing.T) {
		decls := setDeclaration(parseStyle("width: 0%; opacity: 1"), "width", "")
		assert.Equal(t, "opacity: 1;", formatStyle(decls))
	})
}

func TestLookupDeclaration(t *testing.T) {
	decls := parseStyle("width: 0%; opacity: 1")
	assert.Equal(t, "1", lookupDeclaration(decls, "OPACITY"))
	assert.Empty(t, lookupDeclaration(decls, "height"))
}
