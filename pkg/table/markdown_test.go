package table

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdownBasic(t *testing.T) {
	def := &Definition{
		Columns: []Column{
			{Name: "Name"},
			{Name: "Port", Type: TypeInt, Align: "right"},
			{Name: "Active", Type: TypeBool, Align: "center"},
		},
		Rows: [][]any{
			{"web", 80, "yes"},
			{"db", 5432, "0"},
		},
	}

	out, err := RenderMarkdown(def)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "markdown_basic", []byte(out))
}

func TestRenderMarkdownHierarchy(t *testing.T) {
	def := &Definition{
		Columns: []Column{
			{Name: "Path", Hierarchy: &Hierarchy{}},
			{Name: "Size", Type: TypeInt, Align: "right"},
		},
		Rows: [][]any{
			{"src/main.go", 120},
			{"src/util.go", 80},
			{"docs", 5},
		},
	}

	out, err := RenderMarkdown(def)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "markdown_hierarchy", []byte(out))
}

func TestRenderMarkdownEscapesCells(t *testing.T) {
	def := &Definition{
		Columns: []Column{{Name: "Expr"}},
		Rows:    [][]any{{"a|b"}},
	}

	out, err := RenderMarkdown(def)
	require.NoError(t, err)
	assert.Contains(t, out, `a\|b`)
}

func TestRenderMarkdownStripsANSI(t *testing.T) {
	def := &Definition{
		Columns: []Column{{Name: "Status"}},
		Rows:    [][]any{{"\x1b[32mok\x1b[0m"}},
	}

	out, err := RenderMarkdown(def)
	require.NoError(t, err)
	assert.Contains(t, out, "| ok |")
	assert.NotContains(t, out, "\x1b")
}

func TestRenderMarkdownInvalidDefinition(t *testing.T) {
	_, err := RenderMarkdown(&Definition{})
	assert.Error(t, err)
}
