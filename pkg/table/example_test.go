package table_test

import (
	"fmt"

	"github.com/go-seeds/seeds/pkg/table"
)

// This example renders a small definition as Markdown.
func ExampleRenderMarkdown() {
	def := &table.Definition{
		Columns: []table.Column{
			{Name: "Service"},
			{Name: "Port", Type: table.TypeInt, Align: "right"},
		},
		Rows: [][]any{
			{"web", 80},
			{"db", 5432},
		},
	}

	out, err := table.RenderMarkdown(def)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	// Output:
	// | Service | Port |
	// | --- | ---: |
	// | web | 80 |
	// | db | 5432 |
}
