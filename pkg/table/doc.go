// Package table renders typed tabular data as ASCII or Markdown.
//
// A Definition pairs column metadata (name, cell type, alignment, optional
// hierarchy) with raw row values. Cells are coerced and formatted per
// column type before rendering: bool cells accept permissive spellings
// (yes/no, 1/0), float cells take a Go format verb such as "%.2f", and
// date/datetime cells take layouts written with yyyy/mm/dd/HH/MM/SS
// tokens.
//
// Definitions are usually loaded from YAML:
//
//	title: Services
//	headers:
//	  - name: Name
//	  - name: Port
//	    type: int
//	    align: right
//	rows:
//	  - [web, 80]
//	  - [db, 5432]
//
// A column with a hierarchy separator turns its values into an indented
// tree: rows are grouped by path segments and rendered depth-first, with
// synthetic rows for intermediate path nodes.
package table
