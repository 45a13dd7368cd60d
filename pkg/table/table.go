package table

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-seeds/seeds/pkg/errors"
)

// Cell types understood by FormatCell.
const (
	TypeStr      = "str"
	TypeBool     = "bool"
	TypeInt      = "int"
	TypeFloat    = "float"
	TypeDate     = "date"
	TypeDatetime = "datetime"
)

// DefaultMaxWidth bounds the rendered table width when a definition does
// not set one.
const DefaultMaxWidth = 120

// Hierarchy marks a column whose values are slash-style paths to be
// rendered as an indented tree.
type Hierarchy struct {
	Sep string `yaml:"sep"`
}

// Column describes one table column.
type Column struct {
	Name      string     `yaml:"name"`
	Type      string     `yaml:"type"`
	Format    string     `yaml:"format"`
	Align     string     `yaml:"align"`
	Hierarchy *Hierarchy `yaml:"hierarchy"`
}

// Definition is a renderable table: column metadata plus raw rows.
type Definition struct {
	Title    string   `yaml:"title"`
	MaxWidth int      `yaml:"max_width"`
	Columns  []Column `yaml:"headers"`
	Rows     [][]any  `yaml:"rows"`
}

// Load reads a YAML table definition.
func Load(r io.Reader) (*Definition, error) {
	const op = "table.Load"
	var def Definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, errors.New(op, errors.KindParse, err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadFile reads a YAML table definition from path.
func LoadFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("table.LoadFile", errors.KindParse, err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks column metadata and row shape.
func (d *Definition) Validate() error {
	const op = "table.Validate"
	if len(d.Columns) == 0 {
		return errors.Newf(op, errors.KindParse, "definition has no columns")
	}
	for i, col := range d.Columns {
		if col.Name == "" {
			return errors.Newf(op, errors.KindParse, "column %d has no name", i)
		}
		switch col.Type {
		case "", TypeStr, TypeBool, TypeInt, TypeFloat, TypeDate, TypeDatetime:
		default:
			return errors.Newf(op, errors.KindParse, "column %q: unknown type %q", col.Name, col.Type)
		}
		switch col.Align {
		case "", "left", "right", "center":
		default:
			return errors.Newf(op, errors.KindParse, "column %q: unknown align %q", col.Name, col.Align)
		}
	}
	for i, row := range d.Rows {
		if len(row) != len(d.Columns) {
			return errors.Newf(op, errors.KindParse,
				"row %d has %d cells, want %d", i, len(row), len(d.Columns))
		}
	}
	return nil
}

// headerNames returns the column names.
func (d *Definition) headerNames() []string {
	names := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		names[i] = col.Name
	}
	return names
}

// formattedRows validates the definition and returns its rows as
// formatted strings, hierarchy applied.
func (d *Definition) formattedRows() ([][]string, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	rows := make([][]string, len(d.Rows))
	for i, row := range d.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = FormatCell(v, d.Columns[j])
		}
		rows[i] = cells
	}
	return applyHierarchy(d.Columns, rows), nil
}

// maxWidth returns the effective width bound.
func (d *Definition) maxWidth() int {
	if d.MaxWidth > 0 {
		return d.MaxWidth
	}
	return DefaultMaxWidth
}
