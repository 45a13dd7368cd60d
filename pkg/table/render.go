package table

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/go-seeds/seeds/pkg/errors"
)

// RenderASCII renders the definition as a boxed text table, with the
// title (when set) centered above it. Column alignment applies to the
// header and every row.
func RenderASCII(def *Definition) (string, error) {
	const op = "table.RenderASCII"
	rows, err := def.formattedRows()
	if err != nil {
		return "", err
	}
	names := def.headerNames()
	widths := fitColumns(names, rows, def.maxWidth())
	rows = clampRows(rows, widths)

	aligns := make([]tw.Align, len(def.Columns))
	for i, col := range def.Columns {
		aligns[i] = cellAlign(col.Align)
	}

	var buf bytes.Buffer
	w := tablewriter.NewTable(&buf, tablewriter.WithConfig(tablewriter.Config{
		Header: tw.CellConfig{
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
			Alignment:  tw.CellAlignment{PerColumn: aligns},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{PerColumn: aligns},
		},
	}))

	header := make([]any, len(names))
	for i, name := range names {
		header[i] = name
	}
	w.Header(header...)

	for _, row := range rows {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		w.Append(cells...)
	}

	if err := w.Render(); err != nil {
		return "", errors.New(op, errors.KindRender, err)
	}

	out := strings.TrimRight(buf.String(), "\n")
	if def.Title == "" {
		return out, nil
	}
	width := tableWidth(out)
	return centerText(def.Title, width) + "\n" + out, nil
}

// RenderMarkdown renders the definition as a Markdown table. Column
// alignment maps to separator colons; cells are stripped of ANSI escapes
// and pipe-escaped.
func RenderMarkdown(def *Definition) (string, error) {
	rows, err := def.formattedRows()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	writeMarkdownRow(&sb, def.headerNames())

	seps := make([]string, len(def.Columns))
	for i, col := range def.Columns {
		seps[i] = markdownSeparator(col.Align)
	}
	writeMarkdownRow(&sb, seps)

	for _, row := range rows {
		writeMarkdownRow(&sb, row)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func cellAlign(align string) tw.Align {
	switch align {
	case "right":
		return tw.AlignRight
	case "center":
		return tw.AlignCenter
	default:
		return tw.AlignLeft
	}
}

func markdownSeparator(align string) string {
	switch align {
	case "right":
		return "---:"
	case "center":
		return ":---:"
	default:
		return "---"
	}
}

func writeMarkdownRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(markdownCell(cell))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

func markdownCell(s string) string {
	return strings.ReplaceAll(StripANSI(s), "|", `\|`)
}

const minColumnWidth = 6

// fitColumns allocates a display width per column: each column's natural
// width (widest cell, padded), scaled down proportionally when the total
// would exceed maxWidth, never below minColumnWidth.
func fitColumns(names []string, rows [][]string, maxWidth int) []int {
	usable := maxWidth - (len(names) + 1)
	widths := make([]int, len(names))
	total := 0
	for i, name := range names {
		w := utf8.RuneCountInString(StripANSI(name))
		for _, row := range rows {
			if cw := utf8.RuneCountInString(StripANSI(row[i])); cw > w {
				w = cw
			}
		}
		w++
		if w < minColumnWidth {
			w = minColumnWidth
		}
		widths[i] = w
		total += w
	}
	if total > usable && usable > 0 {
		for i, w := range widths {
			scaled := w * usable / total
			if scaled < minColumnWidth {
				scaled = minColumnWidth
			}
			widths[i] = scaled
		}
	}
	return widths
}

// clampRows truncates cells that exceed their column's allocated width.
func clampRows(rows [][]string, widths []int) [][]string {
	for _, row := range rows {
		for i, cell := range row {
			row[i] = truncateCell(cell, widths[i])
		}
	}
	return rows
}

func truncateCell(s string, width int) string {
	plain := StripANSI(s)
	if utf8.RuneCountInString(plain) <= width {
		return s
	}
	runes := []rune(plain)
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

// tableWidth is the display width of the table's first line.
func tableWidth(rendered string) int {
	line := rendered
	if i := strings.IndexByte(rendered, '\n'); i >= 0 {
		line = rendered[:i]
	}
	return utf8.RuneCountInString(StripANSI(line))
}

// centerText pads s to sit in the middle of width columns.
func centerText(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s
}
