package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "red", StripANSI("\x1b[31mred\x1b[0m"))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestNormalizeDateFormat(t *testing.T) {
	assert.Equal(t, "2006-01-02", NormalizeDateFormat("yyyy-mm-dd"))
	assert.Equal(t, "02/01/06", NormalizeDateFormat("dd/mm/yy"))
	assert.Equal(t, "2006-01-02 15:04:05", NormalizeDateFormat("yyyy-mm-dd HH:MM:SS"))
}

func TestParseBool(t *testing.T) {
	for _, s := range []any{"true", "Yes", "1", 1, true} {
		got, ok := ParseBool(s)
		assert.True(t, ok, "%v", s)
		assert.True(t, got, "%v", s)
	}
	for _, s := range []any{"false", "NO", "0", 0, false} {
		got, ok := ParseBool(s)
		assert.True(t, ok, "%v", s)
		assert.False(t, got, "%v", s)
	}
	_, ok := ParseBool("maybe")
	assert.False(t, ok)
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name string
		v    any
		col  Column
		want string
	}{
		{"str default", 42, Column{}, "42"},
		{"str explicit", "x", Column{Type: TypeStr}, "x"},
		{"bool yes", "yes", Column{Type: TypeBool}, "true"},
		{"bool zero", 0, Column{Type: TypeBool}, "false"},
		{"bool unparsed", "maybe", Column{Type: TypeBool}, "maybe"},
		{"int from string", "17", Column{Type: TypeInt}, "17"},
		{"int from float", 17.9, Column{Type: TypeInt}, "17"},
		{"int unparsed", "n/a", Column{Type: TypeInt}, "n/a"},
		{"float default", 2.5, Column{Type: TypeFloat}, "2.5"},
		{"float formatted", 2.5, Column{Type: TypeFloat, Format: "%.2f"}, "2.50"},
		{"float from string", "3.25", Column{Type: TypeFloat}, "3.25"},
		{"date default", "2025-01-02", Column{Type: TypeDate}, "2025-01-02"},
		{"date formatted", "2025-01-02", Column{Type: TypeDate, Format: "dd/mm/yyyy"}, "02/01/2025"},
		{"date unparsed", "soon", Column{Type: TypeDate}, "soon"},
		{"datetime default", "2025-01-02T15:04:05", Column{Type: TypeDatetime}, "2025-01-02 15:04:05"},
		{"datetime formatted", "2025-01-02 15:04:05", Column{Type: TypeDatetime, Format: "HH:MM"}, "15:04"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCell(tt.v, tt.col))
		})
	}
}

func TestFormatCellTimeValue(t *testing.T) {
	ts := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-30", FormatCell(ts, Column{Type: TypeDate}))
}
