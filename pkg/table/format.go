package table

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI color escape sequences from s.
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

var dateTokens = strings.NewReplacer(
	"yyyy", "2006",
	"yy", "06",
	"mm", "01",
	"dd", "02",
	"HH", "15",
	"MM", "04",
	"SS", "05",
)

// NormalizeDateFormat translates a yyyy/mm/dd/HH/MM/SS token layout into
// a Go time layout.
func NormalizeDateFormat(format string) string {
	return dateTokens.Replace(format)
}

// ParseBool interprets permissive boolean spellings: true/yes/1 and
// false/no/0, case-insensitively. Anything else is returned unparsed
// with ok=false.
func ParseBool(v any) (value bool, ok bool) {
	switch s := strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", v))); s {
	case "true", "yes", "1":
		return true, true
	case "false", "no", "0":
		return false, true
	default:
		return false, false
	}
}

// isoLayouts are the accepted input layouts for date and datetime cells.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t, true
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatCell converts a raw cell value to its display string according
// to the column's type and format. Values that do not parse fall back to
// their plain string form.
func FormatCell(v any, col Column) string {
	switch col.Type {
	case TypeBool:
		if b, ok := ParseBool(v); ok {
			return strconv.FormatBool(b)
		}
		return fmt.Sprintf("%v", v)

	case TypeInt:
		if n, ok := toInt(v); ok {
			return strconv.FormatInt(n, 10)
		}
		return fmt.Sprintf("%v", v)

	case TypeFloat:
		f, ok := toFloat(v)
		if !ok {
			return fmt.Sprintf("%v", v)
		}
		if col.Format != "" {
			return fmt.Sprintf(col.Format, f)
		}
		return strconv.FormatFloat(f, 'g', -1, 64)

	case TypeDate:
		t, ok := parseTime(v)
		if !ok {
			return fmt.Sprintf("%v", v)
		}
		if col.Format != "" {
			return t.Format(NormalizeDateFormat(col.Format))
		}
		return t.Format("2006-01-02")

	case TypeDatetime:
		t, ok := parseTime(v)
		if !ok {
			return fmt.Sprintf("%v", v)
		}
		if col.Format != "" {
			return t.Format(NormalizeDateFormat(col.Format))
		}
		return t.Format("2006-01-02 15:04:05")

	default:
		return fmt.Sprintf("%v", v)
	}
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case float32:
		return int64(n), true
	case float64:
		return int64(n), true
	case string:
		if parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return parsed, true
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int64(f), true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return parsed, true
		}
	}
	return 0, false
}
