package frames

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/blast-analytics-marketing/blast-developer-tools/dates"
)

// DType is the logical type of a column. Cells stay strings; the type only
// controls how Coerce normalizes their values.
type DType string

const (
	String    DType = "string"
	Int       DType = "int64"
	Float     DType = "float64"
	Bool      DType = "bool"
	Date      DType = "date"
	Timestamp DType = "timestamp"
)

// Schema maps column names to their logical types.
type Schema map[string]DType

// Columns returns the sorted column names of the given type.
func (s Schema) Columns(dt DType) []string {
	var names []string
	for name, t := range s {
		if t == dt {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Union merges schemas left to right; later schemas win on conflicts.
func Union(schemas ...Schema) Schema {
	out := make(Schema)
	for _, s := range schemas {
		for name, dt := range s {
			out[name] = dt
		}
	}
	return out
}

// timeLayouts are tried in order when coercing date and timestamp cells.
var timeLayouts = []string{
	dates.TimestampLayout,
	dates.DateLayout,
	time.RFC3339,
}

func parseTime(v string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// coerceValue renders one cell in its type's canonical form, or empty when
// the value does not parse.
func coerceValue(v string, dt DType) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}

	switch dt {
	case Int:
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return strconv.FormatInt(i, 10)
		}
		// numeric but fractional: truncate toward zero
		if fv, err := strconv.ParseFloat(v, 64); err == nil {
			return strconv.FormatInt(int64(fv), 10)
		}
		return ""

	case Float:
		if fv, err := strconv.ParseFloat(v, 64); err == nil {
			return strconv.FormatFloat(fv, 'f', -1, 64)
		}
		return ""

	case Bool:
		switch strings.ToLower(v) {
		case "true", "t", "yes", "y", "1":
			return "true"
		case "false", "f", "no", "n", "0":
			return "false"
		}
		return ""

	case Date:
		if t, ok := parseTime(v); ok {
			return t.Format(dates.DateLayout)
		}
		return ""

	case Timestamp:
		if t, ok := parseTime(v); ok {
			return t.Format(dates.TimestampLayout)
		}
		return ""
	}

	return v
}
