package logging

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const consoleTimeLayout = "2006-01-02 15:04:05"

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Local().Format(consoleTimeLayout)
}

// attrString renders v without quoting, for header fields.
func attrString(v slog.Value) string {
	return renderValue(v.Resolve())
}

// formatValue renders v for a field line, quoting strings that contain
// whitespace, '=' or '"', and empty strings.
func formatValue(v slog.Value) string {
	v = v.Resolve()
	s := renderValue(v)
	switch v.Kind() {
	case slog.KindString, slog.KindAny:
		if needsQuotes(s) {
			return strconv.Quote(s)
		}
	}
	return s
}

func renderValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindTime:
		return formatTimestamp(v.Time())
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindAny:
		switch x := v.Any().(type) {
		case error:
			return x.Error()
		case fmt.Stringer:
			return x.String()
		default:
			return fmt.Sprint(x)
		}
	default:
		return v.String()
	}
}

func needsQuotes(s string) bool {
	return s == "" || strings.ContainsFunc(s, func(r rune) bool {
		return r <= ' ' || r == '=' || r == '"'
	})
}
