package utils

import (
	"strings"
	"time"
)

const notAvailable = "N/A"

// Layouts tried in order when a date arrives as text.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// FormatDateYMD renders a date as YYYY/MM/DD, or "N/A" when empty.
func FormatDateYMD(value interface{}) string {
	return formatAs(value, "2006/01/02")
}

// FormatDateDMY renders a date as DD/MM/YYYY, or "N/A" when empty.
func FormatDateDMY(value interface{}) string {
	return formatAs(value, "02/01/2006")
}

// FormatDateYMDHIS renders a date as YYYY/MM/DD HH:MM:SS, or "N/A" when empty.
func FormatDateYMDHIS(value interface{}) string {
	return formatAs(value, "2006/01/02 15:04:05")
}

// FormatDateDMYHIS renders a date as DD/MM/YYYY HH:MM:SS, or "N/A" when empty.
func FormatDateDMYHIS(value interface{}) string {
	return formatAs(value, "02/01/2006 15:04:05")
}

func formatAs(value interface{}, layout string) string {
	t, ok := coerceTime(value)
	if !ok {
		return notAvailable
	}
	return t.Format(layout)
}

// coerceTime accepts the shapes a date reaches a template in: a time value
// (or pointer), a text representation, or unix seconds.
func coerceTime(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return v, true
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case int:
		return unixTime(int64(v))
	case int64:
		return unixTime(v)
	case float64:
		return unixTime(int64(v))
	default:
		return time.Time{}, false
	}
}

func unixTime(sec int64) (time.Time, bool) {
	if sec == 0 {
		return time.Time{}, false
	}
	return time.Unix(sec, 0).UTC(), true
}
