package utils

import (
	"time"
)

// Datetime layouts for the "full" and "medium" formats used by the templates.
const (
	FullDateTimeLayout   = "Monday January, 2, 2006 at 3:04PM"
	MediumDateTimeLayout = "Mon 01, 02, 2006 3:04PM"
)

// stringLayouts are tried when a template hands FormatDateTime a string.
var stringLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatDateTime renders value with the named format. Anything other than
// "full" is treated as "medium". Strings are parsed first; values that do not
// parse are returned unchanged.
func FormatDateTime(value interface{}, format ...string) string {
	var t time.Time
	switch v := value.(type) {
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return ""
		}
		t = *v
	case string:
		parsed, ok := parseDateTime(v)
		if !ok {
			return v
		}
		t = parsed
	default:
		return ""
	}

	layout := MediumDateTimeLayout
	if len(format) > 0 && format[0] == "full" {
		layout = FullDateTimeLayout
	}
	return t.Format(layout)
}

func parseDateTime(s string) (time.Time, bool) {
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
