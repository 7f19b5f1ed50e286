package timezone

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Layout is the host-style long form without the trailing zone label.
const Layout = "Mon Jan 02 2006 15:04:05 GMT-0700"

var labelRegex = regexp.MustCompile(`(?s)^.*\(([A-Za-z\s][^()]*)\)`)

// Render formats t in the long host form, including a parenthesised zone label.
func Render(t time.Time) string {
	return t.Format(Layout) + " (" + zoneLabel(t) + ")"
}

// Label returns the content of the last parenthesised group in s whose first
// character is a letter or whitespace. It returns "" when there is none.
func Label(s string) string {
	m := labelRegex.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// Extract returns the timezone label of t, or "" if none can be derived.
func Extract(t time.Time) string {
	return Label(Render(t))
}

func zoneLabel(t time.Time) string {
	abbr, offset := t.Zone()
	if name, ok := regionalZoneNames[t.Location().String()+" "+abbr]; ok {
		return name
	}
	if name, ok := zoneNames[abbr]; ok {
		return name
	}
	if abbr == "" || strings.ContainsAny(abbr[:1], "+-0123456789") {
		return gmtOffset(offset)
	}
	return abbr
}

// gmtOffset renders an offset in seconds as GMT+hh:mm.
func gmtOffset(offset int) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("GMT%c%02d:%02d", sign, offset/3600, (offset%3600)/60)
}
