// Package datekey turns partial dates into keys that compare chronologically
// as plain strings.
package datekey

import "strings"

const (
	separator = "-"
	absent    = "00"
)

// Normalize converts YYYY, YYYY-MM or YYYY-MM-DD into YYYY-MM-DD. Missing
// components become "00", short components are left padded with zeros and
// tokens beyond the third are ignored. Values are not range checked.
func Normalize(s string) string {
	parts := strings.SplitN(strings.TrimSpace(s), separator, 4)

	year := pad(parts[0], 4)
	month, day := absent, absent
	if len(parts) > 1 {
		month = pad(parts[1], 2)
	}
	if len(parts) > 2 {
		day = pad(parts[2], 2)
	}
	return year + separator + month + separator + day
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
