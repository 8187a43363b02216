package components

import "strings"

const spacesCached = 256

var spaces = strings.Repeat(" ", spacesCached)

// Pad returns n spaces. Widths up to 256 share one backing string.
func Pad(n int) string {
	switch {
	case n <= 0:
		return ""
	case n <= spacesCached:
		return spaces[:n]
	default:
		return strings.Repeat(" ", n)
	}
}
