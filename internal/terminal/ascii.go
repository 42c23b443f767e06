package terminal

import "strings"

// asciiBar returns a bracketed bar for plain outputs such as log files and
// pipes. width is the inner width; percent is clamped to 0-100.
//
// Example: asciiBar(50, 10) returns "[=====     ]"
func asciiBar(percent float64, width int) string {
	if width < 0 {
		width = 0
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent * float64(width) / 100)

	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(strings.Repeat("=", filled))
	sb.WriteString(strings.Repeat(" ", width-filled))
	sb.WriteString("]")

	return sb.String()
}
