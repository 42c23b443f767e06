package progress

import "strconv"

// Step returns the width increment for a bar whose remaining distance to
// the target is remaining. Steps shrink as the bar fills. ok is false once
// the bar has overshot the target and ticking should stop.
func Step(remaining float64) (step float64, ok bool) {
	switch {
	case remaining >= 0.65:
		return 0.06, true
	case remaining >= 0.3:
		return 0.02, true
	case remaining >= 0:
		return 0.01, true
	default:
		return 0, false
	}
}

// barWidth scales a fraction to a width just under 100% so only Complete
// visually finishes the bar.
func barWidth(fraction float64) string {
	return percent(fraction * 99)
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func formatPx(v int) string {
	return strconv.Itoa(v) + "px"
}
