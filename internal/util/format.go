package util

import "fmt"

// FormatClock renders whole seconds as HH:MM:SS. Negative input renders as zero.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatSelection renders an h/m/s triple the way the pickers show it.
func FormatSelection(hours, minutes, seconds int) string {
	return fmt.Sprintf("%02dh %02dm %02ds", hours, minutes, seconds)
}
