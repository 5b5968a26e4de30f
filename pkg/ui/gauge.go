package ui

import (
	"fmt"
	"strings"
)

// DefaultGaugeWidth is the bar width used by the memory and swap gauges.
const DefaultGaugeWidth = 40

// Gauge renders a horizontal percent bar like "[████------]  42%".
// percent is clamped to [0, 100] defensively; width below 1 falls back to
// the default.
func Gauge(percent, width int) string {
	if width < 1 {
		width = DefaultGaugeWidth
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := width * percent / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("─", width-filled)
	return fmt.Sprintf("[%s%s%s] %3d%%", gaugeColor(percent), bar, reset, percent)
}

// GaugeUnavailable renders the bar used when the underlying total is zero
// and a percent would be fabricated.
func GaugeUnavailable(width int) string {
	if width < 1 {
		width = DefaultGaugeWidth
	}
	return fmt.Sprintf("[%s%s%s] N/A", deepIndigo, strings.Repeat("─", width), reset)
}

func gaugeColor(percent int) string {
	switch {
	case percent >= 90:
		return flame
	case percent >= 70:
		return beeYellow
	default:
		return mint
	}
}
