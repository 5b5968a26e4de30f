// Package report turns raw snapshots into display-ready values and rows.
package report

import "fmt"

var byteUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count with binary (1024) scaling and two
// decimals: 0 -> "0.00 B", 1536 -> "1.50 KB", 1073741824 -> "1.00 GB".
func FormatBytes(n int64) string {
	size := float64(n)
	unit := 0
	for size >= 1024 && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", size, byteUnits[unit])
}

// PercentOf returns floor(part*100/whole) when whole is positive. ok is
// false when whole is not positive; the caller decides between a zero
// gauge and an explicit N/A instead of showing a fabricated percent.
func PercentOf(part, whole int64) (percent int, ok bool) {
	if whole <= 0 {
		return 0, false
	}
	return int(part * 100 / whole), true
}

// ClampPercent bounds a display percent to [0, 100]. Raw snapshot values
// stay unclamped; only rendered gauges go through here.
func ClampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
