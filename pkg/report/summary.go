package report

import "procview/pkg/types"

// NotAvailable is rendered for swap values when the host has no swap.
const NotAvailable = "N/A"

// MemorySummary carries everything the memory and swap sections render:
// two gauge percents plus formatted byte labels. Building it clamps for
// display; the snapshot it came from keeps the raw derived values.
type MemorySummary struct {
	MemPercent int
	Total      string
	Used       string
	Free       string
	Available  string
	Buffers    string
	Cached     string

	// SwapAvailable distinguishes "swap at 0%" from "host has no swap".
	// When false the swap labels read N/A and the gauge stays at zero.
	SwapAvailable bool
	SwapPercent   int
	SwapTotal     string
	SwapUsed      string
	SwapFree      string
}

// BuildMemorySummary shapes a snapshot for the gauges and labels.
func BuildMemorySummary(snap types.MemorySnapshot) MemorySummary {
	displayUsed := snap.Used
	if displayUsed < 0 {
		displayUsed = 0
	}

	s := MemorySummary{
		Total:     FormatBytes(snap.Total),
		Used:      FormatBytes(displayUsed),
		Free:      FormatBytes(snap.Free),
		Available: FormatBytes(snap.Available),
		Buffers:   FormatBytes(snap.Buffers),
		Cached:    FormatBytes(snap.Cached),
	}

	if percent, ok := PercentOf(displayUsed, snap.Total); ok {
		s.MemPercent = ClampPercent(percent)
	}

	displaySwapUsed := snap.SwapUsed
	if displaySwapUsed < 0 {
		displaySwapUsed = 0
	}
	if percent, ok := PercentOf(displaySwapUsed, snap.SwapTotal); ok {
		s.SwapAvailable = true
		s.SwapPercent = ClampPercent(percent)
		s.SwapTotal = FormatBytes(snap.SwapTotal)
		s.SwapUsed = FormatBytes(displaySwapUsed)
		s.SwapFree = FormatBytes(snap.SwapFree)
	} else {
		s.SwapTotal = NotAvailable
		s.SwapUsed = NotAvailable
		s.SwapFree = NotAvailable
	}

	return s
}
