package report

import (
	"sort"
	"strings"

	"procview/pkg/types"
)

// Sort keys accepted by SortRecords.
const (
	SortByMem  = "mem"
	SortByPID  = "pid"
	SortByUser = "user"
)

// FilterConfig controls which processes appear in the table.
type FilterConfig struct {
	HideKernel *bool // nil defaults to false so the full table matches the raw enumeration
}

func (cfg FilterConfig) hideKernelEnabled() bool {
	if cfg.HideKernel == nil {
		return false
	}
	return *cfg.HideKernel
}

// FilterRecords drops rows hidden by cfg. The input order is preserved.
func FilterRecords(rows []types.ProcessRecord, cfg FilterConfig) []types.ProcessRecord {
	if !cfg.hideKernelEnabled() {
		return rows
	}
	filtered := make([]types.ProcessRecord, 0, len(rows))
	for _, row := range rows {
		if !isKernelThread(row) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// SortRecords orders rows in place for display. The collector's contract
// is enumeration order; sorting is purely a presentation choice. Unknown
// keys fall back to memory order. Ties break on pid so output is stable
// across ticks.
func SortRecords(rows []types.ProcessRecord, key string) {
	switch key {
	case SortByPID:
		sort.Slice(rows, func(i, j int) bool { return rows[i].PID < rows[j].PID })
	case SortByUser:
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Owner == rows[j].Owner {
				return rows[i].PID < rows[j].PID
			}
			return rows[i].Owner < rows[j].Owner
		})
	default:
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].MemoryPercent == rows[j].MemoryPercent {
				return rows[i].PID < rows[j].PID
			}
			return rows[i].MemoryPercent > rows[j].MemoryPercent
		})
	}
}

// TopRecords limits rows to the first topK entries; topK <= 0 keeps all.
func TopRecords(rows []types.ProcessRecord, topK int) []types.ProcessRecord {
	if topK > 0 && len(rows) > topK {
		return rows[:topK]
	}
	return rows
}

func isKernelThread(row types.ProcessRecord) bool {
	if row.PID == 0 {
		return true
	}
	name := strings.ToLower(row.Name)
	switch {
	case strings.HasPrefix(name, "kworker"), strings.HasPrefix(name, "ksoftirqd"), strings.HasPrefix(name, "kthreadd"),
		strings.HasPrefix(name, "migration"), strings.HasPrefix(name, "watchdog"), strings.HasPrefix(name, "rcu"),
		strings.HasPrefix(name, "irq/"):
		return true
	}
	return false
}
