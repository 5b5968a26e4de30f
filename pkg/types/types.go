package types

// MemorySnapshot holds one sample of the system memory counters, in bytes.
// A fresh snapshot is built on every tick and the previous one is discarded.
type MemorySnapshot struct {
	Total     int64
	Free      int64
	Available int64
	Buffers   int64
	Cached    int64
	SwapTotal int64
	SwapFree  int64

	// Used is Total - Free - Buffers - Cached, exactly as derived from the
	// kernel counters. It can go negative when the counters disagree with
	// each other; display code clamps, this struct does not.
	Used     int64
	SwapUsed int64
}

// ProcessRecord describes one live process at sample time. The full set is
// rebuilt on every enumeration pass; no identity carries across ticks.
type ProcessRecord struct {
	PID   int
	Name  string
	Owner string

	// CPUPercent is a placeholder and always 0. Real per-process CPU usage
	// needs two time-separated stat readings, which this tool does not take.
	CPUPercent float64

	MemoryPercent float64
	RSSBytes      int64
	Command       string
}
