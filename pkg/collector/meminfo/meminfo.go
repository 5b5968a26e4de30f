// Package meminfo samples the kernel memory counters from /proc/meminfo.
package meminfo

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"procview/pkg/types"

	"go.uber.org/zap"
)

// DefaultPath is the meminfo table on a standard procfs mount.
const DefaultPath = "/proc/meminfo"

// Sampler reads the memory table once per call. It never fails: an
// unreadable table yields an all-zero snapshot for that tick and the next
// tick retries from scratch.
type Sampler struct {
	Path string
	Log  *zap.Logger
}

// NewSampler returns a sampler over path, or DefaultPath if empty.
func NewSampler(path string, log *zap.Logger) *Sampler {
	if path == "" {
		path = DefaultPath
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Sampler{Path: path, Log: log}
}

// Sample parses the memory table and derives used/swap-used. Values in the
// table are kilobytes; the snapshot is bytes. Unknown keys are ignored,
// malformed lines are skipped, absent keys stay zero.
func (s *Sampler) Sample() types.MemorySnapshot {
	var snap types.MemorySnapshot

	f, err := os.Open(s.Path)
	if err != nil {
		s.Log.Warn("memory table unreadable", zap.String("path", s.Path), zap.Error(err))
		return snap
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, bytes, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		switch key {
		case "MemTotal:":
			snap.Total = bytes
		case "MemFree:":
			snap.Free = bytes
		case "MemAvailable:":
			snap.Available = bytes
		case "Buffers:":
			snap.Buffers = bytes
		case "Cached:":
			snap.Cached = bytes
		case "SwapTotal:":
			snap.SwapTotal = bytes
		case "SwapFree:":
			snap.SwapFree = bytes
		}
	}
	if err := scanner.Err(); err != nil {
		s.Log.Warn("memory table scan aborted", zap.String("path", s.Path), zap.Error(err))
	}

	snap.Used = snap.Total - snap.Free - snap.Buffers - snap.Cached
	snap.SwapUsed = snap.SwapTotal - snap.SwapFree
	return snap
}

// parseLine extracts "<key> <kB value> [unit]" and returns the value in
// bytes. ok is false for any line that does not fit that shape.
func parseLine(line string) (key string, bytes int64, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", 0, false
	}
	kb, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || kb < 0 {
		return "", 0, false
	}
	return fields[0], kb * 1024, true
}
