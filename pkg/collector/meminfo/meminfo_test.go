package meminfo

import (
	"os"
	"path/filepath"
	"testing"

	"procview/pkg/types"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meminfo")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestSampleParsesRecognizedKeys(t *testing.T) {
	path := writeTable(t, `MemTotal:       16384000 kB
MemFree:         4096000 kB
MemAvailable:    8192000 kB
Buffers:          512000 kB
Cached:          2048000 kB
SwapTotal:       2097152 kB
SwapFree:        1048576 kB
Dirty:               120 kB
`)
	snap := NewSampler(path, nil).Sample()

	if snap.Total != 16384000*1024 {
		t.Fatalf("unexpected Total: %d", snap.Total)
	}
	if snap.Free != 4096000*1024 {
		t.Fatalf("unexpected Free: %d", snap.Free)
	}
	if snap.Available != 8192000*1024 {
		t.Fatalf("unexpected Available: %d", snap.Available)
	}
	if snap.Buffers != 512000*1024 || snap.Cached != 2048000*1024 {
		t.Fatalf("unexpected Buffers/Cached: %d/%d", snap.Buffers, snap.Cached)
	}
	wantUsed := snap.Total - snap.Free - snap.Buffers - snap.Cached
	if snap.Used != wantUsed {
		t.Fatalf("Used = %d, want %d", snap.Used, wantUsed)
	}
	if snap.SwapUsed != (2097152-1048576)*1024 {
		t.Fatalf("unexpected SwapUsed: %d", snap.SwapUsed)
	}
}

func TestSampleUnreadableTableYieldsZeros(t *testing.T) {
	snap := NewSampler(filepath.Join(t.TempDir(), "missing"), nil).Sample()
	if snap != (types.MemorySnapshot{}) {
		t.Fatalf("expected zeroed snapshot, got %+v", snap)
	}
}

func TestSampleSkipsMalformedAndUnknownLines(t *testing.T) {
	path := writeTable(t, `MemTotal:        1000 kB
garbage line without numbers
MemFree: notanumber kB
HugePages_Total:       0
SwapTotal:        200 kB
SwapFree:
`)
	snap := NewSampler(path, nil).Sample()
	if snap.Total != 1000*1024 {
		t.Fatalf("unexpected Total: %d", snap.Total)
	}
	// malformed MemFree line must be skipped, leaving the field at zero
	if snap.Free != 0 {
		t.Fatalf("malformed MemFree should stay 0, got %d", snap.Free)
	}
	if snap.SwapTotal != 200*1024 || snap.SwapFree != 0 {
		t.Fatalf("unexpected swap fields: %d/%d", snap.SwapTotal, snap.SwapFree)
	}
}

func TestSampleAbsentKeysDefaultToZero(t *testing.T) {
	path := writeTable(t, "MemTotal: 2048 kB\n")
	snap := NewSampler(path, nil).Sample()
	if snap.Free != 0 || snap.Available != 0 || snap.Buffers != 0 || snap.Cached != 0 {
		t.Fatalf("absent keys should stay zero: %+v", snap)
	}
	if snap.Used != 2048*1024 {
		t.Fatalf("unexpected Used: %d", snap.Used)
	}
}

func TestSampleUsedCanGoNegative(t *testing.T) {
	path := writeTable(t, `MemTotal:        1000 kB
MemFree:          600 kB
Buffers:          300 kB
Cached:           300 kB
`)
	snap := NewSampler(path, nil).Sample()
	if snap.Used != -200*1024 {
		t.Fatalf("expected raw negative Used, got %d", snap.Used)
	}
}

func TestSampleEndToEndScenario(t *testing.T) {
	path := writeTable(t, `MemTotal: 1024000 kB
MemFree: 512000 kB
Buffers: 0 kB
Cached: 0 kB
`)
	snap := NewSampler(path, nil).Sample()
	if snap.Total != 1048576000 {
		t.Fatalf("Total = %d, want 1048576000", snap.Total)
	}
	if snap.Free != 524288000 {
		t.Fatalf("Free = %d, want 524288000", snap.Free)
	}
	if snap.Used != 524288000 {
		t.Fatalf("Used = %d, want 524288000", snap.Used)
	}
}

func TestParseLine(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		key   string
		bytes int64
		ok    bool
	}{
		{"withUnit", "MemTotal:  123 kB", "MemTotal:", 123 * 1024, true},
		{"noUnit", "HugePages_Total:   7", "HugePages_Total:", 7 * 1024, true},
		{"empty", "", "", 0, false},
		{"keyOnly", "MemTotal:", "", 0, false},
		{"nonNumeric", "MemTotal: abc kB", "", 0, false},
		{"negative", "MemTotal: -5 kB", "", 0, false},
	}
	for _, tc := range cases {
		key, bytes, ok := parseLine(tc.line)
		if key != tc.key || bytes != tc.bytes || ok != tc.ok {
			t.Fatalf("%s: got (%q, %d, %t), want (%q, %d, %t)",
				tc.name, key, bytes, ok, tc.key, tc.bytes, tc.ok)
		}
	}
}
