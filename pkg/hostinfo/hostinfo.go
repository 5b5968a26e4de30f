// Package hostinfo collects the best-effort host header shown above the
// memory gauges.
package hostinfo

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
)

// Summary is what the header line renders. Fields a probe could not fill
// stay at their zero value; rendering tolerates that.
type Summary struct {
	Hostname string
	Kernel   string
	Uptime   time.Duration
	Load1    float64
	Load5    float64
	Load15   float64
}

// Collect never fails; it returns whatever the host probes could provide.
func Collect() Summary {
	var s Summary
	if info, err := host.Info(); err == nil {
		s.Hostname = info.Hostname
		s.Kernel = info.KernelVersion
		s.Uptime = time.Duration(info.Uptime) * time.Second
	}
	if avg, err := load.Avg(); err == nil && avg != nil {
		s.Load1 = avg.Load1
		s.Load5 = avg.Load5
		s.Load15 = avg.Load15
	}
	return s
}

// String renders the one-line header, leaving out what is unknown.
func (s Summary) String() string {
	out := s.Hostname
	if out == "" {
		out = "host"
	}
	if s.Kernel != "" {
		out += " | kernel " + s.Kernel
	}
	if s.Uptime > 0 {
		out += " | up " + formatUptime(s.Uptime)
	}
	if s.Load1 > 0 || s.Load5 > 0 || s.Load15 > 0 {
		out += fmt.Sprintf(" | load %.2f %.2f %.2f", s.Load1, s.Load5, s.Load15)
	}
	return out
}

func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
