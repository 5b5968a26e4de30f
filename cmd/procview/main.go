//go:build linux

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"procview/pkg/collector/meminfo"
	"procview/pkg/collector/process"
	"procview/pkg/config"
	"procview/pkg/hostinfo"
	"procview/pkg/logging"
	"procview/pkg/report"
	"procview/pkg/ui"
	"procview/pkg/users"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const maxCommandWidth = 120

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	interval := flag.Duration("interval", time.Second, "sampling interval (e.g. 1s, 500ms)")
	topK := flag.Int("topk", 0, "number of process rows to display, 0 shows all")
	hideKernel := flag.Bool("hide-kernel", false, "hide kernel threads such as kworker, ksoftirqd, etc")
	sortKey := flag.String("sort", report.SortByMem, "table order: mem, pid or user")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	// flags given on the command line win over file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "interval":
			cfg.Interval = *interval
		case "topk":
			cfg.TopK = *topK
		case "hide-kernel":
			cfg.HideKernel = *hideKernel
		case "sort":
			cfg.Sort = *sortKey
		}
	})
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}

	log, err := logging.New(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("procview starting",
		zap.Duration("interval", cfg.Interval),
		zap.String("proc_root", cfg.ProcRoot),
		zap.String("sort", cfg.Sort))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resolver := users.NewResolver(cfg.PasswdPath)
	sampler := meminfo.NewSampler(filepath.Join(cfg.ProcRoot, "meminfo"), log)
	enumerator := process.NewEnumerator(cfg.ProcRoot, resolver, log)

	cleanupTerminal := enableSingleView()
	defer cleanupTerminal()

	// render immediately, then on every tick
	renderTick(sampler, enumerator, cfg, log)

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("procview stopping")
			return
		case <-ticker.C:
			renderTick(sampler, enumerator, cfg, log)
		}
	}
}

// renderTick runs one full sampling pass and repaints the screen. Memory
// is sampled once and its total feeds every per-process percent.
func renderTick(sampler *meminfo.Sampler, enumerator *process.Enumerator, cfg config.Config, log *zap.Logger) {
	start := time.Now()

	snap := sampler.Sample()
	records := enumerator.List(snap.Total)
	summary := report.BuildMemorySummary(snap)
	host := hostinfo.Collect()

	rows := report.FilterRecords(records, report.FilterConfig{HideKernel: &cfg.HideKernel})
	report.SortRecords(rows, cfg.Sort)
	visible := report.TopRecords(rows, cfg.TopK)

	var buf bytes.Buffer
	buf.WriteString(ui.Banner())
	fmt.Fprintf(&buf, "%s\n", host)
	fmt.Fprintf(&buf, "Updated: %s | Interval: %v | press Ctrl+C to exit\n\n",
		time.Now().Format(time.RFC3339), cfg.Interval)

	fmt.Fprintf(&buf, "[RAM]  %s\n", ui.Gauge(summary.MemPercent, ui.DefaultGaugeWidth))
	fmt.Fprintf(&buf, "Total: %s | Used: %s | Free: %s\n", summary.Total, summary.Used, summary.Free)
	fmt.Fprintf(&buf, "Available: %s | Buffers: %s | Cached: %s\n\n",
		summary.Available, summary.Buffers, summary.Cached)

	if summary.SwapAvailable {
		fmt.Fprintf(&buf, "[Swap] %s\n", ui.Gauge(summary.SwapPercent, ui.DefaultGaugeWidth))
	} else {
		fmt.Fprintf(&buf, "[Swap] %s\n", ui.GaugeUnavailable(ui.DefaultGaugeWidth))
	}
	fmt.Fprintf(&buf, "Total: %s | Used: %s | Free: %s\n\n",
		summary.SwapTotal, summary.SwapUsed, summary.SwapFree)

	fmt.Fprintf(&buf, "Total Processes: %d", len(records))
	if len(visible) < len(rows) {
		fmt.Fprintf(&buf, " (showing %d)", len(visible))
	}
	buf.WriteString("\n")

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PID\tUSER\tCPU %\tMEM %\tCOMMAND")
	for _, row := range visible {
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%.1f\t%s\n",
			row.PID, row.Owner, row.CPUPercent, row.MemoryPercent, truncate(row.Command, maxCommandWidth))
	}
	tw.Flush()

	clearScreen()
	fmt.Print(buf.String())

	log.Debug("tick rendered",
		zap.Int("processes", len(records)),
		zap.Int64("mem_total", snap.Total),
		zap.Duration("elapsed", time.Since(start)))
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

func clearScreen() {
	fmt.Print("\033[H\033[2J")
}

func enableSingleView() func() {
	stdoutFD := int(os.Stdout.Fd())
	stdinFD := int(os.Stdin.Fd())
	if !term.IsTerminal(stdoutFD) {
		return func() {}
	}

	fmt.Print("\033[?1049h") // switch to alternate buffer
	fmt.Print("\033[?25l")   // hide cursor

	var restore []func()
	if term.IsTerminal(stdinFD) {
		if undoEcho, err := disableInputEcho(stdinFD); err == nil && undoEcho != nil {
			restore = append(restore, undoEcho)
		}
	}

	return func() {
		for i := len(restore) - 1; i >= 0; i-- {
			restore[i]()
		}
		fmt.Print("\033[?25h")   // show cursor
		fmt.Print("\033[?1049l") // restore main buffer
	}
}

// disableInputEcho turns off stdin echo so the alternate-screen view stays clean.
func disableInputEcho(fd int) (func(), error) {
	termState, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, err
	}

	updated := *termState
	updated.Lflag &^= unix.ECHO

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &updated); err != nil {
		return nil, err
	}

	return func() {
		_ = unix.IoctlSetTermios(fd, unix.TCSETS, termState)
	}, nil
}
