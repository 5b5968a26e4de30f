package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Interval != time.Second {
		t.Fatalf("unexpected default interval: %v", cfg.Interval)
	}
	if cfg.ProcRoot != "/proc" || cfg.PasswdPath != "/etc/passwd" {
		t.Fatalf("unexpected default paths: %+v", cfg)
	}
	if cfg.Sort != "mem" || cfg.TopK != 0 || cfg.HideKernel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("absent file should fall back to defaults: %v", err)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procview.yaml")
	content := `interval: 3s
topk: 15
hide_kernel: true
sort: pid
proc_root: /mnt/proc
passwd_path: /mnt/etc/passwd
log_file: /tmp/procview.log
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Interval != 3*time.Second || cfg.TopK != 15 || !cfg.HideKernel {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
	if cfg.Sort != "pid" || cfg.ProcRoot != "/mnt/proc" || cfg.LogFile != "/tmp/procview.log" {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
}

func TestLoadMalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("interval: [not a duration"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procview.yaml")
	if err := os.WriteFile(path, []byte("interval: 10s\nsort: pid\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	t.Setenv("PROCVIEW_INTERVAL", "250ms")
	t.Setenv("PROCVIEW_SORT", "user")
	t.Setenv("PROCVIEW_HIDE_KERNEL", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Interval != 250*time.Millisecond {
		t.Fatalf("env interval not applied: %v", cfg.Interval)
	}
	if cfg.Sort != "user" || !cfg.HideKernel {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestNormalizeRepairsBadValues(t *testing.T) {
	cfg := Config{Interval: -1, TopK: -5, Sort: "cpu-time"}
	cfg.normalize()
	if cfg.Interval != time.Second {
		t.Fatalf("bad interval not repaired: %v", cfg.Interval)
	}
	if cfg.TopK != 0 {
		t.Fatalf("bad topk not repaired: %d", cfg.TopK)
	}
	if cfg.Sort != "mem" {
		t.Fatalf("bad sort key not repaired: %q", cfg.Sort)
	}
}
