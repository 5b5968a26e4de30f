// Package config loads settings from a YAML file with environment
// overrides. Precedence: defaults < file < environment; flags are applied
// on top by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the viewer needs to run.
type Config struct {
	Interval   time.Duration
	TopK       int
	HideKernel bool
	Sort       string
	ProcRoot   string
	PasswdPath string
	LogFile    string
}

// fileConfig is the YAML schema. Interval is a string so the file can say
// "3s" or "500ms"; pointers distinguish "absent" from zero values.
type fileConfig struct {
	Interval   *string `yaml:"interval"`
	TopK       *int    `yaml:"topk"`
	HideKernel *bool   `yaml:"hide_kernel"`
	Sort       *string `yaml:"sort"`
	ProcRoot   *string `yaml:"proc_root"`
	PasswdPath *string `yaml:"passwd_path"`
	LogFile    *string `yaml:"log_file"`
}

// Default returns the built-in settings: 1s refresh, full table sorted by
// memory, standard procfs and account table locations.
func Default() Config {
	return Config{
		Interval:   time.Second,
		TopK:       0,
		HideKernel: false,
		Sort:       "mem",
		ProcRoot:   "/proc",
		PasswdPath: "/etc/passwd",
	}
}

// Load reads path (skipped when empty or absent), then applies PROCVIEW_*
// environment variables. A .env file in the working directory is honored
// the same way as real environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, err
			}
		} else {
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return cfg, err
			}
			if err := fc.apply(&cfg); err != nil {
				return cfg, err
			}
		}
	}

	// .env is optional; plain environment variables work without it
	_ = godotenv.Load()
	applyEnv(&cfg)

	cfg.normalize()
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) error {
	if fc.Interval != nil {
		d, err := time.ParseDuration(*fc.Interval)
		if err != nil {
			return fmt.Errorf("config interval: %w", err)
		}
		cfg.Interval = d
	}
	if fc.TopK != nil {
		cfg.TopK = *fc.TopK
	}
	if fc.HideKernel != nil {
		cfg.HideKernel = *fc.HideKernel
	}
	if fc.Sort != nil {
		cfg.Sort = *fc.Sort
	}
	if fc.ProcRoot != nil {
		cfg.ProcRoot = *fc.ProcRoot
	}
	if fc.PasswdPath != nil {
		cfg.PasswdPath = *fc.PasswdPath
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PROCVIEW_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Interval = d
		}
	}
	if v := os.Getenv("PROCVIEW_TOPK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TopK = n
		}
	}
	if v := os.Getenv("PROCVIEW_HIDE_KERNEL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.HideKernel = b
		}
	}
	if v := os.Getenv("PROCVIEW_SORT"); v != "" {
		cfg.Sort = v
	}
	if v := os.Getenv("PROCVIEW_PROC_ROOT"); v != "" {
		cfg.ProcRoot = v
	}
	if v := os.Getenv("PROCVIEW_PASSWD_PATH"); v != "" {
		cfg.PasswdPath = v
	}
	if v := os.Getenv("PROCVIEW_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}

// normalize repairs values that would break the render loop.
func (c *Config) normalize() {
	if c.Interval <= 0 {
		c.Interval = time.Second
	}
	if c.TopK < 0 {
		c.TopK = 0
	}
	switch c.Sort {
	case "mem", "pid", "user":
	default:
		c.Sort = "mem"
	}
	if c.ProcRoot == "" {
		c.ProcRoot = "/proc"
	}
	if c.PasswdPath == "" {
		c.PasswdPath = "/etc/passwd"
	}
}
