package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config controls where the suite lives and how the SHELL branch behaves.
// All fields are optional; zero values fall back to compiled defaults.
type Config struct {
	Root     string   `yaml:"root"`
	Shell    string   `yaml:"shell"`
	Services []string `yaml:"services"`
}

const (
	// DefaultRoot is where the AECID test suite is checked out on the
	// reference hosts.
	DefaultRoot = "/home/ubuntu/aecid-testsuite"
	// DefaultShell backs the SHELL subcommand.
	DefaultShell = "/bin/bash"
)

// defaultServices are started before any suite run (see sysservice).
var defaultServices = []string{"rsyslog", "postfix"}

// Read parses the optional tool config file. The path comes from
// AMINERCTL_CONFIG, else <user config dir>/aminerkit/config.yaml.
// A missing file yields the zero Config without error.
func Read() (Config, error) {
	var cfg Config
	path := strings.TrimSpace(os.Getenv("AMINERCTL_CONFIG"))
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "aminerkit", "config.yaml")
		}
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Resolve fills cfg from the environment and compiled defaults.
// Env beats file, file beats defaults.
func Resolve(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv("AMINERCTL_ROOT")); v != "" {
		cfg.Root = v
	}
	if v := strings.TrimSpace(os.Getenv("AMINERCTL_SHELL")); v != "" {
		cfg.Shell = v
	}
	if strings.TrimSpace(cfg.Root) == "" {
		cfg.Root = DefaultRoot
	}
	if strings.TrimSpace(cfg.Shell) == "" {
		cfg.Shell = DefaultShell
	}
	if len(cfg.Services) == 0 {
		cfg.Services = append([]string{}, defaultServices...)
	}
	return cfg
}
