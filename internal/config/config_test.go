package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadParsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "root: /srv/aecid-testsuite\nshell: /bin/zsh\nservices:\n  - rsyslog\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AMINERCTL_CONFIG", path)

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if cfg.Root != "/srv/aecid-testsuite" || cfg.Shell != "/bin/zsh" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.Services) != 1 || cfg.Services[0] != "rsyslog" {
		t.Fatalf("services = %v", cfg.Services)
	}
}

func TestReadMissingFileIsNotAnError(t *testing.T) {
	t.Setenv("AMINERCTL_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if cfg.Root != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestResolveEnvBeatsFileBeatsDefaults(t *testing.T) {
	t.Setenv("AMINERCTL_ROOT", "/env/root")
	t.Setenv("AMINERCTL_SHELL", "")
	cfg := Resolve(Config{Root: "/file/root", Shell: "/bin/sh"})
	if cfg.Root != "/env/root" {
		t.Fatalf("root = %q", cfg.Root)
	}
	if cfg.Shell != "/bin/sh" {
		t.Fatalf("shell = %q", cfg.Shell)
	}
	if len(cfg.Services) != 2 || cfg.Services[0] != "rsyslog" || cfg.Services[1] != "postfix" {
		t.Fatalf("services = %v", cfg.Services)
	}
}

func TestResolveDefaults(t *testing.T) {
	t.Setenv("AMINERCTL_ROOT", "")
	t.Setenv("AMINERCTL_SHELL", "")
	cfg := Resolve(Config{})
	if cfg.Root != DefaultRoot {
		t.Fatalf("root = %q, want %q", cfg.Root, DefaultRoot)
	}
	if cfg.Shell != DefaultShell {
		t.Fatalf("shell = %q, want %q", cfg.Shell, DefaultShell)
	}
}
