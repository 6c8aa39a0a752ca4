package execx

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunInRelaysExitStatus(t *testing.T) {
	res := RunIn(t.TempDir(), "/bin/sh", "-c", "exit 7")
	if res.Code != 7 {
		t.Fatalf("code = %d, want 7", res.Code)
	}
	if res.Err == nil {
		t.Fatal("expected non-nil error for non-zero exit")
	}

	res = RunIn(t.TempDir(), "/bin/sh", "-c", "exit 0")
	if res.Code != 0 || res.Err != nil {
		t.Fatalf("clean exit reported code=%d err=%v", res.Code, res.Err)
	}
}

func TestRunInExecutesRelativeToDir(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "stub.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 42\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if res := RunIn(dir, "./stub.sh"); res.Code != 42 {
		t.Fatalf("code = %d, want 42", res.Code)
	}
}

func TestRunMissingBinaryMapsToOne(t *testing.T) {
	res := Run("/nonexistent/definitely-not-here")
	if res.Code != 1 || res.Err == nil {
		t.Fatalf("code=%d err=%v", res.Code, res.Err)
	}
}
