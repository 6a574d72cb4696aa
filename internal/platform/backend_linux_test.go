//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProcName_CurrentProcessUsesExecutableBase(t *testing.T) {
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("executable: %v", err)
	}

	got, err := procName(os.Getpid())
	if err != nil {
		t.Fatalf("procName: %v", err)
	}
	if want := filepath.Base(exe); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestProcName_MissingProcess(t *testing.T) {
	// Above the kernel's pid_max ceiling, so never a live pid.
	if _, err := procName(1 << 30); err == nil {
		t.Fatalf("expected error for missing process")
	}
	if _, err := procName(0); err == nil {
		t.Fatalf("expected error for pid 0")
	}
	if _, err := procName(-3); err == nil {
		t.Fatalf("expected error for negative pid")
	}
}
