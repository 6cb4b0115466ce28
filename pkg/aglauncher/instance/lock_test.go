package instance

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

func TestAcquireExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "aglauncher.lock")

	first, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire() failed: %v", err)
	}

	if _, err := Acquire(path); !errors.Is(err, ErrLocked) {
		t.Errorf("second Acquire() error = %v, want ErrLocked", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}

	again, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire() after Release() failed: %v", err)
	}
	defer again.Release()

	if again.Path() != path {
		t.Errorf("Path() = %q", again.Path())
	}
}

func TestAcquireWritesPID(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("locked byte range cannot be read back on windows")
	}
	path := filepath.Join(t.TempDir(), "aglauncher.lock")
	if err := os.WriteFile(path, []byte("999999999 stale contents\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire() failed: %v", err)
	}
	defer l.Release()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(data)); got != strconv.Itoa(os.Getpid()) {
		t.Errorf("lock file contains %q, want our PID", got)
	}
}

func TestReleaseTwice(t *testing.T) {
	l, err := Acquire(filepath.Join(t.TempDir(), "aglauncher.lock"))
	if err != nil {
		t.Fatalf("Acquire() failed: %v", err)
	}
	if err := l.Release(); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
	if err := l.Release(); err != nil {
		t.Errorf("second Release() = %v", err)
	}
}
