// Package process starts catalog executables and tracks whether they are
// still alive without ever blocking the frame loop.
package process

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/carousel"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/catalog"
)

// ErrNoExecutable is returned for entries without an exec path.
var ErrNoExecutable = errors.New("process: entry has no executable")

// Handle is a started child process.
type Handle struct {
	cmd     *exec.Cmd
	started time.Time
	exited  *atomic.Bool
	waitErr *atomic.Error
	done    chan struct{}
}

// Start runs path with its own directory as the working directory.
// Output is not captured.
func Start(path string) (*Handle, error) {
	if path == "" {
		return nil, ErrNoExecutable
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("process: resolve %s: %w", path, err)
	}

	cmd := exec.Command(abs)
	cmd.Dir = filepath.Dir(abs)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("process: start %s: %w", abs, err)
	}

	h := &Handle{
		cmd:     cmd,
		started: time.Now(),
		exited:  atomic.NewBool(false),
		waitErr: atomic.NewError(nil),
		done:    make(chan struct{}),
	}

	go func() {
		h.waitErr.Store(cmd.Wait())
		h.exited.Store(true)
		close(h.done)
	}()

	return h, nil
}

// Running reports whether the process is still alive. It never blocks.
func (h *Handle) Running() bool {
	return !h.exited.Load()
}

// Pid returns the operating system process id.
func (h *Handle) Pid() int {
	return h.cmd.Process.Pid
}

// Started returns when the process was started.
func (h *Handle) Started() time.Time {
	return h.started
}

// ExitErr returns the error reported by the process once it has exited.
// A clean exit, or a process still running, returns nil.
func (h *Handle) ExitErr() error {
	return h.waitErr.Load()
}

// Done is closed once the process has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Spawner launches catalog entries as child processes.
type Spawner struct {
	Logger *slog.Logger
}

// Launch starts the entry's executable.
func (s Spawner) Launch(entry catalog.Entry) (carousel.Process, error) {
	h, err := Start(entry.Exec)
	if err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.Info("Launched game", "title", entry.Title, "exec", entry.Exec, "pid", h.Pid())
	}

	return h, nil
}
