package aglauncher

import (
	"errors"
	"fmt"
	"testing"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/instance"
)

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("no video device")
	err := fmt.Errorf("startup: %w", NewInfrastructureError("init", cause))

	if !IsInfrastructureError(err) {
		t.Error("IsInfrastructureError() = false for a wrapped infrastructure error")
	}
	if !errors.Is(err, cause) {
		t.Error("InfrastructureError does not unwrap to its cause")
	}
	if got := NewInfrastructureError("init", cause).Error(); got != "aglauncher: init: no video device" {
		t.Errorf("Error() = %q", got)
	}
	if got := NewInfrastructureError("present", nil).Error(); got != "aglauncher: present" {
		t.Errorf("Error() without cause = %q", got)
	}
	if IsInfrastructureError(cause) {
		t.Error("plain error classified as infrastructure")
	}
}

func TestSentinels(t *testing.T) {
	if !IsQuit(fmt.Errorf("launcher: %w", ErrQuit)) {
		t.Error("IsQuit() = false for a wrapped ErrQuit")
	}
	if !errors.Is(ErrAlreadyRunning, instance.ErrLocked) {
		t.Error("ErrAlreadyRunning is not the instance lock error")
	}
}
