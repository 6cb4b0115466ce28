package router

import "testing"

func TestRunWithoutTransition(t *testing.T) {
	r := New(nil).Register(0, "only", func(any) (any, error) { return nil, nil })
	if err := r.Run(0, nil); err == nil {
		t.Error("Run() without a transition function succeeded")
	}
}

func TestRunUnregisteredScreen(t *testing.T) {
	r := New(nil).OnTransition(func(Screen, any) (Screen, any) { return 5, nil })
	r.Register(0, "start", func(any) (any, error) { return nil, nil })

	if err := r.Run(0, nil); err == nil {
		t.Error("Run() into an unregistered screen succeeded")
	}
}

func TestInputFlowsToNextScreen(t *testing.T) {
	var got any
	r := New(nil).
		Register(0, "first", func(any) (any, error) { return "hello", nil }).
		Register(1, "second", func(in any) (any, error) {
			got = in
			return nil, nil
		}).
		OnTransition(func(from Screen, result any) (Screen, any) {
			if from == 0 {
				return 1, result
			}
			return ScreenExit, nil
		})

	if err := r.Run(0, nil); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got != "hello" {
		t.Errorf("second screen got %v", got)
	}
}
