package window

import (
	"errors"
	"testing"
	"time"
)

const testGrace = 20 * time.Millisecond

type testStack struct {
	registry   *Registry
	shutdown   *ShutdownCoordinator
	controller *Controller
	manager    *fakeManager
	terminator *fakeTerminator
	opener     *Opener
}

func newTestStack() *testStack {
	s := &testStack{
		registry:   NewRegistry(),
		manager:    &fakeManager{},
		terminator: &fakeTerminator{},
	}
	s.shutdown = NewShutdownCoordinator(s.registry, s.terminator, testGrace)
	s.controller = NewController(s.registry, s.shutdown)
	s.opener = NewOpener(s.controller, s.manager)
	return s
}

func (s *testStack) waitExit(t *testing.T) {
	t.Helper()
	select {
	case <-s.shutdown.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("shutdown did not finish, state = %v", s.shutdown.State())
	}
}

func TestControllerHidePolicy(t *testing.T) {
	s := newTestStack()
	w := newFakeWindow(SettingsWindowID)
	if err := s.controller.Attach(w); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}

	if destroyed := w.userClose(); destroyed {
		t.Fatalf("close request destroyed a secondary window")
	}
	visible, _, destroyed, hides := w.state()
	if visible || destroyed || hides != 1 {
		t.Errorf("after close: visible=%v destroyed=%v hides=%d; want hidden, live, one hide", visible, destroyed, hides)
	}
	if got, ok := s.registry.Lookup(SettingsWindowID); !ok || got != w {
		t.Errorf("hidden window dropped from registry")
	}
	if s.shutdown.State() != ShutdownIdle {
		t.Errorf("secondary close changed shutdown state to %v", s.shutdown.State())
	}
}

func TestControllerHideFailureStillSuppresses(t *testing.T) {
	s := newTestStack()
	w := newFakeWindow("about")
	w.hideErr = errors.New("boom")
	if err := s.controller.Attach(w); err != nil {
		t.Fatal(err)
	}

	if destroyed := w.userClose(); destroyed {
		t.Errorf("close request destroyed the window after a hide failure")
	}
}

func TestControllerAttachIdempotent(t *testing.T) {
	s := newTestStack()
	w := newFakeWindow(SettingsWindowID)

	for i := 0; i < 3; i++ {
		if err := s.controller.Attach(w); err != nil {
			t.Fatalf("Attach() #%d error = %v", i, err)
		}
	}
	if len(w.observers) != 1 {
		t.Fatalf("observers = %d, want 1", len(w.observers))
	}

	w.userClose()
	if _, _, _, hides := w.state(); hides != 1 {
		t.Errorf("hides = %d after one close, want 1", hides)
	}
}

func TestControllerAttachRejectsSecondInstance(t *testing.T) {
	s := newTestStack()
	if err := s.controller.Attach(newFakeWindow(SettingsWindowID)); err != nil {
		t.Fatal(err)
	}
	err := s.controller.Attach(newFakeWindow(SettingsWindowID))
	if !errors.Is(err, ErrDuplicateWindow) {
		t.Errorf("Attach(second instance) error = %v, want ErrDuplicateWindow", err)
	}
	if s.registry.Len() != 1 {
		t.Errorf("registry has %d windows, want 1", s.registry.Len())
	}
}

func TestControllerPrimaryCloseShutsDown(t *testing.T) {
	s := newTestStack()
	main := newFakeWindow(PrimaryWindowID)
	if err := s.controller.Attach(main); err != nil {
		t.Fatal(err)
	}

	if destroyed := main.userClose(); destroyed {
		t.Fatalf("default close ran for the primary window")
	}
	// the primary window is never merely hidden
	if _, _, _, hides := main.state(); hides != 0 {
		t.Errorf("primary window hidden %d times", hides)
	}

	s.waitExit(t)
	if _, _, destroyed, _ := main.state(); !destroyed {
		t.Errorf("primary window not destroyed by shutdown")
	}
	if codes := s.terminator.exitCodes(); len(codes) != 1 || codes[0] != 0 {
		t.Errorf("exit codes = %v, want [0]", codes)
	}
}

func TestControllerRequestClose(t *testing.T) {
	s := newTestStack()
	settings := newFakeWindow(SettingsWindowID)
	main := newFakeWindow(PrimaryWindowID)
	for _, w := range []*fakeWindow{settings, main} {
		if err := s.controller.Attach(w); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.controller.RequestClose("missing"); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("RequestClose(missing) error = %v, want ErrUnknownWindow", err)
	}

	if err := s.controller.RequestClose(SettingsWindowID); err != nil {
		t.Fatalf("RequestClose(settings) error = %v", err)
	}
	if visible, _, _, _ := settings.state(); visible {
		t.Errorf("settings still visible after RequestClose")
	}

	if err := s.controller.RequestClose(PrimaryWindowID); err != nil {
		t.Fatalf("RequestClose(main) error = %v", err)
	}
	// the worker may already have destroyed main
	for i := 0; i < 2; i++ {
		if err := s.controller.RequestClose(PrimaryWindowID); err != nil && !errors.Is(err, ErrUnknownWindow) {
			t.Fatalf("repeated RequestClose(main) error = %v", err)
		}
	}
	s.waitExit(t)

	if codes := s.terminator.exitCodes(); len(codes) != 1 {
		t.Errorf("process exited %d times, want 1", len(codes))
	}
}
