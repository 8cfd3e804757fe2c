package model

import (
	"sync"
	"testing"
)

func TestStateManagerLifecycle(t *testing.T) {
	s := NewStateManager()
	if s.IsTrained() {
		t.Fatal("new StateManager should be untrained")
	}
	if got := s.State().String(); got != "untrained" {
		t.Errorf("State() = %q, want %q", got, "untrained")
	}

	s.SetDimensions(3, 10)
	s.MarkTrained(5)
	s.MarkTrained(0)
	s.MarkTrained(-2)

	if !s.IsTrained() {
		t.Fatal("StateManager should be trained after MarkTrained")
	}
	if got := s.Iterations(); got != 5 {
		t.Errorf("Iterations() = %d, want 5", got)
	}

	want := Snapshot{State: "trained", NFeatures: 3, NSamples: 10, Iterations: 5}
	if got := s.Snapshot(); got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}

func TestStateManagerConcurrent(t *testing.T) {
	s := NewStateManager()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.MarkTrained(1)
		}()
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	if got := s.Iterations(); got != 50 {
		t.Errorf("Iterations() = %d, want 50", got)
	}
}
