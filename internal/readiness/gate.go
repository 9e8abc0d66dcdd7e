// Package readiness implements the startup gate: a one-shot transition from
// Loading to Ready after a fixed delay. Once Ready the gate never reverts.
package readiness

import (
	"sync"
	"time"
)

// Gate is a two-state machine {Loading, Ready} with a cancellable scheduled
// transition.
type Gate struct {
	mu    sync.Mutex
	ready bool
	timer *time.Timer
	done  chan struct{}
}

// NewGate creates a gate in the Loading state. Nothing is scheduled until
// Start is called.
func NewGate() *Gate {
	return &Gate{done: make(chan struct{})}
}

// Start schedules the transition to Ready after delay. Calling Start again,
// or after the gate is already Ready, has no effect.
func (g *Gate) Start(delay time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ready || g.timer != nil {
		return
	}
	g.timer = time.AfterFunc(delay, g.fire)
}

func (g *Gate) fire() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ready {
		return
	}
	g.ready = true
	close(g.done)
}

// Ready reports whether the gate has fired.
func (g *Gate) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ready
}

// Done returns a channel closed when the gate becomes Ready.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}

// Stop cancels a pending transition on teardown. A gate that already fired
// stays Ready; a stopped gate never fires.
func (g *Gate) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}
