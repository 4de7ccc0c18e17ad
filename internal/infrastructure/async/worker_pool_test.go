package async

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"signupservice/internal/domain"
)

func TestWorkerPool_RunsAllTasksBeforeShutdownReturns(t *testing.T) {
	p := NewWorkerPool(context.Background(), 3, 8, zap.NewNop())

	var n atomic.Int32
	for i := 0; i < 20; i++ {
		if !p.Submit(context.Background(), func(context.Context) { n.Add(1) }) {
			t.Fatalf("submit %d rejected", i)
		}
	}
	p.Shutdown()

	if got := n.Load(); got != 20 {
		t.Fatalf("ran %d tasks, want 20", got)
	}
}

func TestWorkerPool_RejectsAfterShutdown(t *testing.T) {
	p := NewWorkerPool(context.Background(), 1, 0, zap.NewNop())
	p.Shutdown()
	p.Shutdown()

	if p.Submit(context.Background(), func(context.Context) {}) {
		t.Fatalf("submit after shutdown should be rejected")
	}
}

func TestWorkerPool_RecoversPanics(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	p := NewWorkerPool(context.Background(), 1, 1, zap.New(core))

	var ran atomic.Bool
	p.Submit(context.Background(), func(context.Context) { panic("boom") })
	p.Submit(context.Background(), func(context.Context) { ran.Store(true) })
	p.Shutdown()

	if !ran.Load() {
		t.Fatalf("worker died after panic")
	}
	if logs.FilterMessage("task panicked").Len() != 1 {
		t.Fatalf("expected panic to be logged")
	}
}

type dispatchFake struct {
	mu    sync.Mutex
	types []domain.EventType
}

func (d *dispatchFake) EventDispatched(t domain.EventType) {
	d.mu.Lock()
	d.types = append(d.types, t)
	d.mu.Unlock()
}

func TestAsyncEventBus_LogsAndCounts(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	rec := &dispatchFake{}
	bus := NewAsyncEventBus(context.Background(), 2, zap.New(core), rec)

	bus.Publish(context.Background(), domain.Event{
		Type:     domain.EventActivityJoined,
		Activity: "Chess Club",
		Payload:  map[string]any{"email": "a@x.io"},
	})
	bus.Publish(context.Background(), domain.Event{Type: domain.EventActivityLeft, Activity: "Chess Club"})
	bus.Close()

	if n := logs.FilterMessage("roster_event").Len(); n != 2 {
		t.Fatalf("expected 2 logged events, got %d", n)
	}
	if len(rec.types) != 2 {
		t.Fatalf("expected 2 dispatched events, got %v", rec.types)
	}

	bus.Publish(context.Background(), domain.Event{Type: domain.EventActivityJoined})
	if logs.FilterMessage("roster_event dropped").Len() != 1 {
		t.Fatalf("expected publish after close to be dropped")
	}
}
