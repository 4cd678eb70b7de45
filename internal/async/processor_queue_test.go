package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type countingProcessor struct {
	mu    sync.Mutex
	paths []string
	fail  map[string]bool
	done  chan struct{}
}

func (p *countingProcessor) Process(_ context.Context, job Job) error {
	p.mu.Lock()
	p.paths = append(p.paths, job.Path)
	p.mu.Unlock()
	if p.done != nil {
		p.done <- struct{}{}
	}
	if p.fail[job.Path] {
		return errors.New("boom")
	}
	return nil
}

func TestQueueProcessesAllJobs(t *testing.T) {
	proc := &countingProcessor{done: make(chan struct{}, 8)}
	q := NewProcessorQueue(proc, nil, WithWorkers(2), WithQueueSize(8))

	ctx := context.Background()
	for _, path := range []string{"a.pdf", "b.png", "c.pdf"} {
		if err := q.Enqueue(ctx, Job{UserID: uuid.New(), Path: path, SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("Enqueue(%s): %v", path, err)
		}
	}
	for i := 0; i < 3; i++ {
		select {
		case <-proc.done:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for jobs")
		}
	}
	q.Shutdown(ctx)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.paths) != 3 {
		t.Errorf("processed %d jobs, want 3", len(proc.paths))
	}
}

func TestQueueFailedJobDoesNotStopWorkers(t *testing.T) {
	proc := &countingProcessor{
		fail: map[string]bool{"bad.pdf": true},
		done: make(chan struct{}, 4),
	}
	q := NewProcessorQueue(proc, nil, WithWorkers(1), WithQueueSize(4))

	ctx := context.Background()
	for _, path := range []string{"bad.pdf", "good.pdf"} {
		if err := q.Enqueue(ctx, Job{UserID: uuid.New(), Path: path}); err != nil {
			t.Fatalf("Enqueue(%s): %v", path, err)
		}
	}
	for i := 0; i < 2; i++ {
		select {
		case <-proc.done:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for jobs")
		}
	}
	q.Shutdown(ctx)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.paths) != 2 {
		t.Errorf("processed %d jobs, want 2 (failure must not kill the worker)", len(proc.paths))
	}
}

func TestQueueEnqueueAfterShutdownIsNoop(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(1))

	ctx := context.Background()
	q.Shutdown(ctx)
	if err := q.Enqueue(ctx, Job{UserID: uuid.New(), Path: "late.pdf"}); err != nil {
		t.Fatalf("Enqueue after shutdown: %v", err)
	}

	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.paths) != 0 {
		t.Errorf("job processed after shutdown: %v", proc.paths)
	}
}

func TestQueueShutdownIsIdempotent(t *testing.T) {
	q := NewProcessorQueue(&countingProcessor{}, nil, WithWorkers(1))
	ctx := context.Background()
	q.Shutdown(ctx)
	q.Shutdown(ctx) // must not panic on double close
}
