// Package queue provides background release of uploaded media blobs. Deleting
// an image item must also delete its blob; pushing that through a queue keeps
// board mutations fast and survives transient storage failures.
package queue

import (
	"context"
	"sync"
)

// CleanupJob asks for one stored blob to be released.
type CleanupJob struct {
	Key        string
	RetryCount int
}

// MemoryQueue is an in-memory job queue for blob cleanup jobs.
type MemoryQueue struct {
	jobs     chan CleanupJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a new in-memory queue with the given capacity.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan CleanupJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job to the queue. Returns an error if the queue is full or
// closed. The lock is held for the whole operation to avoid racing Close.
func (q *MemoryQueue) Enqueue(job CleanupJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the next job, blocking until one is available. Returns an
// error if the context is cancelled or the queue is closed.
func (q *MemoryQueue) Dequeue(ctx context.Context) (CleanupJob, error) {
	select {
	case <-ctx.Done():
		return CleanupJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return CleanupJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close closes the queue. No more jobs can be enqueued after closing.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Len returns the current number of jobs in the queue.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
