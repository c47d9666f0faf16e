package queue

import "errors"

var (
	// ErrQueueFull is returned when the queue cannot accept more jobs.
	ErrQueueFull = errors.New("cleanup queue is full")
	// ErrQueueClosed is returned when the queue has been closed.
	ErrQueueClosed = errors.New("cleanup queue is closed")
)
