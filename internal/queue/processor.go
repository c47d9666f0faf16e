package queue

import (
	"context"
	"sync"
	"time"

	"teamforge/internal/storage"

	"github.com/rs/zerolog"
)

const (
	// MaxRetries is the maximum number of automatic retries for a failed
	// blob deletion.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (linear backoff).
	RetryDelay = 5 * time.Second
)

// Processor drains cleanup jobs and deletes the blobs they point at.
type Processor struct {
	queue        *MemoryQueue
	store        storage.Storage
	workerCount  int
	log          zerolog.Logger
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// NewProcessor creates a new blob cleanup processor.
func NewProcessor(queue *MemoryQueue, store storage.Storage, workerCount int, log zerolog.Logger) *Processor {
	return &Processor{
		queue:       queue,
		store:       store,
		workerCount: workerCount,
		log:         log,
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	p.log.Info().Int("workers", p.workerCount).Msg("blob cleanup processor started")
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		p.queue.Close()
	})
	p.wg.Wait()
	p.log.Info().Msg("blob cleanup processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if err == ErrQueueClosed || err == context.Canceled {
				p.log.Debug().Int("worker", id).Msg("cleanup worker shutting down")
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job CleanupJob) {
	err := p.store.DeleteObject(ctx, job.Key)
	if err == nil {
		p.log.Debug().Str("key", job.Key).Msg("released media blob")
		return
	}

	p.log.Warn().Err(err).Str("key", job.Key).Int("attempt", job.RetryCount+1).
		Msg("blob deletion failed")

	if job.RetryCount >= MaxRetries {
		// Leaked blob; surfaced loudly so it can be reaped manually.
		p.log.Error().Str("key", job.Key).Msg("giving up on blob deletion after max retries")
		return
	}

	job.RetryCount++
	select {
	case <-ctx.Done():
		return
	case <-time.After(RetryDelay * time.Duration(job.RetryCount)):
	}
	if err := p.queue.Enqueue(job); err != nil {
		p.log.Error().Err(err).Str("key", job.Key).Msg("failed to requeue blob deletion")
	}
}
