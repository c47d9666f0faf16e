package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"teamforge/internal/queue"
)

// fakeCache is an in-memory cache.Cache for service tests.
type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func (c *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	raw, ok := c.data[key]
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

// fakeStorage records storage calls and serves deterministic URLs.
type fakeStorage struct {
	mu      sync.Mutex
	puts    []string
	deletes []string
	putErr  error
}

func (s *fakeStorage) PutObject(_ context.Context, key string, _ io.Reader, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	s.puts = append(s.puts, key)
	return nil
}

func (s *fakeStorage) DeleteObject(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, key)
	return nil
}

func (s *fakeStorage) GetPresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.test/%s?signed", key), nil
}

func (s *fakeStorage) putCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.puts)
}

// fakeCleanup records enqueued cleanup jobs.
type fakeCleanup struct {
	mu   sync.Mutex
	jobs []queue.CleanupJob
}

func (c *fakeCleanup) Enqueue(job queue.CleanupJob) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobs = append(c.jobs, job)
	return nil
}

func (c *fakeCleanup) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.jobs))
	for _, job := range c.jobs {
		keys = append(keys, job.Key)
	}
	return keys
}
