// Package kv defines the string key-value store the fitlog engine persists
// into, together with three backends: an in-memory map, a file-per-key
// directory, and a SQLite database.
//
// The surface is deliberately minimal (get, set, remove) so that any
// host-provided storage can be adapted to it.
package kv

import (
	"context"
	"sync"
)

// Store is an abstract string key-value store.
//
// Get reports ok=false when the key is absent; absence is not an error.
// Implementations must honor the context's deadline and cancellation.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Memory is an in-memory Store. Its zero value is not usable; create one
// with NewMemory. Safe for concurrent use.
type Memory struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

// Get returns the value stored under key, or ok=false if absent.
func (s *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

// Set stores value under key, replacing any previous value.
func (s *Memory) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

// Remove deletes the key. Removing an absent key is a no-op.
func (s *Memory) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

var _ Store = (*Memory)(nil)
