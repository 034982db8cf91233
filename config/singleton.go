package config

import (
	"fmt"
	"sync"
)

// Singleton guards one lazily connected backend client.
// A failed Connect leaves it empty so the next call retries.
type Singleton[T any] struct {
	name     string
	mu       sync.RWMutex
	instance T
	ready    bool
}

func NewSingleton[T any](name string) *Singleton[T] {
	return &Singleton[T]{name: name}
}

// Connect returns the existing client or builds one with connect.
func (s *Singleton[T]) Connect(connect func() (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return s.instance, nil
	}

	client, err := connect()
	if err != nil {
		var zero T
		return zero, err
	}

	s.instance = client
	s.ready = true
	return client, nil
}

// Get returns the client and panics when Connect has not succeeded.
func (s *Singleton[T]) Get() T {
	client, ok := s.Load()
	if !ok {
		panic(fmt.Sprintf("%s client not initialized. Call Connect() first", s.name))
	}
	return client
}

func (s *Singleton[T]) Load() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.instance, s.ready
}

// Check runs probe against the client, failing when none is connected.
func (s *Singleton[T]) Check(probe func(T) error) error {
	client, ok := s.Load()
	if !ok {
		return fmt.Errorf("%s client not initialized", s.name)
	}
	return probe(client)
}

// Reset closes the client and allows a new Connect.
func (s *Singleton[T]) Reset(closeFn func(T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil
	}
	if err := closeFn(s.instance); err != nil {
		return fmt.Errorf("failed to close %s: %w", s.name, err)
	}

	var zero T
	s.instance = zero
	s.ready = false
	return nil
}
