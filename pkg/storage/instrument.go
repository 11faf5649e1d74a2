package storage

import (
	"context"
	"io"
	"time"
)

// InstrumentedStore wraps an ObjectStore and reports upload durations.
type InstrumentedStore struct {
	inner   ObjectStore
	observe func(time.Duration)
}

// Instrument decorates a store with an upload-duration observer.
func Instrument(inner ObjectStore, observe func(time.Duration)) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, observe: observe}
}

// Upload delegates to the wrapped store and records how long it took.
func (s *InstrumentedStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	start := time.Now()
	url, err := s.inner.Upload(ctx, key, contentType, body)
	if s.observe != nil {
		s.observe(time.Since(start))
	}
	return url, err
}
