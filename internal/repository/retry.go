package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryConfig bounds how hard RetryingStore tries before giving up.
type RetryConfig struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:     4,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     2 * time.Second,
	}
}

// RetryingStore retries transient Store failures with exponential backoff.
// Missing keys and cancelled contexts are returned at once.
type RetryingStore struct {
	next Store
	cfg  RetryConfig
}

var _ Store = (*RetryingStore)(nil)

func NewRetryingStore(next Store, cfg RetryConfig) *RetryingStore {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryingStore{next: next, cfg: cfg}
}

func (s *RetryingStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.do(ctx, "get "+key, func() error {
		var err error
		value, err = s.next.Get(ctx, key)
		return err
	})
	return value, err
}

func (s *RetryingStore) Set(ctx context.Context, key string, value []byte) error {
	return s.do(ctx, "set "+key, func() error {
		return s.next.Set(ctx, key, value)
	})
}

func (s *RetryingStore) Delete(ctx context.Context, key string) error {
	return s.do(ctx, "delete "+key, func() error {
		return s.next.Delete(ctx, key)
	})
}

func (s *RetryingStore) Scan(ctx context.Context, prefix string) ([]Entry, error) {
	var entries []Entry
	err := s.do(ctx, "scan "+prefix, func() error {
		var err error
		entries, err = s.next.Scan(ctx, prefix)
		return err
	})
	return entries, err
}

func (s *RetryingStore) do(ctx context.Context, op string, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.cfg.InitialInterval
	b.MaxInterval = s.cfg.MaxInterval
	b.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(s.cfg.MaxAttempts-1)), ctx)

	return backoff.RetryNotify(func() error {
		err := fn()
		if err != nil && !isTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		log.Printf("⚠️  store %s failed, retrying in %s: %v", op, wait, err)
	})
}

func isTransient(err error) bool {
	switch {
	case errors.Is(err, ErrKeyNotFound),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}
