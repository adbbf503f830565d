package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"planner/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockStore records calls made through the retry wrapper.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	value := args.Get(0)
	if value == nil {
		return nil, args.Error(1)
	}
	return value.([]byte), args.Error(1)
}

func (m *MockStore) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStore) Scan(ctx context.Context, prefix string) ([]repository.Entry, error) {
	args := m.Called(ctx, prefix)
	entries := args.Get(0)
	if entries == nil {
		return nil, args.Error(1)
	}
	return entries.([]repository.Entry), args.Error(1)
}

func fastRetry(attempts int) repository.RetryConfig {
	return repository.RetryConfig{
		MaxAttempts:     attempts,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
	}
}

func TestRetryingStore_RecoversFromTransientFailure(t *testing.T) {
	inner := new(MockStore)
	inner.On("Get", mock.Anything, "task:1").Return(nil, errors.New("connection refused")).Twice()
	inner.On("Get", mock.Anything, "task:1").Return([]byte(`{}`), nil).Once()

	store := repository.NewRetryingStore(inner, fastRetry(4))
	value, err := store.Get(context.Background(), "task:1")

	assert.NoError(t, err)
	assert.Equal(t, []byte(`{}`), value)
	inner.AssertNumberOfCalls(t, "Get", 3)
}

func TestRetryingStore_GivesUpAfterMaxAttempts(t *testing.T) {
	inner := new(MockStore)
	inner.On("Set", mock.Anything, "task:1", mock.Anything).Return(errors.New("503 service unavailable"))

	store := repository.NewRetryingStore(inner, fastRetry(3))
	err := store.Set(context.Background(), "task:1", []byte(`{}`))

	assert.EqualError(t, err, "503 service unavailable")
	inner.AssertNumberOfCalls(t, "Set", 3)
}

func TestRetryingStore_NotFoundIsPermanent(t *testing.T) {
	inner := new(MockStore)
	inner.On("Get", mock.Anything, "task:missing").Return(nil, repository.ErrKeyNotFound)

	store := repository.NewRetryingStore(inner, fastRetry(4))
	_, err := store.Get(context.Background(), "task:missing")

	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
	inner.AssertNumberOfCalls(t, "Get", 1)
}

func TestRetryingStore_ScanAndDeletePassThrough(t *testing.T) {
	inner := new(MockStore)
	entries := []repository.Entry{{Key: "task:1", Value: []byte(`{}`)}}
	inner.On("Scan", mock.Anything, "task:").Return(entries, nil)
	inner.On("Delete", mock.Anything, "task:1").Return(nil)

	store := repository.NewRetryingStore(inner, fastRetry(2))

	got, err := store.Scan(context.Background(), "task:")
	assert.NoError(t, err)
	assert.Equal(t, entries, got)
	assert.NoError(t, store.Delete(context.Background(), "task:1"))
	inner.AssertExpectations(t)
}
