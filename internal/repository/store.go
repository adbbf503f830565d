package repository

import "context"

// Entry is one key and its raw JSON document.
type Entry struct {
	Key   string
	Value []byte
}

// Store is the key-value document service every repository is built on.
// Set overwrites the whole document in a single write.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Scan(ctx context.Context, prefix string) ([]Entry, error)
}
