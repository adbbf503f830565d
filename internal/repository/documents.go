package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

func getDoc[T any](ctx context.Context, store Store, key string, notFound error) (*T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return &doc, nil
}

func putDoc(ctx context.Context, store Store, key string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// scanDocs decodes every document under prefix. A corrupt document is
// logged and skipped so one bad record cannot blank the whole listing.
func scanDocs[T any](ctx context.Context, store Store, prefix string) ([]T, error) {
	entries, err := store.Scan(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", prefix, err)
	}

	docs := make([]T, 0, len(entries))
	for _, e := range entries {
		var doc T
		if err := json.Unmarshal(e.Value, &doc); err != nil {
			log.Printf("⚠️  skipping undecodable document %s: %v", e.Key, err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
